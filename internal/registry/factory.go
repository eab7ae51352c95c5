package registry

import (
	"fmt"

	"github.com/MKhiriev/go-web-api-sdk/internal/adapter"
	"github.com/MKhiriev/go-web-api-sdk/internal/logger"
	"github.com/MKhiriev/go-web-api-sdk/models"
)

// Factory builds a client from the positional constructor arguments of a
// descriptor.
type Factory func(args []any, log *logger.Logger) (any, error)

// builtinFactories maps every built-in implementation type to its factory.
func builtinFactories() map[models.ImplementationType]Factory {
	return map[models.ImplementationType]Factory{
		models.SimpleClientType:        newSimpleClient,
		models.BasicClientType:         newBasicClient,
		models.JwtClientType:           newJwtClient,
		models.AwsApiGatewayClientType: newAwsApiGatewayClient,
	}
}

// SimpleArgs unpacks the (base_url, api_key, transport) argument shape used
// by simple and wrapped clients. Factories of wrapping types can use it.
func SimpleArgs(args []any) (baseURL, apiKey string, transport models.TransportConfig, err error) {
	if err = checkArity(args, 3); err != nil {
		return "", "", nil, err
	}
	if baseURL, err = stringArg(args, 0, "base_url"); err != nil {
		return "", "", nil, err
	}
	if apiKey, err = apiKeyArg(args, 1); err != nil {
		return "", "", nil, err
	}
	if transport, err = transportArg(args, 2); err != nil {
		return "", "", nil, err
	}
	return baseURL, apiKey, transport, nil
}

func newSimpleClient(args []any, log *logger.Logger) (any, error) {
	baseURL, apiKey, transport, err := SimpleArgs(args)
	if err != nil {
		return nil, err
	}
	return adapter.NewSimpleClient(baseURL, apiKey, transport, log)
}

func newBasicClient(args []any, log *logger.Logger) (any, error) {
	if err := checkArity(args, 5); err != nil {
		return nil, err
	}

	baseURL, err := stringArg(args, 0, "base_url")
	if err != nil {
		return nil, err
	}
	username, err := stringArg(args, 1, "username")
	if err != nil {
		return nil, err
	}
	password, err := stringArg(args, 2, "password")
	if err != nil {
		return nil, err
	}
	apiKey, err := apiKeyArg(args, 3)
	if err != nil {
		return nil, err
	}
	transport, err := transportArg(args, 4)
	if err != nil {
		return nil, err
	}

	return adapter.NewBasicClient(baseURL, username, password, apiKey, transport, log)
}

func newJwtClient(args []any, log *logger.Logger) (any, error) {
	if err := checkArity(args, 4); err != nil {
		return nil, err
	}

	baseURL, err := stringArg(args, 0, "base_url")
	if err != nil {
		return nil, err
	}
	token, err := stringArg(args, 1, "token")
	if err != nil {
		return nil, err
	}
	apiKey, err := apiKeyArg(args, 2)
	if err != nil {
		return nil, err
	}
	transport, err := transportArg(args, 3)
	if err != nil {
		return nil, err
	}

	return adapter.NewJwtClient(baseURL, token, apiKey, transport, log)
}

func newAwsApiGatewayClient(args []any, log *logger.Logger) (any, error) {
	if err := checkArity(args, 5); err != nil {
		return nil, err
	}

	baseURL, err := stringArg(args, 0, "base_url")
	if err != nil {
		return nil, err
	}
	signature, ok := args[1].(models.SignatureDescriptor)
	if !ok {
		return nil, fmt.Errorf("%w: argument 1 (signature) has type %T", ErrInvalidArguments, args[1])
	}
	creds, ok := args[2].(models.CredentialsDescriptor)
	if !ok {
		return nil, fmt.Errorf("%w: argument 2 (credentials) has type %T", ErrInvalidArguments, args[2])
	}
	apiKey, err := apiKeyArg(args, 3)
	if err != nil {
		return nil, err
	}
	transport, err := transportArg(args, 4)
	if err != nil {
		return nil, err
	}

	return adapter.NewAwsApiGatewayClient(baseURL, signature, creds, apiKey, transport, log)
}

func checkArity(args []any, want int) error {
	if len(args) != want {
		return fmt.Errorf("%w: expected %d arguments, got %d", ErrInvalidArguments, want, len(args))
	}
	return nil
}

func stringArg(args []any, i int, name string) (string, error) {
	s, ok := args[i].(string)
	if !ok {
		return "", fmt.Errorf("%w: argument %d (%s) has type %T", ErrInvalidArguments, i, name, args[i])
	}
	return s, nil
}

// apiKeyArg accepts a string or nil for an absent key.
func apiKeyArg(args []any, i int) (string, error) {
	if args[i] == nil {
		return "", nil
	}
	return stringArg(args, i, "api_key")
}

// transportArg accepts a TransportConfig or a plain mapping. nil yields the
// default options.
func transportArg(args []any, i int) (models.TransportConfig, error) {
	switch transport := args[i].(type) {
	case models.TransportConfig:
		return transport, nil
	case map[string]any:
		return models.TransportConfig(transport), nil
	case nil:
		return models.DefaultTransportConfig(), nil
	default:
		return nil, fmt.Errorf("%w: argument %d (transport) has type %T", ErrInvalidArguments, i, args[i])
	}
}
