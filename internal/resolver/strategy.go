package resolver

import "github.com/MKhiriev/go-web-api-sdk/models"

// strategy is the construction plan of one authentication variant.
// Each models.AuthStrategy variant has exactly one implementation.
type strategy interface {
	auth() models.AuthStrategy
	implementation() models.ImplementationType
	args(ep models.EndpointConfig, transport models.TransportConfig) []any
}

type simpleStrategy struct{}

func (simpleStrategy) auth() models.AuthStrategy { return models.NoAuth{} }

func (simpleStrategy) implementation() models.ImplementationType { return models.SimpleClientType }

func (simpleStrategy) args(ep models.EndpointConfig, transport models.TransportConfig) []any {
	return []any{ep.BaseURL, apiKeyArg(ep), transport}
}

type basicStrategy struct {
	basic models.BasicAuth
}

func (s basicStrategy) auth() models.AuthStrategy { return s.basic }

func (basicStrategy) implementation() models.ImplementationType { return models.BasicClientType }

func (s basicStrategy) args(ep models.EndpointConfig, transport models.TransportConfig) []any {
	return []any{ep.BaseURL, s.basic.Username, s.basic.Password, apiKeyArg(ep), transport}
}

type jwtStrategy struct {
	jwt models.JWTAuth
}

func (s jwtStrategy) auth() models.AuthStrategy { return s.jwt }

func (jwtStrategy) implementation() models.ImplementationType { return models.JwtClientType }

func (s jwtStrategy) args(ep models.EndpointConfig, transport models.TransportConfig) []any {
	return []any{ep.BaseURL, s.jwt.Token, apiKeyArg(ep), transport}
}

type awsStrategy struct {
	aws models.AWSAuth
}

func (s awsStrategy) auth() models.AuthStrategy { return s.aws }

func (awsStrategy) implementation() models.ImplementationType { return models.AwsApiGatewayClientType }

func (s awsStrategy) args(ep models.EndpointConfig, transport models.TransportConfig) []any {
	return []any{
		ep.BaseURL,
		models.SignatureDescriptor{Service: s.aws.Service, Region: s.aws.Region},
		models.CredentialsDescriptor{AccessKey: s.aws.AccessKey, SecretKey: s.aws.SecretKey},
		apiKeyArg(ep),
		transport,
	}
}

// selectStrategy applies the fixed priority chain AWS > JWT > Basic > None.
func selectStrategy(auth models.EndpointAuth) strategy {
	switch {
	case auth.AWS != nil:
		return awsStrategy{aws: *auth.AWS}
	case auth.JWT != nil:
		return jwtStrategy{jwt: *auth.JWT}
	case auth.Basic != nil:
		return basicStrategy{basic: *auth.Basic}
	default:
		return simpleStrategy{}
	}
}

// apiKeyArg returns the api key as a plain string, or an untyped nil when the
// endpoint has none.
func apiKeyArg(ep models.EndpointConfig) any {
	if ep.APIKey == nil {
		return nil
	}
	return *ep.APIKey
}
