package models

import "sort"

// Default AWS signing parameters applied when an aws block omits them.
const (
	DefaultAWSRegion  = "us-east-1"
	DefaultAWSService = "execute-api"
)

// EndpointConfig describes one named remote API target.
//
// It is produced once by the schema normalizer and consumed once by the
// resolver. BaseURL is used verbatim: no trailing-slash handling is applied.
type EndpointConfig struct {
	// Name is the unique endpoint key; it becomes part of the service key.
	Name string

	// BaseURL is the root URL every request of the client is relative to.
	BaseURL string

	// APIKey is sent as the API gateway key header. Nil means absent.
	APIKey *string

	// WrappedBy names an alternate client implementation to construct
	// instead of the built-in one. Empty means not wrapped.
	WrappedBy string

	// Auth holds every authentication block that was enabled in the
	// configuration. Exactly one of them is honored.
	Auth EndpointAuth
}

// EndpointAuth is the set of enabled authentication blocks of an endpoint.
// A nil field means the block was absent or explicitly disabled.
type EndpointAuth struct {
	AWS   *AWSAuth
	JWT   *JWTAuth
	Basic *BasicAuth
}

// Enabled lists the tags of the enabled blocks in selection priority order.
func (a EndpointAuth) Enabled() []StrategyTag {
	tags := make([]StrategyTag, 0, 3)
	if a.AWS != nil {
		tags = append(tags, StrategyAWS)
	}
	if a.JWT != nil {
		tags = append(tags, StrategyJWT)
	}
	if a.Basic != nil {
		tags = append(tags, StrategyBasic)
	}
	return tags
}

// Endpoints is the normalized endpoint set keyed by endpoint name.
type Endpoints map[string]EndpointConfig

// Names returns the endpoint names in ascending order.
func (e Endpoints) Names() []string {
	names := make([]string, 0, len(e))
	for name := range e {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
