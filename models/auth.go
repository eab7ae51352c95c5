package models

// StrategyTag identifies the authentication construction plan chosen for an
// endpoint. It is embedded into service keys as "<tag>_client".
type StrategyTag string

const (
	StrategySimple StrategyTag = "simple"
	StrategyJWT    StrategyTag = "jwt"
	StrategyBasic  StrategyTag = "basic"
	StrategyAWS    StrategyTag = "aws"
)

// String implements fmt.Stringer.
func (s StrategyTag) String() string {
	return string(s)
}

// AuthStrategy is the closed set of authentication variants. Only the types
// declared in this file implement it.
type AuthStrategy interface {
	Tag() StrategyTag
	isAuthStrategy()
}

// NoAuth selects the unauthenticated simple client.
type NoAuth struct{}

// JWTAuth sends a static bearer token.
type JWTAuth struct {
	Token string
}

// BasicAuth sends HTTP Basic credentials.
type BasicAuth struct {
	Username string
	Password string
}

// AWSAuth signs requests with AWS Signature Version 4.
type AWSAuth struct {
	Region    string
	Service   string
	AccessKey string
	SecretKey string
}

func (NoAuth) Tag() StrategyTag    { return StrategySimple }
func (JWTAuth) Tag() StrategyTag   { return StrategyJWT }
func (BasicAuth) Tag() StrategyTag { return StrategyBasic }
func (AWSAuth) Tag() StrategyTag   { return StrategyAWS }

func (NoAuth) isAuthStrategy()    {}
func (JWTAuth) isAuthStrategy()   {}
func (BasicAuth) isAuthStrategy() {}
func (AWSAuth) isAuthStrategy()   {}
