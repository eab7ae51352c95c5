package adapter

import (
	"errors"
	"time"

	"github.com/MKhiriev/go-web-api-sdk/internal/logger"
	"github.com/MKhiriev/go-web-api-sdk/internal/utils"
	"github.com/MKhiriev/go-web-api-sdk/models"
)

// JwtClient sends a static bearer token in the Authorization header.
type JwtClient struct {
	*baseClient

	expiresAt time.Time
}

// NewJwtClient builds a [JwtClient].
//
// The token is forwarded as-is. When it is a well-formed JWT its expiry is
// read (without signature verification) and a warning is logged if it has
// already passed; opaque tokens are accepted too.
func NewJwtClient(baseURL, token, apiKey string, transport models.TransportConfig, log *logger.Logger) (*JwtClient, error) {
	base, err := newBaseClient(baseURL, apiKey, transport, models.StrategyJWT, log)
	if err != nil {
		return nil, err
	}

	base.client.SetAuthToken(token)

	c := &JwtClient{baseClient: base}

	expiresAt, err := utils.ParseTokenExpiry(token)
	switch {
	case errors.Is(err, utils.ErrNoExpiry):
	case err != nil:
		c.logger.Debug().Err(err).Msg("bearer token is not a JWT, sending it as an opaque token")
	default:
		c.expiresAt = expiresAt
		if c.Expired(time.Now()) {
			c.logger.Warn().Time("expires_at", expiresAt).Msg("bearer token is already expired")
		}
	}

	return c, nil
}

// ExpiresAt returns the token's "exp" claim, or the zero time when the token
// has none or is not a JWT.
func (c *JwtClient) ExpiresAt() time.Time {
	return c.expiresAt
}

// Expired reports whether the token has a known expiry before now.
func (c *JwtClient) Expired(now time.Time) bool {
	return !c.expiresAt.IsZero() && !now.Before(c.expiresAt)
}
