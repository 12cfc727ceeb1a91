package middleware

import (
	"simpleblog/cmd/internal/contract"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

const CredentialsKey = "credentials"

// GetCredentialsFromContext returns the credentials captured by the
// credentials middleware, falling back to empty ones.
func GetCredentialsFromContext(c echo.Context) *contract.Credentials {
	val := c.Get(CredentialsKey)
	if val == nil {
		log.Warnf("route %s read credentials without credentials middleware", c.Request().URL)
		return &contract.Credentials{}
	}

	creds, ok := val.(*contract.Credentials)
	if !ok {
		log.Warnf("expected credentials type at '%s' context key, got %T", CredentialsKey, val)
		return &contract.Credentials{}
	}
	return creds
}
