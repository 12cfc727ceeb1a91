package middleware

import (
	"simpleblog/cmd/internal/contract"

	"github.com/labstack/echo/v4"
)

// NewCredentialsMiddleware stores the optional `username` and `password`
// query parameters as *contract.Credentials in the request context. It never
// rejects a request and does not touch storage: checking them is left to
// the handler, which knows whether the resource needs them.
func NewCredentialsMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(CredentialsKey, &contract.Credentials{
				Username: c.QueryParam("username"),
				Password: c.QueryParam("password"),
			})
			return next(c)
		}
	}
}
