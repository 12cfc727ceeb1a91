package contract

type RegisterUserRequest struct {
	Username string `query:"username" validate:"required"`
	Password string `query:"password" validate:"required"`
}

// Credentials are the optional `username` and `password` query parameters
// of read endpoints. They are not verified on arrival.
type Credentials struct {
	Username string
	Password string
}

// Provided reports whether both fields were sent; an empty value counts as
// missing.
func (c *Credentials) Provided() bool {
	return c != nil && c.Username != "" && c.Password != ""
}
