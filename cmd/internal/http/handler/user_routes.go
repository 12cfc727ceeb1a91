package handler

import (
	"context"
	"net/http"
	"simpleblog/cmd/internal/contract"
	"simpleblog/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

const registerSuccess = "Registered successfully!"

type UserService interface {
	Register(ctx context.Context, req *contract.RegisterUserRequest) apierror.ErrorResponse
}

type DefaultUserRoute struct {
	UserService UserService
}

func NewUserDefault(userService UserService) *DefaultUserRoute {
	return &DefaultUserRoute{UserService: userService}
}

func (u *DefaultUserRoute) RegisterUser(c echo.Context) error {
	var req contract.RegisterUserRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, apierror.MalformedJSONError)
	}

	apierr := u.UserService.Register(c.Request().Context(), &req)
	if apierr != nil {
		return respondError(c, apierr)
	}
	return c.String(http.StatusOK, registerSuccess)
}
