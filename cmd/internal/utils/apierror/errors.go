package apierror

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse abstracts all API error responses to the user.
//
// This interface does not implement `error`, since its only purpose
// is to be used for API responses and not for logging circumstances.
type ErrorResponse interface {
	// Code is the HTTP status code to be returned.
	Code() int

	// Text is the plain text body sent to the caller.
	Text() string
}

type APIError struct {
	Message string `json:"message"`
	Status  int    `json:"-"`
}

func (a *APIError) Code() int {
	return a.Status
}

func (a *APIError) Text() string {
	return a.Message
}

var (
	MalformedJSONError  = NewSimple(http.StatusBadRequest, "Malformed JSON body")
	InternalServerError = NewSimple(http.StatusInternalServerError, "Internal server error")

	/*
	 * Domain failures keep a 200 status, clients match on the text
	 */
	NoteNotFoundError        = NewSimple(http.StatusOK, "Note not found")
	LoginRequiredError       = NewSimple(http.StatusOK, "Please log in first")
	CredentialsMismatchError = NewSimple(http.StatusOK, "Invalid username or password")
	InsufficientPermsError   = NewSimple(http.StatusOK, "Insufficient permission")
	PasswordTakenError       = NewSimple(http.StatusOK, "Password is already in use!")
)

func FromValidationError(err error) *APIError {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return MalformedJSONError
	}

	problems := make([]string, 0, len(ve))
	for _, fe := range ve {
		field := strings.ToLower(fe.Field())

		switch fe.Tag() {
		case "required":
			problems = append(problems, field+": this field is required")
		case "min":
			problems = append(problems, field+": value is too small, min: "+fe.Param())
		case "max":
			problems = append(problems, field+": value is too large, max: "+fe.Param())
		default:
			problems = append(problems, field+": invalid value provided")
		}
	}
	return NewSimple(http.StatusBadRequest, strings.Join(problems, "; "))
}

func NewSimple(status int, msg string, args ...any) *APIError {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	return &APIError{Status: status, Message: msg}
}

func NewUsernameTakenError(username string) *APIError {
	return NewSimple(http.StatusOK, "Username %s already exists!", username)
}
