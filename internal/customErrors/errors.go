package customerrors

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d: %s", e.Code, e.Message)
}

var (
	ErrMissingCredentials    = &Error{Code: 400, Message: "username and password are required"}
	ErrInvalidEmail          = &Error{Code: 400, Message: "invalid email"}
	ErrUsernameAlreadyExists = &Error{Code: 400, Message: "username already exists"}
	ErrMissingQuizFields     = &Error{Code: 400, Message: "quiz_name and passed are required"}
	ErrBadRequest            = &Error{Code: 400, Message: "bad request"}
	ErrInvalidCredentials    = &Error{Code: 401, Message: "invalid credentials"}
	ErrMissingToken          = &Error{Code: 401, Message: "access token required"}
	ErrInvalidToken          = &Error{Code: 403, Message: "invalid or expired token"}
	ErrStorage               = &Error{Code: 500, Message: "storage error"}
)

func GetStatus(err error) int {
	if customErr, ok := err.(*Error); ok {
		return customErr.Code
	}

	switch {
	case err == jwt.ErrSignatureInvalid, err == jwt.ErrTokenExpired:
		return 403

	default:
		return 500
	}
}

// GetMessage never exposes internal error detail: anything outside the
// taxonomy collapses to the generic storage message.
func GetMessage(err error) string {
	if customErr, ok := err.(*Error); ok {
		return customErr.Message
	}

	switch {
	case err == jwt.ErrSignatureInvalid, err == jwt.ErrTokenExpired:
		return ErrInvalidToken.Message

	default:
		return ErrStorage.Message
	}
}
