package dto

import (
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	customerrors "github.com/filipkase07-hue/ppl-quiz-backend/internal/customErrors"
)

type RegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Email    string `json:"email" validate:"omitempty,email"`
}

func (r *RegisterRequest) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		if fieldErrors, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range fieldErrors {
				if fe.Field() == "Email" {
					return customerrors.ErrInvalidEmail
				}
			}
		}
		return customerrors.ErrMissingCredentials
	}
	return nil
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (l *LoginRequest) Validate() error {
	validate := validator.New()
	if err := validate.Struct(l); err != nil {
		return customerrors.ErrMissingCredentials
	}
	return nil
}

// UserView is the public projection of a user; the password hash is
// never part of it.
type UserView struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
}

type AuthResponse struct {
	Message string   `json:"message"`
	Token   string   `json:"token"`
	User    UserView `json:"user"`
}
