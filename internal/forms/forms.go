// Package forms holds the client-side field checks that run before any
// network call. A failed check produces a domain.ValidationError with
// inline per-field messages; the gateway is never reached.
package forms

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/techiefinder/client/internal/core/domain"
)

var validate = validator.New()

// LoginForm mirrors the login screen's two fields.
type LoginForm struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
}

// RegisterForm mirrors the registration screen. ConfirmPassword must
// literally equal Password.
type RegisterForm struct {
	FirstName       string      `validate:"required"`
	LastName        string      `validate:"required"`
	Email           string      `validate:"required,email"`
	PhoneNumber     string      `validate:"required,min=10"`
	Password        string      `validate:"required,min=6"`
	ConfirmPassword string      `validate:"required,eqfield=Password"`
	Role            domain.Role `validate:"required,oneof=USER TECHNICIAN"`
}

// Validate checks the login form and returns a domain.ValidationError on
// failure.
func (f LoginForm) Validate() error {
	return run(f)
}

// Validate checks the registration form and returns a domain.ValidationError
// on failure.
func (f RegisterForm) Validate() error {
	return run(f)
}

// Input converts a validated form into the registration payload.
func (f RegisterForm) Input() domain.RegisterInput {
	return domain.RegisterInput{
		FirstName:   f.FirstName,
		LastName:    f.LastName,
		Email:       f.Email,
		PhoneNumber: f.PhoneNumber,
		Password:    f.Password,
		Role:        f.Role,
	}
}

func run(form any) error {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}
	fields := make(map[string]string, len(ve))
	for _, fe := range ve {
		fields[fe.Field()] = fieldError(fe)
	}
	return &domain.ValidationError{Fields: fields}
}

// fieldError converts a single ValidationError into the exact message the
// screen shows inline next to the field.
func fieldError(fe validator.FieldError) string {
	switch fe.Field() {
	case "Email":
		if fe.Tag() == "required" {
			return "Email is required"
		}
		return "Please enter a valid email"
	case "Password":
		if fe.Tag() == "required" {
			return "Password is required"
		}
		return "Password must be at least 6 characters"
	case "ConfirmPassword":
		if fe.Tag() == "required" {
			return "Please confirm your password"
		}
		return "Passwords do not match"
	case "FirstName":
		return "First name is required"
	case "LastName":
		return "Last name is required"
	case "PhoneNumber":
		if fe.Tag() == "required" {
			return "Phone number is required"
		}
		return "Please enter a valid phone number"
	case "Role":
		return "Role must be USER or TECHNICIAN"
	default:
		return fmt.Sprintf("%s failed validation (%s)", fe.Field(), fe.Tag())
	}
}
