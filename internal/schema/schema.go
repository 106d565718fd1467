// Package schema validates and normalizes the login and registration input
// shapes before any collaborator is touched.
package schema

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/eduliv/eduliv-go/internal/text"
)

var ErrInvalid = errors.New("input failed validation")

// Login is the validated shape of a login request.
type Login struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=8"`
}

// CreateUser is the validated shape of a registration request.
type CreateUser struct {
	FullName string `validate:"required,fullname"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=8"`
	Phone    string `validate:"omitempty,numeric,len=11"`
}

var fullNamePattern = regexp.MustCompile(`^[a-zA-ZÀ-ÿ\s]+$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Full name: at least 3 characters, letters and spaces only, and more
	// than one word.
	v.RegisterValidation("fullname", func(fl validator.FieldLevel) bool {
		name := fl.Field().String()
		if len([]rune(name)) < 3 {
			return false
		}
		if !fullNamePattern.MatchString(name) {
			return false
		}
		return len(strings.Fields(name)) > 1
	})

	return v
}

// ParseLogin normalizes and validates login credentials. The email is
// lowercased and trimmed, the password trimmed.
func ParseLogin(email, password string) (Login, error) {
	in := Login{
		Email:    NormalizeEmail(email),
		Password: strings.TrimSpace(password),
	}
	if err := validate.Struct(in); err != nil {
		return Login{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return in, nil
}

// ParseCreateUser normalizes and validates registration input. The full name
// is capitalized word by word; phone is optional but must be 11 digits when
// present.
func ParseCreateUser(fullName, email, password, phone string) (CreateUser, error) {
	in := CreateUser{
		FullName: text.Capitalize(fullName),
		Email:    NormalizeEmail(email),
		Password: strings.TrimSpace(password),
		Phone:    strings.TrimSpace(phone),
	}
	if err := validate.Struct(in); err != nil {
		return CreateUser{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return in, nil
}

// NormalizeEmail lowercases and trims an email address. All lookups by email
// use the normalized form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
