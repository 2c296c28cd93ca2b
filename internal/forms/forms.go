// Copyright (c) 2025 pointmoney
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package forms defines the login and registration form schemas and their
// validation. The field rules mirror the web client's schemas; validation
// failures are reported per field so the views can highlight each input.
package forms

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// LoginForm is the login view's input.
type LoginForm struct {
	Identifier string `validate:"required"`
	Password   string `validate:"required,min=6"`
}

// RegisterForm is the registration view's input.
type RegisterForm struct {
	LoginID         string `validate:"required,alphanum,min=3,max=20"`
	Email           string `validate:"required,email"`
	Name            string `validate:"required,max=50"`
	Role            string `validate:"required,oneof=worker admin"`
	Password        string `validate:"required,min=8"`
	PasswordConfirm string `validate:"required,eqfield=Password"`
}

// Errors maps form field names to display messages.
type Errors map[string]string

// Error summarizes the failure; per-field messages are read via Fields.
func (e Errors) Error() string {
	if len(e) == 1 {
		return "1 field needs attention"
	}
	return fmt.Sprintf("%d fields need attention", len(e))
}

// Fields returns the failed field names in stable order.
func (e Errors) Fields() []string {
	out := make([]string, 0, len(e))
	for f := range e {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// Validate runs the schema against form and converts any failures into
// per-field messages. A nil return means the form is valid.
func Validate(form any) error {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := Errors{}
	for _, fe := range verrs {
		out[fe.Field()] = message(fe)
	}
	return out
}

// ValidateEmail checks a single email value outside a full form, as the
// profile editor does for partial updates.
func ValidateEmail(value string) error {
	if err := validate.Var(value, "required,email"); err != nil {
		return errors.New("enter a valid email address")
	}
	return nil
}

// ValidateURL checks a single URL value, such as an avatar location.
func ValidateURL(value string) error {
	if err := validate.Var(value, "required,url"); err != nil {
		return errors.New("must be a valid URL")
	}
	return nil
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "email":
		return "enter a valid email address"
	case "alphanum":
		return "letters and digits only"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "oneof":
		return "must be one of: " + strings.Join(strings.Fields(fe.Param()), ", ")
	case "eqfield":
		return "passwords do not match"
	default:
		return "invalid value"
	}
}
