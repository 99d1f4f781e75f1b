// Package validation checks request models before they are sent, using the
// validate struct tags declared in package models.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/dmitrijs2005/jobmatch/internal/common"
	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	return v
}

// FieldError is one failed rule, keyed by the JSON field name.
type FieldError struct {
	Field string
	Rule  string
	Param string
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.message()
}

func (e FieldError) message() string {
	switch e.Rule {
	case "required", "required_without", "required_if":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s characters", e.Param)
	case "max":
		return fmt.Sprintf("must be at most %s characters", e.Param)
	case "oneof":
		return "must be one of: " + e.Param
	case "url":
		return "must be a valid URL"
	case "gt":
		return "must be greater than " + e.Param
	case "gte":
		return "must be greater than or equal to " + e.Param
	case "gtefield":
		return "must not be less than " + e.Param
	case "excluded_with":
		return "cannot be combined with " + e.Param
	case "datetime":
		return "must be a date formatted as " + e.Param
	default:
		return "failed " + e.Rule
	}
}

// Errors lists every failed rule. It matches common.ErrorValidation.
type Errors []FieldError

func (e Errors) Error() string {
	parts := make([]string, len(e))
	for i, fe := range e {
		parts[i] = fe.Error()
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e Errors) Is(target error) bool {
	return target == common.ErrorValidation
}

// Field returns the first error for the named field.
func (e Errors) Field(name string) (FieldError, bool) {
	for _, fe := range e {
		if fe.Field == name {
			return fe, true
		}
	}
	return FieldError{}, false
}

// Struct validates v. It returns nil, Errors, or an error for values that
// cannot be validated at all.
func Struct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	out := make(Errors, 0, len(verrs))
	for _, fe := range verrs {
		field := fe.Field()
		if ns := fe.Namespace(); strings.Contains(ns, ".") {
			// drop the top-level struct name, keep nested paths like skills[0]
			field = ns[strings.Index(ns, ".")+1:]
		}
		out = append(out, FieldError{Field: field, Rule: fe.Tag(), Param: fe.Param()})
	}
	return out
}
