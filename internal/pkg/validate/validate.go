// Package validate wraps go-playground/validator so DTO validation runs as
// an explicit step before any service logic. All rule violations for a DTO
// are collected into one ValidationError keyed by JSON field name; nothing
// fails fast on the first broken rule.
package validate

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	xerrors "catalog-service/internal/pkg/errors"

	"github.com/go-playground/validator/v10"
)

// phone allows digits, spaces, dashes, parentheses and a leading +.
var phoneRe = regexp.MustCompile(`^\+?[0-9 ()\-]+$`)

type Validator struct {
	v *validator.Validate
}

func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	// registration only fails for an empty tag name
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phoneRe.MatchString(fl.Field().String())
	})

	return &Validator{v: v}
}

// Struct validates dto and returns nil or a *xerrors.ValidationError with
// every violated rule.
func (va *Validator) Struct(dto any) error {
	err := va.v.Struct(dto)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return xerrors.Wrap(err, "validation")
	}

	fields := make(map[string][]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = append(fields[fe.Field()], message(fe))
	}
	return &xerrors.ValidationError{Fields: fields}
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fe.Field())
	case "phone":
		return fmt.Sprintf("%s may only contain digits, spaces, dashes, parentheses and a leading +", fe.Field())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag())
	}
}
