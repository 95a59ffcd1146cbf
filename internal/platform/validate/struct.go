// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/taibuivan/bookstore/internal/platform/apperr"
)

// structValidator is safe for concurrent use and caches struct metadata,
// so a single instance serves the whole process.
var structValidator = newStructValidator()

func newStructValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report JSON names ("yearPublished") instead of Go field names.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}
		return name
	})

	return v
}

// Struct validates a DTO against its `validate` tags.
//
// It returns nil when every rule passes, or a VALIDATION_ERROR [apperr.AppError]
// with one [apperr.FieldError] per failing field, in declaration order.
func Struct(target any) error {
	err := structValidator.Struct(target)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return apperr.Internal(fmt.Errorf("validate: %w", err))
	}

	details := make([]apperr.FieldError, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		details = append(details, apperr.FieldError{
			Field:   fieldErr.Field(),
			Message: friendlyMessage(fieldErr),
		})
	}

	return apperr.ValidationError("Validation failed", details...)
}

//nolint:gocyclo // one case per supported tag
func friendlyMessage(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Must be a valid email address"
	case "uuid", "uuid4", "uuid7":
		return "Must be a valid UUID"
	case "min":
		if isNumeric(fieldErr.Kind()) {
			return "Must be at least " + fieldErr.Param()
		}
		return fmt.Sprintf("Minimum %s characters", fieldErr.Param())
	case "max":
		if isNumeric(fieldErr.Kind()) {
			return "Must be at most " + fieldErr.Param()
		}
		return fmt.Sprintf("Maximum %s characters", fieldErr.Param())
	case "gte":
		return "Must be greater than or equal to " + fieldErr.Param()
	case "lte":
		return "Must be less than or equal to " + fieldErr.Param()
	case "gt":
		return "Must be greater than " + fieldErr.Param()
	case "oneof":
		return "Must be one of: " + strings.ReplaceAll(fieldErr.Param(), " ", ", ")
	case "dive":
		return "Contains an invalid element"
	default:
		return "Is invalid"
	}
}

func isNumeric(kind reflect.Kind) bool {
	switch kind {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}
