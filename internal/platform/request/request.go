// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and common
body decoding patterns, ensuring consistent error handling and type safety.
*/
package requestutil

import (
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/bookstore/internal/platform/apperr"
	"github.com/taibuivan/bookstore/internal/platform/validate"
)

/*
DecodeJSON reads the request body and decodes it into the target structure.

Parameters:
  - request: *http.Request
  - target: any (Pointer to the destination struct)

Returns:
  - error: a VALIDATION_ERROR naming the field when a value has the wrong JSON type,
    validate.ErrInvalidJSON for any other decoding failure, otherwise nil
*/
func DecodeJSON(request *http.Request, target any) error {
	err := json.NewDecoder(request.Body).Decode(target)
	if err == nil {
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return apperr.ValidationError("Validation failed", apperr.FieldError{
			Field:   typeErr.Field,
			Message: "Must be " + describeType(typeErr.Type),
		})
	}

	return validate.ErrInvalidJSON
}

// describeType names the JSON shape expected for a Go type.
func describeType(goType reflect.Type) string {
	for goType.Kind() == reflect.Pointer {
		goType = goType.Elem()
	}

	switch goType.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "an integer"
	case reflect.Float32, reflect.Float64:
		return "a number"
	case reflect.Bool:
		return "a boolean"
	case reflect.String:
		return "a string"
	case reflect.Slice, reflect.Array:
		return "an array"
	default:
		return "an object"
	}
}

/*
DecodeValid decodes the JSON body into target and validates its struct tags.

Returns:
  - error: validate.ErrInvalidJSON, a VALIDATION_ERROR with field details, or nil
*/
func DecodeValid(request *http.Request, target any) error {
	if err := DecodeJSON(request, target); err != nil {
		return err
	}
	return validate.Struct(target)
}

/*
ID retrieves a named string URL parameter, such as an author or book UUID.
*/
func ID(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
Int64ID retrieves a named URL parameter and parses it as a positive integer key.

Returns:
  - int64: The parsed identifier
  - error: VALIDATION_ERROR naming the parameter if it is not a positive integer
*/
func Int64ID(request *http.Request, name string) (int64, error) {
	raw := chi.URLParam(request, name)

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, validate.RequiredError(name, "Must be a positive integer")
	}

	return id, nil
}
