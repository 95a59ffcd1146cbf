// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package pagination provides shared types and helpers for API list endpoints.
//
// # Overview
//
// It standardizes how offset-based navigation is requested via query parameters
// and how the resulting metadata is delivered in the API response envelope.
package pagination

import (
	"net/http"
	"strconv"

	"github.com/taibuivan/bookstore/internal/platform/validate"
)

const (
	// DefaultLimit is the number of items per page if not specified.
	DefaultLimit = 10
	// MaxLimit is the upper bound for items per page to prevent system abuse.
	MaxLimit = 100
	// DefaultOffset is the number of rows skipped if not specified.
	DefaultOffset = 0
)

// Query parameter names.
const (
	ParamLimit  = "limit"
	ParamOffset = "offset"
)

// Params holds the parsed limit and offset from a request's query string.
type Params struct {
	Limit  int
	Offset int
}

// Meta is the pagination metadata included in API list responses.
type Meta struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Total  int `json:"total"`
}

// NewMeta constructs pagination metadata for a response.
func NewMeta(params Params, total int) Meta {
	return Meta{
		Limit:  params.Limit,
		Offset: params.Offset,
		Total:  total,
	}
}

// FromRequest parses "limit" and "offset" query parameters from an HTTP request.
//
// # Validation
//
// Absent parameters fall back to [DefaultLimit] and [DefaultOffset]. Present but
// malformed or out-of-range values are rejected with a VALIDATION_ERROR instead
// of being silently clamped.
func FromRequest(r *http.Request) (Params, error) {
	validator := &validate.Validator{}

	limit, ok := parseIntParam(r, ParamLimit, DefaultLimit)
	validator.Custom(ParamLimit, !ok, "Must be an integer")
	if ok {
		validator.Range(ParamLimit, limit, 1, MaxLimit)
	}

	offset, ok := parseIntParam(r, ParamOffset, DefaultOffset)
	validator.Custom(ParamOffset, !ok, "Must be an integer")
	if ok {
		validator.Min(ParamOffset, offset, 0)
	}

	if err := validator.Err(); err != nil {
		return Params{}, err
	}

	return Params{Limit: limit, Offset: offset}, nil
}

// parseIntParam parses a single integer query parameter with a fallback default.
// The boolean is false when the parameter is present but not an integer.
func parseIntParam(r *http.Request, key string, defaultVal int) (int, bool) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return defaultVal, true
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}

	return n, true
}
