// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package requestutil_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/bookstore/internal/platform/apperr"
	requestutil "github.com/taibuivan/bookstore/internal/platform/request"
)

func withURLParam(request *http.Request, key, value string) *http.Request {
	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add(key, value)
	return request.WithContext(context.WithValue(request.Context(), chi.RouteCtxKey, routeCtx))
}

/*
TestInt64ID accepts positive integers and rejects everything else.
*/
func TestInt64ID(t *testing.T) {
	tests := []struct {
		raw     string
		want    int64
		wantErr bool
	}{
		{"1", 1, false},
		{"9001", 9001, false},
		{"0", 0, true},
		{"-3", 0, true},
		{"abc", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			request := withURLParam(httptest.NewRequest(http.MethodGet, "/", nil), "id", tt.raw)

			id, err := requestutil.Int64ID(request, "id")
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, apperr.HasCode(err, apperr.CodeValidation))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, id)
		})
	}
}

/*
TestDecodeValid distinguishes malformed JSON from rule violations.
*/
func TestDecodeValid(t *testing.T) {
	type input struct {
		FirstName string `json:"firstName" validate:"required"`
	}

	t.Run("malformed", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{"))
		var target input
		err := requestutil.DecodeValid(request, &target)
		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, "Invalid JSON payload", ae.Message)
	})

	t.Run("invalid", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"firstName":""}`))
		var target input
		err := requestutil.DecodeValid(request, &target)
		ae := apperr.As(err)
		require.NotNil(t, ae)
		require.Len(t, ae.Details, 1)
		assert.Equal(t, "firstName", ae.Details[0].Field)
	})

	t.Run("valid", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"firstName":"Ada"}`))
		var target input
		require.NoError(t, requestutil.DecodeValid(request, &target))
		assert.Equal(t, "Ada", target.FirstName)
	})
}

/*
TestDecodeJSON_WrongType names the offending field and the expected JSON shape.
*/
func TestDecodeJSON_WrongType(t *testing.T) {
	type input struct {
		Title         string   `json:"title"`
		YearPublished int      `json:"yearPublished"`
		Quantity      *int     `json:"quantity"`
		IDs           []string `json:"ids"`
	}

	tests := []struct {
		body    string
		field   string
		message string
	}{
		{`{"yearPublished":"abc"}`, "yearPublished", "Must be an integer"},
		{`{"quantity":true}`, "quantity", "Must be an integer"},
		{`{"title":42}`, "title", "Must be a string"},
		{`{"ids":"x"}`, "ids", "Must be an array"},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			var target input

			ae := apperr.As(requestutil.DecodeJSON(request, &target))
			require.NotNil(t, ae)
			assert.Equal(t, apperr.CodeValidation, ae.Code)
			require.Len(t, ae.Details, 1)
			assert.Equal(t, tt.field, ae.Details[0].Field)
			assert.Equal(t, tt.message, ae.Details[0].Message)
		})
	}
}
