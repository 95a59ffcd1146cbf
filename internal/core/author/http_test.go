// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package author_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/bookstore/internal/core/author"
	"github.com/taibuivan/bookstore/internal/platform/database/dbtest"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	db := dbtest.NewSQLite(t)
	service := author.NewService(author.NewSQLRepository(db), dbtest.Logger())
	server := httptest.NewServer(author.NewHandler(service).Routes())
	t.Cleanup(server.Close)

	return server
}

func doJSON(t *testing.T, method, url, body string) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	request, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	request.Header.Set("Content-Type", "application/json")

	response, err := http.DefaultClient.Do(request)
	require.NoError(t, err)
	defer response.Body.Close()

	payload := map[string]any{}
	if response.StatusCode != http.StatusNoContent {
		require.NoError(t, json.NewDecoder(response.Body).Decode(&payload))
	}

	return response.StatusCode, payload
}

func TestHandler_CreateThenGet(t *testing.T) {
	server := newTestServer(t)

	status, created := doJSON(t, http.MethodPost, server.URL+"/", `{"firstName":"Ada","lastName":"Lovelace"}`)
	require.Equal(t, http.StatusCreated, status)

	data := created["data"].(map[string]any)
	id := data["id"].(string)
	assert.NotEmpty(t, id)
	assert.NotContains(t, data, "booksCount")

	status, fetched := doJSON(t, http.MethodGet, server.URL+"/"+id, "")
	require.Equal(t, http.StatusOK, status)

	detail := fetched["data"].(map[string]any)
	assert.Equal(t, "Ada", detail["firstName"])
	assert.Equal(t, "Lovelace", detail["lastName"])
	assert.Equal(t, float64(0), detail["booksCount"])
	assert.Equal(t, float64(0), detail["averageSales"])
	assert.Equal(t, []any{}, detail["books"])
}

func TestHandler_CreateValidation(t *testing.T) {
	server := newTestServer(t)

	status, body := doJSON(t, http.MethodPost, server.URL+"/", `{"firstName":"Ada"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION_ERROR", body["code"])

	details := body["details"].([]any)
	require.Len(t, details, 1)
	assert.Equal(t, "lastName", details[0].(map[string]any)["field"])
}

func TestHandler_MalformedJSON(t *testing.T) {
	server := newTestServer(t)

	status, body := doJSON(t, http.MethodPost, server.URL+"/", `{"firstName":`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION_ERROR", body["code"])
}

func TestHandler_UpdateAndDelete(t *testing.T) {
	server := newTestServer(t)

	_, created := doJSON(t, http.MethodPost, server.URL+"/", `{"firstName":"Ada","lastName":"Byron"}`)
	id := created["data"].(map[string]any)["id"].(string)

	status, updated := doJSON(t, http.MethodPatch, server.URL+"/"+id, `{"lastName":"Lovelace"}`)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Lovelace", updated["data"].(map[string]any)["lastName"])

	status, _ = doJSON(t, http.MethodDelete, server.URL+"/"+id, "")
	assert.Equal(t, http.StatusNoContent, status)

	status, _ = doJSON(t, http.MethodDelete, server.URL+"/"+id, "")
	assert.Equal(t, http.StatusNoContent, status, "delete is idempotent")

	status, body := doJSON(t, http.MethodGet, server.URL+"/"+id, "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", body["code"])
}

func TestHandler_UpdateUnknown(t *testing.T) {
	server := newTestServer(t)

	status, body := doJSON(t, http.MethodPatch, server.URL+"/"+adaID, `{"firstName":"Ada"}`)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", body["code"])
}

func TestHandler_ListAuthors(t *testing.T) {
	server := newTestServer(t)

	doJSON(t, http.MethodPost, server.URL+"/", `{"firstName":"Ada","lastName":"Lovelace"}`)
	doJSON(t, http.MethodPost, server.URL+"/", `{"firstName":"Grace","lastName":"Hopper"}`)

	status, body := doJSON(t, http.MethodGet, server.URL+"/", "")
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, body["data"].([]any), 2)
}
