// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package upload

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandler_SameNameSameMillisecond(t *testing.T) {
	storage, err := NewStorage(t.TempDir())
	require.NoError(t, err)

	handler := NewHandler(storage, 1<<20, nil, slog.New(slog.NewTextHandler(io.Discard, nil)))
	handler.now = func() time.Time { return time.UnixMilli(1718000000000) }
	routes := handler.Routes()

	var urls []string
	for _, content := range []string{"one", "two"} {
		body := &bytes.Buffer{}
		form := multipart.NewWriter(body)
		part, err := form.CreateFormFile("file", "cover.png")
		require.NoError(t, err)
		_, err = part.Write([]byte(content))
		require.NoError(t, err)
		require.NoError(t, form.Close())

		request := httptest.NewRequest(http.MethodPost, "/", body)
		request.Header.Set("Content-Type", form.FormDataContentType())
		recorder := httptest.NewRecorder()
		routes.ServeHTTP(recorder, request)
		require.Equal(t, http.StatusOK, recorder.Code)

		var payload struct {
			Data Result `json:"data"`
		}
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &payload))
		require.NotNil(t, payload.Data.URL)
		urls = append(urls, *payload.Data.URL)
	}

	assert.Equal(t, []string{
		"/resources/images/1718000000000-cover.png",
		"/resources/images/1718000000000-cover-1.png",
	}, urls)

	stored, err := os.ReadFile(filepath.Join(storage.Dir(), "1718000000000-cover-1.png"))
	require.NoError(t, err)
	assert.Equal(t, "two", string(stored))
}
