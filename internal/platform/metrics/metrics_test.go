// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/bookstore/internal/platform/metrics"
)

func TestObserveRequest(t *testing.T) {
	m := metrics.New()

	m.ObserveRequest(http.MethodGet, "/books/{id}", http.StatusOK, 20*time.Millisecond)
	m.ObserveRequest(http.MethodGet, "/books/{id}", http.StatusOK, 30*time.Millisecond)
	m.ObserveRequest(http.MethodGet, "", http.StatusNotFound, time.Millisecond)

	count, err := testutil.GatherAndCount(m.Registry(), "bookstore_http_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count, "one series per (method, route, status)")
}

func TestIncUpload(t *testing.T) {
	m := metrics.New()

	m.IncUpload(metrics.UploadStored)
	m.IncUpload(metrics.UploadStored)
	m.IncUpload(metrics.UploadEmpty)

	count, err := testutil.GatherAndCount(m.Registry(), "bookstore_uploads_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *metrics.Metrics

	assert.NotPanics(t, func() {
		m.ObserveRequest(http.MethodGet, "/authors", http.StatusOK, time.Millisecond)
		m.IncUpload(metrics.UploadFailed)
	})
}

func TestHandler(t *testing.T) {
	m := metrics.New()
	m.ObserveRequest(http.MethodPost, "/sales", http.StatusCreated, time.Millisecond)

	recorder := httptest.NewRecorder()
	m.Handler().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `bookstore_http_requests_total{method="POST",route="/sales",status="201"} 1`)
}
