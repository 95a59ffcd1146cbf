// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package upload accepts image files over HTTP and stores them on local disk.

Stored files are served statically under [constants.ImagesURLPrefix]; the
handler only returns the public URL of the new file.
*/
package upload

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/bookstore/internal/platform/apperr"
	"github.com/taibuivan/bookstore/internal/platform/constants"
	"github.com/taibuivan/bookstore/internal/platform/metrics"
	"github.com/taibuivan/bookstore/internal/platform/respond"
)

// Result is the upload response body. URL is nil when no file was sent.
type Result struct {
	URL *string `json:"url"`
}

// Handler implements POST /upload.
type Handler struct {
	storage  *Storage
	maxBytes int64
	metrics  *metrics.Metrics
	logger   *slog.Logger
	now      func() time.Time
}

// NewHandler constructs an upload [Handler]. collector may be nil.
func NewHandler(storage *Storage, maxBytes int64, collector *metrics.Metrics, logger *slog.Logger) *Handler {
	return &Handler{
		storage:  storage,
		maxBytes: maxBytes,
		metrics:  collector,
		logger:   logger,
		now:      time.Now,
	}
}

// Routes returns the /upload sub-router.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Post("/", handler.upload)
	return router
}

func (handler *Handler) upload(writer http.ResponseWriter, request *http.Request) {
	request.Body = http.MaxBytesReader(writer, request.Body, handler.maxBytes)

	file, header, err := request.FormFile(constants.UploadFormField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			handler.metrics.IncUpload(metrics.UploadTooBig)
			respond.Error(writer, request, apperr.PayloadTooLarge(handler.maxBytes))
		case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
			handler.metrics.IncUpload(metrics.UploadEmpty)
			respond.OK(writer, Result{})
		default:
			handler.metrics.IncUpload(metrics.UploadFailed)
			respond.Error(writer, request, apperr.ValidationError("Malformed multipart body").WithCause(err))
		}
		return
	}
	defer file.Close()

	name, err := handler.storage.Save(GenerateName(header.Filename, handler.now()), file)
	if err != nil {
		handler.metrics.IncUpload(metrics.UploadFailed)
		respond.Error(writer, request, apperr.Internal(err))
		return
	}

	handler.metrics.IncUpload(metrics.UploadStored)
	handler.logger.Info("upload_stored",
		slog.String("file_name", name),
		slog.Int64("size", header.Size),
	)

	url := constants.ImagesURLPrefix + name
	respond.OK(writer, Result{URL: &url})
}
