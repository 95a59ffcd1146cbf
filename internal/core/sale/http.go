// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sale

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/bookstore/internal/platform/request"
	"github.com/taibuivan/bookstore/internal/platform/respond"
)

// Handler implements the HTTP layer for sales.
type Handler struct {
	service *Service
}

// NewHandler constructs a new sale [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the /sales sub-router.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.findAll)
	router.Post("/", handler.create)
	router.Get("/client/{clientId}", handler.findByClient)
	router.Get("/book/{bookId}", handler.findByBook)
	router.Get("/{id}", handler.findOne)
	router.Delete("/{id}", handler.remove)

	return router
}

func (handler *Handler) findAll(writer http.ResponseWriter, request *http.Request) {
	sales, err := handler.service.FindAll(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, sales)
}

func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var input CreateInput
	if err := requestutil.DecodeValid(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	sale, err := handler.service.Create(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, sale)
}

func (handler *Handler) findOne(writer http.ResponseWriter, request *http.Request) {
	saleID, err := requestutil.Int64ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	sale, err := handler.service.FindOne(request.Context(), saleID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, sale)
}

func (handler *Handler) findByClient(writer http.ResponseWriter, request *http.Request) {
	clientID, err := requestutil.Int64ID(request, "clientId")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	sales, err := handler.service.FindByClient(request.Context(), clientID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, sales)
}

func (handler *Handler) findByBook(writer http.ResponseWriter, request *http.Request) {
	sales, err := handler.service.FindByBook(request.Context(), requestutil.ID(request, "bookId"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, sales)
}

func (handler *Handler) remove(writer http.ResponseWriter, request *http.Request) {
	saleID, err := requestutil.Int64ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Remove(request.Context(), saleID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
