// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package client

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/bookstore/internal/platform/request"
	"github.com/taibuivan/bookstore/internal/platform/respond"
)

// Handler implements the HTTP layer for clients.
type Handler struct {
	service *Service
}

// NewHandler constructs a new client [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the /clients sub-router. Updates answer on both PATCH and PUT.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.findAll)
	router.Post("/", handler.create)
	router.Get("/with-client-count", handler.withBookCount)
	router.Get("/{id}", handler.findOne)
	router.Patch("/{id}", handler.update)
	router.Put("/{id}", handler.update)
	router.Delete("/{id}", handler.remove)
	router.Get("/{id}/books", handler.booksBought)

	return router
}

func (handler *Handler) findAll(writer http.ResponseWriter, request *http.Request) {
	clients, err := handler.service.FindAll(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, clients)
}

func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var input CreateInput
	if err := requestutil.DecodeValid(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	client, err := handler.service.Create(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, client)
}

func (handler *Handler) withBookCount(writer http.ResponseWriter, request *http.Request) {
	clients, err := handler.service.GetClientsWithBookCount(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, clients)
}

func (handler *Handler) findOne(writer http.ResponseWriter, request *http.Request) {
	clientID, err := requestutil.Int64ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	client, err := handler.service.FindOne(request.Context(), clientID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, client)
}

func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	clientID, err := requestutil.Int64ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input UpdateInput
	if err := requestutil.DecodeValid(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	client, err := handler.service.Update(request.Context(), clientID, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, client)
}

func (handler *Handler) remove(writer http.ResponseWriter, request *http.Request) {
	clientID, err := requestutil.Int64ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Remove(request.Context(), clientID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) booksBought(writer http.ResponseWriter, request *http.Request) {
	clientID, err := requestutil.Int64ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	sales, err := handler.service.FindBooksBoughtByClient(request.Context(), clientID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, sales)
}
