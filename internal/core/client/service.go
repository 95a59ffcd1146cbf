// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package client

import (
	"context"
	"log/slog"

	"github.com/taibuivan/bookstore/internal/core/sale"
)

// PurchaseFinder lists a client's sales with book and author loaded.
// [sale.Service] satisfies it.
type PurchaseFinder interface {
	FindByClient(ctx context.Context, clientID int64) ([]*sale.Sale, error)
}

// Service implements the client use cases.
type Service struct {
	repo      Repository
	purchases PurchaseFinder
	logger    *slog.Logger
}

// NewService constructs a new [Service].
func NewService(repo Repository, purchases PurchaseFinder, logger *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		purchases: purchases,
		logger:    logger,
	}
}

// Create stores a new client and returns it with its generated id.
func (service *Service) Create(ctx context.Context, input CreateInput) (*Client, error) {
	client := &Client{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Picture:   input.Picture,
	}

	if err := service.repo.Create(ctx, client); err != nil {
		return nil, err
	}

	service.logger.Info("client_created", slog.Int64("client_id", client.ID))
	return client, nil
}

// FindAll returns every client ordered by id.
func (service *Service) FindAll(ctx context.Context) ([]*Client, error) {
	return service.repo.List(ctx)
}

// FindOne returns the client or NOT_FOUND.
func (service *Service) FindOne(ctx context.Context, id int64) (*Client, error) {
	return service.repo.Get(ctx, id)
}

// Update applies a partial update and returns the re-read client.
func (service *Service) Update(ctx context.Context, id int64, patch UpdateInput) (*Client, error) {
	client, err := service.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	service.logger.Info("client_updated", slog.Int64("client_id", id))
	return client, nil
}

// Remove deletes the client and its sales. Unknown ids succeed.
func (service *Service) Remove(ctx context.Context, id int64) error {
	if err := service.repo.Delete(ctx, id); err != nil {
		return err
	}

	service.logger.Warn("client_deleted", slog.Int64("client_id", id))
	return nil
}

// FindBooksBoughtByClient returns the client's sales, each with its book and author.
// An unknown client has no purchases.
func (service *Service) FindBooksBoughtByClient(ctx context.Context, id int64) ([]*sale.Sale, error) {
	return service.purchases.FindByClient(ctx, id)
}

// GetClientsWithBookCount returns every client with its distinct book count.
func (service *Service) GetClientsWithBookCount(ctx context.Context) ([]*ClientWithBookCount, error) {
	return service.repo.ListWithBookCount(ctx)
}
