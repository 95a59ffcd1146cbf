// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sale

import (
	"context"
	"log/slog"
	"time"

	"github.com/taibuivan/bookstore/pkg/pointer"
)

// Service implements the sale use cases.
type Service struct {
	repo   Repository
	logger *slog.Logger
	now    func() time.Time
}

// NewService constructs a new [Service].
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

// Create records a sale. Missing clients or books are rejected by the store's
// foreign keys as UNPROCESSABLE.
func (service *Service) Create(ctx context.Context, input CreateInput) (*Sale, error) {
	sale := &Sale{
		ClientID: input.ClientID,
		BookID:   input.BookID,
		Quantity: pointer.Fallback(input.Quantity, DefaultQuantity),
		SaleDate: pointer.Fallback(input.SaleDate, service.now()).UTC(),
	}

	if err := service.repo.Create(ctx, sale); err != nil {
		return nil, err
	}

	service.logger.Info("sale_created",
		slog.Int64("sale_id", sale.ID),
		slog.Int64("client_id", sale.ClientID),
		slog.String("book_id", sale.BookID),
		slog.Int("quantity", sale.Quantity),
	)
	return sale, nil
}

// FindAll returns every sale with its client and book, oldest first.
func (service *Service) FindAll(ctx context.Context) ([]*Sale, error) {
	return service.repo.List(ctx)
}

// FindOne returns the sale with its client and book, or NOT_FOUND.
func (service *Service) FindOne(ctx context.Context, id int64) (*Sale, error) {
	return service.repo.Get(ctx, id)
}

// FindByClient returns the client's sales, each with its book and author.
// An unknown client has no sales.
func (service *Service) FindByClient(ctx context.Context, clientID int64) ([]*Sale, error) {
	return service.repo.ListByClient(ctx, clientID)
}

// FindByBook returns the book's sales, each with its client.
func (service *Service) FindByBook(ctx context.Context, bookID string) ([]*Sale, error) {
	return service.repo.ListByBook(ctx, bookID)
}

// Remove deletes the sale. Unknown ids succeed.
func (service *Service) Remove(ctx context.Context, id int64) error {
	if err := service.repo.Delete(ctx, id); err != nil {
		return err
	}

	service.logger.Warn("sale_deleted", slog.Int64("sale_id", id))
	return nil
}
