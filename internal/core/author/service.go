// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package author

import (
	"context"
	"log/slog"

	"github.com/taibuivan/bookstore/pkg/uuidv7"
)

// # Service Layer

// Service orchestrates the business rules of the author domain.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a new [Service] with its repository.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// # Author Lookups

// ListAuthors returns every author with its statistics.
func (service *Service) ListAuthors(ctx context.Context) ([]*AuthorWithStats, error) {
	return service.repo.ListAuthors(ctx)
}

/*
GetAuthor returns one author, its statistics and its books.

Returns:
  - *AuthorDetail: The hydrated author view
  - error: NOT_FOUND if no author has this id
*/
func (service *Service) GetAuthor(ctx context.Context, id string) (*AuthorDetail, error) {
	stats, err := service.repo.GetAuthor(ctx, id)
	if err != nil {
		return nil, err
	}

	books, err := service.repo.ListBooks(ctx, id)
	if err != nil {
		return nil, err
	}

	return &AuthorDetail{AuthorWithStats: *stats, Books: books}, nil
}

// # Author Management

/*
CreateAuthor generates a UUIDv7 identity and persists the author.

The response carries no statistics: they are computed on read only.
*/
func (service *Service) CreateAuthor(ctx context.Context, input CreateInput) (*Author, error) {
	author := &Author{
		ID:        uuidv7.New(),
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Picture:   input.Picture,
	}

	if err := service.repo.CreateAuthor(ctx, author); err != nil {
		return nil, err
	}

	service.logger.Info("author_created", slog.String("author_id", author.ID))
	return author, nil
}

// UpdateAuthor applies a partial update. Unknown ids yield NOT_FOUND.
func (service *Service) UpdateAuthor(ctx context.Context, id string, patch UpdateInput) (*Author, error) {
	author, err := service.repo.UpdateAuthor(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	service.logger.Info("author_updated", slog.String("author_id", id), slog.Bool("noop", patch.IsEmpty()))
	return author, nil
}

// DeleteAuthor removes the author. Deleting an unknown id succeeds.
func (service *Service) DeleteAuthor(ctx context.Context, id string) error {
	if err := service.repo.DeleteAuthor(ctx, id); err != nil {
		return err
	}

	service.logger.Warn("author_deleted", slog.String("author_id", id))
	return nil
}
