// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package book

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/taibuivan/bookstore/internal/platform/apperr"
	"github.com/taibuivan/bookstore/pkg/uuidv7"
)

// # Service Layer

// Service orchestrates the business rules of the book catalogue.
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

// # Book Lookups

/*
ListBooks returns one page of books with their authors.

Returns:
  - []*Book: The requested page, ordered by params.Sort
  - int: Total number of books, independent of the page
  - error: Database retrieval failures
*/
func (service *Service) ListBooks(ctx context.Context, params ListParams) ([]*Book, int, error) {
	return service.repo.List(ctx, params)
}

// ListBooksWithClientCount returns every book with its distinct client count.
func (service *Service) ListBooksWithClientCount(ctx context.Context) ([]*BookWithClientCount, error) {
	return service.repo.ListWithClientCount(ctx)
}

// GetBook returns the book with its author, or found=false.
func (service *Service) GetBook(ctx context.Context, id string) (*Book, bool, error) {
	return service.repo.Get(ctx, id)
}

// # Book Management

/*
CreateBook persists a new book under an existing author.

Description: The author is resolved first; a missing author is reported as
UNPROCESSABLE without touching the books table. The inserted row is then
re-read so the response carries the embedded author.

Returns:
  - *Book: The created book joined with its author
  - error: UNPROCESSABLE if the author does not exist
*/
func (service *Service) CreateBook(ctx context.Context, input CreateInput) (*Book, error) {
	if err := service.requireAuthor(ctx, input.AuthorID); err != nil {
		return nil, err
	}

	book := &Book{
		ID:            uuidv7.New(),
		Title:         input.Title,
		YearPublished: input.YearPublished,
		Picture:       input.Picture,
		AuthorID:      input.AuthorID,
	}

	if err := service.repo.Create(ctx, book); err != nil {
		return nil, err
	}

	created, found, err := service.repo.Get(ctx, book.ID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apperr.Internal(fmt.Errorf("book %s vanished after insert", book.ID))
	}

	service.logger.Info("book_created",
		slog.String("book_id", created.ID),
		slog.String("author_id", created.AuthorID),
	)
	return created, nil
}

/*
UpdateBook applies a partial update and re-reads the book.

Returns:
  - *Book: The updated book, nil when not found
  - bool: false if no book has this id
  - error: UNPROCESSABLE if the patch moves the book to a missing author
*/
func (service *Service) UpdateBook(ctx context.Context, id string, patch UpdateInput) (*Book, bool, error) {
	if patch.AuthorID != nil {
		if err := service.requireAuthor(ctx, *patch.AuthorID); err != nil {
			return nil, false, err
		}
	}

	found, err := service.repo.Update(ctx, id, patch)
	if err != nil || !found {
		return nil, found, err
	}

	book, found, err := service.repo.Get(ctx, id)
	if err != nil || !found {
		return nil, found, err
	}

	service.logger.Info("book_updated", slog.String("book_id", id))
	return book, true, nil
}

// DeleteBook removes one book and, by cascade, its sales.
func (service *Service) DeleteBook(ctx context.Context, id string) error {
	if err := service.repo.Delete(ctx, id); err != nil {
		return err
	}

	service.logger.Warn("book_deleted", slog.String("book_id", id))
	return nil
}

// DeleteBooks removes every listed book atomically.
func (service *Service) DeleteBooks(ctx context.Context, ids []string) error {
	if err := service.repo.DeleteMany(ctx, ids); err != nil {
		return err
	}

	service.logger.Warn("books_deleted", slog.Int("count", len(ids)))
	return nil
}

func (service *Service) requireAuthor(ctx context.Context, authorID string) error {
	exists, err := service.repo.AuthorExists(ctx, authorID)
	if err != nil {
		return err
	}
	if !exists {
		return apperr.Unprocessable(fmt.Sprintf("Author %s does not exist", authorID))
	}
	return nil
}
