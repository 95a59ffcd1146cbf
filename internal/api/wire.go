// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api

import (
	"log/slog"

	"github.com/taibuivan/bookstore/internal/core/author"
	"github.com/taibuivan/bookstore/internal/core/book"
	"github.com/taibuivan/bookstore/internal/core/client"
	"github.com/taibuivan/bookstore/internal/core/sale"
	"github.com/taibuivan/bookstore/internal/platform/config"
	"github.com/taibuivan/bookstore/internal/platform/database"
	"github.com/taibuivan/bookstore/internal/platform/metrics"
	"github.com/taibuivan/bookstore/internal/upload"
)

// NewHandlers builds every repository, service and handler on top of db.
func NewHandlers(cfg *config.Config, db *database.DB, collector *metrics.Metrics, log *slog.Logger) (Handlers, error) {
	storage, err := upload.NewStorage(cfg.UploadDir)
	if err != nil {
		return Handlers{}, err
	}

	saleService := sale.NewService(sale.NewSQLRepository(db), log)
	authorService := author.NewService(author.NewSQLRepository(db), log)
	bookService := book.NewService(book.NewSQLRepository(db), log)
	clientService := client.NewService(client.NewSQLRepository(db), saleService, log)

	liveness, readiness := NewHealthHandlers(HealthDependencies{
		DatabaseName:  string(db.Dialect()),
		CheckDatabase: db.Ping,
	}, log)

	return Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Author:    author.NewHandler(authorService),
		Book:      book.NewHandler(bookService),
		Client:    client.NewHandler(clientService),
		Sale:      sale.NewHandler(saleService),
		Upload:    upload.NewHandler(storage, cfg.UploadMaxBytes, collector, log),
	}, nil
}
