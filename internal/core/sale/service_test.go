// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sale

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/bookstore/internal/platform/database/dbtest"
)

type recordingRepository struct {
	Repository
	created []*Sale
}

func (repo *recordingRepository) Create(_ context.Context, sale *Sale) error {
	sale.ID = int64(len(repo.created) + 1)
	repo.created = append(repo.created, sale)
	return nil
}

func TestService_CreateDefaults(t *testing.T) {
	repo := &recordingRepository{}
	service := NewService(repo, dbtest.Logger())

	fixed := time.Date(2025, 1, 2, 3, 4, 5, 0, time.FixedZone("CET", 3600))
	service.now = func() time.Time { return fixed }

	created, err := service.Create(context.Background(), CreateInput{ClientID: 1, BookID: "kindred"})
	require.NoError(t, err)

	assert.Equal(t, DefaultQuantity, created.Quantity)
	assert.True(t, fixed.Equal(created.SaleDate))
	assert.Equal(t, time.UTC, created.SaleDate.Location())
}

func TestService_CreateKeepsExplicitValues(t *testing.T) {
	repo := &recordingRepository{}
	service := NewService(repo, dbtest.Logger())

	quantity := 4
	soldAt := time.Date(2023, 6, 1, 9, 0, 0, 0, time.UTC)

	created, err := service.Create(context.Background(), CreateInput{
		ClientID: 1,
		BookID:   "kindred",
		Quantity: &quantity,
		SaleDate: &soldAt,
	})
	require.NoError(t, err)

	assert.Equal(t, 4, created.Quantity)
	assert.Equal(t, soldAt, created.SaleDate)
}
