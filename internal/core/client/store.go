// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package client

import "context"

// Repository defines the data access contract for clients.
type Repository interface {
	Create(ctx context.Context, client *Client) error
	List(ctx context.Context) ([]*Client, error)
	ListWithBookCount(ctx context.Context) ([]*ClientWithBookCount, error)

	// Get returns the client or NOT_FOUND.
	Get(ctx context.Context, id int64) (*Client, error)

	// Update applies the non-nil fields of patch, then re-reads; NOT_FOUND if absent.
	Update(ctx context.Context, id int64, patch UpdateInput) (*Client, error)

	// Delete removes the client and, by cascade, its sales.
	Delete(ctx context.Context, id int64) error
}
