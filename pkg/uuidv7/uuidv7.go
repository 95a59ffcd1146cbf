// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package uuidv7 generates the time-ordered string keys of authors and books.
package uuidv7

import "github.com/google/uuid"

// New returns a fresh UUIDv7 in canonical string form.
//
// It panics only when the OS random source fails.
func New() string {
	return uuid.Must(uuid.NewV7()).String()
}
