// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package upload_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/bookstore/internal/upload"
)

func TestGenerateName(t *testing.T) {
	now := time.UnixMilli(1718000000000)

	tests := []struct {
		name     string
		original string
		want     string
	}{
		{"plain", "cover.png", "1718000000000-cover.png"},
		{"whitespace runs", "my  new\tcover.jpg", "1718000000000-my-new-cover.jpg"},
		{"extension kept once", "photo.final.jpeg", "1718000000000-photo.final.jpeg"},
		{"directories stripped", "../../etc/passwd", "1718000000000-passwd"},
		{"windows path", `C:\Users\me\My Pic.gif`, "1718000000000-My-Pic.gif"},
		{"nfc", "cafe\u0301.png", "1718000000000-caf\u00e9.png"},
		{"empty stem", ".png", "1718000000000-file.png"},
		{"empty", "", "1718000000000-file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, upload.GenerateName(tt.original, now))
		})
	}
}
