// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package upload

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// maxNameAttempts bounds the numbered variants tried for one upload.
const maxNameAttempts = 100

// Storage writes uploaded files into a single local directory.
type Storage struct {
	dir string
}

// NewStorage ensures dir exists and returns a [Storage] rooted at it.
func NewStorage(dir string) (*Storage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("upload: create directory %s: %w", dir, err)
	}
	return &Storage{dir: dir}, nil
}

// Dir returns the directory files are stored in.
func (s *Storage) Dir() string { return s.dir }

// Save copies src into a new file and returns the name it was stored under.
//
// An existing file is never overwritten: when name is taken, the stem gets a
// numeric suffix ("cover.png", "cover-1.png", "cover-2.png", ...).
func (s *Storage) Save(name string, src io.Reader) (string, error) {
	base := filepath.Base(name)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)

	for attempt := range maxNameAttempts {
		candidate := base
		if attempt > 0 {
			candidate = stem + "-" + strconv.Itoa(attempt) + ext
		}

		file, err := os.OpenFile(filepath.Join(s.dir, candidate), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if errors.Is(err, os.ErrExist) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("upload: create %s: %w", candidate, err)
		}

		return candidate, s.write(file, candidate, src)
	}

	return "", fmt.Errorf("upload: no free name for %s after %d attempts", base, maxNameAttempts)
}

func (s *Storage) write(file *os.File, name string, src io.Reader) error {
	path := file.Name()

	if _, err := io.Copy(file, src); err != nil {
		file.Close()
		os.Remove(path)
		return fmt.Errorf("upload: write %s: %w", name, err)
	}

	if err := file.Close(); err != nil {
		os.Remove(path)
		return fmt.Errorf("upload: close %s: %w", name, err)
	}

	return nil
}
