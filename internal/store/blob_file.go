// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/veilvault/veilvault/internal/crypto"
	"github.com/veilvault/veilvault/internal/logger"
)

// FileBlobStore is a content-addressed blob store on the local filesystem,
// one file per bundle, sharded into two-character subdirectories by locator
// prefix. The gateway serves uploads and downloads out of it.
//
// Writes go through a temp file and an atomic rename, so a crash mid-upload
// can never leave a partial bundle behind a valid locator.
type FileBlobStore struct {
	dir    string
	logger *logger.Logger
}

// NewFileBlobStore creates dir (and parents) if needed and returns a store
// rooted there.
func NewFileBlobStore(dir string, log *logger.Logger) (*FileBlobStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("blob store directory is required")
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create blob store dir: %w", err)
	}
	return &FileBlobStore{dir: dir, logger: log}, nil
}

// Put stores blob under its content address and returns the locator. Storing
// the same bytes twice is a no-op yielding the same locator.
func (s *FileBlobStore) Put(ctx context.Context, blob []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	locator := hex.EncodeToString(crypto.BlobAddress(blob))
	path, err := s.path(locator)
	if err != nil {
		return "", err
	}

	if _, statErr := os.Stat(path); statErr == nil {
		// content-addressed: same locator means same bytes
		return locator, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return "", fmt.Errorf("create blob shard dir: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "blob-*")
	if err != nil {
		return "", fmt.Errorf("create blob temp file: %w", err)
	}
	if _, err := tmp.Write(blob); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("write blob: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("close blob temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("publish blob: %w", err)
	}

	s.logger.Debug().Str("locator", locator).Int("size", len(blob)).Msg("blob stored")
	return locator, nil
}

// Get returns the bytes behind locator, or [ErrBlobNotFound].
func (s *FileBlobStore) Get(ctx context.Context, locator string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path, err := s.path(locator)
	if err != nil {
		return nil, err
	}

	blob, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, ErrBlobNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read blob: %w", err)
	}

	// refuse to serve corrupted bytes: the locator must still match
	if hex.EncodeToString(crypto.BlobAddress(blob)) != locator {
		s.logger.Error().Str("locator", locator).Msg("stored blob no longer matches its content address")
		return nil, fmt.Errorf("blob at %s failed content-address check", locator)
	}

	return blob, nil
}

// path validates the locator shape and maps it into the sharded layout. A
// malformed locator is treated as not found rather than as a path, which
// keeps traversal attempts out of the store.
func (s *FileBlobStore) path(locator string) (string, error) {
	raw, err := hex.DecodeString(locator)
	if err != nil || len(raw) != crypto.HashSize {
		return "", ErrBlobNotFound
	}
	return filepath.Join(s.dir, locator[:2], locator), nil
}
