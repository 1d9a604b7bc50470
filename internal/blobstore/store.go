// Package blobstore keeps original uploaded documents on disk, keyed by the
// same content hash as the fingerprint cache. Files are sharded by the first
// two hash characters to keep directories small.
package blobstore

import (
	"fmt"
	"os"
	"path/filepath"
)

// Store is a local-directory blob store.
type Store struct {
	dir string
}

// NewStore creates the backing directory if needed.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create blob dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Put writes the document bytes under its content hash. Rewriting the same
// hash is a no-op by construction: identical hash means identical bytes.
func (s *Store) Put(hash string, fileBytes []byte) error {
	shard := filepath.Join(s.dir, hash[:2])
	if err := os.MkdirAll(shard, 0o755); err != nil {
		return fmt.Errorf("create blob shard: %w", err)
	}
	if err := os.WriteFile(filepath.Join(shard, hash+".pdf"), fileBytes, 0o644); err != nil {
		return fmt.Errorf("write blob: %w", err)
	}
	return nil
}

// Get returns the stored bytes, or (nil, nil) when the hash is unknown.
func (s *Store) Get(hash string) ([]byte, error) {
	path := filepath.Join(s.dir, hash[:2], hash+".pdf")
	fileBytes, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read blob: %w", err)
	}
	return fileBytes, nil
}
