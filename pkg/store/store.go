package store

import (
	"context"
	"io"
	"path"
	"strings"
)

// Object describes a stored artifact.
type Object struct {
	Key         string
	Size        int64
	ContentType string
	Location    string // filesystem path or s3:// URI
}

// Storage is implemented by every artifact backend.
type Storage interface {
	// Put writes r under key, replacing any existing object.
	Put(ctx context.Context, key string, r io.Reader, contentType string) (*Object, error)
	// Get reads the full content of key.
	Get(ctx context.Context, key string) ([]byte, error)
	// Exists reports whether key exists.
	Exists(ctx context.Context, key string) bool
	// Delete removes key.
	Delete(ctx context.Context, key string) error
	// List returns the objects directly under prefix (non-recursive).
	List(ctx context.Context, prefix string) ([]Object, error)
}

// cleanKey normalizes a key and rejects keys that leave the storage root.
func cleanKey(key string) (string, error) {
	key = strings.TrimPrefix(strings.ReplaceAll(key, "\\", "/"), "/")
	if key == "" {
		return "", nil
	}
	cleaned := path.Clean(key)
	if cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return "", ErrInvalidPath
	}
	if cleaned == "." {
		return "", nil
	}
	return cleaned, nil
}
