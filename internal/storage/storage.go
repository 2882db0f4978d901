package storage

import (
	"context"
	"io"
	"time"
)

// Package storage holds the object-store abstraction for published guide
// artifacts (Markdown snapshots and rendered HTML). Implementations stream;
// nothing is spooled to local disk.

// PutOptions carries optional upload parameters. Size must be the exact byte
// count when known; -1 lets the backend chunk as it sees fit. ContentType and
// Metadata are optional.
type PutOptions struct {
	Size        int64
	ContentType string
	Metadata    map[string]string
}

// ObjectInfo describes a stored artifact.
type ObjectInfo struct {
	Key          string
	Size         int64
	ETag         string
	ContentType  string
	LastModified time.Time
	Metadata     map[string]string
}

// Storage is an S3-compatible object store client for guide artifacts.
type Storage interface {
	// Put uploads an object under key from the reader.
	Put(ctx context.Context, key string, r io.Reader, opt PutOptions) (ObjectInfo, error)
	// Get returns an object's content stream along with its info.
	Get(ctx context.Context, key string) (io.ReadCloser, ObjectInfo, error)
	// Delete removes an object by key.
	Delete(ctx context.Context, key string) error
	// PresignGet returns a time-limited download URL requiring no credentials.
	PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error)
}
