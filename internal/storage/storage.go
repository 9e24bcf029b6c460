package storage

import (
	"context"
	"io"
	"time"
)

// Package storage contains the object store abstraction backing the
// document registry. Implementations stream to an S3-compatible backend
// and never touch local disk.

// PutObjectOptions define optional parameters for uploading objects.
// Size should be the exact number of bytes if known; if unknown, set to -1
// and the implementation will buffer/chunk as supported by the backend.
type PutObjectOptions struct {
	Size        int64
	ContentType string
	Metadata    map[string]string
}

// ObjectInfo contains basic information about an object in storage.
// URL is the durable retrieval location issued at write time; the
// registry stores it alongside the metadata row.
type ObjectInfo struct {
	Key          string
	URL          string
	Size         int64
	ETag         string
	ContentType  string
	LastModified time.Time
	Metadata     map[string]string
}

// Storage is the object store consumed by the registry. It covers the
// three external operations the registry does not implement itself:
// blob write with URL issuance, deletion (by key or by the issued URL),
// and content retrieval.
type Storage interface {
	// Put uploads an object under the given key using the provided reader
	// and options, returning its info including the retrieval URL.
	Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error)
	// Get retrieves an object's content as a streaming reader alongside its info.
	Get(ctx context.Context, key string) (io.ReadCloser, ObjectInfo, error)
	// Delete removes an object by key.
	Delete(ctx context.Context, key string) error
	// DeleteByURL removes an object addressed by a URL previously issued
	// by Put. The registry's delete contract hands the URL in from the
	// caller rather than re-deriving it from the metadata store.
	DeleteByURL(ctx context.Context, downloadURL string) error
	// PresignGet returns a time-limited URL that can be used to download
	// the object without credentials.
	PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error)
}
