// Package repository contains data access layer abstractions.
// Implementations live in subpackages (e.g., postgres) inside this directory.
package repository

import (
	"context"

	"capstonehub/internal/model"
)

// DocumentRepository defines metadata-store access for documents using
// SQL queries only. No business logic here, strictly persistence.
type DocumentRepository interface {
	// Create inserts a new document row. The store assigns the ID and the
	// upload timestamp defaults; the returned record carries them.
	Create(ctx context.Context, doc *model.Document) (*model.Document, error)

	// FindByID returns a document by its ID.
	FindByID(ctx context.Context, id string) (*model.Document, error)

	// ListAll returns every document row as a snapshot. The registry
	// contract is a full, unpaginated read with no ordering guarantee;
	// callers sort the result themselves.
	ListAll(ctx context.Context) ([]model.Document, error)

	// UpdateTags mutates category and/or description for a row. All other
	// columns are immutable post-creation by contract. Returns the number
	// of rows affected so callers can distinguish a missing ID.
	UpdateTags(ctx context.Context, id string, upd model.DocumentUpdate) (int64, error)

	// Delete removes a document by ID. It returns nil if the row was
	// deleted or did not exist.
	Delete(ctx context.Context, id string) error
}
