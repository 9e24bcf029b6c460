package postgres

import (
	"context"
	"database/sql"
	"strconv"
	"strings"

	"capstonehub/internal/model"
	"capstonehub/internal/repository"
)

// DocumentPostgres is a PostgreSQL implementation of repository.DocumentRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type DocumentPostgres struct {
	db *sql.DB
}

// NewDocumentPostgres creates a new DocumentPostgres repository.
func NewDocumentPostgres(db *sql.DB) *DocumentPostgres {
	return &DocumentPostgres{db: db}
}

var _ repository.DocumentRepository = (*DocumentPostgres)(nil)

const documentColumns = `id, name, storage_key, size, content_type, uploaded_at, download_url, COALESCE(category, ''), COALESCE(description, '')`

func scanDocument(row interface{ Scan(...any) error }) (*model.Document, error) {
	var d model.Document
	if err := row.Scan(
		&d.ID,
		&d.Name,
		&d.StorageKey,
		&d.Size,
		&d.ContentType,
		&d.UploadedAt,
		&d.DownloadURL,
		&d.Category,
		&d.Description,
	); err != nil {
		return nil, err
	}
	return &d, nil
}

// Create inserts a new document row and returns the stored record,
// including the DB-assigned id and uploaded_at.
func (r *DocumentPostgres) Create(ctx context.Context, doc *model.Document) (*model.Document, error) {
	const q = `
		INSERT INTO documents (name, storage_key, size, content_type, uploaded_at, download_url, category, description)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), NULLIF($8, ''))
		RETURNING ` + documentColumns
	row := r.db.QueryRowContext(ctx, q,
		doc.Name,
		doc.StorageKey,
		doc.Size,
		doc.ContentType,
		doc.UploadedAt,
		doc.DownloadURL,
		doc.Category,
		doc.Description,
	)
	return scanDocument(row)
}

// FindByID fetches a single document by its ID.
func (r *DocumentPostgres) FindByID(ctx context.Context, id string) (*model.Document, error) {
	const q = `SELECT ` + documentColumns + ` FROM documents WHERE id = $1`
	return scanDocument(r.db.QueryRowContext(ctx, q, id))
}

// ListAll returns every row. No ORDER BY: the registry contract makes no
// ordering promise at the store level and the service sorts the snapshot.
func (r *DocumentPostgres) ListAll(ctx context.Context) ([]model.Document, error) {
	const q = `SELECT ` + documentColumns + ` FROM documents`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Document, 0)
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// UpdateTags mutates only category and/or description. Fields left nil in
// the update are not touched.
func (r *DocumentPostgres) UpdateTags(ctx context.Context, id string, upd model.DocumentUpdate) (int64, error) {
	sets := make([]string, 0, 2)
	args := make([]any, 0, 3)

	if upd.Category != nil {
		args = append(args, *upd.Category)
		sets = append(sets, "category = NULLIF($"+strconv.Itoa(len(args))+", '')")
	}
	if upd.Description != nil {
		args = append(args, *upd.Description)
		sets = append(sets, "description = NULLIF($"+strconv.Itoa(len(args))+", '')")
	}
	if len(sets) == 0 {
		return 0, nil
	}

	args = append(args, id)
	q := "UPDATE documents SET " + strings.Join(sets, ", ") + " WHERE id = $" + strconv.Itoa(len(args))

	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// Delete removes a document by ID. It does not return an error if the row
// does not exist.
func (r *DocumentPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM documents WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	_, _ = res.RowsAffected()
	return nil
}
