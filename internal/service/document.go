package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log"
	"sort"
	"time"

	"capstonehub/internal/model"
	"capstonehub/internal/repository"
	"capstonehub/internal/storage"
)

var (
	ErrIDRequired          = errors.New("id is required")
	ErrNotFound            = errors.New("document not found")
	ErrReaderNil           = errors.New("reader is nil")
	ErrDownloadURLRequired = errors.New("download url is required")

	// Validation errors carry the human-readable reason shown to uploaders.
	ErrFileTooLarge    = errors.New("file size must be less than 10MB")
	ErrUnsupportedType = errors.New("file type not supported; upload PDF, Word, text, or image files")
)

// MaxUploadSize is the registry's fixed size ceiling.
const MaxUploadSize = 10 << 20 // 10 MiB

// allowedContentTypes is the upload allow-list. The declared type is
// trusted as-is; no content sniffing happens anywhere in the registry,
// so a mislabeled file passes validation. Known limitation.
var allowedContentTypes = map[string]struct{}{
	"application/pdf":    {},
	"application/msword": {},
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": {},
	"text/plain": {},
	"image/jpeg": {},
	"image/png":  {},
	"image/gif":  {},
}

// DocumentService defines the registry use cases: accept a file plus
// optional tags, persist bytes and metadata durably, and later allow
// enumeration, retagging, and removal.
type DocumentService interface {
	// Validate checks the declared size and content type against the
	// registry's fixed limits. It runs before any network call.
	Validate(name, contentType string, size int64) error

	// Upload writes the bytes to the object store, then the metadata row.
	// If the metadata write fails the stored object is left in place with
	// no record pointing at it; there is no compensating delete and no
	// reconciliation sweep.
	Upload(ctx context.Context, r io.Reader, name, contentType string, size int64, category, description string) (*model.Document, error)

	// List returns a full snapshot of all records, newest first.
	List(ctx context.Context) ([]model.Document, error)

	// Update mutates category and/or description only.
	Update(ctx context.Context, id string, upd model.DocumentUpdate) error

	// Delete removes the metadata row first, then the object addressed by
	// the caller-supplied download URL. The URL is not re-derived from the
	// metadata store.
	Delete(ctx context.Context, id, downloadURL string) error

	// DownloadLink returns a short-lived presigned URL for the record's
	// stored bytes.
	DownloadLink(ctx context.Context, id string) (string, error)
}

// documentService is a concrete implementation of DocumentService.
type documentService struct {
	store storage.Storage
	repo  repository.DocumentRepository
	now   func() time.Time
}

// NewDocumentService constructs a new DocumentService.
func NewDocumentService(store storage.Storage, repo repository.DocumentRepository) DocumentService {
	return &documentService{store: store, repo: repo, now: time.Now}
}

func (s *documentService) Validate(name, contentType string, size int64) error {
	if size >= MaxUploadSize {
		return ErrFileTooLarge
	}
	if _, ok := allowedContentTypes[contentType]; !ok {
		return ErrUnsupportedType
	}
	return nil
}

func (s *documentService) Upload(ctx context.Context, r io.Reader, name, contentType string, size int64, category, description string) (*model.Document, error) {
	if r == nil {
		return nil, ErrReaderNil
	}
	if err := s.Validate(name, contentType, size); err != nil {
		return nil, err
	}

	// Wall-clock millisecond prefix disambiguates same-name uploads.
	// Probabilistic, not guaranteed: two uploads in one millisecond collide.
	uploadedAt := s.now().UTC()
	key := fmt.Sprintf("documents/%d_%s", uploadedAt.UnixMilli(), name)

	objInfo, err := s.store.Put(ctx, key, r, storage.PutObjectOptions{
		Size:        size,
		ContentType: contentType,
		Metadata: map[string]string{
			"original-filename": name,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("upload to storage: %w", err)
	}

	doc := &model.Document{
		Name:        name,
		StorageKey:  objInfo.Key,
		Size:        objInfo.Size,
		ContentType: contentType,
		UploadedAt:  uploadedAt,
		DownloadURL: objInfo.URL,
		Category:    category,
		Description: description,
	}
	stored, err := s.repo.Create(ctx, doc)
	if err != nil {
		// The object stays behind with no record pointing at it. No
		// compensating delete: the orphan risk is an accepted limitation,
		// so name the key for manual cleanup.
		log.Printf("document metadata save failed, object %q orphaned: %v", key, err)
		return nil, fmt.Errorf("save metadata: %w", err)
	}
	return stored, nil
}

// List returns the snapshot sorted newest-first. The store itself makes
// no ordering promise; the sort happens here.
func (s *documentService) List(ctx context.Context) ([]model.Document, error) {
	items, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].UploadedAt.After(items[j].UploadedAt)
	})
	return items, nil
}

func (s *documentService) Update(ctx context.Context, id string, upd model.DocumentUpdate) error {
	if id == "" {
		return ErrIDRequired
	}
	if upd.Category == nil && upd.Description == nil {
		return nil
	}
	n, err := s.repo.UpdateTags(ctx, id, upd)
	if err != nil {
		return fmt.Errorf("update document: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the metadata row, then the object. This is the inverse
// of Upload's ordering: a failed object delete leaves a record-less
// object in storage, which is preserved behavior.
func (s *documentService) Delete(ctx context.Context, id, downloadURL string) error {
	if id == "" {
		return ErrIDRequired
	}
	if downloadURL == "" {
		return ErrDownloadURLRequired
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete metadata: %w", err)
	}
	if err := s.store.DeleteByURL(ctx, downloadURL); err != nil {
		log.Printf("document %s metadata removed but object delete failed, object orphaned: %v", id, err)
		return fmt.Errorf("delete object: %w", err)
	}
	return nil
}

func (s *documentService) DownloadLink(ctx context.Context, id string) (string, error) {
	if id == "" {
		return "", ErrIDRequired
	}
	doc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", err
	}
	return s.store.PresignGet(ctx, doc.StorageKey, 15*time.Minute)
}
