package model

import "time"

// Document is the registry's canonical record for an uploaded file.
// The metadata row and the stored object exist together (best effort:
// the non-atomic upload/delete sequences can strand an object, which is
// an accepted limitation of the design).
//
// ID is assigned by the metadata store at creation and is the sole key
// for update/delete. Size and ContentType are write-once; only Category
// and Description may change after creation. DownloadURL is stored
// redundantly in the row so reading content never needs a second lookup
// against the object store.
type Document struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Size        int64     `json:"size"`
	ContentType string    `json:"content_type"`
	UploadedAt  time.Time `json:"uploaded_at"`
	DownloadURL string    `json:"download_url"`
	Category    string    `json:"category,omitempty"`
	Description string    `json:"description,omitempty"`

	// StorageKey is the object store key the bytes live under. Internal
	// bookkeeping, not part of the registry contract.
	StorageKey string `json:"-"`
}

// DocumentUpdate carries the only fields the registry permits to change
// after creation. A nil pointer means "leave untouched".
type DocumentUpdate struct {
	Category    *string `json:"category,omitempty"`
	Description *string `json:"description,omitempty"`
}

// Categories is the fixed list the UI offers for tagging uploads. The
// column itself is free text; this list is a presentation constraint.
var Categories = []string{
	"Resume/CV",
	"Certifications",
	"Projects",
	"Research",
	"Portfolio",
	"Other",
}
