package model

// DriveFile is a normalized projection of a Google Drive file object.
// The provider owns the record's lifecycle; this system holds no
// persistent copy, only the per-request projection. Size stays a string
// because that is what the Drive API reports and nothing here does
// arithmetic on it.
type DriveFile struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	MIMEType       string `json:"mime_type"`
	Size           string `json:"size,omitempty"`
	ModifiedTime   string `json:"modified_time"`
	WebViewLink    string `json:"web_view_link"`
	WebContentLink string `json:"web_content_link,omitempty"`
	Description    string `json:"description,omitempty"`
}
