package drive

import "capstonehub/internal/model"

// Google Workspace MIME types previewable through a templated URL rather
// than the generic view link.
const (
	mimeDocument     = "application/vnd.google-apps.document"
	mimeSpreadsheet  = "application/vnd.google-apps.spreadsheet"
	mimePresentation = "application/vnd.google-apps.presentation"
)

// IsWorkspaceFile reports whether the MIME type belongs to Google's own
// office suite.
func IsWorkspaceFile(mimeType string) bool {
	switch mimeType {
	case mimeDocument, mimeSpreadsheet, mimePresentation:
		return true
	}
	return false
}

// EmbedURL maps a file to the URL a page should embed. Workspace types
// get their per-type preview template; everything else falls back to the
// provider's view link. Pure mapping, no network.
func EmbedURL(f model.DriveFile) string {
	switch f.MIMEType {
	case mimeDocument:
		return "https://docs.google.com/document/d/" + f.ID + "/preview"
	case mimeSpreadsheet:
		return "https://docs.google.com/spreadsheets/d/" + f.ID + "/preview"
	case mimePresentation:
		return "https://docs.google.com/presentation/d/" + f.ID + "/preview"
	}
	return f.WebViewLink
}
