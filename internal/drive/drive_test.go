package drive

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	drivev3 "google.golang.org/api/drive/v3"
	"google.golang.org/api/option"

	"capstonehub/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, handler http.Handler) (*driveService, *httptest.Server) {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	svc, err := drivev3.NewService(context.Background(),
		option.WithoutAuthentication(),
		option.WithEndpoint(ts.URL),
	)
	require.NoError(t, err)
	return &driveService{svc: svc}, ts
}

func TestListFolder(t *testing.T) {
	ctx := context.Background()

	t.Run("normalizes provider records", func(t *testing.T) {
		var gotQuery string
		d, _ := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotQuery = r.URL.Query().Get("q")
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"files":[
				{"id":"f1","name":"report.pdf","mimeType":"application/pdf","size":"2048","modifiedTime":"2025-07-01T10:00:00Z","webViewLink":"https://drive.google.com/file/d/f1/view","webContentLink":"https://drive.google.com/uc?id=f1"},
				{"id":"f2","name":"Plan","mimeType":"application/vnd.google-apps.document","modifiedTime":"2025-06-01T10:00:00Z","webViewLink":"https://docs.google.com/document/d/f2/edit","description":"semester plan"}
			]}`))
		}))

		files := d.ListFolder(ctx, "folder-123")

		assert.Equal(t, "'folder-123' in parents and trashed = false", gotQuery)
		require.Len(t, files, 2)
		assert.Equal(t, model.DriveFile{
			ID:             "f1",
			Name:           "report.pdf",
			MIMEType:       "application/pdf",
			Size:           "2048",
			ModifiedTime:   "2025-07-01T10:00:00Z",
			WebViewLink:    "https://drive.google.com/file/d/f1/view",
			WebContentLink: "https://drive.google.com/uc?id=f1",
		}, files[0])
		// Workspace files report no size; the field stays absent.
		assert.Empty(t, files[1].Size)
		assert.Equal(t, "semester plan", files[1].Description)
	})

	t.Run("empty folder", func(t *testing.T) {
		d, _ := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"files":[]}`))
		}))

		files := d.ListFolder(ctx, "empty-folder")
		assert.NotNil(t, files)
		assert.Empty(t, files)
	})

	t.Run("provider error yields empty slice", func(t *testing.T) {
		// Indistinguishable from an empty folder by contract.
		d, _ := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"error":{"code":500}}`, http.StatusInternalServerError)
		}))

		files := d.ListFolder(ctx, "missing-id")
		assert.NotNil(t, files)
		assert.Empty(t, files)
	})
}

func TestGetFile(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		d, _ := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"id":"f1","name":"report.pdf","mimeType":"application/pdf","size":"2048","modifiedTime":"2025-07-01T10:00:00Z","webViewLink":"https://drive.google.com/file/d/f1/view"}`))
		}))

		f, err := d.GetFile(ctx, "f1")
		assert.NoError(t, err)
		require.NotNil(t, f)
		assert.Equal(t, "report.pdf", f.Name)
		assert.Equal(t, "2048", f.Size)
	})

	t.Run("nonexistent file maps to ErrNotFound", func(t *testing.T) {
		d, _ := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"error":{"code":404,"message":"File not found"}}`, http.StatusNotFound)
		}))

		f, err := d.GetFile(ctx, "nonexistent")
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Nil(t, f)
	})

	t.Run("other provider errors surface", func(t *testing.T) {
		d, _ := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"error":{"code":403}}`, http.StatusForbidden)
		}))

		f, err := d.GetFile(ctx, "f1")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrNotFound)
		assert.Nil(t, f)
	})
}

func TestIsWorkspaceFile(t *testing.T) {
	assert.True(t, IsWorkspaceFile("application/vnd.google-apps.document"))
	assert.True(t, IsWorkspaceFile("application/vnd.google-apps.spreadsheet"))
	assert.True(t, IsWorkspaceFile("application/vnd.google-apps.presentation"))
	assert.False(t, IsWorkspaceFile("application/pdf"))
	assert.False(t, IsWorkspaceFile(""))
}

func TestEmbedURL(t *testing.T) {
	tests := []struct {
		name string
		file model.DriveFile
		want string
	}{
		{
			name: "google doc",
			file: model.DriveFile{ID: "d1", MIMEType: "application/vnd.google-apps.document"},
			want: "https://docs.google.com/document/d/d1/preview",
		},
		{
			name: "google sheet",
			file: model.DriveFile{ID: "s1", MIMEType: "application/vnd.google-apps.spreadsheet"},
			want: "https://docs.google.com/spreadsheets/d/s1/preview",
		},
		{
			name: "google slides",
			file: model.DriveFile{ID: "p1", MIMEType: "application/vnd.google-apps.presentation"},
			want: "https://docs.google.com/presentation/d/p1/preview",
		},
		{
			name: "pdf falls back to view link",
			file: model.DriveFile{ID: "f1", MIMEType: "application/pdf", WebViewLink: "https://drive.google.com/file/d/f1/view"},
			want: "https://drive.google.com/file/d/f1/view",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EmbedURL(tt.file))
		})
	}
}
