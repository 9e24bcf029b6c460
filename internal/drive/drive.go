// Package drive is a read-only projection of one Google Drive folder.
// The provider owns every record; nothing here caches or persists.
package drive

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"
	drivev3 "google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"capstonehub/internal/config"
	"capstonehub/internal/model"
)

// ErrNotFound signals that the provider reports no such file.
var ErrNotFound = errors.New("drive file not found")

// fileFields is the fixed projection requested on every call; anything
// wider would be over-fetching for what the pages display.
const fileFields = "id,name,mimeType,size,modifiedTime,webViewLink,webContentLink,description"

// Service exposes the two read operations of the folder browser.
type Service interface {
	// ListFolder returns the non-trashed contents of folderID, newest
	// modification first. On any provider error the failure is logged and
	// an empty slice returned: callers cannot tell an empty folder from a
	// failed fetch. The pages render both the same way.
	ListFolder(ctx context.Context, folderID string) []model.DriveFile

	// GetFile fetches one file by identifier. A provider 404 maps to
	// ErrNotFound; other provider failures surface as errors.
	GetFile(ctx context.Context, fileID string) (*model.DriveFile, error)
}

type driveService struct {
	svc *drivev3.Service
}

// New builds a Drive client authenticated with the configured service
// account. The outbound HTTP transport is traced.
func New(ctx context.Context, cfg config.DriveConfig) (Service, error) {
	if !cfg.Configured() {
		return nil, errors.New("drive service account credentials are not configured")
	}

	conf := &jwt.Config{
		Email:      cfg.ClientEmail,
		PrivateKey: []byte(cfg.PrivateKey),
		Scopes:     []string{drivev3.DriveReadonlyScope},
		TokenURL:   google.JWTTokenURL,
	}
	client := conf.Client(ctx)
	client.Transport = otelhttp.NewTransport(client.Transport)

	svc, err := drivev3.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("create drive service: %w", err)
	}
	return &driveService{svc: svc}, nil
}

func fromAPI(f *drivev3.File) model.DriveFile {
	size := ""
	if f.Size != 0 {
		size = strconv.FormatInt(f.Size, 10)
	}
	return model.DriveFile{
		ID:             f.Id,
		Name:           f.Name,
		MIMEType:       f.MimeType,
		Size:           size,
		ModifiedTime:   f.ModifiedTime,
		WebViewLink:    f.WebViewLink,
		WebContentLink: f.WebContentLink,
		Description:    f.Description,
	}
}

func (d *driveService) ListFolder(ctx context.Context, folderID string) []model.DriveFile {
	res, err := d.svc.Files.List().
		Context(ctx).
		Q(fmt.Sprintf("'%s' in parents and trashed = false", folderID)).
		Fields(googleapi.Field("files(" + fileFields + ")")).
		OrderBy("modifiedTime desc").
		Do()
	if err != nil {
		log.Printf("drive: list folder %s failed: %v", folderID, err)
		return []model.DriveFile{}
	}

	files := make([]model.DriveFile, 0, len(res.Files))
	for _, f := range res.Files {
		files = append(files, fromAPI(f))
	}
	return files
}

func (d *driveService) GetFile(ctx context.Context, fileID string) (*model.DriveFile, error) {
	res, err := d.svc.Files.Get(fileID).
		Context(ctx).
		Fields(googleapi.Field(fileFields)).
		Do()
	if err != nil {
		var gerr *googleapi.Error
		if errors.As(err, &gerr) && gerr.Code == http.StatusNotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("drive: get file %s: %w", fileID, err)
	}
	file := fromAPI(res)
	return &file, nil
}
