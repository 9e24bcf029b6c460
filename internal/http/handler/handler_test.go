package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"capstonehub/internal/drive"
	driveMocks "capstonehub/internal/drive/mocks"
	"capstonehub/internal/model"
	"capstonehub/internal/service"
	serviceMocks "capstonehub/internal/service/mocks"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestHealthCheck(t *testing.T) {
	db, dbMock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	app := fiber.New()
	app.Get("/health", HealthCheck(db))

	t.Run("healthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(nil)

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]string
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "healthy", body["status"])
	})

	t.Run("unhealthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(errors.New("db error"))

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "SERVICE_UNAVAILABLE", body.Error.Code)
	})
}

func TestLivenessProbe(t *testing.T) {
	app := fiber.New()
	app.Get("/healthz", LivenessProbe())

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	resp, _ := app.Test(req)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestListDocuments(t *testing.T) {
	mockSvc := new(serviceMocks.MockDocumentService)
	app := fiber.New()
	app.Get("/documents", ListDocuments(mockSvc))

	t.Run("success", func(t *testing.T) {
		docs := []model.Document{{ID: uuid.New().String(), Name: "notes.txt", Size: 5120}}
		mockSvc.On("List", mock.Anything).Return(docs, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/documents", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var result []model.Document
		json.NewDecoder(resp.Body).Decode(&result)
		require.Len(t, result, 1)
		assert.Equal(t, "notes.txt", result[0].Name)
		mockSvc.AssertExpectations(t)
	})

	t.Run("service error", func(t *testing.T) {
		mockSvc.On("List", mock.Anything).Return(nil, errors.New("service error")).Once()

		req := httptest.NewRequest(http.MethodGet, "/documents", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})
}

func multipartUpload(t *testing.T, filename, content string, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	buf := new(bytes.Buffer)
	w := multipart.NewWriter(buf)
	fw, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write([]byte(content))
	require.NoError(t, err)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	require.NoError(t, w.Close())
	return buf, w.FormDataContentType()
}

func TestUploadDocument(t *testing.T) {
	mockSvc := new(serviceMocks.MockDocumentService)
	app := fiber.New()
	app.Post("/documents", UploadDocument(mockSvc))

	t.Run("success with tags", func(t *testing.T) {
		expected := &model.Document{ID: uuid.New().String(), Name: "notes.txt", Category: "Research"}
		mockSvc.On("Upload", mock.Anything, mock.Anything, "notes.txt", mock.Anything, int64(5), "Research", "").
			Return(expected, nil).Once()

		body, ct := multipartUpload(t, "notes.txt", "hello", map[string]string{"category": "Research"})
		req := httptest.NewRequest(http.MethodPost, "/documents", body)
		req.Header.Set("Content-Type", ct)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var doc model.Document
		json.NewDecoder(resp.Body).Decode(&doc)
		assert.Equal(t, expected.ID, doc.ID)
		assert.Equal(t, "Research", doc.Category)
		mockSvc.AssertExpectations(t)
	})

	t.Run("missing file", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/documents", strings.NewReader("{}"))
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "FILE_REQUIRED", body.Error.Code)
	})

	t.Run("oversized file", func(t *testing.T) {
		mockSvc.On("Upload", mock.Anything, mock.Anything, "huge.pdf", mock.Anything, mock.Anything, "", "").
			Return(nil, service.ErrFileTooLarge).Once()

		body, ct := multipartUpload(t, "huge.pdf", "x", nil)
		req := httptest.NewRequest(http.MethodPost, "/documents", body)
		req.Header.Set("Content-Type", ct)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		var errBody errorPayload
		json.NewDecoder(resp.Body).Decode(&errBody)
		assert.Equal(t, "FILE_TOO_LARGE", errBody.Error.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("unsupported type", func(t *testing.T) {
		mockSvc.On("Upload", mock.Anything, mock.Anything, "tool.exe", mock.Anything, mock.Anything, "", "").
			Return(nil, service.ErrUnsupportedType).Once()

		body, ct := multipartUpload(t, "tool.exe", "x", nil)
		req := httptest.NewRequest(http.MethodPost, "/documents", body)
		req.Header.Set("Content-Type", ct)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		var errBody errorPayload
		json.NewDecoder(resp.Body).Decode(&errBody)
		assert.Equal(t, "UNSUPPORTED_TYPE", errBody.Error.Code)
		mockSvc.AssertExpectations(t)
	})
}

func TestUpdateDocument(t *testing.T) {
	mockSvc := new(serviceMocks.MockDocumentService)
	app := fiber.New()
	app.Patch("/documents/:id", UpdateDocument(mockSvc))

	id := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		mockSvc.On("Update", mock.Anything, id, mock.MatchedBy(func(upd model.DocumentUpdate) bool {
			return upd.Category != nil && *upd.Category == "Projects" && upd.Description == nil
		})).Return(nil).Once()

		req := httptest.NewRequest(http.MethodPatch, "/documents/"+id, strings.NewReader(`{"category":"Projects"}`))
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("invalid id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPatch, "/documents/not-a-uuid", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("unknown id", func(t *testing.T) {
		mockSvc.On("Update", mock.Anything, id, mock.Anything).Return(service.ErrNotFound).Once()

		req := httptest.NewRequest(http.MethodPatch, "/documents/"+id, strings.NewReader(`{"description":"x"}`))
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})
}

func TestDeleteDocument(t *testing.T) {
	mockSvc := new(serviceMocks.MockDocumentService)
	app := fiber.New()
	app.Delete("/documents/:id", DeleteDocument(mockSvc))

	id := uuid.New().String()
	downloadURL := "http://localhost:9000/documents/documents/1_cv.pdf"

	t.Run("success", func(t *testing.T) {
		mockSvc.On("Delete", mock.Anything, id, downloadURL).Return(nil).Once()

		req := httptest.NewRequest(http.MethodDelete, "/documents/"+id+"?url="+downloadURL, nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("missing url", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/documents/"+id, nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "DOWNLOAD_URL_REQUIRED", body.Error.Code)
	})

	t.Run("invalid id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/documents/nope?url="+downloadURL, nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestDownloadDocument(t *testing.T) {
	mockSvc := new(serviceMocks.MockDocumentService)
	app := fiber.New()
	app.Get("/documents/:id/download", DownloadDocument(mockSvc))

	id := uuid.New().String()

	t.Run("redirects to presigned url", func(t *testing.T) {
		mockSvc.On("DownloadLink", mock.Anything, id).Return("http://store/presigned", nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/documents/"+id+"/download", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusFound, resp.StatusCode)
		assert.Equal(t, "http://store/presigned", resp.Header.Get("Location"))
		mockSvc.AssertExpectations(t)
	})

	t.Run("unknown id", func(t *testing.T) {
		mockSvc.On("DownloadLink", mock.Anything, id).Return("", service.ErrNotFound).Once()

		req := httptest.NewRequest(http.MethodGet, "/documents/"+id+"/download", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})
}

func TestDocumentCategories(t *testing.T) {
	app := fiber.New()
	app.Get("/documents/categories", DocumentCategories())

	req := httptest.NewRequest(http.MethodGet, "/documents/categories", nil)
	resp, _ := app.Test(req)

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var cats []string
	json.NewDecoder(resp.Body).Decode(&cats)
	assert.Contains(t, cats, "Research")
	assert.Contains(t, cats, "Resume/CV")
}

func TestListDriveFiles(t *testing.T) {
	t.Run("unconfigured service", func(t *testing.T) {
		app := fiber.New()
		app.Get("/drive/files", ListDriveFiles(nil, "folder-123"))

		req := httptest.NewRequest(http.MethodGet, "/drive/files", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "DRIVE_NOT_CONFIGURED", body.Error.Code)
	})

	t.Run("missing folder id", func(t *testing.T) {
		mockDrive := new(driveMocks.MockDriveService)
		app := fiber.New()
		app.Get("/drive/files", ListDriveFiles(mockDrive, ""))

		req := httptest.NewRequest(http.MethodGet, "/drive/files", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	})

	t.Run("lists folder contents", func(t *testing.T) {
		mockDrive := new(driveMocks.MockDriveService)
		mockDrive.On("ListFolder", mock.Anything, "folder-123").
			Return([]model.DriveFile{{ID: "f1", Name: "report.pdf"}}).Once()

		app := fiber.New()
		app.Get("/drive/files", ListDriveFiles(mockDrive, "folder-123"))

		req := httptest.NewRequest(http.MethodGet, "/drive/files", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var files []model.DriveFile
		json.NewDecoder(resp.Body).Decode(&files)
		require.Len(t, files, 1)
		assert.Equal(t, "report.pdf", files[0].Name)
		mockDrive.AssertExpectations(t)
	})

	t.Run("provider failure still answers 200 with empty array", func(t *testing.T) {
		mockDrive := new(driveMocks.MockDriveService)
		mockDrive.On("ListFolder", mock.Anything, "folder-123").
			Return([]model.DriveFile{}).Once()

		app := fiber.New()
		app.Get("/drive/files", ListDriveFiles(mockDrive, "folder-123"))

		req := httptest.NewRequest(http.MethodGet, "/drive/files", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var files []model.DriveFile
		json.NewDecoder(resp.Body).Decode(&files)
		assert.Empty(t, files)
		mockDrive.AssertExpectations(t)
	})
}

func TestGetDriveFile(t *testing.T) {
	t.Run("found, with embed url", func(t *testing.T) {
		mockDrive := new(driveMocks.MockDriveService)
		mockDrive.On("GetFile", mock.Anything, "d1").
			Return(&model.DriveFile{ID: "d1", Name: "Plan", MIMEType: "application/vnd.google-apps.document"}, nil).Once()

		app := fiber.New()
		app.Get("/drive/files/:fileId", GetDriveFile(mockDrive))

		req := httptest.NewRequest(http.MethodGet, "/drive/files/d1", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var body driveFileResponse
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "Plan", body.Name)
		assert.Equal(t, "https://docs.google.com/document/d/d1/preview", body.EmbedURL)
		mockDrive.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		mockDrive := new(driveMocks.MockDriveService)
		mockDrive.On("GetFile", mock.Anything, "nonexistent").
			Return(nil, drive.ErrNotFound).Once()

		app := fiber.New()
		app.Get("/drive/files/:fileId", GetDriveFile(mockDrive))

		req := httptest.NewRequest(http.MethodGet, "/drive/files/nonexistent", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		mockDrive.AssertExpectations(t)
	})

	t.Run("provider error", func(t *testing.T) {
		mockDrive := new(driveMocks.MockDriveService)
		mockDrive.On("GetFile", mock.Anything, "d1").
			Return(nil, errors.New("provider down")).Once()

		app := fiber.New()
		app.Get("/drive/files/:fileId", GetDriveFile(mockDrive))

		req := httptest.NewRequest(http.MethodGet, "/drive/files/d1", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		mockDrive.AssertExpectations(t)
	})
}

func TestAssignments(t *testing.T) {
	app := fiber.New()
	app.Get("/assignments", ListAssignments())
	app.Get("/assignments/:id", GetAssignment())

	t.Run("list", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/assignments", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var items []model.Assignment
		json.NewDecoder(resp.Body).Decode(&items)
		assert.NotEmpty(t, items)
	})

	t.Run("completed detail", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/assignments/assignment-1", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("incomplete detail is 404", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/assignments/assignment-14", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestSubmitContact(t *testing.T) {
	app := fiber.New()
	app.Post("/contact", SubmitContact())

	t.Run("accepts and discards", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(`{"name":"A","message":"hi"}`))
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var body map[string]string
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "Form submitted successfully", body["message"])
	})

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(`{not json`))
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	})
}
