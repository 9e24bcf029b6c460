package mocks

import (
	"context"
	"io"

	"capstonehub/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockDocumentService struct {
	mock.Mock
}

func (m *MockDocumentService) Validate(name, contentType string, size int64) error {
	args := m.Called(name, contentType, size)
	return args.Error(0)
}

func (m *MockDocumentService) Upload(ctx context.Context, r io.Reader, name, contentType string, size int64, category, description string) (*model.Document, error) {
	args := m.Called(ctx, r, name, contentType, size, category, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Document), args.Error(1)
}

func (m *MockDocumentService) List(ctx context.Context) ([]model.Document, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Document), args.Error(1)
}

func (m *MockDocumentService) Update(ctx context.Context, id string, upd model.DocumentUpdate) error {
	args := m.Called(ctx, id, upd)
	return args.Error(0)
}

func (m *MockDocumentService) Delete(ctx context.Context, id, downloadURL string) error {
	args := m.Called(ctx, id, downloadURL)
	return args.Error(0)
}

func (m *MockDocumentService) DownloadLink(ctx context.Context, id string) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}
