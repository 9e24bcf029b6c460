package mocks

import (
	"context"

	"capstonehub/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockDriveService struct {
	mock.Mock
}

func (m *MockDriveService) ListFolder(ctx context.Context, folderID string) []model.DriveFile {
	args := m.Called(ctx, folderID)
	return args.Get(0).([]model.DriveFile)
}

func (m *MockDriveService) GetFile(ctx context.Context, fileID string) (*model.DriveFile, error) {
	args := m.Called(ctx, fileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DriveFile), args.Error(1)
}
