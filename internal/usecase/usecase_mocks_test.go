package usecase_test

import (
	"context"
	"os"
	"testing"

	"skill-extraction-backend/internal/domain"
	"skill-extraction-backend/pkg/analysis"
	"skill-extraction-backend/pkg/logger"

	"github.com/stretchr/testify/mock"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

// Mock Repositories

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockCvRepo struct {
	mock.Mock
}

func (m *MockCvRepo) Create(ctx context.Context, upload *domain.CvUpload) (*domain.CvUpload, error) {
	args := m.Called(ctx, upload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CvUpload), args.Error(1)
}

func (m *MockCvRepo) GetByID(ctx context.Context, id, userID int64) (*domain.CvUpload, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CvUpload), args.Error(1)
}

func (m *MockCvRepo) ListByUser(ctx context.Context, userID int64, limit int) ([]domain.CvUpload, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CvUpload), args.Error(1)
}

func (m *MockCvRepo) SetResult(ctx context.Context, id int64, status domain.UploadStatus, skills []string, summary, payload string) error {
	return m.Called(ctx, id, status, skills, summary, payload).Error(0)
}

func (m *MockCvRepo) Delete(ctx context.Context, id, userID int64) (bool, error) {
	args := m.Called(ctx, id, userID)
	return args.Bool(0), args.Error(1)
}

// Mock Infrastructure Services

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) Save(data []byte, originalName string, userID int64) (string, int64, error) {
	args := m.Called(data, originalName, userID)
	return args.String(0), args.Get(1).(int64), args.Error(2)
}

func (m *MockStorage) Read(storagePath string) ([]byte, error) {
	args := m.Called(storagePath)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockStorage) Delete(storagePath string) (bool, error) {
	args := m.Called(storagePath)
	return args.Bool(0), args.Error(1)
}

func (m *MockStorage) FullPath(storagePath string) string {
	return m.Called(storagePath).String(0)
}

type MockRenderer struct {
	mock.Mock
}

func (m *MockRenderer) Render(filePath string) ([][]byte, error) {
	args := m.Called(filePath)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([][]byte), args.Error(1)
}

type MockAnalyzer struct {
	mock.Mock
}

func (m *MockAnalyzer) Analyze(ctx context.Context, pageImages [][]byte) (*analysis.Result, error) {
	args := m.Called(ctx, pageImages)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*analysis.Result), args.Error(1)
}
