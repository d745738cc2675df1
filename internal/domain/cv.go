package domain

import (
	"context"
	"time"

	"skill-extraction-backend/pkg/analysis"
)

type UploadStatus string

const (
	StatusProcessing UploadStatus = "processing"
	StatusCompleted  UploadStatus = "completed"
	StatusFailed     UploadStatus = "failed"
)

// CvUpload is one analyzed document. StoragePath is an opaque reference into
// the document store and never leaves the server.
type CvUpload struct {
	ID              int64        `json:"id"`
	UserID          int64        `json:"-"`
	FileName        string       `json:"fileName"`
	StoragePath     string       `json:"-"`
	UploadDate      time.Time    `json:"uploadDate"`
	FileSize        int64        `json:"fileSize"`
	Status          UploadStatus `json:"status"`
	ExtractedSkills []string     `json:"extractedSkills"`
	Summary         string       `json:"summary"`
	AnalysisPayload string       `json:"-"`
}

// CvRepository persists upload records. Every read and delete is scoped by
// (id, userID); nothing fetches by id alone.
type CvRepository interface {
	Create(ctx context.Context, upload *CvUpload) (*CvUpload, error)
	GetByID(ctx context.Context, id, userID int64) (*CvUpload, error)
	ListByUser(ctx context.Context, userID int64, limit int) ([]CvUpload, error)
	SetResult(ctx context.Context, id int64, status UploadStatus, skills []string, summary, payload string) error
	Delete(ctx context.Context, id, userID int64) (bool, error)
}

type FileStorage interface {
	Save(data []byte, originalName string, userID int64) (storagePath string, size int64, err error)
	Read(storagePath string) ([]byte, error)
	Delete(storagePath string) (found bool, err error)
	FullPath(storagePath string) string
}

type CvRenderer interface {
	Render(filePath string) ([][]byte, error)
}

type CvAnalyzer interface {
	Analyze(ctx context.Context, pageImages [][]byte) (*analysis.Result, error)
}

type CvUsecase interface {
	Upload(ctx context.Context, userID int64, fileName string, data []byte) (*CvUpload, error)
	History(ctx context.Context, userID int64, limit int) ([]CvUpload, error)
	GetByID(ctx context.Context, id, userID int64) (*CvUpload, error)
	Download(ctx context.Context, id, userID int64) (*CvUpload, []byte, error)
	Delete(ctx context.Context, id, userID int64) error
}
