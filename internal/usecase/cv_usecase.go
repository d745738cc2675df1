package usecase

import (
	"context"
	"errors"
	"net/http"
	"os"

	"skill-extraction-backend/internal/domain"
	"skill-extraction-backend/pkg/apperror"
	"skill-extraction-backend/pkg/logger"
	"skill-extraction-backend/pkg/security"
)

const (
	defaultHistoryLimit = 10
	maxHistoryLimit     = 100
)

type cvUsecase struct {
	cvRepo   domain.CvRepository
	storage  domain.FileStorage
	renderer domain.CvRenderer
	analyzer domain.CvAnalyzer
}

func NewCvUsecase(cvRepo domain.CvRepository, storage domain.FileStorage, renderer domain.CvRenderer, analyzer domain.CvAnalyzer) domain.CvUsecase {
	return &cvUsecase{
		cvRepo:   cvRepo,
		storage:  storage,
		renderer: renderer,
		analyzer: analyzer,
	}
}

// Upload runs the full pipeline: validate, persist file, create a processing
// record, render pages, call the model, store the result. The record is
// created eagerly so a failed analysis still leaves a queryable 'failed' row.
func (u *cvUsecase) Upload(ctx context.Context, userID int64, fileName string, data []byte) (*domain.CvUpload, error) {
	// Validation happens before any storage or model call
	if err := security.ValidateUpload(fileName, data); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}

	storagePath, size, err := u.storage.Save(data, fileName, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	record, err := u.cvRepo.Create(ctx, &domain.CvUpload{
		UserID:          userID,
		FileName:        fileName,
		StoragePath:     storagePath,
		FileSize:        size,
		Status:          domain.StatusProcessing,
		ExtractedSkills: []string{},
	})
	if err != nil {
		return nil, err
	}

	pages, err := u.renderer.Render(u.storage.FullPath(storagePath))
	if err != nil {
		u.markFailed(ctx, record.ID)
		return nil, apperror.New(http.StatusInternalServerError, "Failed to process CV", err)
	}

	result, err := u.analyzer.Analyze(ctx, pages)
	if err != nil {
		u.markFailed(ctx, record.ID)
		return nil, apperror.New(http.StatusInternalServerError, "Failed to analyze CV", err)
	}

	// A degraded result (unparseable model reply) still completes: the
	// summary explains the failure and the raw reply is kept for audit.
	if err := u.cvRepo.SetResult(ctx, record.ID, domain.StatusCompleted, result.Skills, result.Summary, result.Raw); err != nil {
		return nil, apperror.Internal(err)
	}

	record.Status = domain.StatusCompleted
	record.ExtractedSkills = result.Skills
	record.Summary = result.Summary
	record.AnalysisPayload = result.Raw
	return record, nil
}

func (u *cvUsecase) History(ctx context.Context, userID int64, limit int) ([]domain.CvUpload, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}
	uploads, err := u.cvRepo.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return uploads, nil
}

func (u *cvUsecase) GetByID(ctx context.Context, id, userID int64) (*domain.CvUpload, error) {
	upload, err := u.cvRepo.GetByID(ctx, id, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if upload == nil {
		// Not owned is indistinguishable from absent
		return nil, apperror.NotFound("CV not found")
	}
	return upload, nil
}

// Download returns the upload record and the stored file bytes. The record
// existing without its file (e.g. a pruned storage volume) is a distinct
// not-found, never a 500.
func (u *cvUsecase) Download(ctx context.Context, id, userID int64) (*domain.CvUpload, []byte, error) {
	upload, err := u.cvRepo.GetByID(ctx, id, userID)
	if err != nil {
		return nil, nil, apperror.Internal(err)
	}
	if upload == nil {
		return nil, nil, apperror.NotFound("CV not found")
	}

	data, err := u.storage.Read(upload.StoragePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil, apperror.NotFound("CV file not found on disk")
		}
		return nil, nil, apperror.Internal(err)
	}

	return upload, data, nil
}

// Delete removes the record first, then the stored file. A file-delete
// failure is logged, not surfaced: the user-visible outcome (record gone)
// already happened, and storage names never collide so the orphan is inert.
func (u *cvUsecase) Delete(ctx context.Context, id, userID int64) error {
	upload, err := u.cvRepo.GetByID(ctx, id, userID)
	if err != nil {
		return apperror.Internal(err)
	}
	if upload == nil {
		return apperror.NotFound("CV not found")
	}

	deleted, err := u.cvRepo.Delete(ctx, id, userID)
	if err != nil {
		return apperror.Internal(err)
	}
	if !deleted {
		return apperror.NotFound("CV not found")
	}

	if _, err := u.storage.Delete(upload.StoragePath); err != nil {
		logger.Log.Warn("failed to delete stored file", "storage_path", upload.StoragePath, "error", err)
	}

	return nil
}

func (u *cvUsecase) markFailed(ctx context.Context, id int64) {
	if err := u.cvRepo.SetResult(ctx, id, domain.StatusFailed, []string{}, "", ""); err != nil {
		logger.Log.Error("failed to mark upload as failed", "upload_id", id, "error", err)
	}
}
