package postgres

import (
	"context"
	"errors"
	"fmt"

	"skill-extraction-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type cvUploadRepo struct {
	db *pgxpool.Pool
}

func NewCvUploadRepository(db *pgxpool.Pool) domain.CvRepository {
	return &cvUploadRepo{db: db}
}

func (r *cvUploadRepo) Create(ctx context.Context, upload *domain.CvUpload) (*domain.CvUpload, error) {
	query := `
		INSERT INTO cv_uploads (user_id, file_name, storage_path, file_size, status, extracted_skills, summary, analysis_payload)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, upload_date`

	err := r.db.QueryRow(ctx, query,
		upload.UserID, upload.FileName, upload.StoragePath, upload.FileSize,
		upload.Status, pq.Array(upload.ExtractedSkills), upload.Summary, upload.AnalysisPayload,
	).Scan(&upload.ID, &upload.UploadDate)
	if err != nil {
		return nil, fmt.Errorf("failed to insert cv upload: %w", err)
	}
	return upload, nil
}

func (r *cvUploadRepo) GetByID(ctx context.Context, id, userID int64) (*domain.CvUpload, error) {
	// Compound (id, user_id) scoping: ownership mismatch reads as not found
	query := `
		SELECT id, user_id, file_name, storage_path, upload_date, file_size, status, extracted_skills, summary, analysis_payload
		FROM cv_uploads WHERE id = $1 AND user_id = $2`

	var u domain.CvUpload
	var skills []string
	err := r.db.QueryRow(ctx, query, id, userID).Scan(
		&u.ID, &u.UserID, &u.FileName, &u.StoragePath, &u.UploadDate,
		&u.FileSize, &u.Status, pq.Array(&skills), &u.Summary, &u.AnalysisPayload,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	u.ExtractedSkills = skills
	if u.ExtractedSkills == nil {
		u.ExtractedSkills = []string{}
	}
	return &u, nil
}

func (r *cvUploadRepo) ListByUser(ctx context.Context, userID int64, limit int) ([]domain.CvUpload, error) {
	query := `
		SELECT id, user_id, file_name, storage_path, upload_date, file_size, status, extracted_skills, summary, analysis_payload
		FROM cv_uploads WHERE user_id = $1
		ORDER BY upload_date DESC
		LIMIT $2`

	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch history: %w", err)
	}
	defer rows.Close()

	uploads := []domain.CvUpload{}
	for rows.Next() {
		var u domain.CvUpload
		var skills []string
		err := rows.Scan(
			&u.ID, &u.UserID, &u.FileName, &u.StoragePath, &u.UploadDate,
			&u.FileSize, &u.Status, pq.Array(&skills), &u.Summary, &u.AnalysisPayload,
		)
		if err != nil {
			return nil, err
		}
		u.ExtractedSkills = skills
		if u.ExtractedSkills == nil {
			u.ExtractedSkills = []string{}
		}
		uploads = append(uploads, u)
	}
	return uploads, rows.Err()
}

func (r *cvUploadRepo) SetResult(ctx context.Context, id int64, status domain.UploadStatus, skills []string, summary, payload string) error {
	query := `
		UPDATE cv_uploads
		SET status = $2, extracted_skills = $3, summary = $4, analysis_payload = $5
		WHERE id = $1`

	_, err := r.db.Exec(ctx, query, id, status, pq.Array(skills), summary, payload)
	if err != nil {
		return fmt.Errorf("failed to update cv upload %d: %w", id, err)
	}
	return nil
}

func (r *cvUploadRepo) Delete(ctx context.Context, id, userID int64) (bool, error) {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM cv_uploads WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return false, err
	}
	return cmdTag.RowsAffected() > 0, nil
}
