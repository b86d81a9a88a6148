package repository

import (
	"errors"
	"time"

	"besteller-backend/internal/submission/domain"
	"besteller-backend/pkg/apperr"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// submissionRepository implements SubmissionRepository interface
type submissionRepository struct {
	db *gorm.DB
}

// NewSubmissionRepository creates a new instance of submissionRepository
func NewSubmissionRepository(db *gorm.DB) SubmissionRepository {
	return &submissionRepository{
		db: db,
	}
}

func (r *submissionRepository) Create(submission *domain.Submission) error {
	if submission.ID == "" {
		submission.ID = uuid.New().String()
	}
	submission.CreatedAt = time.Now()
	if submission.Data == nil {
		submission.Data = domain.AnswerMap{}
	}

	err := r.db.Create(submission).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperr.Wrap(apperr.KindConflict, "submission already exists for this checklist and employee", err)
	}
	return err
}

func (r *submissionRepository) FindByChecklistAndMitarbeiter(checklistID, mitarbeiterID string) (*domain.Submission, error) {
	var submission domain.Submission
	err := r.db.Where("checklist_id = ? AND mitarbeiter_id = ?", checklistID, mitarbeiterID).
		First(&submission).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &submission, nil
}

func (r *submissionRepository) FindByChecklistID(checklistID string) ([]*domain.Submission, error) {
	var submissions []*domain.Submission
	err := r.db.Where("checklist_id = ?", checklistID).
		Order("created_at DESC").Find(&submissions).Error
	if err != nil {
		return nil, err
	}
	return submissions, nil
}
