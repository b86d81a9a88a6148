package repository

import "besteller-backend/internal/submission/domain"

// SubmissionRepository defines the interface for submission data access
type SubmissionRepository interface {
	// Create inserts a new submission. A violation of the
	// (checklist, mitarbeiter) uniqueness constraint is returned as a
	// conflict error, so the insert itself decides races.
	Create(submission *domain.Submission) error

	// FindByChecklistAndMitarbeiter finds the existing submission of an
	// employee for a checklist, or nil if none exists
	FindByChecklistAndMitarbeiter(checklistID, mitarbeiterID string) (*domain.Submission, error)

	// FindByChecklistID lists all submissions of a checklist, newest first
	FindByChecklistID(checklistID string) ([]*domain.Submission, error)
}
