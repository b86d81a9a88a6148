package usecase

import (
	"net/url"

	checklistdomain "besteller-backend/internal/checklist/domain"
	"besteller-backend/internal/submission/domain"
)

// SubmissionUsecase defines the interface for submission business logic
type SubmissionUsecase interface {
	// CollectSubmissionData normalizes raw form input against the
	// checklist's group and item definitions. Missing fields become
	// empty answers, never errors.
	CollectSubmissionData(checklist *checklistdomain.Checklist, form url.Values) domain.AnswerMap

	// Submit runs the full first-submission flow: uniqueness gate,
	// answer collection, email generation and dispatch, persistence.
	Submit(checklistID string, req SubmitRequest) (*domain.Submission, error)

	// FindExisting returns an employee's prior submission for a
	// checklist, or nil
	FindExisting(checklistID, mitarbeiterID string) (*domain.Submission, error)

	// ListByChecklist lists all submissions of a checklist
	ListByChecklist(checklistID string) ([]*domain.Submission, error)
}

// SubmitRequest carries the identity fields and raw form input of one
// submission attempt.
type SubmitRequest struct {
	Name          string
	MitarbeiterID string
	Email         string
	Form          url.Values
}
