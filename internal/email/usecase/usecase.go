package usecase

import (
	checklistdomain "besteller-backend/internal/checklist/domain"
	submissiondomain "besteller-backend/internal/submission/domain"
)

// EmailUsecase defines the interface for outgoing mail business logic
type EmailUsecase interface {
	// GenerateAndSendEmail renders the checklist's summary mail from the
	// submission, sends it to the checklist's target address and a
	// confirmation copy to the submitter, and returns the generated body
	// for persistence as an audit snapshot. A primary delivery failure is
	// returned; a confirmation failure is logged and swallowed.
	GenerateAndSendEmail(checklist *checklistdomain.Checklist, submission *submissiondomain.Submission) (string, error)

	// SendChecklistLink emails an employee their personal submission link.
	SendChecklistLink(checklist *checklistdomain.Checklist, name, mitarbeiterID, email string) error
}
