package usecase

import (
	"fmt"
	"net/url"
	"strings"

	checklistdomain "besteller-backend/internal/checklist/domain"
	checklistrepo "besteller-backend/internal/checklist/repository"
	emailusecase "besteller-backend/internal/email/usecase"
	"besteller-backend/internal/submission/domain"
	"besteller-backend/internal/submission/repository"
	"besteller-backend/pkg/apperr"
)

// submissionUsecase implements SubmissionUsecase interface
type submissionUsecase struct {
	submissionRepo repository.SubmissionRepository
	checklistRepo  checklistrepo.ChecklistRepository
	emailUsecase   emailusecase.EmailUsecase
}

// NewSubmissionUsecase creates a new instance of submissionUsecase
func NewSubmissionUsecase(submissionRepo repository.SubmissionRepository, checklistRepo checklistrepo.ChecklistRepository, emailUc emailusecase.EmailUsecase) SubmissionUsecase {
	return &submissionUsecase{
		submissionRepo: submissionRepo,
		checklistRepo:  checklistRepo,
		emailUsecase:   emailUc,
	}
}

// FieldKey derives the form field name of an item from its group and item IDs.
func FieldKey(group *checklistdomain.ChecklistGroup, item *checklistdomain.GroupItem) string {
	return fmt.Sprintf("group_%s_item_%s", group.ID, item.ID)
}

func (u *submissionUsecase) CollectSubmissionData(checklist *checklistdomain.Checklist, form url.Values) domain.AnswerMap {
	answers := domain.AnswerMap{}
	for _, group := range checklist.SortedGroups() {
		groupAnswers := map[string]interface{}{}
		for _, item := range group.SortedItems() {
			key := FieldKey(&group, &item)
			switch item.Type {
			case checklistdomain.ItemTypeCheckbox:
				groupAnswers[item.ID] = collectCheckbox(&item, form[key])
			case checklistdomain.ItemTypeRadio:
				groupAnswers[item.ID] = collectRadio(&item, form.Get(key))
			default:
				groupAnswers[item.ID] = strings.TrimSpace(form.Get(key))
			}
		}
		answers[group.ID] = groupAnswers
	}
	return answers
}

// collectCheckbox keeps the selected values that match a defined option
// label. An item without options is a bare yes/no checkbox.
func collectCheckbox(item *checklistdomain.GroupItem, values []string) interface{} {
	if len(item.Options) == 0 {
		return len(values) > 0
	}
	known := make(map[string]bool, len(item.Options))
	for _, opt := range item.Options {
		known[opt.Label] = true
	}
	selected := []string{}
	for _, value := range values {
		if known[value] {
			selected = append(selected, value)
		}
	}
	return selected
}

// collectRadio keeps the value only when it matches a defined option label.
func collectRadio(item *checklistdomain.GroupItem, value string) string {
	for _, opt := range item.Options {
		if opt.Label == value {
			return value
		}
	}
	return ""
}

func (u *submissionUsecase) Submit(checklistID string, req SubmitRequest) (*domain.Submission, error) {
	if req.Name == "" || req.MitarbeiterID == "" {
		return nil, apperr.Validation("name and mitarbeiter_id are required")
	}

	checklist, err := u.checklistRepo.FindByID(checklistID)
	if err != nil {
		return nil, err
	}
	if checklist == nil {
		return nil, apperr.NotFound("checklist not found")
	}

	// Fast path for the friendly already-submitted page; the unique
	// index on the insert below is what actually decides races.
	existing, err := u.submissionRepo.FindByChecklistAndMitarbeiter(checklistID, req.MitarbeiterID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.Conflict("submission already exists for this checklist and employee")
	}

	submission := &domain.Submission{
		ChecklistID:   checklistID,
		Name:          req.Name,
		MitarbeiterID: req.MitarbeiterID,
		Email:         req.Email,
		Data:          u.CollectSubmissionData(checklist, req.Form),
	}

	// The summary email goes out before the row is written: a delivery
	// failure means nothing is persisted and the employee may retry.
	generated, err := u.emailUsecase.GenerateAndSendEmail(checklist, submission)
	if err != nil {
		return nil, err
	}
	submission.GeneratedEmail = generated

	if err := u.submissionRepo.Create(submission); err != nil {
		return nil, err
	}
	return submission, nil
}

func (u *submissionUsecase) FindExisting(checklistID, mitarbeiterID string) (*domain.Submission, error) {
	return u.submissionRepo.FindByChecklistAndMitarbeiter(checklistID, mitarbeiterID)
}

func (u *submissionUsecase) ListByChecklist(checklistID string) ([]*domain.Submission, error) {
	return u.submissionRepo.FindByChecklistID(checklistID)
}
