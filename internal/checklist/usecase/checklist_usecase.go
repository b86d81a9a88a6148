package usecase

import (
	"besteller-backend/internal/checklist/domain"
	"besteller-backend/internal/checklist/repository"
	emailusecase "besteller-backend/internal/email/usecase"
	"besteller-backend/pkg/apperr"
)

// checklistUsecase implements ChecklistUsecase interface
type checklistUsecase struct {
	checklistRepo repository.ChecklistRepository
	emailUsecase  emailusecase.EmailUsecase
}

// NewChecklistUsecase creates a new instance of checklistUsecase
func NewChecklistUsecase(checklistRepo repository.ChecklistRepository, emailUc emailusecase.EmailUsecase) ChecklistUsecase {
	return &checklistUsecase{
		checklistRepo: checklistRepo,
		emailUsecase:  emailUc,
	}
}

func (u *checklistUsecase) CreateChecklist(checklist *domain.Checklist) error {
	if checklist.Title == "" {
		return apperr.Validation("title is required")
	}
	if checklist.TargetEmail == "" {
		return apperr.Validation("target_email is required")
	}
	return u.checklistRepo.Create(checklist)
}

func (u *checklistUsecase) GetChecklist(id string) (*domain.Checklist, error) {
	checklist, err := u.checklistRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if checklist == nil {
		return nil, apperr.NotFound("checklist not found")
	}
	return checklist, nil
}

func (u *checklistUsecase) ListChecklists() ([]*domain.Checklist, error) {
	return u.checklistRepo.FindAll()
}

func (u *checklistUsecase) UpdateChecklist(checklist *domain.Checklist) error {
	existing, err := u.GetChecklist(checklist.ID)
	if err != nil {
		return err
	}
	checklist.CreatedAt = existing.CreatedAt
	return u.checklistRepo.Update(checklist)
}

func (u *checklistUsecase) DeleteChecklist(id string) error {
	if _, err := u.GetChecklist(id); err != nil {
		return err
	}
	return u.checklistRepo.Delete(id)
}

func (u *checklistUsecase) AddGroup(checklistID string, group *domain.ChecklistGroup) error {
	if _, err := u.GetChecklist(checklistID); err != nil {
		return err
	}
	if group.Title == "" {
		return apperr.Validation("group title is required")
	}
	group.ChecklistID = checklistID
	return u.checklistRepo.CreateGroup(group)
}

func (u *checklistUsecase) UpdateGroup(id string, updates GroupUpdateRequest) (*domain.ChecklistGroup, error) {
	group, err := u.checklistRepo.FindGroupByID(id)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, apperr.NotFound("group not found")
	}

	if updates.Title != nil {
		if *updates.Title == "" {
			return nil, apperr.Validation("group title is required")
		}
		group.Title = *updates.Title
	}
	if updates.Description != nil {
		group.Description = *updates.Description
	}
	if updates.SortOrder != nil {
		group.SortOrder = *updates.SortOrder
	}

	if err := u.checklistRepo.UpdateGroup(group); err != nil {
		return nil, err
	}
	return group, nil
}

func (u *checklistUsecase) DeleteGroup(id string) error {
	return u.checklistRepo.DeleteGroup(id)
}

func (u *checklistUsecase) AddItem(groupID string, item *domain.GroupItem) error {
	if item.Label == "" {
		return apperr.Validation("item label is required")
	}
	switch item.Type {
	case domain.ItemTypeCheckbox, domain.ItemTypeRadio, domain.ItemTypeText:
	default:
		return apperr.Validation("item type must be checkbox, radio or text")
	}
	item.GroupID = groupID
	return u.checklistRepo.CreateItem(item)
}

func (u *checklistUsecase) UpdateItem(id string, updates ItemUpdateRequest) (*domain.GroupItem, error) {
	item, err := u.checklistRepo.FindItemByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperr.NotFound("item not found")
	}

	if updates.Label != nil {
		if *updates.Label == "" {
			return nil, apperr.Validation("item label is required")
		}
		item.Label = *updates.Label
	}
	if updates.Type != nil {
		switch domain.ItemType(*updates.Type) {
		case domain.ItemTypeCheckbox, domain.ItemTypeRadio, domain.ItemTypeText:
		default:
			return nil, apperr.Validation("item type must be checkbox, radio or text")
		}
		item.Type = domain.ItemType(*updates.Type)
	}
	if updates.Options != nil {
		active := false
		if updates.Active != nil {
			active = *updates.Active
		}
		item.SetOptionsArray(*updates.Options, active)
	}
	if updates.SortOrder != nil {
		item.SortOrder = *updates.SortOrder
	}

	if err := u.checklistRepo.UpdateItem(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (u *checklistUsecase) DeleteItem(id string) error {
	return u.checklistRepo.DeleteItem(id)
}

func (u *checklistUsecase) SendLink(checklistID, name, mitarbeiterID, email string) error {
	if name == "" || mitarbeiterID == "" || email == "" {
		return apperr.Validation("name, mitarbeiter_id and email are required")
	}
	checklist, err := u.GetChecklist(checklistID)
	if err != nil {
		return err
	}
	return u.emailUsecase.SendChecklistLink(checklist, name, mitarbeiterID, email)
}
