package usecase

import "besteller-backend/internal/checklist/domain"

// ChecklistUsecase defines the interface for checklist administration
type ChecklistUsecase interface {
	// CreateChecklist creates a checklist, optionally with groups and items
	CreateChecklist(checklist *domain.Checklist) error

	// GetChecklist loads a checklist with groups and items
	GetChecklist(id string) (*domain.Checklist, error)

	// ListChecklists returns all checklists
	ListChecklists() ([]*domain.Checklist, error)

	// UpdateChecklist updates title, mail addresses and templates
	UpdateChecklist(checklist *domain.Checklist) error

	// DeleteChecklist removes a checklist with its groups and items
	DeleteChecklist(id string) error

	// AddGroup appends a group to a checklist
	AddGroup(checklistID string, group *domain.ChecklistGroup) error

	// UpdateGroup applies a partial update to a group
	UpdateGroup(id string, updates GroupUpdateRequest) (*domain.ChecklistGroup, error)

	// DeleteGroup removes a group and its items
	DeleteGroup(id string) error

	// AddItem appends an item to a group
	AddItem(groupID string, item *domain.GroupItem) error

	// UpdateItem applies a partial update to an item
	UpdateItem(id string, updates ItemUpdateRequest) (*domain.GroupItem, error)

	// DeleteItem removes an item
	DeleteItem(id string) error

	// SendLink emails a personal submission link for this checklist
	SendLink(checklistID, name, mitarbeiterID, email string) error
}

// GroupUpdateRequest represents the group fields that can be updated.
// Absent fields are left untouched.
type GroupUpdateRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	SortOrder   *int    `json:"sort_order,omitempty"`
}

// ItemUpdateRequest represents the item fields that can be updated.
// Absent fields are left untouched; Active only applies together with Options.
type ItemUpdateRequest struct {
	Label     *string   `json:"label,omitempty"`
	Type      *string   `json:"type,omitempty"`
	Options   *[]string `json:"options,omitempty"`
	Active    *bool     `json:"active,omitempty"`
	SortOrder *int      `json:"sort_order,omitempty"`
}
