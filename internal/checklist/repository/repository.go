package repository

import "besteller-backend/internal/checklist/domain"

// ChecklistRepository defines the interface for checklist data access
type ChecklistRepository interface {
	// Create creates a new checklist with its groups and items
	Create(checklist *domain.Checklist) error

	// FindByID finds a checklist with groups and items preloaded in sort order
	FindByID(id string) (*domain.Checklist, error)

	// FindAll returns all checklists without their groups
	FindAll() ([]*domain.Checklist, error)

	// Update updates checklist fields (not its groups)
	Update(checklist *domain.Checklist) error

	// Delete removes a checklist and, explicitly, its groups and items
	Delete(id string) error

	// CreateGroup adds a group to a checklist
	CreateGroup(group *domain.ChecklistGroup) error

	// FindGroupByID finds a single group without its items
	FindGroupByID(id string) (*domain.ChecklistGroup, error)

	// UpdateGroup updates a group's fields
	UpdateGroup(group *domain.ChecklistGroup) error

	// DeleteGroup removes a group and, explicitly, its items
	DeleteGroup(id string) error

	// CreateItem adds an item to a group
	CreateItem(item *domain.GroupItem) error

	// FindItemByID finds a single item
	FindItemByID(id string) (*domain.GroupItem, error)

	// UpdateItem updates an item's fields
	UpdateItem(item *domain.GroupItem) error

	// DeleteItem removes an item
	DeleteItem(id string) error
}
