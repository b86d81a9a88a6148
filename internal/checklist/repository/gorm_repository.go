package repository

import (
	"errors"
	"time"

	"besteller-backend/internal/checklist/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// checklistRepository implements ChecklistRepository interface
type checklistRepository struct {
	db *gorm.DB
}

// NewChecklistRepository creates a new instance of checklistRepository
func NewChecklistRepository(db *gorm.DB) ChecklistRepository {
	return &checklistRepository{
		db: db,
	}
}

func (r *checklistRepository) Create(checklist *domain.Checklist) error {
	now := time.Now()
	if checklist.ID == "" {
		checklist.ID = uuid.New().String()
	}
	checklist.CreatedAt = now
	checklist.UpdatedAt = now
	for gi := range checklist.Groups {
		group := &checklist.Groups[gi]
		if group.ID == "" {
			group.ID = uuid.New().String()
		}
		group.ChecklistID = checklist.ID
		group.CreatedAt = now
		group.UpdatedAt = now
		for ii := range group.Items {
			item := &group.Items[ii]
			if item.ID == "" {
				item.ID = uuid.New().String()
			}
			item.GroupID = group.ID
			item.CreatedAt = now
			item.UpdatedAt = now
		}
	}
	return r.db.Create(checklist).Error
}

func (r *checklistRepository) FindByID(id string) (*domain.Checklist, error) {
	var checklist domain.Checklist
	err := r.db.
		Preload("Groups", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC, id ASC")
		}).
		Preload("Groups.Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC, id ASC")
		}).
		Where("id = ?", id).First(&checklist).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &checklist, nil
}

func (r *checklistRepository) FindAll() ([]*domain.Checklist, error) {
	var checklists []*domain.Checklist
	err := r.db.Order("created_at DESC").Find(&checklists).Error
	if err != nil {
		return nil, err
	}
	return checklists, nil
}

func (r *checklistRepository) Update(checklist *domain.Checklist) error {
	checklist.UpdatedAt = time.Now()
	return r.db.Omit("Groups").Save(checklist).Error
}

// Delete removes the checklist and its children. Ownership cascades are
// done explicitly here: items first, then groups, then the checklist.
func (r *checklistRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var groupIDs []string
		if err := tx.Model(&domain.ChecklistGroup{}).
			Where("checklist_id = ?", id).
			Pluck("id", &groupIDs).Error; err != nil {
			return err
		}
		if len(groupIDs) > 0 {
			if err := tx.Where("group_id IN ?", groupIDs).Delete(&domain.GroupItem{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("checklist_id = ?", id).Delete(&domain.ChecklistGroup{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&domain.Checklist{}).Error
	})
}

func (r *checklistRepository) CreateGroup(group *domain.ChecklistGroup) error {
	if group.ID == "" {
		group.ID = uuid.New().String()
	}
	group.CreatedAt = time.Now()
	group.UpdatedAt = time.Now()
	return r.db.Omit("Items").Create(group).Error
}

func (r *checklistRepository) FindGroupByID(id string) (*domain.ChecklistGroup, error) {
	var group domain.ChecklistGroup
	err := r.db.Where("id = ?", id).First(&group).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &group, nil
}

func (r *checklistRepository) UpdateGroup(group *domain.ChecklistGroup) error {
	group.UpdatedAt = time.Now()
	return r.db.Omit("Items").Save(group).Error
}

func (r *checklistRepository) DeleteGroup(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("group_id = ?", id).Delete(&domain.GroupItem{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&domain.ChecklistGroup{}).Error
	})
}

func (r *checklistRepository) CreateItem(item *domain.GroupItem) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	item.CreatedAt = time.Now()
	item.UpdatedAt = time.Now()
	return r.db.Create(item).Error
}

func (r *checklistRepository) FindItemByID(id string) (*domain.GroupItem, error) {
	var item domain.GroupItem
	err := r.db.Where("id = ?", id).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *checklistRepository) UpdateItem(item *domain.GroupItem) error {
	item.UpdatedAt = time.Now()
	return r.db.Save(item).Error
}

func (r *checklistRepository) DeleteItem(id string) error {
	return r.db.Where("id = ?", id).Delete(&domain.GroupItem{}).Error
}
