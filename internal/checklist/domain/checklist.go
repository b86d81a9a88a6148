package domain

import (
	"database/sql/driver"
	"encoding/json"
	"sort"
	"time"
)

// ItemType distinguishes how a group item is answered
type ItemType string

const (
	ItemTypeCheckbox ItemType = "checkbox"
	ItemTypeRadio    ItemType = "radio"
	ItemTypeText     ItemType = "text"
)

// ItemOption is one selectable choice of a checkbox/radio item.
type ItemOption struct {
	Label  string `json:"label"`
	Active bool   `json:"active"` // pre-selected by default
}

// ItemOptions is a custom type to handle a JSON option list in GORM
type ItemOptions []ItemOption

// Value implements driver.Valuer
func (o ItemOptions) Value() (driver.Value, error) {
	if len(o) == 0 {
		return "[]", nil
	}
	return json.Marshal(o)
}

// Scan implements sql.Scanner
func (o *ItemOptions) Scan(value interface{}) error {
	if value == nil {
		*o = ItemOptions{}
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}
	if len(bytes) == 0 {
		*o = ItemOptions{}
		return nil
	}
	return json.Unmarshal(bytes, o)
}

// Checklist is an administrator-defined form distributed to employees
// through per-employee submission links.
type Checklist struct {
	ID          string `json:"id" gorm:"primaryKey"`
	Title       string `json:"title" gorm:"not null"`
	TargetEmail string `json:"target_email" gorm:"not null"` // recipient of generated summaries
	ReplyEmail  string `json:"reply_email,omitempty"`

	// Optional free-text mail templates; empty means built-in default.
	EmailTemplate        string `json:"email_template,omitempty" gorm:"type:text"`
	LinkEmailTemplate    string `json:"link_email_template,omitempty" gorm:"type:text"`
	ConfirmationTemplate string `json:"confirmation_template,omitempty" gorm:"type:text"`

	Groups    []ChecklistGroup `json:"groups,omitempty" gorm:"foreignKey:ChecklistID"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// ChecklistGroup is an ordered section of a checklist.
type ChecklistGroup struct {
	ID          string      `json:"id" gorm:"primaryKey"`
	ChecklistID string      `json:"checklist_id" gorm:"index;not null"`
	Title       string      `json:"title" gorm:"not null"`
	Description string      `json:"description,omitempty"`
	SortOrder   int         `json:"sort_order" gorm:"not null;default:0"`
	Items       []GroupItem `json:"items,omitempty" gorm:"foreignKey:GroupID"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// GroupItem is a single question within a group.
type GroupItem struct {
	ID        string      `json:"id" gorm:"primaryKey"`
	GroupID   string      `json:"group_id" gorm:"index;not null"`
	Label     string      `json:"label" gorm:"not null"`
	Type      ItemType    `json:"type" gorm:"not null;default:text"`
	Options   ItemOptions `json:"options,omitempty" gorm:"type:text"`
	SortOrder int         `json:"sort_order" gorm:"not null;default:0"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// SortedGroups returns the groups ordered by sort order, ties broken by ID.
func (c Checklist) SortedGroups() []ChecklistGroup {
	groups := make([]ChecklistGroup, len(c.Groups))
	copy(groups, c.Groups)
	sort.SliceStable(groups, func(i, j int) bool {
		if groups[i].SortOrder != groups[j].SortOrder {
			return groups[i].SortOrder < groups[j].SortOrder
		}
		return groups[i].ID < groups[j].ID
	})
	return groups
}

// SortedItems returns the group's items ordered by sort order, ties broken by ID.
func (g ChecklistGroup) SortedItems() []GroupItem {
	items := make([]GroupItem, len(g.Items))
	copy(items, g.Items)
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].SortOrder != items[j].SortOrder {
			return items[i].SortOrder < items[j].SortOrder
		}
		return items[i].ID < items[j].ID
	})
	return items
}

// Type predicates for templates, which cannot compare a named string
// type against a literal.
func (i GroupItem) IsCheckbox() bool { return i.Type == ItemTypeCheckbox }
func (i GroupItem) IsRadio() bool    { return i.Type == ItemTypeRadio }
func (i GroupItem) IsText() bool     { return i.Type == ItemTypeText }

// SetOptionsArray replaces the item's options with one option per label,
// all carrying the same active flag.
func (i *GroupItem) SetOptionsArray(labels []string, active ...bool) {
	isActive := false
	if len(active) > 0 {
		isActive = active[0]
	}
	options := make(ItemOptions, 0, len(labels))
	for _, label := range labels {
		options = append(options, ItemOption{Label: label, Active: isActive})
	}
	i.Options = options
}

// OptionsArray returns just the option labels in order.
func (i *GroupItem) OptionsArray() []string {
	labels := make([]string, 0, len(i.Options))
	for _, opt := range i.Options {
		labels = append(labels, opt.Label)
	}
	return labels
}
