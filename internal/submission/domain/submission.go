package domain

import (
	"database/sql/driver"
	"encoding/json"
	"time"
)

// AnswerMap is the normalized answers of one submission, keyed by group ID
// then item ID. Values are a string (radio, text) or a []string (checkbox).
type AnswerMap map[string]map[string]interface{}

// Value implements driver.Valuer
func (a AnswerMap) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "{}", nil
	}
	return json.Marshal(a)
}

// Scan implements sql.Scanner
func (a *AnswerMap) Scan(value interface{}) error {
	if value == nil {
		*a = AnswerMap{}
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
		*a = AnswerMap{}
		return nil
	}
	return json.Unmarshal(bytes, a)
}

// Submission is one employee's completed answers for one checklist.
// The (checklist, employee) pair is unique and a submission is immutable
// once created, except for the generated-email snapshot set at creation.
type Submission struct {
	ID            string    `json:"id" gorm:"primaryKey"`
	ChecklistID   string    `json:"checklist_id" gorm:"uniqueIndex:idx_checklist_mitarbeiter;not null"`
	Name          string    `json:"name" gorm:"not null"`
	MitarbeiterID string    `json:"mitarbeiter_id" gorm:"uniqueIndex:idx_checklist_mitarbeiter;not null"`
	Email         string    `json:"email,omitempty"`
	Data          AnswerMap `json:"data" gorm:"type:text"`
	GeneratedEmail string   `json:"generated_email,omitempty" gorm:"type:text"`
	CreatedAt     time.Time `json:"created_at"`
}
