package repository

import (
	"errors"
	"time"

	"besteller-backend/internal/email/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SettingsRepository defines the interface for email settings access
type SettingsRepository interface {
	// Get returns the deployment's email settings, or nil if not configured
	Get() (*domain.EmailSettings, error)
	// Save creates or updates the single settings row
	Save(settings *domain.EmailSettings) error
}

// settingsRepository implements SettingsRepository interface
type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository creates a new instance of settingsRepository
func NewSettingsRepository(db *gorm.DB) SettingsRepository {
	return &settingsRepository{
		db: db,
	}
}

func (r *settingsRepository) Get() (*domain.EmailSettings, error) {
	var settings domain.EmailSettings
	err := r.db.First(&settings).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &settings, nil
}

func (r *settingsRepository) Save(settings *domain.EmailSettings) error {
	existing, err := r.Get()
	if err != nil {
		return err
	}
	if existing != nil {
		settings.ID = existing.ID
		settings.CreatedAt = existing.CreatedAt
		settings.UpdatedAt = time.Now()
		return r.db.Save(settings).Error
	}
	settings.ID = uuid.New().String()
	settings.CreatedAt = time.Now()
	settings.UpdatedAt = time.Now()
	return r.db.Create(settings).Error
}
