package domain

import "time"

// EmailSettings is the deployment-wide SMTP configuration, stored as a
// single database row and editable from the admin API.
type EmailSettings struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	Host        string    `json:"host" gorm:"not null"`
	Port        int       `json:"port" gorm:"not null;default:587"`
	Username    string    `json:"username,omitempty"`
	Password    string    `json:"-"` // never returned in JSON
	IgnoreTLS   bool      `json:"ignore_tls" gorm:"default:false"`
	SenderEmail string    `json:"sender_email" gorm:"not null"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
