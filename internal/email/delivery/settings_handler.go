package delivery

import (
	"net/http"

	"besteller-backend/internal/email/domain"
	"besteller-backend/internal/email/repository"
	"besteller-backend/pkg/apperr"

	"github.com/gin-gonic/gin"
)

// SettingsHandler handles the SMTP settings admin API
type SettingsHandler struct {
	settingsRepo repository.SettingsRepository
}

// NewSettingsHandler creates a new SettingsHandler
func NewSettingsHandler(settingsRepo repository.SettingsRepository) *SettingsHandler {
	return &SettingsHandler{
		settingsRepo: settingsRepo,
	}
}

// UpdateSettingsRequest represents the request body for saving SMTP settings
type UpdateSettingsRequest struct {
	Host        string `json:"host" binding:"required"`
	Port        int    `json:"port" binding:"required"`
	Username    string `json:"username"`
	Password    string `json:"password"`
	IgnoreTLS   bool   `json:"ignore_tls"`
	SenderEmail string `json:"sender_email" binding:"required,email"`
}

// Get returns the stored SMTP settings
// GET /api/admin/email-settings
func (h *SettingsHandler) Get(c *gin.Context) {
	settings, err := h.settingsRepo.Get()
	if err != nil {
		apperr.AbortWithError(c, err)
		return
	}
	if settings == nil {
		apperr.AbortWithError(c, apperr.NotFound("email settings are not configured"))
		return
	}
	c.JSON(http.StatusOK, settings)
}

// Update creates or replaces the SMTP settings
// PUT /api/admin/email-settings
func (h *SettingsHandler) Update(c *gin.Context) {
	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	settings := &domain.EmailSettings{
		Host:        req.Host,
		Port:        req.Port,
		Username:    req.Username,
		Password:    req.Password,
		IgnoreTLS:   req.IgnoreTLS,
		SenderEmail: req.SenderEmail,
	}
	if err := h.settingsRepo.Save(settings); err != nil {
		apperr.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}
