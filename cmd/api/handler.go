package api

import (
	authUsecase "besteller-backend/internal/auth/usecase"
	checklistDelivery "besteller-backend/internal/checklist/delivery"
	checklistUsecasePkg "besteller-backend/internal/checklist/usecase"
	emailDelivery "besteller-backend/internal/email/delivery"
	emailRepo "besteller-backend/internal/email/repository"
	submissionDelivery "besteller-backend/internal/submission/delivery"
	submissionUsecasePkg "besteller-backend/internal/submission/usecase"
	"besteller-backend/internal/view"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	authUsecase       authUsecase.AuthUsecase
	resolver          *view.Resolver
	checklistHandler  *checklistDelivery.ChecklistHandler
	submissionHandler *submissionDelivery.SubmissionHandler
	settingsHandler   *emailDelivery.SettingsHandler
}

func NewHandler(authUc authUsecase.AuthUsecase, checklistUc checklistUsecasePkg.ChecklistUsecase, submissionUc submissionUsecasePkg.SubmissionUsecase, settingsRepo emailRepo.SettingsRepository, resolver *view.Resolver) *Handler {
	return &Handler{
		authUsecase:       authUc,
		resolver:          resolver,
		checklistHandler:  checklistDelivery.NewChecklistHandler(checklistUc, resolver),
		submissionHandler: submissionDelivery.NewSubmissionHandler(submissionUc, checklistUc, resolver),
		settingsHandler:   emailDelivery.NewSettingsHandler(settingsRepo),
	}
}

func (h *Handler) Start(addr string) error {
	r := gin.Default()

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	SetupRoutes(r, h)

	return r.Run(addr)
}
