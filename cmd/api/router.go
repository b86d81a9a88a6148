package api

import (
	"net/http"

	"besteller-backend/internal/auth/delivery"
	"besteller-backend/pkg/apperr"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, h *Handler) {
	authHandler := delivery.NewAuthHandler(h.authUsecase)

	// Employee-facing pages (no auth, identity comes from the link)
	r.GET("/checklist/:id", h.submissionHandler.Show)
	r.POST("/checklist/:id", h.submissionHandler.Submit)

	// Admin pages
	r.GET("/login", func(c *gin.Context) {
		body, err := h.resolver.RenderLogin()
		if err != nil {
			apperr.AbortWithError(c, err)
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(body))
	})
	adminPages := r.Group("/admin")
	adminPages.Use(delivery.AuthMiddleware(h.authUsecase))
	{
		adminPages.GET("/checklists", h.checklistHandler.ListPage)
		adminPages.GET("/checklists/:id", h.checklistHandler.EditPage)
		adminPages.GET("/checklists/:id/email-template", h.checklistHandler.EmailTemplatePage)
	}

	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.GET("/me", delivery.AuthMiddleware(h.authUsecase), authHandler.Me)
		}

		// Admin API (protected)
		admin := api.Group("/admin")
		admin.Use(delivery.AuthMiddleware(h.authUsecase))
		{
			admin.GET("/checklists", h.checklistHandler.List)
			admin.POST("/checklists", h.checklistHandler.Create)
			admin.GET("/checklists/:id", h.checklistHandler.Get)
			admin.PUT("/checklists/:id", h.checklistHandler.Update)
			admin.DELETE("/checklists/:id", h.checklistHandler.Delete)
			admin.POST("/checklists/:id/groups", h.checklistHandler.AddGroup)
			admin.PUT("/groups/:id", h.checklistHandler.UpdateGroup)
			admin.DELETE("/groups/:id", h.checklistHandler.DeleteGroup)
			admin.POST("/groups/:id/items", h.checklistHandler.AddItem)
			admin.PUT("/items/:id", h.checklistHandler.UpdateItem)
			admin.DELETE("/items/:id", h.checklistHandler.DeleteItem)
			admin.GET("/checklists/:id/submissions", h.submissionHandler.ListByChecklist)
			admin.POST("/checklists/:id/send-link", h.checklistHandler.SendLink)
			admin.GET("/email-settings", h.settingsHandler.Get)
			admin.PUT("/email-settings", h.settingsHandler.Update)
		}
	}
}
