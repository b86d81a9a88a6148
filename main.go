package main

import (
	"log"

	api "besteller-backend/cmd/api"
	authdomain "besteller-backend/internal/auth/domain"
	authRepo "besteller-backend/internal/auth/repository"
	authUsecase "besteller-backend/internal/auth/usecase"
	checklistdomain "besteller-backend/internal/checklist/domain"
	checklistRepo "besteller-backend/internal/checklist/repository"
	checklistUsecase "besteller-backend/internal/checklist/usecase"
	emaildomain "besteller-backend/internal/email/domain"
	emailRepo "besteller-backend/internal/email/repository"
	emailUsecase "besteller-backend/internal/email/usecase"
	submissiondomain "besteller-backend/internal/submission/domain"
	submissionRepo "besteller-backend/internal/submission/repository"
	submissionUsecase "besteller-backend/internal/submission/usecase"
	"besteller-backend/internal/view"
	"besteller-backend/pkg/config"
	"besteller-backend/pkg/database"
	"besteller-backend/pkg/mailer"
	"besteller-backend/pkg/render"
	"besteller-backend/templates"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(
		&authdomain.User{},
		&checklistdomain.Checklist{},
		&checklistdomain.ChecklistGroup{},
		&checklistdomain.GroupItem{},
		&submissiondomain.Submission{},
		&emaildomain.EmailSettings{},
	); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize repositories (dependency injection)
	userRepository := authRepo.NewUserRepository(db)
	checklistRepository := checklistRepo.NewChecklistRepository(db)
	submissionRepository := submissionRepo.NewSubmissionRepository(db)
	settingsRepository := emailRepo.NewSettingsRepository(db)

	// Initialize the renderer over the embedded templates
	renderer, err := render.NewHTMLRenderer(templates.FS)
	if err != nil {
		log.Fatal("Failed to parse templates:", err)
	}
	resolver := view.NewResolver(view.NewConfig(), renderer)

	// Initialize use cases (dependency injection)
	authUsecaseInstance := authUsecase.NewAuthUsecase(userRepository, cfg)
	emailUsecaseInstance := emailUsecase.NewEmailUsecase(settingsRepository, mailer.NewSMTPMailer(), cfg.PublicBaseURL)
	checklistUsecaseInstance := checklistUsecase.NewChecklistUsecase(checklistRepository, emailUsecaseInstance)
	submissionUsecaseInstance := submissionUsecase.NewSubmissionUsecase(submissionRepository, checklistRepository, emailUsecaseInstance)

	// Initialize HTTP handler
	handler := api.NewHandler(authUsecaseInstance, checklistUsecaseInstance, submissionUsecaseInstance, settingsRepository, resolver)

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
