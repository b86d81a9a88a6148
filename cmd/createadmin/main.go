package main

import (
	"flag"
	"log"

	authdomain "besteller-backend/internal/auth/domain"
	authRepo "besteller-backend/internal/auth/repository"
	authUsecase "besteller-backend/internal/auth/usecase"
	"besteller-backend/pkg/config"
	"besteller-backend/pkg/database"
)

func main() {
	email := flag.String("email", "", "admin email address")
	name := flag.String("name", "", "display name")
	password := flag.String("password", "", "login password")
	flag.Parse()

	if *email == "" || *password == "" {
		log.Fatal("both -email and -password are required")
	}
	if *name == "" {
		*name = *email
	}

	cfg := config.Load()

	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	if err := db.AutoMigrate(&authdomain.User{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	uc := authUsecase.NewAuthUsecase(authRepo.NewUserRepository(db), cfg)
	user, err := uc.CreateUser(*email, *name, *password)
	if err != nil {
		log.Fatal("Failed to create admin:", err)
	}

	log.Printf("Admin %s (%s) created", user.Email, user.ID)
}
