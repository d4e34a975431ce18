package main

import (
	"database/sql"
	"log"
	"os"

	"angadBack/internal/handlers"
	"angadBack/internal/repositories"
	"angadBack/internal/services"
	"angadBack/utils"
)

type application struct {
	errorLog          *log.Logger
	infoLog           *log.Logger
	db                *sql.DB
	signingKey        string
	userRepo          *repositories.UserRepository
	reclamationRepo   *repositories.ReclamationRepository
	userHandler       *handlers.UserHandler
	demandeurHandler  *handlers.DemandeurHandler
	technicienHandler *handlers.TechnicienHandler
	adminHandler      *handlers.AdminHandler
}

func initializeApp(db *sql.DB, errorLog, infoLog *log.Logger) *application {
	signingKey := os.Getenv("JWT_SIGNING_KEY")
	if signingKey == "" {
		errorLog.Fatal("JWT_SIGNING_KEY is not set")
	}

	tokenManager, err := utils.NewManager(signingKey)
	if err != nil {
		errorLog.Fatal(err)
	}

	// Repositories
	userRepo := repositories.UserRepository{DB: db}
	reclamationRepo := repositories.ReclamationRepository{DB: db}

	// Services
	userService := &services.UserService{
		UserRepo:     &userRepo,
		TokenManager: tokenManager,
		SigningKey:   signingKey,
	}
	reclamationService := &services.ReclamationService{
		RecRepo:  &reclamationRepo,
		UserRepo: &userRepo,
		Storage:  utils.NewS3StorageFromEnv(),
		ErrorLog: errorLog,
	}
	adminService := &services.AdminService{RecRepo: &reclamationRepo}

	return &application{
		errorLog:          errorLog,
		infoLog:           infoLog,
		db:                db,
		signingKey:        signingKey,
		userRepo:          &userRepo,
		reclamationRepo:   &reclamationRepo,
		userHandler:       &handlers.UserHandler{Service: userService},
		demandeurHandler:  &handlers.DemandeurHandler{Service: reclamationService},
		technicienHandler: &handlers.TechnicienHandler{Service: reclamationService},
		adminHandler:      &handlers.AdminHandler{Service: adminService},
	}
}
