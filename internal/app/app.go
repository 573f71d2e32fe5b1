package app

import (
	"context"

	"server/config"
	"server/internal/database"
	"server/internal/drive"
	"server/internal/handlers/middleware"
	"server/internal/logger"
	"server/internal/repositories"
	"server/internal/services"
	"server/internal/sheets"

	authController "server/internal/controllers/auth"
	draftController "server/internal/controllers/drafts"
	filesController "server/internal/controllers/files"
	submissionController "server/internal/controllers/submissions"
)

type App struct {
	Database   database.DB
	Middleware middleware.Middleware
	Config     config.Config

	// External stores
	Sheets *sheets.Service
	Drive  *drive.Service

	// Services
	SessionService *services.SessionService

	// Repositories
	UserRepo  repositories.UserRepository
	DraftRepo repositories.DraftRepository

	// Controllers
	AuthController       *authController.AuthController
	SubmissionController *submissionController.SubmissionController
	DraftController      *draftController.DraftController
	FilesController      *filesController.FilesController
}

func New() (*App, error) {
	log := logger.New("app").Function("New")
	ctx := context.Background()

	config, err := config.InitConfig()
	if err != nil {
		return &App{}, log.Err("failed to initialize config", err)
	}

	db, err := database.New(config)
	if err != nil {
		return &App{}, log.Err("failed to create database", err)
	}

	sheetsService, err := sheets.NewService(ctx, config)
	if err != nil {
		return &App{}, log.Err("failed to create sheets service", err)
	}

	driveService, err := drive.NewService(ctx, config)
	if err != nil {
		return &App{}, log.Err("failed to create drive service", err)
	}

	// Row deletion needs the drafts sheet's numeric id; resolve it from
	// the spreadsheet metadata unless it was configured explicitly.
	if config.DraftSheetGID < 0 {
		gid, err := sheetsService.ResolveSheetGID(ctx, config.SheetDrafts)
		if err != nil {
			return &App{}, log.Err("failed to resolve drafts sheet gid", err)
		}
		config.DraftSheetGID = gid
	}

	// Initialize services
	sessionService := services.NewSessionService(db, config)

	// Initialize repositories
	userRepo := repositories.NewUser(db)
	draftRepo := repositories.NewDraft(sheetsService, config.SheetDrafts, config.DraftSheetGID)

	// Initialize controllers with repositories and services
	middleware := middleware.New(config)
	authCtrl := authController.New(userRepo, sessionService)
	submissionCtrl := submissionController.New(sheetsService, config)
	draftCtrl := draftController.New(draftRepo)
	filesCtrl := filesController.New(driveService)

	app := &App{
		Database:             db,
		Config:               config,
		Middleware:           middleware,
		Sheets:               sheetsService,
		Drive:                driveService,
		SessionService:       sessionService,
		UserRepo:             userRepo,
		DraftRepo:            draftRepo,
		AuthController:       authCtrl,
		SubmissionController: submissionCtrl,
		DraftController:      draftCtrl,
		FilesController:      filesCtrl,
	}

	if err := app.validate(); err != nil {
		return &App{}, log.Err("failed to validate app", err)
	}

	return app, nil
}

func (a *App) validate() error {
	log := logger.New("app").Function("validate")
	if a.Database.SQL == nil {
		return log.ErrMsg("database is nil")
	}

	if a.Config == (config.Config{}) {
		return log.ErrMsg("config is nil")
	}

	nilChecks := []any{
		a.Sheets,
		a.Drive,
		a.SessionService,
		a.UserRepo,
		a.DraftRepo,
		a.AuthController,
		a.SubmissionController,
		a.DraftController,
		a.FilesController,
	}

	for _, check := range nilChecks {
		if check == nil {
			return log.ErrMsg("nil check failed")
		}
	}

	return nil
}

func (a *App) Close() error {
	return a.Database.Close()
}
