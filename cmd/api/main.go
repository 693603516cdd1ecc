package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/cmlabs-hris/portal-backend-go/internal/config"
	appHTTP "github.com/cmlabs-hris/portal-backend-go/internal/handler/http"
	"github.com/cmlabs-hris/portal-backend-go/internal/pkg/cron"
	"github.com/cmlabs-hris/portal-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/portal-backend-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/portal-backend-go/internal/pkg/oauth"
	"github.com/cmlabs-hris/portal-backend-go/internal/pkg/sse"
	"github.com/cmlabs-hris/portal-backend-go/internal/pkg/storage"
	"github.com/cmlabs-hris/portal-backend-go/internal/repository/memory"
	"github.com/cmlabs-hris/portal-backend-go/internal/repository/postgresql"
	serviceAuth "github.com/cmlabs-hris/portal-backend-go/internal/service/auth"
	serviceEditflow "github.com/cmlabs-hris/portal-backend-go/internal/service/editflow"
	serviceEditsession "github.com/cmlabs-hris/portal-backend-go/internal/service/editsession"
	"github.com/cmlabs-hris/portal-backend-go/internal/service/file"
	serviceNavigation "github.com/cmlabs-hris/portal-backend-go/internal/service/navigation"
	serviceNotification "github.com/cmlabs-hris/portal-backend-go/internal/service/notification"

	domainNavigation "github.com/cmlabs-hris/portal-backend-go/internal/domain/navigation"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	sessionStore := memory.NewEditSessionStore()

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	googleService := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)

	var fileStorage storage.FileStorage
	switch cfg.Storage.Type {
	case "local":
		fileStorage, err = storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
		if err != nil {
			log.Fatal("Failed to initialize local storage:", err)
		}
	case "object":
		fileStorage = storage.NewObjectStorage(cfg.Storage.BaseURL, true)
	default:
		log.Fatal("Unsupported storage type: ", cfg.Storage.Type)
	}

	hub := sse.NewHub()

	fileService := file.NewFileService(fileStorage)
	notificationService := serviceNotification.NewNotificationService(hub)
	authService := serviceAuth.NewAuthService(userRepo, jwtService, googleService)
	navigationService := serviceNavigation.NewNavigationService(domainNavigation.Registry())
	editSessionService := serviceEditsession.NewEditSessionService(sessionStore, employeeRepo)
	editFlowController := serviceEditflow.NewEditFlowController(
		sessionStore,
		editSessionService,
		employeeRepo,
		fileService,
		notificationService,
		func(ctx context.Context, fn func(ctx context.Context) error) error {
			return postgresql.WithTransaction(ctx, db, fn)
		},
	)

	authHandler := appHTTP.NewAuthHandler(authService, googleService, jwtService)
	navigationHandler := appHTTP.NewNavigationHandler(navigationService, cfg.Features.Enterprise, cfg.Features.ESignEnabled)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeRepo)
	editSessionHandler := appHTTP.NewEditSessionHandler(editSessionService, editFlowController)
	notificationHandler := appHTTP.NewNotificationHandler(hub, jwtService)

	scheduler := cron.NewScheduler()
	cron.NewEditSessionJobs(sessionStore, cfg.EditSession.TTL).RegisterJobs(scheduler, cfg.EditSession.SweepInterval)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		cfg,
		jwtService,
		authHandler,
		navigationHandler,
		employeeHandler,
		editSessionHandler,
		notificationHandler,
	)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Println("Listening on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal(err)
	}
}
