package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-library-management/config"
	deliveryHttp "go-library-management/internal/delivery/http"
	"go-library-management/internal/delivery/http/handler"
	"go-library-management/internal/delivery/http/middleware"
	"go-library-management/internal/infrastructure/cache"
	"go-library-management/internal/infrastructure/database"
	"go-library-management/internal/repository"
	"go-library-management/internal/service"
	"go-library-management/internal/usecase"
	"go-library-management/pkg/jwt"
	"go-library-management/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Mailer      *service.MailService
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	// Apply pending migrations (includes the role seed)
	if err := database.RunMigrations(db, cfg.DB.MigrationsPath); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	// Initialize the async mail dispatcher
	mailer := service.NewMailService(cfg.Mail, logrus.StandardLogger())
	app.Mailer = mailer

	// Initialize all layers
	server := initializeServer(cfg, db, redisClient, mailer)
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, mailer *service.MailService) *http.Server {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	userRepo := repository.NewUserRepository()
	roleRepo := repository.NewRoleRepository()
	authorRepo := repository.NewAuthorRepository()
	bookRepo := repository.NewBookRepository()
	loanRepo := repository.NewBookRequestRepository()
	ticketRepo := repository.NewTicketRepository()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, roleRepo, jwtService, redisClient, mailer)
	userUsecase := usecase.NewUserUsecase(db, log, userRepo)
	roleUsecase := usecase.NewRoleUsecase(db, log, roleRepo)
	authorUsecase := usecase.NewAuthorUsecase(db, log, authorRepo)
	bookUsecase := usecase.NewBookUsecase(db, log, bookRepo, authorRepo)
	loanUsecase := usecase.NewLoanUsecase(db, log, loanRepo, bookRepo, userRepo, mailer)
	ticketUsecase := usecase.NewTicketUsecase(db, log, ticketRepo, userRepo, mailer)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator)
	userHandler := handler.NewUserHandler(userUsecase, customValidator)
	librarianHandler := handler.NewLibrarianHandler(authUsecase, customValidator)
	roleHandler := handler.NewRoleHandler(roleUsecase, customValidator)
	authorHandler := handler.NewAuthorHandler(authorUsecase, customValidator)
	bookHandler := handler.NewBookHandler(bookUsecase, customValidator)
	loanHandler := handler.NewLoanHandler(loanUsecase, customValidator)
	ticketHandler := handler.NewTicketHandler(ticketUsecase, customValidator)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(
		authHandler,
		userHandler,
		librarianHandler,
		roleHandler,
		authorHandler,
		bookHandler,
		loanHandler,
		ticketHandler,
		authMiddleware,
		corsMiddleware,
	)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, mail dispatcher).
func (app *App) Close() {
	// Drain and stop the mail dispatcher
	if app.Mailer != nil {
		app.Mailer.Stop()
	}

	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
