package main

import (
	"alcyxob/student-portal/internal/api"
	"alcyxob/student-portal/internal/config"
	"alcyxob/student-portal/internal/logger"
	"alcyxob/student-portal/internal/render"
	"alcyxob/student-portal/internal/repository"
	"alcyxob/student-portal/internal/repository/bolt"
	"alcyxob/student-portal/internal/repository/memory"
	"alcyxob/student-portal/internal/repository/mongo"
	"alcyxob/student-portal/internal/service"
	"alcyxob/student-portal/internal/storage"
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// @title Student Portal
// @version 1.0
// @description Server-rendered student portal: dashboard, courses, assignments and profile.
// @host localhost:8080
// @BasePath /
func main() {
	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}

	zlog, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatalf("FATAL: Could not build logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()
	zap.ReplaceGlobals(zlog)
	zlog.Info("Starting Student Portal server...")

	loc, err := cfg.Portal.Location()
	if err != nil {
		zlog.Fatal("Invalid portal timezone", zap.String("timezone", cfg.Portal.Timezone), zap.Error(err))
	}

	// --- Preference Store ---
	prefStore, err := openPreferenceStore(cfg, zlog)
	if err != nil {
		zlog.Fatal("Could not open preference store", zap.String("driver", cfg.Preferences.Driver), zap.Error(err))
	}
	defer func() {
		zlog.Info("Closing preference store...")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := prefStore.Close(ctx); err != nil {
			zlog.Error("Failed to close preference store", zap.Error(err))
		}
	}()

	// --- Initialize Storage ---
	var objects storage.ObjectStorage
	if cfg.S3.Enabled {
		zlog.Info("Initializing avatar storage...")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		objects, err = storage.NewS3Storage(ctx, cfg.S3, zlog)
		cancel()
		if err != nil {
			zlog.Fatal("Failed to initialize S3 storage", zap.Error(err))
		}
	}
	avatars := storage.NewAvatarResolver(objects, 0, zlog)

	// --- Initialize Repositories ---
	db := memory.Open(memory.DefaultSeed())
	assignmentRepo := memory.NewAssignmentRepository(db)
	courseRepo := memory.NewCourseRepository(db)
	profileRepo := memory.NewProfileRepository(db)
	statRepo := memory.NewStatRepository(db)

	// --- Initialize Services ---
	clock := service.SystemClock{Location: loc}
	alerts := service.NewAlertQueue(clock, cfg.Portal.AlertDuration)
	validate := service.NewValidator()

	prefService := service.NewPreferenceService(prefStore)
	simulator := service.NewSimulator(assignmentRepo, clock, service.TimerScheduler{}, alerts, cfg.Portal.SubmitDelay, zlog)
	assignmentService := service.NewAssignmentService(assignmentRepo, clock, simulator)
	courseService := service.NewCourseService(courseRepo)
	dashboardService := service.NewDashboardService(statRepo, courseService, assignmentService, prefService, alerts, cfg.Portal.WelcomeAlertDuration)
	profileService := service.NewProfileService(profileRepo, prefService, alerts, validate, zlog)
	authService := service.NewAuthService(prefService, validate, cfg.Session.Secret, cfg.Session.Expiration, clock)

	renderer, err := render.New(zlog)
	if err != nil {
		zlog.Fatal("Could not parse templates", zap.Error(err))
	}

	// --- Initialize Gin Engine ---
	if !cfg.Log.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(logger.GinMiddleware(zlog), gin.Recovery())

	api.SetupRoutes(router, api.Dependencies{
		Session:     cfg.Session,
		Secure:      cfg.Server.SecureCookies,
		Auth:        authService,
		Dashboard:   dashboardService,
		Courses:     courseService,
		Assignments: assignmentService,
		Profile:     profileService,
		Preferences: prefService,
		Alerts:      alerts,
		Avatars:     avatars,
		Renderer:    renderer,
		Log:         zlog,
	})

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	zlog.Info("Server starting", zap.String("address", cfg.Server.Address))

	// --- Graceful Shutdown ---
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("ListenAndServe error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zlog.Info("Shutting down server...")

	// in-flight requests get 5 seconds
	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		zlog.Error("Server forced to shutdown", zap.Error(err))
	}

	zlog.Info("Server exiting.")
}

func openPreferenceStore(cfg config.Config, zlog *zap.Logger) (repository.PreferenceStore, error) {
	switch cfg.Preferences.Driver {
	case "", "bolt":
		zlog.Info("Opening bolt preference store", zap.String("path", cfg.Preferences.BoltPath))
		return bolt.OpenPreferenceStore(cfg.Preferences.BoltPath)
	case "mongo":
		client, err := mongo.ConnectDB(cfg.Database.URI)
		if err != nil {
			return nil, err
		}
		appDB := client.Database(cfg.Database.Name)

		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		if err := mongo.EnsurePreferenceIndexes(ctx, mongo.PreferenceCollection(appDB)); err != nil {
			if derr := mongo.DisconnectDB(client); derr != nil {
				zlog.Warn("Failed to disconnect MongoDB", zap.Error(derr))
			}
			return nil, err
		}
		zlog.Info("MongoDB preference store ready", zap.String("database", cfg.Database.Name))
		return mongo.NewMongoPreferenceStore(client, appDB), nil
	default:
		return nil, fmt.Errorf("unknown preferences driver %q", cfg.Preferences.Driver)
	}
}
