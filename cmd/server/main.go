package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/example/tutormarket/internal/api"
	"github.com/example/tutormarket/internal/config"
	"github.com/example/tutormarket/internal/core"
	"github.com/example/tutormarket/internal/db"
	"github.com/example/tutormarket/internal/firebase"
	"github.com/example/tutormarket/internal/middleware"
)

const (
	shutdownTimeout = 10 * time.Second
	// Upper bound for the background connect plus index setup. The driver's
	// own server selection timeout is 30s.
	storeSetupTimeout = 60 * time.Second
)

func main() {
	// --- 1. Environment and configuration ---
	// In production, environment variables are set directly.
	if !strings.EqualFold(strings.TrimSpace(os.Getenv("GIN_MODE")), gin.ReleaseMode) {
		if err := godotenv.Load(); err != nil {
			log.Println("Warning: no .env file loaded:", err)
		}
	}

	appConfig, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("CRITICAL_ERROR: Failed to load application configuration: %v", err)
	}

	// --- 2. Logger (Zap) ---
	var zapLogger *zap.Logger
	if appConfig.IsRelease() {
		zapLogger, err = zap.NewProduction()
	} else {
		zapLogger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("CRITICAL_ERROR: Failed to initialize Zap logger: %v", err)
	}
	defer zapLogger.Sync()
	zapLogger.Info("Application configuration loaded",
		zap.String("port", appConfig.Port),
		zap.String("database", appConfig.MongoDatabase),
		zap.Bool("forceIPv4", appConfig.MongoForceIPv4),
		zap.Bool("requireAuth", appConfig.RequireAuth),
	)

	// --- 3. Firebase Auth (optional) ---
	var authMW *middleware.AuthMiddleware
	initCtx, cancelInit := context.WithTimeout(context.Background(), 15*time.Second)
	authClient, err := firebase.NewAuthClient(initCtx, appConfig)
	cancelInit()
	switch {
	case errors.Is(err, firebase.ErrNotConfigured):
		zapLogger.Warn("Firebase credentials not configured; token verification unavailable")
	case err != nil:
		if appConfig.RequireAuth {
			zapLogger.Fatal("CRITICAL_ERROR: Failed to initialize Firebase Auth", zap.Error(err))
		}
		zapLogger.Error("Failed to initialize Firebase Auth", zap.Error(err))
	default:
		zapLogger.Info("Firebase Auth client initialized")
		if appConfig.RequireAuth {
			authMW = middleware.NewAuthMiddleware(authClient, zapLogger)
		}
	}

	// --- 4. Store, repositories and services ---
	store := db.NewStore(appConfig)
	tutorRepo := db.NewMongoTutorRepository(store)
	tuitionRepo := db.NewMongoTuitionRepository(store)

	services := api.Services{
		Tutors:   core.NewTutorService(tutorRepo),
		Tuitions: core.NewTuitionService(tuitionRepo),
		Health:   core.NewHealthService(store, appConfig.HealthPingTimeout),
	}

	// --- 5. Gin engine and global middleware ---
	if appConfig.IsRelease() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}
	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(zapLogger))
	router.Use(middleware.RecoveryMiddleware(zapLogger))
	router.Use(middleware.CORSMiddleware(appConfig.AllowedOrigins()))
	if len(appConfig.AllowedOrigins()) == 0 {
		zapLogger.Warn("CLIENT_URL is not configured; CORS allows all origins")
	}

	api.SetupRoutes(router, zapLogger, services, authMW)

	// --- 6. HTTP server; listens before the store is reachable ---
	serverAddr := fmt.Sprintf(":%s", appConfig.Port)
	httpServer := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	zapLogger.Info("Starting HTTP server...", zap.String("address", serverAddr), zap.String("ginMode", gin.Mode()))
	go func() {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("Failed to start HTTP server", zap.Error(err))
		}
	}()

	// --- 7. Store connection in the background ---
	storeCtx, cancelStore := context.WithCancel(context.Background())
	defer cancelStore()
	go connectStore(storeCtx, store, zapLogger)

	// --- 8. Graceful shutdown ---
	quitChannel := make(chan os.Signal, 1)
	signal.Notify(quitChannel, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quitChannel
	zapLogger.Info("Received shutdown signal", zap.String("signal", sig.String()))
	cancelStore()

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelShutdown()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("Server forced to shutdown", zap.Error(err))
	}
	if err := store.Disconnect(shutdownCtx); err != nil {
		zapLogger.Error("Failed to disconnect from MongoDB", zap.Error(err))
	}

	zapLogger.Info("Server exiting gracefully.")
}

// connectStore connects to MongoDB and creates the indexes. Failures are
// logged and the server keeps running; /health reports the state.
func connectStore(ctx context.Context, store *db.Store, logger *zap.Logger) {
	ctx, cancel := context.WithTimeout(ctx, storeSetupTimeout)
	defer cancel()

	if err := store.Connect(ctx); err != nil {
		// A client whose first ping failed is still kept; index setup below
		// either succeeds once the deployment answers or reports ErrNotConnected.
		logger.Error("MongoDB connection failed", zap.String("database", store.DatabaseName()), zap.Error(err))
	} else {
		logger.Info("Connected to MongoDB", zap.String("database", store.DatabaseName()))
	}

	created, err := db.EnsureIndexes(ctx, store)
	if len(created) > 0 {
		logger.Info("MongoDB indexes ensured", zap.Strings("indexes", created))
	}
	if err != nil {
		logger.Error("MongoDB index setup failed", zap.Error(err))
	}
}
