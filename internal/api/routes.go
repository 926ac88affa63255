package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/example/tutormarket/internal/core"
	"github.com/example/tutormarket/internal/middleware"
)

// Services bundles what the route handlers depend on.
type Services struct {
	Tutors   core.TutorService
	Tuitions core.TuitionService
	Health   core.HealthService
}

// SetupRoutes registers every route on router. Global middleware is expected
// to be installed by the caller. When authMW is non-nil the /api group
// requires a valid bearer token.
func SetupRoutes(router *gin.Engine, logger *zap.Logger, services Services, authMW *middleware.AuthMiddleware) {
	tutorHandler := NewTutorHandler(services.Tutors, logger)
	tuitionHandler := NewTuitionHandler(services.Tuitions, logger)
	healthHandler := NewHealthHandler(services.Health, logger)

	router.GET("/", Root)
	router.GET("/health", healthHandler.Check)

	apiGroup := router.Group("/api")
	if authMW != nil {
		apiGroup.Use(authMW.VerifyToken())
	}
	{
		apiGroup.GET("/tutors", tutorHandler.ListTutors)
		apiGroup.GET("/tutors/featured", tutorHandler.FeaturedTutors)
		apiGroup.GET("/tutors/:id", tutorHandler.GetTutor)
		apiGroup.GET("/tuitions", tuitionHandler.ListTuitions)
	}

	logger.Info("API routes configured", zap.Bool("authRequired", authMW != nil))
}
