package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/gestion-escolar/escuela-api/api/swagger"
	"github.com/gestion-escolar/escuela-api/internal/handler"
	"github.com/gestion-escolar/escuela-api/internal/middleware"
	"github.com/gestion-escolar/escuela-api/internal/repository"
	"github.com/gestion-escolar/escuela-api/internal/service"
	"github.com/gestion-escolar/escuela-api/pkg/cache"
	"github.com/gestion-escolar/escuela-api/pkg/config"
	"github.com/gestion-escolar/escuela-api/pkg/database"
	"github.com/gestion-escolar/escuela-api/pkg/logger"
	corsmiddleware "github.com/gestion-escolar/escuela-api/pkg/middleware/cors"
	reqidmiddleware "github.com/gestion-escolar/escuela-api/pkg/middleware/requestid"
)

// @title API Gestión Escolar
// @version 1.0.0
// @description Gestión de profesores, horarios, asistencias y roles
// @BasePath /api/v1
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
	}
	defer db.Close()

	redisClient, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		logr.Sugar().Warnw("redis unavailable, role cache disabled", "error", err)
		redisClient = nil
	}

	validate := validator.New()

	profesorRepo := repository.NewProfesorRepository(db)
	materiaRepo := repository.NewMateriaRepository(db)
	horarioRepo := repository.NewHorarioRepository(db)
	asistenciaRepo := repository.NewAsistenciaRepository(db)
	userRepo := repository.NewUserRepository(db)
	rolRepo := repository.NewRolRepository(db)

	metricsService := service.NewMetricsService()
	rolService := service.NewRolService(rolRepo, redisClient, cfg.Roles.CacheTTL, logr, metricsService)
	authService := service.NewAuthService(userRepo, rolService, validate, logr, service.AuthConfig{
		AccessTokenSecret:  cfg.JWT.Secret,
		AccessTokenExpiry:  cfg.JWT.Expiration,
		RefreshTokenExpiry: cfg.JWT.RefreshExpiration,
		Issuer:             "escuela-api",
	})
	profesorService := service.NewProfesorService(profesorRepo, validate, logr)
	materiaService := service.NewMateriaService(materiaRepo, logr)
	horarioService := service.NewHorarioService(horarioRepo, validate, logr)
	asistenciaService := service.NewAsistenciaService(asistenciaRepo, validate, logr)
	usuarioService := service.NewUsuarioService(userRepo, rolRepo, rolService, logr)
	exportService := service.NewExportService(profesorService, asistenciaService, logr)

	handlers := handler.Handlers{
		Auth:       handler.NewAuthHandler(authService, rolService),
		Profesores: handler.NewProfesorHandler(profesorService),
		Materias:   handler.NewMateriaHandler(materiaService),
		Horarios:   handler.NewHorarioHandler(horarioService),
		Asistencia: handler.NewAsistenciaHandler(asistenciaService),
		AdminUsers: handler.NewAdminUserHandler(usuarioService),
		Exports:    handler.NewExportHandler(exportService),
		Metrics:    handler.NewMetricsHandler(metricsService),
	}

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsService))

	handler.RegisterRoutes(r, cfg.APIPrefix, authService, rolService, handlers, cfg.Exports.Enabled)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
