package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/opostest/backend/config"
	"github.com/opostest/backend/database"
	_ "github.com/opostest/backend/docs"
	adminctrl "github.com/opostest/backend/internal/controller/admin"
	userctrl "github.com/opostest/backend/internal/controller/user"
	"github.com/opostest/backend/internal/auth"
	"github.com/opostest/backend/internal/billing"
	"github.com/opostest/backend/internal/logger"
	"github.com/opostest/backend/internal/mailer"
	"github.com/opostest/backend/internal/model"
	"github.com/opostest/backend/internal/repository"
	"github.com/opostest/backend/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Oposiciones Test API
// @version 1.0
// @description Backend for exam preparation: catalog, question banks, test sessions, statistics and subscriptions.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	logger.Init(cfg.LogLevel, cfg.Env)

	app := fx.New(
		fx.Supply(cfg),
		fx.Provide(
			database.NewDatabase,
			NewGinEngine,
			auth.NewTokenManager,
			auth.NewMiddleware,
			mailer.NewSender,
			billing.NewStripeGateway,
		),

		fx.Provide(
			repository.NewCategoryRepository,
			repository.NewBlockRepository,
			repository.NewTopicRepository,
			repository.NewQuestionRepository,
			repository.NewAnswerRepository,
			repository.NewSessionRepository,
			repository.NewResultRepository,
			repository.NewUserRepository,
			repository.NewSubscriptionRepository,
			repository.NewVerificationCodeRepository,
			repository.NewPasswordResetRepository,
			repository.NewPostRepository,
			repository.NewExamTemplateRepository,
		),

		fx.Provide(
			service.NewCatalogService,
			service.NewAdminCatalogService,
			service.NewQuestionService,
			service.NewExamImportService,
			service.NewSessionService,
			service.NewResultService,
			service.NewStatsService,
			service.NewSubscriptionService,
			service.NewAccountService,
			service.NewContactService,
			service.NewBlogService,
			service.NewExamTemplateService,
			service.NewExplanationService,
		),

		fx.Provide(
			userctrl.NewCatalogController,
			userctrl.NewSessionController,
			userctrl.NewAccountController,
			userctrl.NewContentController,
			adminctrl.NewAdminCatalogController,
			adminctrl.NewImportController,
		),

		fx.Invoke(AutoMigrateDB),
		fx.Invoke(RegisterRoutes),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func NewGinEngine(cfg *config.Config) *gin.Engine {
	if cfg.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	origins := []string{"http://localhost:3000"}
	if cfg.FrontendURL != "" && cfg.FrontendURL != origins[0] {
		origins = append(origins, cfg.FrontendURL)
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", auth.ImportKeyHeader},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	return r
}

func StartServer(lc fx.Lifecycle, router *gin.Engine, cfg *config.Config) {
	server := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	if err := db.AutoMigrate(model.All()...); err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
