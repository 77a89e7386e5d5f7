package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/vesto-learn/vesto-api/config"
	"github.com/vesto-learn/vesto-api/database"
	_ "github.com/vesto-learn/vesto-api/docs" // Swagger docs
	adminctrl "github.com/vesto-learn/vesto-api/internal/controller/admin"
	userctrl "github.com/vesto-learn/vesto-api/internal/controller/user"
	"github.com/vesto-learn/vesto-api/internal/logger"
	"github.com/vesto-learn/vesto-api/internal/middleware"
	"github.com/vesto-learn/vesto-api/internal/model"
	"github.com/vesto-learn/vesto-api/internal/repository"
	"github.com/vesto-learn/vesto-api/internal/service"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Vesto Learning API
// @version 1.0
// @description Financial statement analysis learning platform: AI-graded module answers, an investment pitch simulator, and portfolio tracking.
// @contact.name API Support
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			NewGinEngine,
		),

		fx.Provide(
			repository.NewCompanyRepository,
			repository.NewQuestionRepository,
			repository.NewAnswerRepository,
			repository.NewProgressRepository,
			repository.NewPortfolioRepository,
			repository.NewPitchRepository,
			repository.NewUserRepository,
		),

		fx.Provide(
			service.NewGeminiClient,
			service.NewGradingService,
			service.NewPitchReviewService,
			service.NewProgressService,
			service.NewSubmissionService,
			service.NewCompanyService,
			service.NewPortfolioService,
			service.NewPitchService,
			service.NewAuthService,
		),

		fx.Provide(
			userctrl.NewCompanyController,
			userctrl.NewModuleController,
			userctrl.NewPortfolioController,
			userctrl.NewSimulatorController,
			userctrl.NewAuthController,
			adminctrl.NewAdminQuestionController,
		),

		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(AutoMigrateDB),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("user_agent", param.Request.UserAgent()).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// URL: http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	authService service.AuthService,
	companyCtrl *userctrl.CompanyController,
	moduleCtrl *userctrl.ModuleController,
	portfolioCtrl *userctrl.PortfolioController,
	simulatorCtrl *userctrl.SimulatorController,
	authCtrl *userctrl.AuthController,
	adminQuestionCtrl *adminctrl.AdminQuestionController,
) {
	api := router.Group("/api/v1")
	{
		// Public routes: company browsing, account creation, pitch submission.
		api.GET("/companies", companyCtrl.ListCompanies)
		api.GET("/companies/:symbol", companyCtrl.GetCompany)
		api.GET("/modules/:module_id/questions", moduleCtrl.GetQuestions)

		api.POST("/auth/signup", authCtrl.Signup)
		api.POST("/auth/login", authCtrl.Login)

		api.POST("/simulator/pitch", simulatorCtrl.SubmitPitch)

		// Session routes: everything tied to a specific user's data.
		session := api.Group("")
		session.Use(middleware.RequireSession(authService))
		{
			session.POST("/modules/:module_id/grade", moduleCtrl.GradeAnswer)
			session.GET("/modules/:module_id/progress", moduleCtrl.GetProgress)
			session.PUT("/modules/:module_id/progress", moduleCtrl.SaveProgress)
			session.GET("/modules/:module_id/answers", moduleCtrl.GetAnswers)

			session.GET("/portfolio", portfolioCtrl.GetPortfolio)
			session.POST("/portfolio", portfolioCtrl.AddHolding)

			session.GET("/simulator/pitches", simulatorCtrl.GetPitches)
			session.POST("/simulator/pitch/:pitch_id/invest", simulatorCtrl.Invest)
		}
	}

	adminAPI := router.Group("/api/v1/admin")
	{
		adminAPI.POST("/modules/:module_id/questions", adminQuestionCtrl.CreateQuestion)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Vesto API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.User{},
		&model.Company{},
		&model.CompanyFundamentals{},
		&model.CompanyQuote{},
		&model.Mock10K{},
		&model.Question{},
		&model.UserAnswer{},
		&model.UserProgress{},
		&model.UserPortfolio{},
		&model.PitchSubmission{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
