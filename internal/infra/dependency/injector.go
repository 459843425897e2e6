// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/smartspend/backend/config"
	"github.com/smartspend/backend/internal/application/adapter"
	"github.com/smartspend/backend/internal/application/usecase/auth"
	"github.com/smartspend/backend/internal/application/usecase/budget"
	"github.com/smartspend/backend/internal/application/usecase/dashboard"
	"github.com/smartspend/backend/internal/application/usecase/entry"
	"github.com/smartspend/backend/internal/infra/server/router"
	"github.com/smartspend/backend/internal/integration/adapters"
	"github.com/smartspend/backend/internal/integration/cache"
	"github.com/smartspend/backend/internal/integration/email"
	"github.com/smartspend/backend/internal/integration/entrypoint/controller"
	"github.com/smartspend/backend/internal/integration/entrypoint/middleware"
	"github.com/smartspend/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
// redisClient may be nil; the dashboard then runs without its summary cache.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Injector, error) {
	// Create adapters/services
	cipher, err := adapters.NewFieldCipher(cfg.Security.EncryptionKey)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize field cipher: %w", err)
	}

	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	entryRepo := persistence.NewEntryRepository(db, cipher)
	budgetRepo := persistence.NewBudgetRepository(db)

	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
		tokenRepo,
	)
	loginThrottle := adapters.NewLoginThrottle(cfg.Security.LockoutAttempts, cfg.Security.LockoutDuration)

	dataServiceClient := adapters.NewDataServiceClient(cfg.Categorizer.BaseURL, cfg.Categorizer.Timeout)
	categorizer, err := selectCategorizer(cfg, dataServiceClient)
	if err != nil {
		return nil, err
	}

	var alertSender adapter.BudgetAlertSender
	if cfg.Email.AlertsEnabled && cfg.Email.ResendAPIKey != "" {
		alertSender = email.NewResendAlertSender(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
	} else {
		slog.Info("Budget alerts disabled")
	}

	var summaryCache adapter.SummaryCache
	if redisClient != nil {
		summaryCache = cache.NewSummaryCache(redisClient)
	}

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService, loginThrottle)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)

	// Create entry use cases
	recordEntryUseCase := entry.NewRecordEntryUseCase(entryRepo, budgetRepo, userRepo, categorizer, alertSender)
	listEntriesUseCase := entry.NewListEntriesUseCase(entryRepo)
	getEntryUseCase := entry.NewGetEntryUseCase(entryRepo)
	updateEntryUseCase := entry.NewUpdateEntryUseCase(entryRepo)
	deleteEntryUseCase := entry.NewDeleteEntryUseCase(entryRepo)

	// Create budget use cases
	createBudgetUseCase := budget.NewCreateBudgetUseCase(budgetRepo)
	listBudgetsUseCase := budget.NewListBudgetsUseCase(budgetRepo)
	getBudgetUseCase := budget.NewGetBudgetUseCase(budgetRepo)
	updateBudgetUseCase := budget.NewUpdateBudgetUseCase(budgetRepo)
	deleteBudgetUseCase := budget.NewDeleteBudgetUseCase(budgetRepo)

	// Create dashboard use cases
	summaryUseCase := dashboard.NewGetSummaryUseCase(entryRepo, budgetRepo, summaryCache)
	forecastUseCase := dashboard.NewGetForecastUseCase(entryRepo, dataServiceClient)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		refreshTokenUseCase,
		logoutUseCase,
	)

	entryController := controller.NewEntryController(
		recordEntryUseCase,
		listEntriesUseCase,
		getEntryUseCase,
		updateEntryUseCase,
		deleteEntryUseCase,
	)

	budgetController := controller.NewBudgetController(
		createBudgetUseCase,
		listBudgetsUseCase,
		getBudgetUseCase,
		updateBudgetUseCase,
		deleteBudgetUseCase,
	)

	dashboardController := controller.NewDashboardController(summaryUseCase, forecastUseCase)

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(
		healthController,
		authController,
		entryController,
		budgetController,
		dashboardController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: r,
	}, nil
}

// selectCategorizer picks the categorizer backend from configuration.
func selectCategorizer(cfg *config.Config, dataServiceClient *adapters.DataServiceClient) (adapter.Categorizer, error) {
	switch cfg.Categorizer.Provider {
	case "gemini":
		categorizer, err := adapters.NewGeminiCategorizer(context.Background(), cfg.Categorizer.GeminiAPIKey)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize gemini categorizer: %w", err)
		}
		return categorizer, nil
	case "data-service", "":
		return dataServiceClient, nil
	default:
		return nil, fmt.Errorf("unknown categorizer provider %q", cfg.Categorizer.Provider)
	}
}
