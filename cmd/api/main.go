// Package main is the entry point for the AuraCash API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/auracash/backend/config"
	"github.com/auracash/backend/internal/application/adapter"
	"github.com/auracash/backend/internal/application/usecase/auth"
	"github.com/auracash/backend/internal/application/usecase/category"
	"github.com/auracash/backend/internal/application/usecase/goal"
	"github.com/auracash/backend/internal/application/usecase/material"
	"github.com/auracash/backend/internal/application/usecase/sharedaccount"
	"github.com/auracash/backend/internal/application/usecase/transaction"
	"github.com/auracash/backend/internal/infra/db"
	"github.com/auracash/backend/internal/infra/server/router"
	"github.com/auracash/backend/internal/integration/adapters"
	"github.com/auracash/backend/internal/integration/entrypoint/controller"
	"github.com/auracash/backend/internal/integration/entrypoint/middleware"
	"github.com/auracash/backend/internal/integration/persistence"
	"github.com/auracash/backend/internal/integration/persistence/document"
	"github.com/auracash/backend/internal/integration/persistence/model"
)

// repositories groups the persistence bindings for one storage backend. The
// shared transaction, material and product repositories are nil in document
// mode; the routes they back answer 501 there.
type repositories struct {
	user              adapter.UserRepository
	category          adapter.CategoryRepository
	transaction       adapter.TransactionRepository
	goal              adapter.GoalRepository
	sharedAccount     adapter.SharedAccountRepository
	sharedTransaction adapter.SharedTransactionRepository
	material          adapter.MaterialRepository
	product           adapter.ProductRepository
}

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	slog.Info("Starting AuraCash API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	// Initialize storage. PostgreSQL is the primary backend; when it is
	// unreachable at startup the JSON document store takes over.
	var repos repositories
	var dbHealthChecker func() bool
	storageMode := "postgres"

	database, err := db.NewPostgresConnection(&cfg.Database)
	if err != nil {
		slog.Warn("Database connection failed, falling back to document store",
			"error", err,
			"data_dir", cfg.Storage.DataDir,
		)

		store, storeErr := document.Open(cfg.Storage.DataDir)
		if storeErr != nil {
			slog.Error("Failed to open document store", "error", storeErr)
			os.Exit(1)
		}

		storageMode = "document"
		dbHealthChecker = func() bool { return false }
		repos = repositories{
			user:          document.NewUserRepository(store),
			category:      document.NewCategoryRepository(store),
			transaction:   document.NewTransactionRepository(store),
			goal:          document.NewGoalRepository(store),
			sharedAccount: document.NewSharedAccountRepository(store),
		}
	} else {
		// Run database migrations
		if err := database.AutoMigrate(
			&model.UserModel{},
			&model.CategoryModel{},
			&model.TransactionModel{},
			&model.GoalModel{},
			&model.SharedAccountModel{},
			&model.SharedMemberModel{},
			&model.SharedTransactionModel{},
			&model.MaterialModel{},
			&model.ProductModel{},
			&model.ProductMaterialModel{},
		); err != nil {
			slog.Error("Failed to run database migrations", "error", err)
			os.Exit(1)
		}
		slog.Info("Database migrations completed successfully")

		dbHealthChecker = database.HealthCheck
		defer func() {
			if err := database.Close(); err != nil {
				slog.Error("Failed to close database connection", "error", err)
			}
		}()

		repos = repositories{
			user:              persistence.NewUserRepository(database.DB()),
			category:          persistence.NewCategoryRepository(database.DB()),
			transaction:       persistence.NewTransactionRepository(database.DB()),
			goal:              persistence.NewGoalRepository(database.DB()),
			sharedAccount:     persistence.NewSharedAccountRepository(database.DB()),
			sharedTransaction: persistence.NewSharedTransactionRepository(database.DB()),
			material:          persistence.NewMaterialRepository(database.DB()),
			product:           persistence.NewProductRepository(database.DB()),
		}
	}

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)

	// Create category use cases
	bootstrapUseCase := category.NewBootstrapDefaultsUseCase(repos.category)
	listCategoriesUseCase := category.NewListCategoriesUseCase(repos.category)
	createCategoryUseCase := category.NewCreateCategoryUseCase(repos.category)
	deleteCategoryUseCase := category.NewDeleteCategoryUseCase(repos.category)

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(repos.user, passwordService, tokenService, bootstrapUseCase)
	loginUseCase := auth.NewLoginUserUseCase(repos.user, passwordService, tokenService)

	// Create transaction use cases
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(repos.transaction)
	listByCategoryUseCase := transaction.NewListByCategoryUseCase(repos.transaction)
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(repos.transaction, repos.category)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(repos.transaction)

	// Create goal use cases
	listGoalsUseCase := goal.NewListGoalsUseCase(repos.goal, repos.category, repos.transaction)
	createGoalUseCase := goal.NewCreateGoalUseCase(repos.goal, repos.category)
	getProgressUseCase := goal.NewGetProgressUseCase(repos.goal, repos.transaction)
	deleteGoalUseCase := goal.NewDeleteGoalUseCase(repos.goal)

	// Create shared account use cases
	createAccountUseCase := sharedaccount.NewCreateAccountUseCase(repos.sharedAccount)
	joinAccountUseCase := sharedaccount.NewJoinAccountUseCase(repos.sharedAccount)
	leaveAccountUseCase := sharedaccount.NewLeaveAccountUseCase(repos.sharedAccount)
	updateAccountUseCase := sharedaccount.NewUpdateAccountUseCase(repos.sharedAccount)
	deleteAccountUseCase := sharedaccount.NewDeleteAccountUseCase(repos.sharedAccount)
	listAccountsUseCase := sharedaccount.NewListAccountsUseCase(repos.sharedAccount)
	listMembersUseCase := sharedaccount.NewListMembersUseCase(repos.sharedAccount)

	// Create controllers
	healthController := controller.NewHealthController(dbHealthChecker, storageMode)
	authController := controller.NewAuthController(registerUseCase, loginUseCase)
	categoryController := controller.NewCategoryController(
		listCategoriesUseCase,
		createCategoryUseCase,
		deleteCategoryUseCase,
		bootstrapUseCase,
	)
	transactionController := controller.NewTransactionController(
		listTransactionsUseCase,
		listByCategoryUseCase,
		createTransactionUseCase,
		deleteTransactionUseCase,
	)
	goalController := controller.NewGoalController(
		listGoalsUseCase,
		createGoalUseCase,
		getProgressUseCase,
		deleteGoalUseCase,
	)
	sharedAccountController := controller.NewSharedAccountController(
		createAccountUseCase,
		joinAccountUseCase,
		leaveAccountUseCase,
		updateAccountUseCase,
		deleteAccountUseCase,
		listAccountsUseCase,
		listMembersUseCase,
	)

	// The shared sub-ledger and product costing need the relational backend.
	var sharedTransactionController *controller.SharedTransactionController
	var materialController *controller.MaterialController
	if repos.sharedTransaction != nil {
		createSharedTxUseCase := sharedaccount.NewCreateTransactionUseCase(repos.sharedAccount, repos.sharedTransaction, repos.category)
		listSharedTxUseCase := sharedaccount.NewListTransactionsUseCase(repos.sharedAccount, repos.sharedTransaction)
		deleteSharedTxUseCase := sharedaccount.NewDeleteTransactionUseCase(repos.sharedAccount, repos.sharedTransaction)
		sharedTransactionController = controller.NewSharedTransactionController(
			createSharedTxUseCase,
			listSharedTxUseCase,
			deleteSharedTxUseCase,
		)

		createMaterialUseCase := material.NewCreateMaterialUseCase(repos.material)
		listMaterialsUseCase := material.NewListMaterialsUseCase(repos.material)
		deleteMaterialUseCase := material.NewDeleteMaterialUseCase(repos.material)
		costUseCase := material.NewCalculateProductCostUseCase(repos.material, repos.product)
		materialController = controller.NewMaterialController(
			createMaterialUseCase,
			listMaterialsUseCase,
			deleteMaterialUseCase,
			costUseCase,
		)
	} else {
		slog.Warn("Shared sub-ledger and product costing disabled in document store mode")
	}

	// Create middleware
	loginRateLimiter := middleware.NewRateLimiter()
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	slog.Info("Application initialized", "storage", storageMode)

	// Setup router
	r := router.NewRouter(
		healthController,
		authController,
		categoryController,
		transactionController,
		goalController,
		sharedAccountController,
		sharedTransactionController,
		materialController,
		loginRateLimiter,
		authMiddleware,
	)
	engine := r.Setup(cfg.Server.Environment)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}
