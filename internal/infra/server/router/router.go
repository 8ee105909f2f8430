// Package router sets up the HTTP routing for the application.
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainerror "github.com/auracash/backend/internal/domain/error"
	"github.com/auracash/backend/internal/integration/entrypoint/controller"
	"github.com/auracash/backend/internal/integration/entrypoint/dto"
	"github.com/auracash/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies. The material and
// shared transaction controllers are nil in document-store mode; their routes
// then answer 501.
type Router struct {
	engine                      *gin.Engine
	healthController            *controller.HealthController
	authController              *controller.AuthController
	categoryController          *controller.CategoryController
	transactionController       *controller.TransactionController
	goalController              *controller.GoalController
	sharedAccountController     *controller.SharedAccountController
	sharedTransactionController *controller.SharedTransactionController
	materialController          *controller.MaterialController
	loginRateLimiter            *middleware.RateLimiter
	authMiddleware              *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	categoryController *controller.CategoryController,
	transactionController *controller.TransactionController,
	goalController *controller.GoalController,
	sharedAccountController *controller.SharedAccountController,
	sharedTransactionController *controller.SharedTransactionController,
	materialController *controller.MaterialController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:            healthController,
		authController:              authController,
		categoryController:          categoryController,
		transactionController:       transactionController,
		goalController:              goalController,
		sharedAccountController:     sharedAccountController,
		sharedTransactionController: sharedTransactionController,
		materialController:          materialController,
		loginRateLimiter:            loginRateLimiter,
		authMiddleware:              authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	// Setup routes
	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		// Auth routes (only setup if auth controller is available)
		if r.authController != nil && r.loginRateLimiter != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/register", r.authController.Register)
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
			}
		}

		// Category routes (require authentication)
		if r.categoryController != nil && r.authMiddleware != nil {
			categories := v1.Group("/categories")
			categories.Use(r.authMiddleware.Authenticate())
			{
				categories.GET("", r.categoryController.List)
				categories.POST("", r.categoryController.Create)
				categories.POST("/defaults", r.categoryController.BootstrapDefaults)
				categories.DELETE("/:id", r.categoryController.Delete)
			}
		}

		// Transaction routes (require authentication)
		if r.transactionController != nil && r.authMiddleware != nil {
			transactions := v1.Group("/transactions")
			transactions.Use(r.authMiddleware.Authenticate())
			{
				transactions.GET("", r.transactionController.List)
				transactions.GET("/category/:id", r.transactionController.ListByCategory)
				transactions.POST("", r.transactionController.Create)
				transactions.DELETE("/:id", r.transactionController.Delete)
			}
		}

		// Goal routes (require authentication)
		if r.goalController != nil && r.authMiddleware != nil {
			goals := v1.Group("/goals")
			goals.Use(r.authMiddleware.Authenticate())
			{
				goals.GET("", r.goalController.List)
				goals.POST("", r.goalController.Create)
				goals.GET("/:id/progress", r.goalController.GetProgress)
				goals.DELETE("/:id", r.goalController.Delete)
			}
		}

		// Shared account routes (require authentication)
		if r.sharedAccountController != nil && r.authMiddleware != nil {
			accounts := v1.Group("/shared-accounts")
			accounts.Use(r.authMiddleware.Authenticate())
			{
				accounts.POST("", r.sharedAccountController.Create)
				accounts.GET("", r.sharedAccountController.List)
				accounts.POST("/join", r.sharedAccountController.Join)
				accounts.POST("/:id/leave", r.sharedAccountController.Leave)
				accounts.PUT("/:id", r.sharedAccountController.Update)
				accounts.DELETE("/:id", r.sharedAccountController.Delete)
				accounts.GET("/:id/members", r.sharedAccountController.ListMembers)

				// Shared sub-ledger routes (relational backend only)
				if r.sharedTransactionController != nil {
					accounts.POST("/:id/transactions", r.sharedTransactionController.Create)
					accounts.GET("/:id/transactions", r.sharedTransactionController.List)
					accounts.DELETE("/:id/transactions/:transaction_id", r.sharedTransactionController.Delete)
				} else {
					accounts.POST("/:id/transactions", requiresDatabase)
					accounts.GET("/:id/transactions", requiresDatabase)
					accounts.DELETE("/:id/transactions/:transaction_id", requiresDatabase)
				}
			}
		}

		// Material and product-costing routes (relational backend only)
		if r.authMiddleware != nil {
			materials := v1.Group("/materials")
			materials.Use(r.authMiddleware.Authenticate())
			products := v1.Group("/products")
			products.Use(r.authMiddleware.Authenticate())

			if r.materialController != nil {
				materials.GET("", r.materialController.List)
				materials.POST("", r.materialController.Create)
				materials.DELETE("/:id", r.materialController.Delete)
				products.POST("/cost", r.materialController.CalculateCost)
			} else {
				materials.GET("", requiresDatabase)
				materials.POST("", requiresDatabase)
				materials.DELETE("/:id", requiresDatabase)
				products.POST("/cost", requiresDatabase)
			}
		}
	}
}

// requiresDatabase answers for routes whose backing feature is unavailable in
// document-store mode.
func requiresDatabase(ctx *gin.Context) {
	ctx.JSON(http.StatusNotImplemented, dto.ErrorResponse{
		Error: "This feature requires the relational backend",
		Code:  string(domainerror.ErrCodeRequiresDatabase),
	})
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
