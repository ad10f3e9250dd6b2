package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "gstbilling/docs"
	"gstbilling/internal/handler"
	"gstbilling/internal/middleware"
	"gstbilling/internal/service"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	authSvc service.AuthService,
	authH *handler.AuthHandler,
	profileH *handler.ProfileHandler,
	customerH *handler.CustomerHandler,
	productH *handler.ProductHandler,
	invoiceH *handler.InvoiceHandler,
	inventoryH *handler.InventoryHandler,
	bookH *handler.BookHandler,
	reportH *handler.ReportHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS())

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	// API documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")

	// Public auth routes
	auth := v1.Group("/auth")
	auth.POST("/signup", authH.Signup)
	auth.POST("/login", authH.Login)
	auth.POST("/refresh", authH.RefreshToken)

	// Protected routes - require valid JWT
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authSvc))

	// Business profile
	protected.GET("/profile", profileH.Get)
	protected.PUT("/profile", profileH.Update)

	// Customers
	customers := protected.Group("/customers")
	customers.POST("", customerH.Create)
	customers.GET("", customerH.List)
	customers.GET("/:id", customerH.GetByID)
	customers.PUT("/:id", customerH.Update)
	customers.DELETE("/:id", customerH.Delete)

	// Products
	products := protected.Group("/products")
	products.POST("", productH.Create)
	products.GET("", productH.List)
	products.GET("/:id", productH.GetByID)
	products.PUT("/:id", productH.Update)
	products.DELETE("/:id", productH.Delete)

	// Invoices
	invoices := protected.Group("/invoices")
	invoices.POST("", invoiceH.Create)
	invoices.GET("", invoiceH.List)
	invoices.GET("/next-number", invoiceH.NextNumber)
	invoices.GET("/:id/view", invoiceH.View)
	invoices.DELETE("/:id", invoiceH.Delete)
	invoices.POST("/:id/email", invoiceH.SendEmail)

	// Inventory
	inventory := protected.Group("/inventory")
	inventory.GET("", inventoryH.List)
	inventory.GET("/:productId", inventoryH.GetByProduct)
	inventory.POST("/:productId/logs", inventoryH.AddLog)
	inventory.GET("/:productId/logs", inventoryH.ListLogs)

	// Customer ledger books
	books := protected.Group("/books")
	books.GET("", bookH.List)
	books.GET("/:id", bookH.GetByID)
	books.POST("/:id/logs", bookH.AddLog)
	books.GET("/:id/logs", bookH.ListLogs)

	// Reports
	reports := protected.Group("/reports")
	reports.GET("/register", reportH.ExportRegister)

	return r
}
