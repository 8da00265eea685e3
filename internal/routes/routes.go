package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	handler "invoice-dashboard-backend/internal/handlers"
	"invoice-dashboard-backend/internal/repository"
	service "invoice-dashboard-backend/internal/services/dashboard"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, log zerolog.Logger) {
	invoiceRepo := repository.NewInvoiceRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	revenueRepo := repository.NewRevenueRepository(db)

	dashboardService := service.NewDashboardService(
		invoiceRepo,
		customerRepo,
		revenueRepo,
		log,
	)

	Register(r, handler.NewDashboardHandler(dashboardService))
}

// Register mounts the API routes on r.
func Register(r *gin.Engine, h *handler.DashboardHandler) {
	api := r.Group("/api")

	// Health check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	dashboard := api.Group("/dashboard")
	dashboard.GET("/revenue", h.GetRevenue)
	dashboard.GET("/latest-invoices", h.GetLatestInvoices)
	dashboard.GET("/cards", h.GetCardData)

	invoices := api.Group("/invoices")
	{
		invoices.GET("", h.ListInvoices)
		invoices.GET("/pages", h.GetInvoicesPages)
		invoices.GET("/:id", h.GetInvoice)
	}

	customers := api.Group("/customers")
	{
		customers.GET("", h.ListCustomers)
		customers.GET("/search", h.SearchCustomers)
	}
}
