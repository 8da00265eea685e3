package handler

import (
	"context"
	"net/http"
	"strconv"

	"invoice-dashboard-backend/internal/format"
	"invoice-dashboard-backend/internal/models"
	"invoice-dashboard-backend/internal/services/dashboard"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DashboardReader is the read API the handlers serve.
type DashboardReader interface {
	FetchRevenue(ctx context.Context) ([]models.Revenue, error)
	FetchLatestInvoices(ctx context.Context) ([]models.LatestInvoice, error)
	FetchCardData(ctx context.Context) (*models.CardData, error)
	FetchFilteredInvoices(ctx context.Context, query string, page int) ([]models.InvoiceTableRow, error)
	FetchInvoicesPages(ctx context.Context, query string) (int, error)
	FetchInvoiceByID(ctx context.Context, id uuid.UUID) (*models.InvoiceForm, error)
	FetchCustomers(ctx context.Context) ([]models.CustomerField, error)
	FetchFilteredCustomers(ctx context.Context, query string) ([]models.CustomerSummaryRow, error)
}

type DashboardHandler struct {
	service DashboardReader
}

func NewDashboardHandler(s DashboardReader) *DashboardHandler {
	return &DashboardHandler{service: s}
}

// invoiceTableItem adds the display strings the invoice table renders.
type invoiceTableItem struct {
	models.InvoiceTableRow
	AmountDisplay string `json:"amount_display"`
	DateDisplay   string `json:"date_display"`
}

// GetRevenue returns the monthly revenue with the chart's y-axis labels
func (h *DashboardHandler) GetRevenue(c *gin.Context) {
	revenue, err := h.service.FetchRevenue(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	labels, top := format.GenerateYAxis(revenue)
	c.JSON(http.StatusOK, gin.H{
		"revenue":       revenue,
		"y_axis_labels": labels,
		"top_label":     top,
	})
}

func (h *DashboardHandler) GetLatestInvoices(c *gin.Context) {
	invoices, err := h.service.FetchLatestInvoices(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, invoices)
}

func (h *DashboardHandler) GetCardData(c *gin.Context) {
	cards, err := h.service.FetchCardData(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, cards)
}

// ListInvoices serves one page of the invoice search together with the pagination state
func (h *DashboardHandler) ListInvoices(c *gin.Context) {
	query := c.Query("query")
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid page"})
		return
	}
	page = dashboard.ClampPage(page)

	ctx := c.Request.Context()
	rows, err := h.service.FetchFilteredInvoices(ctx, query, page)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	totalPages, err := h.service.FetchInvoicesPages(ctx, query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	items := make([]invoiceTableItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, invoiceTableItem{
			InvoiceTableRow: r,
			AmountDisplay:   format.FormatCurrency(r.Amount),
			DateDisplay:     format.FormatDateToLocal(r.Date),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"items":        items,
		"current_page": page,
		"total_pages":  totalPages,
		"pagination":   format.GeneratePagination(page, totalPages),
	})
}

func (h *DashboardHandler) GetInvoicesPages(c *gin.Context) {
	totalPages, err := h.service.FetchInvoicesPages(c.Request.Context(), c.Query("query"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"total_pages": totalPages})
}

func (h *DashboardHandler) GetInvoice(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid invoice ID"})
		return
	}

	invoice, err := h.service.FetchInvoiceByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if invoice == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "invoice not found"})
		return
	}
	c.JSON(http.StatusOK, invoice)
}

func (h *DashboardHandler) ListCustomers(c *gin.Context) {
	customers, err := h.service.FetchCustomers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, customers)
}

func (h *DashboardHandler) SearchCustomers(c *gin.Context) {
	customers, err := h.service.FetchFilteredCustomers(c.Request.Context(), c.Query("query"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, customers)
}
