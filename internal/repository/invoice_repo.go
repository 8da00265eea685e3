package repository

import (
	"context"
	"database/sql"
	"time"

	"invoice-dashboard-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	// InvoicesPerPage is the page size of the invoice search table.
	InvoicesPerPage = 6
	latestInvoices  = 5
)

// invoiceSearchFrom is shared by the page query and the count query so the
// page count always agrees with the page contents. It takes five patterns.
const invoiceSearchFrom = `
FROM invoices
JOIN customers ON invoices.customer_id = customers.id
WHERE
	customers.name ILIKE ? OR
	customers.email ILIKE ? OR
	invoices.amount::text ILIKE ? OR
	invoices.date::text ILIKE ? OR
	invoices.status ILIKE ?`

type InvoiceRepository struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

type LatestInvoiceRow struct {
	ID       uuid.UUID
	Amount   int64
	Name     string
	Email    string
	ImageURL string
}

type InvoiceSearchRow struct {
	ID         uuid.UUID
	CustomerID uuid.UUID
	Name       string
	Email      string
	ImageURL   string
	Date       time.Time
	Amount     int64
	Status     string
}

type InvoiceFormRow struct {
	ID         uuid.UUID
	CustomerID uuid.UUID
	Amount     int64
	Status     string
}

// StatusTotalsRow holds the paid and pending sums. Both are NULL on an empty table.
type StatusTotalsRow struct {
	Paid    sql.NullInt64
	Pending sql.NullInt64
}

// FindLatest returns the most recent invoices with their customer. Ties on
// date come back in whatever order Postgres produces.
func (r *InvoiceRepository) FindLatest(ctx context.Context) ([]LatestInvoiceRow, error) {
	var rows []LatestInvoiceRow
	err := r.db.WithContext(ctx).
		Table("invoices").
		Select("invoices.id, invoices.amount, customers.name, customers.image_url, customers.email").
		Joins("JOIN customers ON invoices.customer_id = customers.id").
		Order("invoices.date DESC").
		Limit(latestInvoices).
		Scan(&rows).Error
	return rows, err
}

// Count returns the total number of invoices.
func (r *InvoiceRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Invoice{}).Count(&count).Error
	return count, err
}

// SumByStatus totals the paid and pending amounts in cents.
func (r *InvoiceRepository) SumByStatus(ctx context.Context) (StatusTotalsRow, error) {
	var totals StatusTotalsRow
	err := r.db.WithContext(ctx).Raw(`
SELECT
	SUM(CASE WHEN status = ? THEN amount ELSE 0 END) AS paid,
	SUM(CASE WHEN status = ? THEN amount ELSE 0 END) AS pending
FROM invoices`,
		models.InvoiceStatusPaid, models.InvoiceStatusPending,
	).Scan(&totals).Error
	return totals, err
}

// Search returns one page of invoices matching query, newest first.
// offset is the number of rows to skip.
func (r *InvoiceRepository) Search(ctx context.Context, query string, offset int) ([]InvoiceSearchRow, error) {
	var rows []InvoiceSearchRow
	args := append(searchArgs(query), InvoicesPerPage, offset)
	err := r.db.WithContext(ctx).Raw(`
SELECT
	invoices.id,
	invoices.customer_id,
	invoices.amount,
	invoices.date,
	invoices.status,
	customers.name,
	customers.email,
	customers.image_url`+invoiceSearchFrom+`
ORDER BY invoices.date DESC
LIMIT ? OFFSET ?`, args...).Scan(&rows).Error
	return rows, err
}

// CountSearch returns how many invoices match query.
func (r *InvoiceRepository) CountSearch(ctx context.Context, query string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Raw("SELECT COUNT(*)"+invoiceSearchFrom, searchArgs(query)...).Scan(&count).Error
	return count, err
}

// GetFormByID returns nil when no invoice has the id.
func (r *InvoiceRepository) GetFormByID(ctx context.Context, id uuid.UUID) (*InvoiceFormRow, error) {
	var rows []InvoiceFormRow
	err := r.db.WithContext(ctx).Raw(`
SELECT
	invoices.id,
	invoices.customer_id,
	invoices.amount,
	invoices.status
FROM invoices
WHERE invoices.id = ?`, id).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

func searchArgs(query string) []interface{} {
	pattern := likePattern(query)
	return []interface{}{pattern, pattern, pattern, pattern, pattern}
}

func likePattern(query string) string {
	return "%" + query + "%"
}
