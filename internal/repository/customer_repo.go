package repository

import (
	"context"
	"database/sql"

	"invoice-dashboard-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

type CustomerFieldRow struct {
	ID   uuid.UUID
	Name string
}

type CustomerSummaryRecord struct {
	ID            uuid.UUID
	Name          string
	Email         string
	ImageURL      string
	TotalInvoices int64
	TotalPending  sql.NullInt64
	TotalPaid     sql.NullInt64
}

func (r *CustomerRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Customer{}).Count(&count).Error
	return count, err
}

// ListFields returns every customer's id and name, sorted by name.
func (r *CustomerRepository) ListFields(ctx context.Context) ([]CustomerFieldRow, error) {
	var rows []CustomerFieldRow
	err := r.db.WithContext(ctx).
		Model(&models.Customer{}).
		Select("id, name").
		Order("name ASC").
		Find(&rows).Error
	return rows, err
}

// SearchSummaries matches query against name and email and aggregates each
// customer's invoices. Customers without invoices are included.
func (r *CustomerRepository) SearchSummaries(ctx context.Context, query string) ([]CustomerSummaryRecord, error) {
	var rows []CustomerSummaryRecord
	pattern := likePattern(query)
	err := r.db.WithContext(ctx).Raw(`
SELECT
	customers.id,
	customers.name,
	customers.email,
	customers.image_url,
	COUNT(invoices.id) AS total_invoices,
	SUM(CASE WHEN invoices.status = ? THEN invoices.amount ELSE 0 END) AS total_pending,
	SUM(CASE WHEN invoices.status = ? THEN invoices.amount ELSE 0 END) AS total_paid
FROM customers
LEFT JOIN invoices ON customers.id = invoices.customer_id
WHERE
	customers.name ILIKE ? OR
	customers.email ILIKE ?
GROUP BY customers.id, customers.name, customers.email, customers.image_url
ORDER BY customers.name ASC`,
		models.InvoiceStatusPending, models.InvoiceStatusPaid, pattern, pattern,
	).Scan(&rows).Error
	return rows, err
}
