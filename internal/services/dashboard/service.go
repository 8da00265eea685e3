// Package dashboard is the read side of the billing dashboard. Every operation
// runs bound SQL through the repositories and returns display-ready records.
//
// Query failures are logged with their cause and replaced by a generic,
// operation-scoped error; callers only see the Err* values below.
package dashboard

import (
	"context"
	"errors"

	"invoice-dashboard-backend/internal/models"
	"invoice-dashboard-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
)

var (
	ErrFetchRevenue          = errors.New("Failed to fetch revenue data.")
	ErrFetchLatestInvoices   = errors.New("Failed to fetch the latest invoices.")
	ErrFetchCardData         = errors.New("Failed to fetch card data.")
	ErrFetchInvoices         = errors.New("Failed to fetch invoices.")
	ErrFetchInvoicesPages    = errors.New("Failed to fetch total number of invoices.")
	ErrFetchInvoice          = errors.New("Failed to fetch invoice.")
	ErrFetchCustomers        = errors.New("Failed to fetch all customers.")
	ErrFetchFilteredCustomer = errors.New("Failed to fetch customer table.")
)

type InvoiceStore interface {
	FindLatest(ctx context.Context) ([]repository.LatestInvoiceRow, error)
	Count(ctx context.Context) (int64, error)
	SumByStatus(ctx context.Context) (repository.StatusTotalsRow, error)
	Search(ctx context.Context, query string, offset int) ([]repository.InvoiceSearchRow, error)
	CountSearch(ctx context.Context, query string) (int64, error)
	GetFormByID(ctx context.Context, id uuid.UUID) (*repository.InvoiceFormRow, error)
}

type CustomerStore interface {
	Count(ctx context.Context) (int64, error)
	ListFields(ctx context.Context) ([]repository.CustomerFieldRow, error)
	SearchSummaries(ctx context.Context, query string) ([]repository.CustomerSummaryRecord, error)
}

type RevenueStore interface {
	GetAll(ctx context.Context) ([]models.Revenue, error)
}

type DashboardService struct {
	invoices  InvoiceStore
	customers CustomerStore
	revenue   RevenueStore
	log       zerolog.Logger
}

func NewDashboardService(
	invoices InvoiceStore,
	customers CustomerStore,
	revenue RevenueStore,
	log zerolog.Logger,
) *DashboardService {
	return &DashboardService{
		invoices:  invoices,
		customers: customers,
		revenue:   revenue,
		log:       log.With().Str("service", "dashboard").Logger(),
	}
}

// fail logs the real cause and hands back the caller-facing error.
func (s *DashboardService) fail(op string, cause, public error) error {
	ev := s.log.Error().Err(cause).Str("op", op)
	var pgErr *pgconn.PgError
	if errors.As(cause, &pgErr) {
		ev = ev.Str("pg_code", pgErr.Code)
	}
	if errors.Is(cause, context.Canceled) || errors.Is(cause, context.DeadlineExceeded) {
		ev = ev.Bool("canceled", true)
	}
	ev.Msg("database error")
	return public
}
