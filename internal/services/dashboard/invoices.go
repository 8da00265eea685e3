package dashboard

import (
	"context"
	"math"

	"invoice-dashboard-backend/internal/format"
	"invoice-dashboard-backend/internal/models"
	"invoice-dashboard-backend/internal/repository"

	"github.com/google/uuid"
)

// FetchLatestInvoices returns the five newest invoices with formatted amounts.
func (s *DashboardService) FetchLatestInvoices(ctx context.Context) ([]models.LatestInvoice, error) {
	rows, err := s.invoices.FindLatest(ctx)
	if err != nil {
		return nil, s.fail("fetch_latest_invoices", err, ErrFetchLatestInvoices)
	}

	latest := make([]models.LatestInvoice, 0, len(rows))
	for _, r := range rows {
		latest = append(latest, models.LatestInvoice{
			ID:       r.ID,
			Name:     r.Name,
			Email:    r.Email,
			ImageURL: r.ImageURL,
			Amount:   format.FormatCurrency(r.Amount),
		})
	}
	return latest, nil
}

// FetchFilteredInvoices returns page (1-based) of the invoices matching query.
// Pages below 1 are treated as page 1.
func (s *DashboardService) FetchFilteredInvoices(ctx context.Context, query string, page int) ([]models.InvoiceTableRow, error) {
	rows, err := s.invoices.Search(ctx, query, PageOffset(page))
	if err != nil {
		return nil, s.fail("fetch_filtered_invoices", err, ErrFetchInvoices)
	}

	invoices := make([]models.InvoiceTableRow, 0, len(rows))
	for _, r := range rows {
		invoices = append(invoices, models.InvoiceTableRow{
			ID:         r.ID,
			CustomerID: r.CustomerID,
			Name:       r.Name,
			Email:      r.Email,
			ImageURL:   r.ImageURL,
			Date:       r.Date,
			Amount:     r.Amount,
			Status:     r.Status,
		})
	}
	return invoices, nil
}

// FetchInvoicesPages returns how many pages FetchFilteredInvoices has for query.
func (s *DashboardService) FetchInvoicesPages(ctx context.Context, query string) (int, error) {
	count, err := s.invoices.CountSearch(ctx, query)
	if err != nil {
		return 0, s.fail("fetch_invoices_pages", err, ErrFetchInvoicesPages)
	}
	return TotalPages(count), nil
}

// FetchInvoiceByID returns the invoice as an editable form, amount in dollars.
// A missing invoice is (nil, nil).
func (s *DashboardService) FetchInvoiceByID(ctx context.Context, id uuid.UUID) (*models.InvoiceForm, error) {
	row, err := s.invoices.GetFormByID(ctx, id)
	if err != nil {
		return nil, s.fail("fetch_invoice_by_id", err, ErrFetchInvoice)
	}
	if row == nil {
		return nil, nil
	}
	return &models.InvoiceForm{
		ID:         row.ID,
		CustomerID: row.CustomerID,
		Amount:     format.CentsToUnits(row.Amount),
		Status:     row.Status,
	}, nil
}

// MaxPage is the largest page whose offset still fits in an int.
const MaxPage = math.MaxInt/repository.InvoicesPerPage + 1

// ClampPage keeps a requested page inside [1, MaxPage].
func ClampPage(page int) int {
	if page < 1 {
		return 1
	}
	if page > MaxPage {
		return MaxPage
	}
	return page
}

func PageOffset(page int) int {
	return (ClampPage(page) - 1) * repository.InvoicesPerPage
}

func TotalPages(count int64) int {
	return int((count + repository.InvoicesPerPage - 1) / repository.InvoicesPerPage)
}
