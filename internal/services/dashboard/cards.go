package dashboard

import (
	"context"

	"invoice-dashboard-backend/internal/format"
	"invoice-dashboard-backend/internal/models"
	"invoice-dashboard-backend/internal/repository"

	"golang.org/x/sync/errgroup"
)

// FetchCardData runs the invoice count, customer count and status totals
// concurrently. Any failure fails the whole call.
func (s *DashboardService) FetchCardData(ctx context.Context) (*models.CardData, error) {
	var (
		invoiceCount  int64
		customerCount int64
		totals        repository.StatusTotalsRow
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := s.invoices.Count(gctx)
		invoiceCount = n
		return err
	})
	g.Go(func() error {
		n, err := s.customers.Count(gctx)
		customerCount = n
		return err
	})
	g.Go(func() error {
		t, err := s.invoices.SumByStatus(gctx)
		totals = t
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, s.fail("fetch_card_data", err, ErrFetchCardData)
	}

	// NULL sums (no invoices) read as zero
	return &models.CardData{
		NumberOfInvoices:     invoiceCount,
		NumberOfCustomers:    customerCount,
		TotalPaidInvoices:    format.FormatCurrency(totals.Paid.Int64),
		TotalPendingInvoices: format.FormatCurrency(totals.Pending.Int64),
	}, nil
}
