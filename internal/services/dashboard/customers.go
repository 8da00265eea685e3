package dashboard

import (
	"context"

	"invoice-dashboard-backend/internal/format"
	"invoice-dashboard-backend/internal/models"
)

// FetchCustomers returns id/name pairs sorted by name.
func (s *DashboardService) FetchCustomers(ctx context.Context) ([]models.CustomerField, error) {
	rows, err := s.customers.ListFields(ctx)
	if err != nil {
		return nil, s.fail("fetch_customers", err, ErrFetchCustomers)
	}

	customers := make([]models.CustomerField, 0, len(rows))
	for _, r := range rows {
		customers = append(customers, models.CustomerField{ID: r.ID, Name: r.Name})
	}
	return customers, nil
}

// FetchFilteredCustomers returns the customer table for query with invoice
// counts and formatted pending/paid totals.
func (s *DashboardService) FetchFilteredCustomers(ctx context.Context, query string) ([]models.CustomerSummaryRow, error) {
	rows, err := s.customers.SearchSummaries(ctx, query)
	if err != nil {
		return nil, s.fail("fetch_filtered_customers", err, ErrFetchFilteredCustomer)
	}

	customers := make([]models.CustomerSummaryRow, 0, len(rows))
	for _, r := range rows {
		customers = append(customers, models.CustomerSummaryRow{
			ID:            r.ID,
			Name:          r.Name,
			Email:         r.Email,
			ImageURL:      r.ImageURL,
			TotalInvoices: r.TotalInvoices,
			TotalPending:  format.FormatCurrency(r.TotalPending.Int64),
			TotalPaid:     format.FormatCurrency(r.TotalPaid.Int64),
		})
	}
	return customers, nil
}
