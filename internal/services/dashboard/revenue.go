package dashboard

import (
	"context"

	"invoice-dashboard-backend/internal/models"
)

// FetchRevenue returns every monthly revenue row in table order.
func (s *DashboardService) FetchRevenue(ctx context.Context) ([]models.Revenue, error) {
	revenue, err := s.revenue.GetAll(ctx)
	if err != nil {
		return nil, s.fail("fetch_revenue", err, ErrFetchRevenue)
	}
	return revenue, nil
}
