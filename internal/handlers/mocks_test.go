package handler_test

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"invoice-dashboard-backend/internal/models"
)

// --- Mocks ---

type MockDashboardReader struct {
	mock.Mock
}

func (m *MockDashboardReader) FetchRevenue(ctx context.Context) ([]models.Revenue, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Revenue), args.Error(1)
}

func (m *MockDashboardReader) FetchLatestInvoices(ctx context.Context) ([]models.LatestInvoice, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.LatestInvoice), args.Error(1)
}

func (m *MockDashboardReader) FetchCardData(ctx context.Context) (*models.CardData, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CardData), args.Error(1)
}

func (m *MockDashboardReader) FetchFilteredInvoices(ctx context.Context, query string, page int) ([]models.InvoiceTableRow, error) {
	args := m.Called(ctx, query, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.InvoiceTableRow), args.Error(1)
}

func (m *MockDashboardReader) FetchInvoicesPages(ctx context.Context, query string) (int, error) {
	args := m.Called(ctx, query)
	return args.Int(0), args.Error(1)
}

func (m *MockDashboardReader) FetchInvoiceByID(ctx context.Context, id uuid.UUID) (*models.InvoiceForm, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.InvoiceForm), args.Error(1)
}

func (m *MockDashboardReader) FetchCustomers(ctx context.Context) ([]models.CustomerField, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CustomerField), args.Error(1)
}

func (m *MockDashboardReader) FetchFilteredCustomers(ctx context.Context, query string) ([]models.CustomerSummaryRow, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CustomerSummaryRow), args.Error(1)
}
