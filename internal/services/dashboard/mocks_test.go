package dashboard

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"invoice-dashboard-backend/internal/models"
	"invoice-dashboard-backend/internal/repository"
)

// --- Mocks ---

type MockInvoiceStore struct {
	mock.Mock
}

func (m *MockInvoiceStore) FindLatest(ctx context.Context) ([]repository.LatestInvoiceRow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.LatestInvoiceRow), args.Error(1)
}

func (m *MockInvoiceStore) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockInvoiceStore) SumByStatus(ctx context.Context) (repository.StatusTotalsRow, error) {
	args := m.Called(ctx)
	return args.Get(0).(repository.StatusTotalsRow), args.Error(1)
}

func (m *MockInvoiceStore) Search(ctx context.Context, query string, offset int) ([]repository.InvoiceSearchRow, error) {
	args := m.Called(ctx, query, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.InvoiceSearchRow), args.Error(1)
}

func (m *MockInvoiceStore) CountSearch(ctx context.Context, query string) (int64, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockInvoiceStore) GetFormByID(ctx context.Context, id uuid.UUID) (*repository.InvoiceFormRow, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.InvoiceFormRow), args.Error(1)
}

type MockCustomerStore struct {
	mock.Mock
}

func (m *MockCustomerStore) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCustomerStore) ListFields(ctx context.Context) ([]repository.CustomerFieldRow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.CustomerFieldRow), args.Error(1)
}

func (m *MockCustomerStore) SearchSummaries(ctx context.Context, query string) ([]repository.CustomerSummaryRecord, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.CustomerSummaryRecord), args.Error(1)
}

type MockRevenueStore struct {
	mock.Mock
}

func (m *MockRevenueStore) GetAll(ctx context.Context) ([]models.Revenue, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Revenue), args.Error(1)
}
