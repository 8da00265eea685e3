package repository

import (
	"context"

	"invoice-dashboard-backend/internal/models"

	"gorm.io/gorm"
)

type RevenueRepository struct {
	db *gorm.DB
}

func NewRevenueRepository(db *gorm.DB) *RevenueRepository {
	return &RevenueRepository{db: db}
}

// GetAll returns the monthly rows in table order.
func (r *RevenueRepository) GetAll(ctx context.Context) ([]models.Revenue, error) {
	var revenue []models.Revenue
	err := r.db.WithContext(ctx).Find(&revenue).Error
	return revenue, err
}
