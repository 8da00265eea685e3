// Package seed creates the dashboard schema and loads placeholder data for
// local development. Running it twice leaves the data unchanged.
package seed

import (
	"context"
	"fmt"

	"invoice-dashboard-backend/internal/models"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func Run(ctx context.Context, db *gorm.DB, log zerolog.Logger) error {
	db = db.WithContext(ctx)

	if err := db.AutoMigrate(&models.Customer{}, &models.Invoice{}, &models.Revenue{}); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	customers := Customers()
	invoices := Invoices()
	revenue := Revenue()

	err := db.Transaction(func(tx *gorm.DB) error {
		// Use `OnConflict` to ignore rows seeded by a previous run
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&customers).Error; err != nil {
			return fmt.Errorf("seed customers: %w", err)
		}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&invoices).Error; err != nil {
			return fmt.Errorf("seed invoices: %w", err)
		}
		err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "month"}},
			DoNothing: true,
		}).Create(&revenue).Error
		if err != nil {
			return fmt.Errorf("seed revenue: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.Info().
		Int("customers", len(customers)).
		Int("invoices", len(invoices)).
		Int("revenue_months", len(revenue)).
		Msg("database seeded")
	return nil
}
