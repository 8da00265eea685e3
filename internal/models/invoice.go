package models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	InvoiceStatusPaid    = "paid"
	InvoiceStatusPending = "pending"
)

// Invoice amounts are stored in cents.
type Invoice struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	CustomerID uuid.UUID      `gorm:"type:uuid;index;not null" json:"customer_id"`
	Amount     int64          `gorm:"not null;check:amount >= 0" json:"amount"`
	Date       datatypes.Date `gorm:"index;not null" json:"date"`
	Status     string         `gorm:"type:varchar(255);index;not null" json:"status"`
}
