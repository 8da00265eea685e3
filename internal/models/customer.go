package models

import "github.com/google/uuid"

type Customer struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name     string    `gorm:"type:varchar(255);index;not null" json:"name"`
	Email    string    `gorm:"type:varchar(255);not null" json:"email"`
	ImageURL string    `gorm:"column:image_url;type:varchar(255);not null" json:"image_url"`
}
