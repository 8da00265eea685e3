package models

// Revenue is a precomputed monthly aggregate, one row per month.
type Revenue struct {
	Month   string `gorm:"type:varchar(4);uniqueIndex;not null" json:"month"`
	Revenue int64  `gorm:"not null" json:"revenue"`
}

func (Revenue) TableName() string {
	return "revenue"
}
