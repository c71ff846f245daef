package entity

import (
	"time"

	"gorm.io/gorm"
)

// RevenueRecord one fiscal year of revenue and expenditure. Year is the
// natural key; imports and manual edits upsert on it.
type RevenueRecord struct {
	ID          string    `json:"id" gorm:"primaryKey;size:36"`
	Year        int       `json:"year" gorm:"not null;uniqueIndex"`
	Revenue     float64   `json:"revenue" gorm:"type:decimal(14,2);not null;default:0"`
	Expenditure float64   `json:"expenditure" gorm:"type:decimal(14,2);not null;default:0"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (RevenueRecord) TableName() string {
	return "finance_revenue_records"
}

// AutoMigrate migrates all finance tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&RevenueRecord{})
}
