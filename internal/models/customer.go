package models

import "time"

// Customer entity
type Customer struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"not null;index"`
	Phone     string
	Email     string
	Address   string
	TaxOffice string // vergi dairesi
	TaxNumber string `gorm:"index"` // vergi numarası
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
