package models

import "time"

// Catalog entities: stone types (marble, travertine, ...) and
// features/finishes (honed, polished, ...). Order items reference them
// by ID but also carry a free-text fallback name for one-off entries.
type StoneType struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"not null;uniqueIndex"`
	IsActive  bool   `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type StoneFeature struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"not null;uniqueIndex"`
	DefaultPrice *float64
	IsActive     bool   `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
