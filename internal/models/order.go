package models

import "time"

// Measurement modes: billing basis for a line item. Exactly one is active
// per item; the matching derived field is set and the other stays nil.
const (
	MeasureSquareMeter = "m2"   // billed per m², derived from width × length
	MeasureLinearMeter = "mtul" // billed per running meter, derived from length
	MeasureNone        = "none" // billed per piece
)

// Order statuses
const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
)

type Order struct {
	ID          uint        `gorm:"primaryKey"`
	OrderNumber string      `gorm:"not null;uniqueIndex"`
	CustomerID  *uint       `gorm:"index"`
	Customer    *Customer
	OrderDate   time.Time   `gorm:"not null"`
	Status      string      `gorm:"not null;default:'pending'"`
	Items       []OrderItem `gorm:"foreignKey:OrderID"`

	// Monetary totals. Always recomputed together by services.PricingService;
	// never updated field-by-field.
	Subtotal       float64
	DiscountRate   float64 // informational; DiscountAmount is authoritative
	DiscountAmount float64
	Total          float64 // subtotal − discount, before VAT
	VATRate        float64
	VATAmount      float64
	GrandTotal     float64

	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type OrderItem struct {
	ID      uint `gorm:"primaryKey"`
	OrderID uint `gorm:"not null;index"`

	StoneTypeID      *uint
	StoneType        *StoneType
	StoneTypeName    string // free-text fallback when no catalog reference
	StoneFeatureID   *uint
	StoneFeature     *StoneFeature
	StoneFeatureName string

	// Dimensions in centimeters; nil while a row is still being filled in.
	Thickness *float64
	Width     *float64
	Length    *float64

	Quantity    int    `gorm:"not null;default:1"`
	MeasureType string `gorm:"not null;default:'none'"`

	// Derived per-piece measures; at most one is non-nil, per MeasureType.
	SquareMeter *float64
	LinearMeter *float64

	UnitPrice float64
	LineTotal float64

	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
