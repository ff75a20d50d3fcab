package services

import (
	"github.com/omsan/stone-orders/internal/models"
)

// DefaultVATRate applies when a caller leaves the rate unset.
// An explicit zero coming from the caller is honored as-is.
const DefaultVATRate = 20

// PricingService owns the measurement and money math for orders.
// Handlers persist; this computes. All methods recompute eagerly and in full
// so the in-memory order is always consistent for display or export.
type PricingService struct{}

func NewPricingService() *PricingService { return &PricingService{} }

// RecalculateItem derives the per-piece measure and the line total from the
// item's dimensions, measurement mode, quantity, and unit price.
//
// Dimensions are centimeters. m² mode converts width×length with the fixed
// 10000 divisor; linear mode converts length with 100. A missing dimension
// yields a zero measure, not an error: rows stay usable mid-entry.
// The derived field of any previously active mode is cleared before the new
// one is computed, so stale measures never survive a mode switch.
func (s *PricingService) RecalculateItem(it *models.OrderItem) {
	if it == nil {
		return
	}
	if it.Quantity < 0 {
		it.Quantity = 0
	}
	if it.UnitPrice < 0 {
		it.UnitPrice = 0
	}
	qty := float64(it.Quantity)
	switch it.MeasureType {
	case models.MeasureSquareMeter:
		sm := deref(it.Width) * deref(it.Length) / 10000
		it.SquareMeter = &sm
		it.LinearMeter = nil
		it.LineTotal = sm * qty * it.UnitPrice
	case models.MeasureLinearMeter:
		lm := deref(it.Length) / 100
		it.LinearMeter = &lm
		it.SquareMeter = nil
		it.LineTotal = lm * qty * it.UnitPrice
	default:
		it.SquareMeter = nil
		it.LinearMeter = nil
		it.LineTotal = qty * it.UnitPrice
	}
}

// ComputeTotals recomputes subtotal, net total, VAT, and grand total from the
// full item list. No partial sums are cached anywhere.
//
// A discount larger than the subtotal produces a negative net total on
// purpose: the operator sees the odd figure instead of a silently corrected
// invoice. Negative discount and VAT inputs are coerced to zero.
func (s *PricingService) ComputeTotals(o *models.Order) {
	if o == nil {
		return
	}
	var subtotal float64
	for i := range o.Items {
		subtotal += o.Items[i].LineTotal
	}
	o.Subtotal = subtotal
	if o.DiscountAmount < 0 {
		o.DiscountAmount = 0
	}
	o.Total = subtotal - o.DiscountAmount
	if o.VATRate < 0 {
		o.VATRate = 0
	}
	o.VATAmount = o.Total * o.VATRate / 100
	o.GrandTotal = o.Total + o.VATAmount
}

// RecalculateOrder reruns the item derivation for every line and then the
// order totals, in entry order.
func (s *PricingService) RecalculateOrder(o *models.Order) {
	if o == nil {
		return
	}
	for i := range o.Items {
		s.RecalculateItem(&o.Items[i])
	}
	s.ComputeTotals(o)
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
