package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omsan/stone-orders/internal/models"
)

func fp(v float64) *float64 { return &v }

func TestRecalculateItemSquareMeter(t *testing.T) {
	svc := NewPricingService()
	it := &models.OrderItem{
		MeasureType: models.MeasureSquareMeter,
		Width:       fp(300),
		Length:      fp(60),
		Quantity:    2,
		UnitPrice:   100,
	}
	svc.RecalculateItem(it)

	require.NotNil(t, it.SquareMeter)
	assert.InDelta(t, 1.8, *it.SquareMeter, 1e-9)
	assert.Nil(t, it.LinearMeter)
	assert.InDelta(t, 360, it.LineTotal, 1e-9)
}

func TestRecalculateItemLinearMeter(t *testing.T) {
	svc := NewPricingService()
	it := &models.OrderItem{
		MeasureType: models.MeasureLinearMeter,
		Length:      fp(250),
		Quantity:    4,
		UnitPrice:   40,
	}
	svc.RecalculateItem(it)

	require.NotNil(t, it.LinearMeter)
	assert.InDelta(t, 2.5, *it.LinearMeter, 1e-9)
	assert.Nil(t, it.SquareMeter)
	assert.InDelta(t, 400, it.LineTotal, 1e-9)
}

func TestRecalculateItemPerPiece(t *testing.T) {
	svc := NewPricingService()
	it := &models.OrderItem{
		MeasureType: models.MeasureNone,
		Quantity:    3,
		UnitPrice:   50,
	}
	svc.RecalculateItem(it)

	assert.Nil(t, it.SquareMeter)
	assert.Nil(t, it.LinearMeter)
	assert.InDelta(t, 150, it.LineTotal, 1e-9)
}

func TestRecalculateItemMissingDimensions(t *testing.T) {
	svc := NewPricingService()
	tests := []struct {
		name string
		item models.OrderItem
	}{
		{"m2 without width", models.OrderItem{MeasureType: models.MeasureSquareMeter, Length: fp(60), Quantity: 2, UnitPrice: 100}},
		{"m2 without any dims", models.OrderItem{MeasureType: models.MeasureSquareMeter, Quantity: 2, UnitPrice: 100}},
		{"mtul without length", models.OrderItem{MeasureType: models.MeasureLinearMeter, Quantity: 2, UnitPrice: 100}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it := tt.item
			svc.RecalculateItem(&it)
			assert.Zero(t, it.LineTotal)
			switch it.MeasureType {
			case models.MeasureSquareMeter:
				require.NotNil(t, it.SquareMeter)
				assert.Zero(t, *it.SquareMeter)
			case models.MeasureLinearMeter:
				require.NotNil(t, it.LinearMeter)
				assert.Zero(t, *it.LinearMeter)
			}
		})
	}
}

func TestModeSwitchClearsStaleMeasure(t *testing.T) {
	svc := NewPricingService()
	it := &models.OrderItem{
		MeasureType: models.MeasureSquareMeter,
		Width:       fp(300),
		Length:      fp(60),
		Quantity:    1,
		UnitPrice:   100,
	}
	svc.RecalculateItem(it)
	require.NotNil(t, it.SquareMeter)

	it.MeasureType = models.MeasureLinearMeter
	svc.RecalculateItem(it)
	assert.Nil(t, it.SquareMeter, "square meter must not leak into linear mode")
	require.NotNil(t, it.LinearMeter)
	assert.InDelta(t, 0.6, *it.LinearMeter, 1e-9)
	assert.InDelta(t, 60, it.LineTotal, 1e-9)

	it.MeasureType = models.MeasureNone
	svc.RecalculateItem(it)
	assert.Nil(t, it.SquareMeter)
	assert.Nil(t, it.LinearMeter)
	assert.InDelta(t, 100, it.LineTotal, 1e-9)
}

func TestRecalculateItemCoercesNegatives(t *testing.T) {
	svc := NewPricingService()
	it := &models.OrderItem{MeasureType: models.MeasureNone, Quantity: -2, UnitPrice: -50}
	svc.RecalculateItem(it)
	assert.Zero(t, it.Quantity)
	assert.Zero(t, it.UnitPrice)
	assert.Zero(t, it.LineTotal)
}

func TestComputeTotals(t *testing.T) {
	svc := NewPricingService()
	o := &models.Order{
		VATRate: 20,
		Items: []models.OrderItem{
			{MeasureType: models.MeasureSquareMeter, Width: fp(300), Length: fp(60), Quantity: 2, UnitPrice: 100},
			{MeasureType: models.MeasureNone, Quantity: 3, UnitPrice: 50},
		},
	}
	svc.RecalculateOrder(o)

	assert.InDelta(t, 360, o.Items[0].LineTotal, 1e-9)
	assert.InDelta(t, 150, o.Items[1].LineTotal, 1e-9)
	assert.InDelta(t, 510, o.Subtotal, 1e-9)
	assert.InDelta(t, 510, o.Total, 1e-9)
	assert.InDelta(t, 102, o.VATAmount, 1e-9)
	assert.InDelta(t, 612, o.GrandTotal, 1e-9)
}

func TestComputeTotalsWithDiscount(t *testing.T) {
	svc := NewPricingService()
	o := &models.Order{
		VATRate:        20,
		DiscountAmount: 100,
		Items: []models.OrderItem{
			{MeasureType: models.MeasureSquareMeter, Width: fp(300), Length: fp(60), Quantity: 2, UnitPrice: 100},
			{MeasureType: models.MeasureNone, Quantity: 3, UnitPrice: 50},
		},
	}
	svc.RecalculateOrder(o)

	assert.InDelta(t, 510, o.Subtotal, 1e-9)
	assert.InDelta(t, 410, o.Total, 1e-9)
	assert.InDelta(t, 82, o.VATAmount, 1e-9)
	assert.InDelta(t, 492, o.GrandTotal, 1e-9)
}

func TestComputeTotalsZeroRateHonored(t *testing.T) {
	svc := NewPricingService()
	o := &models.Order{
		VATRate: 0,
		Items:   []models.OrderItem{{MeasureType: models.MeasureNone, Quantity: 1, UnitPrice: 100}},
	}
	svc.RecalculateOrder(o)
	assert.Zero(t, o.VATAmount)
	assert.InDelta(t, 100, o.GrandTotal, 1e-9)
}

func TestComputeTotalsNegativeNetPropagates(t *testing.T) {
	svc := NewPricingService()
	o := &models.Order{
		VATRate:        20,
		DiscountAmount: 200,
		Items:          []models.OrderItem{{MeasureType: models.MeasureNone, Quantity: 1, UnitPrice: 100}},
	}
	svc.RecalculateOrder(o)
	assert.InDelta(t, -100, o.Total, 1e-9)
	assert.InDelta(t, -20, o.VATAmount, 1e-9)
	assert.InDelta(t, -120, o.GrandTotal, 1e-9)
}

func TestComputeTotalsOrderIndependent(t *testing.T) {
	svc := NewPricingService()
	items := []models.OrderItem{
		{MeasureType: models.MeasureNone, Quantity: 1, UnitPrice: 10},
		{MeasureType: models.MeasureLinearMeter, Length: fp(100), Quantity: 2, UnitPrice: 30},
		{MeasureType: models.MeasureSquareMeter, Width: fp(100), Length: fp(100), Quantity: 1, UnitPrice: 200},
	}
	a := &models.Order{VATRate: 20, Items: append([]models.OrderItem(nil), items...)}
	b := &models.Order{VATRate: 20, Items: []models.OrderItem{items[2], items[0], items[1]}}
	svc.RecalculateOrder(a)
	svc.RecalculateOrder(b)

	assert.InDelta(t, a.Subtotal, b.Subtotal, 1e-9)
	assert.InDelta(t, a.VATAmount, b.VATAmount, 1e-9)
	assert.InDelta(t, a.GrandTotal, b.GrandTotal, 1e-9)
}
