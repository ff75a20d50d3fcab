package export

import (
	"fmt"
	"strconv"

	"github.com/omsan/stone-orders/internal/currency"
	"github.com/omsan/stone-orders/internal/i18n"
	"github.com/omsan/stone-orders/internal/models"
)

// Dash is the universal placeholder for any absent optional field,
// in both the spreadsheet and the print document.
const Dash = "-"

// Row is one fully formatted line-item row. Every number is formatted here,
// once; the serializers only lay the strings out.
type Row struct {
	Index     int
	StoneType string
	Feature   string
	Thickness string
	Width     string
	Length    string
	Quantity  string
	Measure   string // per-piece measure with unit suffix, or a dash for per-piece billing
	UnitPrice string
	LineTotal string
}

// Document is the single computed model behind both export formats.
// CSV and PDF must never recompute or reformat a figure on their own;
// that is what keeps the two outputs reporting identical numbers.
type Document struct {
	CompanyName string
	Title       string

	OrderNoLabel  string
	OrderNumber   string
	DateLabel     string
	OrderDate     string
	CustomerLabel string
	CustomerName  string
	PhoneLabel    string
	CustomerPhone string

	Columns []string
	Rows    []Row

	SubtotalLabel   string
	Subtotal        string
	DiscountLabel   string
	Discount        string // empty when the discount row is omitted
	VATLabel        string // includes the rate, e.g. "KDV (%20)"
	VATAmount       string
	GrandTotalLabel string
	GrandTotal      string

	NotesLabel string
	Notes      string // empty when the notes block is omitted
}

// BuildDocument flattens a fully aggregated order into the shared document
// model. The order must arrive with customer, items, and catalog references
// resolved; totals are read as stored, never recomputed here.
func BuildDocument(o *models.Order, companyName, lang string, f *currency.Formatter) Document {
	t := func(code string) string { return i18n.T(lang, code) }

	doc := Document{
		CompanyName:   companyName,
		Title:         t("quote_title"),
		OrderNoLabel:  t("order_no"),
		OrderNumber:   o.OrderNumber,
		DateLabel:     t("date"),
		OrderDate:     o.OrderDate.Format("02.01.2006"),
		CustomerLabel: t("customer"),
		CustomerName:  Dash,
		PhoneLabel:    t("phone"),
		CustomerPhone: Dash,
		Columns: []string{
			"#", t("col_stone_type"), t("col_feature"), t("col_thickness"),
			t("col_width"), t("col_length"), t("col_quantity"), t("col_measure"),
			t("col_unit_price"), t("col_total"),
		},
		SubtotalLabel:   t("subtotal"),
		Subtotal:        f.FormatTL(o.Subtotal),
		DiscountLabel:   t("discount"),
		VATLabel:        fmt.Sprintf("%s (%%%s)", t("vat"), formatRate(o.VATRate)),
		VATAmount:       f.FormatTL(o.VATAmount),
		GrandTotalLabel: t("grand_total"),
		GrandTotal:      f.FormatTL(o.GrandTotal),
		NotesLabel:      t("notes"),
		Notes:           o.Notes,
	}
	if o.Customer != nil {
		if o.Customer.Name != "" {
			doc.CustomerName = o.Customer.Name
		}
		if o.Customer.Phone != "" {
			doc.CustomerPhone = o.Customer.Phone
		}
	}
	// Discount row only when a discount was actually applied,
	// rendered as the negative amount it represents.
	if o.DiscountAmount != 0 {
		doc.Discount = "-" + f.FormatTL(o.DiscountAmount)
	}

	for i := range o.Items {
		it := &o.Items[i]
		doc.Rows = append(doc.Rows, Row{
			Index:     i + 1,
			StoneType: nameOrFallback(catalogStoneName(it), it.StoneTypeName),
			Feature:   nameOrFallback(catalogFeatureName(it), it.StoneFeatureName),
			Thickness: formatDim(it.Thickness),
			Width:     formatDim(it.Width),
			Length:    formatDim(it.Length),
			Quantity:  strconv.Itoa(it.Quantity),
			Measure:   formatMeasure(it),
			UnitPrice: f.FormatTL(it.UnitPrice),
			LineTotal: f.FormatTL(it.LineTotal),
		})
	}
	return doc
}

func catalogStoneName(it *models.OrderItem) string {
	if it.StoneType != nil {
		return it.StoneType.Name
	}
	return ""
}

func catalogFeatureName(it *models.OrderItem) string {
	if it.StoneFeature != nil {
		return it.StoneFeature.Name
	}
	return ""
}

func nameOrFallback(catalog, freeText string) string {
	if catalog != "" {
		return catalog
	}
	if freeText != "" {
		return freeText
	}
	return Dash
}

// Dimensions print as entered (no forced decimals), dash when absent.
func formatDim(v *float64) string {
	if v == nil {
		return Dash
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

// The measure column keeps the historical spreadsheet convention:
// two decimals with a dot separator plus the unit suffix.
func formatMeasure(it *models.OrderItem) string {
	switch it.MeasureType {
	case models.MeasureSquareMeter:
		var v float64
		if it.SquareMeter != nil {
			v = *it.SquareMeter
		}
		return fmt.Sprintf("%.2f M²", v)
	case models.MeasureLinearMeter:
		var v float64
		if it.LinearMeter != nil {
			v = *it.LinearMeter
		}
		return fmt.Sprintf("%.2f Mtül", v)
	default:
		return Dash
	}
}

// Rates print without trailing zeros: 20 -> "20", 18.5 -> "18.5".
func formatRate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
