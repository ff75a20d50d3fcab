package currency

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter renders monetary amounts as fixed two-decimal text in one
// regional convention. The convention is process-wide configuration: build
// one Formatter and pass it around rather than picking a locale per call.
type Formatter struct {
	printer *message.Printer
}

// New returns a formatter for the given language tag.
func New(tag language.Tag) *Formatter {
	return &Formatter{printer: message.NewPrinter(tag)}
}

// Default is the Turkish convention used by the exports:
// decimal comma, period thousands separator (1.234,56).
func Default() *Formatter { return New(language.Turkish) }

// Format renders v with exactly two fraction digits.
// NaN and ±Inf render as zero; garbage numeric state must never surface
// as an error or a blank cell in a document.
func (f *Formatter) Format(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = 0
	}
	return f.printer.Sprintf("%v", number.Decimal(v,
		number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

// FormatOptional treats a missing amount as zero.
func (f *Formatter) FormatOptional(v *float64) string {
	if v == nil {
		return f.Format(0)
	}
	return f.Format(*v)
}

// FormatTL appends the lira label used throughout the documents.
func (f *Formatter) FormatTL(v float64) string {
	return f.Format(v) + " TL"
}
