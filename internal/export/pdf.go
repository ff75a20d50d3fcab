package export

import (
	"bytes"
	"strconv"

	"github.com/jung-kurt/gofpdf"
)

// Table column widths in mm; sums to the printable width of an A4 page
// with 10mm margins.
var colWidths = [10]float64{8, 30, 26, 15, 15, 15, 11, 22, 24, 24}

// PDF serializes the document as a print-ready A4 page set: company header,
// order info block, the same ten-column table as the spreadsheet export,
// totals with the conditional discount row, and the optional notes block.
// Turkish text goes through the cp1254 translator because the core fonts
// are not unicode.
func PDF(doc Document) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("cp1254")
	pdf.SetTitle(tr(doc.OrderNumber), false)
	pdf.SetMargins(10, 12, 10)
	pdf.SetAutoPageBreak(true, 14)
	pdf.AddPage()

	// Header: company identity and document title
	pdf.SetFont("Arial", "B", 16)
	pdf.SetTextColor(30, 64, 175)
	pdf.CellFormat(0, 9, tr(doc.CompanyName), "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 11)
	pdf.SetTextColor(51, 51, 51)
	pdf.CellFormat(0, 6, tr(doc.Title), "B", 1, "C", false, 0, "")
	pdf.Ln(5)

	// Info block: order number/date left, customer/phone right
	infoPair := func(label, value string) {
		pdf.SetFont("Arial", "B", 10)
		pdf.CellFormat(28, 6, tr(label+":"), "", 0, "L", false, 0, "")
		pdf.SetFont("Arial", "", 10)
		pdf.CellFormat(67, 6, tr(value), "", 0, "L", false, 0, "")
	}
	infoPair(doc.OrderNoLabel, doc.OrderNumber)
	infoPair(doc.DateLabel, doc.OrderDate)
	pdf.Ln(6)
	infoPair(doc.CustomerLabel, doc.CustomerName)
	infoPair(doc.PhoneLabel, doc.CustomerPhone)
	pdf.Ln(10)

	// Table header
	pdf.SetFont("Arial", "B", 8)
	pdf.SetFillColor(30, 64, 175)
	pdf.SetTextColor(255, 255, 255)
	for i, col := range doc.Columns {
		pdf.CellFormat(colWidths[i], 7, tr(col), "", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	// Item rows, alternating fill like the on-screen table
	pdf.SetFont("Arial", "", 8)
	pdf.SetTextColor(51, 51, 51)
	pdf.SetFillColor(248, 250, 252)
	for _, r := range doc.Rows {
		fill := r.Index%2 == 0
		cells := [10]string{
			strconv.Itoa(r.Index), r.StoneType, r.Feature, r.Thickness,
			r.Width, r.Length, r.Quantity, r.Measure, r.UnitPrice, r.LineTotal,
		}
		for i, c := range cells {
			align := "L"
			if i >= 8 {
				align = "R"
			}
			pdf.CellFormat(colWidths[i], 6, tr(c), "B", 0, align, fill, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.Ln(4)

	// Totals, right-aligned under the amount columns
	totalRow := func(label, value string, bold bool) {
		style := ""
		if bold {
			style = "B"
		}
		pdf.SetFont("Arial", style, 10)
		pdf.CellFormat(120, 7, "", "", 0, "L", false, 0, "")
		pdf.CellFormat(40, 7, tr(label), "", 0, "R", false, 0, "")
		pdf.CellFormat(30, 7, tr(value), "", 1, "R", false, 0, "")
	}
	totalRow(doc.SubtotalLabel+":", doc.Subtotal, false)
	if doc.Discount != "" {
		pdf.SetTextColor(220, 38, 38)
		totalRow(doc.DiscountLabel+":", doc.Discount, false)
		pdf.SetTextColor(51, 51, 51)
	}
	totalRow(doc.VATLabel+":", doc.VATAmount, false)
	pdf.SetTextColor(22, 101, 52)
	totalRow(doc.GrandTotalLabel+":", doc.GrandTotal, true)
	pdf.SetTextColor(51, 51, 51)

	if doc.Notes != "" {
		pdf.Ln(8)
		pdf.SetFont("Arial", "B", 10)
		pdf.CellFormat(0, 6, tr(doc.NotesLabel+":"), "", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "", 10)
		pdf.MultiCell(0, 5, tr(doc.Notes), "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
