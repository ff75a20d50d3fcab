package export

import (
	"bytes"
	"fmt"
	"strings"
)

// UTF-8 byte-order marker. Spreadsheet software sniffs it to decode Turkish
// characters correctly; without it Excel falls back to the ANSI codepage.
const bom = "\uFEFF"

// CSV serializes the document as the semicolon-separated spreadsheet export:
// header block, column header, one row per item, totals block, optional notes.
// Rows are \n-terminated; fields never need quoting because the number
// formats in Document contain no semicolons.
func CSV(doc Document) []byte {
	var b bytes.Buffer
	b.WriteString(bom)

	b.WriteString(doc.CompanyName + "\n")
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s;%s\n", doc.OrderNoLabel, doc.OrderNumber)
	fmt.Fprintf(&b, "%s;%s\n", doc.DateLabel, doc.OrderDate)
	fmt.Fprintf(&b, "%s;%s\n", doc.CustomerLabel, doc.CustomerName)
	fmt.Fprintf(&b, "%s;%s\n", doc.PhoneLabel, doc.CustomerPhone)
	b.WriteString("\n")

	b.WriteString(strings.Join(doc.Columns, ";") + "\n")
	for _, r := range doc.Rows {
		fmt.Fprintf(&b, "%d;%s;%s;%s;%s;%s;%s;%s;%s;%s\n",
			r.Index, r.StoneType, r.Feature, r.Thickness, r.Width, r.Length,
			r.Quantity, r.Measure, r.UnitPrice, r.LineTotal)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, ";;;;;;;;%s;%s\n", doc.SubtotalLabel, doc.Subtotal)
	if doc.Discount != "" {
		fmt.Fprintf(&b, ";;;;;;;;%s;%s\n", doc.DiscountLabel, doc.Discount)
	}
	fmt.Fprintf(&b, ";;;;;;;;%s;%s\n", doc.VATLabel, doc.VATAmount)
	fmt.Fprintf(&b, ";;;;;;;;%s;%s\n", doc.GrandTotalLabel, doc.GrandTotal)

	if doc.Notes != "" {
		b.WriteString("\n")
		fmt.Fprintf(&b, "%s;%s\n", doc.NotesLabel, doc.Notes)
	}
	return b.Bytes()
}
