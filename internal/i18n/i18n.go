package i18n

import "strings"

// Document label catalog. Turkish is the business default; English exists for
// the occasional foreign customer copy. Unknown languages fall back to the
// default, unknown codes fall back to the code itself so a missing entry is
// visible instead of blank.

const defaultLang = "tr"

var supported = map[string]bool{"tr": true, "en": true}

var translations = map[string]map[string]string{
	"tr": {
		"quote_title":    "Fiyat Teklifi",
		"order_no":       "Sipariş No",
		"date":           "Tarih",
		"customer":       "Müşteri",
		"phone":          "Telefon",
		"col_stone_type": "Taş Cinsi",
		"col_feature":    "Özellik",
		"col_thickness":  "Kalınlık",
		"col_width":      "Genişlik",
		"col_length":     "Uzunluk",
		"col_quantity":   "Adet",
		"col_measure":    "M²/Mtül",
		"col_unit_price": "Birim Fiyat",
		"col_total":      "Tutar",
		"subtotal":       "Ara Toplam",
		"discount":       "İskonto",
		"vat":            "KDV",
		"grand_total":    "GENEL TOPLAM",
		"notes":          "Notlar",
	},
	"en": {
		"quote_title":    "Price Quote",
		"order_no":       "Order No",
		"date":           "Date",
		"customer":       "Customer",
		"phone":          "Phone",
		"col_stone_type": "Stone Type",
		"col_feature":    "Feature",
		"col_thickness":  "Thickness",
		"col_width":      "Width",
		"col_length":     "Length",
		"col_quantity":   "Qty",
		"col_measure":    "M²/Lm",
		"col_unit_price": "Unit Price",
		"col_total":      "Amount",
		"subtotal":       "Subtotal",
		"discount":       "Discount",
		"vat":            "VAT",
		"grand_total":    "GRAND TOTAL",
		"notes":          "Notes",
	},
}

// Normalize coerces any language value to a supported one.
func Normalize(lang string) string {
	l := strings.ToLower(strings.TrimSpace(lang))
	if i := strings.IndexAny(l, "-_"); i > 0 {
		l = l[:i]
	}
	if supported[l] {
		return l
	}
	return defaultLang
}

// T translates a label code for the given language.
func T(lang, code string) string {
	if m, ok := translations[Normalize(lang)]; ok {
		if v, ok := m[code]; ok {
			return v
		}
	}
	if v, ok := translations[defaultLang][code]; ok {
		return v
	}
	return code
}
