package i18n

import "testing"

func TestNormalize(t *testing.T) {
	if Normalize("tr-TR") != "tr" {
		t.Fatalf("expected tr")
	}
	if Normalize("EN") != "en" {
		t.Fatalf("expected en for EN")
	}
	if Normalize("fr") != "tr" {
		t.Fatalf("expected tr fallback for fr")
	}
	if Normalize("") != "tr" {
		t.Fatalf("expected default tr")
	}
}

func TestTranslations(t *testing.T) {
	if T("tr", "subtotal") != "Ara Toplam" {
		t.Fatalf("expected Ara Toplam")
	}
	if T("en", "subtotal") != "Subtotal" {
		t.Fatalf("expected Subtotal")
	}
	// unknown code -> fallback to code
	if T("tr", "__nope__") != "__nope__" {
		t.Fatalf("expected fallback to code")
	}
	// unknown language -> default language translation
	if T("de", "grand_total") != "GENEL TOPLAM" {
		t.Fatalf("expected tr fallback for de lang")
	}
}
