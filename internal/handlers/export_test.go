package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/omsan/stone-orders/internal/currency"
	"github.com/omsan/stone-orders/internal/models"
	"github.com/omsan/stone-orders/internal/services"
)

func newTestExportHandler(t *testing.T) (*ExportHandler, models.Order) {
	t.Helper()
	db := setupTestDB(t)
	customer, stone, _ := seedOrderFixtures(t, db)
	oh := NewOrderHandler(db, services.NewPricingService(), services.DefaultVATRate)

	w := postJSON(t, oh.Create, "/orders", createOrderBody(customer.ID, stone.ID))
	if w.Code != http.StatusCreated {
		t.Fatalf("seed order got %d body=%s", w.Code, w.Body.String())
	}
	var ord models.Order
	if err := json.Unmarshal(w.Body.Bytes(), &ord); err != nil {
		t.Fatalf("decode order: %v", err)
	}
	return NewExportHandler(db, "OMSAN MERMER SAN. TİC. LTD. ŞTİ.", currency.Default()), ord
}

func TestExportCSV(t *testing.T) {
	h, ord := newTestExportHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/orders/export/csv?id="+strconv.Itoa(int(ord.ID)), nil)
	w := httptest.NewRecorder()
	h.CSV(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d body=%s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); !strings.Contains(ct, "text/csv") {
		t.Fatalf("expected csv content-type got %s", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, ord.OrderNumber+".csv") {
		t.Fatalf("expected attachment filename with order number, got %s", cd)
	}
	body := w.Body.Bytes()
	if !bytes.HasPrefix(body, []byte("\uFEFF")) {
		t.Fatalf("csv must start with UTF-8 BOM")
	}
	text := string(body)
	for _, want := range []string{
		"Sipariş No;" + ord.OrderNumber,
		"Müşteri;Yılmaz İnşaat",
		"1;Mermer;-;-;300;60;2;1.80 M²;100,00 TL;360,00 TL",
		";;;;;;;;Ara Toplam;510,00 TL",
		";;;;;;;;GENEL TOPLAM;612,00 TL",
	} {
		if !strings.Contains(text, want) {
			t.Fatalf("csv missing %q in:\n%s", want, text)
		}
	}
	if strings.Contains(text, "İskonto") {
		t.Fatalf("discount row must be omitted when discount is zero")
	}
}

func TestExportPDF(t *testing.T) {
	h, ord := newTestExportHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/orders/export/pdf?id="+strconv.Itoa(int(ord.ID)), nil)
	w := httptest.NewRecorder()
	h.PDF(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d body=%s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); !strings.Contains(ct, "application/pdf") {
		t.Fatalf("expected pdf content-type got %s", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, ord.OrderNumber+".pdf") {
		t.Fatalf("expected attachment filename with order number, got %s", cd)
	}
	if !bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")) {
		t.Fatalf("body is not a PDF document")
	}
}

func TestExportMissingOrder(t *testing.T) {
	h, _ := newTestExportHandler(t)

	for _, path := range []string{"/orders/export/csv?id=9999", "/orders/export/pdf?id=9999"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		if strings.Contains(path, "csv") {
			h.CSV(w, req)
		} else {
			h.PDF(w, req)
		}
		if w.Code != http.StatusNotFound {
			t.Fatalf("%s: expected 404 got %d", path, w.Code)
		}
		if !strings.Contains(w.Body.String(), "order_not_found") {
			t.Fatalf("%s: expected order_not_found error, got %s", path, w.Body.String())
		}
		if w.Header().Get("Content-Disposition") != "" {
			t.Fatalf("%s: no partial attachment may be produced", path)
		}
	}
}

func TestExportEnglishCopy(t *testing.T) {
	h, ord := newTestExportHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/orders/export/csv?id="+strconv.Itoa(int(ord.ID))+"&lang=en", nil)
	w := httptest.NewRecorder()
	h.CSV(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", w.Code)
	}
	text := w.Body.String()
	if !strings.Contains(text, "Order No;"+ord.OrderNumber) {
		t.Fatalf("expected English labels, got:\n%s", text)
	}
	// figures are identical regardless of label language
	if !strings.Contains(text, ";;;;;;;;GRAND TOTAL;612,00 TL") {
		t.Fatalf("expected same figures under English labels, got:\n%s", text)
	}
}
