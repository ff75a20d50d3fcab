package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/omsan/stone-orders/internal/models"
	"github.com/omsan/stone-orders/internal/services"
)

func TestCustomerCreateAndList(t *testing.T) {
	db := setupTestDB(t)
	h := NewCustomerHandler(db)

	w := postJSON(t, h.Create, "/customers", `{"name":"Yılmaz İnşaat","phone":"0532 111 22 33","tax_office":"Kadıköy"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d body=%s", w.Code, w.Body.String())
	}

	w = postJSON(t, h.Create, "/customers", `{"name":"  "}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for blank name got %d", w.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/customers", nil)
	lw := httptest.NewRecorder()
	h.List(lw, req)
	if lw.Code != http.StatusOK {
		t.Fatalf("list got %d", lw.Code)
	}
	var list struct {
		Items []models.Customer `json:"items"`
		Total int               `json:"total"`
	}
	if err := json.Unmarshal(lw.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if list.Total != 1 || list.Items[0].Name != "Yılmaz İnşaat" {
		t.Fatalf("unexpected list: %+v", list)
	}
}

func TestCustomerDeleteBlockedByOrders(t *testing.T) {
	db := setupTestDB(t)
	customer, stone, _ := seedOrderFixtures(t, db)
	oh := NewOrderHandler(db, services.NewPricingService(), services.DefaultVATRate)
	if w := postJSON(t, oh.Create, "/orders", createOrderBody(customer.ID, stone.ID)); w.Code != http.StatusCreated {
		t.Fatalf("seed order got %d", w.Code)
	}

	h := NewCustomerHandler(db)
	w := postJSON(t, h.Delete, "/customers/delete?id="+strconv.Itoa(int(customer.ID)), "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 while orders reference the customer, got %d", w.Code)
	}
}
