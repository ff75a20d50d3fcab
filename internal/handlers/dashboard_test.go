package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/omsan/stone-orders/internal/models"
)

// Monthly revenue must cut at local midnight on the first of the month;
// an order placed an hour before the boundary belongs to last month even
// when the process does not run in UTC.
func TestDashboardMonthlyRevenueBoundary(t *testing.T) {
	db := setupTestDB(t)
	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	inMonth := models.Order{OrderNumber: "SIP-20260801-AAAAAA", OrderDate: monthStart.Add(time.Hour), Status: models.StatusCompleted, GrandTotal: 600}
	lastMonth := models.Order{OrderNumber: "SIP-20260731-BBBBBB", OrderDate: monthStart.Add(-time.Hour), Status: models.StatusCompleted, GrandTotal: 250}
	pending := models.Order{OrderNumber: "SIP-20260801-CCCCCC", OrderDate: monthStart.Add(time.Hour), Status: models.StatusPending, GrandTotal: 999}
	for _, o := range []*models.Order{&inMonth, &lastMonth, &pending} {
		if err := db.Create(o).Error; err != nil {
			t.Fatalf("seed order: %v", err)
		}
	}

	h := NewDashboardHandler(db)
	req := httptest.NewRequest(http.MethodGet, "/dashboard/stats", nil)
	w := httptest.NewRecorder()
	h.Stats(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("stats got %d body=%s", w.Code, w.Body.String())
	}

	var stats struct {
		TotalOrders    int64   `json:"total_orders"`
		PendingOrders  int64   `json:"pending_orders"`
		TotalRevenue   float64 `json:"total_revenue"`
		MonthlyRevenue float64 `json:"monthly_revenue"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &stats); err != nil {
		t.Fatalf("decode stats: %v", err)
	}
	if stats.TotalOrders != 3 || stats.PendingOrders != 1 {
		t.Fatalf("unexpected counts: %+v", stats)
	}
	if stats.TotalRevenue != 850 {
		t.Fatalf("total revenue must sum completed orders only, got %v", stats.TotalRevenue)
	}
	if stats.MonthlyRevenue != 600 {
		t.Fatalf("monthly revenue must exclude last month's order, got %v", stats.MonthlyRevenue)
	}
}
