package handlers

import (
	"net/http"
	"time"

	"gorm.io/gorm"

	"github.com/omsan/stone-orders/internal/httpx"
	"github.com/omsan/stone-orders/internal/models"
)

type DashboardHandler struct {
	DB *gorm.DB
}

func NewDashboardHandler(db *gorm.DB) *DashboardHandler {
	return &DashboardHandler{DB: db}
}

// Stats: GET /dashboard/stats – order counts, revenue, customer count.
// Revenue counts completed orders only; cancelled work must not inflate it.
func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	var totalOrders, pendingOrders, completedOrders, totalCustomers int64
	h.DB.Model(&models.Order{}).Count(&totalOrders)
	h.DB.Model(&models.Order{}).Where("status = ?", models.StatusPending).Count(&pendingOrders)
	h.DB.Model(&models.Order{}).Where("status = ?", models.StatusCompleted).Count(&completedOrders)
	h.DB.Model(&models.Customer{}).Count(&totalCustomers)

	var totalRevenue, monthlyRevenue float64
	h.DB.Model(&models.Order{}).
		Where("status = ?", models.StatusCompleted).
		Select("COALESCE(SUM(grand_total), 0)").Scan(&totalRevenue)
	// first of the month in local time; Truncate would cut at UTC midnight
	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	h.DB.Model(&models.Order{}).
		Where("status = ? AND order_date >= ?", models.StatusCompleted, monthStart).
		Select("COALESCE(SUM(grand_total), 0)").Scan(&monthlyRevenue)

	httpx.JSON(w, http.StatusOK, map[string]any{
		"total_orders":     totalOrders,
		"pending_orders":   pendingOrders,
		"completed_orders": completedOrders,
		"total_revenue":    totalRevenue,
		"monthly_revenue":  monthlyRevenue,
		"total_customers":  totalCustomers,
	})
}
