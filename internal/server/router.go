package server

import (
	"net/http"

	"gorm.io/gorm"

	"github.com/omsan/stone-orders/internal/config"
	"github.com/omsan/stone-orders/internal/currency"
	"github.com/omsan/stone-orders/internal/handlers"
	"github.com/omsan/stone-orders/internal/httpx"
	"github.com/omsan/stone-orders/internal/services"
)

// New constructs the root http.Handler with all routes applied.
func New(db *gorm.DB, cfg config.Config) http.Handler {
	mux := http.NewServeMux()

	// --- Health endpoints ---
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		// Lightweight DB check (SELECT 1) – no error details in the body
		if err := db.Exec("SELECT 1").Error; err != nil {
			httpx.JSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
			return
		}
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	listCreate := func(list, create http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet:
				list(w, r)
			case http.MethodPost:
				create(w, r)
			default:
				w.Header().Set("Allow", "GET,POST")
				httpx.JSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", nil)
			}
		}
	}
	postOnly := func(h http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost {
				w.Header().Set("Allow", "POST")
				httpx.JSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", nil)
				return
			}
			h(w, r)
		}
	}

	// Customers
	ch := handlers.NewCustomerHandler(db)
	mux.HandleFunc("/customers", listCreate(ch.List, ch.Create))
	mux.HandleFunc("/customers/update", postOnly(ch.Update))
	mux.HandleFunc("/customers/delete", postOnly(ch.Delete))

	// Catalog
	cat := handlers.NewCatalogHandler(db)
	mux.HandleFunc("/stone-types", listCreate(cat.ListStoneTypes, cat.CreateStoneType))
	mux.HandleFunc("/stone-features", listCreate(cat.ListStoneFeatures, cat.CreateStoneFeature))

	// Orders
	pricing := services.NewPricingService()
	oh := handlers.NewOrderHandler(db, pricing, cfg.DefaultVATRate)
	mux.HandleFunc("/orders", listCreate(oh.List, oh.Create))
	mux.HandleFunc("/orders/get", oh.Get)
	mux.HandleFunc("/orders/update", postOnly(oh.Update))
	mux.HandleFunc("/orders/status", postOnly(oh.UpdateStatus))
	mux.HandleFunc("/orders/delete", postOnly(oh.Delete))

	// Document exports
	eh := handlers.NewExportHandler(db, cfg.CompanyName, currency.Default())
	mux.HandleFunc("/orders/export/csv", eh.CSV)
	mux.HandleFunc("/orders/export/pdf", eh.PDF)

	// Dashboard
	dh := handlers.NewDashboardHandler(db)
	mux.HandleFunc("/dashboard/stats", dh.Stats)

	return mux
}
