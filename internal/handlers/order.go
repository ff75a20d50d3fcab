package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/omsan/stone-orders/internal/httpx"
	"github.com/omsan/stone-orders/internal/models"
	"github.com/omsan/stone-orders/internal/services"
)

var validStatuses = map[string]bool{
	models.StatusPending:    true,
	models.StatusProcessing: true,
	models.StatusCompleted:  true,
	models.StatusCancelled:  true,
}

var searchSanitizer = regexp.MustCompile(`[^a-zA-Z0-9 \-_]`)

type OrderHandler struct {
	DB  *gorm.DB
	Svc *services.PricingService
	// Fallback VAT rate for requests that leave vat_rate unset.
	DefaultVATRate float64
}

func NewOrderHandler(db *gorm.DB, svc *services.PricingService, defaultVATRate float64) *OrderHandler {
	if defaultVATRate <= 0 {
		defaultVATRate = services.DefaultVATRate
	}
	return &OrderHandler{DB: db, Svc: svc, DefaultVATRate: defaultVATRate}
}

type orderItemRequest struct {
	StoneTypeID      *uint    `json:"stone_type_id"`
	StoneTypeName    string   `json:"stone_type_name"`
	StoneFeatureID   *uint    `json:"stone_feature_id"`
	StoneFeatureName string   `json:"stone_feature_name"`
	Thickness        *float64 `json:"thickness"`
	Width            *float64 `json:"width"`
	Length           *float64 `json:"length"`
	Quantity         int      `json:"quantity"`
	MeasureType      string   `json:"measure_type"`
	UnitPrice        float64  `json:"unit_price"`
	Notes            string   `json:"notes"`
}

type orderRequest struct {
	CustomerID     *uint              `json:"customer_id"`
	OrderDate      string             `json:"order_date"` // YYYY-MM-DD
	Status         string             `json:"status"`
	DiscountRate   *float64           `json:"discount_rate"`
	DiscountAmount *float64           `json:"discount_amount"`
	// Pointers so an explicit zero rate or an emptied notes field
	// survive decoding; nil means "unset".
	VATRate *float64           `json:"vat_rate"`
	Notes   *string            `json:"notes"`
	Items   []orderItemRequest `json:"items"`
}

func (r orderItemRequest) toModel() models.OrderItem {
	mt := r.MeasureType
	switch mt {
	case models.MeasureSquareMeter, models.MeasureLinearMeter, models.MeasureNone:
	default:
		mt = models.MeasureNone
	}
	return models.OrderItem{
		StoneTypeID:      r.StoneTypeID,
		StoneTypeName:    strings.TrimSpace(r.StoneTypeName),
		StoneFeatureID:   r.StoneFeatureID,
		StoneFeatureName: strings.TrimSpace(r.StoneFeatureName),
		Thickness:        r.Thickness,
		Width:            r.Width,
		Length:           r.Length,
		Quantity:         r.Quantity,
		MeasureType:      mt,
		UnitPrice:        r.UnitPrice,
		Notes:            r.Notes,
	}
}

// newOrderNumber builds a human-readable unique number, e.g. SIP-20260828-7F3A2B.
func newOrderNumber(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:6])
	return "SIP-" + now.Format("20060102") + "-" + suffix
}

func parseOrderDate(s string) time.Time {
	if s != "" {
		if d, err := time.Parse("2006-01-02", s); err == nil {
			return d
		}
	}
	return time.Now().Truncate(24 * time.Hour)
}

// List: GET /orders – status/customer/search filters, newest first, paginated.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 200 {
			limit = n
		}
	}
	offset := 0
	if v := r.URL.Query().Get("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 1 {
			offset = (n - 1) * limit
		}
	}
	dbq := h.DB.Model(&models.Order{})
	if s := r.URL.Query().Get("status"); s != "" && validStatuses[s] {
		dbq = dbq.Where("status = ?", s)
	}
	if v := r.URL.Query().Get("customer_id"); v != "" {
		if id, err := strconv.Atoi(v); err == nil && id > 0 {
			dbq = dbq.Where("customer_id = ?", id)
		}
	}
	if q := strings.TrimSpace(r.URL.Query().Get("q")); q != "" {
		safe := searchSanitizer.ReplaceAllString(q, "")
		dbq = dbq.Where("lower(order_number) LIKE ?", "%"+strings.ToLower(safe)+"%")
	}
	var total int64
	dbq.Count(&total)
	var orders []models.Order
	if err := dbq.Preload("Customer").Order("created_at desc").Limit(limit).Offset(offset).Find(&orders).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_list_orders", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"items": orders, "total": total, "limit": limit, "offset": offset})
}

// Get: GET /orders/get?id= – order with customer, items, and catalog names.
func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	ord, ok := h.load(w, r)
	if !ok {
		return
	}
	httpx.JSON(w, http.StatusOK, ord)
}

// Create: POST /orders – builds the order, recalculates every line and the
// totals, and persists order plus items in one transaction.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req orderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	if len(req.Items) == 0 {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", map[string]string{"items": "required"})
		return
	}
	status := req.Status
	if !validStatuses[status] {
		status = models.StatusPending
	}
	ord := models.Order{
		OrderNumber: newOrderNumber(time.Now()),
		CustomerID:  req.CustomerID,
		OrderDate:   parseOrderDate(req.OrderDate),
		Status:      status,
		VATRate:     h.DefaultVATRate,
	}
	if req.Notes != nil {
		ord.Notes = *req.Notes
	}
	if req.VATRate != nil {
		ord.VATRate = *req.VATRate
	}
	if req.DiscountRate != nil {
		ord.DiscountRate = *req.DiscountRate
	}
	if req.DiscountAmount != nil {
		ord.DiscountAmount = *req.DiscountAmount
	}
	for _, ir := range req.Items {
		ord.Items = append(ord.Items, ir.toModel())
	}
	h.Svc.RecalculateOrder(&ord)

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&ord).Error
	}); err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_create_order", nil)
		return
	}
	if err := h.DB.Preload("Customer").Preload("Items.StoneType").Preload("Items.StoneFeature").First(&ord, ord.ID).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_load_order", nil)
		return
	}
	httpx.JSON(w, http.StatusCreated, ord)
}

// Update: POST /orders/update?id= – replaces the item list wholesale and
// recomputes all totals; a partial update can never leave totals stale.
func (h *OrderHandler) Update(w http.ResponseWriter, r *http.Request) {
	ord, ok := h.load(w, r)
	if !ok {
		return
	}
	var req orderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	if req.CustomerID != nil {
		ord.CustomerID = req.CustomerID
	}
	if req.OrderDate != "" {
		ord.OrderDate = parseOrderDate(req.OrderDate)
	}
	if req.Status != "" && validStatuses[req.Status] {
		ord.Status = req.Status
	}
	// an explicit empty string clears the notes; nil leaves them alone
	if req.Notes != nil {
		ord.Notes = *req.Notes
	}
	// nil leaves the stored rate untouched; an explicit zero is honored.
	if req.VATRate != nil {
		ord.VATRate = *req.VATRate
	}
	if req.DiscountRate != nil {
		ord.DiscountRate = *req.DiscountRate
	}
	if req.DiscountAmount != nil {
		ord.DiscountAmount = *req.DiscountAmount
	}
	if req.Items != nil {
		items := make([]models.OrderItem, 0, len(req.Items))
		for _, ir := range req.Items {
			it := ir.toModel()
			it.OrderID = ord.ID
			items = append(items, it)
		}
		ord.Items = items
	}
	h.Svc.RecalculateOrder(ord)

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", ord.ID).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		if err := tx.Omit(clause.Associations).Save(ord).Error; err != nil {
			return err
		}
		if len(ord.Items) > 0 {
			// catalog rows are referenced, never upserted from here
			if err := tx.Omit(clause.Associations).Create(&ord.Items).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_update_order", nil)
		return
	}
	if err := h.DB.Preload("Customer").Preload("Items.StoneType").Preload("Items.StoneFeature").First(ord, ord.ID).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_load_order", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, ord)
}

// UpdateStatus: POST /orders/status?id= – {"status":"completed"}
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	ord, ok := h.load(w, r)
	if !ok {
		return
	}
	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || !validStatuses[req.Status] {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", map[string]string{"status": "invalid"})
		return
	}
	if err := h.DB.Model(ord).Update("status", req.Status).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_update_status", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"status": req.Status})
}

// Delete: POST /orders/delete?id=
func (h *OrderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ord, ok := h.load(w, r)
	if !ok {
		return
	}
	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", ord.ID).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Order{}, ord.ID).Error
	})
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_delete_order", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// load resolves ?id= into a fully preloaded order, writing the error
// response itself when it cannot.
func (h *OrderHandler) load(w http.ResponseWriter, r *http.Request) (*models.Order, bool) {
	id, err := strconv.Atoi(r.URL.Query().Get("id"))
	if err != nil || id <= 0 {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_id", nil)
		return nil, false
	}
	var ord models.Order
	if err := h.DB.Preload("Customer").Preload("Items.StoneType").Preload("Items.StoneFeature").First(&ord, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httpx.JSONError(w, http.StatusNotFound, "order_not_found", nil)
			return nil, false
		}
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_load_order", nil)
		return nil, false
	}
	return &ord, true
}
