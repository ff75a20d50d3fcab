package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"gorm.io/gorm"

	"github.com/omsan/stone-orders/internal/currency"
	"github.com/omsan/stone-orders/internal/export"
	"github.com/omsan/stone-orders/internal/httpx"
	"github.com/omsan/stone-orders/internal/i18n"
	"github.com/omsan/stone-orders/internal/models"
)

// ExportHandler produces the two order documents: the spreadsheet text
// export and the print PDF. Both are one-shot downloads; a missing order
// aborts with 404 before any body byte is written.
type ExportHandler struct {
	DB          *gorm.DB
	CompanyName string
	Formatter   *currency.Formatter
}

func NewExportHandler(db *gorm.DB, companyName string, f *currency.Formatter) *ExportHandler {
	return &ExportHandler{DB: db, CompanyName: companyName, Formatter: f}
}

// CSV: GET /orders/export/csv?id=
func (h *ExportHandler) CSV(w http.ResponseWriter, r *http.Request) {
	ord, ok := h.loadOrder(w, r)
	if !ok {
		return
	}
	doc := export.BuildDocument(ord, h.CompanyName, h.lang(r), h.Formatter)
	httpx.Attachment(w, "text/csv; charset=utf-8", ord.OrderNumber+".csv", export.CSV(doc))
}

// PDF: GET /orders/export/pdf?id=
func (h *ExportHandler) PDF(w http.ResponseWriter, r *http.Request) {
	ord, ok := h.loadOrder(w, r)
	if !ok {
		return
	}
	doc := export.BuildDocument(ord, h.CompanyName, h.lang(r), h.Formatter)
	data, err := export.PDF(doc)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "pdf_generation_failed", nil)
		return
	}
	httpx.Attachment(w, "application/pdf", ord.OrderNumber+".pdf", data)
}

// Documents default to Turkish regardless of browser preferences; the
// lang query parameter exists for the occasional English customer copy.
func (h *ExportHandler) lang(r *http.Request) string {
	return i18n.Normalize(r.URL.Query().Get("lang"))
}

func (h *ExportHandler) loadOrder(w http.ResponseWriter, r *http.Request) (*models.Order, bool) {
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
