package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"gorm.io/gorm"

	"github.com/omsan/stone-orders/internal/httpx"
	"github.com/omsan/stone-orders/internal/models"
)

// CatalogHandler serves the stone type and feature lookups that order rows
// reference. Entries are created inline from the order form, so creation is
// deliberately minimal: a name, and for features an optional default price.
type CatalogHandler struct {
	DB *gorm.DB
}

func NewCatalogHandler(db *gorm.DB) *CatalogHandler {
	return &CatalogHandler{DB: db}
}

// ListStoneTypes: GET /stone-types – active entries, alphabetical.
func (h *CatalogHandler) ListStoneTypes(w http.ResponseWriter, r *http.Request) {
	var types []models.StoneType
	if err := h.DB.Where("is_active = ?", true).Order("name").Find(&types).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_list_stone_types", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"items": types, "total": len(types)})
}

// CreateStoneType: POST /stone-types
func (h *CatalogHandler) CreateStoneType(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", map[string]string{"name": "required"})
		return
	}
	st := models.StoneType{Name: req.Name, IsActive: true}
	if err := h.DB.Create(&st).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_create_stone_type", nil)
		return
	}
	httpx.JSON(w, http.StatusCreated, st)
}

// ListStoneFeatures: GET /stone-features – active entries, alphabetical.
func (h *CatalogHandler) ListStoneFeatures(w http.ResponseWriter, r *http.Request) {
	var features []models.StoneFeature
	if err := h.DB.Where("is_active = ?", true).Order("name").Find(&features).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_list_stone_features", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"items": features, "total": len(features)})
}

// CreateStoneFeature: POST /stone-features
func (h *CatalogHandler) CreateStoneFeature(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name         string   `json:"name"`
		DefaultPrice *float64 `json:"default_price"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", map[string]string{"name": "required"})
		return
	}
	sf := models.StoneFeature{Name: req.Name, DefaultPrice: req.DefaultPrice, IsActive: true}
	if err := h.DB.Create(&sf).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_create_stone_feature", nil)
		return
	}
	httpx.JSON(w, http.StatusCreated, sf)
}
