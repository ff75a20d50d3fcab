package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"github.com/omsan/stone-orders/internal/httpx"
	"github.com/omsan/stone-orders/internal/models"
)

type CustomerHandler struct {
	DB *gorm.DB
}

func NewCustomerHandler(db *gorm.DB) *CustomerHandler {
	return &CustomerHandler{DB: db}
}

type customerRequest struct {
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Address   string `json:"address"`
	TaxOffice string `json:"tax_office"`
	TaxNumber string `json:"tax_number"`
	Notes     string `json:"notes"`
}

// List: GET /customers – alphabetical, optional name search.
func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	dbq := h.DB.Model(&models.Customer{})
	if q := strings.TrimSpace(r.URL.Query().Get("q")); q != "" {
		safe := searchSanitizer.ReplaceAllString(q, "")
		dbq = dbq.Where("lower(name) LIKE ?", "%"+strings.ToLower(safe)+"%")
	}
	var customers []models.Customer
	if err := dbq.Order("name").Find(&customers).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_list_customers", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"items": customers, "total": len(customers)})
}

// Create: POST /customers
func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req customerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", map[string]string{"name": "required"})
		return
	}
	c := models.Customer{
		Name: req.Name, Phone: req.Phone, Email: req.Email, Address: req.Address,
		TaxOffice: req.TaxOffice, TaxNumber: req.TaxNumber, Notes: req.Notes,
	}
	if err := h.DB.Create(&c).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_create_customer", nil)
		return
	}
	httpx.JSON(w, http.StatusCreated, c)
}

// Update: POST /customers/update?id=
func (h *CustomerHandler) Update(w http.ResponseWriter, r *http.Request) {
	c, ok := h.load(w, r)
	if !ok {
		return
	}
	var req customerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	if name := strings.TrimSpace(req.Name); name != "" {
		c.Name = name
	}
	c.Phone = req.Phone
	c.Email = req.Email
	c.Address = req.Address
	c.TaxOffice = req.TaxOffice
	c.TaxNumber = req.TaxNumber
	c.Notes = req.Notes
	if err := h.DB.Save(c).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_update_customer", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, c)
}

// Delete: POST /customers/delete?id= – refused while orders reference it.
func (h *CustomerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	c, ok := h.load(w, r)
	if !ok {
		return
	}
	var cnt int64
	if err := h.DB.Model(&models.Order{}).Where("customer_id = ?", c.ID).Count(&cnt).Error; err == nil && cnt > 0 {
		httpx.JSONError(w, http.StatusBadRequest, "customer_has_orders", nil)
		return
	}
	if err := h.DB.Delete(&models.Customer{}, c.ID).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_delete_customer", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *CustomerHandler) load(w http.ResponseWriter, r *http.Request) (*models.Customer, bool) {
	id, err := strconv.Atoi(r.URL.Query().Get("id"))
	if err != nil || id <= 0 {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_id", nil)
		return nil, false
	}
	var c models.Customer
	if err := h.DB.First(&c, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httpx.JSONError(w, http.StatusNotFound, "customer_not_found", nil)
			return nil, false
		}
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_load_customer", nil)
		return nil, false
	}
	return &c, true
}
