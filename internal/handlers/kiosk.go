package handlers

import (
	"net/http"

	"GiftKiosk/internal/model"
	"GiftKiosk/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// KioskHandler — публичная часть: каталог, проверка выбора, отправка.
type KioskHandler struct {
	Items     *service.CatalogService
	Selection *service.SelectionService
	Locations *service.LocationService
	Logger    *zap.SugaredLogger
}

func NewKioskHandler(c *service.CatalogService, s *service.SelectionService, l *service.LocationService, logger *zap.SugaredLogger) *KioskHandler {
	return &KioskHandler{Items: c, Selection: s, Locations: l, Logger: logger}
}

type catalogResponse struct {
	Items []model.GiftItem `json:"items"`
}

// Catalog GET /api/catalog — видимые позиции в порядке показа.
func (h *KioskHandler) Catalog(w http.ResponseWriter, r *http.Request) {
	items, err := h.Items.FetchVisible(r.Context())
	if err != nil {
		fail(w, h.Logger, "Catalog", err, service.Mutation{})
		return
	}
	if items == nil {
		items = []model.GiftItem{}
	}
	writeJSON(w, http.StatusOK, catalogResponse{Items: items})
}

type evaluateRequest struct {
	Items []string `json:"items" validate:"max=10"`
	Name  string   `json:"name" validate:"max=200"`
}

// Evaluate POST /api/selection/evaluate
func (h *KioskHandler) Evaluate(w http.ResponseWriter, r *http.Request) {
	var req evaluateRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, h.Logger, "Evaluate", err)
		return
	}
	ev, err := h.Selection.Evaluate(r.Context(), req.Items, req.Name)
	if err != nil {
		fail(w, h.Logger, "Evaluate", err, service.Mutation{})
		return
	}
	writeJSON(w, http.StatusOK, ev)
}

type submitRequest struct {
	Name       string   `json:"name" validate:"required,max=200"`
	Items      []string `json:"items" validate:"required,dive,required"`
	LocationID *string  `json:"location_id,omitempty" validate:"omitempty,max=64"`
}

// Submit POST /api/selections — сохраняет выбор посетителя.
func (h *KioskHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, h.Logger, "Submit", err)
		return
	}
	rec, err := h.Selection.Submit(r.Context(), service.SubmitRequest{
		Name:       req.Name,
		Items:      req.Items,
		LocationID: req.LocationID,
	})
	if err != nil {
		fail(w, h.Logger, "Submit", err, service.Mutation{})
		return
	}
	writeJSON(w, http.StatusCreated, rec)
}

// Location GET /api/locations/{id} — имя пункта, неизвестный id даёт заглушку.
func (h *KioskHandler) Location(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	writeJSON(w, http.StatusOK, model.Location{ID: id, Name: h.Locations.Name(r.Context(), id)})
}
