package handlers

import (
	"net/http"

	"GiftKiosk/internal/model"
	"GiftKiosk/internal/service"

	"go.uber.org/zap"
)

type LocationHandler struct {
	Locations *service.LocationService
	Logger    *zap.SugaredLogger
}

func NewLocationHandler(l *service.LocationService, logger *zap.SugaredLogger) *LocationHandler {
	return &LocationHandler{Locations: l, Logger: logger}
}

type locationsResponse struct {
	Locations []model.Location `json:"locations"`
}

type locationRequest struct {
	Name string `json:"name" validate:"required,max=200"`
}

type locationResponse struct {
	Location *model.Location `json:"location"`
	service.Mutation
}

func (h *LocationHandler) List(w http.ResponseWriter, r *http.Request) {
	locs, err := h.Locations.List(r.Context())
	if err != nil {
		fail(w, h.Logger, "ListLocations", err, service.Mutation{})
		return
	}
	if locs == nil {
		locs = []model.Location{}
	}
	writeJSON(w, http.StatusOK, locationsResponse{Locations: locs})
}

func (h *LocationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req locationRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, h.Logger, "CreateLocation", err)
		return
	}
	loc, mut, err := h.Locations.Create(r.Context(), req.Name)
	if err != nil {
		fail(w, h.Logger, "CreateLocation", err, mut)
		return
	}
	writeJSON(w, http.StatusCreated, locationResponse{Location: loc, Mutation: mut})
}
