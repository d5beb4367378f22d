package handlers

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"GiftKiosk/internal/catalog"
	"GiftKiosk/internal/config"
	"GiftKiosk/internal/model"
	"GiftKiosk/internal/service"
	"GiftKiosk/internal/storage"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ItemHandler — админские операции над каталогом.
type ItemHandler struct {
	Catalog *service.CatalogService
	Logger  *zap.SugaredLogger
	Config  *config.Config
}

func NewItemHandler(c *service.CatalogService, logger *zap.SugaredLogger, cfg *config.Config) *ItemHandler {
	return &ItemHandler{Catalog: c, Logger: logger, Config: cfg}
}

type itemResponse struct {
	Item *model.GiftItem `json:"item"`
	service.Mutation
}

type itemsResponse struct {
	Items []model.GiftItem `json:"items"`
}

// List GET /api/admin/items — все позиции, включая скрытые.
func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.Catalog.ListAll(r.Context())
	if err != nil {
		fail(w, h.Logger, "ListItems", err, service.Mutation{})
		return
	}
	if items == nil {
		items = []model.GiftItem{}
	}
	writeJSON(w, http.StatusOK, itemsResponse{Items: items})
}

// Create POST /api/admin/items (multipart/form-data: name, category, description, image)
func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	// Лимит общего тела запроса
	maxImage := h.Config.ImageMaxBytes()
	r.Body = http.MaxBytesReader(w, r.Body, maxImage+1*1024*1024)

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse{Error: "request too large"})
			return
		}
		h.Logger.Warnw("CreateItem: invalid multipart form", "error", err)
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid multipart form"})
		return
	}

	in := service.NewItem{
		Name:        r.FormValue("name"),
		Category:    model.Category(strings.ToUpper(strings.TrimSpace(r.FormValue("category")))),
		Description: r.FormValue("description"),
	}

	file, hdr, err := r.FormFile("image")
	switch {
	case errors.Is(err, http.ErrMissingFile):
	case err != nil:
		badRequest(w, h.Logger, "CreateItem", err)
		return
	default:
		defer file.Close()
		content, rerr := io.ReadAll(io.LimitReader(file, maxImage+1))
		if rerr != nil {
			badRequest(w, h.Logger, "CreateItem", rerr)
			return
		}
		if int64(len(content)) > maxImage {
			h.Logger.Warnw("CreateItem: image too large", "size", len(content), "limit", maxImage)
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse{Error: "image too large"})
			return
		}
		up, perr := storage.PrepareImage(hdr.Filename, content)
		if perr != nil {
			fail(w, h.Logger, "CreateItem", perr, service.Mutation{})
			return
		}
		in.Image = &up
	}

	item, mut, err := h.Catalog.AddItem(r.Context(), in)
	if err != nil {
		fail(w, h.Logger, "CreateItem", err, mut)
		return
	}
	writeJSON(w, http.StatusCreated, itemResponse{Item: item, Mutation: mut})
}

type patchRequest struct {
	Name          *string `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Description   *string `json:"description,omitempty" validate:"omitempty,max=2000"`
	Visible       *bool   `json:"visible,omitempty"`
	AllowMultiple *bool   `json:"allow_multiple,omitempty"`
	SortOrder     *int    `json:"sort_order,omitempty" validate:"omitempty,min=1"`
}

// Update PATCH /api/admin/items/{id} — частичное обновление.
func (h *ItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req patchRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, h.Logger, "UpdateItem", err)
		return
	}
	patch := model.ItemPatch{
		Name:          req.Name,
		Description:   req.Description,
		Visible:       req.Visible,
		AllowMultiple: req.AllowMultiple,
		SortOrder:     req.SortOrder,
	}
	item, mut, err := h.Catalog.UpdateItem(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		fail(w, h.Logger, "UpdateItem", err, mut)
		return
	}
	writeJSON(w, http.StatusOK, itemResponse{Item: item, Mutation: mut})
}

// Delete DELETE /api/admin/items/{id}
func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	mut, err := h.Catalog.DeleteItem(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		fail(w, h.Logger, "DeleteItem", err, mut)
		return
	}
	writeJSON(w, http.StatusOK, mut)
}

type reorderRequest struct {
	Category string `json:"category" validate:"required,oneof=A B"`
	From     *int   `json:"from" validate:"required,min=0"`
	To       *int   `json:"to" validate:"required,min=0"`
}

type reorderResponse struct {
	Assignments []catalog.Assignment `json:"assignments"`
	service.Mutation
}

// Reorder POST /api/admin/items/reorder — перенос позиции внутри категории.
func (h *ItemHandler) Reorder(w http.ResponseWriter, r *http.Request) {
	var req reorderRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, h.Logger, "Reorder", err)
		return
	}
	assignments, mut, err := h.Catalog.Reorder(r.Context(), model.Category(req.Category), *req.From, *req.To)
	if err != nil {
		fail(w, h.Logger, "Reorder", err, mut)
		return
	}
	writeJSON(w, http.StatusOK, reorderResponse{Assignments: assignments, Mutation: mut})
}
