package handlers

import (
	"net/http"

	"GiftKiosk/internal/model"
	"GiftKiosk/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// RecordHandler — журнал выдачи для админки.
type RecordHandler struct {
	Selection *service.SelectionService
	Logger    *zap.SugaredLogger
}

func NewRecordHandler(s *service.SelectionService, logger *zap.SugaredLogger) *RecordHandler {
	return &RecordHandler{Selection: s, Logger: logger}
}

type recordsResponse struct {
	Records []model.SelectionRecord `json:"records"`
}

// List GET /api/admin/records — от новых к старым.
func (h *RecordHandler) List(w http.ResponseWriter, r *http.Request) {
	recs, err := h.Selection.ListRecords(r.Context())
	if err != nil {
		fail(w, h.Logger, "ListRecords", err, service.Mutation{})
		return
	}
	if recs == nil {
		recs = []model.SelectionRecord{}
	}
	writeJSON(w, http.StatusOK, recordsResponse{Records: recs})
}

// Delete DELETE /api/admin/records/{id}
func (h *RecordHandler) Delete(w http.ResponseWriter, r *http.Request) {
	mut, err := h.Selection.DeleteRecord(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		fail(w, h.Logger, "DeleteRecord", err, mut)
		return
	}
	writeJSON(w, http.StatusOK, mut)
}
