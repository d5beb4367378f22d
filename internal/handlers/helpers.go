package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"GiftKiosk/internal/catalog"
	"GiftKiosk/internal/repo"
	"GiftKiosk/internal/service"
	"GiftKiosk/internal/storage"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

var validate = validator.New()

type errorResponse struct {
	Error      string `json:"error"`
	Invalidate bool   `json:"invalidate,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// decodeJSON читает тело и прогоняет валидацию по тегам validate.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return err
	}
	return validate.Struct(dst)
}

// statusFor сопоставляет доменные ошибки с HTTP-кодами.
func statusFor(err error) int {
	switch {
	case errors.Is(err, repo.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrEmptyName),
		errors.Is(err, service.ErrBadCategory),
		errors.Is(err, service.ErrIncompleteSelection),
		errors.Is(err, service.ErrEmptyPassword),
		errors.Is(err, catalog.ErrIndexOutOfRange),
		errors.Is(err, catalog.ErrMixedCategories),
		errors.Is(err, storage.ErrEmptyImage),
		errors.Is(err, storage.ErrInvalidImage),
		errors.Is(err, storage.ErrUnsupportedType):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrIllegalSelection):
		return http.StatusUnprocessableEntity
	case errors.Is(err, service.ErrWrongPassword):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrImageUpload):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// fail пишет ошибку клиенту; серверные ошибки дополнительно уходят в лог.
func fail(w http.ResponseWriter, logger *zap.SugaredLogger, op string, err error, mut service.Mutation) {
	status := statusFor(err)
	msg := err.Error()
	if status >= http.StatusInternalServerError {
		logger.Errorw(op+": failed", "error", err)
		if status == http.StatusInternalServerError {
			msg = "internal error"
		}
	}
	writeJSON(w, status, errorResponse{Error: msg, Invalidate: mut.Invalidate})
}

func badRequest(w http.ResponseWriter, logger *zap.SugaredLogger, op string, err error) {
	logger.Warnw(op+": bad request", "error", err)
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request: " + err.Error()})
}
