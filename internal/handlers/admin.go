package handlers

import (
	"net/http"

	"GiftKiosk/internal/config"
	"GiftKiosk/internal/middleware"
	"GiftKiosk/internal/service"

	"go.uber.org/zap"
)

// AdminHandler — вход/выход из админки и смена пароля.
type AdminHandler struct {
	Admin  *service.AdminService
	Logger *zap.SugaredLogger
	Config *config.Config
}

func NewAdminHandler(admin *service.AdminService, logger *zap.SugaredLogger, cfg *config.Config) *AdminHandler {
	return &AdminHandler{Admin: admin, Logger: logger, Config: cfg}
}

type loginRequest struct {
	Password string `json:"password" validate:"required"`
}

type statusResponse struct {
	Admin bool `json:"admin"`
}

// Login POST /api/admin/login
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, h.Logger, "Login", err)
		return
	}
	if err := h.Admin.CheckPassword(r.Context(), req.Password); err != nil {
		h.Logger.Warnw("Login: rejected", "remote", r.RemoteAddr, "error", err)
		fail(w, h.Logger, "Login", err, service.Mutation{})
		return
	}
	if err := middleware.SetAdminCookie(w, h.Config.AuthSecret); err != nil {
		fail(w, h.Logger, "Login", err, service.Mutation{})
		return
	}
	h.Logger.Infow("admin logged in", "remote", r.RemoteAddr)
	writeJSON(w, http.StatusOK, statusResponse{Admin: true})
}

// Logout POST /api/admin/logout
func (h *AdminHandler) Logout(w http.ResponseWriter, r *http.Request) {
	middleware.ClearAdminCookie(w)
	writeJSON(w, http.StatusOK, statusResponse{Admin: false})
}

// Status GET /api/admin/status
func (h *AdminHandler) Status(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, statusResponse{Admin: middleware.IsAdmin(r.Context())})
}

type passwordRequest struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=4,max=128"`
}

// ChangePassword PUT /api/admin/password
func (h *AdminHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var req passwordRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, h.Logger, "ChangePassword", err)
		return
	}
	if err := h.Admin.ChangePassword(r.Context(), req.OldPassword, req.NewPassword); err != nil {
		fail(w, h.Logger, "ChangePassword", err, service.Mutation{})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
