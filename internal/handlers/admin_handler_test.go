package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type statusBody struct {
	Admin bool `json:"admin"`
}

func TestAdminRoutes_RequireLogin(t *testing.T) {
	e := newTestEnv(t)

	for _, path := range []string{"/api/admin/items", "/api/admin/records", "/api/admin/locations"} {
		resp := e.do(t, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode, path)
	}
}

func TestLogin(t *testing.T) {
	e := newTestEnv(t)

	resp := e.do(t, http.MethodPost, "/api/admin/login", map[string]string{"password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = e.do(t, http.MethodGet, "/api/admin/status", nil)
	assert.False(t, decode[statusBody](t, resp).Admin)

	e.login(t)
	resp = e.do(t, http.MethodGet, "/api/admin/status", nil)
	assert.True(t, decode[statusBody](t, resp).Admin)

	resp = e.do(t, http.MethodGet, "/api/admin/items", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = e.do(t, http.MethodPost, "/api/admin/logout", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp = e.do(t, http.MethodGet, "/api/admin/status", nil)
	assert.False(t, decode[statusBody](t, resp).Admin)
}

func TestLogin_EmptyBody(t *testing.T) {
	e := newTestEnv(t)
	resp := e.do(t, http.MethodPost, "/api/admin/login", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestForgedCookieIgnored(t *testing.T) {
	e := newTestEnv(t)
	req, err := http.NewRequest(http.MethodGet, e.srv.URL+"/api/admin/items", nil)
	require.NoError(t, err)
	req.AddCookie(&http.Cookie{Name: "admin_session", Value: "not-a-token"})
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestChangePassword(t *testing.T) {
	e := newTestEnv(t)
	e.login(t)

	resp := e.do(t, http.MethodPut, "/api/admin/password", map[string]string{
		"old_password": "bad", "new_password": "fresh-pass",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = e.do(t, http.MethodPut, "/api/admin/password", map[string]string{
		"old_password": testPassword, "new_password": "fresh-pass",
	})
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = e.do(t, http.MethodPost, "/api/admin/login", map[string]string{"password": testPassword})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp = e.do(t, http.MethodPost, "/api/admin/login", map[string]string{"password": "fresh-pass"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
