package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"GiftKiosk/internal/cli/session"
)

// AdminCookie — имя cookie, которую сервер выставляет после входа.
const AdminCookie = "admin_session"

// Mutation — сигнал сервера после изменения: Invalidate=true — перечитать данные.
type Mutation struct {
	Invalidate bool `json:"invalidate"`
}

// Error — ответ сервера со статусом >= 400.
type Error struct {
	Status     int
	Message    string
	Invalidate bool
}

func (e *Error) Error() string {
	return fmt.Sprintf("server status %d: %s", e.Status, e.Message)
}

// Client ходит в HTTP API киоска. Session может быть nil — тогда cookie не отправляется.
type Client struct {
	BaseURL string
	HTTP    *http.Client
	Session *session.Provider
}

func NewClient(baseURL string, sp *session.Provider) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    http.DefaultClient,
		Session: sp,
	}
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader, contentType string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return nil, err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.Session != nil {
		if cookie := c.Session.Cookie(); cookie != "" {
			req.AddCookie(&http.Cookie{Name: AdminCookie, Value: cookie})
		}
	}
	return req, nil
}

// do выполняет запрос и раскладывает JSON-ответ в out (если не nil).
// Ответ 403 означает, что сервер не признаёт нашу сессию, и локальный флаг сбрасывается.
func (c *Client) do(req *http.Request, out any) (*http.Response, error) {
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp, err
	}

	if resp.StatusCode >= http.StatusBadRequest {
		if resp.StatusCode == http.StatusForbidden && c.Session != nil && c.Session.IsAdmin() {
			_ = c.Session.Clear()
		}
		return resp, decodeError(resp.StatusCode, body)
	}
	if out != nil && len(bytes.TrimSpace(body)) > 0 {
		if err := json.Unmarshal(body, out); err != nil {
			return resp, fmt.Errorf("decode: %w", err)
		}
	}
	return resp, nil
}

func decodeError(status int, body []byte) *Error {
	var e struct {
		Error      string `json:"error"`
		Invalidate bool   `json:"invalidate"`
	}
	if err := json.Unmarshal(body, &e); err == nil && e.Error != "" {
		return &Error{Status: status, Message: e.Error, Invalidate: e.Invalidate}
	}
	return &Error{Status: status, Message: strings.TrimSpace(string(body))}
}

// JSON отправляет payload (nil — без тела) и читает ответ в out.
func (c *Client) JSON(ctx context.Context, method, path string, payload, out any) error {
	var body io.Reader
	ct := ""
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
		ct = "application/json"
	}
	req, err := c.newRequest(ctx, method, path, body, ct)
	if err != nil {
		return err
	}
	_, err = c.do(req, out)
	return err
}

// FilePart — файл для multipart-запроса.
type FilePart struct {
	Field   string
	Name    string
	Content []byte
}

// Multipart отправляет форму с полями и необязательным файлом.
func (c *Client) Multipart(ctx context.Context, path string, fields map[string]string, file *FilePart, out any) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			return err
		}
	}
	if file != nil {
		fw, err := mw.CreateFormFile(file.Field, file.Name)
		if err != nil {
			return err
		}
		if _, err := fw.Write(file.Content); err != nil {
			return err
		}
	}
	if err := mw.Close(); err != nil {
		return err
	}
	req, err := c.newRequest(ctx, http.MethodPost, path, &buf, mw.FormDataContentType())
	if err != nil {
		return err
	}
	_, err = c.do(req, out)
	return err
}
