package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"GiftKiosk/internal/catalog"
	"GiftKiosk/internal/model"
)

// Login проверяет пароль и сохраняет cookie админа через провайдер сессии.
func (c *Client) Login(ctx context.Context, password string) error {
	b, err := json.Marshal(map[string]string{"password": password})
	if err != nil {
		return err
	}
	req, err := c.newRequest(ctx, http.MethodPost, "/api/admin/login", bytes.NewReader(b), "application/json")
	if err != nil {
		return err
	}
	resp, err := c.do(req, nil)
	if err != nil {
		return err
	}
	for _, ck := range resp.Cookies() {
		if ck.Name == AdminCookie && ck.Value != "" {
			if c.Session == nil {
				return nil
			}
			return c.Session.Set(ck.Value)
		}
	}
	return errors.New("no admin cookie in response")
}

// Logout снимает флаг локально даже если сервер недоступен.
func (c *Client) Logout(ctx context.Context) error {
	err := c.JSON(ctx, http.MethodPost, "/api/admin/logout", nil, nil)
	if c.Session != nil {
		if cerr := c.Session.Clear(); err == nil {
			err = cerr
		}
	}
	return err
}

// Status спрашивает у сервера, признаёт ли он нашу сессию.
func (c *Client) Status(ctx context.Context) (bool, error) {
	var st struct {
		Admin bool `json:"admin"`
	}
	if err := c.JSON(ctx, http.MethodGet, "/api/admin/status", nil, &st); err != nil {
		return false, err
	}
	return st.Admin, nil
}

func (c *Client) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	return c.JSON(ctx, http.MethodPut, "/api/admin/password", map[string]string{
		"old_password": oldPassword,
		"new_password": newPassword,
	}, nil)
}

// Items — все позиции, включая скрытые.
func (c *Client) Items(ctx context.Context) ([]model.GiftItem, error) {
	var env itemsEnvelope
	if err := c.JSON(ctx, http.MethodGet, "/api/admin/items", nil, &env); err != nil {
		return nil, err
	}
	return env.Items, nil
}

type itemEnvelope struct {
	Item model.GiftItem `json:"item"`
	Mutation
}

// NewItem — данные для item-add. Image может быть nil.
type NewItem struct {
	Name        string
	Category    model.Category
	Description string
	Image       *FilePart
}

func (c *Client) AddItem(ctx context.Context, in NewItem) (*model.GiftItem, Mutation, error) {
	fields := map[string]string{
		"name":     in.Name,
		"category": string(in.Category),
	}
	if in.Description != "" {
		fields["description"] = in.Description
	}
	var env itemEnvelope
	if err := c.Multipart(ctx, "/api/admin/items", fields, in.Image, &env); err != nil {
		return nil, mutationOf(err), err
	}
	return &env.Item, env.Mutation, nil
}

func (c *Client) UpdateItem(ctx context.Context, id string, patch model.ItemPatch) (*model.GiftItem, Mutation, error) {
	var env itemEnvelope
	if err := c.JSON(ctx, http.MethodPatch, "/api/admin/items/"+url.PathEscape(id), patch, &env); err != nil {
		return nil, mutationOf(err), err
	}
	return &env.Item, env.Mutation, nil
}

func (c *Client) DeleteItem(ctx context.Context, id string) (Mutation, error) {
	var m Mutation
	if err := c.JSON(ctx, http.MethodDelete, "/api/admin/items/"+url.PathEscape(id), nil, &m); err != nil {
		return mutationOf(err), err
	}
	return m, nil
}

// Reorder переносит позицию категории с from на to (индексы с нуля).
func (c *Client) Reorder(ctx context.Context, cat model.Category, from, to int) ([]catalog.Assignment, Mutation, error) {
	var env struct {
		Assignments []catalog.Assignment `json:"assignments"`
		Mutation
	}
	payload := map[string]any{"category": string(cat), "from": from, "to": to}
	if err := c.JSON(ctx, http.MethodPost, "/api/admin/items/reorder", payload, &env); err != nil {
		return nil, mutationOf(err), err
	}
	return env.Assignments, env.Mutation, nil
}

func (c *Client) Records(ctx context.Context) ([]model.SelectionRecord, error) {
	var env struct {
		Records []model.SelectionRecord `json:"records"`
	}
	if err := c.JSON(ctx, http.MethodGet, "/api/admin/records", nil, &env); err != nil {
		return nil, err
	}
	return env.Records, nil
}

func (c *Client) DeleteRecord(ctx context.Context, id string) (Mutation, error) {
	var m Mutation
	if err := c.JSON(ctx, http.MethodDelete, "/api/admin/records/"+url.PathEscape(id), nil, &m); err != nil {
		return mutationOf(err), err
	}
	return m, nil
}

func (c *Client) Locations(ctx context.Context) ([]model.Location, error) {
	var env struct {
		Locations []model.Location `json:"locations"`
	}
	if err := c.JSON(ctx, http.MethodGet, "/api/admin/locations", nil, &env); err != nil {
		return nil, err
	}
	return env.Locations, nil
}

func (c *Client) AddLocation(ctx context.Context, name string) (*model.Location, Mutation, error) {
	var env struct {
		Location model.Location `json:"location"`
		Mutation
	}
	if err := c.JSON(ctx, http.MethodPost, "/api/admin/locations", map[string]string{"name": name}, &env); err != nil {
		return nil, mutationOf(err), err
	}
	return &env.Location, env.Mutation, nil
}

// mutationOf достаёт флаг invalidate из ошибки сервера.
func mutationOf(err error) Mutation {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return Mutation{Invalidate: apiErr.Invalidate}
	}
	return Mutation{}
}
