package api

import (
	"context"
	"net/http"
	"net/url"

	"GiftKiosk/internal/model"
)

type itemsEnvelope struct {
	Items []model.GiftItem `json:"items"`
}

// Catalog — видимые позиции в порядке показа.
func (c *Client) Catalog(ctx context.Context) ([]model.GiftItem, error) {
	var env itemsEnvelope
	if err := c.JSON(ctx, http.MethodGet, "/api/catalog", nil, &env); err != nil {
		return nil, err
	}
	return env.Items, nil
}

type submitPayload struct {
	Name       string   `json:"name"`
	Items      []string `json:"items"`
	LocationID *string  `json:"location_id,omitempty"`
}

// Submit отправляет выбор посетителя. Пустой locationID не передаётся.
func (c *Client) Submit(ctx context.Context, name string, items []string, locationID string) (*model.SelectionRecord, error) {
	p := submitPayload{Name: name, Items: items}
	if locationID != "" {
		p.LocationID = &locationID
	}
	var rec model.SelectionRecord
	if err := c.JSON(ctx, http.MethodPost, "/api/selections", p, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// LocationName — отображаемое имя пункта выдачи.
func (c *Client) LocationName(ctx context.Context, id string) (string, error) {
	var loc model.Location
	if err := c.JSON(ctx, http.MethodGet, "/api/locations/"+url.PathEscape(id), nil, &loc); err != nil {
		return "", err
	}
	return loc.Name, nil
}
