package commands

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const catalogJSON = `{"items":[
 {"id":"m","name":"Movie","category":"A","sort_order":1,"visible":true},
 {"id":"c","name":"Coffee","category":"B","sort_order":1,"visible":true},
 {"id":"s","name":"Snack","category":"B","sort_order":2,"visible":true}
]}`

func TestKiosk_PickNameSubmit(t *testing.T) {
	srv := newFakeServer(t)
	srv.json(http.MethodGet, "/api/catalog", http.StatusOK, catalogJSON)
	srv.json(http.MethodGet, "/api/locations/loc-1", http.StatusOK, `{"id":"loc-1","name":"Seoul"}`)
	srv.json(http.MethodPost, "/api/selections", http.StatusCreated,
		`{"id":"r1","name":"Kim","items":["Movie","Coffee"],"timestamp":"2024-05-01T10:00:00Z"}`)
	ctx, cfg, _ := adminCtx(t, srv.srv.URL, "")

	withInput(t, "pick 1\npick Snack\ndrop Snack\npick Coffee\nname  Kim \nsubmit\nquit\n")
	out := withStdoutCapture(t, func() {
		require.NoError(t, (kioskCmd{}).Run(ctx, cfg, []string{"--location=loc-1"}))
	})

	assert.Contains(t, out, "GiftKiosk: Seoul")
	assert.Contains(t, out, "Selected: Movie, Snack (2/2)")
	assert.Contains(t, out, "Selected: Movie, Coffee (2/2)  name: Kim")
	assert.Contains(t, out, "Thank you, Kim!")

	var body struct {
		Name       string   `json:"name"`
		Items      []string `json:"items"`
		LocationID string   `json:"location_id"`
	}
	srv.body(t, "POST /api/selections", &body)
	assert.Equal(t, "Kim", body.Name)
	assert.Equal(t, []string{"Movie", "Coffee"}, body.Items)
	assert.Equal(t, "loc-1", body.LocationID)
	// после отправки каталог перечитан
	assert.Equal(t, 2, srv.called("GET /api/catalog"))
}

func TestKiosk_RulesEnforcedLocally(t *testing.T) {
	srv := newFakeServer(t)
	srv.json(http.MethodGet, "/api/catalog", http.StatusOK, catalogJSON)
	ctx, cfg, _ := adminCtx(t, srv.srv.URL, "")

	withInput(t, "pick Movie\npick Movie\npick 9\nsubmit\nreset\n")
	out := withStdoutCapture(t, func() {
		require.NoError(t, (kioskCmd{}).Run(ctx, cfg, nil))
	})

	assert.Contains(t, out, "Movie cannot be selected now")
	assert.Contains(t, out, `unknown gift "9"`)
	assert.Contains(t, out, "pick exactly two gifts")
	assert.Contains(t, out, "Selected: nothing yet (0/2)")
	assert.Equal(t, 0, srv.called("POST /api/selections"))
}

func TestKiosk_RejectedSubmitRefreshesCatalog(t *testing.T) {
	srv := newFakeServer(t)
	srv.json(http.MethodGet, "/api/catalog", http.StatusOK, catalogJSON)
	srv.json(http.MethodPost, "/api/selections", http.StatusUnprocessableEntity, `{"error":"selection breaks the gift rules"}`)
	ctx, cfg, _ := adminCtx(t, srv.srv.URL, "")

	withInput(t, "pick Coffee\npick Snack\nname Lee\nsubmit\nquit\n")
	out := withStdoutCapture(t, func() {
		require.NoError(t, (kioskCmd{}).Run(ctx, cfg, nil))
	})
	assert.Contains(t, out, "selection breaks the gift rules")
	assert.Equal(t, 2, srv.called("GET /api/catalog"))
}

func TestKiosk_Usage(t *testing.T) {
	ctx, cfg, _ := adminCtx(t, "http://127.0.0.1:0", "")
	assert.ErrorIs(t, (kioskCmd{}).Run(ctx, cfg, []string{"extra"}), ErrUsage)
}
