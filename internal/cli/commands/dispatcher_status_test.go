package commands

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"GiftKiosk/internal/config"
)

// fakeCmd позволяет управлять возвратом ошибок из Run
type fakeCmd struct {
	name, usage, desc string
	run               func(ctx context.Context, cfg *config.Config, args []string) error
}

func (f fakeCmd) Name() string        { return f.name }
func (f fakeCmd) Description() string { return f.desc }
func (f fakeCmd) Usage() string       { return f.usage }
func (f fakeCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	return f.run(ctx, cfg, args)
}

func TestDispatcher_HelpAndUnknown(t *testing.T) {
	cfg := &config.Config{SessionDir: t.TempDir()}
	out := withStdoutCapture(t, func() { _ = Dispatch(context.Background(), cfg, []string{}) })
	if !strings.Contains(out, "GiftKiosk CLI") {
		t.Fatalf("global help expected")
	}
	for _, name := range []string{"kiosk", "login", "item-add", "reorder", "records", "location-add"} {
		if !strings.Contains(out, name) {
			t.Fatalf("help must list %s", name)
		}
	}

	out = withStdoutCapture(t, func() { _ = Dispatch(context.Background(), cfg, []string{"help"}) })
	if !strings.Contains(out, "Usage:") {
		t.Fatalf("usage expected")
	}

	out = withStdoutCapture(t, func() {
		if code := Dispatch(context.Background(), cfg, []string{"help", "reorder"}); code != 0 {
			t.Fatalf("expected 0 for help reorder, got %d", code)
		}
	})
	if !strings.Contains(out, "reorder <A|B> <from> <to>") {
		t.Fatalf("reorder usage expected, got %s", out)
	}

	out = withStdoutCapture(t, func() { _ = Dispatch(context.Background(), cfg, []string{"help", "nope"}) })
	if !strings.Contains(out, "Unknown command") {
		t.Fatalf("unknown command message expected")
	}

	withStdoutCapture(t, func() {
		if code := Dispatch(context.Background(), cfg, []string{"no-such"}); code != 2 {
			t.Fatalf("expected 2 for unknown command, got %d", code)
		}
	})
}

func TestDispatcher_RunPaths(t *testing.T) {
	cfg := &config.Config{SessionDir: t.TempDir()}

	cmdOK := fakeCmd{name: "x", usage: "x", run: func(ctx context.Context, _ *config.Config, _ []string) error {
		return nil
	}}
	RegisterCmd(cmdOK)
	if code := Dispatch(context.Background(), cfg, []string{"x"}); code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}

	cmdUsage := fakeCmd{name: "u", usage: "u <arg>", run: func(_ context.Context, _ *config.Config, _ []string) error {
		return fmt.Errorf("wrapped: %w", ErrUsage)
	}}
	RegisterCmd(cmdUsage)
	out := withStdoutCapture(t, func() { _ = Dispatch(context.Background(), cfg, []string{"u"}) })
	if !strings.Contains(out, "Usage: u <arg>") {
		t.Fatalf("usage text expected")
	}

	cmdErr := fakeCmd{name: "e", usage: "e", run: func(_ context.Context, _ *config.Config, _ []string) error {
		return fmt.Errorf("boom")
	}}
	RegisterCmd(cmdErr)
	out = withStdoutCapture(t, func() { _ = Dispatch(context.Background(), cfg, []string{"e"}) })
	if !strings.Contains(out, "e error: boom") {
		t.Fatalf("error line expected, got: %s", out)
	}
}

func TestDispatcher_InjectsSessionFromDisk(t *testing.T) {
	withTempConfig(t)
	srv := newFakeServer(t)
	srv.routes["GET /api/admin/items"] = func(w http.ResponseWriter, r *http.Request) {
		if c, err := r.Cookie("admin_session"); err != nil || c.Value != "stored" {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		_, _ = w.Write([]byte(`{"items":[]}`))
	}
	_, cfg, _ := adminCtx(t, srv.srv.URL, "stored")

	out := withStdoutCapture(t, func() {
		if code := Dispatch(context.Background(), cfg, []string{"items"}); code != 0 {
			t.Fatalf("expected 0, got %d", code)
		}
	})
	if !strings.Contains(out, "Каталог пуст") {
		t.Fatalf("unexpected output: %s", out)
	}
}

func TestStatus_Run(t *testing.T) {
	srv := newFakeServer(t)
	srv.json(http.MethodGet, "/api/admin/status", http.StatusOK, `{"admin":true}`)
	ctx, cfg, _ := adminCtx(t, srv.srv.URL, "c")

	out := withStdoutCapture(t, func() {
		if err := (statusCmd{}).Run(ctx, cfg, nil); err != nil {
			t.Fatalf("status ok failed: %v", err)
		}
	})
	if !strings.Contains(out, "Admin: yes (stored session: yes)") {
		t.Fatalf("unexpected output: %s", out)
	}

	// ErrUsage при лишних аргументах
	if err := (statusCmd{}).Run(ctx, cfg, []string{"extra"}); err != ErrUsage {
		t.Fatalf("expected ErrUsage, got %v", err)
	}

	bad := newFakeServer(t)
	bad.json(http.MethodGet, "/api/admin/status", http.StatusOK, `{`)
	ctx, cfg, _ = adminCtx(t, bad.srv.URL, "")
	if err := (statusCmd{}).Run(ctx, cfg, nil); err == nil {
		t.Fatalf("status must fail on bad json")
	}
}

func TestDispatcher_HelpSectionsAndSuggestions(t *testing.T) {
	cfg := &config.Config{SessionDir: t.TempDir()}
	out := withStdoutCapture(t, func() { _ = Dispatch(context.Background(), cfg, []string{"help"}) })

	kiosk := strings.Index(out, "Kiosk:")
	sess := strings.Index(out, "Admin session:")
	admin := strings.Index(out, "Admin (after login):")
	if kiosk < 0 || sess < kiosk || admin < sess {
		t.Fatalf("sections out of order: %s", out)
	}
	if i := strings.Index(out, "  kiosk"); i < kiosk || i > sess {
		t.Fatalf("kiosk must be listed under Kiosk: %s", out)
	}
	if i := strings.Index(out, "  login"); i < sess || i > admin {
		t.Fatalf("login must be listed under Admin session: %s", out)
	}
	if i := strings.Index(out, "  passwd"); i < admin {
		t.Fatalf("passwd must be listed under admin commands: %s", out)
	}

	out = withStdoutCapture(t, func() {
		if code := Dispatch(context.Background(), cfg, []string{"help", "item-add"}); code != 0 {
			t.Fatalf("expected 0, got %d", code)
		}
	})
	if !strings.Contains(out, (itemAddCmd{}).Description()) {
		t.Fatalf("command help must include description: %s", out)
	}

	out = withStdoutCapture(t, func() {
		if code := Dispatch(context.Background(), cfg, []string{"item"}); code != 2 {
			t.Fatalf("expected 2, got %d", code)
		}
	})
	if !strings.Contains(out, "Did you mean: item-add, item-delete, item-edit, items?") {
		t.Fatalf("suggestions expected: %s", out)
	}
}
