package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"runtime"
	"strings"
	"sync"
	"testing"

	fsrepo "GiftKiosk/internal/cli/repo/fs"
	"GiftKiosk/internal/cli/session"
	"GiftKiosk/internal/config"
)

// withTempConfig переопределяет пользовательские каталоги на время теста,
// чтобы сессия по умолчанию создавалась в temp.
func withTempConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if runtime.GOOS == "windows" {
		t.Setenv("APPDATA", dir)
	} else {
		t.Setenv("XDG_CONFIG_HOME", dir)
	}
	return dir
}

// перехват stdout на время теста
func withStdoutCapture(t *testing.T, fn func()) string {
	t.Helper()
	old := Out
	var buf bytes.Buffer
	Out = &buf
	defer func() { Out = old }()
	fn()
	return buf.String()
}

func withInput(t *testing.T, input string) {
	t.Helper()
	old := In
	In = strings.NewReader(input)
	t.Cleanup(func() { In = old })
}

// fakeServer — маршруты "METHOD /path" → ответ; запоминает запросы.
type fakeServer struct {
	mu     sync.Mutex
	calls  []string
	bodies map[string][]byte
	routes map[string]http.HandlerFunc
	srv    *httptest.Server
}

func newFakeServer(t *testing.T) *fakeServer {
	t.Helper()
	f := &fakeServer{routes: map[string]http.HandlerFunc{}, bodies: map[string][]byte{}}
	f.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Method + " " + r.URL.Path
		var buf bytes.Buffer
		_, _ = buf.ReadFrom(r.Body)
		r.Body.Close()
		f.mu.Lock()
		f.calls = append(f.calls, key)
		f.bodies[key] = buf.Bytes()
		h, ok := f.routes[key]
		f.mu.Unlock()
		if !ok {
			http.NotFound(w, r)
			return
		}
		r.Body = http.NoBody
		h(w, r)
	}))
	t.Cleanup(f.srv.Close)
	return f
}

func (f *fakeServer) json(method, path string, status int, body string) {
	f.routes[method+" "+path] = func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}

func (f *fakeServer) called(key string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if c == key {
			n++
		}
	}
	return n
}

func (f *fakeServer) body(t *testing.T, key string, dst any) {
	t.Helper()
	f.mu.Lock()
	b := f.bodies[key]
	f.mu.Unlock()
	if err := json.Unmarshal(b, dst); err != nil {
		t.Fatalf("body of %s: %v (%s)", key, err, b)
	}
}

// adminCtx возвращает cfg и контекст с провайдером сессии в отдельном каталоге.
func adminCtx(t *testing.T, serverURL string, cookie string) (context.Context, *config.Config, *session.Provider) {
	t.Helper()
	cfg := &config.Config{ServerURL: serverURL, SessionDir: t.TempDir()}
	sp := session.Load(fsrepo.NewSessionStore(cfg.SessionDir))
	if cookie != "" {
		if err := sp.Set(cookie); err != nil {
			t.Fatalf("set session: %v", err)
		}
	}
	return session.WithProvider(context.Background(), sp), cfg, sp
}
