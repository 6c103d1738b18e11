// SPDX-FileCopyrightText: 2024 Canonical Ltd
//
// SPDX-License-Identifier: Apache-2.0
//

package console

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/omec-project/webconsole-ui/backend/apiclient"
	"github.com/omec-project/webconsole-ui/backend/factory"
)

type backendCall struct {
	Method string
	Path   string
	Body   string
}

type fakeBackend struct {
	mu     sync.Mutex
	routes map[string]func(w http.ResponseWriter, r *http.Request)
	calls  []backendCall
}

func (fb *fakeBackend) reply(method, path string, status int, body string) {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	fb.routes[method+" "+path] = func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}
}

func (fb *fakeBackend) serve(w http.ResponseWriter, r *http.Request) {
	data, _ := io.ReadAll(r.Body)
	fb.mu.Lock()
	fb.calls = append(fb.calls, backendCall{Method: r.Method, Path: r.URL.EscapedPath(), Body: string(data)})
	h, ok := fb.routes[r.Method+" "+r.URL.EscapedPath()]
	fb.mu.Unlock()
	if !ok {
		http.NotFound(w, r)
		return
	}
	h(w, r)
}

func (fb *fakeBackend) requests() []string {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	out := make([]string, 0, len(fb.calls))
	for _, c := range fb.calls {
		out = append(out, c.Method+" "+c.Path)
	}
	return out
}

func (fb *fakeBackend) reset() {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	fb.calls = nil
}

func newTestApp(t *testing.T) (*App, *fakeBackend) {
	t.Helper()
	fb := &fakeBackend{routes: map[string]func(http.ResponseWriter, *http.Request){}}
	srv := httptest.NewServer(http.HandlerFunc(fb.serve))
	t.Cleanup(srv.Close)
	cfg := factory.NewDefaultConfig(srv.URL)
	return NewAppWithClient(cfg, apiclient.New(srv.URL)), fb
}

func lastMessage(t *testing.T, a *App) Notification {
	t.Helper()
	n, ok := a.Notifier.Last()
	if !ok {
		t.Fatal("no notification")
	}
	return n
}
