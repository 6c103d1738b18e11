// SPDX-FileCopyrightText: 2024 Canonical Ltd
//
// SPDX-License-Identifier: Apache-2.0
//

package configapi

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/omec-project/webconsole-ui/backend/apiclient"
)

type capturedRequest struct {
	Method string
	Path   string
	Query  string
	Body   string
}

// fakeBackend serves canned answers keyed by "METHOD path" and records
// every request it receives.
type fakeBackend struct {
	mu       sync.Mutex
	routes   map[string]func(w http.ResponseWriter, r *http.Request)
	requests []capturedRequest
}

func newFakeBackend(t *testing.T) (*fakeBackend, *apiclient.Client) {
	t.Helper()
	fb := &fakeBackend{routes: map[string]func(http.ResponseWriter, *http.Request){}}
	srv := httptest.NewServer(http.HandlerFunc(fb.serve))
	t.Cleanup(srv.Close)
	return fb, apiclient.New(srv.URL)
}

func (fb *fakeBackend) handle(method, path string, h func(w http.ResponseWriter, r *http.Request)) {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	fb.routes[method+" "+path] = h
}

func (fb *fakeBackend) reply(method, path string, status int, body string) {
	fb.handle(method, path, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	})
}

func (fb *fakeBackend) serve(w http.ResponseWriter, r *http.Request) {
	data, _ := io.ReadAll(r.Body)
	key := r.Method + " " + r.URL.EscapedPath()
	fb.mu.Lock()
	fb.requests = append(fb.requests, capturedRequest{
		Method: r.Method,
		Path:   r.URL.EscapedPath(),
		Query:  r.URL.RawQuery,
		Body:   string(data),
	})
	h, ok := fb.routes[key]
	fb.mu.Unlock()
	if !ok {
		http.NotFound(w, r)
		return
	}
	h(w, r)
}

func (fb *fakeBackend) captured() []capturedRequest {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	return append([]capturedRequest{}, fb.requests...)
}

// newTestClient points at an address nothing listens on; it is used by
// tests that never reach the backend.
func newTestClient() *apiclient.Client {
	return apiclient.New("http://127.0.0.1:1")
}
