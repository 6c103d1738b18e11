// SPDX-FileCopyrightText: 2024 Canonical Ltd
//
// SPDX-License-Identifier: Apache-2.0
//

package apiclient

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedRequest struct {
	method string
	path   string
	query  url.Values
	header http.Header
	body   string
}

func newBackend(t *testing.T, status int, body string) (*Client, *[]recordedRequest) {
	t.Helper()
	var requests []recordedRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		requests = append(requests, recordedRequest{
			method: r.Method,
			path:   r.URL.EscapedPath(),
			query:  r.URL.Query(),
			header: r.Header.Clone(),
			body:   string(data),
		})
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return New(srv.URL, WithToken("secret")), &requests
}

func TestListNormalization(t *testing.T) {
	testCases := []struct {
		name     string
		body     string
		expected int
	}{
		{name: "array", body: `[{"name":"a"},{"name":"b"}]`, expected: 2},
		{name: "bare object", body: `{"name":"a"}`, expected: 1},
		{name: "null", body: `null`, expected: 0},
		{name: "empty body", body: ``, expected: 0},
		{name: "empty array", body: `[]`, expected: 0},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			client, _ := newBackend(t, http.StatusOK, tc.body)
			items, err := client.Resource("/config/v1", "/inventory/gnb").List(context.Background(), nil)
			require.NoError(t, err)
			assert.Len(t, items, tc.expected)
		})
	}
}

func TestListBareObjectKeepsDocument(t *testing.T) {
	client, _ := newBackend(t, http.StatusOK, `{"name":"gnb-1","tac":1}`)
	items, err := client.Resource("/config/v1", "/inventory/gnb").List(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, items, 1)
	var doc map[string]any
	require.NoError(t, json.Unmarshal(items[0], &doc))
	assert.Equal(t, "gnb-1", doc["name"])
}

func TestListErrorUsesStatusText(t *testing.T) {
	client, _ := newBackend(t, http.StatusNotFound, `{"error":"ignored"}`)
	_, err := client.Resource("/config/v1", "/device-group").List(context.Background(), nil)
	require.Error(t, err)
	assert.Equal(t, "HTTP 404: Not Found", err.Error())
	assert.Equal(t, http.StatusNotFound, StatusCode(err))
}

func TestListInvalidJSON(t *testing.T) {
	client, _ := newBackend(t, http.StatusOK, `not json`)
	_, err := client.Resource("/config/v1", "/device-group").List(context.Background(), nil)
	assert.Error(t, err)
}

func TestListSendsQuery(t *testing.T) {
	client, requests := newBackend(t, http.StatusOK, `[]`)
	query := url.Values{"page": {"2"}, "limit": {"20"}}
	_, err := client.Resource("/api", "/subscriber").ListRaw(context.Background(), query)
	require.NoError(t, err)
	require.Len(t, *requests, 1)
	assert.Equal(t, "/api/subscriber", (*requests)[0].path)
	assert.Equal(t, "2", (*requests)[0].query.Get("page"))
	assert.Equal(t, "20", (*requests)[0].query.Get("limit"))
}

func TestGet(t *testing.T) {
	t.Run("escapes path segments", func(t *testing.T) {
		client, requests := newBackend(t, http.StatusOK, `{"group-name":"a b"}`)
		body, err := client.Resource("/config/v1", "/device-group").Get(context.Background(), "a b/c")
		require.NoError(t, err)
		assert.JSONEq(t, `{"group-name":"a b"}`, string(body))
		assert.Equal(t, "/config/v1/device-group/a%20b%2Fc", (*requests)[0].path)
	})
	t.Run("error", func(t *testing.T) {
		client, _ := newBackend(t, http.StatusInternalServerError, `boom`)
		_, err := client.Resource("/config/v1", "/device-group").Get(context.Background(), "x")
		require.Error(t, err)
		assert.Equal(t, "HTTP 500: Internal Server Error", err.Error())
	})
}

func TestCreate(t *testing.T) {
	testCases := []struct {
		name        string
		status      int
		body        string
		id          []string
		expectPath  string
		expectErr   string
		expectReply string
	}{
		{
			name:        "collection url",
			status:      http.StatusCreated,
			body:        `{"status":"ok"}`,
			expectPath:  "/config/v1/inventory/upf",
			expectReply: `{"status":"ok"}`,
		},
		{
			name:        "item url with empty reply",
			status:      http.StatusCreated,
			id:          []string{"group1"},
			expectPath:  "/config/v1/inventory/upf/group1",
			expectReply: `{}`,
		},
		{
			name:       "error body surfaced",
			status:     http.StatusBadRequest,
			body:       `{"error":"invalid"}`,
			expectPath: "/config/v1/inventory/upf",
			expectErr:  `{"error":"invalid"}`,
		},
		{
			name:       "error without body",
			status:     http.StatusInternalServerError,
			expectPath: "/config/v1/inventory/upf",
			expectErr:  "HTTP 500",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			client, requests := newBackend(t, tc.status, tc.body)
			reply, err := client.Resource("/config/v1", "/inventory/upf").Create(context.Background(), map[string]any{"hostname": "upf"}, tc.id...)
			require.Len(t, *requests, 1)
			req := (*requests)[0]
			assert.Equal(t, http.MethodPost, req.method)
			assert.Equal(t, tc.expectPath, req.path)
			assert.Equal(t, "application/json", req.header.Get("Content-Type"))
			assert.JSONEq(t, `{"hostname":"upf"}`, req.body)
			if tc.expectErr != "" {
				require.Error(t, err)
				assert.Equal(t, tc.expectErr, err.Error())
				return
			}
			require.NoError(t, err)
			assert.JSONEq(t, tc.expectReply, string(reply))
		})
	}
}

func TestUpdateUsesPut(t *testing.T) {
	client, requests := newBackend(t, http.StatusOK, ``)
	_, err := client.Resource("/api", "/k4opt").Update(context.Background(), map[string]any{"k4": "aa"}, "3")
	require.NoError(t, err)
	assert.Equal(t, http.MethodPut, (*requests)[0].method)
	assert.Equal(t, "/api/k4opt/3", (*requests)[0].path)
}

func TestDelete(t *testing.T) {
	client, requests := newBackend(t, http.StatusNoContent, ``)
	ok, err := client.Resource("/api", "/k4opt").Delete(context.Background(), "3", "K4_AES")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, http.MethodDelete, (*requests)[0].method)
	assert.Equal(t, "/api/k4opt/3/K4_AES", (*requests)[0].path)

	client, _ = newBackend(t, http.StatusNotFound, `not found`)
	ok, err = client.Resource("/api", "/k4opt").Delete(context.Background(), "3", "K4_AES")
	assert.False(t, ok)
	assert.EqualError(t, err, "not found")
}

func TestRequestHeaders(t *testing.T) {
	client, requests := newBackend(t, http.StatusOK, `[]`)
	_, err := client.Resource("/config/v1", "/network-slice").List(context.Background(), nil)
	require.NoError(t, err)
	header := (*requests)[0].header
	assert.Equal(t, "Bearer secret", header.Get("Authorization"))
	_, err = uuid.Parse(header.Get(RequestIdHeader))
	assert.NoError(t, err)
}

func TestCancelledContext(t *testing.T) {
	client, requests := newBackend(t, http.StatusOK, `[]`)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := client.Resource("/config/v1", "/network-slice").List(ctx, nil)
	assert.Error(t, err)
	assert.Empty(t, *requests)
}

func TestTransportError(t *testing.T) {
	client := New("http://127.0.0.1:1")
	_, err := client.Resource("/config/v1", "/device-group").List(context.Background(), nil)
	assert.Error(t, err)
	assert.Equal(t, 0, StatusCode(err))
}
