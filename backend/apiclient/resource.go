// SPDX-FileCopyrightText: 2024 Canonical Ltd
//
// SPDX-License-Identifier: Apache-2.0
//

package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

var emptyObject = []byte("{}")

// Resource is the uniform CRUD contract against
// {apiBase}{endpoint}[/{id}...].
type Resource struct {
	client   *Client
	apiBase  string
	endpoint string
	name     string
}

func (c *Client) Resource(apiBase, endpoint string) *Resource {
	return &Resource{
		client:   c,
		apiBase:  strings.TrimSuffix(apiBase, "/"),
		endpoint: endpoint,
		name:     strings.Trim(endpoint, "/"),
	}
}

// Path returns the request path for the given id segments, each one
// path-escaped.
func (r *Resource) Path(id ...string) string {
	var sb strings.Builder
	sb.WriteString(r.apiBase)
	sb.WriteString(r.endpoint)
	for _, segment := range id {
		sb.WriteByte('/')
		sb.WriteString(url.PathEscape(segment))
	}
	return sb.String()
}

// ListRaw fetches the collection and returns the body untouched.
func (r *Resource) ListRaw(ctx context.Context, query url.Values) ([]byte, error) {
	resp, err := r.client.do(ctx, r.name, http.MethodGet, r.Path(), query, nil)
	if err != nil {
		return nil, err
	}
	if !resp.ok() {
		return nil, readError(resp)
	}
	return resp.body, nil
}

// List fetches the collection. A bare object is returned as a
// one-element list and an empty or null body as an empty list.
func (r *Resource) List(ctx context.Context, query url.Values) ([]json.RawMessage, error) {
	body, err := r.ListRaw(ctx, query)
	if err != nil {
		return nil, err
	}
	return NormalizeList(body)
}

func NormalizeList(body []byte) ([]json.RawMessage, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return []json.RawMessage{}, nil
	}
	if trimmed[0] == '[' {
		items := []json.RawMessage{}
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, fmt.Errorf("invalid JSON response: %w", err)
		}
		return items, nil
	}
	if !json.Valid(trimmed) {
		return nil, fmt.Errorf("invalid JSON response")
	}
	return []json.RawMessage{json.RawMessage(trimmed)}, nil
}

func (r *Resource) Get(ctx context.Context, id ...string) ([]byte, error) {
	resp, err := r.client.do(ctx, r.name, http.MethodGet, r.Path(id...), nil, nil)
	if err != nil {
		return nil, err
	}
	if !resp.ok() {
		return nil, readError(resp)
	}
	body := bytes.TrimSpace(resp.body)
	if len(body) == 0 {
		return emptyObject, nil
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("invalid JSON response")
	}
	return body, nil
}

// Create posts payload to the collection, or to the item URL when id is
// given.
func (r *Resource) Create(ctx context.Context, payload any, id ...string) ([]byte, error) {
	return r.write(ctx, http.MethodPost, payload, id)
}

func (r *Resource) Update(ctx context.Context, payload any, id ...string) ([]byte, error) {
	return r.write(ctx, http.MethodPut, payload, id)
}

func (r *Resource) Delete(ctx context.Context, id ...string) (bool, error) {
	resp, err := r.client.do(ctx, r.name, http.MethodDelete, r.Path(id...), nil, nil)
	if err != nil {
		return false, err
	}
	if !resp.ok() {
		return false, writeError(resp)
	}
	return true, nil
}

func (r *Resource) write(ctx context.Context, method string, payload any, id []string) ([]byte, error) {
	if payload == nil {
		payload = map[string]any{}
	}
	resp, err := r.client.do(ctx, r.name, method, r.Path(id...), nil, payload)
	if err != nil {
		return nil, err
	}
	if !resp.ok() {
		return nil, writeError(resp)
	}
	body := bytes.TrimSpace(resp.body)
	if len(body) == 0 {
		return emptyObject, nil
	}
	return body, nil
}
