// SPDX-FileCopyrightText: 2024 Canonical Ltd
//
// SPDX-License-Identifier: Apache-2.0
//

package configapi

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/omec-project/webconsole-ui/configmodels"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGnbValidate(t *testing.T) {
	m := NewGnbManager(newTestClient(), "/config/v1")
	testCases := []struct {
		name     string
		form     Form
		expected []string
	}{
		{"valid", Form{"name": "gnb-1", "tac": "1"}, []string{}},
		{"TAC is optional", Form{"name": "gnb-1"}, []string{}},
		{"missing name", Form{"name": "", "tac": "1"}, []string{"gNB name is required"}},
		{"TAC too low", Form{"name": "gnb-1", "tac": "0"}, []string{"TAC must be between 1 and 16777215"}},
		{"TAC too high", Form{"name": "gnb-1", "tac": 16777216}, []string{"TAC must be between 1 and 16777215"}},
		{"TAC not a number", Form{"name": "gnb-1", "tac": "abc"}, []string{"TAC must be between 1 and 16777215"}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if diff := cmp.Diff(tc.expected, m.Validate(tc.form, false)); diff != "" {
				t.Errorf("unexpected errors (-want +got):\n%s", diff)
			}
		})
	}
}

func TestGnbToPayload(t *testing.T) {
	m := NewGnbManager(newTestClient(), "/config/v1")
	testCases := []struct {
		name     string
		form     Form
		expected *configmodels.Gnb
	}{
		{"with TAC", Form{"name": "gnb-1", "tac": "7"}, &configmodels.Gnb{Name: "gnb-1", Tac: 7}},
		{"without TAC", Form{"name": "gnb-2", "tac": ""}, &configmodels.Gnb{Name: "gnb-2"}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			payload, err := m.ToPayload(tc.form, false)
			require.NoError(t, err)
			if diff := cmp.Diff(tc.expected, payload); diff != "" {
				t.Errorf("unexpected payload (-want +got):\n%s", diff)
			}
		})
	}
}

func TestGnbLoad(t *testing.T) {
	testCases := []struct {
		name     string
		body     string
		expected []string
	}{
		{"list", `[{"name":"gnb-1","tac":1},{"name":"gnb-2"}]`, []string{"gnb-1", "gnb-2"}},
		{"single object", `{"name":"gnb-1","tac":1}`, []string{"gnb-1"}},
		{"null", `null`, []string{}},
		{"empty body", ``, []string{}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			fb, client := newFakeBackend(t)
			fb.reply(http.MethodGet, "/config/v1/inventory/gnb", http.StatusOK, tc.body)
			m := NewGnbManager(client, "/config/v1")
			items, err := m.Load(context.Background())
			require.NoError(t, err)
			names := []string{}
			for _, item := range items {
				names = append(names, m.ItemName(item))
			}
			assert.Equal(t, tc.expected, names)
		})
	}
}

func TestGnbLoadRejectsInvalidDocument(t *testing.T) {
	fb, client := newFakeBackend(t)
	fb.reply(http.MethodGet, "/config/v1/inventory/gnb", http.StatusOK, `[{"tac":1}]`)
	m := NewGnbManager(client, "/config/v1")
	_, err := m.Load(context.Background())
	assert.Error(t, err)
}

func TestGnbCreateUpdateDelete(t *testing.T) {
	fb, client := newFakeBackend(t)
	fb.reply(http.MethodPost, "/config/v1/inventory/gnb/gnb-1", http.StatusCreated, ``)
	fb.reply(http.MethodPut, "/config/v1/inventory/gnb/gnb-1", http.StatusOK, ``)
	fb.reply(http.MethodDelete, "/config/v1/inventory/gnb/gnb-1", http.StatusNoContent, ``)
	m := NewGnbManager(client, "/config/v1")

	require.NoError(t, m.Create(context.Background(), &configmodels.Gnb{Name: "gnb-1", Tac: 1}))
	require.NoError(t, m.Update(context.Background(), "gnb-1", &configmodels.Gnb{Name: "gnb-1", Tac: 2}))
	require.NoError(t, m.Delete(context.Background(), "gnb-1"))

	reqs := fb.captured()
	require.Len(t, reqs, 3)
	assert.JSONEq(t, `{"name":"gnb-1","tac":1}`, reqs[0].Body)
	assert.JSONEq(t, `{"name":"gnb-1","tac":2}`, reqs[1].Body)
}

func TestGnbRender(t *testing.T) {
	m := NewGnbManager(newTestClient(), "/config/v1")
	table := m.Render([]any{&configmodels.Gnb{Name: "gnb-1", Tac: 3}, &configmodels.Gnb{Name: "gnb-2"}})
	assert.Equal(t, [][]string{{"gnb-1", "3"}, {"gnb-2", "N/A"}}, table.Rows)
}

func TestUpfValidate(t *testing.T) {
	m := NewUpfManager(newTestClient(), "/config/v1")
	testCases := []struct {
		name     string
		form     Form
		expected []string
	}{
		{"valid", Form{"hostname": "upf.example.com", "port": "8805"}, []string{}},
		{"numeric port", Form{"hostname": "upf.example.com", "port": 8805}, []string{}},
		{"missing everything", Form{}, []string{"UPF hostname is required", "Port is required"}},
		{"invalid port", Form{"hostname": "upf", "port": "88a"}, []string{"Port must be a number between 0 and 65535"}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if diff := cmp.Diff(tc.expected, m.Validate(tc.form, false)); diff != "" {
				t.Errorf("unexpected errors (-want +got):\n%s", diff)
			}
		})
	}
}

func TestUpfCreateAndGet(t *testing.T) {
	fb, client := newFakeBackend(t)
	fb.reply(http.MethodPost, "/config/v1/inventory/upf/upf.example.com", http.StatusOK, ``)
	fb.reply(http.MethodGet, "/config/v1/inventory/upf/upf.example.com", http.StatusOK, `{"hostname":"upf.example.com","port":"8805"}`)
	m := NewUpfManager(client, "/config/v1")

	payload, err := m.ToPayload(Form{"hostname": "upf.example.com", "port": "8805"}, false)
	require.NoError(t, err)
	require.NoError(t, m.Create(context.Background(), payload))

	doc, err := m.Get(context.Background(), "upf.example.com")
	require.NoError(t, err)
	assert.Equal(t, Form{"hostname": "upf.example.com", "port": "8805"}, m.ToForm(doc))
	assert.Equal(t, [][]string{{"upf.example.com", "8805"}}, m.Render([]any{doc}).Rows)
}
