// SPDX-FileCopyrightText: 2024 Canonical Ltd
//
// SPDX-License-Identifier: Apache-2.0
//

package console

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowSectionLoadsList(t *testing.T) {
	testCases := []struct {
		section string
		path    string
		body    string
		rows    int
	}{
		{"device-groups", "/config/v1/device-group", `[]`, 0},
		{"network-slices", "/config/v1/network-slice", `[]`, 0},
		{"gnb-inventory", "/config/v1/inventory/gnb", `[{"name":"gnb-1","tac":1}]`, 1},
		{"upf-inventory", "/config/v1/inventory/upf", `[{"hostname":"upf-1","port":"8805"}]`, 1},
		{"k4-keys", "/api/k4opt", `[{"k4":"00","k4_sno":1,"key_label":"K4_AES","key_type":"AES"}]`, 1},
		{"subscribers-list", "/api/subscriber", `[{"ueId":"imsi-1","plmnID":"20893"}]`, 1},
	}
	for _, tc := range testCases {
		t.Run(tc.section, func(t *testing.T) {
			a, fb := newTestApp(t)
			fb.reply(http.MethodGet, tc.path, http.StatusOK, tc.body)

			view, err := a.ShowSection(context.Background(), tc.section)
			require.NoError(t, err)
			require.NotNil(t, view.List)
			assert.Len(t, view.List.Table.Rows, tc.rows)
			assert.Equal(t, tc.section, a.CurrentSection())
		})
	}
}

func TestShowSectionDetailsNeverReload(t *testing.T) {
	for _, section := range []string{"device-group-details", "network-slice-details", "gnb-details", "k4-details", "subscriber-details"} {
		t.Run(section, func(t *testing.T) {
			a, fb := newTestApp(t)
			view, err := a.ShowSection(context.Background(), section)
			require.NoError(t, err)
			assert.Nil(t, view.List)
			assert.Empty(t, fb.requests())
			assert.Equal(t, section, a.CurrentSection())
			assert.True(t, IsDetailSection(section))
		})
	}
}

func TestShowSectionSubscribers(t *testing.T) {
	a, fb := newTestApp(t)
	fb.reply(http.MethodGet, "/api/k4opt", http.StatusOK, `[{"k4":"00112233445566778899","k4_sno":4}]`)

	view, err := a.ShowSection(context.Background(), SubscribersSection)
	require.NoError(t, err)
	require.NotNil(t, view.List)
	assert.Equal(t, "k4-key", view.List.Type)
	var found bool
	for _, f := range view.Fields {
		if f.Id == "sub_k4_sno" {
			found = true
			assert.Len(t, f.Options, 2)
			assert.Equal(t, "SNO 4 - Key: 00112233...", f.Options[1].Label)
		}
	}
	assert.True(t, found)
}

func TestShowSectionErrors(t *testing.T) {
	a, fb := newTestApp(t)
	assert.Equal(t, DefaultSection, a.CurrentSection())

	_, err := a.ShowSection(context.Background(), "dashboard")
	assert.EqualError(t, err, "Unknown section: dashboard")
	assert.Equal(t, DefaultSection, a.CurrentSection())

	fb.reply(http.MethodGet, "/config/v1/device-group", http.StatusOK, `{"not":"a list"}`)
	_, err = a.ShowSection(context.Background(), "device-groups")
	assert.EqualError(t, err, "Invalid response format from server")
}

func TestSubscriberListMeta(t *testing.T) {
	a, fb := newTestApp(t)
	fb.reply(http.MethodGet, "/api/subscriber", http.StatusOK, `{"items":[],"page":2,"limit":20,"total":30,"pages":2}`)

	view, err := a.ShowSection(context.Background(), "subscribers-list")
	require.NoError(t, err)
	require.NotNil(t, view.List.Meta)
	assert.Equal(t, 30, view.List.Meta.Total)
	assert.Contains(t, Sections(), "subscribers-list")
}
