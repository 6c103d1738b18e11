// SPDX-FileCopyrightText: 2024 Canonical Ltd
//
// SPDX-License-Identifier: Apache-2.0
//

package console

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/omec-project/webconsole-ui/configapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gnbForm(name string) configapi.Form {
	return configapi.Form{"name": name, "tac": "1"}
}

func TestModalCreate(t *testing.T) {
	a, fb := newTestApp(t)
	fb.reply(http.MethodPost, "/config/v1/inventory/gnb/gnb-1", http.StatusCreated, ``)
	fb.reply(http.MethodGet, "/config/v1/inventory/gnb", http.StatusOK, `[{"name":"gnb-1","tac":1}]`)
	ctx := context.Background()

	state, err := a.Modal.ShowCreateForm(ctx, "gnb")
	require.NoError(t, err)
	assert.True(t, state.Open)
	assert.Equal(t, "Create gNB", state.Title)
	assert.False(t, state.IsEdit())

	list, err := a.Modal.SaveItem(ctx, gnbForm("gnb-1"))
	require.NoError(t, err)
	require.NotNil(t, list)
	assert.Equal(t, [][]string{{"gnb-1", "1"}}, list.Table.Rows)

	expected := []string{"POST /config/v1/inventory/gnb/gnb-1", "GET /config/v1/inventory/gnb"}
	if diff := cmp.Diff(expected, fb.requests()); diff != "" {
		t.Errorf("unexpected requests (-want +got):\n%s", diff)
	}
	assert.Equal(t, ModalState{}, a.Modal.State())
	assert.Equal(t, Notification{Type: NotificationSuccess, Message: "gNB created successfully"}, withoutTime(lastMessage(t, a)))
}

func TestModalEdit(t *testing.T) {
	a, fb := newTestApp(t)
	fb.reply(http.MethodGet, "/config/v1/inventory/upf/upf-1", http.StatusOK, `{"hostname":"upf-1","port":"8805"}`)
	fb.reply(http.MethodPut, "/config/v1/inventory/upf/upf-1", http.StatusOK, ``)
	fb.reply(http.MethodGet, "/config/v1/inventory/upf", http.StatusOK, `[]`)
	ctx := context.Background()

	state, err := a.Modal.EditItem(ctx, "upf", "upf-1")
	require.NoError(t, err)
	assert.Equal(t, "Edit UPF: upf-1", state.Title)
	assert.Equal(t, configapi.Form{"hostname": "upf-1", "port": "8805"}, state.Form)
	assert.True(t, state.IsEdit())

	_, err = a.Modal.SaveItem(ctx, configapi.Form{"hostname": "upf-1", "port": "8806"})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"GET /config/v1/inventory/upf/upf-1",
		"PUT /config/v1/inventory/upf/upf-1",
		"GET /config/v1/inventory/upf",
	}, fb.requests())
	assert.Equal(t, "UPF updated successfully", lastMessage(t, a).Message)
	assert.False(t, a.Modal.State().Open)
}

func TestModalEditLoadFailure(t *testing.T) {
	a, fb := newTestApp(t)
	fb.reply(http.MethodGet, "/config/v1/inventory/upf/upf-1", http.StatusNotFound, ``)

	state, err := a.Modal.EditItem(context.Background(), "upf", "upf-1")
	assert.Error(t, err)
	assert.True(t, state.Open)
	assert.Equal(t, "upf-1", a.Modal.State().Name)
	assert.Equal(t, "Failed to load item data: HTTP 404: Not Found", lastMessage(t, a).Message)
}

func TestModalValidationFailure(t *testing.T) {
	a, fb := newTestApp(t)
	ctx := context.Background()
	_, err := a.Modal.ShowCreateForm(ctx, "device-group")
	require.NoError(t, err)

	_, err = a.Modal.SaveItem(ctx, configapi.Form{"group_name": "", "mtu": "80"})
	var verr *configapi.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Group name is required\nMTU must be a number between 1200 and 9000", lastMessage(t, a).Message)
	assert.Empty(t, fb.requests())
	assert.True(t, a.Modal.State().Open)
}

func TestModalBackendFailureKeepsState(t *testing.T) {
	a, fb := newTestApp(t)
	fb.reply(http.MethodPost, "/config/v1/inventory/gnb/gnb-1", http.StatusConflict, "gnb already exists")
	ctx := context.Background()
	_, err := a.Modal.ShowCreateForm(ctx, "gnb")
	require.NoError(t, err)

	_, err = a.Modal.SaveItem(ctx, gnbForm("gnb-1"))
	assert.EqualError(t, err, "gnb already exists")
	assert.Equal(t, "Failed to create item: gnb already exists", lastMessage(t, a).Message)
	state := a.Modal.State()
	assert.True(t, state.Open)
	assert.Equal(t, "gnb", state.Type)
	assert.Equal(t, gnbForm("gnb-1"), state.Form)
}

func TestModalUnknownType(t *testing.T) {
	a, _ := newTestApp(t)
	_, err := a.Modal.ShowCreateForm(context.Background(), "router")
	assert.EqualError(t, err, "Unknown type: router")
	assert.Equal(t, NotificationError, lastMessage(t, a).Type)

	a.Modal.Hide()
	_, err = a.Modal.SaveItem(context.Background(), configapi.Form{})
	assert.EqualError(t, err, "Unknown type: ")
}

func TestModalDelete(t *testing.T) {
	a, fb := newTestApp(t)
	fb.reply(http.MethodDelete, "/api/subscriber/imsi-1", http.StatusOK, ``)
	fb.reply(http.MethodGet, "/api/subscriber", http.StatusOK, `[]`)
	fb.reply(http.MethodDelete, "/api/subscriber/imsi-2", http.StatusInternalServerError, ``)
	ctx := context.Background()

	list, err := a.Modal.DeleteItem(ctx, "subscriber", "imsi-1")
	require.NoError(t, err)
	require.NotNil(t, list)
	assert.Equal(t, "Subscriber deleted successfully", lastMessage(t, a).Message)

	_, err = a.Modal.DeleteItem(ctx, "subscriber", "imsi-2")
	assert.Error(t, err)
	assert.Equal(t, "Failed to delete item: HTTP 500", lastMessage(t, a).Message)
}

func withoutTime(n Notification) Notification {
	return Notification{Type: n.Type, Message: n.Message}
}
