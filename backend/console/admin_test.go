// SPDX-FileCopyrightText: 2024 Canonical Ltd
//
// SPDX-License-Identifier: Apache-2.0
//

package console

import (
	"context"
	"net/http"
	"testing"

	"github.com/omec-project/webconsole-ui/backend/apiclient"
	"github.com/stretchr/testify/assert"
)

func TestRunAdmin(t *testing.T) {
	testCases := []struct {
		name        string
		action      apiclient.SyncAction
		status      int
		body        string
		wantSuccess bool
		wantMessage string
	}{
		{"sync ok", apiclient.SyncKey, http.StatusOK, "synced 3 keys", true, "K4 keys synchronized successfully!"},
		{"life check ok", apiclient.CheckK4Life, http.StatusOK, "all keys alive", true, "K4 life check completed successfully!"},
		{"rotation ok", apiclient.K4Rotation, http.StatusOK, "rotated", true, "K4 rotation executed successfully!"},
		{"sync with body", apiclient.SyncKey, http.StatusBadGateway, "vault unreachable", false, "Sync failed: vault unreachable"},
		{"life check empty body", apiclient.CheckK4Life, http.StatusInternalServerError, "", false, "Health check failed: Health check failed"},
		{"rotation empty body", apiclient.K4Rotation, http.StatusInternalServerError, "", false, "Rotation failed: Rotation failed"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			a, fb := newTestApp(t)
			fb.reply(http.MethodGet, "/sync-ssm/"+string(tc.action), tc.status, tc.body)

			result, err := a.RunAdmin(context.Background(), tc.action)
			assert.Equal(t, tc.wantSuccess, err == nil)
			assert.Equal(t, tc.wantSuccess, result.Success)
			if tc.wantSuccess {
				assert.Equal(t, tc.body, result.Output)
			}
			assert.Equal(t, tc.wantMessage, lastMessage(t, a).Message)
		})
	}
}

func TestRunAdminUnknownAction(t *testing.T) {
	a, fb := newTestApp(t)
	_, err := a.RunAdmin(context.Background(), apiclient.SyncAction("wipe"))
	assert.EqualError(t, err, "unknown sync action: wipe")
	assert.Empty(t, fb.requests())
}
