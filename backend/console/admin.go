// SPDX-FileCopyrightText: 2024 Canonical Ltd
//
// SPDX-License-Identifier: Apache-2.0
//

package console

import (
	"context"
	"fmt"

	"github.com/omec-project/webconsole-ui/backend/apiclient"
	"github.com/omec-project/webconsole-ui/backend/metrics"
)

type adminMessages struct {
	success string
	failure string
}

var adminActions = map[apiclient.SyncAction]adminMessages{
	apiclient.SyncKey:     {"K4 keys synchronized successfully!", "Sync failed"},
	apiclient.CheckK4Life: {"K4 life check completed successfully!", "Health check failed"},
	apiclient.K4Rotation:  {"K4 rotation executed successfully!", "Rotation failed"},
}

// AdminResult is the plain-text answer of a key management action.
type AdminResult struct {
	Action  apiclient.SyncAction `json:"action"`
	Success bool                 `json:"success"`
	Output  string               `json:"output"`
}

// RunAdmin triggers a key management action on the backend.
func (a *App) RunAdmin(ctx context.Context, action apiclient.SyncAction) (AdminResult, error) {
	msgs, ok := adminActions[action]
	if !ok {
		err := fmt.Errorf("unknown sync action: %s", action)
		a.Notifier.Error(err.Error())
		return AdminResult{Action: action}, err
	}
	out, err := a.Client.Sync(ctx, a.Config.Configuration.Backend.SyncApiBase, action)
	metrics.ObserveAction(string(action), err)
	if err != nil {
		a.Notifier.Error(fmt.Sprintf("%s: %v", msgs.failure, err))
		return AdminResult{Action: action, Output: err.Error()}, err
	}
	a.Notifier.Success(msgs.success)
	return AdminResult{Action: action, Success: true, Output: out}, nil
}
