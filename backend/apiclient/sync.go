// SPDX-FileCopyrightText: 2024 Canonical Ltd
//
// SPDX-License-Identifier: Apache-2.0
//

package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"strings"
)

// SyncAction is one of the plain-text key management actions exposed by
// the backend under its sync API base.
type SyncAction string

const (
	SyncKey      SyncAction = "sync-key"
	CheckK4Life  SyncAction = "check-k4-life"
	K4Rotation   SyncAction = "k4-rotation"
	syncResource            = "sync-ssm"
)

var syncFailures = map[SyncAction]string{
	SyncKey:     "Sync failed",
	CheckK4Life: "Health check failed",
	K4Rotation:  "Rotation failed",
}

func ParseSyncAction(s string) (SyncAction, error) {
	action := SyncAction(s)
	if _, ok := syncFailures[action]; !ok {
		return "", fmt.Errorf("unknown sync action: %s", s)
	}
	return action, nil
}

// Sync triggers action and returns the plain-text answer of the backend.
func (c *Client) Sync(ctx context.Context, apiBase string, action SyncAction) (string, error) {
	fallback, ok := syncFailures[action]
	if !ok {
		return "", fmt.Errorf("unknown sync action: %s", action)
	}
	path := strings.TrimSuffix(apiBase, "/") + "/" + string(action)
	resp, err := c.do(ctx, syncResource, http.MethodGet, path, nil, nil)
	if err != nil {
		return "", err
	}
	if !resp.ok() {
		msg := strings.TrimSpace(string(resp.body))
		if msg == "" {
			msg = fallback
		}
		return "", &HTTPError{
			StatusCode: resp.statusCode,
			Status:     resp.status,
			Body:       string(resp.body),
			message:    msg,
		}
	}
	return string(resp.body), nil
}
