// SPDX-FileCopyrightText: 2024 Canonical Ltd
//
// SPDX-License-Identifier: Apache-2.0
//

package console

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotifierTypes(t *testing.T) {
	n := NewNotifier(10)
	n.Success("a")
	n.Error("b")
	n.Warning("c")
	n.Info("d")

	var types []NotificationType
	for _, item := range n.List() {
		types = append(types, item.Type)
	}
	assert.Equal(t, []NotificationType{"success", "danger", "warning", "info"}, types)
}

func TestNotifierApiError(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		op       string
		expected string
	}{
		{"with message", errors.New("HTTP 500"), "create item", "Failed to create item: HTTP 500"},
		{"without operation", errors.New("boom"), "", "Failed to operation: boom"},
		{"without error", nil, "delete item", "Failed to delete item"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			n := NewNotifier(10)
			n.ApiError(tc.err, tc.op)
			last, ok := n.Last()
			assert.True(t, ok)
			assert.Equal(t, NotificationError, last.Type)
			assert.Equal(t, tc.expected, last.Message)
		})
	}
}

func TestNotifierBounded(t *testing.T) {
	n := NewNotifier(3)
	for i := 0; i < 5; i++ {
		n.Info(fmt.Sprint(i))
	}
	list := n.List()
	assert.Len(t, list, 3)
	assert.Equal(t, "2", list[0].Message)
	assert.Equal(t, "4", list[2].Message)

	n.Clear()
	_, ok := n.Last()
	assert.False(t, ok)
	assert.Empty(t, n.List())
}
