// SPDX-FileCopyrightText: 2024 Canonical Ltd
//
// SPDX-License-Identifier: Apache-2.0
//

package console

import (
	"sync"
	"time"

	"github.com/omec-project/webconsole-ui/backend/logger"
)

type NotificationType string

const (
	NotificationSuccess NotificationType = "success"
	NotificationError   NotificationType = "danger"
	NotificationWarning NotificationType = "warning"
	NotificationInfo    NotificationType = "info"
)

const DefaultFeedSize = 50

type Notification struct {
	Type    NotificationType `json:"type"`
	Message string           `json:"message"`
	Time    time.Time        `json:"time"`
}

// Notifier keeps the most recent notifications, oldest first.
type Notifier struct {
	mu    sync.Mutex
	feed  []Notification
	limit int
	now   func() time.Time
}

func NewNotifier(limit int) *Notifier {
	if limit <= 0 {
		limit = DefaultFeedSize
	}
	return &Notifier{limit: limit, now: time.Now}
}

func (n *Notifier) Success(msg string) {
	n.push(NotificationSuccess, msg)
}

func (n *Notifier) Error(msg string) {
	n.push(NotificationError, msg)
}

func (n *Notifier) Warning(msg string) {
	n.push(NotificationWarning, msg)
}

func (n *Notifier) Info(msg string) {
	n.push(NotificationInfo, msg)
}

// ApiError reports a failed operation as "Failed to {op}: {msg}".
func (n *Notifier) ApiError(err error, op string) {
	if op == "" {
		op = "operation"
	}
	msg := "Failed to " + op
	if err != nil && err.Error() != "" {
		msg += ": " + err.Error()
	}
	n.Error(msg)
}

func (n *Notifier) push(typ NotificationType, msg string) {
	switch typ {
	case NotificationError:
		logger.ConsoleLog.Errorln(msg)
	case NotificationWarning:
		logger.ConsoleLog.Warnln(msg)
	default:
		logger.ConsoleLog.Infoln(msg)
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	n.feed = append(n.feed, Notification{Type: typ, Message: msg, Time: n.now()})
	if over := len(n.feed) - n.limit; over > 0 {
		n.feed = append([]Notification{}, n.feed[over:]...)
	}
}

func (n *Notifier) List() []Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]Notification{}, n.feed...)
}

// Last returns the most recent notification, if any.
func (n *Notifier) Last() (Notification, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.feed) == 0 {
		return Notification{}, false
	}
	return n.feed[len(n.feed)-1], true
}

func (n *Notifier) Clear() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.feed = nil
}
