// SPDX-FileCopyrightText: 2024 Canonical Ltd
//
// SPDX-License-Identifier: Apache-2.0
//

package apiclient

import (
	"errors"
	"fmt"
	"strings"
)

// HTTPError is returned for every non-2xx backend response.
type HTTPError struct {
	StatusCode int
	Status     string
	Body       string
	message    string
}

func (e *HTTPError) Error() string {
	return e.message
}

// readError is used by List and Get: the body is ignored.
func readError(resp *response) *HTTPError {
	return &HTTPError{
		StatusCode: resp.statusCode,
		Status:     resp.status,
		Body:       string(resp.body),
		message:    fmt.Sprintf("HTTP %d: %s", resp.statusCode, resp.status),
	}
}

// writeError is used by mutations: the body text is surfaced verbatim.
func writeError(resp *response) *HTTPError {
	msg := strings.TrimSpace(string(resp.body))
	if msg == "" {
		msg = fmt.Sprintf("HTTP %d", resp.statusCode)
	}
	return &HTTPError{
		StatusCode: resp.statusCode,
		Status:     resp.status,
		Body:       string(resp.body),
		message:    msg,
	}
}

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode
	}
	return 0
}
