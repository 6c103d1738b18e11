// SPDX-FileCopyrightText: 2025 Canonical Ltd
//
// SPDX-License-Identifier: Apache-2.0
package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/omec-project/webconsole-ui/backend/webui_service"
	"github.com/urfave/cli"
)

type mockWebUI struct {
	initialized bool
	started     bool
}

func (m *mockWebUI) Initialize(c *cli.Context) error {
	if err := (&webui_service.WEBUI{}).Initialize(c); err != nil {
		return err
	}
	m.initialized = true
	return nil
}

func (m *mockWebUI) Start() error {
	m.started = true
	return nil
}

func writeConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "console.yaml")
	content := "configuration:\n  backend:\n    url: http://webui:5000\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestMainValidateCLIFlags(t *testing.T) {
	cfg := writeConfig(t)
	tests := []struct {
		name        string
		args        []string
		expectError bool
		expectStart bool
	}{
		{
			name:        "missing required flag",
			args:        []string{"webui"},
			expectError: true,
		},
		{
			name:        "valid config flag",
			args:        []string{"webui", "-cfg", cfg},
			expectStart: true,
		},
		{
			name:        "serve command",
			args:        []string{"webui", "serve", "-cfg", cfg},
			expectStart: true,
		},
		{
			name:        "empty config value",
			args:        []string{"webui", "-cfg", ""},
			expectError: true,
		},
		{
			name:        "missing config file",
			args:        []string{"webui", "-cfg", "does-not-exist.yaml"},
			expectError: true,
		},
		{
			name:        "invalid flag",
			args:        []string{"webui", "-invalid", "test.conf"},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockWebUI{}
			WEBUI = mock
			t.Cleanup(func() { WEBUI = &webui_service.WEBUI{} })
			app := newApp()
			app.Writer = io.Discard
			app.ErrWriter = io.Discard
			app.ExitErrHandler = func(*cli.Context, error) {}

			err := app.Run(tt.args)

			if tt.expectError && err == nil {
				t.Error("expected error but got none")
			}
			if !tt.expectError && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if mock.started != tt.expectStart {
				t.Errorf("expected started=%v, got %v", tt.expectStart, mock.started)
			}
		})
	}
}

func TestConsoleCommandsRegistered(t *testing.T) {
	app := newApp()
	for _, name := range []string{"serve", "types", "list", "get", "create", "update", "delete", "admin"} {
		if app.Command(name) == nil {
			t.Errorf("command %s not registered", name)
		}
	}
}
