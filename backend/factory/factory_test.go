// SPDX-License-Identifier: Apache-2.0
// Copyright 2024 Canonical Ltd.

package factory

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestParseConfigDefaults(t *testing.T) {
	content := []byte(`
info:
  version: 1.0.0
configuration:
  backend:
    url: http://webui:5000/
`)
	cfg, err := ParseConfig(content)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b := cfg.Configuration.Backend
	if b.Url != "http://webui:5000" {
		t.Errorf("expected trailing slash to be trimmed, got %s", b.Url)
	}
	if b.ConfigApiBase != DefaultConfigApiBase || b.SubscriberApiBase != DefaultSubscriberApiBase || b.SyncApiBase != DefaultSyncApiBase {
		t.Errorf("unexpected api bases: %+v", b)
	}
	if b.Timeout != DefaultBackendTimeout {
		t.Errorf("expected default timeout, got %v", b.Timeout)
	}
	if cfg.Configuration.DetailConcurrency != DefaultDetailConcurrency {
		t.Errorf("expected default concurrency, got %d", cfg.Configuration.DetailConcurrency)
	}
	if cfg.Configuration.SubscriberPageSize != DefaultSubscriberPageSize {
		t.Errorf("expected default page size, got %d", cfg.Configuration.SubscriberPageSize)
	}
	if cfg.Configuration.WebServer.PORT != DefaultServerPort {
		t.Errorf("expected default port, got %d", cfg.Configuration.WebServer.PORT)
	}
}

func TestParseConfigOverrides(t *testing.T) {
	content := []byte(`
configuration:
  webServer:
    port: 8000
  detailConcurrency: 9
  backend:
    url: https://webui.example.org
    configApiBase: /cfg
    timeout: 5s
logger:
  console:
    debugLevel: debug
`)
	cfg, err := ParseConfig(content)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Configuration.WebServer.PORT != 8000 {
		t.Errorf("expected port 8000, got %d", cfg.Configuration.WebServer.PORT)
	}
	if cfg.Configuration.DetailConcurrency != 9 {
		t.Errorf("expected concurrency 9, got %d", cfg.Configuration.DetailConcurrency)
	}
	if cfg.Configuration.Backend.ConfigApiBase != "/cfg" {
		t.Errorf("expected /cfg, got %s", cfg.Configuration.Backend.ConfigApiBase)
	}
	if cfg.Configuration.Backend.Timeout != 5*time.Second {
		t.Errorf("expected 5s timeout, got %v", cfg.Configuration.Backend.Timeout)
	}
	if cfg.Logger.Console.DebugLevel != "debug" {
		t.Errorf("expected debug level, got %s", cfg.Logger.Console.DebugLevel)
	}
}

func TestParseConfigInvalid(t *testing.T) {
	testCases := []struct {
		name    string
		content string
	}{
		{"MissingBackendUrl", "configuration:\n  backend: {}\n"},
		{"BadScheme", "configuration:\n  backend:\n    url: ftp://webui\n"},
		{"IncompleteMTls", "configuration:\n  backend:\n    url: https://webui\n    mtls:\n      crt: a.crt\n"},
		{"IncompleteServerTls", "configuration:\n  backend:\n    url: https://webui\n  tls:\n    pem: a.pem\n"},
		{"NotYaml", "configuration: ["},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseConfig([]byte(tc.content)); err == nil {
				t.Errorf("expected an error")
			}
		})
	}
}

func TestInitConfigFactory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "console.yaml")
	if err := os.WriteFile(path, []byte("configuration:\n  backend:\n    url: http://localhost:5000\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := InitConfigFactory(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ConsoleConfig.Configuration.Backend.Url != "http://localhost:5000" {
		t.Errorf("unexpected backend url %s", ConsoleConfig.Configuration.Backend.Url)
	}
	if err := InitConfigFactory(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Errorf("expected error for missing file")
	}
}

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig("http://localhost:5000/")
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Configuration.Backend.Url != "http://localhost:5000" {
		t.Errorf("unexpected url %s", cfg.Configuration.Backend.Url)
	}
}
