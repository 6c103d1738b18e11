// SPDX-FileCopyrightText: 2021 Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0
//

/*
 * Console Configuration Factory
 */

package factory

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"gopkg.in/yaml.v2"
)

var ConsoleConfig Config

func InitConfigFactory(f string) error {
	content, err := os.ReadFile(f)
	if err != nil {
		return fmt.Errorf("[Configuration] %+v", err)
	}
	cfg, err := ParseConfig(content)
	if err != nil {
		return err
	}
	ConsoleConfig = *cfg
	return nil
}

// ParseConfig decodes a YAML document, applies defaults and validates it.
func ParseConfig(content []byte) (*Config, error) {
	cfg := &Config{}
	if yamlErr := yaml.Unmarshal(content, cfg); yamlErr != nil {
		return nil, fmt.Errorf("[Configuration] %+v", yamlErr)
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("[Configuration] %+v", err)
	}
	return cfg, nil
}

// NewDefaultConfig returns the configuration used by CLI commands run
// without a config file.
func NewDefaultConfig(backendUrl string) *Config {
	cfg := &Config{
		Configuration: &Configuration{
			Backend: &Backend{Url: backendUrl},
		},
	}
	cfg.SetDefaults()
	return cfg
}

func (c *Config) SetDefaults() {
	if c.Info == nil {
		c.Info = &Info{}
	}
	if c.Configuration == nil {
		c.Configuration = &Configuration{}
	}
	cfg := c.Configuration
	if cfg.WebServer == nil {
		cfg.WebServer = &WebServer{}
	}
	if cfg.WebServer.PORT == 0 {
		cfg.WebServer.PORT = DefaultServerPort
	}
	if cfg.Backend == nil {
		cfg.Backend = &Backend{}
	}
	b := cfg.Backend
	if b.ConfigApiBase == "" {
		b.ConfigApiBase = DefaultConfigApiBase
	}
	if b.SubscriberApiBase == "" {
		b.SubscriberApiBase = DefaultSubscriberApiBase
	}
	if b.SyncApiBase == "" {
		b.SyncApiBase = DefaultSyncApiBase
	}
	if b.Timeout <= 0 {
		b.Timeout = DefaultBackendTimeout
	}
	b.Url = strings.TrimSuffix(b.Url, "/")
	if cfg.Metrics == nil {
		cfg.Metrics = &Metrics{}
	}
	if cfg.Metrics.Addr == "" {
		cfg.Metrics.Addr = DefaultMetricsAddr
	}
	if cfg.DetailConcurrency <= 0 {
		cfg.DetailConcurrency = DefaultDetailConcurrency
	}
	if cfg.SubscriberPageSize <= 0 {
		cfg.SubscriberPageSize = DefaultSubscriberPageSize
	}
	if c.Logger == nil {
		c.Logger = &Logger{}
	}
}

func (c *Config) Validate() error {
	b := c.Configuration.Backend
	if b.Url == "" {
		return fmt.Errorf("backend url is required")
	}
	u, err := url.Parse(b.Url)
	if err != nil {
		return fmt.Errorf("invalid backend url %q: %w", b.Url, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("backend url %q must use http or https", b.Url)
	}
	if b.MTls != nil && (b.MTls.Crt == "" || b.MTls.Key == "" || b.MTls.Ca == "") {
		return fmt.Errorf("backend mtls requires crt, key and ca")
	}
	if tls := c.Configuration.TLS; tls != nil && (tls.PEM == "") != (tls.Key == "") {
		return fmt.Errorf("tls requires both pem and key")
	}
	return nil
}
