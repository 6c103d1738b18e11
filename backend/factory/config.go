// SPDX-FileCopyrightText: 2021 Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0
//

/*
 * Console Configuration Factory
 */

package factory

import "time"

const (
	DefaultConfigApiBase      = "/config/v1"
	DefaultSubscriberApiBase  = "/api"
	DefaultSyncApiBase        = "/sync-ssm"
	DefaultDetailConcurrency  = 4
	DefaultSubscriberPageSize = 20
	DefaultBackendTimeout     = 30 * time.Second
	DefaultServerPort         = 5001
	DefaultMetricsAddr        = ":9089"
)

type Config struct {
	Info          *Info          `yaml:"info"`
	Configuration *Configuration `yaml:"configuration"`
	Logger        *Logger        `yaml:"logger,omitempty"`
}

type Info struct {
	Version     string `yaml:"version,omitempty"`
	Description string `yaml:"description,omitempty"`
	HttpVersion int    `yaml:"http-version,omitempty"`
}

type Configuration struct {
	WebServer *WebServer `yaml:"webServer,omitempty"`
	Backend   *Backend   `yaml:"backend"`
	Metrics   *Metrics   `yaml:"metrics,omitempty"`
	// upper bound of concurrent per-item detail fetches when listing
	// device groups and network slices
	DetailConcurrency  int  `yaml:"detailConcurrency,omitempty"`
	SubscriberPageSize int  `yaml:"subscriberPageSize,omitempty"`
	TLS                *TLS `yaml:"tls,omitempty"`
}

type WebServer struct {
	IP   string `yaml:"ipv4Address,omitempty"`
	PORT int    `yaml:"port,omitempty"`
}

type Backend struct {
	Url               string        `yaml:"url"`
	ConfigApiBase     string        `yaml:"configApiBase,omitempty"`
	SubscriberApiBase string        `yaml:"subscriberApiBase,omitempty"`
	SyncApiBase       string        `yaml:"syncApiBase,omitempty"`
	Timeout           time.Duration `yaml:"timeout,omitempty"`
	Token             string        `yaml:"token,omitempty"`
	TLS_Insecure      bool          `yaml:"tlsInsecure,omitempty"`
	MTls              *MTls         `yaml:"mtls,omitempty"`
}

type MTls struct {
	Crt string `yaml:"crt"`
	Key string `yaml:"key"`
	Ca  string `yaml:"ca"`
}

type Metrics struct {
	Enabled bool   `yaml:"enabled,omitempty"`
	Addr    string `yaml:"addr,omitempty"`
}

type TLS struct {
	PEM string `yaml:"pem,omitempty"`
	Key string `yaml:"key,omitempty"`
}

type Logger struct {
	Console *LogSetting `yaml:"console,omitempty"`
}

type LogSetting struct {
	DebugLevel string `yaml:"debugLevel,omitempty"`
}
