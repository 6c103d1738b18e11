// SPDX-FileCopyrightText: 2024 Canonical Ltd
//
// SPDX-License-Identifier: Apache-2.0
//

package apiclient

import (
	"bytes"
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/omec-project/webconsole-ui/backend/factory"
	"github.com/omec-project/webconsole-ui/backend/logger"
	"github.com/omec-project/webconsole-ui/backend/metrics"
)

const RequestIdHeader = "X-Request-Id"

// Doer is satisfied by *http.Client.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client talks to the webconsole backend REST surface.
type Client struct {
	baseUrl    string
	token      string
	httpClient Doer
}

type Option func(*Client)

func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

func WithHTTPClient(d Doer) Option {
	return func(c *Client) { c.httpClient = d }
}

func New(baseUrl string, opts ...Option) *Client {
	c := &Client{
		baseUrl:    strings.TrimSuffix(baseUrl, "/"),
		httpClient: &http.Client{Timeout: factory.DefaultBackendTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewFromConfig builds a client for the configured backend, including its
// TLS and mTLS settings.
func NewFromConfig(b *factory.Backend) (*Client, error) {
	httpClient, err := GetHTTPClient(b)
	if err != nil {
		return nil, err
	}
	return New(b.Url, WithToken(b.Token), WithHTTPClient(httpClient)), nil
}

func (c *Client) BaseUrl() string {
	return c.baseUrl
}

// GetHTTPClient returns an HTTP client configured based on TLS settings
func GetHTTPClient(b *factory.Backend) (*http.Client, error) {
	timeout := b.Timeout
	if timeout <= 0 {
		timeout = factory.DefaultBackendTimeout
	}
	if b.MTls == nil {
		if b.TLS_Insecure {
			logger.ClientLog.Warnln("TLS_Insecure enabled - skipping certificate verification")
			return &http.Client{
				Timeout: timeout,
				Transport: &http.Transport{
					TLSClientConfig: &tls.Config{
						InsecureSkipVerify: true,
					},
				},
			}, nil
		}
		return &http.Client{Timeout: timeout}, nil
	}

	logger.ClientLog.Infoln("configuring mTLS for backend client")
	cert, err := tls.LoadX509KeyPair(b.MTls.Crt, b.MTls.Key)
	if err != nil {
		return nil, fmt.Errorf("error loading client certificate: %w", err)
	}
	caCert, err := os.ReadFile(b.MTls.Ca)
	if err != nil {
		return nil, fmt.Errorf("error reading CA: %w", err)
	}
	caCertPool := x509.NewCertPool()
	if !caCertPool.AppendCertsFromPEM(caCert) {
		return nil, fmt.Errorf("no certificates found in %s", b.MTls.Ca)
	}
	tlsConfig := &tls.Config{
		Certificates:       []tls.Certificate{cert},
		RootCAs:            caCertPool,
		MinVersion:         tls.VersionTLS12,
		InsecureSkipVerify: b.TLS_Insecure,
	}
	return &http.Client{
		Timeout:   timeout,
		Transport: &http.Transport{TLSClientConfig: tlsConfig},
	}, nil
}

type response struct {
	statusCode int
	status     string
	body       []byte
}

func (r *response) ok() bool {
	return r.statusCode >= 200 && r.statusCode < 300
}

// do sends one request. resource is only used as a metrics label.
func (c *Client) do(ctx context.Context, resource, method, path string, query url.Values, payload any) (*response, error) {
	target := c.baseUrl + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json, text/plain")
	requestId := uuid.New().String()
	req.Header.Set(RequestIdHeader, requestId)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	start := time.Now()
	logger.ClientLog.Debugf("%s %s request-id=%s", method, target, requestId)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.ObserveBackendRequest(resource, method, 0, time.Since(start))
		logger.ClientLog.Errorf("%s %s failed: %v", method, target, err)
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	metrics.ObserveBackendRequest(resource, method, resp.StatusCode, time.Since(start))
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	logger.ClientLog.Debugf("%s %s -> %d", method, target, resp.StatusCode)
	return &response{
		statusCode: resp.StatusCode,
		status:     reasonPhrase(resp),
		body:       data,
	}, nil
}

// reasonPhrase strips the numeric code from resp.Status.
func reasonPhrase(resp *http.Response) string {
	status := strings.TrimSpace(strings.TrimPrefix(resp.Status, fmt.Sprint(resp.StatusCode)))
	if status == "" {
		status = http.StatusText(resp.StatusCode)
	}
	return status
}
