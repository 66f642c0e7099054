// kover
// Copyright (c) 2026 The Zaparoo Project Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of kover.
//
// kover is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// kover is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with kover.  If not, see <http://www.gnu.org/licenses/>.

package httpclient

import (
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/ZaparooProject/kover/pkg/config"
)

// AuthTransport adds HTTP basic auth to every request when a username is set.
type AuthTransport struct {
	Base     http.RoundTripper
	Username string
	Password string
}

// RoundTrip implements http.RoundTripper interface with automatic authentication
func (t *AuthTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}

	if t.Username != "" {
		req = req.Clone(req.Context())
		req.SetBasicAuth(t.Username, t.Password)
	}

	resp, err := base.RoundTrip(req)
	if err != nil {
		return nil, fmt.Errorf("failed to perform HTTP round trip: %w", err)
	}
	return resp, nil
}

// DefaultTransport provides a configured transport with connection pooling and reasonable timeouts
var DefaultTransport = &http.Transport{
	DialContext: (&net.Dialer{
		Timeout:   5 * time.Second,
		KeepAlive: 30 * time.Second,
	}).DialContext,
	ResponseHeaderTimeout: 10 * time.Second,
	TLSHandshakeTimeout:   10 * time.Second,
	MaxIdleConns:          10,
	MaxIdleConnsPerHost:   2,
	IdleConnTimeout:       90 * time.Second,
}

// Client provides an HTTP client with authentication and sensible defaults
type Client struct {
	*http.Client
}

// NewClientWithTimeout creates a new HTTP client with a custom timeout and
// optional basic auth credentials.
func NewClientWithTimeout(timeout time.Duration, username, password string) *Client {
	return &Client{
		Client: &http.Client{
			Transport: &AuthTransport{
				Base:     DefaultTransport,
				Username: username,
				Password: password,
			},
			Timeout: timeout,
		},
	}
}

// NewClientFromConfig creates a new HTTP client with the Kodi web server
// credentials of cfg. A nil config gives an anonymous client.
func NewClientFromConfig(cfg *config.Instance) *Client {
	var username, password string
	if cfg != nil {
		username, password = cfg.KodiCredentials()
	}
	return NewClientWithTimeout(config.RequestTimeout, username, password)
}
