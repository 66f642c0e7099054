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

package kodi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/ZaparooProject/kover/pkg/config"
	"github.com/ZaparooProject/kover/pkg/shared/httpclient"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// ErrUnexpectedStatus is returned when the web server answers with a non-2xx
// status, usually 401 for missing credentials.
var ErrUnexpectedStatus = errors.New("unexpected http status")

// Client implements the KodiClient interface
type Client struct {
	http *httpclient.Client
	url  string
}

// Ensure Client implements KodiClient at compile time
var _ KodiClient = (*Client)(nil)

// NewClient creates a new Kodi client with configuration-based URL and
// credentials. A nil config uses the local default endpoint.
func NewClient(cfg *config.Instance) *Client {
	c := &Client{
		url:  DefaultURL,
		http: httpclient.NewClientFromConfig(cfg),
	}
	if cfg != nil && cfg.KodiURL() != "" {
		c.url = cfg.KodiURL()
	}
	return c
}

// BuildVersion returns the raw build string of the running Kodi.
func (c *Client) BuildVersion(ctx context.Context) (string, error) {
	labels, err := c.GetInfoLabels(ctx, InfoLabelBuildVersion)
	if err != nil {
		return "", err
	}

	if v := labels[InfoLabelBuildVersion]; v != "" {
		return v, nil
	}

	log.Debug().Msg("empty build version label, asking for application version")
	av, err := c.ApplicationVersion(ctx)
	if err != nil {
		return "", err
	}
	return av.String(), nil
}

// ApplicationVersion retrieves the version property of the application
func (c *Client) ApplicationVersion(ctx context.Context) (AppVersion, error) {
	result, err := c.APIRequest(ctx, APIMethodApplicationGetProperties, GetPropertiesParams{
		Properties: []string{"version", "name"},
	})
	if err != nil {
		return AppVersion{}, err
	}

	var response ApplicationGetPropertiesResponse
	err = json.Unmarshal(result, &response)
	if err != nil {
		return AppVersion{}, fmt.Errorf("failed to unmarshal GetProperties response: %w", err)
	}

	return response.Version, nil
}

// APIVersion retrieves the JSON-RPC API version
func (c *Client) APIVersion(ctx context.Context) (JSONRPCVersion, error) {
	result, err := c.APIRequest(ctx, APIMethodJSONRPCVersion, nil)
	if err != nil {
		return JSONRPCVersion{}, err
	}

	var response JSONRPCVersionResponse
	err = json.Unmarshal(result, &response)
	if err != nil {
		return JSONRPCVersion{}, fmt.Errorf("failed to unmarshal Version response: %w", err)
	}

	return response.Version, nil
}

// GetInfoLabels reads info labels by name. Labels Kodi does not know come
// back as empty strings.
func (c *Client) GetInfoLabels(ctx context.Context, labels ...string) (map[string]string, error) {
	result, err := c.APIRequest(ctx, APIMethodXBMCGetInfoLabels, GetInfoLabelsParams{
		Labels: labels,
	})
	if err != nil {
		return nil, err
	}

	values := make(map[string]string, len(labels))
	err = json.Unmarshal(result, &values)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal GetInfoLabels response: %w", err)
	}

	return values, nil
}

// Ping checks the JSON-RPC endpoint answers with "pong".
func (c *Client) Ping(ctx context.Context) error {
	result, err := c.APIRequest(ctx, APIMethodJSONRPCPing, nil)
	if err != nil {
		return err
	}

	var pong string
	if err := json.Unmarshal(result, &pong); err != nil {
		return fmt.Errorf("failed to unmarshal Ping response: %w", err)
	}
	if pong != "pong" {
		return fmt.Errorf("unexpected ping response: %q", pong)
	}
	return nil
}

// GetURL returns the current Kodi API URL
func (c *Client) GetURL() string {
	return c.url
}

// SetURL sets the Kodi API URL
func (c *Client) SetURL(url string) {
	c.url = url
}

// APIRequest makes a raw JSON-RPC request to Kodi API
func (c *Client) APIRequest(ctx context.Context, method APIMethod, params any) (json.RawMessage, error) {
	req := APIPayload{
		JSONRPC: "2.0",
		ID:      uuid.New().String(),
		Method:  method,
		Params:  params,
	}

	reqJSON, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	kodiReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewBuffer(reqJSON))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	kodiReq.Header.Set("Content-Type", "application/json")
	kodiReq.Header.Set("Accept", "application/json")

	log.Debug().Str("method", string(method)).Str("id", req.ID).Msg("kodi api request")

	resp, err := c.http.Do(kodiReq)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close() // Ignore close error in defer
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s", ErrUnexpectedStatus, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var apiResp APIResponse
	err = json.Unmarshal(body, &apiResp)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	if apiResp.Error != nil {
		return nil, apiResp.Error
	}

	return apiResp.Result, nil
}
