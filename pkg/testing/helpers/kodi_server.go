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

package helpers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ZaparooProject/kover/pkg/helpers/syncutil"
	"github.com/ZaparooProject/kover/pkg/platforms/shared/kodi"
	"github.com/ZaparooProject/kover/pkg/testing/fixtures"
)

// MockKodiServer provides a mock Kodi JSON-RPC server for integration testing
type MockKodiServer struct {
	*httptest.Server
	failures     map[kodi.APIMethod]*kodi.APIError
	username     string
	password     string
	buildVersion string
	requests     []kodi.APIPayload
	appVersion   kodi.AppVersion
	mu           syncutil.Mutex
}

// NewMockKodiServer creates a new mock Kodi server for testing. It reports a
// Kodi 20.2 build until configured otherwise.
func NewMockKodiServer(t *testing.T) *MockKodiServer {
	mock := &MockKodiServer{
		buildVersion: fixtures.BuildVersions[4].Label,
		appVersion:   fixtures.NexusAppVersion,
		failures:     make(map[kodi.APIMethod]*kodi.APIError),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/jsonrpc", mock.handleJSONRPC)
	mock.Server = httptest.NewServer(mux)
	if t != nil {
		t.Cleanup(mock.Close)
	}

	return mock
}

// URL returns the mock server's URL for configuration
func (m *MockKodiServer) URL() string {
	return m.Server.URL
}

// GetURLForConfig returns the mock server's URL formatted for Kodi client configuration
func (m *MockKodiServer) GetURLForConfig() string {
	return m.URL() + "/jsonrpc"
}

// WithBuildVersion sets the System.BuildVersion label. An empty label makes
// clients fall back to the application version.
func (m *MockKodiServer) WithBuildVersion(label string) *MockKodiServer {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.buildVersion = label
	return m
}

// WithAppVersion sets the version property of Application.GetProperties.
func (m *MockKodiServer) WithAppVersion(v kodi.AppVersion) *MockKodiServer {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.appVersion = v
	return m
}

// WithError makes every call of method answer with a JSON-RPC error.
func (m *MockKodiServer) WithError(method kodi.APIMethod, code int, message string) *MockKodiServer {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failures[method] = &kodi.APIError{Code: code, Message: message}
	return m
}

// WithBasicAuth requires HTTP basic auth on every request.
func (m *MockKodiServer) WithBasicAuth(username, password string) *MockKodiServer {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.username = username
	m.password = password
	return m
}

// Requests returns the payloads received so far, in order.
func (m *MockKodiServer) Requests() []kodi.APIPayload {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]kodi.APIPayload, len(m.requests))
	copy(out, m.requests)
	return out
}

func (m *MockKodiServer) handleJSONRPC(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.username != "" {
		user, pass, ok := r.BasicAuth()
		if !ok || user != m.username || pass != m.password {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
	}

	var payload kodi.APIPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}
	m.requests = append(m.requests, payload)

	response := kodi.APIResponse{
		ID:      payload.ID,
		JSONRPC: "2.0",
	}

	if apiErr, ok := m.failures[payload.Method]; ok {
		response.Error = apiErr
	} else {
		result, apiErr := m.result(payload.Method)
		response.Result = result
		response.Error = apiErr
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(response)
}

func (m *MockKodiServer) result(method kodi.APIMethod) (json.RawMessage, *kodi.APIError) {
	var v any
	switch method {
	case kodi.APIMethodJSONRPCPing:
		v = "pong"
	case kodi.APIMethodJSONRPCVersion:
		v = kodi.JSONRPCVersionResponse{Version: kodi.JSONRPCVersion{Major: 13, Minor: 5}}
	case kodi.APIMethodXBMCGetInfoLabels:
		v = map[string]string{kodi.InfoLabelBuildVersion: m.buildVersion}
	case kodi.APIMethodApplicationGetProperties:
		v = kodi.ApplicationGetPropertiesResponse{Name: "Kodi", Version: m.appVersion}
	default:
		return nil, &kodi.APIError{Code: -32601, Message: "Method not found."}
	}
	result, _ := json.Marshal(v)
	return result, nil
}
