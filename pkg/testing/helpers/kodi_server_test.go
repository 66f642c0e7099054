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

package helpers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/ZaparooProject/kover/pkg/platforms/shared/kodi"
	"github.com/ZaparooProject/kover/pkg/testing/helpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func post(t *testing.T, url string, payload kodi.APIPayload) kodi.APIResponse {
	t.Helper()

	jsonData, err := json.Marshal(payload)
	require.NoError(t, err)

	resp, err := http.Post(url, "application/json", bytes.NewBuffer(jsonData)) //nolint:noctx // test helper
	require.NoError(t, err)
	defer func() {
		_ = resp.Body.Close()
	}()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var apiResp kodi.APIResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&apiResp))
	return apiResp
}

func TestNewMockKodiServer_CanBeCreated(t *testing.T) {
	t.Parallel()

	server := helpers.NewMockKodiServer(t)

	assert.Contains(t, server.URL(), "http://")
	assert.Contains(t, server.GetURLForConfig(), "/jsonrpc")
}

func TestMockKodiServer_GetInfoLabels(t *testing.T) {
	t.Parallel()

	server := helpers.NewMockKodiServer(t).WithBuildVersion("19.4 (19.4.0)")

	apiResp := post(t, server.GetURLForConfig(), kodi.APIPayload{
		JSONRPC: "2.0",
		Method:  kodi.APIMethodXBMCGetInfoLabels,
		ID:      "test-123",
	})
	assert.Equal(t, "test-123", apiResp.ID)
	assert.Equal(t, "2.0", apiResp.JSONRPC)
	assert.Nil(t, apiResp.Error)

	var labels map[string]string
	require.NoError(t, json.Unmarshal(apiResp.Result, &labels))
	assert.Equal(t, "19.4 (19.4.0)", labels[kodi.InfoLabelBuildVersion])
}

func TestMockKodiServer_WithError(t *testing.T) {
	t.Parallel()

	server := helpers.NewMockKodiServer(t).WithError(kodi.APIMethodJSONRPCPing, -1, "busy")

	apiResp := post(t, server.GetURLForConfig(), kodi.APIPayload{
		JSONRPC: "2.0",
		Method:  kodi.APIMethodJSONRPCPing,
		ID:      "ping",
	})
	require.NotNil(t, apiResp.Error)
	assert.Equal(t, "busy", apiResp.Error.Message)
	assert.Len(t, server.Requests(), 1)
}

func TestMockKodiServer_UnknownMethod(t *testing.T) {
	t.Parallel()

	server := helpers.NewMockKodiServer(t)

	apiResp := post(t, server.GetURLForConfig(), kodi.APIPayload{
		JSONRPC: "2.0",
		Method:  "Player.Open",
		ID:      "open",
	})
	require.NotNil(t, apiResp.Error)
	assert.Equal(t, -32601, apiResp.Error.Code)
}
