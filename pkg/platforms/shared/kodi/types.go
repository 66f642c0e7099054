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
	"encoding/json"
	"fmt"
	"strings"
)

// DefaultURL is the JSON-RPC endpoint of a local Kodi web server.
const DefaultURL = "http://localhost:8080/jsonrpc"

// InfoLabelBuildVersion is the info label holding the full build string,
// e.g. "20.2 (20.2.0) Git:20230629-5f418d0b13".
const InfoLabelBuildVersion = "System.BuildVersion"

// APIMethod represents Kodi JSON-RPC API methods
type APIMethod string

const (
	APIMethodJSONRPCPing              APIMethod = "JSONRPC.Ping"
	APIMethodJSONRPCVersion           APIMethod = "JSONRPC.Version"
	APIMethodXBMCGetInfoLabels        APIMethod = "XBMC.GetInfoLabels"
	APIMethodApplicationGetProperties APIMethod = "Application.GetProperties"
)

// APIPayload represents a Kodi JSON-RPC request
type APIPayload struct {
	Params  any       `json:"params,omitempty"`
	JSONRPC string    `json:"jsonrpc"`
	ID      string    `json:"id"`
	Method  APIMethod `json:"method"`
}

// APIError represents a Kodi JSON-RPC error
type APIError struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("error from kodi api: %s (%d)", e.Message, e.Code)
}

// APIResponse represents a Kodi JSON-RPC response
type APIResponse struct {
	Error   *APIError       `json:"error,omitempty"`
	ID      string          `json:"id"`
	JSONRPC string          `json:"jsonrpc"`
	Result  json.RawMessage `json:"result"`
}

// GetInfoLabelsParams represents parameters for XBMC.GetInfoLabels
type GetInfoLabelsParams struct {
	Labels []string `json:"labels"`
}

// GetPropertiesParams represents parameters for Application.GetProperties
type GetPropertiesParams struct {
	Properties []string `json:"properties"`
}

// AppVersion is the version property of Application.GetProperties.
type AppVersion struct {
	Revision string `json:"revision,omitempty"`
	Tag      string `json:"tag"`
	TagVer   string `json:"tagversion,omitempty"`
	Major    int    `json:"major"`
	Minor    int    `json:"minor"`
}

// String formats the version the way System.BuildVersion starts:
// "major.minor", with "-tag" appended for anything but a stable build.
func (v AppVersion) String() string {
	s := fmt.Sprintf("%d.%d", v.Major, v.Minor)
	if v.Tag != "" && !strings.EqualFold(v.Tag, "stable") {
		s += "-" + strings.ToUpper(v.Tag) + v.TagVer
	}
	return s
}

// ApplicationGetPropertiesResponse represents the response from Application.GetProperties
type ApplicationGetPropertiesResponse struct {
	Name    string     `json:"name,omitempty"`
	Version AppVersion `json:"version"`
}

// JSONRPCVersion is the API version reported by JSONRPC.Version.
type JSONRPCVersion struct {
	Major int `json:"major"`
	Minor int `json:"minor"`
	Patch int `json:"patch"`
}

// JSONRPCVersionResponse represents the response from JSONRPC.Version
type JSONRPCVersionResponse struct {
	Version JSONRPCVersion `json:"version"`
}
