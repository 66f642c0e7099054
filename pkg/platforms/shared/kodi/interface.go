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
	"context"
	"encoding/json"
)

// KodiClient defines the interface for the Kodi API operations used to
// find out which list item API a running Kodi offers.
type KodiClient interface {
	// BuildVersion returns the raw System.BuildVersion string, falling back
	// to the Application.GetProperties version when the label is empty.
	BuildVersion(ctx context.Context) (string, error)

	// ApplicationVersion returns the structured application version
	ApplicationVersion(ctx context.Context) (AppVersion, error)

	// APIVersion returns the JSON-RPC API version
	APIVersion(ctx context.Context) (JSONRPCVersion, error)

	// GetInfoLabels reads info labels by name
	GetInfoLabels(ctx context.Context, labels ...string) (map[string]string, error)

	// Ping checks the JSON-RPC endpoint answers
	Ping(ctx context.Context) error

	// GetURL returns the current Kodi API URL
	GetURL() string

	// SetURL sets the Kodi API URL
	SetURL(url string)

	// APIRequest makes a raw JSON-RPC request to Kodi API
	APIRequest(ctx context.Context, method APIMethod, params any) (json.RawMessage, error)
}
