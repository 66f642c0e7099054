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

package kodi_test

import (
	"context"
	"testing"

	"github.com/ZaparooProject/kover/pkg/config"
	"github.com/ZaparooProject/kover/pkg/kover/version"
	"github.com/ZaparooProject/kover/pkg/platforms/shared/kodi"
	"github.com/ZaparooProject/kover/pkg/testing/helpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientImplementsInterfaces(t *testing.T) {
	t.Parallel()

	var client kodi.KodiClient = kodi.NewClient(nil)
	var _ version.Source = client
	assert.Equal(t, kodi.DefaultURL, client.GetURL())
}

func TestNewClientFromConfig(t *testing.T) {
	t.Setenv(config.CfgEnv, "")

	server := helpers.NewMockKodiServer(t).WithBasicAuth("kodi", "secret")

	vals := config.BaseDefaults
	vals.Kodi.URL = server.GetURLForConfig()
	vals.Kodi.Username = "kodi"
	vals.Kodi.Password = "secret"
	cfg, err := config.NewConfig(t.TempDir(), vals)
	require.NoError(t, err)

	client := kodi.NewClient(cfg)
	assert.Equal(t, server.GetURLForConfig(), client.GetURL())
	require.NoError(t, client.Ping(context.Background()))
}
