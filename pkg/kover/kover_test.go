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

package kover_test

import (
	"context"
	"testing"

	"github.com/ZaparooProject/kover/pkg/kover"
	"github.com/ZaparooProject/kover/pkg/kover/legacy"
	"github.com/ZaparooProject/kover/pkg/kover/modern"
	"github.com/ZaparooProject/kover/pkg/kover/version"
	"github.com/ZaparooProject/kover/pkg/xbmc"
	"github.com/ZaparooProject/kover/pkg/xbmc/memhost"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var hosts = kover.Hosts{
	Legacy: memhost.NewLegacyHost,
	Modern: memhost.NewModernHost,
}

// Activation is process-wide, so these tests run sequentially.

func TestActivateLegacy(t *testing.T) {
	kover.Reset()
	t.Cleanup(kover.Reset)

	assert.Equal(t, kover.Unpatched, kover.CurrentState())

	f, err := kover.Activate(context.Background(), version.StaticSource("19.4"), hosts)
	require.NoError(t, err)
	assert.Equal(t, kover.PatchedLegacy, f.Kind())
	assert.Equal(t, kover.PatchedLegacy, kover.CurrentState())
	assert.Equal(t, 19, f.Version().Major)

	li := f.NewListItem("Title", "", "")
	assert.IsType(t, &legacy.ListItem{}, li)
	assert.Equal(t, "Title", li.GetLabel())
}

func TestActivateModern(t *testing.T) {
	kover.Reset()
	t.Cleanup(kover.Reset)

	f, err := kover.Activate(context.Background(), version.StaticSource("19.90.101"), hosts)
	require.NoError(t, err)
	assert.Equal(t, kover.PatchedModern, f.Kind())
	assert.IsType(t, &modern.ListItem{}, f.NewListItem("", "", ""))
}

func TestActivateIsIdempotent(t *testing.T) {
	kover.Reset()
	t.Cleanup(kover.Reset)

	first, err := kover.Activate(context.Background(), version.StaticSource("20.2"), hosts)
	require.NoError(t, err)

	second, err := kover.Activate(context.Background(), version.StaticSource("18.9"), kover.Hosts{})
	require.NoError(t, err)
	assert.Same(t, first, second)
	assert.Equal(t, kover.PatchedModern, kover.CurrentState())

	installed, ok := kover.Installed()
	require.True(t, ok)
	assert.Same(t, first, installed)
}

func TestActivateMissingHost(t *testing.T) {
	kover.Reset()
	t.Cleanup(kover.Reset)

	_, err := kover.Activate(context.Background(), version.StaticSource("21.0"), kover.Hosts{Legacy: hosts.Legacy})
	require.ErrorIs(t, err, kover.ErrNoHost)
	assert.Equal(t, kover.Unpatched, kover.CurrentState())

	f, err := kover.Activate(context.Background(), version.StaticSource("21.0"), hosts)
	require.NoError(t, err)
	assert.Equal(t, kover.PatchedModern, f.Kind())
}

func TestRoundTripThroughEitherAdapter(t *testing.T) {
	for _, build := range []string{"18.9.701", "20.1"} {
		t.Run(build, func(t *testing.T) {
			kover.Reset()
			t.Cleanup(kover.Reset)

			f, err := kover.Activate(context.Background(), version.StaticSource(build), hosts)
			require.NoError(t, err)

			bulk := f.NewListItem("", "", "")
			require.NoError(t, bulk.SetInfo("video", xbmc.InfoLabels{"title": "X"}))
			assert.Equal(t, "X", bulk.GetVideoInfoTag().GetTitle())

			structured := f.NewListItem("", "", "")
			structured.GetVideoInfoTag().SetTitle("Y")
			assert.Equal(t, "Y", structured.GetVideoInfoTag().GetTitle())

			structured.GetVideoInfoTag().SetCast([]xbmc.Actor{xbmc.NewActor("A", "Hero", 0, "")})
			assert.Equal(t, "A: Hero", structured.GetVideoInfoTag().GetCast())
		})
	}
}

func TestLegacyOptions(t *testing.T) {
	kover.Reset()
	t.Cleanup(kover.Reset)

	f, err := kover.Activate(context.Background(), version.StaticSource("18.0"), hosts,
		kover.WithLegacyOptions(legacy.WithSync(false)))
	require.NoError(t, err)

	li := f.NewListItem("", "", "")
	li.GetVideoInfoTag().SetTitle("Unsynced")
	assert.Empty(t, li.GetVideoInfoTag().GetTitle())
}

func TestStateString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "unpatched", kover.Unpatched.String())
	assert.Equal(t, "legacy", kover.PatchedLegacy.String())
	assert.Equal(t, "modern", kover.PatchedModern.String())
}

func TestNewFactoryDoesNotInstall(t *testing.T) {
	kover.Reset()
	t.Cleanup(kover.Reset)

	f, err := kover.NewFactory(version.New("19.4"), hosts)
	require.NoError(t, err)
	assert.Equal(t, kover.PatchedLegacy, f.Kind())
	assert.Equal(t, kover.Unpatched, kover.CurrentState())

	_, err = kover.NewFactory(version.New("20.0"), kover.Hosts{Legacy: hosts.Legacy})
	require.ErrorIs(t, err, kover.ErrNoHost)
}
