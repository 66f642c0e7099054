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

package config

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"pgregory.net/rapid"
)

// TestPropertySaveLoadRoundTrip verifies every saved value survives a reload.
func TestPropertySaveLoadRoundTrip(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	rapid.Check(t, func(t *rapid.T) {
		host := rapid.StringMatching(`[a-z]{3,10}`).Draw(t, "host")
		port := rapid.IntRange(1, 65535).Draw(t, "port")
		build := rapid.StringMatching(`[0-9]{2}\.[0-9]{1,2}( \([0-9.]+\))?`).Draw(t, "build")
		sync := rapid.Bool().Draw(t, "sync")
		debug := rapid.Bool().Draw(t, "debug")

		f, err := os.CreateTemp(dir, "*.toml")
		if err != nil {
			t.Fatalf("create temp: %v", err)
		}
		_ = f.Close()

		cfg := &Instance{cfgPath: f.Name(), vals: BaseDefaults, defaults: BaseDefaults}
		url := "http://" + host + ":" + strconv.Itoa(port) + "/jsonrpc"
		if err := cfg.SetKodiURL(url); err != nil {
			t.Fatalf("SetKodiURL(%q): %v", url, err)
		}
		cfg.SetBuildVersion(build)
		cfg.SetAdapterSync(sync)
		cfg.SetDebugLogging(debug)
		if err := cfg.Save(); err != nil {
			t.Fatalf("save: %v", err)
		}

		reloaded := &Instance{cfgPath: filepath.Clean(f.Name()), defaults: BaseDefaults}
		if err := reloaded.Load(); err != nil {
			t.Fatalf("load: %v", err)
		}
		if reloaded.KodiURL() != url || reloaded.BuildVersion() != build ||
			reloaded.AdapterSync() != sync || reloaded.DebugLogging() != debug {
			t.Fatalf("round trip mismatch: %+v", reloaded.vals)
		}
	})
}
