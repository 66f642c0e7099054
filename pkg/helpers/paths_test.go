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
	"path/filepath"
	"testing"

	"github.com/ZaparooProject/kover/pkg/config"
	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
)

func TestDirsFallBackToXDG(t *testing.T) {
	t.Parallel()

	if _, ok := HasUserDir(); ok {
		t.Skip("portable user dir present next to test binary")
	}

	assert.Equal(t, filepath.Join(xdg.ConfigHome, config.AppName), ConfigDir())
	assert.Equal(t, filepath.Join(xdg.DataHome, config.AppName, "logs"), LogDir())
}
