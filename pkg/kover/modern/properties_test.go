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

package modern_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResumeTimeAlone(t *testing.T) {
	t.Parallel()

	li, host := newItem()
	li.SetProperty("ResumeTime", "120")

	assert.Equal(t, "120", li.GetProperty("ResumeTime"))
	assert.Equal(t, "0", li.GetProperty("TotalTime"))
	assert.InDelta(t, 120.0, host.Video().GetResumeTime(), 0)
	assert.Empty(t, host.Properties())

	li.SetProperty("totaltime", "5400")
	assert.Equal(t, "120", li.GetProperty("resumetime"))
	assert.Equal(t, "5400", li.GetProperty("TOTALTIME"))
	assert.InDelta(t, 5400.0, host.Video().GetResumeTimeTotal(), 0)
}

func TestTotalTimeAlone(t *testing.T) {
	t.Parallel()

	li, host := newItem()
	li.SetProperty("TotalTime", "90.5")

	assert.InDelta(t, 0.0, host.Video().GetResumeTime(), 0)
	assert.InDelta(t, 90.5, host.Video().GetResumeTimeTotal(), 0)
	assert.Equal(t, "90.5", li.GetProperty("TotalTime"))
}

func TestSetPropertiesSplitsResumeKeys(t *testing.T) {
	t.Parallel()

	li, host := newItem()
	li.SetProperties(map[string]string{
		"ResumeTime":  "30",
		"TotalTime":   "60",
		"IsPlayable":  "true",
		"SpecialSort": "top",
	})

	assert.Equal(t, map[string]string{"isplayable": "true", "specialsort": "top"}, host.Properties())
	assert.InDelta(t, 30.0, host.Video().GetResumeTime(), 0)
	assert.InDelta(t, 60.0, host.Video().GetResumeTimeTotal(), 0)
	assert.Equal(t, "true", li.GetProperty("IsPlayable"))
}

func TestInvalidResumeValue(t *testing.T) {
	t.Parallel()

	li, host := newItem()
	li.SetProperty("ResumeTime", "soon")
	assert.InDelta(t, 0.0, host.Video().GetResumeTime(), 0)
}
