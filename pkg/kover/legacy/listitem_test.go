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

package legacy_test

import (
	"testing"

	"github.com/ZaparooProject/kover/pkg/kover/legacy"
	"github.com/ZaparooProject/kover/pkg/xbmc"
	"github.com/ZaparooProject/kover/pkg/xbmc/memhost"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newItem(opts ...legacy.Option) (*legacy.ListItem, *memhost.LegacyItem) {
	host := memhost.NewLegacyItem("Label", "", "plugin://plugin.video.test/play")
	return legacy.NewListItem(host, opts...), host
}

func TestTagsAreCached(t *testing.T) {
	t.Parallel()

	li, _ := newItem()
	assert.Same(t, li.Video(), li.GetVideoInfoTag())
	assert.Same(t, li.Music(), li.GetMusicInfoTag())
}

func TestSettersSyncInfoLabels(t *testing.T) {
	t.Parallel()

	li, host := newItem()
	tag := li.GetVideoInfoTag()

	tag.SetTitle("Big Buck Bunny")
	tag.SetYear(2008)
	tag.SetDirectors([]string{"Sacha Goedegebure"})
	tag.SetFirstAired("2008-05-30")
	tag.SetTvShowStatus("Ended")

	labels := host.Labels(xbmc.MediaVideo)
	assert.Equal(t, "Big Buck Bunny", labels["title"])
	assert.Equal(t, 2008, labels["year"])
	assert.Equal(t, []string{"Sacha Goedegebure"}, labels["director"])
	assert.Equal(t, "2008-05-30", labels["aired"])
	assert.Equal(t, "Ended", labels["status"])

	assert.Equal(t, "Big Buck Bunny", tag.GetTitle())
	assert.Equal(t, 2008, tag.GetYear())
	assert.Equal(t, []string{"Sacha Goedegebure"}, tag.GetDirectors())
	assert.Equal(t, "2008-05-30", tag.GetFirstAiredAsW3C())
}

func TestBulkLabelsReadThroughStructuredGetters(t *testing.T) {
	t.Parallel()

	li, _ := newItem()
	require.NoError(t, li.SetInfo("video", xbmc.InfoLabels{
		"Title":  "X",
		"genre":  "Animation",
		"writer": []string{"A", "B"},
	}))

	tag := li.GetVideoInfoTag()
	assert.Equal(t, "X", tag.GetTitle())
	assert.Equal(t, []string{"Animation"}, tag.GetGenres())
	assert.Equal(t, "Animation", tag.GetGenre())
	assert.Equal(t, []string{"A", "B"}, tag.GetWriters())
}

func TestSyncDisabled(t *testing.T) {
	t.Parallel()

	li, host := newItem(legacy.WithSync(false))
	tag := li.Video()

	tag.SetTitle("X")
	tag.SetDbId(42)

	assert.Empty(t, host.Labels(xbmc.MediaVideo))
	assert.Equal(t, 42, tag.GetDbId())

	v, err := tag.Get("Title")
	require.NoError(t, err)
	assert.Equal(t, "X", v)

	_, err = tag.Get("plot")
	require.ErrorIs(t, err, xbmc.ErrAttributeNotFound)
}

func TestCachedGettersDefaults(t *testing.T) {
	t.Parallel()

	li, _ := newItem()
	tag := li.GetVideoInfoTag()

	assert.Equal(t, 0, tag.GetDbId())
	assert.Equal(t, 0, tag.GetYear())
	assert.Empty(t, tag.GetGenres())
	assert.Empty(t, tag.GetDirectors())
	assert.Empty(t, tag.GetWriters())
	assert.Empty(t, tag.GetActors())
	assert.InDelta(t, 0.0, tag.GetResumeTime(), 0)
	assert.InDelta(t, 0.0, tag.GetResumeTimeTotal(), 0)
}

func TestGenericSetUsesLabelName(t *testing.T) {
	t.Parallel()

	li, host := newItem()
	require.NoError(t, li.Video().Set("ProductionCode", "BBB-01"))

	assert.Equal(t, "BBB-01", host.Labels(xbmc.MediaVideo)["code"])
	assert.Equal(t, "code", legacy.LabelFor("productionCode"))
	assert.Equal(t, "plot", legacy.LabelFor("Plot"))
}
