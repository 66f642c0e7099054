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

	"github.com/ZaparooProject/kover/pkg/kover/modern"
	"github.com/ZaparooProject/kover/pkg/xbmc"
	"github.com/ZaparooProject/kover/pkg/xbmc/memhost"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupIgnoresCase(t *testing.T) {
	t.Parallel()

	for _, key := range []string{"title", "Title", "TITLE", "Exif:Resolution", "LastPlaye", "lastplayed"} {
		_, ok := modern.Lookup(key)
		assert.True(t, ok, key)
	}
	_, ok := modern.Lookup("size")
	assert.False(t, ok)
}

func TestEveryKeyHasSteps(t *testing.T) {
	t.Parallel()

	keys := modern.Keys()
	assert.Len(t, keys, 65)
	for _, key := range keys {
		steps, ok := modern.Lookup(key)
		require.True(t, ok)
		assert.NotEmpty(t, steps, key)
	}
}

// TestEverySetterIsBound checks each setter name resolves on at least one
// structured tag.
func TestEverySetterIsBound(t *testing.T) {
	t.Parallel()

	probe := func(name string) any {
		switch name {
		case "setGenres", "setCountries", "setDirectors", "setWriters", "setStudios",
			"setTags", "setShowLinks", "setArtists", "setMusicBrainzArtistID",
			"setMusicBrainzAlbumArtistID":
			return []string{"x"}
		case "setRating":
			return 1.5
		case "setYear", "setEpisode", "setSeason", "setSortEpisode", "setSortSeason",
			"setTop250", "setSetId", "setDisc", "setUserRating", "setDuration",
			"setListeners", "setTrackNumber", "setPlaycount", "setDbId", "setVotes":
			return 1
		default:
			return "x"
		}
	}

	for _, name := range modern.SetterNames() {
		host := memhost.NewModernItem("", "", "")
		tags := []any{host.GetVideoInfoTag(), host.GetMusicInfoTag(), host.GetPictureInfoTag(), host.GetGameInfoTag()}
		bound := false
		for _, tag := range tags {
			err := modern.ApplySetter(tag, name, probe(name))
			if err == nil {
				bound = true
				break
			}
			require.ErrorIs(t, err, xbmc.ErrUnsupportedField, name)
		}
		assert.True(t, bound, "setter %s has no binding", name)
	}
}
