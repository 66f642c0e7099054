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

package memhost_test

import (
	"testing"

	"github.com/ZaparooProject/kover/pkg/xbmc"
	"github.com/ZaparooProject/kover/pkg/xbmc/memhost"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLegacySetInfoMergesFoldedLabels(t *testing.T) {
	t.Parallel()

	li := memhost.NewLegacyItem("Heat", "", "/movies/heat.mkv")
	require.NoError(t, li.SetInfo("Video", xbmc.InfoLabels{"Title": "Heat", "year": 1995}))
	require.NoError(t, li.SetInfo("video", xbmc.InfoLabels{"genre": []string{"Crime", "Drama"}}))

	assert.Equal(t, xbmc.InfoLabels{
		"title": "Heat",
		"year":  1995,
		"genre": []string{"Crime", "Drama"},
	}, li.Labels(xbmc.MediaVideo))

	tag := li.GetVideoInfoTag()
	assert.Equal(t, "Heat", tag.GetTitle())
	assert.Equal(t, 1995, tag.GetYear())
	assert.Equal(t, "Crime / Drama", tag.GetGenre())

	err := li.SetInfo("podcast", xbmc.InfoLabels{"title": "x"})
	require.ErrorIs(t, err, xbmc.ErrInvalidMediaType)
}

func TestLegacyLabelsIsCopy(t *testing.T) {
	t.Parallel()

	li := memhost.NewLegacyItem("", "", "")
	require.NoError(t, li.SetInfo("music", xbmc.InfoLabels{"title": "Teardrop"}))

	labels := li.Labels(xbmc.MediaMusic)
	labels["title"] = "Angel"
	assert.Equal(t, "Teardrop", li.GetMusicInfoTag().GetTitle())
}

func TestLegacyStringLabelsReadAsNumbers(t *testing.T) {
	t.Parallel()

	li := memhost.NewLegacyItem("", "", "")
	require.NoError(t, li.SetInfo("music", xbmc.InfoLabels{
		"tracknumber": "3",
		"discnumber":  2.0,
		"rating":      "4.5",
		"duration":    "long",
	}))

	tag := li.GetMusicInfoTag()
	assert.Equal(t, 3, tag.GetTrack())
	assert.Equal(t, 2, tag.GetDisc())
	assert.InDelta(t, 4.5, tag.GetRating(), 0.001)
	assert.Equal(t, 0, tag.GetDuration())
	assert.Equal(t, []string{}, tag.GetMusicBrainzArtistID())
}

func TestLegacyCast(t *testing.T) {
	t.Parallel()

	li := memhost.NewLegacyItem("", "", "")
	require.NoError(t, li.SetCast([]map[string]any{
		{"name": "Al Pacino", "role": "Hanna"},
		{"name": "Robert De Niro", "role": "McCauley", "order": 1},
	}))
	assert.Equal(t, "Al Pacino: Hanna\nRobert De Niro: McCauley", li.GetVideoInfoTag().GetCast())

	err := li.SetCast([]map[string]any{{"name": "Val Kilmer", "age": 34}})
	require.ErrorIs(t, err, xbmc.ErrInvalidValue)
	assert.Len(t, li.Cast(), 2, "rejected cast leaves the old one")
}

func TestLegacyRatingsAndUniqueIDs(t *testing.T) {
	t.Parallel()

	li := memhost.NewLegacyItem("", "", "")
	li.SetRating("imdb", 8.3, 700000, true)
	li.SetRating("tmdb", 7.9, 6000, false)

	assert.InDelta(t, 8.3, li.GetRating(""), 0.001)
	assert.Equal(t, 6000, li.GetVotes("tmdb"))
	assert.Equal(t, 0, li.GetVotes("trakt"))

	li.SetUniqueIDs(map[string]string{"imdb": "tt0113277"}, "imdb")
	li.SetUniqueIDs(map[string]string{"tmdb": "949"}, "")
	assert.Equal(t, "tt0113277", li.GetUniqueID("imdb"))
	assert.Equal(t, "949", li.GetUniqueID("tmdb"))
	assert.Equal(t, "imdb", li.DefaultUniqueID())
}

func TestLegacyStreamsSeasonsArtwork(t *testing.T) {
	t.Parallel()

	li := memhost.NewLegacyItem("", "", "")
	require.NoError(t, li.AddStreamInfo("video", map[string]any{"codec": "h264"}))
	require.ErrorIs(t, li.AddStreamInfo("Video", nil), xbmc.ErrInvalidStreamKind)
	assert.Equal(t, []map[string]any{{"codec": "h264"}}, li.Streams(xbmc.StreamVideo))

	li.AddSeason(1, "Pilot Season")
	assert.Equal(t, []xbmc.Season{{Number: 1, Name: "Pilot Season"}}, li.Seasons())

	require.NoError(t, li.AddAvailableArtwork("http://a/poster.jpg", "poster", xbmc.ArtworkOptions{}))
	require.NoError(t, li.AddAvailableArtwork("http://a/s2.jpg", "poster", xbmc.ArtworkOptions{Season: "2"}))
	art := li.Artwork()
	require.Len(t, art, 2)
	assert.Equal(t, -1, art[0].Season)
	assert.Equal(t, 2, art[1].Season)
}

func TestItemProperties(t *testing.T) {
	t.Parallel()

	li := memhost.NewLegacyItem("Heat", "1995", "/movies/heat.mkv")
	li.SetProperty("ResumeTime", "60")
	li.SetProperties(map[string]string{"TotalTime": "120"})

	assert.Equal(t, "60", li.GetProperty("resumetime"))
	assert.Equal(t, map[string]string{"resumetime": "60", "totaltime": "120"}, li.Properties())

	li.SetArt(map[string]string{"poster": "p.jpg"})
	li.SetArt(map[string]string{"fanart": "f.jpg"})
	assert.Equal(t, "p.jpg", li.GetArt("poster"))
	assert.Equal(t, "f.jpg", li.GetArt("fanart"))

	li.SetLabel2("1996")
	assert.Equal(t, "1996", li.GetLabel2())
	assert.Equal(t, "/movies/heat.mkv", li.GetPath())
}
