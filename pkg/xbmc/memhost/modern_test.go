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

func TestModernVideoTagDefaults(t *testing.T) {
	t.Parallel()

	tag := memhost.NewModernItem("", "", "").GetVideoInfoTag()
	assert.Equal(t, -1, tag.GetDbId())
	assert.Equal(t, -1, tag.GetSeason())
	assert.Equal(t, -1, tag.GetEpisode())
	assert.Equal(t, []string{}, tag.GetGenres())
	assert.Empty(t, tag.GetUniqueID(""))
}

func TestModernVideoRatings(t *testing.T) {
	t.Parallel()

	tag := memhost.NewModernItem("", "", "").GetVideoInfoTag()
	tag.SetRating(7.9, 6000, "tmdb", false)
	tag.SetRating(8.3, 700000, "imdb", true)

	assert.InDelta(t, 8.3, tag.GetRating(""), 0.001)
	assert.Equal(t, 6000, tag.GetVotesAsInt("tmdb"))
	assert.Equal(t, 700000, tag.GetVotesAsInt(""))
}

func TestModernFirstRatingBecomesDefault(t *testing.T) {
	t.Parallel()

	tag := memhost.NewModernItem("", "", "").GetVideoInfoTag()
	tag.SetRating(6.1, 10, "trakt", false)
	assert.InDelta(t, 6.1, tag.GetRating(""), 0.001)
}

func TestModernEmptyRatingTypeWritesDefault(t *testing.T) {
	t.Parallel()

	tag := memhost.NewModernItem("", "", "").GetVideoInfoTag()
	tag.SetRating(8.3, 700000, "imdb", true)
	tag.SetRating(8.5, 710000, "", false)

	assert.InDelta(t, 8.5, tag.GetRating("imdb"), 0.001)
	assert.Equal(t, 710000, tag.GetVotesAsInt(""))
}

func TestModernUniqueIDs(t *testing.T) {
	t.Parallel()

	tag := memhost.NewModernItem("", "", "").Video()
	tag.SetUniqueIDs(map[string]string{"imdb": "tt0113277", "tmdb": "949"}, "tmdb")
	tag.SetUniqueID("123", "tvdb", false)

	assert.Equal(t, "949", tag.GetUniqueID(""))
	assert.Equal(t, "123", tag.GetUniqueID("tvdb"))
	assert.Equal(t, "tmdb", tag.DefaultUniqueID())

	tag.SetUniqueIDs(nil, "")
	assert.Empty(t, tag.GetUniqueID("imdb"), "SetUniqueIDs replaces the set")
	tag.SetUniqueID("tt1", "imdb", true)
	assert.Equal(t, "tt1", tag.GetUniqueID(""))
}

func TestModernSlicesAreCopied(t *testing.T) {
	t.Parallel()

	tag := memhost.NewModernItem("", "", "").GetVideoInfoTag()
	genres := []string{"Crime", "Drama"}
	tag.SetGenres(genres)
	genres[0] = "Comedy"

	got := tag.GetGenres()
	assert.Equal(t, []string{"Crime", "Drama"}, got)
	got[1] = "Horror"
	assert.Equal(t, []string{"Crime", "Drama"}, tag.GetGenres())
}

func TestModernStreamsAndResume(t *testing.T) {
	t.Parallel()

	tag := memhost.NewModernItem("", "", "").Video()
	tag.AddVideoStream(xbmc.VideoStreamDetail{Codec: "hevc", Width: 3840, Height: 2160})
	tag.AddAudioStream(xbmc.NewAudioStreamDetail())
	tag.AddSubtitleStream(xbmc.SubtitleStreamDetail{Language: "eng"})
	tag.SetResumePoint(60, 7200)
	tag.AddSeasons([]xbmc.Season{{Number: 1, Name: "One"}, {Number: 2, Name: "Two"}})

	assert.Len(t, tag.VideoStreams(), 1)
	assert.Equal(t, -1, tag.AudioStreams()[0].Channels)
	assert.Equal(t, "eng", tag.SubtitleStreams()[0].Language)
	assert.InDelta(t, 60.0, tag.GetResumeTime(), 0.001)
	assert.InDelta(t, 7200.0, tag.GetResumeTimeTotal(), 0.001)
	assert.Len(t, tag.Seasons(), 2)
}

func TestModernResidualLabels(t *testing.T) {
	t.Parallel()

	mi := memhost.NewModernItem("", "", "")
	require.NoError(t, mi.SetInfo("pictures", xbmc.InfoLabels{"exif:model": "X100"}))
	require.NoError(t, mi.SetInfo("picture", xbmc.InfoLabels{"exif:iso": 200}))
	require.ErrorIs(t, mi.SetInfo("book", nil), xbmc.ErrInvalidMediaType)

	assert.Equal(t, xbmc.InfoLabels{"exif:model": "X100", "exif:iso": 200},
		mi.ResidualLabels(xbmc.MediaPictures))
	assert.Nil(t, mi.ResidualLabels(xbmc.MediaVideo))
}

func TestModernMusicTag(t *testing.T) {
	t.Parallel()

	tag := memhost.NewModernItem("", "", "").Music()
	tag.SetDbId(12, "song")
	assert.Equal(t, 12, tag.GetDbId())
	assert.Equal(t, "song", tag.GetMediaType())

	tag.SetDbId(13, "")
	assert.Equal(t, "song", tag.GetMediaType(), "empty media type keeps the old one")

	require.NoError(t, tag.SetURL("http://a/song.flac"))
	assert.Equal(t, "http://a/song.flac", tag.GetURL())

	tag.SetVotes(42)
	assert.Equal(t, 42, tag.Votes())
	assert.Equal(t, []string{}, tag.GetGenres())
}

func TestPictureResolution(t *testing.T) {
	t.Parallel()

	tag := memhost.NewModernItem("", "", "").GetPictureInfoTag()
	assert.Empty(t, tag.GetResolution())
	tag.SetResolution(1920, 1080)
	assert.Equal(t, "1920,1080", tag.GetResolution())
}

func TestGameTag(t *testing.T) {
	t.Parallel()

	tag := memhost.NewModernItem("", "", "").GetGameInfoTag()
	tag.SetTitle("Sonic")
	tag.SetPlatform("Mega Drive")
	tag.SetYear(1991)
	tag.SetGenres([]string{"Platform"})

	assert.Equal(t, "Sonic", tag.GetTitle())
	assert.Equal(t, "Mega Drive", tag.GetPlatform())
	assert.Equal(t, 1991, tag.GetYear())
	assert.Equal(t, []string{"Platform"}, tag.GetGenres())
}
