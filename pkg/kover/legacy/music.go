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

package legacy

import (
	"fmt"

	"github.com/ZaparooProject/kover/pkg/xbmc"
)

// MusicTag is the structured music tag over a legacy host.
type MusicTag struct {
	xbmc.LegacyMusicTag
	tag
}

var _ xbmc.MusicTag = (*MusicTag)(nil)

func (t *MusicTag) GetDbId() int               { return t.cachedInt("dbid") } //nolint:revive // Kodi API name
func (t *MusicTag) GetYear() int               { return t.cachedInt("year") }
func (t *MusicTag) GetLastPlayedAsW3C() string { return t.GetLastPlayed() }

func (t *MusicTag) GetGenres() []string {
	return t.listOrLabel("genres", t.GetGenre())
}

// SetDbId records the database id, and the media type when one is given.
func (t *MusicTag) SetDbId(dbID int, mediaType string) { //nolint:revive // Kodi API name
	t.set("dbid", dbID)
	if mediaType != "" {
		t.set("mediatype", mediaType)
	}
}

// SetURL cannot be expressed as a legacy info label and always fails.
func (t *MusicTag) SetURL(string) error {
	return fmt.Errorf("music tag SetURL: %w", xbmc.ErrNotImplemented)
}

func (t *MusicTag) SetArtist(artist string)         { t.set("artist", artist) }
func (t *MusicTag) SetAlbumArtist(artist string)    { t.set("albumartist", artist) }
func (t *MusicTag) SetComment(comment string)       { t.set("comment", comment) }
func (t *MusicTag) SetLyrics(lyrics string)         { t.set("lyrics", lyrics) }
func (t *MusicTag) SetMusicBrainzTrackID(id string) { t.set("musicbrainztrackid", id) }
func (t *MusicTag) SetMusicBrainzAlbumID(id string) { t.set("musicbrainzalbumid", id) }
func (t *MusicTag) SetMusicBrainzArtistID(ids []string) {
	t.set("musicbrainzartistid", ids)
}

func (t *MusicTag) SetMusicBrainzAlbumArtistID(ids []string) {
	t.set("musicbrainzalbumartistid", ids)
}

// Track and disc are kept under the label names Kodi reads them from.

func (t *MusicTag) SetTrack(track int) { t.set(LabelFor("track"), track) }
func (t *MusicTag) SetDisc(disc int)   { t.set(LabelFor("disc"), disc) }

func (t *MusicTag) SetListeners(listeners int) { t.set("listeners", listeners) }
func (t *MusicTag) SetPlayCount(playcount int) { t.set("playcount", playcount) }
func (t *MusicTag) SetVotes(votes int)         { t.set("votes", votes) }
func (t *MusicTag) SetRating(rating float64)   { t.set("rating", rating) }
