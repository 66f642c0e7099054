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

package memhost

import (
	"fmt"
	"maps"
	"strings"

	"github.com/ZaparooProject/kover/pkg/xbmc"
)

type rating struct {
	value float64
	votes int
}

// LegacyItem is an in-memory Kodi 19 list item. All metadata lives in one
// flat label dictionary per media type.
type LegacyItem struct {
	info      map[xbmc.MediaType]xbmc.InfoLabels
	ratings   map[string]rating
	uniqueIDs map[string]string
	streams   map[xbmc.StreamKind][]map[string]any
	video     *legacyVideoTag
	music     *legacyMusicTag
	item
	defaultRating string
	defaultID     string
	cast          []map[string]any
	seasons       []xbmc.Season
	artwork       []xbmc.Artwork
}

var _ xbmc.LegacyItem = (*LegacyItem)(nil)

// NewLegacyItem creates an empty legacy list item.
func NewLegacyItem(label, label2, path string) *LegacyItem {
	li := &LegacyItem{
		item:      newItem(label, label2, path),
		info:      make(map[xbmc.MediaType]xbmc.InfoLabels),
		ratings:   make(map[string]rating),
		uniqueIDs: make(map[string]string),
		streams:   make(map[xbmc.StreamKind][]map[string]any),
	}
	li.video = &legacyVideoTag{li: li}
	li.music = &legacyMusicTag{li: li}
	return li
}

// NewLegacyHost matches the host constructor signature kover.Activate takes.
func NewLegacyHost(label, label2, path string) xbmc.LegacyItem {
	return NewLegacyItem(label, label2, path)
}

// SetInfo merges labels into the dictionary of the given media type. Keys
// are stored folded, the way Kodi matches them.
func (li *LegacyItem) SetInfo(mediaType string, labels xbmc.InfoLabels) error {
	mt, err := xbmc.ParseMediaType(mediaType)
	if err != nil {
		return err
	}
	dst, ok := li.info[mt]
	if !ok {
		dst = make(xbmc.InfoLabels)
		li.info[mt] = dst
	}
	for k, v := range labels {
		dst[xbmc.FoldKey(k)] = v
	}
	return nil
}

// Labels returns a copy of the label dictionary of a media type.
func (li *LegacyItem) Labels(mediaType xbmc.MediaType) xbmc.InfoLabels {
	return maps.Clone(li.info[mediaType])
}

func (li *LegacyItem) labelValue(mt xbmc.MediaType, key string) any {
	return li.info[mt][key]
}

func (li *LegacyItem) SetCast(actors []map[string]any) error {
	cast := make([]map[string]any, 0, len(actors))
	for i, a := range actors {
		for k := range a {
			switch k {
			case "name", "role", "thumbnail", "order":
			default:
				return fmt.Errorf("%w: actor %d: unknown key %q", xbmc.ErrInvalidValue, i, k)
			}
		}
		cast = append(cast, maps.Clone(a))
	}
	li.cast = cast
	return nil
}

// Cast returns the cast as last set.
func (li *LegacyItem) Cast() []map[string]any {
	return li.cast
}

func (li *LegacyItem) SetRating(ratingType string, value float64, votes int, isDefault bool) {
	li.ratings[ratingType] = rating{value: value, votes: votes}
	if isDefault {
		li.defaultRating = ratingType
	}
}

func (li *LegacyItem) ratingFor(key string) rating {
	if key == "" {
		key = li.defaultRating
	}
	return li.ratings[key]
}

func (li *LegacyItem) GetRating(key string) float64 { return li.ratingFor(key).value }
func (li *LegacyItem) GetVotes(key string) int      { return li.ratingFor(key).votes }

func (li *LegacyItem) SetUniqueIDs(values map[string]string, defaultID string) {
	maps.Copy(li.uniqueIDs, values)
	if defaultID != "" {
		li.defaultID = defaultID
	}
}

func (li *LegacyItem) GetUniqueID(key string) string {
	return li.uniqueIDs[key]
}

// DefaultUniqueID returns the type label of the default unique ID.
func (li *LegacyItem) DefaultUniqueID() string {
	return li.defaultID
}

func (li *LegacyItem) AddStreamInfo(kind string, values map[string]any) error {
	k, err := xbmc.ParseStreamKind(kind)
	if err != nil {
		return err
	}
	li.streams[k] = append(li.streams[k], maps.Clone(values))
	return nil
}

// Streams returns the stream maps added for a kind, in order.
func (li *LegacyItem) Streams(kind xbmc.StreamKind) []map[string]any {
	return li.streams[kind]
}

func (li *LegacyItem) AddSeason(number int, name string) {
	li.seasons = append(li.seasons, xbmc.Season{Number: number, Name: name})
}

// Seasons returns the seasons added, in order.
func (li *LegacyItem) Seasons() []xbmc.Season {
	return li.seasons
}

func (li *LegacyItem) AddAvailableArtwork(url, artType string, opts xbmc.ArtworkOptions) error {
	season := -1
	if opts.Season != "" {
		season = labelInt(opts.Season)
	}
	li.artwork = append(li.artwork, xbmc.Artwork{
		URL:      url,
		ArtType:  artType,
		Preview:  opts.Preview,
		Referrer: opts.Referrer,
		Cache:    opts.Cache,
		Post:     opts.Post,
		IsGz:     opts.IsGz,
		Season:   season,
	})
	return nil
}

// Artwork returns the available artwork added, in order.
func (li *LegacyItem) Artwork() []xbmc.Artwork {
	return li.artwork
}

func (li *LegacyItem) GetVideoInfoTag() xbmc.LegacyVideoTag { return li.video }
func (li *LegacyItem) GetMusicInfoTag() xbmc.LegacyMusicTag { return li.music }

type legacyVideoTag struct {
	li *LegacyItem
}

func (t *legacyVideoTag) str(key string) string {
	return labelString(t.li.labelValue(xbmc.MediaVideo, key), " / ")
}

func (t *legacyVideoTag) num(key string) int {
	return labelInt(t.li.labelValue(xbmc.MediaVideo, key))
}

func (t *legacyVideoTag) GetDbId() int               { return t.num("dbid") } //nolint:revive // Kodi API name
func (t *legacyVideoTag) GetYear() int               { return t.num("year") }
func (t *legacyVideoTag) GetTitle() string           { return t.str("title") }
func (t *legacyVideoTag) GetOriginalTitle() string   { return t.str("originaltitle") }
func (t *legacyVideoTag) GetPlot() string            { return t.str("plot") }
func (t *legacyVideoTag) GetPlotOutline() string     { return t.str("plotoutline") }
func (t *legacyVideoTag) GetTagLine() string         { return t.str("tagline") }
func (t *legacyVideoTag) GetTVShowTitle() string     { return t.str("tvshowtitle") }
func (t *legacyVideoTag) GetMediaType() string       { return t.str("mediatype") }
func (t *legacyVideoTag) GetMpaa() string            { return t.str("mpaa") }
func (t *legacyVideoTag) GetTrailer() string         { return t.str("trailer") }
func (t *legacyVideoTag) GetPath() string            { return t.str("path") }
func (t *legacyVideoTag) GetFilenameAndPath() string { return t.str("filenameandpath") }
func (t *legacyVideoTag) GetIMDBNumber() string      { return t.str("imdbnumber") }
func (t *legacyVideoTag) GetAlbum() string           { return t.str("album") }
func (t *legacyVideoTag) GetSeason() int             { return t.num("season") }
func (t *legacyVideoTag) GetEpisode() int            { return t.num("episode") }
func (t *legacyVideoTag) GetUserRating() int         { return t.num("userrating") }
func (t *legacyVideoTag) GetPlayCount() int          { return t.num("playcount") }
func (t *legacyVideoTag) GetTrackNumber() int        { return t.num("tracknumber") }
func (t *legacyVideoTag) GetDuration() int           { return t.num("duration") }
func (t *legacyVideoTag) GetGenre() string           { return t.str("genre") }
func (t *legacyVideoTag) GetDirector() string        { return t.str("director") }
func (t *legacyVideoTag) GetVotes() string           { return t.str("votes") }
func (t *legacyVideoTag) GetLastPlayed() string      { return t.str("lastplayed") }
func (t *legacyVideoTag) GetPremiered() string       { return t.str("premiered") }
func (t *legacyVideoTag) GetFirstAired() string      { return t.str("aired") }

func (t *legacyVideoTag) GetArtist() []string {
	return labelStrings(t.li.labelValue(xbmc.MediaVideo, "artist"))
}

// GetWritingCredits joins writers one per line.
func (t *legacyVideoTag) GetWritingCredits() string {
	if v := t.li.labelValue(xbmc.MediaVideo, "writer"); v != nil {
		return labelString(v, "\n")
	}
	return labelString(t.li.labelValue(xbmc.MediaVideo, "credits"), "\n")
}

func (t *legacyVideoTag) GetCast() string {
	lines := make([]string, 0, len(t.li.cast))
	for _, a := range t.li.cast {
		lines = append(lines, fmt.Sprintf("%s: %s", labelString(a["name"], ""), labelString(a["role"], "")))
	}
	return strings.Join(lines, "\n")
}

type legacyMusicTag struct {
	li *LegacyItem
}

func (t *legacyMusicTag) str(key string) string {
	return labelString(t.li.labelValue(xbmc.MediaMusic, key), " / ")
}

func (t *legacyMusicTag) num(key string) int {
	return labelInt(t.li.labelValue(xbmc.MediaMusic, key))
}

func (t *legacyMusicTag) GetDbId() int                  { return t.num("dbid") } //nolint:revive // Kodi API name
func (t *legacyMusicTag) GetYear() int                  { return t.num("year") }
func (t *legacyMusicTag) GetURL() string                { return t.str("url") }
func (t *legacyMusicTag) GetTitle() string              { return t.str("title") }
func (t *legacyMusicTag) GetMediaType() string          { return t.str("mediatype") }
func (t *legacyMusicTag) GetArtist() string             { return t.str("artist") }
func (t *legacyMusicTag) GetAlbumArtist() string        { return t.str("albumartist") }
func (t *legacyMusicTag) GetAlbum() string              { return t.str("album") }
func (t *legacyMusicTag) GetComment() string            { return t.str("comment") }
func (t *legacyMusicTag) GetLyrics() string             { return t.str("lyrics") }
func (t *legacyMusicTag) GetMusicBrainzTrackID() string { return t.str("musicbrainztrackid") }
func (t *legacyMusicTag) GetMusicBrainzAlbumID() string { return t.str("musicbrainzalbumid") }
func (t *legacyMusicTag) GetDuration() int              { return t.num("duration") }
func (t *legacyMusicTag) GetTrack() int                 { return t.num("tracknumber") }
func (t *legacyMusicTag) GetDisc() int                  { return t.num("discnumber") }
func (t *legacyMusicTag) GetListeners() int             { return t.num("listeners") }
func (t *legacyMusicTag) GetPlayCount() int             { return t.num("playcount") }
func (t *legacyMusicTag) GetUserRating() int            { return t.num("userrating") }
func (t *legacyMusicTag) GetGenre() string              { return t.str("genre") }
func (t *legacyMusicTag) GetLastPlayed() string         { return t.str("lastplayed") }

func (t *legacyMusicTag) GetMusicBrainzArtistID() []string {
	return labelStrings(t.li.labelValue(xbmc.MediaMusic, "musicbrainzartistid"))
}

func (t *legacyMusicTag) GetRating() float64 {
	return labelFloat(t.li.labelValue(xbmc.MediaMusic, "rating"))
}
