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
	"slices"
	"strconv"

	"github.com/ZaparooProject/kover/pkg/xbmc"
	"github.com/rs/zerolog/log"
)

// labelAliases maps setter field names to the info label the legacy host
// stores them under, where the two differ.
var labelAliases = map[string]string{
	"directors":      "director",
	"writers":        "writer",
	"genres":         "genre",
	"countries":      "country",
	"studios":        "studio",
	"tags":           "tag",
	"showlinks":      "showlink",
	"artists":        "artist",
	"firstaired":     "aired",
	"tvshowstatus":   "status",
	"productioncode": "code",
	"track":          "tracknumber",
	"disc":           "discnumber",
}

// LabelFor returns the info label a setter field is synced to.
func LabelFor(field string) string {
	field = xbmc.FoldKey(field)
	if label, ok := labelAliases[field]; ok {
		return label
	}
	return field
}

// tag is the state shared by the video and music wrappers.
type tag struct {
	item      xbmc.LegacyItem
	data      map[string]any
	mediaType xbmc.MediaType
	sync      bool
}

func newTag(item xbmc.LegacyItem, mediaType xbmc.MediaType, sync bool) tag {
	return tag{
		item:      item,
		mediaType: mediaType,
		sync:      sync,
		data:      make(map[string]any),
	}
}

// Set stores a field in the side table and, with sync on, writes it to the
// host as a single info label.
func (t *tag) Set(field string, value any) error {
	key := xbmc.FoldKey(field)
	t.data[key] = value
	if !t.sync {
		return nil
	}

	label := LabelFor(key)
	err := t.item.SetInfo(string(t.mediaType), xbmc.InfoLabels{label: value})
	if err != nil {
		return fmt.Errorf("failed to sync %s label %q: %w", t.mediaType, label, err)
	}
	return nil
}

// Get reads a field back from the side table.
func (t *tag) Get(field string) (any, error) {
	v, ok := t.data[xbmc.FoldKey(field)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", xbmc.ErrAttributeNotFound, field)
	}
	return v, nil
}

// set is Set for the typed setters, which have no error result.
func (t *tag) set(field string, value any) {
	if err := t.Set(field, value); err != nil {
		log.Error().Err(err).Str("field", field).Msg("info tag setter failed")
	}
}

func (t *tag) cachedInt(field string) int {
	v, ok := t.data[field]
	if !ok {
		return 0
	}
	i, err := xbmc.AsInt(v)
	if err != nil {
		return 0
	}
	return i
}

func (t *tag) SetMediaType(mediaType string) { t.set("mediatype", mediaType) }
func (t *tag) SetDuration(duration int)      { t.set("duration", duration) }
func (t *tag) SetYear(year int)              { t.set("year", year) }
func (t *tag) SetTitle(title string)         { t.set("title", title) }
func (t *tag) SetAlbum(album string)         { t.set("album", album) }
func (t *tag) SetLastPlayed(datetime string) { t.set("lastplayed", datetime) }
func (t *tag) SetUserRating(rating int)      { t.set("userrating", rating) }
func (t *tag) SetGenres(genres []string)     { t.set("genres", genres) }

// cachedList reads a list field from the side table. A scalar string is
// wrapped in a list; ok is false when nothing usable was set.
func (t *tag) cachedList(field string) ([]string, bool) {
	v, ok := t.data[field]
	if !ok {
		return nil, false
	}
	if list, err := xbmc.AsStrings(v); err == nil {
		return slices.Clone(list), true
	}
	if s, err := xbmc.AsString(v); err == nil {
		return kodiList(s), true
	}
	return nil, false
}

// listOrLabel prefers the list set through the tag over the flat label.
func (t *tag) listOrLabel(field, label string) []string {
	if list, ok := t.cachedList(field); ok {
		return list
	}
	return kodiList(label)
}

// kodiList wraps a scalar label in a list; an empty label is an empty list.
func kodiList(s string) []string {
	if s == "" {
		return []string{}
	}
	return []string{s}
}

func formatSeconds(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func parseSeconds(s string) float64 {
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		log.Debug().Err(err).Str("value", s).Msg("unreadable resume property")
		return 0
	}
	return f
}

func (t *tag) logError(err error, what string) {
	log.Error().Err(err).Str("media_type", string(t.mediaType)).Msgf("failed to add %s", what)
}
