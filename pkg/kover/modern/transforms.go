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

package modern

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/ZaparooProject/kover/pkg/xbmc"
)

// Step is one stage of an info label transform: a value coercion, a named
// tag setter or a composite that drives the tag itself.
type Step struct {
	coerce    func(v any) (any, error)
	composite func(tag, v any) error
	name      string
	setter    bool
}

func (s Step) String() string {
	return s.name
}

// apply runs the step and returns the value handed to the next one.
func (s Step) apply(tag, v any) (any, error) {
	switch {
	case s.coerce != nil:
		return s.coerce(v)
	case s.composite != nil:
		return nil, s.composite(tag, v)
	default:
		return nil, applySetter(tag, s.name, v)
	}
}

func setter(name string) Step {
	return Step{name: name, setter: true}
}

func composite(name string, fn func(tag, v any) error) Step {
	return Step{name: name, composite: fn}
}

var (
	oneOrMore = Step{name: "one_or_more", coerce: func(v any) (any, error) {
		return OneOrMore(v), nil
	}}
	intOrNone = Step{name: "int_or_none", coerce: func(v any) (any, error) {
		return IntOrNone(v)
	}}
	floatOrNone = Step{name: "float_or_none", coerce: func(v any) (any, error) {
		return FloatOrNone(v)
	}}
)

// transforms maps lowercase info label keys to their steps. It is never
// written after package init.
var transforms = map[string][]Step{
	// video
	"aired":         {setter("setFirstAired")},
	"album":         {setter("setAlbum")},
	"artist":        {setter("setArtists")},
	"castandrole":   {composite("set_cast_and_role", setCastAndRole)},
	"cast":          {composite("set_cast", setCast)},
	"code":          {setter("setProductionCode")},
	"country":       {oneOrMore, setter("setCountries")},
	"credits":       {oneOrMore, setter("setWriters")},
	"dateadded":     {setter("setDateAdded")},
	"dbid":          {intOrNone, setter("setDbId")},
	"director":      {oneOrMore, setter("setDirectors")},
	"duration":      {intOrNone, setter("setDuration")},
	"episodeguide":  {setter("setEpisodeGuide")},
	"episode":       {intOrNone, setter("setEpisode")},
	"genre":         {oneOrMore, setter("setGenres")},
	"imdbnumber":    {composite("set_imdb_number", setIMDBNumber)},
	"lastplaye":     {setter("setLastPlayed")},
	"lastplayed":    {setter("setLastPlayed")},
	"mediatype":     {setter("setMediaType")},
	"mpaa":          {setter("setMpaa")},
	"originaltitle": {setter("setOriginalTitle")},
	"path":          {setter("setPath")},
	"playcount":     {intOrNone, setter("setPlaycount")},
	"plotoutline":   {setter("setPlotOutline")},
	"plot":          {setter("setPlot")},
	"premiered":     {setter("setPremiered")},
	"rating":        {floatOrNone, setter("setRating")},
	"season":        {intOrNone, setter("setSeason")},
	"setid":         {intOrNone, setter("setSetId")},
	"setoverview":   {setter("setSetOverview")},
	"set":           {setter("setSet")},
	"showlink":      {oneOrMore, setter("setShowLinks")},
	"sortepisode":   {intOrNone, setter("setSortEpisode")},
	"sortseason":    {intOrNone, setter("setSortSeason")},
	"sorttitle":     {setter("setSortTitle")},
	"status":        {setter("setTvShowStatus")},
	"studio":        {oneOrMore, setter("setStudios")},
	"tagline":       {setter("setTagLine")},
	"tag":           {oneOrMore, setter("setTags")},
	"title":         {setter("setTitle")},
	"top250":        {intOrNone, setter("setTop250")},
	"tracknumber":   {intOrNone, setter("setTrackNumber")},
	"trailer":       {setter("setTrailer")},
	"tvshowtitle":   {setter("setTvShowTitle")},
	"userrating":    {intOrNone, setter("setUserRating")},
	"votes":         {intOrNone, setter("setVotes")},
	"watched":       {intOrNone, setter("setPlaycount")},
	"writer":        {oneOrMore, setter("setWriters")},
	"year":          {intOrNone, setter("setYear")},

	// music
	"comment":                  {setter("setComment")},
	"discnumber":               {setter("setDisc")},
	"listeners":                {intOrNone, setter("setListeners")},
	"lyrics":                   {setter("setLyrics")},
	"musicbrainzalbumartistid": {setter("setMusicBrainzAlbumArtistID")},
	"musicbrainzalbumid":       {setter("setMusicBrainzAlbumID")},
	"musicbrainzartistid":      {setter("setMusicBrainzArtistID")},
	"musicbrainztrackid":       {setter("setMusicBrainzTrackID")},

	// picture
	"exif:resolution": {composite("set_exif_resolution", setExifResolution)},
	"exif:exiftime":   {setter("setDateTimeTaken")},

	// game
	"developer":  {setter("setDeveloper")},
	"gameclient": {setter("setGameClient")},
	"genres":     {setter("setGenres")},
	"overview":   {setter("setOverview")},
	"platform":   {setter("setPlatform")},
	"publisher":  {setter("setPublisher")},
}

// Lookup returns the steps for an info label key, ignoring case.
func Lookup(key string) ([]Step, bool) {
	steps, ok := transforms[xbmc.FoldKey(key)]
	return steps, ok
}

// Keys returns every info label key with a transform, sorted.
func Keys() []string {
	return slices.Sorted(maps.Keys(transforms))
}

// SetterNames returns the setter names the transforms refer to, sorted.
func SetterNames() []string {
	seen := make(map[string]struct{})
	for _, steps := range transforms {
		for _, s := range steps {
			if s.setter {
				seen[s.name] = struct{}{}
			}
		}
	}
	return slices.Sorted(maps.Keys(seen))
}

type castSetter interface{ SetCast([]xbmc.Actor) }

// setCastAndRole takes (name, role) pairs.
func setCastAndRole(tag, v any) error {
	t, ok := tag.(castSetter)
	if !ok {
		return fmt.Errorf("%w: cast on %T", xbmc.ErrUnsupportedField, tag)
	}
	entries, err := asList(v)
	if err != nil {
		return err
	}
	actors := make([]xbmc.Actor, 0, len(entries))
	for i, e := range entries {
		a, err := actorFromTuple(e)
		if err != nil {
			return fmt.Errorf("actor %d: %w", i, err)
		}
		actors = append(actors, a)
	}
	t.SetCast(actors)
	return nil
}

// setCast takes actor maps or positional tuples. An empty cast is ignored.
func setCast(tag, v any) error {
	t, ok := tag.(castSetter)
	if !ok {
		return fmt.Errorf("%w: cast on %T", xbmc.ErrUnsupportedField, tag)
	}
	entries, err := asList(v)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return nil
	}
	actors := make([]xbmc.Actor, 0, len(entries))
	for i, e := range entries {
		var a xbmc.Actor
		if m, isMap := e.(map[string]any); isMap {
			a, err = xbmc.DecodeActor(m)
		} else {
			a, err = actorFromTuple(e)
		}
		if err != nil {
			return fmt.Errorf("actor %d: %w", i, err)
		}
		actors = append(actors, a)
	}
	t.SetCast(actors)
	return nil
}

// actorFromTuple reads the positional actor fields name, role, order and
// thumbnail, all optional.
func actorFromTuple(v any) (xbmc.Actor, error) {
	a := xbmc.Actor{Order: -1}
	fields, err := asList(v)
	if err != nil {
		return a, err
	}
	if len(fields) > 4 {
		return a, fmt.Errorf("%w: actor takes at most 4 fields, got %d", xbmc.ErrInvalidValue, len(fields))
	}
	for i, f := range fields {
		switch i {
		case 0:
			a.Name, err = xbmc.AsString(f)
		case 1:
			a.Role, err = xbmc.AsString(f)
		case 2:
			a.Order, err = xbmc.AsInt(f)
		case 3:
			a.Thumbnail, err = xbmc.AsString(f)
		}
		if err != nil {
			return a, err
		}
	}
	return a, nil
}

type uniqueIDSetter interface {
	SetUniqueID(uniqueID, idType string, isDefault bool)
}

func setIMDBNumber(tag, v any) error {
	t, ok := tag.(uniqueIDSetter)
	if !ok {
		return fmt.Errorf("%w: imdbnumber on %T", xbmc.ErrUnsupportedField, tag)
	}
	imdb, err := xbmc.AsString(v)
	if err != nil {
		imdb = fmt.Sprint(v)
	}
	t.SetUniqueID(imdb, "imdb", false)
	return nil
}

type resolutionSetter interface{ SetResolution(width, height int) }

// setExifResolution parses a "W,H" resolution.
func setExifResolution(tag, v any) error {
	t, ok := tag.(resolutionSetter)
	if !ok {
		return fmt.Errorf("%w: exif:resolution on %T", xbmc.ErrUnsupportedField, tag)
	}
	s, err := xbmc.AsString(v)
	if err != nil {
		return err
	}
	w, h, found := strings.Cut(s, ",")
	if !found || strings.Contains(h, ",") {
		return fmt.Errorf("%w: resolution %q is not W,H", xbmc.ErrInvalidValue, s)
	}
	width, err := strconv.Atoi(strings.TrimSpace(w))
	if err != nil {
		return fmt.Errorf("%w: resolution width %q", xbmc.ErrInvalidValue, w)
	}
	height, err := strconv.Atoi(strings.TrimSpace(h))
	if err != nil {
		return fmt.Errorf("%w: resolution height %q", xbmc.ErrInvalidValue, h)
	}
	t.SetResolution(width, height)
	return nil
}

// asList accepts the list shapes a label value arrives in from Go code or a
// decoded document.
func asList(v any) ([]any, error) {
	switch l := v.(type) {
	case []any:
		return l, nil
	case []string:
		return toAny(l), nil
	case [][]string:
		return toAny(l), nil
	case [][]any:
		return toAny(l), nil
	case []map[string]any:
		return toAny(l), nil
	default:
		return nil, fmt.Errorf("%w: expected list, got %T", xbmc.ErrInvalidValue, v)
	}
}

func toAny[T any](s []T) []any {
	out := make([]any, len(s))
	for i, v := range s {
		out[i] = v
	}
	return out
}
