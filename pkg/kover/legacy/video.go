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
	"strconv"
	"strings"

	"github.com/ZaparooProject/kover/pkg/xbmc"
)

// VideoTag is the structured video tag over a legacy host.
type VideoTag struct {
	xbmc.LegacyVideoTag
	tag
}

var _ xbmc.VideoTag = (*VideoTag)(nil)

// GetDbId returns the database id last set through this tag, or 0.
func (t *VideoTag) GetDbId() int { return t.cachedInt("dbid") } //nolint:revive // Kodi API name

// GetYear returns the year last set through this tag, or 0.
func (t *VideoTag) GetYear() int { return t.cachedInt("year") }

// GetGenres returns the genres set through this tag, else the genre label
// as a one-element list.
func (t *VideoTag) GetGenres() []string {
	return t.listOrLabel("genres", t.GetGenre())
}

func (t *VideoTag) GetDirectors() []string {
	return t.listOrLabel("directors", t.GetDirector())
}

// GetWriters splits the newline separated writing credits.
func (t *VideoTag) GetWriters() []string {
	credits := t.GetWritingCredits()
	if credits == "" {
		return []string{}
	}
	return strings.Split(credits, "\n")
}

// GetActors always returns an empty cast: the flat cast string is not
// parsed back into records.
func (t *VideoTag) GetActors() []xbmc.Actor {
	return []xbmc.Actor{}
}

func (t *VideoTag) GetRating(ratingType string) float64 {
	return t.item.GetRating(ratingType)
}

func (t *VideoTag) GetVotesAsInt(ratingType string) int {
	return t.item.GetVotes(ratingType)
}

func (t *VideoTag) GetUniqueID(key string) string {
	return t.item.GetUniqueID(key)
}

// The legacy host keeps dates in the form they were set, so the W3C
// getters return them unchanged.

func (t *VideoTag) GetLastPlayedAsW3C() string { return t.GetLastPlayed() }
func (t *VideoTag) GetPremieredAsW3C() string  { return t.GetPremiered() }
func (t *VideoTag) GetFirstAiredAsW3C() string { return t.GetFirstAired() }

// GetResumeTime reads the ResumeTime item property.
func (t *VideoTag) GetResumeTime() float64 {
	return parseSeconds(t.item.GetProperty(xbmc.PropResumeTime))
}

// GetResumeTimeTotal reads the TotalTime item property.
func (t *VideoTag) GetResumeTimeTotal() float64 {
	return parseSeconds(t.item.GetProperty(xbmc.PropTotalTime))
}

func (t *VideoTag) SetDbId(dbID int) { t.set("dbid", dbID) } //nolint:revive // Kodi API name

func (t *VideoTag) SetUniqueIDs(values map[string]string, defaultID string) {
	t.item.SetUniqueIDs(values, defaultID)
}

// SetUniqueID sets a single unique id. The legacy call takes the default
// as a type name, so isDefault becomes idType or "".
func (t *VideoTag) SetUniqueID(uniqueID, idType string, isDefault bool) {
	defaultID := ""
	if isDefault {
		defaultID = idType
	}
	t.item.SetUniqueIDs(map[string]string{idType: uniqueID}, defaultID)
}

func (t *VideoTag) SetRating(rating float64, votes int, ratingType string, isDefault bool) {
	t.item.SetRating(ratingType, rating, votes, isDefault)
}

func (t *VideoTag) SetEpisode(episode int)          { t.set("episode", episode) }
func (t *VideoTag) SetSeason(season int)            { t.set("season", season) }
func (t *VideoTag) SetSortEpisode(episode int)      { t.set("sortepisode", episode) }
func (t *VideoTag) SetSortSeason(season int)        { t.set("sortseason", season) }
func (t *VideoTag) SetTop250(top250 int)            { t.set("top250", top250) }
func (t *VideoTag) SetSetId(setID int)              { t.set("setid", setID) } //nolint:revive // Kodi API name
func (t *VideoTag) SetTrackNumber(track int)        { t.set("tracknumber", track) }
func (t *VideoTag) SetPlaycount(playcount int)      { t.set("playcount", playcount) }
func (t *VideoTag) SetEpisodeGuide(guide string)    { t.set("episodeguide", guide) }
func (t *VideoTag) SetMpaa(mpaa string)             { t.set("mpaa", mpaa) }
func (t *VideoTag) SetPlot(plot string)             { t.set("plot", plot) }
func (t *VideoTag) SetPlotOutline(outline string)   { t.set("plotoutline", outline) }
func (t *VideoTag) SetOriginalTitle(title string)   { t.set("originaltitle", title) }
func (t *VideoTag) SetSortTitle(title string)       { t.set("sorttitle", title) }
func (t *VideoTag) SetTagLine(tagline string)       { t.set("tagline", tagline) }
func (t *VideoTag) SetTvShowTitle(title string)     { t.set("tvshowtitle", title) }
func (t *VideoTag) SetTvShowStatus(status string)   { t.set("tvshowstatus", status) }
func (t *VideoTag) SetTrailer(trailer string)       { t.set("trailer", trailer) }
func (t *VideoTag) SetPath(path string)             { t.set("path", path) }
func (t *VideoTag) SetFilenameAndPath(path string)  { t.set("filenameandpath", path) }
func (t *VideoTag) SetIMDBNumber(imdb string)       { t.set("imdbnumber", imdb) }
func (t *VideoTag) SetPremiered(date string)        { t.set("premiered", date) }
func (t *VideoTag) SetFirstAired(date string)       { t.set("firstaired", date) }
func (t *VideoTag) SetDateAdded(datetime string)    { t.set("dateadded", datetime) }
func (t *VideoTag) SetSet(set string)               { t.set("set", set) }
func (t *VideoTag) SetSetOverview(overview string)  { t.set("setoverview", overview) }
func (t *VideoTag) SetProductionCode(code string)   { t.set("productioncode", code) }
func (t *VideoTag) SetCountries(countries []string) { t.set("countries", countries) }
func (t *VideoTag) SetDirectors(directors []string) { t.set("directors", directors) }
func (t *VideoTag) SetStudios(studios []string)     { t.set("studios", studios) }
func (t *VideoTag) SetWriters(writers []string)     { t.set("writers", writers) }
func (t *VideoTag) SetTags(tags []string)           { t.set("tags", tags) }
func (t *VideoTag) SetShowLinks(links []string)     { t.set("showlinks", links) }
func (t *VideoTag) SetArtists(artists []string)     { t.set("artists", artists) }

// SetCast flattens the actors to the list of maps the legacy call takes.
func (t *VideoTag) SetCast(actors []xbmc.Actor) {
	cast := make([]map[string]any, 0, len(actors))
	for i := range actors {
		cast = append(cast, actors[i].Map())
	}
	if err := t.item.SetCast(cast); err != nil {
		t.logError(err, "cast")
	}
}

// SetResumePoint writes the ResumeTime property, and TotalTime when a total
// is given.
func (t *VideoTag) SetResumePoint(time, totalTime float64) {
	t.item.SetProperty(xbmc.PropResumeTime, formatSeconds(time))
	if totalTime != 0 {
		t.item.SetProperty(xbmc.PropTotalTime, formatSeconds(totalTime))
	}
}

func (t *VideoTag) AddSeason(number int, name string) {
	t.item.AddSeason(number, name)
}

// AddSeasons adds each season with its own host call. Nil adds nothing.
func (t *VideoTag) AddSeasons(seasons []xbmc.Season) {
	for _, s := range seasons {
		t.item.AddSeason(s.Number, s.Name)
	}
}

func (t *VideoTag) AddVideoStream(stream xbmc.VideoStreamDetail) {
	t.addStream(xbmc.StreamVideo, stream.Map())
}

func (t *VideoTag) AddAudioStream(stream xbmc.AudioStreamDetail) {
	t.addStream(xbmc.StreamAudio, stream.Map())
}

func (t *VideoTag) AddSubtitleStream(stream xbmc.SubtitleStreamDetail) {
	t.addStream(xbmc.StreamSubtitle, stream.Map())
}

func (t *VideoTag) addStream(kind xbmc.StreamKind, values map[string]any) {
	if err := t.item.AddStreamInfo(string(kind), values); err != nil {
		t.logError(err, string(kind)+" stream")
	}
}

// AddAvailableArtwork forwards to the item call, where the season is a
// string and absent rather than -1.
func (t *VideoTag) AddAvailableArtwork(art xbmc.Artwork) {
	season := ""
	if art.Season >= 0 {
		season = strconv.Itoa(art.Season)
	}
	err := t.item.AddAvailableArtwork(art.URL, art.ArtType, xbmc.ArtworkOptions{
		Preview:  art.Preview,
		Referrer: art.Referrer,
		Cache:    art.Cache,
		Season:   season,
		Post:     art.Post,
		IsGz:     art.IsGz,
	})
	if err != nil {
		t.logError(err, "artwork")
	}
}
