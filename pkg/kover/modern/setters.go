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

	"github.com/ZaparooProject/kover/pkg/xbmc"
)

// binding applies a value through one typed setter. It reports false when
// the tag has no such setter.
type binding func(tag, value any) (bool, error)

func bind[T, V any](conv func(any) (V, error), call func(T, V)) binding {
	return func(tag, value any) (bool, error) {
		t, ok := tag.(T)
		if !ok {
			return false, nil
		}
		v, err := conv(value)
		if err != nil {
			return true, err
		}
		call(t, v)
		return true, nil
	}
}

// Single-method views of the structured tags, one per setter signature.
type (
	titleSetter            interface{ SetTitle(string) }
	originalTitleSetter    interface{ SetOriginalTitle(string) }
	sortTitleSetter        interface{ SetSortTitle(string) }
	plotSetter             interface{ SetPlot(string) }
	plotOutlineSetter      interface{ SetPlotOutline(string) }
	tagLineSetter          interface{ SetTagLine(string) }
	tvShowTitleSetter      interface{ SetTvShowTitle(string) }
	tvShowStatusSetter     interface{ SetTvShowStatus(string) }
	mpaaSetter             interface{ SetMpaa(string) }
	trailerSetter          interface{ SetTrailer(string) }
	pathSetter             interface{ SetPath(string) }
	premieredSetter        interface{ SetPremiered(string) }
	firstAiredSetter       interface{ SetFirstAired(string) }
	lastPlayedSetter       interface{ SetLastPlayed(string) }
	dateAddedSetter        interface{ SetDateAdded(string) }
	mediaTypeSetter        interface{ SetMediaType(string) }
	setSetter              interface{ SetSet(string) }
	setOverviewSetter      interface{ SetSetOverview(string) }
	productionCodeSetter   interface{ SetProductionCode(string) }
	episodeGuideSetter     interface{ SetEpisodeGuide(string) }
	albumSetter            interface{ SetAlbum(string) }
	artistSetter           interface{ SetArtist(string) }
	commentSetter          interface{ SetComment(string) }
	lyricsSetter           interface{ SetLyrics(string) }
	mbTrackIDSetter        interface{ SetMusicBrainzTrackID(string) }
	mbAlbumIDSetter        interface{ SetMusicBrainzAlbumID(string) }
	dateTimeTakenSetter    interface{ SetDateTimeTaken(string) }
	platformSetter         interface{ SetPlatform(string) }
	publisherSetter        interface{ SetPublisher(string) }
	developerSetter        interface{ SetDeveloper(string) }
	overviewSetter         interface{ SetOverview(string) }
	gameClientSetter       interface{ SetGameClient(string) }
	genresSetter           interface{ SetGenres([]string) }
	countriesSetter        interface{ SetCountries([]string) }
	directorsSetter        interface{ SetDirectors([]string) }
	writersSetter          interface{ SetWriters([]string) }
	studiosSetter          interface{ SetStudios([]string) }
	tagsSetter             interface{ SetTags([]string) }
	showLinksSetter        interface{ SetShowLinks([]string) }
	artistsSetter          interface{ SetArtists([]string) }
	mbArtistIDSetter       interface{ SetMusicBrainzArtistID([]string) }
	mbAlbumArtistIDSetter  interface{ SetMusicBrainzAlbumArtistID([]string) }
	yearSetter             interface{ SetYear(int) }
	episodeSetter          interface{ SetEpisode(int) }
	seasonSetter           interface{ SetSeason(int) }
	sortEpisodeSetter      interface{ SetSortEpisode(int) }
	sortSeasonSetter       interface{ SetSortSeason(int) }
	top250Setter           interface{ SetTop250(int) }
	setIDSetter            interface{ SetSetId(int) } //nolint:revive // Kodi API name
	trackNumberSetter      interface{ SetTrackNumber(int) }
	trackSetter            interface{ SetTrack(int) }
	discSetter             interface{ SetDisc(int) }
	userRatingSetter       interface{ SetUserRating(int) }
	videoPlaycountSetter   interface{ SetPlaycount(int) }
	musicPlayCountSetter   interface{ SetPlayCount(int) }
	durationSetter         interface{ SetDuration(int) }
	listenersSetter        interface{ SetListeners(int) }
	musicVotesSetter       interface{ SetVotes(int) }
	videoDbIDSetter        interface{ SetDbId(int) }         //nolint:revive // Kodi API name
	musicDbIDSetter        interface{ SetDbId(int, string) } //nolint:revive // Kodi API name
	musicRatingSetter      interface{ SetRating(float64) }
	videoRatingSetter      interface {
		SetRating(rating float64, votes int, ratingType string, isDefault bool)
	}
	videoVotesSetter interface {
		GetRating(ratingType string) float64
		SetRating(rating float64, votes int, ratingType string, isDefault bool)
	}
)

var (
	str     = xbmc.AsString
	strs    = asStringList
	integer = xbmc.AsInt
	float   = xbmc.AsFloat
)

// setters binds each setter name of the transform table to the typed
// setters it may mean. A name can map to different signatures on different
// tags, and bindings are tried in order.
var setters = map[string][]binding{
	"setTitle":         {bind(str, titleSetter.SetTitle)},
	"setOriginalTitle": {bind(str, originalTitleSetter.SetOriginalTitle)},
	"setSortTitle":     {bind(str, sortTitleSetter.SetSortTitle)},
	"setPlot":          {bind(str, plotSetter.SetPlot)},
	"setPlotOutline":   {bind(str, plotOutlineSetter.SetPlotOutline)},
	"setTagLine":       {bind(str, tagLineSetter.SetTagLine)},
	"setTvShowTitle":   {bind(str, tvShowTitleSetter.SetTvShowTitle)},
	"setTvShowStatus":  {bind(str, tvShowStatusSetter.SetTvShowStatus)},
	"setMpaa":          {bind(str, mpaaSetter.SetMpaa)},
	"setTrailer":       {bind(str, trailerSetter.SetTrailer)},
	"setPath":          {bind(str, pathSetter.SetPath)},
	"setPremiered":     {bind(str, premieredSetter.SetPremiered)},
	"setFirstAired":    {bind(str, firstAiredSetter.SetFirstAired)},
	"setLastPlayed":    {bind(str, lastPlayedSetter.SetLastPlayed)},
	"setDateAdded":     {bind(str, dateAddedSetter.SetDateAdded)},
	"setMediaType":     {bind(str, mediaTypeSetter.SetMediaType)},
	"setSet":           {bind(str, setSetter.SetSet)},
	"setSetOverview":   {bind(str, setOverviewSetter.SetSetOverview)},
	"setProductionCode": {
		bind(str, productionCodeSetter.SetProductionCode),
	},
	"setEpisodeGuide":        {bind(str, episodeGuideSetter.SetEpisodeGuide)},
	"setAlbum":               {bind(str, albumSetter.SetAlbum)},
	"setComment":             {bind(str, commentSetter.SetComment)},
	"setLyrics":              {bind(str, lyricsSetter.SetLyrics)},
	"setMusicBrainzTrackID":  {bind(str, mbTrackIDSetter.SetMusicBrainzTrackID)},
	"setMusicBrainzAlbumID":  {bind(str, mbAlbumIDSetter.SetMusicBrainzAlbumID)},
	"setMusicBrainzArtistID": {bind(strs, mbArtistIDSetter.SetMusicBrainzArtistID)},
	"setMusicBrainzAlbumArtistID": {
		bind(strs, mbAlbumArtistIDSetter.SetMusicBrainzAlbumArtistID),
	},
	"setDateTimeTaken": {bind(str, dateTimeTakenSetter.SetDateTimeTaken)},
	"setPlatform":      {bind(str, platformSetter.SetPlatform)},
	"setPublisher":     {bind(str, publisherSetter.SetPublisher)},
	"setDeveloper":     {bind(str, developerSetter.SetDeveloper)},
	"setOverview":      {bind(str, overviewSetter.SetOverview)},
	"setGameClient":    {bind(str, gameClientSetter.SetGameClient)},
	"setGenres":        {bind(strs, genresSetter.SetGenres)},
	"setCountries":     {bind(strs, countriesSetter.SetCountries)},
	"setDirectors":     {bind(strs, directorsSetter.SetDirectors)},
	"setWriters":       {bind(strs, writersSetter.SetWriters)},
	"setStudios":       {bind(strs, studiosSetter.SetStudios)},
	"setTags":          {bind(strs, tagsSetter.SetTags)},
	"setShowLinks":     {bind(strs, showLinksSetter.SetShowLinks)},
	"setArtists": {
		bind(strs, artistsSetter.SetArtists),
		bind(asJoinedString, artistSetter.SetArtist),
	},
	"setYear":        {bind(integer, yearSetter.SetYear)},
	"setEpisode":     {bind(integer, episodeSetter.SetEpisode)},
	"setSeason":      {bind(integer, seasonSetter.SetSeason)},
	"setSortEpisode": {bind(integer, sortEpisodeSetter.SetSortEpisode)},
	"setSortSeason":  {bind(integer, sortSeasonSetter.SetSortSeason)},
	"setTop250":      {bind(integer, top250Setter.SetTop250)},
	"setSetId":       {bind(integer, setIDSetter.SetSetId)},
	"setDisc":        {bind(integer, discSetter.SetDisc)},
	"setUserRating":  {bind(integer, userRatingSetter.SetUserRating)},
	"setDuration":    {bind(integer, durationSetter.SetDuration)},
	"setListeners":   {bind(integer, listenersSetter.SetListeners)},
	"setTrackNumber": {
		bind(integer, trackNumberSetter.SetTrackNumber),
		bind(integer, trackSetter.SetTrack),
	},
	"setPlaycount": {
		bind(integer, videoPlaycountSetter.SetPlaycount),
		bind(integer, musicPlayCountSetter.SetPlayCount),
	},
	"setDbId": {
		bind(integer, videoDbIDSetter.SetDbId),
		bind(integer, func(t musicDbIDSetter, id int) { t.SetDbId(id, "") }),
	},
	"setRating": {
		bind(float, func(t videoRatingSetter, r float64) { t.SetRating(r, 0, "", false) }),
		bind(float, musicRatingSetter.SetRating),
	},
	// The video tag has no vote setter of its own; votes are stored with
	// the default rating.
	"setVotes": {
		bind(integer, musicVotesSetter.SetVotes),
		bind(integer, func(t videoVotesSetter, votes int) { t.SetRating(t.GetRating(""), votes, "", false) }),
	},
}

// applySetter calls the first binding of name the tag supports.
func applySetter(tag any, name string, value any) error {
	for _, b := range setters[name] {
		ok, err := b(tag, value)
		if !ok {
			continue
		}
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		return nil
	}
	return fmt.Errorf("%w: %s on %T", xbmc.ErrUnsupportedField, name, tag)
}
