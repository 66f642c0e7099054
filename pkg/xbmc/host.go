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

// Package xbmc describes the two shapes of the Kodi list item scripting API
// this module adapts between, and the single surface addon code is written
// against.
//
// The legacy shape (Kodi 19 and older) carries metadata as a flat label
// dictionary set in one SetInfo call, with a handful of single-key rating,
// unique ID and stream calls on the list item itself. The modern shape
// (Kodi 20 and newer) moves all of it onto structured info tags with typed
// setters and getters. ListItem, VideoTag and MusicTag are the union of
// both, which is what the adapters in pkg/kover present.
package xbmc

// Item holds the operations both API shapes share unchanged.
type Item interface {
	GetLabel() string
	SetLabel(label string)
	GetLabel2() string
	SetLabel2(label string)
	GetPath() string
	SetPath(path string)
	GetArt(key string) string
	SetArt(values map[string]string)

	// Property keys are case-insensitive.
	GetProperty(key string) string
	SetProperty(key, value string)
	SetProperties(values map[string]string)
}

// FlatInfo is the list item level metadata API of the legacy shape.
type FlatInfo interface {
	// SetInfo applies a bulk label dictionary to the tag of the given
	// media type (video, music, pictures or game).
	SetInfo(mediaType string, labels InfoLabels) error
	// SetCast takes actors as maps with name, role, thumbnail and order.
	SetCast(actors []map[string]any) error
	SetRating(ratingType string, rating float64, votes int, isDefault bool)
	GetRating(key string) float64
	GetVotes(key string) int
	SetUniqueIDs(values map[string]string, defaultID string)
	GetUniqueID(key string) string
	// AddStreamInfo takes a video, audio or subtitle stream as a map.
	AddStreamInfo(kind string, values map[string]any) error
	AddSeason(number int, name string)
	AddAvailableArtwork(url, artType string, opts ArtworkOptions) error
}

// VideoInfoGetters are the video getters both shapes spell the same way.
type VideoInfoGetters interface {
	GetTitle() string
	GetOriginalTitle() string
	GetPlot() string
	GetPlotOutline() string
	GetTagLine() string
	GetTVShowTitle() string
	GetMediaType() string
	GetMpaa() string
	GetTrailer() string
	GetPath() string
	GetFilenameAndPath() string
	GetIMDBNumber() string
	GetAlbum() string
	GetArtist() []string
	GetSeason() int
	GetEpisode() int
	GetUserRating() int
	GetPlayCount() int
	GetTrackNumber() int
	GetDuration() int
}

// LegacyVideoGetters are the scalar video getters only the legacy shape has.
type LegacyVideoGetters interface {
	GetGenre() string
	GetDirector() string
	GetWritingCredits() string
	// GetCast renders the cast as "Name: Role" lines.
	GetCast() string
	GetVotes() string
	GetLastPlayed() string
	GetPremiered() string
	GetFirstAired() string
}

// MusicInfoGetters are the music getters both shapes spell the same way.
type MusicInfoGetters interface {
	GetURL() string
	GetTitle() string
	GetMediaType() string
	GetArtist() string
	GetAlbumArtist() string
	GetAlbum() string
	GetComment() string
	GetLyrics() string
	GetMusicBrainzTrackID() string
	GetMusicBrainzAlbumID() string
	GetMusicBrainzArtistID() []string
	GetDuration() int
	GetTrack() int
	GetDisc() int
	GetListeners() int
	GetPlayCount() int
	GetUserRating() int
	GetRating() float64
}

// LegacyMusicGetters are the music getters only the legacy shape has.
type LegacyMusicGetters interface {
	GetGenre() string
	GetLastPlayed() string
}

// LegacyVideoTag is the video info tag of a legacy host. It is read-only;
// all writes go through FlatInfo on the owning item.
type LegacyVideoTag interface {
	VideoInfoGetters
	LegacyVideoGetters
	GetDbId() int //nolint:revive // Kodi API name
	GetYear() int
}

// LegacyMusicTag is the music info tag of a legacy host.
type LegacyMusicTag interface {
	MusicInfoGetters
	LegacyMusicGetters
	GetDbId() int //nolint:revive // Kodi API name
	GetYear() int
}

// LegacyItem is a list item of a legacy host.
type LegacyItem interface {
	Item
	FlatInfo
	GetVideoInfoTag() LegacyVideoTag
	GetMusicInfoTag() LegacyMusicTag
}

// VideoInfoTag is the structured video info tag of a modern host.
type VideoInfoTag interface {
	VideoInfoGetters

	GetDbId() int //nolint:revive // Kodi API name
	GetYear() int
	GetGenres() []string
	GetDirectors() []string
	GetWriters() []string
	GetActors() []Actor
	GetRating(ratingType string) float64
	GetVotesAsInt(ratingType string) int
	GetUniqueID(key string) string
	GetLastPlayedAsW3C() string
	GetPremieredAsW3C() string
	GetFirstAiredAsW3C() string
	GetResumeTime() float64
	GetResumeTimeTotal() float64

	SetDbId(dbID int) //nolint:revive // Kodi API name
	SetUniqueIDs(values map[string]string, defaultID string)
	SetUniqueID(uniqueID, idType string, isDefault bool)
	SetYear(year int)
	SetEpisode(episode int)
	SetSeason(season int)
	SetSortEpisode(episode int)
	SetSortSeason(season int)
	SetTop250(top250 int)
	SetSetId(setID int) //nolint:revive // Kodi API name
	SetTrackNumber(track int)
	SetUserRating(rating int)
	SetPlaycount(playcount int)
	SetDuration(duration int)
	SetRating(rating float64, votes int, ratingType string, isDefault bool)
	SetEpisodeGuide(guide string)
	SetMpaa(mpaa string)
	SetPlot(plot string)
	SetPlotOutline(outline string)
	SetTitle(title string)
	SetOriginalTitle(title string)
	SetSortTitle(title string)
	SetTagLine(tagline string)
	SetTvShowTitle(title string)
	SetTvShowStatus(status string)
	SetTrailer(trailer string)
	SetPath(path string)
	SetFilenameAndPath(path string)
	SetIMDBNumber(imdb string)
	SetPremiered(date string)
	SetFirstAired(date string)
	SetLastPlayed(datetime string)
	SetDateAdded(datetime string)
	SetMediaType(mediaType string)
	SetSet(set string)
	SetSetOverview(overview string)
	SetProductionCode(code string)
	SetAlbum(album string)
	SetGenres(genres []string)
	SetCountries(countries []string)
	SetDirectors(directors []string)
	SetStudios(studios []string)
	SetWriters(writers []string)
	SetTags(tags []string)
	SetShowLinks(links []string)
	SetArtists(artists []string)
	SetCast(actors []Actor)
	SetResumePoint(time, totalTime float64)
	AddSeason(number int, name string)
	AddSeasons(seasons []Season)
	AddVideoStream(stream VideoStreamDetail)
	AddAudioStream(stream AudioStreamDetail)
	AddSubtitleStream(stream SubtitleStreamDetail)
	AddAvailableArtwork(art Artwork)
}

// MusicInfoTag is the structured music info tag of a modern host.
type MusicInfoTag interface {
	MusicInfoGetters

	GetDbId() int //nolint:revive // Kodi API name
	GetYear() int
	GetGenres() []string
	GetLastPlayedAsW3C() string

	SetDbId(dbID int, mediaType string) //nolint:revive // Kodi API name
	// SetURL returns an error on hosts that cannot store a URL on the tag.
	SetURL(url string) error
	SetTitle(title string)
	SetMediaType(mediaType string)
	SetArtist(artist string)
	SetAlbumArtist(artist string)
	SetAlbum(album string)
	SetComment(comment string)
	SetLyrics(lyrics string)
	SetLastPlayed(datetime string)
	SetMusicBrainzTrackID(id string)
	SetMusicBrainzAlbumID(id string)
	SetMusicBrainzArtistID(ids []string)
	SetMusicBrainzAlbumArtistID(ids []string)
	SetGenres(genres []string)
	SetDuration(duration int)
	SetYear(year int)
	SetTrack(track int)
	SetDisc(disc int)
	SetListeners(listeners int)
	SetPlayCount(playcount int)
	SetUserRating(rating int)
	SetVotes(votes int)
	SetRating(rating float64)
}

// PictureInfoTag is the structured picture info tag of a modern host.
type PictureInfoTag interface {
	GetResolution() string
	GetDateTimeTaken() string
	SetResolution(width, height int)
	SetDateTimeTaken(datetime string)
}

// GameInfoTag is the structured game info tag of a modern host.
type GameInfoTag interface {
	GetTitle() string
	GetPlatform() string
	GetGenres() []string
	GetPublisher() string
	GetDeveloper() string
	GetOverview() string
	GetYear() int
	GetGameClient() string
	SetTitle(title string)
	SetPlatform(platform string)
	SetGenres(genres []string)
	SetPublisher(publisher string)
	SetDeveloper(developer string)
	SetOverview(overview string)
	SetYear(year int)
	SetGameClient(client string)
}

// ModernItem is a list item of a modern host. SetInfo is still present but
// only used for labels no structured setter covers.
type ModernItem interface {
	Item
	SetInfo(mediaType string, labels InfoLabels) error
	GetVideoInfoTag() VideoInfoTag
	GetMusicInfoTag() MusicInfoTag
	GetPictureInfoTag() PictureInfoTag
	GetGameInfoTag() GameInfoTag
}

// VideoTag is the video tag surface addon code sees.
type VideoTag interface {
	VideoInfoTag
	LegacyVideoGetters
}

// MusicTag is the music tag surface addon code sees.
type MusicTag interface {
	MusicInfoTag
	LegacyMusicGetters
}

// ListItem is the list item surface addon code sees, whichever host is
// running underneath.
type ListItem interface {
	Item
	FlatInfo
	GetVideoInfoTag() VideoTag
	GetMusicInfoTag() MusicTag
}
