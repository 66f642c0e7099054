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
	"slices"

	"github.com/ZaparooProject/kover/pkg/xbmc"
)

// ModernItem is an in-memory Kodi 20 list item with structured info tags.
type ModernItem struct {
	residual map[xbmc.MediaType]xbmc.InfoLabels
	video    *VideoTag
	music    *MusicTag
	picture  *PictureTag
	game     *GameTag
	item
}

var _ xbmc.ModernItem = (*ModernItem)(nil)

// NewModernItem creates an empty modern list item.
func NewModernItem(label, label2, path string) *ModernItem {
	return &ModernItem{
		item:     newItem(label, label2, path),
		residual: make(map[xbmc.MediaType]xbmc.InfoLabels),
		video:    newVideoTag(),
		music:    &MusicTag{genres: []string{}, musicBrainzArtistID: []string{}},
		picture:  &PictureTag{},
		game:     &GameTag{genres: []string{}},
	}
}

// NewModernHost matches the host constructor signature kover.Activate takes.
func NewModernHost(label, label2, path string) xbmc.ModernItem {
	return NewModernItem(label, label2, path)
}

// SetInfo is the deprecated bulk call. The in-memory host only records the
// labels so callers can see what was left for it.
func (mi *ModernItem) SetInfo(mediaType string, labels xbmc.InfoLabels) error {
	mt, err := xbmc.ParseMediaType(mediaType)
	if err != nil {
		return err
	}
	dst, ok := mi.residual[mt]
	if !ok {
		dst = make(xbmc.InfoLabels)
		mi.residual[mt] = dst
	}
	maps.Copy(dst, labels)
	return nil
}

// ResidualLabels returns the labels that reached the bulk SetInfo call.
func (mi *ModernItem) ResidualLabels(mediaType xbmc.MediaType) xbmc.InfoLabels {
	return maps.Clone(mi.residual[mediaType])
}

func (mi *ModernItem) GetVideoInfoTag() xbmc.VideoInfoTag     { return mi.video }
func (mi *ModernItem) GetMusicInfoTag() xbmc.MusicInfoTag     { return mi.music }
func (mi *ModernItem) GetPictureInfoTag() xbmc.PictureInfoTag { return mi.picture }
func (mi *ModernItem) GetGameInfoTag() xbmc.GameInfoTag       { return mi.game }

// Video returns the concrete video tag for inspection.
func (mi *ModernItem) Video() *VideoTag { return mi.video }

// Music returns the concrete music tag for inspection.
func (mi *ModernItem) Music() *MusicTag { return mi.music }

type videoRating struct {
	value float64
	votes int
}

// VideoTag is an in-memory xbmc.VideoInfoTag.
type VideoTag struct {
	ratings          map[string]videoRating
	uniqueIDs        map[string]string
	title            string
	originalTitle    string
	sortTitle        string
	plot             string
	plotOutline      string
	tagLine          string
	tvShowTitle      string
	tvShowStatus     string
	mediaType        string
	mpaa             string
	trailer          string
	path             string
	filenameAndPath  string
	imdbNumber       string
	album            string
	premiered        string
	firstAired       string
	lastPlayed       string
	dateAdded        string
	set              string
	setOverview      string
	productionCode   string
	episodeGuide     string
	defaultRating    string
	defaultUniqueID  string
	genres           []string
	countries        []string
	directors        []string
	studios          []string
	writers          []string
	tags             []string
	showLinks        []string
	artists          []string
	cast             []xbmc.Actor
	seasons          []xbmc.Season
	videoStreams     []xbmc.VideoStreamDetail
	audioStreams     []xbmc.AudioStreamDetail
	subtitleStreams  []xbmc.SubtitleStreamDetail
	artwork          []xbmc.Artwork
	resumeTime       float64
	resumeTimeTotal  float64
	dbID             int
	year             int
	season           int
	episode          int
	sortSeason       int
	sortEpisode      int
	top250           int
	setID            int
	trackNumber      int
	userRating       int
	playcount        int
	duration         int
}

var _ xbmc.VideoInfoTag = (*VideoTag)(nil)

func newVideoTag() *VideoTag {
	return &VideoTag{
		ratings:   make(map[string]videoRating),
		uniqueIDs: make(map[string]string),
		dbID:      -1,
		season:    -1,
		episode:   -1,
		genres:    []string{},
		directors: []string{},
		writers:   []string{},
		artists:   []string{},
	}
}

func (t *VideoTag) GetDbId() int               { return t.dbID } //nolint:revive // Kodi API name
func (t *VideoTag) GetYear() int               { return t.year }
func (t *VideoTag) GetTitle() string           { return t.title }
func (t *VideoTag) GetOriginalTitle() string   { return t.originalTitle }
func (t *VideoTag) GetPlot() string            { return t.plot }
func (t *VideoTag) GetPlotOutline() string     { return t.plotOutline }
func (t *VideoTag) GetTagLine() string         { return t.tagLine }
func (t *VideoTag) GetTVShowTitle() string     { return t.tvShowTitle }
func (t *VideoTag) GetMediaType() string       { return t.mediaType }
func (t *VideoTag) GetMpaa() string            { return t.mpaa }
func (t *VideoTag) GetTrailer() string         { return t.trailer }
func (t *VideoTag) GetPath() string            { return t.path }
func (t *VideoTag) GetFilenameAndPath() string { return t.filenameAndPath }
func (t *VideoTag) GetIMDBNumber() string      { return t.imdbNumber }
func (t *VideoTag) GetAlbum() string           { return t.album }
func (t *VideoTag) GetArtist() []string        { return slices.Clone(t.artists) }
func (t *VideoTag) GetSeason() int             { return t.season }
func (t *VideoTag) GetEpisode() int            { return t.episode }
func (t *VideoTag) GetUserRating() int         { return t.userRating }
func (t *VideoTag) GetPlayCount() int          { return t.playcount }
func (t *VideoTag) GetTrackNumber() int        { return t.trackNumber }
func (t *VideoTag) GetDuration() int           { return t.duration }
func (t *VideoTag) GetGenres() []string        { return slices.Clone(t.genres) }
func (t *VideoTag) GetDirectors() []string     { return slices.Clone(t.directors) }
func (t *VideoTag) GetWriters() []string       { return slices.Clone(t.writers) }
func (t *VideoTag) GetActors() []xbmc.Actor    { return slices.Clone(t.cast) }
func (t *VideoTag) GetLastPlayedAsW3C() string { return t.lastPlayed }
func (t *VideoTag) GetPremieredAsW3C() string  { return t.premiered }
func (t *VideoTag) GetFirstAiredAsW3C() string { return t.firstAired }
func (t *VideoTag) GetResumeTime() float64     { return t.resumeTime }
func (t *VideoTag) GetResumeTimeTotal() float64 {
	return t.resumeTimeTotal
}

func (t *VideoTag) rating(ratingType string) videoRating {
	if ratingType == "" {
		ratingType = t.defaultRating
	}
	return t.ratings[ratingType]
}

func (t *VideoTag) GetRating(ratingType string) float64 { return t.rating(ratingType).value }
func (t *VideoTag) GetVotesAsInt(ratingType string) int { return t.rating(ratingType).votes }

func (t *VideoTag) GetUniqueID(key string) string {
	if key == "" {
		key = t.defaultUniqueID
	}
	return t.uniqueIDs[key]
}

func (t *VideoTag) SetDbId(dbID int) { t.dbID = dbID } //nolint:revive // Kodi API name

func (t *VideoTag) SetUniqueIDs(values map[string]string, defaultID string) {
	t.uniqueIDs = maps.Clone(values)
	if t.uniqueIDs == nil {
		t.uniqueIDs = make(map[string]string)
	}
	t.defaultUniqueID = defaultID
}

func (t *VideoTag) SetUniqueID(uniqueID, idType string, isDefault bool) {
	t.uniqueIDs[idType] = uniqueID
	if isDefault {
		t.defaultUniqueID = idType
	}
}

func (t *VideoTag) SetYear(year int)             { t.year = year }
func (t *VideoTag) SetEpisode(episode int)       { t.episode = episode }
func (t *VideoTag) SetSeason(season int)         { t.season = season }
func (t *VideoTag) SetSortEpisode(episode int)   { t.sortEpisode = episode }
func (t *VideoTag) SetSortSeason(season int)     { t.sortSeason = season }
func (t *VideoTag) SetTop250(top250 int)         { t.top250 = top250 }
func (t *VideoTag) SetSetId(setID int)           { t.setID = setID } //nolint:revive // Kodi API name
func (t *VideoTag) SetTrackNumber(track int)     { t.trackNumber = track }
func (t *VideoTag) SetUserRating(rating int)     { t.userRating = rating }
func (t *VideoTag) SetPlaycount(playcount int)   { t.playcount = playcount }
func (t *VideoTag) SetDuration(duration int)     { t.duration = duration }
func (t *VideoTag) SetEpisodeGuide(guide string) { t.episodeGuide = guide }
func (t *VideoTag) SetMpaa(mpaa string)          { t.mpaa = mpaa }
func (t *VideoTag) SetPlot(plot string)          { t.plot = plot }
func (t *VideoTag) SetPlotOutline(outline string) {
	t.plotOutline = outline
}
func (t *VideoTag) SetTitle(title string)            { t.title = title }
func (t *VideoTag) SetOriginalTitle(title string)    { t.originalTitle = title }
func (t *VideoTag) SetSortTitle(title string)        { t.sortTitle = title }
func (t *VideoTag) SetTagLine(tagline string)        { t.tagLine = tagline }
func (t *VideoTag) SetTvShowTitle(title string)      { t.tvShowTitle = title }
func (t *VideoTag) SetTvShowStatus(status string)    { t.tvShowStatus = status }
func (t *VideoTag) SetTrailer(trailer string)        { t.trailer = trailer }
func (t *VideoTag) SetPath(path string)              { t.path = path }
func (t *VideoTag) SetFilenameAndPath(path string)   { t.filenameAndPath = path }
func (t *VideoTag) SetIMDBNumber(imdb string)        { t.imdbNumber = imdb }
func (t *VideoTag) SetPremiered(date string)         { t.premiered = date }
func (t *VideoTag) SetFirstAired(date string)        { t.firstAired = date }
func (t *VideoTag) SetLastPlayed(datetime string)    { t.lastPlayed = datetime }
func (t *VideoTag) SetDateAdded(datetime string)     { t.dateAdded = datetime }
func (t *VideoTag) SetMediaType(mediaType string)    { t.mediaType = mediaType }
func (t *VideoTag) SetSet(set string)                { t.set = set }
func (t *VideoTag) SetSetOverview(overview string)   { t.setOverview = overview }
func (t *VideoTag) SetProductionCode(code string)    { t.productionCode = code }
func (t *VideoTag) SetAlbum(album string)            { t.album = album }
func (t *VideoTag) SetGenres(genres []string)        { t.genres = slices.Clone(genres) }
func (t *VideoTag) SetCountries(countries []string)  { t.countries = slices.Clone(countries) }
func (t *VideoTag) SetDirectors(directors []string)  { t.directors = slices.Clone(directors) }
func (t *VideoTag) SetStudios(studios []string)      { t.studios = slices.Clone(studios) }
func (t *VideoTag) SetWriters(writers []string)      { t.writers = slices.Clone(writers) }
func (t *VideoTag) SetTags(tags []string)            { t.tags = slices.Clone(tags) }
func (t *VideoTag) SetShowLinks(links []string)      { t.showLinks = slices.Clone(links) }
func (t *VideoTag) SetArtists(artists []string)      { t.artists = slices.Clone(artists) }
func (t *VideoTag) SetCast(actors []xbmc.Actor)      { t.cast = slices.Clone(actors) }
func (t *VideoTag) AddSeason(number int, name string) {
	t.seasons = append(t.seasons, xbmc.Season{Number: number, Name: name})
}

// SetRating stores a rating. An empty type writes to the current default.
func (t *VideoTag) SetRating(rating float64, votes int, ratingType string, isDefault bool) {
	if ratingType == "" {
		ratingType = t.defaultRating
	}
	t.ratings[ratingType] = videoRating{value: rating, votes: votes}
	if isDefault || t.defaultRating == "" {
		t.defaultRating = ratingType
	}
}

func (t *VideoTag) SetResumePoint(time, totalTime float64) {
	t.resumeTime = time
	t.resumeTimeTotal = totalTime
}

func (t *VideoTag) AddSeasons(seasons []xbmc.Season) {
	t.seasons = append(t.seasons, seasons...)
}

func (t *VideoTag) AddVideoStream(stream xbmc.VideoStreamDetail) {
	t.videoStreams = append(t.videoStreams, stream)
}

func (t *VideoTag) AddAudioStream(stream xbmc.AudioStreamDetail) {
	t.audioStreams = append(t.audioStreams, stream)
}

func (t *VideoTag) AddSubtitleStream(stream xbmc.SubtitleStreamDetail) {
	t.subtitleStreams = append(t.subtitleStreams, stream)
}

func (t *VideoTag) AddAvailableArtwork(art xbmc.Artwork) {
	t.artwork = append(t.artwork, art)
}

// Fields not readable through the Kodi getters are exposed for inspection.

func (t *VideoTag) SortTitle() string                { return t.sortTitle }
func (t *VideoTag) SortSeason() int                  { return t.sortSeason }
func (t *VideoTag) SortEpisode() int                 { return t.sortEpisode }
func (t *VideoTag) Top250() int                      { return t.top250 }
func (t *VideoTag) CollectionID() int                { return t.setID }
func (t *VideoTag) Collection() string               { return t.set }
func (t *VideoTag) CollectionOverview() string       { return t.setOverview }
func (t *VideoTag) TvShowStatus() string             { return t.tvShowStatus }
func (t *VideoTag) ProductionCode() string           { return t.productionCode }
func (t *VideoTag) EpisodeGuide() string             { return t.episodeGuide }
func (t *VideoTag) DateAdded() string                { return t.dateAdded }
func (t *VideoTag) Countries() []string              { return slices.Clone(t.countries) }
func (t *VideoTag) Studios() []string                { return slices.Clone(t.studios) }
func (t *VideoTag) Tags() []string                   { return slices.Clone(t.tags) }
func (t *VideoTag) ShowLinks() []string              { return slices.Clone(t.showLinks) }
func (t *VideoTag) Seasons() []xbmc.Season           { return slices.Clone(t.seasons) }
func (t *VideoTag) Artwork() []xbmc.Artwork          { return slices.Clone(t.artwork) }
func (t *VideoTag) DefaultUniqueID() string          { return t.defaultUniqueID }
func (t *VideoTag) VideoStreams() []xbmc.VideoStreamDetail {
	return slices.Clone(t.videoStreams)
}

func (t *VideoTag) AudioStreams() []xbmc.AudioStreamDetail {
	return slices.Clone(t.audioStreams)
}

func (t *VideoTag) SubtitleStreams() []xbmc.SubtitleStreamDetail {
	return slices.Clone(t.subtitleStreams)
}

// MusicTag is an in-memory xbmc.MusicInfoTag.
type MusicTag struct {
	url                      string
	title                    string
	mediaType                string
	artist                   string
	albumArtist              string
	album                    string
	comment                  string
	lyrics                   string
	lastPlayed               string
	musicBrainzTrackID       string
	musicBrainzAlbumID       string
	genres                   []string
	musicBrainzArtistID      []string
	musicBrainzAlbumArtistID []string
	rating                   float64
	dbID                     int
	duration                 int
	year                     int
	track                    int
	disc                     int
	listeners                int
	playCount                int
	userRating               int
	votes                    int
}

var _ xbmc.MusicInfoTag = (*MusicTag)(nil)

func (t *MusicTag) GetDbId() int                     { return t.dbID } //nolint:revive // Kodi API name
func (t *MusicTag) GetYear() int                     { return t.year }
func (t *MusicTag) GetURL() string                   { return t.url }
func (t *MusicTag) GetTitle() string                 { return t.title }
func (t *MusicTag) GetMediaType() string             { return t.mediaType }
func (t *MusicTag) GetArtist() string                { return t.artist }
func (t *MusicTag) GetAlbumArtist() string           { return t.albumArtist }
func (t *MusicTag) GetAlbum() string                 { return t.album }
func (t *MusicTag) GetComment() string               { return t.comment }
func (t *MusicTag) GetLyrics() string                { return t.lyrics }
func (t *MusicTag) GetMusicBrainzTrackID() string    { return t.musicBrainzTrackID }
func (t *MusicTag) GetMusicBrainzAlbumID() string    { return t.musicBrainzAlbumID }
func (t *MusicTag) GetMusicBrainzArtistID() []string { return slices.Clone(t.musicBrainzArtistID) }
func (t *MusicTag) GetDuration() int                 { return t.duration }
func (t *MusicTag) GetTrack() int                    { return t.track }
func (t *MusicTag) GetDisc() int                     { return t.disc }
func (t *MusicTag) GetListeners() int                { return t.listeners }
func (t *MusicTag) GetPlayCount() int                { return t.playCount }
func (t *MusicTag) GetUserRating() int               { return t.userRating }
func (t *MusicTag) GetRating() float64               { return t.rating }
func (t *MusicTag) GetGenres() []string              { return slices.Clone(t.genres) }
func (t *MusicTag) GetLastPlayedAsW3C() string       { return t.lastPlayed }

func (t *MusicTag) SetDbId(dbID int, mediaType string) { //nolint:revive // Kodi API name
	t.dbID = dbID
	if mediaType != "" {
		t.mediaType = mediaType
	}
}

func (t *MusicTag) SetURL(url string) error {
	t.url = url
	return nil
}

func (t *MusicTag) SetTitle(title string)             { t.title = title }
func (t *MusicTag) SetMediaType(mediaType string)     { t.mediaType = mediaType }
func (t *MusicTag) SetArtist(artist string)           { t.artist = artist }
func (t *MusicTag) SetAlbumArtist(artist string)      { t.albumArtist = artist }
func (t *MusicTag) SetAlbum(album string)             { t.album = album }
func (t *MusicTag) SetComment(comment string)         { t.comment = comment }
func (t *MusicTag) SetLyrics(lyrics string)           { t.lyrics = lyrics }
func (t *MusicTag) SetLastPlayed(datetime string)     { t.lastPlayed = datetime }
func (t *MusicTag) SetMusicBrainzTrackID(id string)   { t.musicBrainzTrackID = id }
func (t *MusicTag) SetMusicBrainzAlbumID(id string)   { t.musicBrainzAlbumID = id }
func (t *MusicTag) SetMusicBrainzArtistID(ids []string) {
	t.musicBrainzArtistID = slices.Clone(ids)
}

func (t *MusicTag) SetMusicBrainzAlbumArtistID(ids []string) {
	t.musicBrainzAlbumArtistID = slices.Clone(ids)
}
func (t *MusicTag) SetGenres(genres []string)  { t.genres = slices.Clone(genres) }
func (t *MusicTag) SetDuration(duration int)   { t.duration = duration }
func (t *MusicTag) SetYear(year int)           { t.year = year }
func (t *MusicTag) SetTrack(track int)         { t.track = track }
func (t *MusicTag) SetDisc(disc int)           { t.disc = disc }
func (t *MusicTag) SetListeners(listeners int) { t.listeners = listeners }
func (t *MusicTag) SetPlayCount(playcount int) { t.playCount = playcount }
func (t *MusicTag) SetUserRating(rating int)   { t.userRating = rating }
func (t *MusicTag) SetVotes(votes int)         { t.votes = votes }
func (t *MusicTag) SetRating(rating float64)   { t.rating = rating }

// Votes returns the vote count, which Kodi does not expose on the tag.
func (t *MusicTag) Votes() int { return t.votes }

// MusicBrainzAlbumArtistID returns the album artist ids.
func (t *MusicTag) MusicBrainzAlbumArtistID() []string {
	return slices.Clone(t.musicBrainzAlbumArtistID)
}

// PictureTag is an in-memory xbmc.PictureInfoTag.
type PictureTag struct {
	dateTimeTaken string
	width         int
	height        int
}

var _ xbmc.PictureInfoTag = (*PictureTag)(nil)

func (t *PictureTag) GetResolution() string {
	if t.width == 0 && t.height == 0 {
		return ""
	}
	return fmt.Sprintf("%d,%d", t.width, t.height)
}

func (t *PictureTag) GetDateTimeTaken() string { return t.dateTimeTaken }

func (t *PictureTag) SetResolution(width, height int) {
	t.width = width
	t.height = height
}

func (t *PictureTag) SetDateTimeTaken(datetime string) { t.dateTimeTaken = datetime }

// GameTag is an in-memory xbmc.GameInfoTag.
type GameTag struct {
	title      string
	platform   string
	publisher  string
	developer  string
	overview   string
	gameClient string
	genres     []string
	year       int
}

var _ xbmc.GameInfoTag = (*GameTag)(nil)

func (t *GameTag) GetTitle() string              { return t.title }
func (t *GameTag) GetPlatform() string           { return t.platform }
func (t *GameTag) GetGenres() []string           { return slices.Clone(t.genres) }
func (t *GameTag) GetPublisher() string          { return t.publisher }
func (t *GameTag) GetDeveloper() string          { return t.developer }
func (t *GameTag) GetOverview() string           { return t.overview }
func (t *GameTag) GetYear() int                  { return t.year }
func (t *GameTag) GetGameClient() string         { return t.gameClient }
func (t *GameTag) SetTitle(title string)         { t.title = title }
func (t *GameTag) SetPlatform(platform string)   { t.platform = platform }
func (t *GameTag) SetGenres(genres []string)     { t.genres = slices.Clone(genres) }
func (t *GameTag) SetPublisher(publisher string) { t.publisher = publisher }
func (t *GameTag) SetDeveloper(developer string) { t.developer = developer }
func (t *GameTag) SetOverview(overview string)   { t.overview = overview }
func (t *GameTag) SetYear(year int)              { t.year = year }
func (t *GameTag) SetGameClient(client string)   { t.gameClient = client }
