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

package cli

import (
	"fmt"

	"github.com/ZaparooProject/kover/pkg/kover"
	"github.com/ZaparooProject/kover/pkg/kover/legacy"
	"github.com/ZaparooProject/kover/pkg/kover/modern"
	"github.com/ZaparooProject/kover/pkg/xbmc"
)

// Snapshot is the tag state after a label file was applied, read back
// through the adapter.
type Snapshot struct {
	Video     *VideoSnapshot   `json:"video,omitempty"`
	Music     *MusicSnapshot   `json:"music,omitempty"`
	Picture   *PictureSnapshot `json:"picture,omitempty"`
	Game      *GameSnapshot    `json:"game,omitempty"`
	Labels    xbmc.InfoLabels  `json:"labels,omitempty"`
	Residual  xbmc.InfoLabels  `json:"residual,omitempty"`
	Adapter   string           `json:"adapter"`
	Version   string           `json:"version"`
	MediaType xbmc.MediaType   `json:"media_type"`
}

type VideoSnapshot struct {
	Title         string   `json:"title"`
	OriginalTitle string   `json:"original_title,omitempty"`
	Plot          string   `json:"plot,omitempty"`
	MediaType     string   `json:"media_type,omitempty"`
	Mpaa          string   `json:"mpaa,omitempty"`
	IMDBNumber    string   `json:"imdb_number,omitempty"`
	Premiered     string   `json:"premiered,omitempty"`
	LastPlayed    string   `json:"last_played,omitempty"`
	Cast          string   `json:"cast,omitempty"`
	Genres        []string `json:"genres"`
	Directors     []string `json:"directors"`
	Writers       []string `json:"writers"`
	Rating        float64  `json:"rating"`
	Year          int      `json:"year"`
	Season        int      `json:"season"`
	Episode       int      `json:"episode"`
	Duration      int      `json:"duration"`
	PlayCount     int      `json:"play_count"`
	UserRating    int      `json:"user_rating"`
	Votes         int      `json:"votes"`
}

type MusicSnapshot struct {
	Title       string   `json:"title"`
	Artist      string   `json:"artist,omitempty"`
	AlbumArtist string   `json:"album_artist,omitempty"`
	Album       string   `json:"album,omitempty"`
	MediaType   string   `json:"media_type,omitempty"`
	Comment     string   `json:"comment,omitempty"`
	LastPlayed  string   `json:"last_played,omitempty"`
	Genres      []string `json:"genres"`
	Rating      float64  `json:"rating"`
	Year        int      `json:"year"`
	Track       int      `json:"track"`
	Disc        int      `json:"disc"`
	Duration    int      `json:"duration"`
	PlayCount   int      `json:"play_count"`
	UserRating  int      `json:"user_rating"`
}

type PictureSnapshot struct {
	Resolution    string `json:"resolution,omitempty"`
	DateTimeTaken string `json:"date_time_taken,omitempty"`
}

type GameSnapshot struct {
	Title      string   `json:"title"`
	Platform   string   `json:"platform,omitempty"`
	Publisher  string   `json:"publisher,omitempty"`
	Developer  string   `json:"developer,omitempty"`
	Overview   string   `json:"overview,omitempty"`
	GameClient string   `json:"game_client,omitempty"`
	Genres     []string `json:"genres"`
	Year       int      `json:"year"`
}

// Apply creates a list item through f, applies labels in one SetInfo call
// and reads the result back. The snapshot is filled even when SetInfo
// fails part way, so a caller can show what did get through.
func Apply(f *kover.Factory, mediaType string, labels xbmc.InfoLabels) (Snapshot, error) {
	mt, err := xbmc.ParseMediaType(mediaType)
	if err != nil {
		return Snapshot{}, err //nolint:wrapcheck // already descriptive
	}

	li := f.NewListItem("", "", "")
	applyErr := li.SetInfo(string(mt), labels)
	if applyErr != nil {
		applyErr = fmt.Errorf("set info: %w", applyErr)
	}

	snap := Snapshot{
		Adapter:   f.Kind().String(),
		Version:   f.Version().String(),
		MediaType: mt,
	}
	switch mt {
	case xbmc.MediaVideo:
		snap.Video = videoSnapshot(li.GetVideoInfoTag())
	case xbmc.MediaMusic:
		snap.Music = musicSnapshot(li.GetMusicInfoTag())
	}

	switch item := li.(type) {
	case *legacy.ListItem:
		if host, ok := item.Host().(interface {
			Labels(xbmc.MediaType) xbmc.InfoLabels
		}); ok {
			snap.Labels = host.Labels(mt)
		}
	case *modern.ListItem:
		host := item.Host()
		if mt == xbmc.MediaPictures {
			tag := host.GetPictureInfoTag()
			snap.Picture = &PictureSnapshot{
				Resolution:    tag.GetResolution(),
				DateTimeTaken: tag.GetDateTimeTaken(),
			}
		}
		if mt == xbmc.MediaGame {
			snap.Game = gameSnapshot(host.GetGameInfoTag())
		}
		if r, ok := host.(interface {
			ResidualLabels(xbmc.MediaType) xbmc.InfoLabels
		}); ok {
			snap.Residual = r.ResidualLabels(mt)
		}
	}

	return snap, applyErr
}

func videoSnapshot(tag xbmc.VideoTag) *VideoSnapshot {
	return &VideoSnapshot{
		Title:         tag.GetTitle(),
		OriginalTitle: tag.GetOriginalTitle(),
		Plot:          tag.GetPlot(),
		MediaType:     tag.GetMediaType(),
		Mpaa:          tag.GetMpaa(),
		IMDBNumber:    tag.GetIMDBNumber(),
		Premiered:     tag.GetPremiered(),
		LastPlayed:    tag.GetLastPlayed(),
		Cast:          tag.GetCast(),
		Genres:        tag.GetGenres(),
		Directors:     tag.GetDirectors(),
		Writers:       tag.GetWriters(),
		Rating:        tag.GetRating(""),
		Year:          tag.GetYear(),
		Season:        tag.GetSeason(),
		Episode:       tag.GetEpisode(),
		Duration:      tag.GetDuration(),
		PlayCount:     tag.GetPlayCount(),
		UserRating:    tag.GetUserRating(),
		Votes:         tag.GetVotesAsInt(""),
	}
}

func musicSnapshot(tag xbmc.MusicTag) *MusicSnapshot {
	return &MusicSnapshot{
		Title:       tag.GetTitle(),
		Artist:      tag.GetArtist(),
		AlbumArtist: tag.GetAlbumArtist(),
		Album:       tag.GetAlbum(),
		MediaType:   tag.GetMediaType(),
		Comment:     tag.GetComment(),
		LastPlayed:  tag.GetLastPlayed(),
		Genres:      tag.GetGenres(),
		Rating:      tag.GetRating(),
		Year:        tag.GetYear(),
		Track:       tag.GetTrack(),
		Disc:        tag.GetDisc(),
		Duration:    tag.GetDuration(),
		PlayCount:   tag.GetPlayCount(),
		UserRating:  tag.GetUserRating(),
	}
}

func gameSnapshot(tag xbmc.GameInfoTag) *GameSnapshot {
	return &GameSnapshot{
		Title:      tag.GetTitle(),
		Platform:   tag.GetPlatform(),
		Publisher:  tag.GetPublisher(),
		Developer:  tag.GetDeveloper(),
		Overview:   tag.GetOverview(),
		GameClient: tag.GetGameClient(),
		Genres:     tag.GetGenres(),
		Year:       tag.GetYear(),
	}
}
