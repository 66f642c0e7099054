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
	"strconv"
	"strings"

	"github.com/ZaparooProject/kover/pkg/xbmc"
	"github.com/rs/zerolog/log"
)

// resumeKey reports which half of the resume point a property key names.
func resumeKey(key string) (isTime, isTotal bool) {
	switch xbmc.FoldKey(key) {
	case "resumetime":
		return true, false
	case "totaltime":
		return false, true
	default:
		return false, false
	}
}

// GetProperty reads ResumeTime and TotalTime from the video tag's resume
// point. Other keys read the item property store.
func (li *ListItem) GetProperty(key string) string {
	isTime, isTotal := resumeKey(key)
	switch {
	case isTime:
		return strconv.FormatFloat(li.hostVideo().GetResumeTime(), 'f', -1, 64)
	case isTotal:
		return strconv.FormatFloat(li.hostVideo().GetResumeTimeTotal(), 'f', -1, 64)
	default:
		return li.ModernItem.GetProperty(key)
	}
}

// SetProperty writes ResumeTime and TotalTime to the video tag's resume
// point, using 0 for a half that was never set.
func (li *ListItem) SetProperty(key, value string) {
	if li.stageResume(key, value) {
		li.applyResumePoint()
		return
	}
	li.ModernItem.SetProperty(key, value)
}

// SetProperties handles the resume keys like SetProperty and passes the
// rest to the host in one call.
func (li *ListItem) SetProperties(values map[string]string) {
	rest := make(map[string]string, len(values))
	resume := false
	for k, v := range values {
		if li.stageResume(k, v) {
			resume = true
			continue
		}
		rest[k] = v
	}
	if len(rest) > 0 {
		li.ModernItem.SetProperties(rest)
	}
	if resume {
		li.applyResumePoint()
	}
}

func (li *ListItem) stageResume(key, value string) bool {
	isTime, isTotal := resumeKey(key)
	if !isTime && !isTotal {
		return false
	}
	seconds, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Str("value", value).Msg("invalid resume property, using 0")
		seconds = 0
	}
	if isTime {
		li.resumeTime = &seconds
	} else {
		li.resumeTotal = &seconds
	}
	return true
}

func (li *ListItem) applyResumePoint() {
	var resumeTime, total float64
	if li.resumeTime != nil {
		resumeTime = *li.resumeTime
	}
	if li.resumeTotal != nil {
		total = *li.resumeTotal
	}
	li.hostVideo().SetResumePoint(resumeTime, total)
}
