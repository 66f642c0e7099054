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

// Package memhost implements both Kodi list item API shapes in memory.
//
// The hosts keep only what the scripting API exposes back to the addon, so
// they are useful for tests and for dry-running label dictionaries without
// a running Kodi. Like Kodi's own list items they are not safe for
// concurrent use.
package memhost

import (
	"fmt"
	"maps"
	"strconv"
	"strings"

	"github.com/ZaparooProject/kover/pkg/xbmc"
)

// item implements xbmc.Item.
type item struct {
	art    map[string]string
	props  map[string]string
	label  string
	label2 string
	path   string
}

func newItem(label, label2, path string) item {
	return item{
		label:  label,
		label2: label2,
		path:   path,
		art:    make(map[string]string),
		props:  make(map[string]string),
	}
}

func (i *item) GetLabel() string        { return i.label }
func (i *item) SetLabel(label string)   { i.label = label }
func (i *item) GetLabel2() string       { return i.label2 }
func (i *item) SetLabel2(label string)  { i.label2 = label }
func (i *item) GetPath() string         { return i.path }
func (i *item) SetPath(path string)     { i.path = path }
func (i *item) GetArt(key string) string { return i.art[key] }

func (i *item) SetArt(values map[string]string) {
	maps.Copy(i.art, values)
}

func (i *item) GetProperty(key string) string {
	return i.props[xbmc.FoldKey(key)]
}

func (i *item) SetProperty(key, value string) {
	i.props[xbmc.FoldKey(key)] = value
}

func (i *item) SetProperties(values map[string]string) {
	for k, v := range values {
		i.SetProperty(k, v)
	}
}

// Properties returns a copy of the property store with folded keys.
func (i *item) Properties() map[string]string {
	return maps.Clone(i.props)
}

// labelString renders a label value the way Kodi displays it: lists are
// joined with sep, numbers are formatted plainly.
func labelString(v any, sep string) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case []string:
		return strings.Join(s, sep)
	case []any:
		parts := make([]string, 0, len(s))
		for _, p := range s {
			parts = append(parts, labelString(p, sep))
		}
		return strings.Join(parts, sep)
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(s), 'f', -1, 32)
	default:
		return fmt.Sprint(s)
	}
}

func labelStrings(v any) []string {
	switch s := v.(type) {
	case nil:
		return []string{}
	case []string:
		return s
	case []any:
		out := make([]string, 0, len(s))
		for _, p := range s {
			out = append(out, labelString(p, ""))
		}
		return out
	default:
		str := labelString(v, "")
		if str == "" {
			return []string{}
		}
		return []string{str}
	}
}

func labelInt(v any) int {
	if s, ok := v.(string); ok {
		i, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return 0
		}
		return i
	}
	i, err := xbmc.AsInt(v)
	if err != nil {
		f, ferr := xbmc.AsFloat(v)
		if ferr != nil {
			return 0
		}
		return int(f)
	}
	return i
}

func labelFloat(v any) float64 {
	if s, ok := v.(string); ok {
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return 0
		}
		return f
	}
	f, err := xbmc.AsFloat(v)
	if err != nil {
		return 0
	}
	return f
}
