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
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ZaparooProject/kover/pkg/xbmc"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
	"gopkg.in/ini.v1"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned for label files with an unrecognised
// extension.
var ErrUnknownFormat = errors.New("unknown label file format")

// LoadLabels reads an info label dictionary. The format follows the file
// extension: .json, .toml, .yaml/.yml or .ini. INI files take their keys
// from the default section and every value is a string, the way Kodi
// addons often receive labels from scrapers.
func LoadLabels(fs afero.Fs, path string) (xbmc.InfoLabels, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read label file: %w", err)
	}

	labels := make(xbmc.InfoLabels)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		err = json.Unmarshal(data, &labels)
	case ".toml":
		err = toml.Unmarshal(data, &labels)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &labels)
	case ".ini":
		err = loadINI(data, labels)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return labels, nil
}

func loadINI(data []byte, labels xbmc.InfoLabels) error {
	f, err := ini.Load(data)
	if err != nil {
		return err //nolint:wrapcheck // wrapped by caller
	}
	for _, key := range f.Section(ini.DefaultSection).Keys() {
		labels[key.Name()] = key.String()
	}
	return nil
}
