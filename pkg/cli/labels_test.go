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

package cli_test

import (
	"testing"

	"github.com/ZaparooProject/kover/pkg/cli"
	"github.com/ZaparooProject/kover/pkg/testing/helpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadLabels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		path    string
		content string
	}{
		{
			name:    "json",
			path:    "/labels/movie.json",
			content: `{"title": "Heat", "year": 1995, "genre": ["Crime", "Drama"]}`,
		},
		{
			name:    "toml",
			path:    "/labels/movie.toml",
			content: "title = \"Heat\"\nyear = 1995\ngenre = [\"Crime\", \"Drama\"]\n",
		},
		{
			name:    "yaml",
			path:    "/labels/movie.yaml",
			content: "title: Heat\nyear: 1995\ngenre:\n  - Crime\n  - Drama\n",
		},
		{
			name:    "yml upper case",
			path:    "/labels/MOVIE.YML",
			content: "title: Heat\nyear: 1995\ngenre: [Crime, Drama]\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fs := helpers.NewMemoryFS()
			require.NoError(t, fs.WriteFile(tt.path, []byte(tt.content)))

			labels, err := cli.LoadLabels(fs.Fs, tt.path)
			require.NoError(t, err)

			assert.Equal(t, "Heat", labels["title"])
			assert.EqualValues(t, 1995, labels["year"])
			assert.Equal(t, []any{"Crime", "Drama"}, labels["genre"])
		})
	}
}

func TestLoadLabels_INIValuesAreStrings(t *testing.T) {
	t.Parallel()

	fs := helpers.NewMemoryFS()
	require.NoError(t, fs.WriteFile("/labels/song.ini", []byte("title = Karma Police\ntracknumber = 6\n")))

	labels, err := cli.LoadLabels(fs.Fs, "/labels/song.ini")
	require.NoError(t, err)
	assert.Equal(t, "Karma Police", labels["title"])
	assert.Equal(t, "6", labels["tracknumber"])
}

func TestLoadLabels_Errors(t *testing.T) {
	t.Parallel()

	fs := helpers.NewMemoryFS()
	require.NoError(t, fs.WriteFile("/labels/movie.xml", []byte("<title/>")))
	require.NoError(t, fs.WriteFile("/labels/broken.json", []byte("{")))

	_, err := cli.LoadLabels(fs.Fs, "/labels/movie.xml")
	require.ErrorIs(t, err, cli.ErrUnknownFormat)

	_, err = cli.LoadLabels(fs.Fs, "/labels/broken.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse")

	_, err = cli.LoadLabels(fs.Fs, "/labels/missing.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read label file")
}
