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

package mocks

import (
	"context"
	"encoding/json"

	"github.com/ZaparooProject/kover/pkg/kover/version"
	"github.com/ZaparooProject/kover/pkg/platforms/shared/kodi"
	"github.com/stretchr/testify/mock"
)

// MockKodiClient is a mock implementation of the KodiClient interface
// for use in tests. It provides all the standard testify/mock functionality.
type MockKodiClient struct {
	mock.Mock
}

// Ensure MockKodiClient implements KodiClient at compile time
var (
	_ kodi.KodiClient = (*MockKodiClient)(nil)
	_ version.Source  = (*MockKodiClient)(nil)
)

// BuildVersion mocks reading the System.BuildVersion label
func (m *MockKodiClient) BuildVersion(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

// ApplicationVersion mocks reading the application version property
func (m *MockKodiClient) ApplicationVersion(ctx context.Context) (kodi.AppVersion, error) {
	args := m.Called(ctx)
	return args.Get(0).(kodi.AppVersion), args.Error(1)
}

// APIVersion mocks reading the JSON-RPC API version
func (m *MockKodiClient) APIVersion(ctx context.Context) (kodi.JSONRPCVersion, error) {
	args := m.Called(ctx)
	return args.Get(0).(kodi.JSONRPCVersion), args.Error(1)
}

// GetInfoLabels mocks reading info labels
func (m *MockKodiClient) GetInfoLabels(ctx context.Context, labels ...string) (map[string]string, error) {
	args := m.Called(ctx, labels)
	return args.Get(0).(map[string]string), args.Error(1)
}

// Ping mocks pinging the JSON-RPC endpoint
func (m *MockKodiClient) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// GetURL mocks returning the current Kodi API URL
func (m *MockKodiClient) GetURL() string {
	args := m.Called()
	return args.String(0)
}

// SetURL mocks setting the Kodi API URL
func (m *MockKodiClient) SetURL(url string) {
	m.Called(url)
}

// APIRequest mocks making a raw JSON-RPC request to Kodi API
func (m *MockKodiClient) APIRequest(
	ctx context.Context,
	method kodi.APIMethod,
	params any,
) (json.RawMessage, error) {
	args := m.Called(ctx, method, params)
	return args.Get(0).(json.RawMessage), args.Error(1)
}

// SetupBasicMock configures the mock with common expectations
// for standard test scenarios: a reachable Kodi 20.2.
func (m *MockKodiClient) SetupBasicMock() {
	m.On("BuildVersion", mock.Anything).Return("20.2 (20.2.0) Git:20230629-5f418d0b13", nil).Maybe()
	m.On("ApplicationVersion", mock.Anything).
		Return(kodi.AppVersion{Major: 20, Minor: 2, Tag: "stable"}, nil).Maybe()
	m.On("APIVersion", mock.Anything).Return(kodi.JSONRPCVersion{Major: 13, Minor: 5}, nil).Maybe()
	m.On("Ping", mock.Anything).Return(nil).Maybe()
	m.On("GetURL").Return(kodi.DefaultURL).Maybe()
	m.On("SetURL", mock.AnythingOfType("string")).Return().Maybe()
}

// NewMockKodiClient creates a new mock Kodi client with basic setup
func NewMockKodiClient() *MockKodiClient {
	m := &MockKodiClient{}
	m.SetupBasicMock()
	return m
}
