/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package point

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRefreshServer(t *testing.T, calls *atomic.Int32) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/oauth/token", r.URL.Path)
		calls.Add(1)

		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token": "at-refreshed",
			"expires_in":   3600,
		})
	}))
}

func TestCachedTokenProvider_ServesSeededToken(t *testing.T) {
	var calls atomic.Int32

	server := newRefreshServer(t, &calls)
	defer server.Close()

	auth := newTestAuthenticator(t, server.URL)

	cached := NewCachedTokenProvider(auth, &Token{
		AccessToken:  "at-seed",
		RefreshToken: "rt-seed",
		ExpiresIn:    3600,
	}, nil)

	token, err := cached.AccessToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "at-seed", token)
	assert.Equal(t, int32(0), calls.Load())
}

func TestCachedTokenProvider_RefreshesAndSaves(t *testing.T) {
	var calls atomic.Int32

	server := newRefreshServer(t, &calls)
	defer server.Close()

	auth := newTestAuthenticator(t, server.URL)

	var saved *Token

	cached := NewCachedTokenProvider(auth, &Token{
		AccessToken:  "at-seed",
		RefreshToken: "rt-seed",
		ExpiresIn:    3600,
	}, func(token *Token) { saved = token })

	cached.InvalidateToken()

	token, err := cached.AccessToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "at-refreshed", token)
	assert.Equal(t, int32(1), calls.Load())

	// The save-token callback fires with the new token, and the refresh
	// token is carried over when the response omits it.
	require.NotNil(t, saved)
	assert.Equal(t, "at-refreshed", saved.AccessToken)
	assert.Equal(t, "rt-seed", saved.RefreshToken)

	// Subsequent calls reuse the refreshed token.
	token, err = cached.AccessToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "at-refreshed", token)
	assert.Equal(t, int32(1), calls.Load())
}

func TestCachedTokenProvider_NoRefreshToken(t *testing.T) {
	auth := newTestAuthenticator(t, "https://api.minut.com/v8")

	cached := NewCachedTokenProvider(auth, nil, nil)

	_, err := cached.AccessToken(context.Background())
	require.ErrorIs(t, err, errNoRefreshToken)
}

func TestCachedTokenProvider_SetToken(t *testing.T) {
	auth := newTestAuthenticator(t, "https://api.minut.com/v8")

	cached := NewCachedTokenProvider(auth, nil, nil)
	cached.SetToken(&Token{AccessToken: "at-manual"})

	token, err := cached.AccessToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "at-manual", token)
}

func TestStaticTokenProvider(t *testing.T) {
	token, err := StaticTokenProvider("fixed").AccessToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "fixed", token)
}
