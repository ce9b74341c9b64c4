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
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carverauto/minut-go/pkg/logger"
)

func newTestAuthenticator(t *testing.T, serverURL string) *Authenticator {
	t.Helper()

	auth, err := NewAuthenticator(AuthConfig{
		ClientID:     "cid",
		ClientSecret: "csecret",
		RedirectURI:  "https://app.example.com/cb",
		BaseURL:      serverURL,
	}, nil, logger.NewTestLogger())
	require.NoError(t, err)

	return auth
}

func TestNewAuthenticator_RequiresClientID(t *testing.T) {
	_, err := NewAuthenticator(AuthConfig{}, nil, nil)
	require.ErrorIs(t, err, errMissingClientID)
}

func TestAuthorizationURL(t *testing.T) {
	auth := newTestAuthenticator(t, "https://api.minut.com/v8")

	raw := auth.AuthorizationURL("st4te")

	parsed, err := url.Parse(raw)
	require.NoError(t, err)

	assert.Equal(t, "/v8/oauth/authorize", parsed.Path)

	q := parsed.Query()
	assert.Equal(t, "cid", q.Get("client_id"))
	assert.Equal(t, "code", q.Get("response_type"))
	assert.Equal(t, "https://app.example.com/cb", q.Get("redirect_uri"))
	assert.Equal(t, "st4te", q.Get("state"))
}

func TestExchangeCode(t *testing.T) {
	var gotForm url.Values

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/oauth/token", r.URL.Path)
		require.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))

		require.NoError(t, r.ParseForm())
		gotForm = r.PostForm

		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token":  "at-1",
			"refresh_token": "rt-1",
			"expires_in":    3600,
			"token_type":    "Bearer",
		})
	}))
	defer server.Close()

	auth := newTestAuthenticator(t, server.URL)

	token, err := auth.ExchangeCode(context.Background(), "authcode")
	require.NoError(t, err)

	assert.Equal(t, "authorization_code", gotForm.Get("grant_type"))
	assert.Equal(t, "authcode", gotForm.Get("code"))
	assert.Equal(t, "cid", gotForm.Get("client_id"))
	assert.Equal(t, "csecret", gotForm.Get("client_secret"))
	assert.Equal(t, "https://app.example.com/cb", gotForm.Get("redirect_uri"))

	assert.Equal(t, "at-1", token.AccessToken)
	assert.Equal(t, "rt-1", token.RefreshToken)
	assert.Equal(t, 3600, token.ExpiresIn)
}

func TestExchangeCode_MissingTokenFails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"token_type": "Bearer"})
	}))
	defer server.Close()

	auth := newTestAuthenticator(t, server.URL)

	_, err := auth.ExchangeCode(context.Background(), "authcode")
	require.ErrorIs(t, err, errMissingToken)
}

func TestExchangeCode_Non200Fails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error":"invalid_grant"}`, http.StatusBadRequest)
	}))
	defer server.Close()

	auth := newTestAuthenticator(t, server.URL)

	_, err := auth.ExchangeCode(context.Background(), "badcode")
	require.ErrorIs(t, err, errUnexpectedStatusCode)
	assert.Contains(t, err.Error(), "invalid_grant")
}

func TestRefresh(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		require.Equal(t, "refresh_token", r.PostForm.Get("grant_type"))
		require.Equal(t, "rt-old", r.PostForm.Get("refresh_token"))

		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token": "at-2",
			"expires_in":   3600,
		})
	}))
	defer server.Close()

	auth := newTestAuthenticator(t, server.URL)

	token, err := auth.Refresh(context.Background(), "rt-old")
	require.NoError(t, err)
	assert.Equal(t, "at-2", token.AccessToken)
}
