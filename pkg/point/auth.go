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

// Package point pkg/point/auth.go implements the OAuth2 bootstrap against
// the Point token endpoint.
package point

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/carverauto/minut-go/pkg/logger"
)

// AuthConfig holds the OAuth2 application credentials.
type AuthConfig struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
	RedirectURI  string `json:"redirect_uri,omitempty"`
	BaseURL      string `json:"base_url,omitempty"`
}

// TokenSaver is invoked with every newly obtained token so the caller can
// persist it. Persistence itself is out of scope for this package.
type TokenSaver func(token *Token)

// Authenticator exchanges authorization codes and refresh tokens for access
// tokens.
type Authenticator struct {
	Config     AuthConfig
	HTTPClient HTTPClient
	Logger     logger.Logger
}

// NewAuthenticator validates cfg and builds an Authenticator. A nil client
// gets a stock http.Client with the fixed request timeout.
func NewAuthenticator(cfg AuthConfig, client HTTPClient, log logger.Logger) (*Authenticator, error) {
	if cfg.ClientID == "" {
		return nil, errMissingClientID
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}

	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}

	if log == nil {
		log = logger.NewTestLogger()
	}

	return &Authenticator{
		Config:     cfg,
		HTTPClient: client,
		Logger:     log,
	}, nil
}

// AuthorizationURL returns the URL the user must visit to authorize the
// application. state is echoed back on the redirect.
func (a *Authenticator) AuthorizationURL(state string) string {
	v := url.Values{}
	v.Set("client_id", a.Config.ClientID)
	v.Set("response_type", "code")

	if a.Config.RedirectURI != "" {
		v.Set("redirect_uri", a.Config.RedirectURI)
	}

	if state != "" {
		v.Set("state", state)
	}

	return a.Config.BaseURL + "/oauth/authorize?" + v.Encode()
}

// ExchangeCode trades an authorization code for a token.
func (a *Authenticator) ExchangeCode(ctx context.Context, code string) (*Token, error) {
	data := url.Values{}
	data.Set("grant_type", "authorization_code")
	data.Set("code", code)
	data.Set("client_id", a.Config.ClientID)
	data.Set("client_secret", a.Config.ClientSecret)

	if a.Config.RedirectURI != "" {
		data.Set("redirect_uri", a.Config.RedirectURI)
	}

	return a.fetchToken(ctx, data)
}

// Refresh trades a refresh token for a fresh access token.
func (a *Authenticator) Refresh(ctx context.Context, refreshToken string) (*Token, error) {
	data := url.Values{}
	data.Set("grant_type", "refresh_token")
	data.Set("refresh_token", refreshToken)
	data.Set("client_id", a.Config.ClientID)
	data.Set("client_secret", a.Config.ClientSecret)

	return a.fetchToken(ctx, data)
}

func (a *Authenticator) fetchToken(ctx context.Context, data url.Values) (*Token, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		a.Config.BaseURL+"/oauth/token",
		strings.NewReader(data.Encode()))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := a.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: %d, response: %s", errUnexpectedStatusCode,
			resp.StatusCode, string(bodyBytes))
	}

	var token Token

	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return nil, err
	}

	if token.AccessToken == "" {
		a.Logger.Debug().Msg("Token issues: response carried no access token")
		return nil, errMissingToken
	}

	return &token, nil
}
