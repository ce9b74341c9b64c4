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
	"sync"
	"time"
)

// tokenExpiryMargin is subtracted from the server-reported lifetime so a
// token is refreshed before it actually lapses.
const tokenExpiryMargin = time.Minute

// CachedTokenProvider caches the current token and refreshes it through an
// Authenticator when it nears expiry. Every newly obtained token is handed
// to the TokenSaver, if one is set.
type CachedTokenProvider struct {
	auth   *Authenticator
	saver  TokenSaver
	mu     sync.RWMutex
	token  *Token
	expiry time.Time
}

// NewCachedTokenProvider creates a provider seeded with token, which may be
// nil when the caller will exchange a code first and call SetToken.
func NewCachedTokenProvider(auth *Authenticator, token *Token, saver TokenSaver) *CachedTokenProvider {
	c := &CachedTokenProvider{
		auth:  auth,
		saver: saver,
	}

	if token != nil {
		c.setTokenLocked(token)
	}

	return c
}

// AccessToken returns the cached token if still valid, otherwise refreshes.
func (c *CachedTokenProvider) AccessToken(ctx context.Context) (string, error) {
	c.mu.RLock()
	if c.validLocked() {
		token := c.token.AccessToken
		c.mu.RUnlock()

		return token, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	// Double-check in case another goroutine already refreshed.
	if c.validLocked() {
		return c.token.AccessToken, nil
	}

	if c.token == nil || c.token.RefreshToken == "" {
		return "", errNoRefreshToken
	}

	token, err := c.auth.Refresh(ctx, c.token.RefreshToken)
	if err != nil {
		return "", err
	}

	// A refresh response may omit the refresh token; keep the old one.
	if token.RefreshToken == "" {
		token.RefreshToken = c.token.RefreshToken
	}

	c.setTokenLocked(token)

	if c.saver != nil {
		c.saver(token)
	}

	return token.AccessToken, nil
}

// SetToken replaces the cached token, e.g. after an initial code exchange.
func (c *CachedTokenProvider) SetToken(token *Token) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.setTokenLocked(token)
}

// InvalidateToken clears the cached token so the next call refreshes.
func (c *CachedTokenProvider) InvalidateToken() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.expiry = time.Time{}

	if c.token != nil {
		c.token.AccessToken = ""
	}
}

func (c *CachedTokenProvider) setTokenLocked(token *Token) {
	c.token = token
	c.expiry = time.Time{}

	if token != nil && token.ExpiresIn > 0 {
		ttl := time.Duration(token.ExpiresIn) * time.Second
		if ttl > 2*tokenExpiryMargin {
			ttl -= tokenExpiryMargin
		}

		c.expiry = time.Now().Add(ttl)
	}
}

func (c *CachedTokenProvider) validLocked() bool {
	if c.token == nil || c.token.AccessToken == "" {
		return false
	}

	return c.expiry.IsZero() || time.Now().Before(c.expiry)
}

// StaticTokenProvider serves a fixed access token, for integrations that
// already hold one.
type StaticTokenProvider string

// AccessToken implements TokenProvider.
func (s StaticTokenProvider) AccessToken(_ context.Context) (string, error) {
	return string(s), nil
}
