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

// Package point pkg/point/webhook.go manages the push-notification hook
// registration held by a Session. At most one hook is tracked per session.
package point

import (
	"context"
	"net/http"
)

// UpdateWebhook registers webhookURL for push notifications unless the
// backend already has a hook for that URL. An existing hook is adopted as
// the current registration and nil is returned; a new registration returns
// the created hook. webhookID seeds the local registration so RemoveWebhook
// works even when the hook listing is unavailable. With no explicit events
// the full default event list is registered.
func (s *Session) UpdateWebhook(ctx context.Context, webhookURL, webhookID string, events []string) *Hook {
	s.mu.Lock()
	s.hook = &Hook{HookID: webhookID, URL: webhookURL}
	s.mu.Unlock()

	hooks, ok := s.requestHooks(ctx)
	if !ok {
		return nil
	}

	for i := range hooks {
		if hooks[i].URL == webhookURL {
			s.mu.Lock()
			s.hook = &hooks[i]
			s.mu.Unlock()

			return nil
		}
	}

	if len(events) == 0 {
		events = DefaultWebhookEvents()
	}

	hook := s.registerWebhook(ctx, webhookURL, events)

	s.mu.Lock()
	s.hook = hook
	s.mu.Unlock()

	return hook
}

// RemoveWebhook deletes the current registration server-side and clears the
// local state. No-op when nothing is registered.
func (s *Session) RemoveWebhook(ctx context.Context) {
	s.mu.Lock()
	hook := s.hook
	s.mu.Unlock()

	if hook == nil || hook.HookID == "" {
		return
	}

	if err := s.rq.Request(ctx, http.MethodDelete, s.cfg.webhookURL(hook.HookID), nil, nil); err != nil {
		s.logger.Warn().Err(err).Str("hook_id", hook.HookID).Msg("Failed to remove webhook")
		return
	}

	s.mu.Lock()
	s.hook = nil
	s.mu.Unlock()
}

// Webhook returns the current hook id, or the empty string when no hook is
// registered.
func (s *Session) Webhook() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.hook == nil {
		return ""
	}

	return s.hook.HookID
}

func (s *Session) requestHooks(ctx context.Context) ([]Hook, bool) {
	var resp hooksResponse

	if err := s.rq.Request(ctx, http.MethodGet, s.cfg.webhooksURL(), nil, &resp); err != nil {
		s.logger.Warn().Err(err).Msg("Failed to list webhooks")
		return nil, false
	}

	return resp.Hooks, true
}

func (s *Session) registerWebhook(ctx context.Context, webhookURL string, events []string) *Hook {
	var hook Hook

	payload := map[string]any{
		"url":    webhookURL,
		"events": events,
	}

	if err := s.rq.Request(ctx, http.MethodPost, s.cfg.webhooksURL(), payload, &hook); err != nil {
		s.logger.Warn().Err(err).Str("url", webhookURL).Msg("Failed to register webhook")
		return nil
	}

	s.logger.Debug().Str("hook_id", hook.HookID).Str("url", hook.URL).Msg("Registered hook")

	return &hook
}
