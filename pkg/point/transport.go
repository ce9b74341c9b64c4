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

// Package point pkg/point/transport.go implements the authenticated JSON
// transport used for every Point API call.
package point

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/carverauto/minut-go/pkg/logger"
)

// AuthTransport attaches a bearer token from a TokenProvider to every
// request and decodes JSON responses into typed records. It implements
// Requester.
type AuthTransport struct {
	HTTPClient HTTPClient
	Tokens     TokenProvider
	Logger     logger.Logger
}

// NewAuthTransport builds a transport around client. A nil client gets a
// stock http.Client with the fixed request timeout.
func NewAuthTransport(client HTTPClient, tokens TokenProvider, log logger.Logger) *AuthTransport {
	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}

	if log == nil {
		log = logger.NewTestLogger()
	}

	return &AuthTransport{
		HTTPClient: client,
		Tokens:     tokens,
		Logger:     log,
	}
}

// Request sends one API call. body is marshalled to JSON when non-nil; the
// response body is decoded into out when non-nil. Non-2xx statuses and 2xx
// bodies carrying a top-level "error" field both fail.
func (t *AuthTransport) Request(ctx context.Context, method, url string, body, out any) error {
	var reader io.Reader = http.NoBody

	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}

		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return err
	}

	token, err := t.Tokens.AccessToken(ctx)
	if err != nil {
		return fmt.Errorf("failed to get access token: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	t.Logger.Debug().Str("method", method).Str("url", url).Msg("Request")

	resp, err := t.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer t.closeResponse(resp)

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	t.Logger.Debug().
		Int("status", resp.StatusCode).
		Str("url", url).
		Int("bytes", len(bodyBytes)).
		Msg("Response")

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("%w: %d, response: %s", errUnexpectedStatusCode,
			resp.StatusCode, string(bodyBytes))
	}

	// The backend reports application-level failures as an "error" field
	// inside an HTTP 200 body.
	var apiErr struct {
		Error string `json:"error"`
	}

	if len(bodyBytes) > 0 {
		_ = json.Unmarshal(bodyBytes, &apiErr)

		if apiErr.Error != "" {
			return fmt.Errorf("%w: %s", errAPIError, apiErr.Error)
		}
	}

	if out != nil && len(bodyBytes) > 0 {
		if err := json.Unmarshal(bodyBytes, out); err != nil {
			return fmt.Errorf("failed to parse response: %w", err)
		}
	}

	return nil
}

func (t *AuthTransport) closeResponse(resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		t.Logger.Warn().Err(err).Msg("Failed to close response body")
	}
}
