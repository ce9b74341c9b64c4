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

// Package point pkg/point/errors.go
package point

import "errors"

var (
	errUnexpectedStatusCode = errors.New("unexpected status code")
	errAPIError             = errors.New("api error")
	errMissingToken         = errors.New("token response missing access token")
	errNoRefreshToken       = errors.New("no refresh token available")
	errMissingRequester     = errors.New("a requester is required")
	errMissingClientID      = errors.New("client_id is required")
	errInvalidBaseURL       = errors.New("base_url must be an absolute http(s) URL")
)

// Exported sentinels mark programmer misuse rather than remote conditions;
// remote failures are logged and surface as empty results.
var (
	// ErrInvalidDeviceID is returned for single-character device ids,
	// which the backend never issues.
	ErrInvalidDeviceID = errors.New("invalid device id")

	// ErrDeviceNotFound is returned by Device accessors when the id is no
	// longer present in the session cache.
	ErrDeviceNotFound = errors.New("device not known to session")
)
