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

// Package point pkg/point/config.go provides the configuration for the Point client.
package point

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

const (
	// DefaultBaseURL is the current Minut API root. Historical deployments
	// exposed the same resources under /v1 and /draft1 prefixes; point
	// BaseURL at those for older accounts.
	DefaultBaseURL = "https://api.minut.com/v8"

	defaultTimeout = 10 * time.Second
)

// Config holds the client-side settings for a Session.
type Config struct {
	BaseURL string        `json:"base_url"`
	Timeout time.Duration `json:"timeout"`
}

func (c *Config) Validate() error {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}

	c.BaseURL = strings.TrimRight(c.BaseURL, "/")

	u, err := url.Parse(c.BaseURL)
	if err != nil || !u.IsAbs() || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("%w: %q", errInvalidBaseURL, c.BaseURL)
	}

	if c.Timeout == 0 {
		c.Timeout = defaultTimeout
	}

	return nil
}

func (c *Config) devicesURL() string {
	return c.BaseURL + "/devices"
}

func (c *Config) sensorURL(deviceID, sensorURI string) string {
	return fmt.Sprintf("%s/devices/%s/%s?limit=1", c.BaseURL, deviceID, sensorURI)
}

func (c *Config) userURL() string {
	return c.BaseURL + "/users/me"
}

func (c *Config) homesURL() string {
	return c.BaseURL + "/homes"
}

func (c *Config) homeURL(homeID string) string {
	return fmt.Sprintf("%s/homes/%s", c.BaseURL, homeID)
}

func (c *Config) webhooksURL() string {
	return c.BaseURL + "/webhooks"
}

func (c *Config) webhookURL(hookID string) string {
	return fmt.Sprintf("%s/webhooks/%s", c.BaseURL, hookID)
}
