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

// Package point provides a client for the Minut Point home-monitoring API:
// OAuth2-authenticated transport, a cached device/home state snapshot with
// convenience views, alarm arming, and push-notification webhook
// registration.
package point

import (
	"context"
	"net/http"
	"sort"
	"sync"

	"github.com/carverauto/minut-go/pkg/logger"
)

// Session owns the authenticated transport, the in-memory device and home
// caches, and the current webhook registration. The caches are replaced
// wholesale under the session lock; readers never observe a partial
// replacement. Remote failures are logged and degrade to empty results, so
// a failed Update leaves the previous snapshot intact.
type Session struct {
	cfg    *Config
	rq     Requester
	logger logger.Logger

	mu      sync.Mutex
	devices map[string]DeviceData
	homes   map[string]Home
	hook    *Hook
}

// NewSession builds a Session on top of an existing Requester.
func NewSession(cfg *Config, rq Requester, log logger.Logger) (*Session, error) {
	if cfg == nil {
		cfg = &Config{}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if rq == nil {
		return nil, errMissingRequester
	}

	if log == nil {
		var err error

		log, err = logger.NewLogger(nil)
		if err != nil {
			return nil, err
		}
	}

	return &Session{
		cfg:     cfg,
		rq:      rq,
		logger:  log,
		devices: make(map[string]DeviceData),
		homes:   make(map[string]Home),
	}, nil
}

// NewDefault builds a Session with the stock AuthTransport wired to tokens.
func NewDefault(cfg *Config, tokens TokenProvider, log logger.Logger) (*Session, error) {
	if cfg == nil {
		cfg = &Config{}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	transport := NewAuthTransport(&http.Client{Timeout: cfg.Timeout}, tokens, log)

	return NewSession(cfg, transport, log)
}

// Update fetches the device list and, when devices were found, the home
// list, replacing both caches. It returns the raw device list, or nil when
// the fetch failed or came back empty; the caches keep their previous
// content in that case.
func (s *Session) Update(ctx context.Context) []DeviceData {
	devices := s.requestDevices(ctx)
	if len(devices) == 0 {
		return nil
	}

	state := make(map[string]DeviceData, len(devices))
	for _, device := range devices {
		state[device.DeviceID] = device
	}

	s.mu.Lock()
	s.devices = state
	s.mu.Unlock()

	s.logger.Debug().Strs("device_ids", s.DeviceIDs()).Msg("Found devices")

	// Homes are only refreshed after a successful device fetch.
	if homes := s.requestHomes(ctx); len(homes) > 0 {
		homeState := make(map[string]Home, len(homes))
		for _, home := range homes {
			homeState[home.HomeID] = home
		}

		s.mu.Lock()
		s.homes = homeState
		s.mu.Unlock()
	}

	return devices
}

// Homes returns the cached homes that expose an alarm status, keyed by
// home id. No network call is made.
func (s *Session) Homes() map[string]Home {
	s.mu.Lock()
	defer s.mu.Unlock()

	homes := make(map[string]Home)

	for id, home := range s.homes {
		if home.AlarmStatus != nil {
			homes[id] = home
		}
	}

	return homes
}

// DeviceIDs lists the known device ids in stable order.
func (s *Session) DeviceIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]string, 0, len(s.devices))
	for id := range s.devices {
		ids = append(ids, id)
	}

	sort.Strings(ids)

	return ids
}

// DeviceRaw returns the raw cached record for a device.
func (s *Session) DeviceRaw(deviceID string) (DeviceData, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	device, ok := s.devices[deviceID]

	return device, ok
}

// Devices returns a fresh slice of views, one per known device. The slice
// reflects the cache as of the last Update; it is rebuilt on every call.
func (s *Session) Devices() []*Device {
	ids := s.DeviceIDs()

	devices := make([]*Device, 0, len(ids))
	for _, id := range ids {
		devices = append(devices, &Device{session: s, deviceID: id})
	}

	return devices
}

// Device returns a view for one device. Single-character ids are rejected
// as programmer error; the backend never issues them.
func (s *Session) Device(deviceID string) (*Device, error) {
	if len(deviceID) == 1 {
		return nil, ErrInvalidDeviceID
	}

	return &Device{session: s, deviceID: deviceID}, nil
}

// User fetches the authenticated user's profile, or nil on failure.
func (s *Session) User(ctx context.Context) *User {
	var user User

	if err := s.rq.Request(ctx, http.MethodGet, s.cfg.userURL(), nil, &user); err != nil {
		s.logger.Warn().Err(err).Msg("Failed to fetch user")
		return nil
	}

	return &user
}

// AlarmArm arms the home's alarm. True only when the backend echoed the
// requested status back exactly.
func (s *Session) AlarmArm(ctx context.Context, homeID string) bool {
	return s.setAlarm(ctx, homeID, "on")
}

// AlarmDisarm disarms the home's alarm.
func (s *Session) AlarmDisarm(ctx context.Context, homeID string) bool {
	return s.setAlarm(ctx, homeID, "off")
}

func (s *Session) setAlarm(ctx context.Context, homeID, status string) bool {
	var resp alarmResponse

	payload := map[string]string{"alarm_status": status}

	if err := s.rq.Request(ctx, http.MethodPut, s.cfg.homeURL(homeID), payload, &resp); err != nil {
		s.logger.Warn().Err(err).Str("home_id", homeID).Msg("Failed to set alarm status")
		return false
	}

	return resp.AlarmStatus == status
}

func (s *Session) requestDevices(ctx context.Context) []DeviceData {
	var resp devicesResponse

	if err := s.rq.Request(ctx, http.MethodGet, s.cfg.devicesURL(), nil, &resp); err != nil {
		s.logger.Warn().Err(err).Msg("Failed to fetch devices")
		return nil
	}

	return resp.Devices
}

func (s *Session) requestHomes(ctx context.Context) []Home {
	var resp homesResponse

	if err := s.rq.Request(ctx, http.MethodGet, s.cfg.homesURL(), nil, &resp); err != nil {
		s.logger.Warn().Err(err).Msg("Failed to fetch homes")
		return nil
	}

	return resp.Homes
}
