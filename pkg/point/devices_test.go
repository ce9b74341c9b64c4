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
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func seedFullDevice(t *testing.T, session *Session, rq *MockRequester) *Device {
	t.Helper()

	seedDeviceCache(t, session, rq, map[string]any{
		"devices": []map[string]any{
			{
				"device_id":          "abc123",
				"description":        "Living room",
				"battery":            map[string]any{"percent": 55},
				"active":             true,
				"offline":            false,
				"last_heard_from_at": "2025-05-01T11:00:00Z",
				"ongoing_events":     []string{"avg_sound_high"},
				"device_mac":         "aa:bb:cc:dd:ee:ff",
				"hardware_version":   "2",
				"firmware":           map[string]any{"installed": "1.8.0"},
			},
		},
	})

	device, err := session.Device("abc123")
	require.NoError(t, err)

	return device
}

func TestDeviceAccessors(t *testing.T) {
	session, rq := setupSession(t)
	device := seedFullDevice(t, session, rq)

	name, err := device.Name()
	require.NoError(t, err)
	assert.Equal(t, "Living room", name)

	battery, err := device.BatteryLevel()
	require.NoError(t, err)
	assert.Equal(t, 55, battery)

	lastUpdate, err := device.LastUpdate()
	require.NoError(t, err)
	assert.Equal(t, "2025-05-01T11:00:00Z", lastUpdate)

	events, err := device.OngoingEvents()
	require.NoError(t, err)
	assert.Equal(t, []string{"avg_sound_high"}, events)

	assert.Equal(t, "abc123", device.DeviceID())
}

func TestDeviceInfo(t *testing.T) {
	session, rq := setupSession(t)
	device := seedFullDevice(t, session, rq)

	info, err := device.DeviceInfo()
	require.NoError(t, err)

	assert.Equal(t, DeviceInfo{
		Connections:  map[string]string{"mac": "aa:bb:cc:dd:ee:ff"},
		Identifiers:  "abc123",
		Manufacturer: "Minut",
		Model:        "Point v2",
		Name:         "Living room",
		SWVersion:    "1.8.0",
	}, info)
}

func TestDeviceStatus(t *testing.T) {
	session, rq := setupSession(t)
	device := seedFullDevice(t, session, rq)

	status, err := device.DeviceStatus()
	require.NoError(t, err)

	assert.Equal(t, DeviceStatus{
		Active:       true,
		Offline:      false,
		LastUpdate:   "2025-05-01T11:00:00Z",
		BatteryLevel: 55,
	}, status)
}

func TestDeviceString(t *testing.T) {
	session, rq := setupSession(t)
	device := seedFullDevice(t, session, rq)

	assert.Equal(t, "Device #abc123 Living room", device.String())

	// A device gone from the cache renders with an empty name.
	gone, err := session.Device("zz999")
	require.NoError(t, err)
	assert.Equal(t, "Device #zz999 ", gone.String())
}

func TestDeviceAccessors_MissingDevice(t *testing.T) {
	session, _ := setupSession(t)

	device, err := session.Device("gone42")
	require.NoError(t, err)

	_, err = device.Name()
	require.ErrorIs(t, err, ErrDeviceNotFound)

	_, err = device.BatteryLevel()
	require.ErrorIs(t, err, ErrDeviceNotFound)

	_, err = device.DeviceInfo()
	require.ErrorIs(t, err, ErrDeviceNotFound)

	_, err = device.DeviceStatus()
	require.ErrorIs(t, err, ErrDeviceNotFound)
}

func TestDeviceSensor_DelegatesToSession(t *testing.T) {
	session, rq := setupSession(t)

	seedDeviceCache(t, session, rq, map[string]any{
		"devices": []map[string]any{
			{
				"device_id": "abc123",
				"latest_sensor_values": map[string]any{
					"temperature": map[string]any{"value": 20.5},
				},
			},
		},
	})

	device, err := session.Device("abc123")
	require.NoError(t, err)

	value, ok := device.Sensor(context.Background(), "temperature")
	require.True(t, ok)
	assert.InEpsilon(t, 20.5, value, 0.0001)
}

func TestDeviceWebhook_DelegatesToSession(t *testing.T) {
	session, rq := setupSession(t)

	rq.EXPECT().Request(gomock.Any(), http.MethodGet, testWebhooksURL, nil, gomock.Any()).
		DoAndReturn(returnJSON(map[string]any{
			"hooks": []map[string]any{{"url": "https://x", "hook_id": "h1"}},
		}))

	session.UpdateWebhook(context.Background(), "https://x", "", nil)

	device, err := session.Device("abc123")
	require.NoError(t, err)
	assert.Equal(t, "h1", device.Webhook())
}
