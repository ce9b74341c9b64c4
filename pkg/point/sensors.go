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
)

// ReadSensor returns the latest value for a sensor on a device. The sensor
// name is normalized through the alias table first. When the cached device
// record already carries the value it is served from the cache; the
// per-sensor history endpoint is only consulted otherwise. The second
// result is false when no value is available.
func (s *Session) ReadSensor(ctx context.Context, deviceID, sensorURI string) (float64, bool) {
	if alias, ok := sensorAliases[sensorURI]; ok {
		sensorURI = alias
	}

	if device, ok := s.DeviceRaw(deviceID); ok {
		if sample, ok := device.LatestSensorValues[sensorURI]; ok {
			return sample.Value, true
		}
	}

	var resp sensorValuesResponse

	if err := s.rq.Request(ctx, http.MethodGet, s.cfg.sensorURL(deviceID, sensorURI), nil, &resp); err != nil {
		s.logger.Warn().
			Err(err).
			Str("device_id", deviceID).
			Str("sensor", sensorURI).
			Msg("Failed to read sensor")

		return 0, false
	}

	if len(resp.Values) == 0 {
		return 0, false
	}

	return resp.Values[len(resp.Values)-1].Value, true
}
