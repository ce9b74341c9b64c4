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
	"fmt"
)

// Device is a stateless view over one device in the session cache. It holds
// no data of its own; every accessor re-reads the cache, so a view always
// reflects the latest Update. Accessors return ErrDeviceNotFound once the
// device has disappeared from the cache; re-resolve views after Update when
// device churn is possible.
type Device struct {
	session  *Session
	deviceID string
}

// DeviceID returns the id the view is bound to.
func (d *Device) DeviceID() string {
	return d.deviceID
}

func (d *Device) String() string {
	name, _ := d.Name()
	return fmt.Sprintf("Device #%s %s", d.deviceID, name)
}

func (d *Device) data() (DeviceData, error) {
	device, ok := d.session.DeviceRaw(d.deviceID)
	if !ok {
		return DeviceData{}, fmt.Errorf("%w: %s", ErrDeviceNotFound, d.deviceID)
	}

	return device, nil
}

// Name returns the device's display name.
func (d *Device) Name() (string, error) {
	device, err := d.data()
	if err != nil {
		return "", err
	}

	return device.Description, nil
}

// BatteryLevel returns the battery charge in percent.
func (d *Device) BatteryLevel() (int, error) {
	device, err := d.data()
	if err != nil {
		return 0, err
	}

	return device.Battery.Percent, nil
}

// LastUpdate returns the timestamp the device last reported in.
func (d *Device) LastUpdate() (string, error) {
	device, err := d.data()
	if err != nil {
		return "", err
	}

	return device.LastHeardFromAt, nil
}

// OngoingEvents returns the device's ongoing event descriptors.
func (d *Device) OngoingEvents() ([]string, error) {
	device, err := d.data()
	if err != nil {
		return nil, err
	}

	return device.OngoingEvents, nil
}

// DeviceInfo returns the derived hardware descriptor.
func (d *Device) DeviceInfo() (DeviceInfo, error) {
	device, err := d.data()
	if err != nil {
		return DeviceInfo{}, err
	}

	return DeviceInfo{
		Connections:  map[string]string{"mac": device.DeviceMAC},
		Identifiers:  device.DeviceID,
		Manufacturer: "Minut",
		Model:        fmt.Sprintf("Point v%s", device.HardwareVersion),
		Name:         device.Description,
		SWVersion:    device.Firmware.Installed,
	}, nil
}

// DeviceStatus returns the derived status summary.
func (d *Device) DeviceStatus() (DeviceStatus, error) {
	device, err := d.data()
	if err != nil {
		return DeviceStatus{}, err
	}

	return DeviceStatus{
		Active:       device.Active,
		Offline:      device.Offline,
		LastUpdate:   device.LastHeardFromAt,
		BatteryLevel: device.Battery.Percent,
	}, nil
}

// Sensor reads the latest value for sensorType through the session.
func (d *Device) Sensor(ctx context.Context, sensorType string) (float64, bool) {
	return d.session.ReadSensor(ctx, d.deviceID, sensorType)
}

// Webhook returns the session's current hook id.
func (d *Device) Webhook() string {
	return d.session.Webhook()
}
