package point

// DeviceData is the raw representation of a device as returned by the API.
// A device record is replaced wholesale on every successful Update; it is
// never partially mutated.
type DeviceData struct {
	DeviceID           string                 `json:"device_id"`
	Description        string                 `json:"description,omitempty"`
	Battery            Battery                `json:"battery"`
	Active             bool                   `json:"active"`
	Offline            bool                   `json:"offline"`
	LastHeardFromAt    string                 `json:"last_heard_from_at,omitempty"`
	OngoingEvents      []string               `json:"ongoing_events,omitempty"`
	DeviceMAC          string                 `json:"device_mac,omitempty"`
	HardwareVersion    string                 `json:"hardware_version,omitempty"`
	Firmware           Firmware               `json:"firmware"`
	LatestSensorValues map[string]SensorValue `json:"latest_sensor_values,omitempty"`
}

// Battery is the battery section of a device record.
type Battery struct {
	Percent int `json:"percent"`
}

// Firmware is the firmware section of a device record.
type Firmware struct {
	Installed string `json:"installed,omitempty"`
}

// SensorValue is a single timestamped sensor sample.
type SensorValue struct {
	Value float64 `json:"value"`
	At    string  `json:"datetime,omitempty"`
}

// Home is a logical grouping of devices. AlarmStatus is nil for homes
// without the alarm feature; the Homes view filters those out.
type Home struct {
	HomeID      string  `json:"home_id"`
	Name        string  `json:"name,omitempty"`
	AlarmStatus *string `json:"alarm_status,omitempty"`
}

// Hook is a server-side webhook registration.
type Hook struct {
	HookID string   `json:"hook_id"`
	URL    string   `json:"url"`
	Events []string `json:"events,omitempty"`
	Secret string   `json:"secret,omitempty"`
}

// User is the authenticated user's profile.
type User struct {
	UserID   string `json:"user_id"`
	FullName string `json:"fullname,omitempty"`
	Email    string `json:"email,omitempty"`
}

// Token is an OAuth2 token as returned by the token endpoint.
type Token struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type,omitempty"`
	RefreshToken string `json:"refresh_token,omitempty"`
	ExpiresIn    int    `json:"expires_in,omitempty"`
}

// DeviceInfo is the derived hardware descriptor exposed by a Device view.
type DeviceInfo struct {
	Connections  map[string]string `json:"connections"`
	Identifiers  string            `json:"identifiers"`
	Manufacturer string            `json:"manufacturer"`
	Model        string            `json:"model"`
	Name         string            `json:"name,omitempty"`
	SWVersion    string            `json:"sw_version,omitempty"`
}

// DeviceStatus is the derived status summary exposed by a Device view.
type DeviceStatus struct {
	Active       bool   `json:"active"`
	Offline      bool   `json:"offline"`
	LastUpdate   string `json:"last_update,omitempty"`
	BatteryLevel int    `json:"battery_level"`
}

type devicesResponse struct {
	Devices []DeviceData `json:"devices"`
}

type homesResponse struct {
	Homes []Home `json:"homes"`
}

type hooksResponse struct {
	Hooks []Hook `json:"hooks"`
}

type sensorValuesResponse struct {
	Values []SensorValue `json:"values"`
}

type alarmResponse struct {
	AlarmStatus string `json:"alarm_status"`
}
