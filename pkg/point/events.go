package point

import "sort"

// Events maps an event category to the pair of trigger names signalling the
// on and off transitions. An empty name means the category has no off
// trigger.
var Events = map[string][2]string{
	"alarm":        {"alarm_heard", "alarm_silenced"},
	"battery":      {"battery_low", ""},
	"button_press": {"short_button_press", ""},
	"cold":         {"temperature_low", "temperature_risen_normal"},
	"connectivity": {"device_online", "device_offline"},
	"dry":          {"humidity_low", "humidity_risen_normal"},
	"glass":        {"glassbreak", ""},
	"heat":         {"temperature_high", "temperature_dropped_normal"},
	"moisture":     {"humidity_high", "humidity_dropped_normal"},
	"motion":       {"pir_motion", ""},
	"noise":        {"disturbance_first_notice", "disturbance_ended"},
	"sound":        {"avg_sound_high", "sound_level_dropped_normal"},
	"tamper_old":   {"tamper", ""},
	// tamper_removed/tamper_mounted replace tamper on newer hardware.
	"tamper": {"tamper_removed", "tamper_mounted"},
}

// DefaultWebhookEvents flattens the Events table into the list used when
// registering a webhook without an explicit event selection. Empty trigger
// names are skipped and the order is stable across calls.
func DefaultWebhookEvents() []string {
	categories := make([]string, 0, len(Events))
	for category := range Events {
		categories = append(categories, category)
	}

	sort.Strings(categories)

	events := make([]string, 0, 2*len(categories))

	for _, category := range categories {
		for _, name := range Events[category] {
			if name != "" {
				events = append(events, name)
			}
		}
	}

	return events
}

// sensorAliases maps logical sensor names to the URIs the API serves them
// under.
var sensorAliases = map[string]string{
	"sound_pressure": "sound",
}
