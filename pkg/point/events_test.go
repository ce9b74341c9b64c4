package point

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultWebhookEvents(t *testing.T) {
	events := DefaultWebhookEvents()
	require.NotEmpty(t, events)

	for _, name := range events {
		assert.NotEmpty(t, name)
	}

	assert.Contains(t, events, "alarm_heard")
	assert.Contains(t, events, "alarm_silenced")
	assert.Contains(t, events, "battery_low")
	assert.Contains(t, events, "tamper_removed")

	// Categories without an off trigger contribute one name, the rest two.
	want := 0

	for _, pair := range Events {
		for _, name := range pair {
			if name != "" {
				want++
			}
		}
	}

	assert.Len(t, events, want)

	// Order is stable across calls.
	assert.Equal(t, events, DefaultWebhookEvents())
}

func TestSensorAliases(t *testing.T) {
	assert.Equal(t, "sound", sensorAliases["sound_pressure"])
}
