package impl

import (
	"testing"

	"tourguard/config"
	"tourguard/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatchPolicy_Routing(t *testing.T) {
	policy, err := NewDispatchPolicy(newTestConfig())
	require.NoError(t, err)

	assert.Equal(t, entity.ChannelCall, policy.ChannelFor(entity.SeverityCritical))
	assert.Equal(t, entity.ChannelPush, policy.ChannelFor(entity.SeverityHigh))
	assert.Equal(t, entity.ChannelPush, policy.ChannelFor(entity.SeverityLow))
	assert.Equal(t, "+911123456789", policy.ContactFor(entity.ChannelCall))
	assert.Equal(t, "emergency@tourism.gov.in", policy.ContactFor(entity.ChannelSMS))
}

func TestDispatchPolicy_Defaults(t *testing.T) {
	policy, err := NewDispatchPolicy(&config.Config{})
	require.NoError(t, err)

	assert.Equal(t, entity.ChannelPush, policy.DefaultChannel())
	assert.Equal(t, entity.ChannelPush, policy.ChannelFor(entity.SeverityCritical))
	assert.Equal(t, "emergency@tourism.gov.in", policy.ContactFor(entity.ChannelEmail))
}

func TestDispatchPolicy_RejectsUnknownValues(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.DispatchConfig
	}{
		{name: "severity", cfg: config.DispatchConfig{ChannelBySeverity: map[string]string{"urgent": "call"}}},
		{name: "channel", cfg: config.DispatchConfig{ChannelBySeverity: map[string]string{"high": "pager"}}},
		{name: "contact channel", cfg: config.DispatchConfig{Contacts: map[string]string{"fax": "123"}}},
		{name: "default channel", cfg: config.DispatchConfig{DefaultChannel: "telegram"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.cfg
			_, err := NewDispatchPolicy(&config.Config{Dispatch: &cfg})
			assert.Error(t, err)
		})
	}
}

func TestDispatchPolicy_Message(t *testing.T) {
	policy, err := NewDispatchPolicy(newTestConfig())
	require.NoError(t, err)

	touristID := uuid.MustParse("0190f5a2-3b4c-7d8e-9f00-112233445566")
	inc := &entity.Incident{
		TouristID: touristID,
		Type:      entity.IncidentTypeMedical,
		Severity:  entity.SeverityCritical,
		Location:  &entity.Coordinate{Latitude: 1, Longitude: 2},
	}

	assert.Equal(t,
		"ALERT: CRITICAL incident reported by tourist 0190f5a2-3b4c-7d8e-9f00-112233445566. Type: medical. Location: GPS coordinates available.",
		policy.Message(inc))

	inc.Location = nil
	assert.Contains(t, policy.Message(inc), "Location: Location unknown.")
}
