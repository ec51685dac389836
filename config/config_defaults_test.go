package config

import (
	"testing"
	"time"

	"tourguard/internal/domain/constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults_EmptyConfig(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	require.NotNil(t, cfg.Auth)
	assert.Equal(t, defaultIssuer, cfg.Auth.Issuer)
	assert.Equal(t, defaultAccessTTL, cfg.Auth.AccessTTL)

	require.NotNil(t, cfg.PubSub)
	assert.Equal(t, constants.PubSubProviderNoop, cfg.PubSub.Provider)
	assert.Equal(t, defaultExchange, cfg.PubSub.Exchange)

	require.NotNil(t, cfg.Notifier)
	assert.True(t, cfg.Notifier.Simulate)
	assert.Equal(t, defaultNotifierTimeout, cfg.Notifier.Timeout)

	require.NotNil(t, cfg.Dispatch)
	assert.Equal(t, "call", cfg.Dispatch.ChannelBySeverity["critical"])
	assert.Equal(t, "push", cfg.Dispatch.DefaultChannel)
	assert.Equal(t, constants.DefaultAuthorityContact, cfg.Dispatch.DefaultContact)

	assert.Equal(t, 30*time.Second, cfg.Geofence.RefreshInterval)
	assert.Equal(t, defaultMQTTTopic, cfg.MQTT.Topic)
	assert.Equal(t, 5, cfg.Worker.MaxRetryAttempts)
	assert.Equal(t, 2*time.Second, cfg.Worker.RetryBackoff)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Dispatch: &DispatchConfig{
			ChannelBySeverity: map[string]string{"high": "sms"},
			DefaultChannel:    "email",
			DefaultContact:    "ops@example.org",
		},
		Worker: &WorkerConfig{Port: 9000, MaxRetryAttempts: 2},
	}
	applyDefaults(cfg)

	assert.Equal(t, map[string]string{"high": "sms"}, cfg.Dispatch.ChannelBySeverity)
	assert.Equal(t, "email", cfg.Dispatch.DefaultChannel)
	assert.Equal(t, "ops@example.org", cfg.Dispatch.DefaultContact)
	assert.Equal(t, 9000, cfg.Worker.Port)
	assert.Equal(t, 2, cfg.Worker.MaxRetryAttempts)
}
