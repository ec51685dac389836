package constants

// Environments
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Broadcaster providers
const (
	PubSubProviderNoop   = "noop"
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
	PubSubProviderAMQP   = "amqp"
)

// Broadcast topics
const (
	TopicIncidents = "incidents"
	TopicAlerts    = "alerts"
	TopicGeofences = "geofences"
)

// Broadcast event names
const (
	EventIncidentCreated   = "incident_created"
	EventIncidentUpdated   = "incident_updated"
	EventAlertSent         = "alert_sent"
	EventAlertFailed       = "alert_failed"
	EventAlertAcknowledged = "alert_acknowledged"
	EventZoneEntered       = "zone_entered"
	EventZoneExited        = "zone_exited"
)

// DefaultAuthorityContact is used when no contact is configured for a channel.
const DefaultAuthorityContact = "emergency@tourism.gov.in"
