package entity

import (
	"time"

	"github.com/google/uuid"
)

// Channel is an alert delivery medium.
type Channel string

const (
	ChannelSMS   Channel = "sms"
	ChannelEmail Channel = "email"
	ChannelPush  Channel = "push"
	ChannelCall  Channel = "call"
)

// IsValid checks if the channel is supported.
func (c Channel) IsValid() bool {
	switch c {
	case ChannelSMS, ChannelEmail, ChannelPush, ChannelCall:
		return true
	default:
		return false
	}
}

// AlertStatus is the state of one dispatch attempt.
type AlertStatus string

const (
	AlertStatusPending      AlertStatus = "pending"
	AlertStatusSent         AlertStatus = "sent"
	AlertStatusFailed       AlertStatus = "failed"
	AlertStatusAcknowledged AlertStatus = "acknowledged"
)

// Alert records one attempt to notify an authority about an incident.
// At most one alert per (IncidentID, Channel) may be pending at any time.
type Alert struct {
	ID               uuid.UUID   `json:"id"`
	IncidentID       uuid.UUID   `json:"incident_id"`
	AuthorityContact string      `json:"authority_contact"`
	Message          string      `json:"message"`
	Channel          Channel     `json:"channel"`
	Status           AlertStatus `json:"status"`
	Detail           string      `json:"detail,omitempty"` // Notifier response or failure reason.
	Attempts         int         `json:"attempts"`
	CreatedAt        time.Time   `json:"created_at"`
	SentAt           *time.Time  `json:"sent_at,omitempty"`
	AcknowledgedAt   *time.Time  `json:"acknowledged_at,omitempty"`
	AcknowledgedBy   *uuid.UUID  `json:"acknowledged_by,omitempty"`
}
