package impl

import (
	"fmt"
	"strings"

	"tourguard/config"
	"tourguard/internal/domain/constants"
	"tourguard/internal/domain/entity"

	"github.com/pkg/errors"
)

// DispatchPolicy decides which channel and contact an incident's alerts go to.
type DispatchPolicy struct {
	bySeverity     map[entity.Severity]entity.Channel
	defaultChannel entity.Channel
	contacts       map[entity.Channel]string
	defaultContact string
}

// NewDispatchPolicy builds the policy from configuration, rejecting unknown severities and channels.
func NewDispatchPolicy(cfg *config.Config) (*DispatchPolicy, error) {
	policy := &DispatchPolicy{
		bySeverity:     make(map[entity.Severity]entity.Channel),
		defaultChannel: entity.ChannelPush,
		contacts:       make(map[entity.Channel]string),
		defaultContact: constants.DefaultAuthorityContact,
	}

	dc := cfg.Dispatch
	if dc == nil {
		return policy, nil
	}

	for sev, ch := range dc.ChannelBySeverity {
		severity, channel := entity.Severity(sev), entity.Channel(ch)
		if !severity.IsValid() {
			return nil, errors.Errorf("dispatch.channelBySeverity: unknown severity %q", sev)
		}
		if !channel.IsValid() {
			return nil, errors.Errorf("dispatch.channelBySeverity: unknown channel %q", ch)
		}
		policy.bySeverity[severity] = channel
	}

	for ch, contact := range dc.Contacts {
		channel := entity.Channel(ch)
		if !channel.IsValid() {
			return nil, errors.Errorf("dispatch.contacts: unknown channel %q", ch)
		}
		policy.contacts[channel] = contact
	}

	if dc.DefaultChannel != "" {
		channel := entity.Channel(dc.DefaultChannel)
		if !channel.IsValid() {
			return nil, errors.Errorf("dispatch.defaultChannel: unknown channel %q", dc.DefaultChannel)
		}
		policy.defaultChannel = channel
	}
	if dc.DefaultContact != "" {
		policy.defaultContact = dc.DefaultContact
	}

	return policy, nil
}

// ChannelFor returns the alert channel for a severity.
func (p *DispatchPolicy) ChannelFor(severity entity.Severity) entity.Channel {
	if ch, ok := p.bySeverity[severity]; ok {
		return ch
	}

	return p.defaultChannel
}

// DefaultChannel is used for manual alerts that name no channel.
func (p *DispatchPolicy) DefaultChannel() entity.Channel {
	return p.defaultChannel
}

// ContactFor returns the authority contact for a channel.
func (p *DispatchPolicy) ContactFor(channel entity.Channel) string {
	if contact, ok := p.contacts[channel]; ok && contact != "" {
		return contact
	}

	return p.defaultContact
}

// Message renders the default alert text for an incident.
func (p *DispatchPolicy) Message(inc *entity.Incident) string {
	location := "Location unknown"
	if inc.Location != nil {
		location = "GPS coordinates available"
	}

	return fmt.Sprintf("ALERT: %s incident reported by tourist %s. Type: %s. Location: %s.",
		strings.ToUpper(string(inc.Severity)), inc.TouristID, inc.Type, location)
}
