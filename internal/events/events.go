// Package events provides domain event definitions for decoupled,
// event-driven communication between modules.
// Infrastructure (Bus, Handler) is in platform/events.
package events

import (
	"leaddesk_backend/platform/events"
	"leaddesk_backend/platform/logger"

	"github.com/google/uuid"
)

// Re-export platform types for convenience
type (
	Event       = events.Event
	Bus         = events.Bus
	Handler     = events.Handler
	HandlerFunc = events.HandlerFunc
	BaseEvent   = events.BaseEvent
	InMemoryBus = events.InMemoryBus
)

// Re-export platform functions
var NewBaseEvent = events.NewBaseEvent

// NewInMemoryBus creates a new in-memory event bus.
func NewInMemoryBus(log *logger.Logger) *InMemoryBus {
	return events.NewInMemoryBus(log)
}

// =============================================================================
// Leads Domain Events
// =============================================================================

// LeadCreated is published when a new lead is created.
type LeadCreated struct {
	BaseEvent
	LeadID uuid.UUID `json:"leadId"`
	Email  string    `json:"email"`
	Status string    `json:"status"`
}

func (e LeadCreated) EventName() string { return "leads.lead.created" }

// LeadUpdated is published when lead data changes.
type LeadUpdated struct {
	BaseEvent
	LeadID uuid.UUID `json:"leadId"`
	Status string    `json:"status"`
}

func (e LeadUpdated) EventName() string { return "leads.lead.updated" }

// LeadDeleted is published when a lead is removed.
type LeadDeleted struct {
	BaseEvent
	LeadID uuid.UUID `json:"leadId"`
}

func (e LeadDeleted) EventName() string { return "leads.lead.deleted" }
