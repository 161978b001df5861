package hub

import (
	"time"

	"github.com/wvwild/adventure-hub/internal/domain/filter"
)

// SessionView is the filter view of one hub page session.
type SessionView struct {
	ID        string                 `json:"id"`
	ExpiresAt time.Time              `json:"expiresAt"`
	Action    *filter.ActionEnvelope `json:"action,omitempty"`
	filter.View
}

// ToggleRequest is a single click on a filter control.
type ToggleRequest struct {
	Axis  filter.Axis `json:"axis"`
	Value string      `json:"value"`
}

// Config holds runtime knobs for the hub service.
type Config struct {
	SessionTTL time.Duration
}
