package model

import "time"

// EventType identifies the type of event
type EventType string

const (
	// Host lifecycle events
	EventPlayerJoined    EventType = "player_joined"
	EventLevelChanged    EventType = "level_changed"
	EventPlayerDied      EventType = "player_died"
	EventPlayerRespawned EventType = "player_respawned"
	EventPlayerQuit      EventType = "player_quit"
	EventWorldChanged    EventType = "world_changed"
	EventPortalUsed      EventType = "portal_used"

	// Command events
	EventPlayerReset EventType = "player_reset"
)

// Event is the base structure for all events
type Event struct {
	Type      EventType
	Timestamp time.Time
	Player    PlayerSnapshot // The player the event is about
	Payload   any            // Type-specific data
}

// LevelChangePayload contains data for level changed events
type LevelChangePayload struct {
	OldLevel int `json:"old_level"`
	NewLevel int `json:"new_level"`
}

// PortalPayload contains data for portal events
type PortalPayload struct {
	To Location `json:"to"`
}

// ResetPayload contains data for player reset events
type ResetPayload struct {
	Deleted []string `json:"deleted"`
}
