package response

import (
	"time"

	"github.com/google/uuid"

	"github.com/shockbase/levelborder/internal/model"
	"github.com/shockbase/levelborder/internal/services/border"
	"github.com/shockbase/levelborder/internal/services/playerconfig"
)

// Health is the health check response
type Health struct {
	Status string `json:"status"`
}

// Location represents a world position
type Location struct {
	World string  `json:"world"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Z     float64 `json:"z"`
}

// LocationFromModel converts a model.Location
func LocationFromModel(l model.Location) Location {
	return Location{World: l.World, X: l.X, Y: l.Y, Z: l.Z}
}

func optionalLocation(l *model.Location) *Location {
	if l == nil {
		return nil
	}
	loc := LocationFromModel(*l)
	return &loc
}

// PlayerList lists stored player IDs
type PlayerList struct {
	Players []string `json:"players"`
}

// PlayerListFromIDs converts player UUIDs
func PlayerListFromIDs(ids []uuid.UUID) PlayerList {
	players := make([]string, len(ids))
	for i, id := range ids {
		players[i] = id.String()
	}
	return PlayerList{Players: players}
}

// PlayerState represents a stored player document
type PlayerState struct {
	ID                  string    `json:"id"`
	BorderCenter        Location  `json:"border_center"`
	BorderSize          int       `json:"border_size"`
	MinBorderRadius     int       `json:"min_border_radius"`
	GrowSpawnTree       bool      `json:"grow_spawn_tree"`
	SpawnTreeGrown      bool      `json:"spawn_tree_grown"`
	StartTime           time.Time `json:"start_time"`
	Dead                bool      `json:"dead"`
	Level               int       `json:"level"`
	OverWorldName       string    `json:"over_world_name"`
	NetherWorldName     string    `json:"nether_world_name,omitempty"`
	EndWorldName        string    `json:"end_world_name,omitempty"`
	NetherSpawnLocation *Location `json:"nether_spawn_location,omitempty"`
	EndSpawnLocation    *Location `json:"end_spawn_location,omitempty"`
}

// PlayerStateFromModel converts a model.PlayerState. BorderSize is the size
// the player's border has at the stored level.
func PlayerStateFromModel(id uuid.UUID, s model.PlayerState) PlayerState {
	return PlayerState{
		ID:                  id.String(),
		BorderCenter:        LocationFromModel(s.BorderCenter),
		BorderSize:          border.Size(s.Level, s.MinBorderRadius),
		MinBorderRadius:     s.MinBorderRadius,
		GrowSpawnTree:       s.GrowSpawnTree,
		SpawnTreeGrown:      s.SpawnTreeGrown,
		StartTime:           time.Unix(s.StartTime, 0).UTC(),
		Dead:                s.Dead,
		Level:               s.Level,
		OverWorldName:       s.OverWorldName,
		NetherWorldName:     s.NetherWorldName,
		EndWorldName:        s.EndWorldName,
		NetherSpawnLocation: optionalLocation(s.NetherSpawnLocation),
		EndSpawnLocation:    optionalLocation(s.EndSpawnLocation),
	}
}

// ResetReport lists what a reset deleted
type ResetReport struct {
	PlayerID string   `json:"player_id"`
	World    string   `json:"world"`
	Deleted  []string `json:"deleted"`
	Failed   []string `json:"failed,omitempty"`
}

// ResetReportFromService converts a playerconfig.ResetReport
func ResetReportFromService(r playerconfig.ResetReport) ResetReport {
	return ResetReport{
		PlayerID: r.PlayerID.String(),
		World:    r.World,
		Deleted:  r.Deleted,
		Failed:   r.Failed,
	}
}

// BorderSize is the result of the sizing formula
type BorderSize struct {
	Level     int `json:"level"`
	MinRadius int `json:"min_radius"`
	Size      int `json:"size"`
}
