package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Fprintln(o.w, string(data))
	} else {
		fmt.Fprintln(o.w, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case PlayerList:
		o.printPlayerList(v)
	case PlayerState:
		o.printPlayerState(v)
	case ResetReport:
		o.printResetReport(v)
	case BorderSize:
		o.printBorderSize(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// PlayerList response type (matches API)
type PlayerList struct {
	Players []string `json:"players"`
}

// Location response type
type Location struct {
	World string  `json:"world"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Z     float64 `json:"z"`
}

func (l Location) String() string {
	return fmt.Sprintf("%s (%.1f, %.1f, %.1f)", l.World, l.X, l.Y, l.Z)
}

// PlayerState response type
type PlayerState struct {
	ID                  string    `json:"id"`
	BorderCenter        Location  `json:"border_center"`
	BorderSize          int       `json:"border_size"`
	MinBorderRadius     int       `json:"min_border_radius"`
	GrowSpawnTree       bool      `json:"grow_spawn_tree"`
	SpawnTreeGrown      bool      `json:"spawn_tree_grown"`
	StartTime           string    `json:"start_time"`
	Dead                bool      `json:"dead"`
	Level               int       `json:"level"`
	OverWorldName       string    `json:"over_world_name"`
	NetherWorldName     string    `json:"nether_world_name,omitempty"`
	EndWorldName        string    `json:"end_world_name,omitempty"`
	NetherSpawnLocation *Location `json:"nether_spawn_location,omitempty"`
	EndSpawnLocation    *Location `json:"end_spawn_location,omitempty"`
}

// ResetReport response type
type ResetReport struct {
	PlayerID string   `json:"player_id"`
	World    string   `json:"world"`
	Deleted  []string `json:"deleted"`
	Failed   []string `json:"failed,omitempty"`
}

// BorderSize response type
type BorderSize struct {
	Level     int `json:"level"`
	MinRadius int `json:"min_radius"`
	Size      int `json:"size"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printPlayerList(l PlayerList) {
	fmt.Fprintf(o.w, "Players (%d):\n", len(l.Players))
	for _, id := range l.Players {
		fmt.Fprintf(o.w, "  - %s\n", id)
	}
}

func (o *Output) printPlayerState(p PlayerState) {
	status := "alive"
	if p.Dead {
		status = "dead"
	}
	fmt.Fprintf(o.w, "Player: %s\n", p.ID)
	fmt.Fprintf(o.w, "Status: %s\n", status)
	fmt.Fprintf(o.w, "Level: %d\n", p.Level)
	fmt.Fprintf(o.w, "Border: %d blocks around %s\n", p.BorderSize, p.BorderCenter)
	fmt.Fprintf(o.w, "Started: %s\n", p.StartTime)

	worlds := []string{p.OverWorldName}
	if p.NetherWorldName != "" {
		worlds = append(worlds, p.NetherWorldName)
	}
	if p.EndWorldName != "" {
		worlds = append(worlds, p.EndWorldName)
	}
	fmt.Fprintf(o.w, "Worlds: %s\n", strings.Join(worlds, ", "))

	if p.NetherSpawnLocation != nil {
		fmt.Fprintf(o.w, "Nether spawn: %s\n", *p.NetherSpawnLocation)
	}
	if p.EndSpawnLocation != nil {
		fmt.Fprintf(o.w, "End spawn: %s\n", *p.EndSpawnLocation)
	}
}

func (o *Output) printResetReport(r ResetReport) {
	fmt.Fprintf(o.w, "Reset %s in %s\n", r.PlayerID, r.World)
	if len(r.Deleted) == 0 {
		fmt.Fprintln(o.w, "Nothing to delete")
	}
	for _, path := range r.Deleted {
		fmt.Fprintf(o.w, "  deleted %s\n", path)
	}
	for _, path := range r.Failed {
		fmt.Fprintf(o.w, "  FAILED  %s\n", path)
	}
}

func (o *Output) printBorderSize(b BorderSize) {
	fmt.Fprintf(o.w, "Level %d with min radius %d: %d blocks\n", b.Level, b.MinRadius, b.Size)
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Fprintf(o.w, "Status: %s\n", h.Status)
}
