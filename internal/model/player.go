package model

import "github.com/google/uuid"

// GameMode is the host game mode of a player
type GameMode string

const (
	GameModeSurvival  GameMode = "survival"
	GameModeCreative  GameMode = "creative"
	GameModeAdventure GameMode = "adventure"
	GameModeSpectator GameMode = "spectator" // No border enforcement, no world interaction
)

// PlayerSnapshot is what an event knows about its player at dispatch time
type PlayerSnapshot struct {
	ID              uuid.UUID
	Name            string
	Location        Location
	Level           int
	GameMode        GameMode
	HasPlayedBefore bool
}

// PlayerState is the persisted border state of a single player.
// Keys match the on-disk document written for every player UUID.
type PlayerState struct {
	BorderCenter    Location `yaml:"borderCenter" json:"borderCenter"`
	MinBorderRadius int      `yaml:"minBorderRadius" json:"minBorderRadius"`
	ElapsedTime     int64    `yaml:"elapsedTime" json:"elapsedTime"` // written once, never read
	GrowSpawnTree   bool     `yaml:"growSpawnTree" json:"growSpawnTree"`
	SpawnTreeGrown  bool     `yaml:"spawnTreeGrown" json:"spawnTreeGrown"`
	StartTime       int64    `yaml:"startTime" json:"startTime"` // epoch seconds
	Dead            bool     `yaml:"dead" json:"dead"`
	Level           int      `yaml:"level" json:"level"`
	OverWorldName   string   `yaml:"overWorldName" json:"overWorldName"`

	// Learned on first portal use
	NetherWorldName string `yaml:"netherWorldName,omitempty" json:"netherWorldName,omitempty"`
	EndWorldName    string `yaml:"endWorldName,omitempty" json:"endWorldName,omitempty"`

	// Learned on first arrival in the matching world
	NetherSpawnLocation *Location `yaml:"netherSpawnLocation,omitempty" json:"netherSpawnLocation,omitempty"`
	EndSpawnLocation    *Location `yaml:"endSpawnLocation,omitempty" json:"endSpawnLocation,omitempty"`
}

// Clone returns a deep copy of the state
func (s PlayerState) Clone() PlayerState {
	if s.NetherSpawnLocation != nil {
		loc := *s.NetherSpawnLocation
		s.NetherSpawnLocation = &loc
	}
	if s.EndSpawnLocation != nil {
		loc := *s.EndSpawnLocation
		s.EndSpawnLocation = &loc
	}
	return s
}

// Spectating reports whether the player is in the SPECTATING lifecycle state
func (s PlayerState) Spectating() bool {
	return s.Dead
}
