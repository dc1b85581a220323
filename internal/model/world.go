package model

import "strings"

// Material names a block type placed by the plugin
type Material string

const (
	MaterialDirt Material = "dirt"
)

// TreeType names a tree shape the host can generate
type TreeType string

const (
	TreeTypeTree TreeType = "tree"
)

// GameRule names a host world game rule
type GameRule string

const (
	GameRuleSpectatorsGenerateChunks GameRule = "spectatorsGenerateChunks"
	GameRuleSpawnRadius              GameRule = "spawnRadius"
)

// World name suffixes used by the host for secondary dimensions
const (
	NetherWorldSuffix = "_nether"
	EndWorldSuffix    = "_the_end"
)

// IsNetherWorld reports whether a world name follows the nether naming convention
func IsNetherWorld(name string) bool {
	return strings.HasSuffix(name, NetherWorldSuffix)
}

// IsEndWorld reports whether a world name follows the end naming convention
func IsEndWorld(name string) bool {
	return strings.HasSuffix(name, EndWorldSuffix)
}
