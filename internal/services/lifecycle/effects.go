package lifecycle

import "github.com/shockbase/levelborder/internal/model"

// Effect is a side effect the plugin performs against the host, in order
type Effect interface {
	effect()
}

// SetGameMode switches the player's game mode
type SetGameMode struct {
	Mode model.GameMode
}

// ApplyBorder sets the player's border around a stored center
type ApplyBorder struct {
	Center model.Location
	Size   int
}

// ResizeBorder animates the player's border between two sizes
type ResizeBorder struct {
	From int
	To   int
}

// RemoveBorder returns the player to the global border
type RemoveBorder struct{}

// GrowSpawnTree attempts the one-time spawn tree. A grown tree is fed back
// through Rules.TreeGrown.
type GrowSpawnTree struct{}

// ShowTitle shows an on-screen title
type ShowTitle struct {
	Title model.Title
}

// SendMessage sends a chat message
type SendMessage struct {
	Message model.Component
}

// SaveState writes the new state to storage
type SaveState struct{}

func (SetGameMode) effect()   {}
func (ApplyBorder) effect()   {}
func (ResizeBorder) effect()  {}
func (RemoveBorder) effect()  {}
func (GrowSpawnTree) effect() {}
func (ShowTitle) effect()     {}
func (SendMessage) effect()   {}
func (SaveState) effect()     {}
