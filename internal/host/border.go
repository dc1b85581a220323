package host

import (
	"time"

	"github.com/shockbase/levelborder/internal/model"
)

// BorderAction is the client update sent after changing a world border
type BorderAction string

const (
	BorderActionInitialize       BorderAction = "initialize"
	BorderActionLerpSize         BorderAction = "lerp_size"
	BorderActionSetCenter        BorderAction = "set_center"
	BorderActionSetWarningBlocks BorderAction = "set_warning_blocks"
	BorderActionSetWarningTime   BorderAction = "set_warning_time"
)

// BorderService is the per-player world border service provided by the host
type BorderService interface {
	SetBorder(p Player, size float64, center model.Location)
	WorldBorder(p Player) WorldBorder
	ResetToGlobal(p Player)

	// SupportsPersistentMetadata reports whether PersistedBorderData is backed
	// by a store that survives reconnects
	SupportsPersistentMetadata() bool
	PersistedBorderData(p Player) (BorderData, bool)
}

// WorldBorder is a single player's border
type WorldBorder interface {
	SetSize(size float64)
	SetCenter(x, z float64)
	SetDamageAmount(amount float64)
	SetDamageBuffer(blocks float64)
	SetWarningDistance(blocks int)
	SetWarningTime(d time.Duration)
	Lerp(oldSize, newSize float64, d time.Duration)
	Send(p Player, action BorderAction)
}

// BorderData is a saved border shape
type BorderData struct {
	Size            float64
	CenterX         float64
	CenterZ         float64
	DamageAmount    float64
	DamageBuffer    float64
	WarningDistance int
	WarningTime     time.Duration
}

// ApplyAll copies every saved property onto a live border
func (d BorderData) ApplyAll(wb WorldBorder) {
	wb.SetSize(d.Size)
	wb.SetCenter(d.CenterX, d.CenterZ)
	wb.SetDamageAmount(d.DamageAmount)
	wb.SetDamageBuffer(d.DamageBuffer)
	wb.SetWarningDistance(d.WarningDistance)
	wb.SetWarningTime(d.WarningTime)
}
