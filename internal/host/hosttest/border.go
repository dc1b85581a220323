package hosttest

import (
	"time"

	"github.com/google/uuid"

	"github.com/shockbase/levelborder/internal/host"
	"github.com/shockbase/levelborder/internal/model"
)

// BorderCall records one SetBorder call
type BorderCall struct {
	PlayerID uuid.UUID
	Size     float64
	Center   model.Location
}

// LerpCall records one Lerp call
type LerpCall struct {
	OldSize  float64
	NewSize  float64
	Duration time.Duration
}

// SendCall records one Send call
type SendCall struct {
	PlayerID uuid.UUID
	Action   host.BorderAction
}

// BorderService is a fake world border service
type BorderService struct {
	Persistent bool
	Saved      map[uuid.UUID]host.BorderData

	SetCalls   []BorderCall
	ResetCalls []uuid.UUID
	Borders    map[uuid.UUID]*WorldBorder
}

// Ensure BorderService implements host.BorderService
var _ host.BorderService = (*BorderService)(nil)

// NewBorderService creates a non-persistent border service
func NewBorderService() *BorderService {
	return &BorderService{
		Saved:   make(map[uuid.UUID]host.BorderData),
		Borders: make(map[uuid.UUID]*WorldBorder),
	}
}

func (b *BorderService) SetBorder(p host.Player, size float64, center model.Location) {
	b.SetCalls = append(b.SetCalls, BorderCall{PlayerID: p.ID(), Size: size, Center: center})
	wb := b.border(p.ID())
	wb.Size = size
	wb.CenterX = center.X
	wb.CenterZ = center.Z
	wb.Active = true
}

func (b *BorderService) WorldBorder(p host.Player) host.WorldBorder {
	return b.border(p.ID())
}

func (b *BorderService) ResetToGlobal(p host.Player) {
	b.ResetCalls = append(b.ResetCalls, p.ID())
	wb := b.border(p.ID())
	wb.Active = false
}

func (b *BorderService) SupportsPersistentMetadata() bool {
	return b.Persistent
}

func (b *BorderService) PersistedBorderData(p host.Player) (host.BorderData, bool) {
	data, ok := b.Saved[p.ID()]
	return data, ok
}

// Border returns the recorded border for a player, creating it on demand
func (b *BorderService) Border(id uuid.UUID) *WorldBorder {
	return b.border(id)
}

// LastSet returns the most recent SetBorder call
func (b *BorderService) LastSet() (BorderCall, bool) {
	if len(b.SetCalls) == 0 {
		return BorderCall{}, false
	}
	return b.SetCalls[len(b.SetCalls)-1], true
}

func (b *BorderService) border(id uuid.UUID) *WorldBorder {
	wb, ok := b.Borders[id]
	if !ok {
		wb = &WorldBorder{}
		b.Borders[id] = wb
	}
	return wb
}

// WorldBorder is a fake per-player border
type WorldBorder struct {
	Active          bool
	Size            float64
	CenterX         float64
	CenterZ         float64
	DamageAmount    float64
	DamageBuffer    float64
	WarningDistance int
	WarningTime     time.Duration

	Lerps []LerpCall
	Sends []SendCall
}

// Ensure WorldBorder implements host.WorldBorder
var _ host.WorldBorder = (*WorldBorder)(nil)

func (w *WorldBorder) SetSize(size float64)           { w.Size = size }
func (w *WorldBorder) SetCenter(x, z float64)         { w.CenterX, w.CenterZ = x, z }
func (w *WorldBorder) SetDamageAmount(amount float64) { w.DamageAmount = amount }
func (w *WorldBorder) SetDamageBuffer(blocks float64) { w.DamageBuffer = blocks }
func (w *WorldBorder) SetWarningDistance(blocks int)  { w.WarningDistance = blocks }
func (w *WorldBorder) SetWarningTime(d time.Duration) { w.WarningTime = d }

func (w *WorldBorder) Lerp(oldSize, newSize float64, d time.Duration) {
	w.Lerps = append(w.Lerps, LerpCall{OldSize: oldSize, NewSize: newSize, Duration: d})
	w.Size = newSize
}

func (w *WorldBorder) Send(p host.Player, action host.BorderAction) {
	w.Sends = append(w.Sends, SendCall{PlayerID: p.ID(), Action: action})
}
