package hosttest

import (
	"github.com/shockbase/levelborder/internal/host"
	"github.com/shockbase/levelborder/internal/model"
)

// World is a fake world with a flat ground level
type World struct {
	WorldName  string
	GroundY    int
	TreeHeight int
	TreesGrow  bool
	Blocks     map[model.BlockPos]model.Material
	Trees      []model.BlockPos
	BoolRules  map[model.GameRule]bool
	IntRules   map[model.GameRule]int
}

// Ensure World implements host.World
var _ host.World = (*World)(nil)

// NewWorld creates a world where trees grow 6 blocks tall
func NewWorld(name string) *World {
	return &World{
		WorldName:  name,
		GroundY:    64,
		TreeHeight: 6,
		TreesGrow:  true,
		Blocks:     make(map[model.BlockPos]model.Material),
		BoolRules:  make(map[model.GameRule]bool),
		IntRules:   make(map[model.GameRule]int),
	}
}

func (w *World) Name() string { return w.WorldName }

func (w *World) SetBlock(pos model.BlockPos, material model.Material) {
	w.Blocks[pos] = material
}

func (w *World) GenerateTree(pos model.BlockPos, tree model.TreeType) bool {
	if !w.TreesGrow {
		return false
	}
	w.Trees = append(w.Trees, pos)
	return true
}

// HighestBlockYAt accounts for trees grown in the column
func (w *World) HighestBlockYAt(x, z int) int {
	highest := w.GroundY
	for pos := range w.Blocks {
		if pos.X == x && pos.Z == z && pos.Y > highest {
			highest = pos.Y
		}
	}
	for _, root := range w.Trees {
		if root.X == x && root.Z == z {
			top := root.Y + w.TreeHeight - 1
			if top > highest {
				highest = top
			}
		}
	}
	return highest
}

func (w *World) SetBoolGameRule(rule model.GameRule, value bool) {
	w.BoolRules[rule] = value
}

func (w *World) SetIntGameRule(rule model.GameRule, value int) {
	w.IntRules[rule] = value
}
