package model

import "math"

// Location is a position inside a named world
type Location struct {
	World string  `yaml:"world" json:"world"`
	X     float64 `yaml:"x" json:"x"`
	Y     float64 `yaml:"y" json:"y"`
	Z     float64 `yaml:"z" json:"z"`
	Yaw   float32 `yaml:"yaw" json:"yaw"`
	Pitch float32 `yaml:"pitch" json:"pitch"`
}

// Add returns a copy of the location moved by the given offsets
func (l Location) Add(dx, dy, dz float64) Location {
	l.X += dx
	l.Y += dy
	l.Z += dz
	return l
}

// BlockPos returns the block the location lies in
func (l Location) BlockPos() BlockPos {
	return BlockPos{
		X: int(math.Floor(l.X)),
		Y: int(math.Floor(l.Y)),
		Z: int(math.Floor(l.Z)),
	}
}

// BlockPos is an integer block coordinate
type BlockPos struct {
	X int
	Y int
	Z int
}

// Up returns the block directly above
func (p BlockPos) Up() BlockPos {
	p.Y++
	return p
}

// Down returns the block directly below
func (p BlockPos) Down() BlockPos {
	p.Y--
	return p
}

// Location converts the block position to a location at the block's corner
func (p BlockPos) Location(world string) Location {
	return Location{
		World: world,
		X:     float64(p.X),
		Y:     float64(p.Y),
		Z:     float64(p.Z),
	}
}
