package spawntree

import (
	"log/slog"

	"github.com/shockbase/levelborder/internal/host"
	"github.com/shockbase/levelborder/internal/model"
)

// DefaultHeightOffset is how far the player is lifted while the tree grows
const DefaultHeightOffset = 100

// Service grows the one-time tree a new player spawns on
type Service struct {
	heightOffset float64
	logger       *slog.Logger
}

// New creates a new spawn tree Service
func New(heightOffset int, logger *slog.Logger) *Service {
	return &Service{
		heightOffset: float64(heightOffset),
		logger:       logger.With(slog.String("component", "spawntree")),
	}
}

// Grow turns the block under the player into dirt, grows a tree on it and
// moves the player onto the top of the column with a forced respawn point
// there. The player is moved even when the tree fails to grow.
func (s *Service) Grow(p host.Player) bool {
	world := p.World()
	ground := p.Location().BlockPos().Down()
	world.SetBlock(ground, model.MaterialDirt)

	// Lift the player out of the way of the growing tree
	p.Teleport(p.Location().Add(0, s.heightOffset, 0))

	grown := world.GenerateTree(ground.Up(), model.TreeTypeTree)

	top := model.BlockPos{X: ground.X, Y: world.HighestBlockYAt(ground.X, ground.Z), Z: ground.Z}
	target := top.Location(world.Name()).Add(0.5, 1, 0.5)
	p.Teleport(target)
	p.SetRespawnLocation(target, true)

	s.logger.Info("spawn tree",
		slog.String("player", p.Name()),
		slog.Bool("grown", grown),
		slog.Int("x", top.X),
		slog.Int("y", top.Y),
		slog.Int("z", top.Z),
	)
	return grown
}
