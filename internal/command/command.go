// Package command implements the /lb chat command.
package command

import (
	"context"
	"log/slog"
	"strings"

	"github.com/shockbase/levelborder/internal/host"
)

const (
	// Name is the registered command name
	Name = "lb"

	resetSubcommand = "reset"
)

// Resetter wipes a player's progress
type Resetter interface {
	ResetPlayer(ctx context.Context, p host.Player)
}

// Executor handles /lb. Only players may run it.
type Executor struct {
	resetter Resetter
	logger   *slog.Logger
}

// Ensure Executor implements host.CommandExecutor
var _ host.CommandExecutor = (*Executor)(nil)

// New creates a new Executor
func New(resetter Resetter, logger *slog.Logger) *Executor {
	return &Executor{
		resetter: resetter,
		logger:   logger.With(slog.String("component", "command")),
	}
}

// Execute reports false for console senders, missing arguments and unknown
// subcommands so the host can print usage
func (e *Executor) Execute(ctx context.Context, sender host.CommandSender, args []string) bool {
	player, ok := sender.(host.Player)
	if !ok {
		return false
	}
	if len(args) < 1 {
		return false
	}
	if !strings.EqualFold(args[0], resetSubcommand) {
		return false
	}

	e.logger.Info("player reset requested", slog.String("player", player.Name()))
	e.resetter.ResetPlayer(ctx, player)
	return true
}

// Complete offers the reset subcommand for the first argument only
func (e *Executor) Complete(sender host.CommandSender, args []string) []string {
	if len(args) == 1 {
		return []string{resetSubcommand}
	}
	return []string{}
}
