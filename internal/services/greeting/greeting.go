// Package greeting builds the titles and chat messages shown to players.
package greeting

import "github.com/shockbase/levelborder/internal/model"

const (
	welcomeText     = "Welcome, "
	welcomeBackText = "Welcome back, "
)

// Welcome is the title shown to active players on join
func Welcome(name string, playedBefore bool) model.Title {
	text := welcomeText
	if playedBefore {
		text = welcomeBackText
	}
	return model.Title{
		Title: greetingLine(text, name),
		Subtitle: model.Text("Your world will expand according to your exp level.").
			WithColor(model.ColorAqua).
			Append(model.Text(" Good luck!").WithBold()),
	}
}

// Restart is the title shown to spectating players
func Restart(name string) model.Title {
	return model.Title{
		Title: greetingLine(welcomeBackText, name),
		Subtitle: model.Text("You are in SPECTATOR mode. Enjoy the show!").
			WithColor(model.ColorRed),
	}
}

// ResetHint tells a spectating player how to start over
func ResetHint() model.Component {
	return model.Text("Type ").
		WithColor(model.ColorRed).
		Append(
			model.Text("/lb reset").WithItalic().WithBold(),
			model.Text(" to try again.").WithColor(model.ColorRed),
		)
}

// ResetKick is the disconnect reason after a reset
func ResetKick() model.Component {
	return model.Text("Reset done. Please reconnect.")
}

func greetingLine(text, name string) model.Component {
	return model.Text(text).
		WithColor(model.ColorGold).
		Append(
			model.Text(name).WithBold(),
			model.Text("!"),
		)
}
