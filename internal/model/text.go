package model

import "strings"

// Color is a 24-bit RGB text color
type Color uint32

const (
	ColorGold Color = 0xFFD700
	ColorAqua Color = 0x55FFFF
	ColorRed  Color = 0xFF0000
)

// Component is a styled chat text fragment with optional children.
// Children inherit nothing; each fragment carries its own style.
type Component struct {
	Text     string
	Color    Color
	Bold     bool
	Italic   bool
	Children []Component
}

// Text creates an unstyled component
func Text(s string) Component {
	return Component{Text: s}
}

// WithColor returns a copy of the component with the given color
func (c Component) WithColor(color Color) Component {
	c.Color = color
	return c
}

// WithBold returns a bold copy of the component
func (c Component) WithBold() Component {
	c.Bold = true
	return c
}

// WithItalic returns an italic copy of the component
func (c Component) WithItalic() Component {
	c.Italic = true
	return c
}

// Append returns a copy of the component with children appended
func (c Component) Append(children ...Component) Component {
	merged := make([]Component, 0, len(c.Children)+len(children))
	merged = append(merged, c.Children...)
	merged = append(merged, children...)
	c.Children = merged
	return c
}

// PlainText flattens the component tree into unstyled text
func (c Component) PlainText() string {
	var b strings.Builder
	c.writePlain(&b)
	return b.String()
}

func (c Component) writePlain(b *strings.Builder) {
	b.WriteString(c.Text)
	for _, child := range c.Children {
		child.writePlain(b)
	}
}

// Title is a two-line on-screen title
type Title struct {
	Title    Component
	Subtitle Component
}
