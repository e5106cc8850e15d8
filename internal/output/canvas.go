package output

import (
	"strings"
)

// BoxStyle defines the character set for drawing window outlines
type BoxStyle struct {
	TopLeft     rune
	TopRight    rune
	BottomLeft  rune
	BottomRight rune
	Horizontal  rune
	Vertical    rune
}

var (
	// ASCIIStyle uses plain ASCII characters
	ASCIIStyle = BoxStyle{'+', '+', '+', '+', '-', '|'}

	// UnicodeStyle uses box drawing characters
	UnicodeStyle = BoxStyle{'┌', '┐', '└', '┘', '─', '│'}

	// FocusStyle marks the focused window when unicode is available
	FocusStyle = BoxStyle{'╔', '╗', '╚', '╝', '═', '║'}
)

// Canvas is a fixed-size character grid. Writes outside of it are dropped.
type Canvas struct {
	Width  int
	Height int
	cells  []rune
}

// NewCanvas creates a blank canvas
func NewCanvas(width, height int) *Canvas {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	cells := make([]rune, width*height)
	for i := range cells {
		cells[i] = ' '
	}
	return &Canvas{Width: width, Height: height, cells: cells}
}

// Set writes r at (x, y)
func (c *Canvas) Set(x, y int, r rune) {
	if x < 0 || x >= c.Width || y < 0 || y >= c.Height {
		return
	}
	c.cells[y*c.Width+x] = r
}

// At returns the rune at (x, y), or a space outside the canvas
func (c *Canvas) At(x, y int) rune {
	if x < 0 || x >= c.Width || y < 0 || y >= c.Height {
		return ' '
	}
	return c.cells[y*c.Width+x]
}

// Box outlines a width x height rectangle with its top-left corner at (x, y)
func (c *Canvas) Box(x, y, width, height int, style BoxStyle) {
	if width < 2 || height < 2 {
		return
	}
	right, bottom := x+width-1, y+height-1

	for i := x + 1; i < right; i++ {
		c.Set(i, y, style.Horizontal)
		c.Set(i, bottom, style.Horizontal)
	}
	for j := y + 1; j < bottom; j++ {
		c.Set(x, j, style.Vertical)
		c.Set(right, j, style.Vertical)
	}
	c.Set(x, y, style.TopLeft)
	c.Set(right, y, style.TopRight)
	c.Set(x, bottom, style.BottomLeft)
	c.Set(right, bottom, style.BottomRight)
}

// Text writes s starting at (x, y), clipped to maxWidth runes
func (c *Canvas) Text(x, y, maxWidth int, s string) {
	i := 0
	for _, r := range s {
		if i >= maxWidth {
			return
		}
		c.Set(x+i, y, r)
		i++
	}
}

// String renders the canvas with trailing spaces trimmed from each row
func (c *Canvas) String() string {
	var sb strings.Builder
	for y := 0; y < c.Height; y++ {
		row := c.cells[y*c.Width : (y+1)*c.Width]
		sb.WriteString(strings.TrimRight(string(row), " "))
		sb.WriteByte('\n')
	}
	return sb.String()
}
