package output

import (
	"math"

	"github.com/yourusername/yctrl/internal/models"
)

// aspectRatio corrects for terminal cells being about twice as tall as wide
const aspectRatio = 2.0

// Scaler maps window frames in screen pixels onto a canvas
type Scaler struct {
	MinX, MinY     float64
	ScaleX, ScaleY float64
	Width, Height  int
}

// NewScaler fits the bounding box of frames into a width x height canvas,
// keeping a one-cell margin. Frames with no area are ignored.
func NewScaler(frames []models.Frame, width, height int) *Scaler {
	minX, minY := math.MaxFloat64, math.MaxFloat64
	maxX, maxY := -math.MaxFloat64, -math.MaxFloat64

	for _, f := range frames {
		if f.W <= 0 || f.H <= 0 {
			continue
		}
		minX = math.Min(minX, f.X)
		minY = math.Min(minY, f.Y)
		maxX = math.Max(maxX, f.X+f.W)
		maxY = math.Max(maxY, f.Y+f.H)
	}
	if minX > maxX {
		minX, minY, maxX, maxY = 0, 0, 1920, 1080
	}

	availW := math.Max(float64(width-2), 10)
	availH := math.Max(float64(height-2), 5)

	return &Scaler{
		MinX:   minX,
		MinY:   minY,
		ScaleX: availW / (maxX - minX),
		ScaleY: availH * aspectRatio / (maxY - minY),
		Width:  width,
		Height: height,
	}
}

// Rect converts a frame to canvas coordinates, clamped to the canvas.
// Boxes are at least 3x2 so they stay visible.
func (s *Scaler) Rect(f models.Frame) (x, y, w, h int) {
	x = int(math.Round((f.X-s.MinX)*s.ScaleX)) + 1
	y = int(math.Round((f.Y-s.MinY)*s.ScaleY/aspectRatio)) + 1
	w = max(int(math.Round(f.W*s.ScaleX)), 3)
	h = max(int(math.Round(f.H*s.ScaleY/aspectRatio)), 2)

	if x+w > s.Width {
		w = s.Width - x
	}
	if y+h > s.Height {
		h = s.Height - y
	}
	return x, y, w, h
}
