package output

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/sys/unix"

	"github.com/yourusername/yctrl/internal/models"
)

// MapOptions controls the appearance of the space map
type MapOptions struct {
	UseUnicode bool
	Width      int
	Height     int
}

// DefaultMapOptions sizes the map to the terminal
func DefaultMapOptions() MapOptions {
	width, height := TerminalSize()
	return MapOptions{
		UseUnicode: supportsUnicode(),
		Width:      width,
		Height:     height - 4,
	}
}

// VisualizeSpace draws the visible windows of a space at their relative
// positions. The focused window is drawn last so it stays on top.
func VisualizeSpace(space models.SpaceInfo, windows []models.WindowInfo, opts MapOptions) string {
	visible := make([]models.WindowInfo, 0, len(windows))
	for _, w := range windows {
		if w.IsVisible {
			visible = append(visible, w)
		}
	}
	if len(visible) == 0 {
		return fmt.Sprintf("Space %d (no visible windows)\n", space.Index)
	}

	sort.SliceStable(visible, func(i, j int) bool {
		return !visible[i].HasFocus && visible[j].HasFocus
	})

	frames := make([]models.Frame, len(visible))
	for i, w := range visible {
		frames[i] = w.Frame
	}

	sc := NewScaler(frames, opts.Width, opts.Height)
	canvas := NewCanvas(opts.Width, opts.Height)

	for _, win := range visible {
		x, y, w, h := sc.Rect(win.Frame)
		canvas.Box(x, y, w, h, boxStyle(win, opts.UseUnicode))
		if w > 2 && h > 2 {
			canvas.Text(x+1, y+1, w-2, createWindowLabel(win))
		}
	}

	header := fmt.Sprintf("Space %d", space.Index)
	if space.Label != "" {
		header += " (" + space.Label + ")"
	}
	return fmt.Sprintf("%s [%s]\n%s", header, space.Type, canvas.String())
}

// PrintMap writes the space map to w with a colored header line
func PrintMap(w io.Writer, space models.SpaceInfo, windows []models.WindowInfo, opts MapOptions) {
	result := VisualizeSpace(space, windows, opts)
	header, body, _ := strings.Cut(result, "\n")
	color.New(color.FgCyan, color.Bold).Fprintln(w, header)
	fmt.Fprint(w, body)
}

func boxStyle(win models.WindowInfo, useUnicode bool) BoxStyle {
	switch {
	case !useUnicode:
		return ASCIIStyle
	case win.HasFocus:
		return FocusStyle
	default:
		return UnicodeStyle
	}
}

// createWindowLabel creates a label for a window
func createWindowLabel(win models.WindowInfo) string {
	app := win.App
	if app == "" {
		app = "Unknown"
	}
	label := fmt.Sprintf("[%d] %s", win.ID, app)
	if win.HasFocus {
		label = "*" + label
	}
	return label
}

// TerminalSize returns the current terminal dimensions, or 80x24 when
// stdout is not a terminal
func TerminalSize() (width, height int) {
	ws, err := unix.IoctlGetWinsize(int(os.Stdout.Fd()), unix.TIOCGWINSZ)
	if err != nil || ws.Col == 0 {
		return 80, 24
	}
	return int(ws.Col), int(ws.Row)
}

// supportsUnicode checks if the terminal supports Unicode
func supportsUnicode() bool {
	for _, env := range []string{"LC_ALL", "LC_CTYPE", "LANG"} {
		if strings.Contains(strings.ToUpper(os.Getenv(env)), "UTF-8") {
			return true
		}
	}
	return false
}
