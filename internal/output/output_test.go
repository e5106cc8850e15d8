package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/yourusername/yctrl/internal/models"
)

func testWindows() []models.WindowInfo {
	return []models.WindowInfo{
		{ID: 11, App: "Safari", Title: "Docs", Frame: models.Frame{X: 1000, W: 1000, H: 500}, IsVisible: true},
		{ID: 10, App: "Terminal", Title: "zsh", Frame: models.Frame{W: 1000, H: 500}, IsVisible: true, HasFocus: true},
		{ID: 12, App: "Hammerspoon", Subrole: "AXUnknown.Hammerspoon", Frame: models.Frame{W: 10, H: 10}},
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		input  string
		maxLen int
		want   string
	}{
		{"short", 10, "short"},
		{"exactly10!", 10, "exactly10!"},
		{"this is too long", 10, "this is..."},
		{"héllo wörld", 8, "héllo..."},
		{"abcdef", 2, "ab"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := truncate(tt.input, tt.maxLen); got != tt.want {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.want)
			}
		})
	}
}

func TestFormatIntSlice(t *testing.T) {
	if got := formatIntSlice(nil); got != "-" {
		t.Errorf("formatIntSlice(nil) = %q, want -", got)
	}
	if got := formatIntSlice([]int{3, 9}); got != "3, 9" {
		t.Errorf("formatIntSlice() = %q, want \"3, 9\"", got)
	}
}

func TestTitleColumnWidth(t *testing.T) {
	if got := titleColumnWidth(80); got != 20 {
		t.Errorf("titleColumnWidth(80) = %d, want 20", got)
	}
	if got := titleColumnWidth(200); got != 120 {
		t.Errorf("titleColumnWidth(200) = %d, want 120", got)
	}
}

func TestPrintWindowsTable(t *testing.T) {
	var buf bytes.Buffer
	PrintWindowsTable(&buf, testWindows(), 80)
	out := buf.String()

	for _, want := range []string{"Terminal", "Safari", "Hammerspoon", "1000x500", "AXUnknown.Hammerspoon"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
	if strings.Index(out, "Terminal") > strings.Index(out, "Safari") {
		t.Errorf("windows should be sorted by id:\n%s", out)
	}
}

func TestPrintWindowsTableDoesNotReorderInput(t *testing.T) {
	windows := testWindows()
	PrintWindowsTable(&bytes.Buffer{}, windows, 80)
	if windows[0].ID != 11 {
		t.Errorf("input reordered, windows[0].ID = %d", windows[0].ID)
	}
}

func TestPrintSpaceTable(t *testing.T) {
	var buf bytes.Buffer
	PrintSpaceTable(&buf, models.SpaceInfo{ID: 4, Index: 2, Type: "bsp", Windows: []int{10, 11}, FirstWindow: 10, LastWindow: 11})
	out := buf.String()

	for _, want := range []string{"bsp", "10, 11"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
}

func TestCanvas(t *testing.T) {
	c := NewCanvas(5, 3)
	c.Box(0, 0, 5, 3, ASCIIStyle)
	c.Text(1, 1, 3, "hello")
	c.Set(10, 10, 'x')

	want := "+---+\n|hel|\n+---+\n"
	if got := c.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if c.At(2, 1) != 'e' {
		t.Errorf("At(2, 1) = %q, want 'e'", c.At(2, 1))
	}
	if c.At(-1, 0) != ' ' {
		t.Error("At outside the canvas should be a space")
	}
}

func TestCanvasTooSmallBox(t *testing.T) {
	c := NewCanvas(3, 3)
	c.Box(0, 0, 1, 1, ASCIIStyle)
	if strings.TrimSpace(c.String()) != "" {
		t.Errorf("1x1 box should not draw, got %q", c.String())
	}
}

func TestScaler(t *testing.T) {
	frames := []models.Frame{
		{X: 0, Y: 0, W: 1000, H: 500},
		{X: 1000, Y: 0, W: 1000, H: 500},
	}
	sc := NewScaler(frames, 42, 12)

	tests := []struct {
		frame      models.Frame
		x, y, w, h int
	}{
		{frames[0], 1, 1, 20, 10},
		{frames[1], 21, 1, 20, 10},
		{models.Frame{X: 0, Y: 0, W: 1, H: 1}, 1, 1, 3, 2},
	}

	for _, tt := range tests {
		t.Run(tt.frame.String(), func(t *testing.T) {
			x, y, w, h := sc.Rect(tt.frame)
			if x != tt.x || y != tt.y || w != tt.w || h != tt.h {
				t.Errorf("Rect() = (%d, %d, %d, %d), want (%d, %d, %d, %d)", x, y, w, h, tt.x, tt.y, tt.w, tt.h)
			}
		})
	}
}

func TestScalerWithoutFrames(t *testing.T) {
	sc := NewScaler(nil, 42, 12)
	if sc.MinX != 0 || sc.MinY != 0 {
		t.Errorf("empty scaler origin = (%v, %v), want (0, 0)", sc.MinX, sc.MinY)
	}
	x, y, w, h := sc.Rect(models.Frame{W: 1920, H: 1080})
	if x != 1 || y != 1 || w != 40 || h != 10 {
		t.Errorf("Rect() = (%d, %d, %d, %d), want (1, 1, 40, 10)", x, y, w, h)
	}
}

func TestVisualizeSpace(t *testing.T) {
	space := models.SpaceInfo{Index: 2, Label: "code", Type: "bsp"}
	out := VisualizeSpace(space, testWindows(), MapOptions{Width: 42, Height: 12})

	if !strings.HasPrefix(out, "Space 2 (code) [bsp]\n") {
		t.Errorf("unexpected header:\n%s", out)
	}
	for _, want := range []string{"*[10] Terminal", "[11] Safari"} {
		if !strings.Contains(out, want) {
			t.Errorf("map missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Hammerspoon") {
		t.Errorf("invisible window drawn:\n%s", out)
	}
}

func TestVisualizeSpaceUnicodeMarksFocus(t *testing.T) {
	out := VisualizeSpace(models.SpaceInfo{Index: 1}, testWindows(), MapOptions{Width: 42, Height: 12, UseUnicode: true})
	if !strings.ContainsRune(out, '╔') {
		t.Errorf("focused window should use the focus style:\n%s", out)
	}
	if !strings.ContainsRune(out, '┌') {
		t.Errorf("other windows should use the unicode style:\n%s", out)
	}
}

func TestVisualizeSpaceNoWindows(t *testing.T) {
	out := VisualizeSpace(models.SpaceInfo{Index: 3}, nil, MapOptions{Width: 42, Height: 12})
	if out != "Space 3 (no visible windows)\n" {
		t.Errorf("VisualizeSpace() = %q", out)
	}
}

func TestPrintMap(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	PrintMap(&buf, models.SpaceInfo{Index: 2, Type: "float"}, testWindows(), MapOptions{Width: 42, Height: 12})

	if !strings.HasPrefix(buf.String(), "Space 2 [float]\n") {
		t.Errorf("PrintMap() header wrong:\n%s", buf.String())
	}
}
