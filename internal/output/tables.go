package output

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/yourusername/yctrl/internal/models"
)

// PrintSpaceTable prints the focused space in a table format
func PrintSpaceTable(w io.Writer, space models.SpaceInfo) {
	table := tablewriter.NewWriter(w)
	table.Header("Index", "ID", "Label", "Type", "First", "Last", "Windows")

	label := space.Label
	if label == "" {
		label = "-"
	}

	table.Append(
		strconv.Itoa(space.Index),
		strconv.Itoa(space.ID),
		truncate(label, 20),
		space.Type,
		formatWindowID(space.FirstWindow),
		formatWindowID(space.LastWindow),
		formatIntSlice(space.Windows),
	)

	table.Render()
}

// PrintWindowsTable prints windows in a table format. Titles are cut to
// fit a terminal of the given width.
func PrintWindowsTable(w io.Writer, windows []models.WindowInfo, termWidth int) {
	table := tablewriter.NewWriter(w)
	table.Header("ID", "App", "Title", "Subrole", "Size", "Visible", "Focus")

	sorted := make([]models.WindowInfo, len(windows))
	copy(sorted, windows)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ID < sorted[j].ID
	})

	titleWidth := titleColumnWidth(termWidth)
	for _, win := range sorted {
		table.Append(
			strconv.Itoa(win.ID),
			truncate(win.App, 20),
			truncate(win.Title, titleWidth),
			win.Subrole,
			fmt.Sprintf("%.0fx%.0f", win.Frame.W, win.Frame.H),
			checkmark(win.IsVisible),
			checkmark(win.HasFocus),
		)
	}

	table.Render()
}

// titleColumnWidth leaves the title whatever the fixed columns don't use
func titleColumnWidth(termWidth int) int {
	const fixed = 80
	if termWidth-fixed < 20 {
		return 20
	}
	return termWidth - fixed
}

// Helper functions

func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

func checkmark(b bool) string {
	if b {
		return "✓"
	}
	return ""
}

func formatWindowID(id int) string {
	if id == 0 {
		return "-"
	}
	return strconv.Itoa(id)
}

func formatIntSlice(ints []int) string {
	if len(ints) == 0 {
		return "-"
	}
	strs := make([]string, len(ints))
	for i, v := range ints {
		strs[i] = strconv.Itoa(v)
	}
	return strings.Join(strs, ", ")
}
