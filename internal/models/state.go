package models

import "fmt"

// Frame is a window rectangle as reported by yabai
type Frame struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// Sum returns x+y+w+h, a rough size key for comparing windows
func (f Frame) Sum() float64 {
	return f.X + f.Y + f.W + f.H
}

// String returns a formatted representation of the frame
func (f Frame) String() string {
	return fmt.Sprintf("%.0fx%.0f @ (%.0f, %.0f)", f.W, f.H, f.X, f.Y)
}

// WindowInfo is one entry of `query --windows`
type WindowInfo struct {
	ID        int    `json:"id"`
	App       string `json:"app"`
	Title     string `json:"title"`
	Space     int    `json:"space"`
	Frame     Frame  `json:"frame"`
	Subrole   string `json:"subrole"`
	HasFocus  bool   `json:"has-focus"`
	IsVisible bool   `json:"is-visible"`
}

// SpaceInfo is the result of `query --spaces --space`
type SpaceInfo struct {
	ID          int    `json:"id"`
	Index       int    `json:"index"`
	Label       string `json:"label"`
	Type        string `json:"type"`
	Windows     []int  `json:"windows"`
	FirstWindow int    `json:"first-window"`
	LastWindow  int    `json:"last-window"`
	HasFocus    bool   `json:"has-focus"`
}

// IsSingleWindow reports whether the space holds at most one real window
func (s SpaceInfo) IsSingleWindow() bool {
	return s.FirstWindow == s.LastWindow
}

// Boundary returns the window that next/prev navigation wraps to:
// the first window when moving forward, the last one otherwise.
func (s SpaceInfo) Boundary(forward bool) int {
	if forward {
		return s.FirstWindow
	}
	return s.LastWindow
}

// FocusCandidates returns the visible, unfocused windows whose subrole is
// not one of the helper subroles.
func FocusCandidates(windows []WindowInfo, helperSubroles []string) []WindowInfo {
	candidates := make([]WindowInfo, 0, len(windows))
	for _, w := range windows {
		if !w.IsVisible || w.HasFocus || isHelper(w.Subrole, helperSubroles) {
			continue
		}
		candidates = append(candidates, w)
	}
	return candidates
}

func isHelper(subrole string, helperSubroles []string) bool {
	for _, h := range helperSubroles {
		if subrole == h {
			return true
		}
	}
	return false
}
