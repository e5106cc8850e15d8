// Package navigate adds next/prev wrap-around on top of yabai's literal
// window and space commands.
//
// Every procedure starts with the command as given. Only when yabai rejects
// it does the navigator look at live state and try literal alternatives.
// Failures other than a rejection are returned at once.
package navigate

import (
	"context"

	"github.com/yourusername/yctrl/internal/command"
	"github.com/yourusername/yctrl/internal/query"
)

// DefaultResizeStep is the pixel step used by `window inc`
const DefaultResizeStep = 150

// DefaultHelperSubroles are window subroles that never receive focus.
// Hammerspoon creates invisible windows with this subrole.
var DefaultHelperSubroles = []string{"AXUnknown.Hammerspoon"}

// Daemon is the yabai socket as seen by the navigators
type Daemon interface {
	Execute(ctx context.Context, args []string) error
	Request(ctx context.Context, args []string) (string, error)
}

// Options tune the fallback heuristics
type Options struct {
	Retry          query.RetryPolicy
	ResizeStep     int
	HelperSubroles []string
}

// DefaultOptions returns the options used when no config is present
func DefaultOptions() Options {
	return Options{
		ResizeStep:     DefaultResizeStep,
		HelperSubroles: append([]string(nil), DefaultHelperSubroles...),
	}
}

// Navigator runs window and space commands against a daemon
type Navigator struct {
	daemon Daemon
	opts   Options
}

// New creates a Navigator. A zero ResizeStep falls back to the default.
func New(d Daemon, opts Options) *Navigator {
	if opts.ResizeStep <= 0 {
		opts.ResizeStep = DefaultResizeStep
	}
	return &Navigator{daemon: d, opts: opts}
}

func (n *Navigator) execute(ctx context.Context, cmd command.Command) error {
	return n.daemon.Execute(ctx, cmd.Args())
}

// positional maps next to first and prev to last
func positional(cmd command.Command) string {
	if cmd.Forward() {
		return command.SelectorFirst
	}
	return command.SelectorLast
}
