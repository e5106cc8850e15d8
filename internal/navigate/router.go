package navigate

import (
	"context"

	"github.com/yourusername/yctrl/internal/command"
	"github.com/yourusername/yctrl/internal/logging"
)

// Run dispatches a parsed command. Window and space commands with a
// navigable verb get fallback handling; query replies are returned for
// printing; everything else goes to yabai unchanged.
func (n *Navigator) Run(ctx context.Context, cmd command.Command) (string, error) {
	switch cmd.Domain() {
	case command.DomainWindow:
		if cmd.Verb().Navigable() {
			return "", n.Window(ctx, cmd)
		}
	case command.DomainSpace:
		if cmd.Verb().Navigable() {
			return "", n.Space(ctx, cmd)
		}
	case command.DomainQuery:
		return n.daemon.Request(ctx, cmd.Args())
	case command.DomainOther:
	}

	logging.Debug().Str("cmd", cmd.String()).Msg("redirecting to yabai socket")
	return "", n.execute(ctx, cmd)
}
