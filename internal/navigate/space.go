package navigate

import (
	"context"

	"github.com/yourusername/yctrl/internal/client"
	"github.com/yourusername/yctrl/internal/command"
	"github.com/yourusername/yctrl/internal/logging"
)

// Space runs a space-domain command. A rejected command falls back to
// first/last: next wraps to first, anything else to last. A literal
// selector gets one more plain attempt before that.
func (n *Navigator) Space(ctx context.Context, cmd command.Command) error {
	err := n.execute(ctx, cmd)
	if !client.IsRejected(err) {
		return err
	}

	if !cmd.Directional() {
		err = n.execute(ctx, cmd)
		if !client.IsRejected(err) {
			return err
		}
	}

	wrapped := cmd.WithSelector(positional(cmd))
	logging.Info().
		Str("cmd", cmd.String()).
		Str("fallback", wrapped.String()).
		Msg("space command rejected, trying positional selector")

	return n.execute(ctx, wrapped)
}
