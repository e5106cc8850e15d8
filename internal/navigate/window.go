package navigate

import (
	"context"
	"fmt"
	"strconv"

	"github.com/yourusername/yctrl/internal/client"
	"github.com/yourusername/yctrl/internal/command"
	"github.com/yourusername/yctrl/internal/logging"
	"github.com/yourusername/yctrl/internal/models"
	"github.com/yourusername/yctrl/internal/query"
)

// Window runs a window-domain command
func (n *Navigator) Window(ctx context.Context, cmd command.Command) error {
	switch cmd.Verb() {
	case command.VerbSpace:
		return n.sendToSpace(ctx, cmd)
	case command.VerbInc:
		return n.resizeStep(ctx, cmd)
	case command.VerbMake:
		if cmd.Operand(0) == "master" {
			return n.makeMaster(ctx, cmd)
		}
	}

	if !cmd.Directional() {
		logging.Debug().Str("cmd", cmd.String()).Msg("literal selector, redirecting to yabai")
		return n.execute(ctx, cmd)
	}

	// next/prev may just work inside the space
	err := n.execute(ctx, cmd)
	if !client.IsRejected(err) {
		return err
	}

	space, err := query.CurrentSpace(ctx, n.daemon, n.opts.Retry)
	if err != nil {
		return err
	}

	if space.IsSingleWindow() && cmd.Verb() == command.VerbFocus {
		return n.focusWithinSpace(ctx, cmd)
	}

	id := strconv.Itoa(space.Boundary(cmd.Forward()))
	logging.Info().
		Str("cmd", cmd.String()).
		Str("window", id).
		Msg("no window in direction, trying boundary window")

	err = n.execute(ctx, cmd.WithSelector(id))
	if !client.IsRejected(err) {
		return err
	}
	return n.execute(ctx, cmd.WithSelector(command.SelectorFirst))
}

// focusWithinSpace handles focus next/prev in a space with a single tiled
// window: any other visible window is focused, otherwise focus moves on to
// the next/prev space.
func (n *Navigator) focusWithinSpace(ctx context.Context, cmd command.Command) error {
	windows, err := query.SpaceWindows(ctx, n.daemon, n.opts.Retry)
	if err != nil {
		return err
	}

	candidates := models.FocusCandidates(windows, n.opts.HelperSubroles)
	if len(candidates) == 0 {
		spaceCmd := cmd.WithDomain(command.DomainSpace).WithOperands(cmd.Selector())
		logging.Info().
			Str("cmd", cmd.String()).
			Str("fallback", spaceCmd.String()).
			Msg("no windows left in space, focusing space instead")
		return n.Space(ctx, spaceCmd)
	}

	id := strconv.Itoa(candidates[0].ID)
	logging.Info().Str("cmd", cmd.String()).Str("window", id).Msg("focusing remaining window")
	return n.execute(ctx, cmd.WithSelector(id))
}

// sendToSpace moves the window to a space and then focuses that space so
// window and space focus stay together.
func (n *Navigator) sendToSpace(ctx context.Context, cmd command.Command) error {
	err := n.execute(ctx, cmd)
	if client.IsRejected(err) {
		// yabai sometimes rejects the first attempt while spaces settle
		err = n.execute(ctx, cmd)
	}
	if client.IsRejected(err) {
		err = n.execute(ctx, cmd.WithSelector(positional(cmd)))
	}
	if err != nil && !client.IsRejected(err) {
		return err
	}
	if err != nil {
		logging.Warn().Str("cmd", cmd.String()).Err(err).Msg("failed to send window to space")
	}

	focusErr := n.Space(ctx, command.New(command.DomainSpace, command.VerbFocus, cmd.Selector()))
	if err != nil {
		return fmt.Errorf("failed to handle space command %q: %w", cmd.Args(), err)
	}
	return focusErr
}

// resizeStep grows or shrinks the window by a fixed step. A window at the
// left edge of the screen has no left border to drag, so the second attempt
// also drags the right border the other way.
func (n *Navigator) resizeStep(ctx context.Context, cmd command.Command) error {
	delta := fmt.Sprintf("+%d:0", n.opts.ResizeStep)
	opposite := fmt.Sprintf("-%d:0", n.opts.ResizeStep)
	if cmd.Selector() == "left" {
		delta, opposite = opposite, delta
	}

	resize := cmd.WithVerb(command.VerbResize)
	err := n.execute(ctx, resize.WithOperands("left:"+delta))
	if !client.IsRejected(err) {
		return err
	}
	return n.execute(ctx, resize.WithOperands("left:"+delta, "right:"+opposite))
}

// makeMaster swaps the window into the first slot, or the last one when
// it is already first.
//
// TODO: pick the slot by comparing Frame.Sum of the focused window with the
// largest window in the space instead of relying on warp failing.
func (n *Navigator) makeMaster(ctx context.Context, cmd command.Command) error {
	warp := cmd.WithVerb(command.VerbWarp)
	err := n.execute(ctx, warp.WithOperands(command.SelectorFirst))
	if !client.IsRejected(err) {
		return err
	}
	return n.execute(ctx, warp.WithOperands(command.SelectorLast))
}
