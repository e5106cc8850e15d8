package query

import (
	"context"
	"encoding/json"
	"time"

	"github.com/yourusername/yctrl/internal/client"
	"github.com/yourusername/yctrl/internal/logging"
	"github.com/yourusername/yctrl/internal/models"
)

var (
	// CurrentSpaceArgs queries the focused space
	CurrentSpaceArgs = []string{"query", "--spaces", "--space"}
	// SpaceWindowsArgs queries the windows of the focused space
	SpaceWindowsArgs = []string{"query", "--windows", "--space"}
)

// Requester is the part of the client queries need
type Requester interface {
	Request(ctx context.Context, args []string) (string, error)
}

// RetryPolicy controls how often an empty reply is retried.
// yabai sometimes answers a query with nothing at all; the same query
// asked again right away usually succeeds.
type RetryPolicy struct {
	MaxAttempts int           // total attempts, 0 means no limit
	Backoff     time.Duration // pause between attempts
}

// Fetch runs a query and decodes the JSON reply into T. Empty replies are
// retried according to policy; decode failures are not retried.
func Fetch[T any](ctx context.Context, r Requester, policy RetryPolicy, args ...string) (T, error) {
	var zero T

	for attempt := 1; ; attempt++ {
		raw, err := r.Request(ctx, args)
		if err != nil {
			return zero, err
		}

		if raw != "" {
			var v T
			if err := json.Unmarshal([]byte(raw), &v); err != nil {
				return zero, &client.Error{
					Kind: client.KindDecode,
					Args: append([]string(nil), args...),
					Raw:  raw,
					Err:  err,
				}
			}
			return v, nil
		}

		if policy.MaxAttempts > 0 && attempt >= policy.MaxAttempts {
			logging.Warn().Strs("args", args).Int("attempt", attempt).Msg("query returned an empty string, giving up")
			return zero, &client.Error{
				Kind: client.KindEmptyResponse,
				Args: append([]string(nil), args...),
			}
		}

		logging.Warn().Strs("args", args).Int("attempt", attempt).Msg("query returned an empty string, retrying")

		if err := wait(ctx, policy.Backoff); err != nil {
			return zero, err
		}
	}
}

// wait pauses for d, returning early if ctx is done
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// CurrentSpace returns the focused space
func CurrentSpace(ctx context.Context, r Requester, policy RetryPolicy) (models.SpaceInfo, error) {
	return Fetch[models.SpaceInfo](ctx, r, policy, CurrentSpaceArgs...)
}

// SpaceWindows returns the windows of the focused space
func SpaceWindows(ctx context.Context, r Requester, policy RetryPolicy) ([]models.WindowInfo, error) {
	return Fetch[[]models.WindowInfo](ctx, r, policy, SpaceWindowsArgs...)
}
