package query

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/yctrl/internal/client"
	"github.com/yourusername/yctrl/internal/logging"
	"github.com/yourusername/yctrl/internal/models"
)

type reply struct {
	text string
	err  error
}

// scriptedRequester returns the scripted replies in order and repeats the
// last one once the script runs out.
type scriptedRequester struct {
	replies []reply
	calls   [][]string
}

func (s *scriptedRequester) Request(_ context.Context, args []string) (string, error) {
	s.calls = append(s.calls, args)
	i := len(s.calls) - 1
	if i >= len(s.replies) {
		i = len(s.replies) - 1
	}
	return s.replies[i].text, s.replies[i].err
}

func TestFetchRetriesEmptyReply(t *testing.T) {
	r := &scriptedRequester{replies: []reply{
		{text: ""},
		{text: `{"first-window":3,"last-window":9}`},
	}}

	space, err := CurrentSpace(context.Background(), r, RetryPolicy{})
	require.NoError(t, err)
	assert.Equal(t, 3, space.FirstWindow)
	assert.Equal(t, 9, space.LastWindow)

	want := [][]string{CurrentSpaceArgs, CurrentSpaceArgs}
	if diff := cmp.Diff(want, r.calls); diff != "" {
		t.Errorf("calls mismatch (-want +got):\n%s", diff)
	}
}

func TestFetchUnboundedByDefault(t *testing.T) {
	replies := make([]reply, 0, 51)
	for i := 0; i < 50; i++ {
		replies = append(replies, reply{text: ""})
	}
	replies = append(replies, reply{text: `[{"id":1},{"id":2}]`})
	r := &scriptedRequester{replies: replies}

	windows, err := SpaceWindows(context.Background(), r, RetryPolicy{})
	require.NoError(t, err)
	assert.Len(t, windows, 2)
	assert.Len(t, r.calls, 51)
}

func TestFetchBoundedPolicy(t *testing.T) {
	r := &scriptedRequester{replies: []reply{{text: ""}}}

	_, err := CurrentSpace(context.Background(), r, RetryPolicy{MaxAttempts: 3})
	require.Error(t, err)
	assert.Equal(t, client.KindEmptyResponse, client.KindOf(err))
	assert.Len(t, r.calls, 3)
}

func TestFetchBoundedPolicyLogsOnlyRealRetries(t *testing.T) {
	var buf bytes.Buffer
	orig := logging.Logger
	logging.Logger = zerolog.New(&buf)
	t.Cleanup(func() { logging.Logger = orig })

	r := &scriptedRequester{replies: []reply{{text: ""}}}
	_, err := CurrentSpace(context.Background(), r, RetryPolicy{MaxAttempts: 3})
	require.Error(t, err)

	out := buf.String()
	assert.Equal(t, 2, strings.Count(out, "empty string, retrying"), out)
	assert.Equal(t, 1, strings.Count(out, "empty string, giving up"), out)
}

func TestFetchDecodeErrorNotRetried(t *testing.T) {
	r := &scriptedRequester{replies: []reply{
		{text: "not json"},
		{text: `{"first-window":1,"last-window":1}`},
	}}

	_, err := CurrentSpace(context.Background(), r, RetryPolicy{})
	require.Error(t, err)

	var e *client.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, client.KindDecode, e.Kind)
	assert.Equal(t, "not json", e.Raw)
	assert.Len(t, r.calls, 1)
}

func TestFetchPropagatesRequestError(t *testing.T) {
	rejected := &client.Error{Kind: client.KindRejected, Message: "unknown command"}
	r := &scriptedRequester{replies: []reply{{err: rejected}}}

	_, err := SpaceWindows(context.Background(), r, RetryPolicy{})
	assert.ErrorIs(t, err, rejected)
	assert.Len(t, r.calls, 1)
}

func TestFetchBackoffStopsOnCancel(t *testing.T) {
	r := &scriptedRequester{replies: []reply{{text: ""}}}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := CurrentSpace(ctx, r, RetryPolicy{Backoff: time.Hour})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Len(t, r.calls, 1)
}

func TestFetchGenericShape(t *testing.T) {
	r := &scriptedRequester{replies: []reply{{text: `{"id":7,"has-focus":true,"is-visible":true}`}}}

	w, err := Fetch[models.WindowInfo](context.Background(), r, RetryPolicy{}, "query", "--windows", "--window")
	require.NoError(t, err)
	assert.Equal(t, models.WindowInfo{ID: 7, HasFocus: true, IsVisible: true}, w)
}
