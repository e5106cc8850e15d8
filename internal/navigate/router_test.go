package navigate

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	tests := []struct {
		name   string
		argv   []string
		reject []string
		output string
		want   []string
	}{
		{
			name:   "window navigation",
			argv:   []string{"window", "focus", "next"},
			reject: []string{"window --focus next"},
			want:   []string{"window --focus next", querySpace, "window --focus 3"},
		},
		{
			name:   "space navigation",
			argv:   []string{"space", "focus", "prev"},
			reject: []string{"space --focus prev"},
			want:   []string{"space --focus prev", "space --focus last"},
		},
		{
			name: "window verb without fallback",
			argv: []string{"window", "toggle", "float"},
			want: []string{"window --toggle float"},
		},
		{
			name: "explicit resize is passed through",
			argv: []string{"window", "resize", "left:-20:0"},
			want: []string{"window --resize left:-20:0"},
		},
		{
			name: "space verb without fallback",
			argv: []string{"space", "balance"},
			want: []string{"space --balance"},
		},
		{
			name: "other domain",
			argv: []string{"config", "layout", "bsp"},
			want: []string{"config --layout bsp"},
		},
		{
			name:   "query reply is returned",
			argv:   []string{"query", "spaces", "--space"},
			output: `{"first-window":3,"last-window":9}`,
			want:   []string{querySpace},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newFakeDaemon(tt.reject...).reply(querySpace, `{"first-window":3,"last-window":9}`)
			n := New(d, DefaultOptions())

			out, err := n.Run(context.Background(), parse(t, tt.argv...))
			require.NoError(t, err)
			assert.Equal(t, tt.output, out)
			assertCalls(t, d, tt.want...)
		})
	}
}

func TestRunQueryRejected(t *testing.T) {
	d := newFakeDaemon()
	n := New(d, DefaultOptions())

	out, err := n.Run(context.Background(), parse(t, "query", "windows", "--window", "999"))
	assert.Error(t, err)
	assert.Empty(t, out)
}
