package client

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/yourusername/yctrl/internal/logging"
)

// Client talks to the yabai control socket. It opens a fresh connection for
// every call and never reuses one.
type Client struct {
	socketPath string
}

// NewClient creates a new yabai client
func NewClient(socketPath string) *Client {
	return &Client{socketPath: socketPath}
}

// SocketPath returns the socket the client dials
func (c *Client) SocketPath() string {
	return c.socketPath
}

// exchange frames args, opens a connection and sends the message. The
// caller reads the response and closes the connection.
func (c *Client) exchange(ctx context.Context, args []string) (*Connection, error) {
	msg, err := Encode(args)
	if err != nil {
		return nil, err
	}

	conn := NewConnection(c.socketPath)
	if err := conn.Connect(ctx); err != nil {
		return nil, newError(KindTransport, args, err)
	}
	if err := conn.Send(msg); err != nil {
		conn.Close()
		return nil, newError(KindTransport, args, err)
	}
	return conn, nil
}

// Execute sends a command and only looks at the first byte of the reply.
// No reply at all counts as success.
func (c *Client) Execute(ctx context.Context, args []string) error {
	conn, err := c.exchange(ctx, args)
	if err != nil {
		return err
	}
	defer conn.Close()

	b, ok, err := conn.ReadAck()
	if err != nil {
		return newError(KindTransport, args, err)
	}
	if ok && b == FailureSentinel {
		logging.Debug().Strs("args", args).Msg("command rejected")
		return newError(KindRejected, args, nil)
	}

	logging.Debug().Strs("args", args).Msg("command accepted")
	return nil
}

// Request sends a command and returns the full reply as text
func (c *Client) Request(ctx context.Context, args []string) (string, error) {
	conn, err := c.exchange(ctx, args)
	if err != nil {
		return "", err
	}
	defer conn.Close()

	data, err := conn.ReadAll()
	if err != nil {
		return "", newError(KindTransport, args, err)
	}

	if len(data) > 0 && data[0] == FailureSentinel {
		rerr := newError(KindRejected, args, nil)
		rerr.Message = strings.TrimSpace(strings.ToValidUTF8(string(data[1:]), "\uFFFD"))
		logging.Debug().Strs("args", args).Str("message", rerr.Message).Msg("request rejected")
		return "", rerr
	}

	if !utf8.Valid(data) {
		derr := newError(KindDecode, args, errors.New("response is not valid UTF-8"))
		derr.Raw = string(data)
		return "", derr
	}

	return string(data), nil
}
