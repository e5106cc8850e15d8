package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
)

const (
	// FailureSentinel is the first byte yabai writes when it rejects a command
	FailureSentinel byte = 0x07

	argTerminator byte = 0x00
)

// Encode frames args for the yabai socket: every argument is followed by a
// NUL byte and the message ends with one more NUL.
func Encode(args []string) ([]byte, error) {
	var buf bytes.Buffer
	for _, arg := range args {
		if i := bytes.IndexByte([]byte(arg), argTerminator); i >= 0 {
			return nil, newError(KindEncoding, args,
				fmt.Errorf("unexpected NUL byte in argument %q at offset %d", arg, i))
		}
		buf.WriteString(arg)
		buf.WriteByte(argTerminator)
	}
	buf.WriteByte(argTerminator)
	return buf.Bytes(), nil
}

// Connection is a single request/response exchange over the yabai Unix socket
type Connection struct {
	socketPath string
	conn       net.Conn
}

// NewConnection creates a new connection instance
func NewConnection(socketPath string) *Connection {
	return &Connection{socketPath: socketPath}
}

// Connect dials the socket. A context deadline, if any, also bounds the
// reads and writes that follow.
func (c *Connection) Connect(ctx context.Context) error {
	var d net.Dialer
	conn, err := d.DialContext(ctx, "unix", c.socketPath)
	if err != nil {
		return fmt.Errorf("failed to connect to socket %s: %w", c.socketPath, err)
	}
	if deadline, ok := ctx.Deadline(); ok {
		if err := conn.SetDeadline(deadline); err != nil {
			conn.Close()
			return fmt.Errorf("failed to set deadline: %w", err)
		}
	}
	c.conn = conn
	return nil
}

// Close closes the connection
func (c *Connection) Close() error {
	if c.conn != nil {
		err := c.conn.Close()
		c.conn = nil
		return err
	}
	return nil
}

// Send writes an already framed message
func (c *Connection) Send(msg []byte) error {
	if _, err := c.conn.Write(msg); err != nil {
		return fmt.Errorf("failed to write request: %w", err)
	}
	return nil
}

// ReadAck reads at most one byte. ok is false when the peer closed the
// stream without writing anything.
func (c *Connection) ReadAck() (b byte, ok bool, err error) {
	var buf [1]byte
	if _, err := io.ReadFull(c.conn, buf[:]); err != nil {
		if errors.Is(err, io.EOF) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("failed to read response: %w", err)
	}
	return buf[0], true, nil
}

// ReadAll reads the response until the peer closes the stream
func (c *Connection) ReadAll() ([]byte, error) {
	data, err := io.ReadAll(c.conn)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	return data, nil
}
