package client

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind classifies failures talking to the yabai socket
type ErrorKind int

const (
	// KindEncoding means an argument contained a NUL byte. Nothing was sent.
	KindEncoding ErrorKind = iota + 1
	// KindTransport covers dial, read and write failures.
	KindTransport
	// KindRejected means yabai answered with the failure sentinel.
	KindRejected
	// KindDecode means the response was not valid text or not valid JSON.
	KindDecode
	// KindEmptyResponse means a query kept returning nothing until the
	// retry policy gave up.
	KindEmptyResponse
)

func (k ErrorKind) String() string {
	switch k {
	case KindEncoding:
		return "encoding"
	case KindTransport:
		return "transport"
	case KindRejected:
		return "rejected"
	case KindDecode:
		return "decode"
	case KindEmptyResponse:
		return "empty response"
	default:
		return "unknown"
	}
}

// Error is returned by every Client and query call
type Error struct {
	Kind    ErrorKind
	Args    []string // argument vector of the failed call
	Message string   // daemon message, if yabai sent one
	Raw     string   // raw payload for decode failures
	Err     error    // underlying cause
}

func (e *Error) Error() string {
	var b strings.Builder
	switch e.Kind {
	case KindRejected:
		b.WriteString("yabai")
		if e.Message != "" {
			b.WriteString(": ")
			b.WriteString(e.Message)
		} else {
			b.WriteString(": failed to execute")
		}
	case KindDecode:
		b.WriteString("failed to decode response")
		if e.Raw != "" {
			fmt.Fprintf(&b, " %q", e.Raw)
		}
	default:
		b.WriteString(e.Kind.String())
		b.WriteString(" error")
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	if len(e.Args) > 0 {
		fmt.Fprintf(&b, " %q", e.Args)
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of err, or 0 if err is not a *Error
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// IsRejected reports whether yabai refused the command.
// Rejections are the only failures the navigators recover from.
func IsRejected(err error) bool {
	return KindOf(err) == KindRejected
}

func newError(kind ErrorKind, args []string, err error) *Error {
	return &Error{
		Kind: kind,
		Args: append([]string(nil), args...),
		Err:  err,
	}
}
