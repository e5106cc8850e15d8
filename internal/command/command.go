// Package command turns the yctrl argument list into an immutable Command.
package command

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Domain is the first word of a yabai command
type Domain int

const (
	DomainOther Domain = iota
	DomainWindow
	DomainSpace
	DomainQuery
)

// Verb is the yabai command selected inside a domain
type Verb int

const (
	VerbOther Verb = iota
	VerbFocus
	VerbSwap
	VerbMove
	VerbWarp
	VerbSpace // window --space: send the window to another space
	VerbInc   // yctrl-only: grow or shrink the focused window by a fixed step
	VerbMake  // yctrl-only: make master
	VerbResize
)

var verbNames = map[string]Verb{
	"focus": VerbFocus,
	"swap":  VerbSwap,
	"move":  VerbMove,
	"warp":  VerbWarp,
	"space": VerbSpace,
	"inc":   VerbInc,
	"make":  VerbMake,

	"resize": VerbResize,
}

// Navigable reports whether yctrl adds fallback handling for the verb.
// Other verbs are sent to yabai verbatim.
func (v Verb) Navigable() bool {
	switch v {
	case VerbFocus, VerbSwap, VerbMove, VerbWarp, VerbSpace, VerbInc, VerbMake:
		return true
	default:
		return false
	}
}

const (
	SelectorNext  = "next"
	SelectorPrev  = "prev"
	SelectorFirst = "first"
	SelectorLast  = "last"
)

// ErrNotEnoughArgs is returned when the argument list has no verb
var ErrNotEnoughArgs = errors.New("not enough arguments provided")

// Command is a parsed yctrl invocation. It is never modified after Parse;
// the With* methods return copies.
type Command struct {
	domain    string
	target    string
	verb      string
	kind      Verb
	operands  []string
	domainTag Domain
}

// Parse builds a Command from `<domain> [id] <verb> [operands...]`.
// A purely numeric token after the domain is the target window or space.
// The verb gets a leading "--" unless it already has one.
func Parse(argv []string) (Command, error) {
	if len(argv) < 2 {
		return Command{}, ErrNotEnoughArgs
	}

	cmd := Command{domain: argv[0], domainTag: parseDomain(argv[0])}

	verbPos := 1
	if isNumeric(argv[1]) {
		if len(argv) < 3 {
			return Command{}, fmt.Errorf("%w: missing command after %s %s", ErrNotEnoughArgs, argv[0], argv[1])
		}
		cmd.target = argv[1]
		verbPos = 2
	}

	name := strings.TrimPrefix(argv[verbPos], "--")
	if name == "" {
		return Command{}, fmt.Errorf("empty command in %q", argv)
	}
	cmd.verb = "--" + name
	cmd.kind = verbNames[name]
	cmd.operands = append([]string(nil), argv[verbPos+1:]...)

	return cmd, nil
}

// New builds a command from already split parts
func New(domain Domain, verb Verb, operands ...string) Command {
	return Command{
		domain:    domain.String(),
		domainTag: domain,
		verb:      "--" + verb.String(),
		kind:      verb,
		operands:  append([]string(nil), operands...),
	}
}

func parseDomain(s string) Domain {
	switch s {
	case "window":
		return DomainWindow
	case "space":
		return DomainSpace
	case "query":
		return DomainQuery
	default:
		return DomainOther
	}
}

func isNumeric(s string) bool {
	_, err := strconv.ParseUint(s, 10, 32)
	return err == nil
}

func (d Domain) String() string {
	switch d {
	case DomainWindow:
		return "window"
	case DomainSpace:
		return "space"
	case DomainQuery:
		return "query"
	default:
		return "other"
	}
}

func (v Verb) String() string {
	for name, verb := range verbNames {
		if verb == v {
			return name
		}
	}
	return "other"
}

// Domain returns the parsed domain
func (c Command) Domain() Domain { return c.domainTag }

// DomainName returns the domain as typed
func (c Command) DomainName() string { return c.domain }

// Verb returns the parsed verb
func (c Command) Verb() Verb { return c.kind }

// VerbName returns the verb token, including the leading "--"
func (c Command) VerbName() string { return c.verb }

// Target returns the window or space id given before the verb, if any
func (c Command) Target() string { return c.target }

// Operands returns a copy of the arguments after the verb
func (c Command) Operands() []string {
	return append([]string(nil), c.operands...)
}

// Operand returns the i-th operand or "" when there is none
func (c Command) Operand(i int) string {
	if i < 0 || i >= len(c.operands) {
		return ""
	}
	return c.operands[i]
}

// Selector returns the last argument: an id, a keyword or next/prev
func (c Command) Selector() string {
	if len(c.operands) == 0 {
		return ""
	}
	return c.operands[len(c.operands)-1]
}

// Directional reports whether the selector is next or prev
func (c Command) Directional() bool {
	s := c.Selector()
	return s == SelectorNext || s == SelectorPrev
}

// Forward reports whether the selector is next
func (c Command) Forward() bool {
	return c.Selector() == SelectorNext
}

// WithSelector returns a copy with the last operand replaced, or appended
// when there are no operands.
func (c Command) WithSelector(sel string) Command {
	ops := c.Operands()
	if len(ops) == 0 {
		ops = append(ops, sel)
	} else {
		ops[len(ops)-1] = sel
	}
	c.operands = ops
	return c
}

// WithVerb returns a copy running another verb on the same target
func (c Command) WithVerb(v Verb) Command {
	c.verb = "--" + v.String()
	c.kind = v
	return c
}

// WithOperands returns a copy with all operands replaced
func (c Command) WithOperands(operands ...string) Command {
	c.operands = append([]string(nil), operands...)
	return c
}

// WithDomain returns a copy addressed to another domain. The target is
// dropped since it names a window or space of the old domain.
func (c Command) WithDomain(d Domain) Command {
	c.domain = d.String()
	c.domainTag = d
	c.target = ""
	return c
}

// Args renders the argument vector sent to yabai
func (c Command) Args() []string {
	args := make([]string, 0, 3+len(c.operands))
	args = append(args, c.domain)
	if c.target != "" {
		args = append(args, c.target)
	}
	args = append(args, c.verb)
	args = append(args, c.operands...)
	return args
}

func (c Command) String() string {
	return strings.Join(c.Args(), " ")
}
