// Package protocol parses the line-oriented command stream produced by
// the gesture pipeline. One command per line, whitespace-separated
// tokens, case-sensitive verbs. A malformed line is a parse error value
// for the caller to log and drop, never a reason to stop reading.
package protocol

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Singh-Gursimar/HandGestureHID/internal/uinput"
)

// Verb identifies one protocol command.
type Verb int

const (
	// VerbNone is a blank line or comment; nothing to execute.
	VerbNone Verb = iota
	VerbMouseMove
	VerbMouseLeft
	VerbMouseRight
	VerbMouseMiddle
	VerbMouseScroll
	VerbGamepadButton
	VerbGamepadStick
	VerbQuit
)

// Command is one parsed protocol line. Only the fields relevant to the
// verb carry meaning.
type Command struct {
	Verb    Verb
	X       int32
	Y       int32
	Delta   int32
	Button  uinput.GamepadButton
	Pressed bool
}

// ParseLine parses one line of the command stream. Blank lines and
// comments starting with '#' yield VerbNone. Unknown verbs, missing or
// non-numeric arguments and unknown button names all return an error;
// the command value is then meaningless. Zero-argument verbs ignore
// anything after the verb token.
func ParseLine(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return Command{Verb: VerbNone}, nil
	}

	verb, args := fields[0], fields[1:]
	switch verb {
	// Zero-argument verbs dispatch on the verb alone; trailing tokens
	// are ignored, not treated as malformed.
	case "QUIT":
		return Command{Verb: VerbQuit}, nil

	case "MOUSE_LEFT":
		return Command{Verb: VerbMouseLeft}, nil

	case "MOUSE_RIGHT":
		return Command{Verb: VerbMouseRight}, nil

	case "MOUSE_MIDDLE":
		return Command{Verb: VerbMouseMiddle}, nil

	case "MOUSE_MOVE":
		x, y, err := intPair(verb, args)
		if err != nil {
			return Command{}, err
		}
		return Command{Verb: VerbMouseMove, X: x, Y: y}, nil

	case "MOUSE_SCROLL":
		if err := wantArgs(verb, args, 1); err != nil {
			return Command{}, err
		}
		delta, err := parseInt(verb, args[0])
		if err != nil {
			return Command{}, err
		}
		return Command{Verb: VerbMouseScroll, Delta: delta}, nil

	case "GAMEPAD_BTN":
		if err := wantArgs(verb, args, 2); err != nil {
			return Command{}, err
		}
		btn, err := uinput.ParseGamepadButton(args[0])
		if err != nil {
			return Command{}, fmt.Errorf("%s: %w", verb, err)
		}
		state, err := parseInt(verb, args[1])
		if err != nil {
			return Command{}, err
		}
		return Command{Verb: VerbGamepadButton, Button: btn, Pressed: state != 0}, nil

	case "GAMEPAD_STICK":
		x, y, err := intPair(verb, args)
		if err != nil {
			return Command{}, err
		}
		return Command{Verb: VerbGamepadStick, X: x, Y: y}, nil

	default:
		return Command{}, fmt.Errorf("unknown command %q", verb)
	}
}

func wantArgs(verb string, args []string, n int) error {
	if len(args) != n {
		return fmt.Errorf("%s: expected %d argument(s), got %d", verb, n, len(args))
	}
	return nil
}

func parseInt(verb, s string) (int32, error) {
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%s: bad integer %q", verb, s)
	}
	return int32(v), nil
}

func intPair(verb string, args []string) (int32, int32, error) {
	if err := wantArgs(verb, args, 2); err != nil {
		return 0, 0, err
	}
	x, err := parseInt(verb, args[0])
	if err != nil {
		return 0, 0, err
	}
	y, err := parseInt(verb, args[1])
	if err != nil {
		return 0, 0, err
	}
	return x, y, nil
}
