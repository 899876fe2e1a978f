// Package dispatch runs the driver's control loop: read one line,
// parse, emit, repeat. It owns the two virtual devices and guarantees
// they are torn down exactly once on every exit path, because a uinput
// device that is never destroyed stays visible to the whole system until
// the owning process dies.
package dispatch

import (
	"bufio"
	"context"
	"io"
	"sync"

	"github.com/Singh-Gursimar/HandGestureHID/internal/logger"
	"github.com/Singh-Gursimar/HandGestureHID/internal/protocol"
	"github.com/Singh-Gursimar/HandGestureHID/internal/uinput"
)

// MouseDevice is the mouse surface the dispatcher drives.
type MouseDevice interface {
	MoveAbsolute(x, y int32) error
	Click(btn uinput.MouseButton) error
	Scroll(delta int32) error
	Close() error
}

// GamepadDevice is the gamepad surface the dispatcher drives.
type GamepadDevice interface {
	SetButton(btn uinput.GamepadButton, pressed bool) error
	SetStick(x, y int32) error
	Close() error
}

// Dispatcher reads the command stream and routes commands to the
// devices. Single control flow: a line is fully processed before the
// next read, so no command is reordered or batched.
type Dispatcher struct {
	mouse   MouseDevice
	gamepad GamepadDevice
	input   io.Reader

	closeOnce sync.Once
	closeErr  error
}

// New returns a Dispatcher reading commands from r.
func New(mouse MouseDevice, gamepad GamepadDevice, r io.Reader) *Dispatcher {
	return &Dispatcher{mouse: mouse, gamepad: gamepad, input: r}
}

// Run processes commands until QUIT, end of input or ctx cancellation,
// then tears the devices down. Malformed lines and failed event writes
// are logged and skipped; they never stop the loop.
func (d *Dispatcher) Run(ctx context.Context) error {
	defer func() {
		if err := d.Close(); err != nil {
			logger.Error("device teardown", "err", err)
		}
	}()

	// The blocking read lives in its own goroutine feeding a channel so
	// the loop can also observe cancellation. Commands still execute
	// strictly one at a time, in arrival order. The derived context
	// releases the reader when Run returns for any reason.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		defer close(lines)
		reader := bufio.NewReaderSize(d.input, maxLineSize)
		for {
			line, tooLong, err := readLine(reader)
			if tooLong {
				// The producer gives no well-formedness guarantees; an
				// oversized line is just another malformed line.
				logger.Warn("dropping oversized line", "limit", maxLineSize)
			}
			if err != nil {
				if err != io.EOF {
					readErr <- err
				}
				return
			}
			if tooLong {
				continue
			}
			select {
			case lines <- line:
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			logger.Info("shutdown signal received")
			return nil
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-readErr:
					return err
				default:
				}
				logger.Debug("end of input")
				return nil
			}
			if d.dispatch(line) {
				return nil
			}
		}
	}
}

// maxLineSize bounds one protocol line. Valid commands are a few dozen
// bytes; anything past this is dropped without buffering the rest.
const maxLineSize = 64 * 1024

// readLine returns the next line, reporting lines that overflow the
// reader's buffer. The remainder of an oversized line is consumed and
// discarded so the following line starts clean.
func readLine(r *bufio.Reader) (string, bool, error) {
	frag, isPrefix, err := r.ReadLine()
	if err != nil {
		return "", false, err
	}
	if !isPrefix {
		return string(frag), false, nil
	}
	for isPrefix {
		_, isPrefix, err = r.ReadLine()
		if err != nil {
			return "", true, err
		}
	}
	return "", true, nil
}

// dispatch executes one line and reports whether the loop should stop.
func (d *Dispatcher) dispatch(line string) (quit bool) {
	cmd, err := protocol.ParseLine(line)
	if err != nil {
		logger.Warn("dropping line", "line", line, "err", err)
		return false
	}

	switch cmd.Verb {
	case protocol.VerbNone:
		return false
	case protocol.VerbQuit:
		logger.Debug("quit command received")
		return true
	case protocol.VerbMouseMove:
		err = d.mouse.MoveAbsolute(cmd.X, cmd.Y)
	case protocol.VerbMouseLeft:
		err = d.mouse.Click(uinput.MouseLeft)
	case protocol.VerbMouseRight:
		err = d.mouse.Click(uinput.MouseRight)
	case protocol.VerbMouseMiddle:
		err = d.mouse.Click(uinput.MouseMiddle)
	case protocol.VerbMouseScroll:
		err = d.mouse.Scroll(cmd.Delta)
	case protocol.VerbGamepadButton:
		err = d.gamepad.SetButton(cmd.Button, cmd.Pressed)
	case protocol.VerbGamepadStick:
		err = d.gamepad.SetStick(cmd.X, cmd.Y)
	}
	if err != nil {
		// No retry: the producer refreshes absolute state continuously,
		// so a dropped emit heals on the next command.
		logger.Error("event write failed", "line", line, "err", err)
	}
	return false
}

// Close destroys both devices. Only the first call performs teardown;
// later calls return the first result.
func (d *Dispatcher) Close() error {
	d.closeOnce.Do(func() {
		merr := d.mouse.Close()
		gerr := d.gamepad.Close()
		if merr != nil {
			d.closeErr = merr
		} else {
			d.closeErr = gerr
		}
	})
	return d.closeErr
}
