package protocol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Singh-Gursimar/HandGestureHID/internal/uinput"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		want    Command
		wantErr bool
	}{
		{name: "blank line", line: "", want: Command{Verb: VerbNone}},
		{name: "whitespace only", line: "   \t ", want: Command{Verb: VerbNone}},
		{name: "comment", line: "# gesture debug output", want: Command{Verb: VerbNone}},
		{name: "indented comment", line: "  # still a comment", want: Command{Verb: VerbNone}},

		{name: "mouse move", line: "MOUSE_MOVE 100 200",
			want: Command{Verb: VerbMouseMove, X: 100, Y: 200}},
		{name: "mouse move negative", line: "MOUSE_MOVE -5 -7",
			want: Command{Verb: VerbMouseMove, X: -5, Y: -7}},
		{name: "mouse move extra whitespace", line: "  MOUSE_MOVE \t 1   2 ",
			want: Command{Verb: VerbMouseMove, X: 1, Y: 2}},
		{name: "mouse move missing arg", line: "MOUSE_MOVE 100", wantErr: true},
		{name: "mouse move extra arg", line: "MOUSE_MOVE 1 2 3", wantErr: true},
		{name: "mouse move non-numeric", line: "MOUSE_MOVE ten 20", wantErr: true},
		{name: "mouse move overflow", line: "MOUSE_MOVE 99999999999 0", wantErr: true},

		{name: "left click", line: "MOUSE_LEFT", want: Command{Verb: VerbMouseLeft}},
		{name: "right click", line: "MOUSE_RIGHT", want: Command{Verb: VerbMouseRight}},
		{name: "middle click", line: "MOUSE_MIDDLE", want: Command{Verb: VerbMouseMiddle}},
		{name: "click ignores trailing tokens", line: "MOUSE_LEFT 1",
			want: Command{Verb: VerbMouseLeft}},

		{name: "scroll up", line: "MOUSE_SCROLL 3",
			want: Command{Verb: VerbMouseScroll, Delta: 3}},
		{name: "scroll down", line: "MOUSE_SCROLL -1",
			want: Command{Verb: VerbMouseScroll, Delta: -1}},
		{name: "scroll missing delta", line: "MOUSE_SCROLL", wantErr: true},

		{name: "button press", line: "GAMEPAD_BTN A 1",
			want: Command{Verb: VerbGamepadButton, Button: uinput.ButtonA, Pressed: true}},
		{name: "button release", line: "GAMEPAD_BTN A 0",
			want: Command{Verb: VerbGamepadButton, Button: uinput.ButtonA, Pressed: false}},
		{name: "nonzero state is pressed", line: "GAMEPAD_BTN START 7",
			want: Command{Verb: VerbGamepadButton, Button: uinput.ButtonStart, Pressed: true}},
		{name: "unknown button", line: "GAMEPAD_BTN Z 1", wantErr: true},
		{name: "lowercase button", line: "GAMEPAD_BTN a 1", wantErr: true},
		{name: "button missing state", line: "GAMEPAD_BTN A", wantErr: true},

		{name: "stick", line: "GAMEPAD_STICK 1000 -2000",
			want: Command{Verb: VerbGamepadStick, X: 1000, Y: -2000}},
		{name: "stick out of range parses", line: "GAMEPAD_STICK 40000 -40000",
			want: Command{Verb: VerbGamepadStick, X: 40000, Y: -40000}},
		{name: "stick one arg", line: "GAMEPAD_STICK 5", wantErr: true},

		{name: "quit", line: "QUIT", want: Command{Verb: VerbQuit}},
		{name: "quit ignores trailing tokens", line: "QUIT now",
			want: Command{Verb: VerbQuit}},

		{name: "unknown verb", line: "FOOBAR 1 2", wantErr: true},
		{name: "lowercase verb", line: "mouse_move 1 2", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLine(tt.line)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
