package uinput

import "fmt"

// MouseButton is an evdev button code the virtual mouse registers.
type MouseButton uint16

const (
	MouseLeft   MouseButton = MouseButton(btnLeft)
	MouseRight  MouseButton = MouseButton(btnRight)
	MouseMiddle MouseButton = MouseButton(btnMiddle)
)

// GamepadButton is an evdev button code the virtual gamepad registers.
// The vocabulary is closed: the eight Xbox-style buttons below.
type GamepadButton uint16

const (
	ButtonA      GamepadButton = GamepadButton(btnSouth)
	ButtonB      GamepadButton = GamepadButton(btnEast)
	ButtonX      GamepadButton = GamepadButton(btnNorth)
	ButtonY      GamepadButton = GamepadButton(btnWest)
	ButtonLB     GamepadButton = GamepadButton(btnTL)
	ButtonRB     GamepadButton = GamepadButton(btnTR)
	ButtonSelect GamepadButton = GamepadButton(btnSelect)
	ButtonStart  GamepadButton = GamepadButton(btnStart)
)

// ParseGamepadButton maps a protocol button name to its device code.
func ParseGamepadButton(name string) (GamepadButton, error) {
	switch name {
	case "A":
		return ButtonA, nil
	case "B":
		return ButtonB, nil
	case "X":
		return ButtonX, nil
	case "Y":
		return ButtonY, nil
	case "LB":
		return ButtonLB, nil
	case "RB":
		return ButtonRB, nil
	case "SELECT":
		return ButtonSelect, nil
	case "START":
		return ButtonStart, nil
	default:
		return 0, fmt.Errorf("unknown gamepad button %q", name)
	}
}

func (b GamepadButton) String() string {
	switch b {
	case ButtonA:
		return "A"
	case ButtonB:
		return "B"
	case ButtonX:
		return "X"
	case ButtonY:
		return "Y"
	case ButtonLB:
		return "LB"
	case ButtonRB:
		return "RB"
	case ButtonSelect:
		return "SELECT"
	case ButtonStart:
		return "START"
	default:
		return fmt.Sprintf("GamepadButton(%#x)", uint16(b))
	}
}
