package uinput

// StickMax bounds both analogue stick axes; emitted values are clamped
// into [-StickMax, StickMax].
const StickMax = 32767

// Stick axes carry a little fuzz and a flat dead zone so tiny hand
// tremors from the upstream producer do not register as motion.
const (
	stickFuzz = 16
	stickFlat = 128
)

// Gamepad is a virtual Xbox-style gamepad: eight buttons and one
// analogue stick on ABS_X/ABS_Y.
type Gamepad struct {
	dev *Device
}

// NewGamepad registers a virtual gamepad.
func NewGamepad(f *Factory, name string) (*Gamepad, error) {
	dev, err := f.Create(DeviceConfig{
		Name:    name,
		BusType: busVirtual,
		Vendor:  deviceVendor,
		Product: gamepadProduct,
		Version: deviceVersion,
		Keys: []uint16{
			btnSouth, btnEast, btnNorth, btnWest,
			btnTL, btnTR, btnSelect, btnStart,
		},
		AbsAxes: []AbsAxis{
			{Code: absX, Min: -StickMax, Max: StickMax, Fuzz: stickFuzz, Flat: stickFlat},
			{Code: absY, Min: -StickMax, Max: StickMax, Fuzz: stickFuzz, Flat: stickFlat},
		},
	})
	if err != nil {
		return nil, err
	}
	return &Gamepad{dev: dev}, nil
}

// SetButton presses or releases one button. Unlike mouse clicks the two
// halves are independent calls: holding a button is a valid state and
// the caller must release it explicitly.
func (g *Gamepad) SetButton(btn GamepadButton, pressed bool) error {
	if !g.dev.Valid() {
		return nil
	}
	value := int32(0)
	if pressed {
		value = 1
	}
	if err := g.dev.Emit(evKey, uint16(btn), value); err != nil {
		return err
	}
	return g.dev.Sync()
}

// SetStick positions the analogue stick, clamping each axis
// independently into the registered range.
func (g *Gamepad) SetStick(x, y int32) error {
	if !g.dev.Valid() {
		return nil
	}
	x = clamp(x, -StickMax, StickMax)
	y = clamp(y, -StickMax, StickMax)
	if err := g.dev.Emit(evAbs, absX, x); err != nil {
		return err
	}
	if err := g.dev.Emit(evAbs, absY, y); err != nil {
		return err
	}
	return g.dev.Sync()
}

// Close destroys the virtual gamepad. Safe to call more than once.
func (g *Gamepad) Close() error {
	return g.dev.Destroy()
}
