package uinput

import "fmt"

// Device identity written into the descriptors. Applications key on
// these, so they stay fixed.
const (
	deviceVendor   = 0x1357
	mouseProduct   = 0x0001
	gamepadProduct = 0x0002
	deviceVersion  = 1
)

// Mouse is a virtual absolute-positioning mouse. Coordinates are screen
// pixels; emitted values always land inside [0,width)×[0,height).
type Mouse struct {
	dev    *Device
	width  int32
	height int32
}

// NewMouse registers a virtual mouse whose absolute axes span the given
// screen bounds.
func NewMouse(f *Factory, name string, width, height int32) (*Mouse, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid screen bounds %dx%d", width, height)
	}
	dev, err := f.Create(DeviceConfig{
		Name:    name,
		BusType: busVirtual,
		Vendor:  deviceVendor,
		Product: mouseProduct,
		Version: deviceVersion,
		Keys:    []uint16{btnLeft, btnRight, btnMiddle},
		RelAxes: []uint16{relWheel},
		AbsAxes: []AbsAxis{
			{Code: absX, Min: 0, Max: width - 1},
			{Code: absY, Min: 0, Max: height - 1},
		},
	})
	if err != nil {
		return nil, err
	}
	return &Mouse{dev: dev, width: width, height: height}, nil
}

// MoveAbsolute places the cursor at (x, y), clamping each coordinate to
// the screen bounds independently. No-op once the device is closed.
func (m *Mouse) MoveAbsolute(x, y int32) error {
	if !m.dev.Valid() {
		return nil
	}
	x = clamp(x, 0, m.width-1)
	y = clamp(y, 0, m.height-1)
	if err := m.dev.Emit(evAbs, absX, x); err != nil {
		return err
	}
	if err := m.dev.Emit(evAbs, absY, y); err != nil {
		return err
	}
	return m.dev.Sync()
}

// Click emits a full press/release pair for the button. There is
// deliberately no API for holding a mouse button.
func (m *Mouse) Click(btn MouseButton) error {
	if !m.dev.Valid() {
		return nil
	}
	if err := m.dev.Emit(evKey, uint16(btn), 1); err != nil {
		return err
	}
	if err := m.dev.Sync(); err != nil {
		return err
	}
	if err := m.dev.Emit(evKey, uint16(btn), 0); err != nil {
		return err
	}
	return m.dev.Sync()
}

// Scroll turns the wheel by delta notches, positive is up. The kernel
// accepts any signed value, so no clamping happens here.
func (m *Mouse) Scroll(delta int32) error {
	if !m.dev.Valid() {
		return nil
	}
	if err := m.dev.Emit(evRel, relWheel, delta); err != nil {
		return err
	}
	return m.dev.Sync()
}

// Close destroys the virtual mouse. Safe to call more than once.
func (m *Mouse) Close() error {
	return m.dev.Destroy()
}

func clamp(v, lo, hi int32) int32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
