package uinput

import (
	"errors"
	"fmt"
)

var (
	// ErrDeviceUnavailable means no uinput node could be opened. Startup
	// fatal: without it no virtual device can exist.
	ErrDeviceUnavailable = errors.New("uinput device unavailable")

	// ErrDeviceCreateFailed means capability registration, the descriptor
	// write or UI_DEV_CREATE failed after the node was opened.
	ErrDeviceCreateFailed = errors.New("uinput device creation failed")

	// ErrDeviceClosed is returned when emitting on a destroyed device.
	ErrDeviceClosed = errors.New("uinput device closed")
)

// devicePaths are tried in order; the second is a fallback used by some
// distributions.
var devicePaths = []string{"/dev/uinput", "/dev/input/uinput"}

// AbsAxis declares one absolute axis of a device: its code and the
// min/max/fuzz/flat values written into the descriptor.
type AbsAxis struct {
	Code uint16
	Min  int32
	Max  int32
	Fuzz int32
	Flat int32
}

// DeviceConfig is the declarative capability list a Factory turns into
// the kernel's registration sequence and descriptor layout.
type DeviceConfig struct {
	Name    string
	BusType uint16
	Vendor  uint16
	Product uint16
	Version uint16

	Keys    []uint16
	RelAxes []uint16
	AbsAxes []AbsAxis
}

// Factory opens uinput nodes and builds devices on them.
type Factory struct {
	paths []string
	open  func(path string) (deviceNode, error)
}

// NewFactory returns a Factory using the real uinput device nodes.
func NewFactory() *Factory {
	return &Factory{paths: devicePaths, open: openFileNode}
}

// Device is an exclusively-owned connection to one created virtual
// device. It is valid between a successful Factory.Create and Destroy;
// Destroy is idempotent.
type Device struct {
	node  deviceNode
	name  string
	valid bool
}

// Create opens a uinput node, registers the capabilities declared in cfg,
// writes the device descriptor and issues UI_DEV_CREATE. The registration
// order (event-type bits, then per-code bits, then descriptor, then
// create) is part of the kernel ABI, not a style choice.
func (f *Factory) Create(cfg DeviceConfig) (*Device, error) {
	node, err := f.openNode()
	if err != nil {
		return nil, err
	}

	if err := registerCapabilities(node, cfg); err != nil {
		_ = node.Close()
		return nil, fmt.Errorf("%w: %s: %v", ErrDeviceCreateFailed, cfg.Name, err)
	}

	desc, err := descriptor(cfg)
	if err != nil {
		_ = node.Close()
		return nil, fmt.Errorf("%w: %s: %v", ErrDeviceCreateFailed, cfg.Name, err)
	}
	if _, err := node.Write(desc); err != nil {
		_ = node.Close()
		return nil, fmt.Errorf("%w: %s: descriptor write: %v", ErrDeviceCreateFailed, cfg.Name, err)
	}

	if err := node.Ioctl(uiDevCreate, 0); err != nil {
		_ = node.Close()
		return nil, fmt.Errorf("%w: %s: UI_DEV_CREATE: %v", ErrDeviceCreateFailed, cfg.Name, err)
	}

	return &Device{node: node, name: cfg.Name, valid: true}, nil
}

func (f *Factory) openNode() (deviceNode, error) {
	var firstErr error
	for _, path := range f.paths {
		node, err := f.open(path)
		if err == nil {
			return node, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return nil, fmt.Errorf("%w: %v (load the kernel module with 'modprobe uinput' and ensure write access, e.g. membership in the 'input' group)",
		ErrDeviceUnavailable, firstErr)
}

// registerCapabilities enables the event-type bits first, then the
// per-code bits for each type. All of it must precede UI_DEV_CREATE.
func registerCapabilities(node deviceNode, cfg DeviceConfig) error {
	type evType struct {
		bit uintptr
		on  bool
	}
	for _, et := range []evType{
		{uintptr(evKey), len(cfg.Keys) > 0},
		{uintptr(evRel), len(cfg.RelAxes) > 0},
		{uintptr(evAbs), len(cfg.AbsAxes) > 0},
	} {
		if !et.on {
			continue
		}
		if err := node.Ioctl(uiSetEvBit, et.bit); err != nil {
			return fmt.Errorf("UI_SET_EVBIT %#x: %w", et.bit, err)
		}
	}

	for _, code := range cfg.Keys {
		if err := node.Ioctl(uiSetKeyBit, uintptr(code)); err != nil {
			return fmt.Errorf("UI_SET_KEYBIT %#x: %w", code, err)
		}
	}
	for _, code := range cfg.RelAxes {
		if err := node.Ioctl(uiSetRelBit, uintptr(code)); err != nil {
			return fmt.Errorf("UI_SET_RELBIT %#x: %w", code, err)
		}
	}
	for _, ax := range cfg.AbsAxes {
		if err := node.Ioctl(uiSetAbsBit, uintptr(ax.Code)); err != nil {
			return fmt.Errorf("UI_SET_ABSBIT %#x: %w", ax.Code, err)
		}
	}
	return nil
}

// descriptor translates the declarative capability list into the exact
// uinput_user_dev field layout. All ABI-specific offsets live here.
func descriptor(cfg DeviceConfig) ([]byte, error) {
	ud := userDev{
		ID: inputID{
			BusType: cfg.BusType,
			Vendor:  cfg.Vendor,
			Product: cfg.Product,
			Version: cfg.Version,
		},
	}
	// Leave room for the trailing NUL the kernel expects.
	copy(ud.Name[:maxNameSize-1], cfg.Name)

	for _, ax := range cfg.AbsAxes {
		if int(ax.Code) >= absCount {
			return nil, fmt.Errorf("abs axis code %#x out of range", ax.Code)
		}
		ud.AbsMin[ax.Code] = ax.Min
		ud.AbsMax[ax.Code] = ax.Max
		ud.AbsFuzz[ax.Code] = ax.Fuzz
		ud.AbsFlat[ax.Code] = ax.Flat
	}
	return ud.bytes(), nil
}

// NewDevicePair creates the mouse and the gamepad together. If the
// gamepad fails after the mouse already exists in the kernel, the mouse
// is destroyed before the error propagates so no ghost device outlives
// a failed start.
func NewDevicePair(f *Factory, mouseName, gamepadName string, width, height int32) (*Mouse, *Gamepad, error) {
	mouse, err := NewMouse(f, mouseName, width, height)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create virtual mouse: %w", err)
	}
	gamepad, err := NewGamepad(f, gamepadName)
	if err != nil {
		_ = mouse.Close()
		return nil, nil, fmt.Errorf("failed to create virtual gamepad: %w", err)
	}
	return mouse, gamepad, nil
}

// Valid reports whether the device still exists in the kernel.
func (d *Device) Valid() bool {
	return d != nil && d.valid
}

// Emit writes one (type, code, value) event. The event is not visible to
// listeners until a following Sync flushes the report.
func (d *Device) Emit(typ, code uint16, value int32) error {
	if !d.Valid() {
		return ErrDeviceClosed
	}
	ev := inputEvent{Type: typ, Code: code, Value: value}
	if _, err := d.node.Write(ev.bytes()); err != nil {
		return fmt.Errorf("%s: emit (%#x,%#x,%d): %w", d.name, typ, code, value, err)
	}
	return nil
}

// Sync emits the synchronization marker that publishes everything since
// the previous marker as one atomic input report.
func (d *Device) Sync() error {
	return d.Emit(evSyn, synReport, 0)
}

// Destroy issues UI_DEV_DESTROY and releases the node. Repeat calls are
// no-ops; the kernel would otherwise keep a ghost device alive until the
// owning process dies.
func (d *Device) Destroy() error {
	if !d.Valid() {
		return nil
	}
	d.valid = false
	derr := d.node.Ioctl(uiDevDestroy, 0)
	cerr := d.node.Close()
	if derr != nil {
		return fmt.Errorf("%s: UI_DEV_DESTROY: %w", d.name, derr)
	}
	return cerr
}
