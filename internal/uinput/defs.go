// Package uinput creates kernel-visible virtual input devices through the
// Linux uinput character device. It registers capability bits, writes the
// fixed uinput_user_dev descriptor and emits input_event records, giving
// the rest of the application a virtual mouse and gamepad that every
// program on the system sees as real hardware.
package uinput

import (
	"bytes"
	"encoding/binary"

	"golang.org/x/sys/unix"
)

// Event types and codes from linux/input-event-codes.h.
const (
	evSyn uint16 = 0x00
	evKey uint16 = 0x01
	evRel uint16 = 0x02
	evAbs uint16 = 0x03

	synReport uint16 = 0x00

	relWheel uint16 = 0x08

	absX uint16 = 0x00
	absY uint16 = 0x01

	btnLeft   uint16 = 0x110
	btnRight  uint16 = 0x111
	btnMiddle uint16 = 0x112

	btnSouth  uint16 = 0x130
	btnEast   uint16 = 0x131
	btnNorth  uint16 = 0x133
	btnWest   uint16 = 0x134
	btnTL     uint16 = 0x136
	btnTR     uint16 = 0x137
	btnSelect uint16 = 0x138
	btnStart  uint16 = 0x139
)

// busVirtual is BUS_VIRTUAL from linux/input.h.
const busVirtual uint16 = 0x06

// ioctl request numbers from linux/uinput.h.
const (
	uiDevCreate  uintptr = 0x5501
	uiDevDestroy uintptr = 0x5502
	uiSetEvBit   uintptr = 0x40045564
	uiSetKeyBit  uintptr = 0x40045565
	uiSetRelBit  uintptr = 0x40045566
	uiSetAbsBit  uintptr = 0x40045567
)

const (
	maxNameSize = 80 // UINPUT_MAX_NAME_SIZE
	absCount    = 64 // ABS_CNT slots in uinput_user_dev
)

// inputID mirrors struct input_id.
type inputID struct {
	BusType uint16
	Vendor  uint16
	Product uint16
	Version uint16
}

// userDev mirrors struct uinput_user_dev, the fixed-layout descriptor the
// kernel expects on the device node before UI_DEV_CREATE.
type userDev struct {
	Name       [maxNameSize]byte
	ID         inputID
	EffectsMax uint32
	AbsMax     [absCount]int32
	AbsMin     [absCount]int32
	AbsFuzz    [absCount]int32
	AbsFlat    [absCount]int32
}

func (ud *userDev) bytes() []byte {
	buf := new(bytes.Buffer)
	// Fixed-size fields only, cannot fail.
	_ = binary.Write(buf, binary.LittleEndian, ud)
	return buf.Bytes()
}

// inputEvent mirrors struct input_event. The kernel fills the timestamp
// for events written to a uinput node, so Time stays zero.
type inputEvent struct {
	Time  unix.Timeval
	Type  uint16
	Code  uint16
	Value int32
}

func (ev *inputEvent) bytes() []byte {
	buf := new(bytes.Buffer)
	_ = binary.Write(buf, binary.LittleEndian, ev)
	return buf.Bytes()
}
