package uinput

import (
	"bytes"
	"encoding/binary"
	"testing"
)

// fakeNode stands in for the uinput character device, recording every
// ioctl and write in order so tests can assert on the exact kernel-facing
// sequence.
type fakeNode struct {
	ops      []fakeOp
	closed   bool
	ioctlErr map[uintptr]error
	writeErr error
}

type fakeOp struct {
	kind string // "ioctl" or "write"
	req  uintptr
	arg  uintptr
	data []byte
}

func (n *fakeNode) Ioctl(req uintptr, arg uintptr) error {
	if err := n.ioctlErr[req]; err != nil {
		return err
	}
	n.ops = append(n.ops, fakeOp{kind: "ioctl", req: req, arg: arg})
	return nil
}

func (n *fakeNode) Write(p []byte) (int, error) {
	if n.writeErr != nil {
		return 0, n.writeErr
	}
	data := append([]byte(nil), p...)
	n.ops = append(n.ops, fakeOp{kind: "write", data: data})
	return len(p), nil
}

func (n *fakeNode) Close() error {
	n.closed = true
	return nil
}

// events decodes every input_event-sized write recorded so far,
// skipping the descriptor write.
func (n *fakeNode) events(t *testing.T) []inputEvent {
	t.Helper()
	var evs []inputEvent
	for _, op := range n.ops {
		if op.kind != "write" || len(op.data) != 24 {
			continue
		}
		var ev inputEvent
		if err := binary.Read(bytes.NewReader(op.data), binary.LittleEndian, &ev); err != nil {
			t.Fatalf("decode event: %v", err)
		}
		evs = append(evs, ev)
	}
	return evs
}

// descriptor returns the recorded uinput_user_dev write, if any.
func (n *fakeNode) descriptor(t *testing.T) *userDev {
	t.Helper()
	for _, op := range n.ops {
		if op.kind != "write" || len(op.data) == 24 {
			continue
		}
		var ud userDev
		if err := binary.Read(bytes.NewReader(op.data), binary.LittleEndian, &ud); err != nil {
			t.Fatalf("decode descriptor: %v", err)
		}
		return &ud
	}
	return nil
}

// newFakeFactory returns a Factory whose open always yields node.
func newFakeFactory(node *fakeNode) *Factory {
	return &Factory{
		paths: []string{"/dev/uinput"},
		open: func(string) (deviceNode, error) {
			return node, nil
		},
	}
}

// wantEvent asserts one (type, code, value) triple.
func wantEvent(t *testing.T, ev inputEvent, typ, code uint16, value int32) {
	t.Helper()
	if ev.Type != typ || ev.Code != code || ev.Value != value {
		t.Errorf("event = (%#x,%#x,%d), want (%#x,%#x,%d)",
			ev.Type, ev.Code, ev.Value, typ, code, value)
	}
}
