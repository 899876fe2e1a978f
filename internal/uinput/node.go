package uinput

import (
	"os"

	"golang.org/x/sys/unix"
)

// deviceNode abstracts the opened uinput character device so tests can
// substitute a fake that records ioctls and written bytes.
type deviceNode interface {
	Ioctl(req uintptr, arg uintptr) error
	Write(p []byte) (int, error)
	Close() error
}

type fileNode struct {
	f *os.File
}

// openFileNode opens a uinput node write-only and non-blocking, as the
// kernel interface requires for a device we only ever emit into.
func openFileNode(path string) (deviceNode, error) {
	f, err := os.OpenFile(path, os.O_WRONLY|unix.O_NONBLOCK, 0)
	if err != nil {
		return nil, err
	}
	return &fileNode{f: f}, nil
}

func (n *fileNode) Ioctl(req uintptr, arg uintptr) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, n.f.Fd(), req, arg)
	if errno != 0 {
		return errno
	}
	return nil
}

func (n *fileNode) Write(p []byte) (int, error) {
	return n.f.Write(p)
}

func (n *fileNode) Close() error {
	return n.f.Close()
}
