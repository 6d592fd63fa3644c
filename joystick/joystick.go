// Package joystick reads the Linux joystick character devices
// (/dev/input/js*): fixed 8-byte event records plus the name ioctl used
// to identify the controller model.
package joystick

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unsafe"

	"golang.org/x/sys/unix"
)

// Event kinds reported by the kernel. The kernel ORs a synthetic-init
// flag (0x80) into the kind when it replays current state to a fresh
// reader; consumers compare kinds exactly, so those replays are skipped.
const (
	EventButton uint8 = 0x01
	EventAxis   uint8 = 0x02
)

// eventSize is the fixed record length of the joystick interface.
const eventSize = 8

const nameLen = 128

// JSIOCGNAME(nameLen): read the device's advertised name string.
const iocGetName = 0x80006a13 + (nameLen << 16)

// Event is one decoded input record.
type Event struct {
	// Time is the event timestamp in milliseconds on the device clock.
	Time  uint32
	Value int16
	Kind  uint8
	Index uint8
}

// Device is one open joystick node. Exactly one reader owns a Device for
// its whole lifetime; none of its methods are safe for concurrent use.
type Device struct {
	path string
	name string
	file *os.File
	buf  [eventSize]byte
}

// Open opens the joystick node at path and queries its advertised name.
func Open(path string) (*Device, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open joystick: %w", err)
	}
	d := &Device{path: path, file: f}
	if d.name, err = d.queryName(); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("query joystick name: %w", err)
	}
	return d, nil
}

// Path returns the device node path the joystick was opened from.
func (d *Device) Path() string { return d.path }

// Name returns the controller name the kernel advertises for the device.
func (d *Device) Name() string { return d.name }

// ReadEvent blocks until the next full record arrives and decodes it.
// io.ErrUnexpectedEOF marks a truncated record the caller may skip; any
// other error means the device is gone.
func (d *Device) ReadEvent() (Event, error) {
	if _, err := io.ReadFull(d.file, d.buf[:]); err != nil {
		return Event{}, err
	}
	return decodeEvent(d.buf[:]), nil
}

// Close releases the underlying device node.
func (d *Device) Close() error {
	return d.file.Close()
}

func decodeEvent(b []byte) Event {
	return Event{
		Time:  binary.LittleEndian.Uint32(b[0:4]),
		Value: int16(binary.LittleEndian.Uint16(b[4:6])),
		Kind:  b[6],
		Index: b[7],
	}
}

func (d *Device) queryName() (string, error) {
	var buf [nameLen]byte
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, d.file.Fd(), uintptr(iocGetName), uintptr(unsafe.Pointer(&buf[0])))
	if errno != 0 {
		return "", errno
	}
	if i := bytes.IndexByte(buf[:], 0); i >= 0 {
		return string(buf[:i]), nil
	}
	return string(buf[:]), nil
}

// Discover lists the joystick nodes under dir (entries prefixed "js"),
// sorted by name. Other input nodes, like event* or mice, are not
// readable through the js interface and are left alone.
func Discover(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("list input devices: %w", err)
	}
	var paths []string
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), "js") {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	return paths, nil
}
