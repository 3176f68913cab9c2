// Package ioctl encodes and issues Linux ioctl requests.
package ioctl

import (
	"errors"
	"fmt"
	"reflect"
	"syscall"
)

// Mode is the IOCTL direction.
type Mode uint8

// Modes
const (
	None Mode = iota
	Write
	Read
)

// Command to be sent over ioctl.
type Command uintptr

// Mode of the command.
func (c Command) Mode() Mode {
	return Mode(c >> 30 & 0x03)
}

// Size of the argument in bytes.
func (c Command) Size() int {
	return int(c >> 16 & 0x3fff)
}

func (c Command) String() string {
	var str string
	if c.Mode()&Write > 0 {
		str += " write"
	}
	if c.Mode()&Read > 0 {
		str += " read"
	}
	return fmt.Sprintf("ioctl%s (%d bytes) 0x%04x", str, c.Size(), uintptr(c&0xffff))
}

// Error is returned when the system call fails.
type Error struct {
	Command Command
	Errno   syscall.Errno
}

func (err Error) Error() string {
	return fmt.Sprintf("%s failed: %v", err.Command, err.Errno)
}

func (err Error) Unwrap() error {
	return err.Errno
}

// ErrNotPointer is returned by Do if the argument is not a pointer.
var ErrNotPointer = errors.New("ioctl: argument must be a pointer")

// Do executes the ioctl call with a pointer argument.
func Do(fd uintptr, command Command, ptr interface{}) error {
	var p uintptr

	if ptr != nil {
		v := reflect.ValueOf(ptr)
		if v.Kind() != reflect.Pointer {
			return ErrNotPointer
		}
		p = v.Pointer()
	}

	return Call(fd, uintptr(command), p)
}

// Call does a plain ioctl system call.
func Call(fd, command, arg uintptr) error {
	_, _, errno := syscall.Syscall(syscall.SYS_IOCTL, fd, command, arg)
	if errno != 0 {
		return Error{Command: Command(command), Errno: errno}
	}
	return nil
}

// Encode an ioctl command.
func Encode(mode Mode, size uint16, cmd uintptr) Command {
	return Command(mode)<<30 | Command(size&0x3fff)<<16 | Command(cmd)
}

// Pointer encodes a command whose argument size is that of the value ref points to.
func Pointer(mode Mode, ref interface{}, cmd uintptr) Command {
	size := uint16(reflect.TypeOf(ref).Elem().Size())
	return Encode(mode, size, cmd)
}
