//go:build linux || darwin

package inject

import (
	"os"
	"unsafe"

	"golang.org/x/sys/unix"
)

// fill simulates terminal input via the TIOCSTI ioctl, which queues a
// single byte per call. Modern kernels may gate this behind
// CAP_SYS_ADMIN (Linux dev.tty.legacy_tiocsti=0), in which case the
// ioctl fails with EPERM and the caller falls back to printing.
func fill(cmd string) error {
	fd := os.Stdin.Fd()
	buf := []byte(cmd)
	for i := range buf {
		_, _, errno := unix.Syscall(unix.SYS_IOCTL, fd, unix.TIOCSTI, uintptr(unsafe.Pointer(&buf[i])))
		if errno != 0 {
			return errno
		}
	}
	return nil
}
