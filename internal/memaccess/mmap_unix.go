//go:build unix

package memaccess

import "golang.org/x/sys/unix"

// MapAnonymous obtains a zero-filled, read-write, off-heap region of the
// given size via an anonymous private mmap: the same underlying syscall
// used for file-backed mappings, here applied to memory with no backing
// file.
func MapAnonymous(size int) ([]byte, error) {
	return unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
}

// Unmap releases a region obtained from MapAnonymous.
func Unmap(b []byte) error {
	if len(b) == 0 {
		return nil
	}
	return unix.Munmap(b)
}
