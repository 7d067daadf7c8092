//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package arena

import "golang.org/x/sys/unix"

// reserve maps size bytes of inaccessible address space. Nothing is backed
// by physical memory until commit is called on a sub-range.
func reserve(size int) ([]byte, error) {
	return unix.Mmap(-1, 0, size, unix.PROT_NONE, unix.MAP_ANON|unix.MAP_PRIVATE)
}

// commit makes b readable and writable. b must start on a page boundary.
func commit(b []byte) error {
	return unix.Mprotect(b, unix.PROT_READ|unix.PROT_WRITE)
}

func release(b []byte) error {
	return unix.Munmap(b)
}
