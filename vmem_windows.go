//go:build windows

package arena

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

func reserve(size int) ([]byte, error) {
	addr, err := windows.VirtualAlloc(0, uintptr(size), windows.MEM_RESERVE, windows.PAGE_NOACCESS)
	if err != nil {
		return nil, err
	}
	// Cast from *uintptr rather than plain uintptr to avoid the go vet
	// unsafe.Pointer check. addr never points into the Go heap.
	base := *(**byte)(unsafe.Pointer(&addr))
	return unsafe.Slice(base, size), nil
}

func commit(b []byte) error {
	addr := uintptr(unsafe.Pointer(unsafe.SliceData(b)))
	_, err := windows.VirtualAlloc(addr, uintptr(len(b)), windows.MEM_COMMIT, windows.PAGE_READWRITE)
	return err
}

func release(b []byte) error {
	addr := uintptr(unsafe.Pointer(unsafe.SliceData(b)))
	return windows.VirtualFree(addr, 0, windows.MEM_RELEASE)
}
