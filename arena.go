// Package arena implements a bump allocator (memory arena) backed by a single
// virtual memory reservation. Typical usage: reserve a generous arena once,
// allocate transient geometry or text from it, then Rewind to a mark when the
// work is done. Physical memory is committed in blocks as the cursor crosses
// the committed boundary and is kept until Release.
package arena

import (
	"os"
	"unsafe"

	"github.com/cockroachdb/errors"
)

const (
	// DefaultBlockSize is the commit granularity (8 KiB). Platforms with a
	// larger page size commit whole pages instead.
	DefaultBlockSize = 8 << 10

	// DefaultReserve is the address space reserved when New is given no size (512 MiB).
	DefaultReserve = 512 << 20
)

// ptrAlign is the natural alignment used by AllocBytes.
const ptrAlign = unsafe.Sizeof(uintptr(0))

var (
	// ErrReleased is returned by the Try* forms after Release.
	ErrReleased = errors.New("arena: use after Release()")

	// ErrExhausted is returned when an allocation would need more than the
	// reserved address space. Arenas never grow their reservation.
	ErrExhausted = errors.New("arena: reservation exhausted")
)

// Arena is a bump allocator over one address space reservation.
// Not goroutine-safe. Use SafeArena for concurrent access.
type Arena struct {
	mem      []byte  // the whole reservation; len(mem) is the virtual size
	physical uintptr // committed bytes, a multiple of block
	cursor   uintptr // bytes logically in use
	peak     uintptr // highest cursor seen
	block    uintptr
}

// New reserves size bytes of address space, rounded up to the block size.
// If size <= 0, DefaultReserve is used. No physical memory is committed.
// New panics if the reservation fails.
func New(size int) *Arena {
	if size <= 0 {
		size = DefaultReserve
	}
	block := blockSize()
	n := alignUp(uintptr(size), block)
	mem, err := reserve(int(n))
	if err != nil {
		panic(errors.NewAssertionErrorWithWrappedErrf(err, "arena: reserve %d bytes", n))
	}
	return &Arena{mem: mem, block: block}
}

// AllocBytes returns n pointer-aligned bytes from the arena.
// Returns nil if n <= 0. Panics if the reservation is exhausted or the arena
// has been released.
func (a *Arena) AllocBytes(n int) []byte {
	b, err := a.alloc(n, ptrAlign)
	if err != nil {
		panic(errors.NewAssertionErrorWithWrappedErrf(err, "arena: alloc %d bytes", n))
	}
	return b
}

// AllocBytesUnaligned is AllocBytes without alignment padding, so consecutive
// calls return adjacent byte ranges.
func (a *Arena) AllocBytesUnaligned(n int) []byte {
	b, err := a.alloc(n, 1)
	if err != nil {
		panic(errors.NewAssertionErrorWithWrappedErrf(err, "arena: alloc %d unaligned bytes", n))
	}
	return b
}

// TryAllocBytes is AllocBytes returning an error instead of panicking.
func (a *Arena) TryAllocBytes(n int) ([]byte, error) {
	return a.alloc(n, ptrAlign)
}

// TryAllocBytesUnaligned is AllocBytesUnaligned returning an error instead of panicking.
func (a *Arena) TryAllocBytesUnaligned(n int) ([]byte, error) {
	return a.alloc(n, 1)
}

func (a *Arena) alloc(n int, align uintptr) ([]byte, error) {
	if a.mem == nil {
		return nil, ErrReleased
	}
	if n <= 0 {
		return nil, nil
	}
	off := (a.cursor + align - 1) &^ (align - 1)
	end := off + uintptr(n)
	if end < off || end > uintptr(len(a.mem)) {
		return nil, errors.Wrapf(ErrExhausted, "need %d bytes at offset %d of %d reserved", n, off, len(a.mem))
	}
	if end > a.physical {
		if err := a.grow(end); err != nil {
			return nil, err
		}
	}
	a.cursor = end
	if end > a.peak {
		a.peak = end
	}
	return a.mem[off:end:end], nil
}

// grow commits blocks until at least end bytes are backed.
func (a *Arena) grow(end uintptr) error {
	target := alignUp(end, a.block)
	if err := commit(a.mem[a.physical:target]); err != nil {
		return errors.Wrapf(err, "arena: commit %d bytes at offset %d", target-a.physical, a.physical)
	}
	a.physical = target
	return nil
}

// Collapse rewinds the cursor to p, discarding every allocation at or after
// it. p must point into the committed range at or before the cursor;
// anything else panics. Committed memory is kept for reuse.
func (a *Arena) Collapse(p unsafe.Pointer) {
	off, ok := a.Offset(p)
	if !ok {
		panic(errors.AssertionFailedf("arena: collapse to %p outside committed range", p))
	}
	if uintptr(off) > a.cursor {
		panic(errors.AssertionFailedf("arena: collapse to offset %d past cursor %d", off, a.cursor))
	}
	a.rewind(uintptr(off))
}

// CollapseBytes collapses to the first byte of b.
func (a *Arena) CollapseBytes(b []byte) {
	a.Collapse(unsafe.Pointer(unsafe.SliceData(b)))
}

// Mark returns the current cursor position for a later Rewind.
func (a *Arena) Mark() int {
	a.panicIfReleased()
	return int(a.cursor)
}

// Rewind moves the cursor back to mark. mark must come from Mark and not be
// ahead of the cursor.
func (a *Arena) Rewind(mark int) {
	a.panicIfReleased()
	if mark < 0 || uintptr(mark) > a.cursor {
		panic(errors.AssertionFailedf("arena: rewind to %d outside [0, %d]", mark, a.cursor))
	}
	a.rewind(uintptr(mark))
}

// Reset rewinds the arena to empty but keeps committed memory for reuse.
func (a *Arena) Reset() {
	a.panicIfReleased()
	a.rewind(0)
}

func (a *Arena) rewind(off uintptr) {
	if scrubOnCollapse {
		clear(a.mem[off:a.cursor])
	}
	a.cursor = off
}

// Release returns the reservation to the system and makes the arena
// unusable. Any subsequent allocation panics.
func (a *Arena) Release() {
	if a.mem != nil {
		if err := release(a.mem); err != nil {
			panic(errors.NewAssertionErrorWithWrappedErrf(err, "arena: release %d bytes", len(a.mem)))
		}
	}
	*a = Arena{}
}

// Offset reports p's byte offset from the arena base and whether p lies in
// the committed range.
func (a *Arena) Offset(p unsafe.Pointer) (int, bool) {
	if a.mem == nil || p == nil {
		return 0, false
	}
	base := uintptr(unsafe.Pointer(unsafe.SliceData(a.mem)))
	addr := uintptr(p)
	if addr < base || addr >= base+a.physical {
		return 0, false
	}
	return int(addr - base), true
}

// Contains reports whether p lies in the committed range.
func (a *Arena) Contains(p unsafe.Pointer) bool {
	_, ok := a.Offset(p)
	return ok
}

// panicIfReleased panics if the arena has been released.
func (a *Arena) panicIfReleased() {
	if a.mem == nil {
		panic(ErrReleased)
	}
}

// blockSize is DefaultBlockSize or the page size, whichever is larger.
// Both are powers of two, so the result is a multiple of the page size.
func blockSize() uintptr {
	if ps := os.Getpagesize(); ps > DefaultBlockSize {
		return uintptr(ps)
	}
	return DefaultBlockSize
}

// alignUp rounds n up to a multiple of align, which must be a power of two.
func alignUp(n, align uintptr) uintptr {
	return (n + align - 1) &^ (align - 1)
}
