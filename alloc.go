package arena

import (
	"runtime"
	"unsafe"

	"github.com/cockroachdb/errors"
)

// Alloc returns a pointer to a zeroed T stored inside the arena.
// T must not contain Go pointers: the garbage collector does not scan arena
// memory. The returned pointer is valid until the arena is collapsed past it
// or released.
func Alloc[T any](a *Arena) *T {
	p := AllocUninitialized[T](a)
	clear(unsafe.Slice((*byte)(unsafe.Pointer(p)), unsafe.Sizeof(*p)))
	return p
}

// AllocZeroed is identical to Alloc - provided for API consistency.
func AllocZeroed[T any](a *Arena) *T {
	return Alloc[T](a)
}

// AllocUninitialized returns a *T located in the arena without zeroing memory.
// Memory reused after a Rewind still holds whatever was written before.
func AllocUninitialized[T any](a *Arena) *T {
	var zero T
	size := unsafe.Sizeof(zero)
	if size == 0 {
		return new(T)
	}
	b := allocAligned(a, int(size), unsafe.Alignof(zero))
	return (*T)(unsafe.Pointer(unsafe.SliceData(b)))
}

// AllocSlice allocates a slice of n elements of type T inside the arena.
// The slice elements are not initialized.
// Returns nil if n <= 0.
func AllocSlice[T any](a *Arena, n int) []T {
	if n <= 0 {
		return nil
	}
	var zero T
	elemSize := unsafe.Sizeof(zero)
	if elemSize == 0 {
		return make([]T, n)
	}
	b := allocAligned(a, int(elemSize)*n, unsafe.Alignof(zero))
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(b))), n)
}

// AllocSliceZeroed allocates a slice of n elements of type T with zeroed memory.
func AllocSliceZeroed[T any](a *Arena, n int) []T {
	s := AllocSlice[T](a, n)
	clear(s)
	return s
}

// PtrAndKeepAlive returns t and calls runtime.KeepAlive on the arena.
// This keeps the arena, and with it the reservation, reachable while t is
// still in use in unsafe code.
func PtrAndKeepAlive[T any](a *Arena, t *T) *T {
	runtime.KeepAlive(a)
	return t
}

// allocAligned allocates with at least pointer alignment, or the type's own
// alignment when it is stricter.
func allocAligned(a *Arena, n int, align uintptr) []byte {
	if align < ptrAlign {
		align = ptrAlign
	}
	b, err := a.alloc(n, align)
	if err != nil {
		panic(errors.NewAssertionErrorWithWrappedErrf(err, "arena: alloc %d bytes aligned to %d", n, align))
	}
	return b
}
