package arena

import "sync"

// SafeArena is a mutex-protected wrapper around Arena for the rare case where
// one arena has to be shared between goroutines. Every call takes the lock,
// so interleaved callers never observe each other's allocations as
// contiguous; Mark and Rewind are only meaningful when a single goroutine
// owns the arena between them.
type SafeArena struct {
	mu sync.Mutex
	a  *Arena
}

// NewSafeArena creates a thread-safe arena reserving size bytes.
// If size <= 0, DefaultReserve is used.
func NewSafeArena(size int) *SafeArena {
	return &SafeArena{a: New(size)}
}

// AllocBytes thread-safely allocates n pointer-aligned bytes.
// Returns nil if n <= 0.
func (s *SafeArena) AllocBytes(n int) []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.AllocBytes(n)
}

// TryAllocBytes thread-safely allocates n bytes, returning an error on exhaustion.
func (s *SafeArena) TryAllocBytes(n int) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.TryAllocBytes(n)
}

// ReadFile thread-safely reads a file into the arena. See Arena.ReadFile.
func (s *SafeArena) ReadFile(path string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.ReadFile(path)
}

// Mark thread-safely returns the current cursor position.
func (s *SafeArena) Mark() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Mark()
}

// Rewind thread-safely moves the cursor back to mark.
func (s *SafeArena) Rewind(mark int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Rewind(mark)
}

// Reset thread-safely rewinds the arena to empty.
func (s *SafeArena) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Reset()
}

// Release thread-safely returns the reservation and makes the arena unusable.
func (s *SafeArena) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Release()
}

// SafeAlloc thread-safely returns a pointer to a zeroed T stored inside the arena.
func SafeAlloc[T any](s *SafeArena) *T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Alloc[T](s.a)
}

// SafeAllocSlice thread-safely allocates a slice of n elements of type T.
func SafeAllocSlice[T any](s *SafeArena, n int) []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return AllocSlice[T](s.a, n)
}
