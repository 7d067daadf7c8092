package arena

// SizeInUse returns the number of bytes logically allocated (the cursor),
// including alignment padding.
func (a *Arena) SizeInUse() int {
	return int(a.cursor)
}

// Committed returns the number of bytes backed by physical memory.
func (a *Arena) Committed() int {
	return int(a.physical)
}

// Reserved returns the size of the address space reservation.
func (a *Arena) Reserved() int {
	return len(a.mem)
}

// BlockSize returns the commit granularity.
func (a *Arena) BlockSize() int {
	return int(a.block)
}

// Peak returns the highest cursor position reached since New.
func (a *Arena) Peak() int {
	return int(a.peak)
}

// Utilization returns the ratio of bytes in use to committed bytes (0.0 to 1.0).
// Returns 0.0 if nothing is committed.
func (a *Arena) Utilization() float64 {
	if a.physical == 0 {
		return 0
	}
	return float64(a.cursor) / float64(a.physical)
}

// Metrics returns a snapshot of arena statistics.
func (a *Arena) Metrics() ArenaMetrics {
	return ArenaMetrics{
		SizeInUse:   a.SizeInUse(),
		Committed:   a.Committed(),
		Reserved:    a.Reserved(),
		BlockSize:   a.BlockSize(),
		Peak:        a.Peak(),
		Utilization: a.Utilization(),
	}
}

// ArenaMetrics contains statistical information about an arena.
type ArenaMetrics struct {
	SizeInUse   int     // Bytes currently allocated
	Committed   int     // Bytes backed by physical memory
	Reserved    int     // Bytes of address space reserved
	BlockSize   int     // Commit granularity
	Peak        int     // High-water mark of SizeInUse
	Utilization float64 // Ratio of used to committed (0.0-1.0)
}

// Metrics thread-safely returns a snapshot of arena statistics.
func (s *SafeArena) Metrics() ArenaMetrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Metrics()
}

// SizeInUse thread-safely returns the number of bytes currently allocated.
func (s *SafeArena) SizeInUse() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.SizeInUse()
}
