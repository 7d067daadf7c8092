// Package arena implements a virtual-memory backed bump allocator for Go.
//
// # Overview
//
// An Arena reserves one contiguous range of address space up front and
// commits physical memory lazily, one block at a time, as allocations cross
// the committed boundary. Allocation is a cursor bump. There is no
// per-allocation free: memory is reclaimed by rewinding the cursor to an
// earlier position or by releasing the whole arena. This suits:
//
//   - Transient vertex and index buffers for procedural geometry
//   - Slurping shader and model files for a single load step
//   - Building text output contiguously (see package shader)
//
// # Basic Usage
//
//	a := arena.New(64 << 20) // reserve 64 MiB, commit nothing
//	defer a.Release()
//
//	mark := a.Mark()
//	verts := arena.AllocSlice[float32](a, 3*1024)
//	// ... fill and upload verts ...
//	a.Rewind(mark) // verts is now invalid
//
// Collapse does the same given a pointer previously returned by the arena:
//
//	buf := a.AllocBytes(256)
//	a.CollapseBytes(buf) // cursor is back where buf started
//
// # Memory Layout
//
// The reservation is rounded up to the block size (DefaultBlockSize, or the
// page size if larger). Committed memory only grows, in block multiples, and
// is kept across Collapse, Rewind and Reset so repeated scratch use does not
// churn the virtual memory system. Release returns the entire reservation.
//
// # Failure Modes
//
// Failing to reserve, exceeding the reservation, collapsing to a pointer
// outside the committed range and using a released arena are programming
// errors and panic. The Try* allocation forms and the file readers return
// errors instead, so callers that treat exhaustion as a per-task failure can
// do so.
//
// # Debug Builds
//
// Building with the arenadebug tag zeroes every byte discarded by Collapse,
// Rewind and Reset, so use-after-collapse reads zeros.
//
// # Thread Safety
//
// The Arena type is not thread-safe. Use one arena per goroutine, or
// SafeArena when an arena genuinely has to be shared.
//
// # Important Notes
//
//   - Arena memory lives outside the Go heap. Never store Go pointers in it.
//   - Slices returned by the arena are only valid until the arena is
//     collapsed past them or released.
//   - Memory is not zeroed unless using Alloc or AllocSliceZeroed.
package arena
