package arena

import (
	"fmt"
	"os"
	"path/filepath"
	"unsafe"
)

// Example demonstrates basic arena usage
func Example() {
	// Reserve 1 MiB of address space; nothing is committed yet
	a := New(1 << 20)
	defer a.Release()

	buf := a.AllocBytes(1024)
	fmt.Printf("Allocated buffer of size: %d\n", len(buf))

	ptr := Alloc[int64](a)
	*ptr = 42
	fmt.Printf("Allocated int64 with value: %d\n", *ptr)

	slice := AllocSlice[int64](a, 5)
	for i := range slice {
		slice[i] = int64(i * 2)
	}
	fmt.Printf("Allocated slice: %v\n", slice)

	fmt.Printf("Memory in use: %d bytes\n", a.SizeInUse())
	fmt.Printf("Committed blocks: %d\n", a.Committed()/a.BlockSize())

	a.Reset()
	fmt.Printf("After reset, memory in use: %d bytes\n", a.SizeInUse())

	// Output:
	// Allocated buffer of size: 1024
	// Allocated int64 with value: 42
	// Allocated slice: [0 2 4 6 8]
	// Memory in use: 1072 bytes
	// Committed blocks: 1
	// After reset, memory in use: 0 bytes
}

// ExampleArena_Rewind demonstrates scratch use for transient geometry
func ExampleArena_Rewind() {
	a := New(1 << 20)
	defer a.Release()

	for frame := 1; frame <= 3; frame++ {
		mark := a.Mark()

		verts := AllocSlice[float32](a, 3*64)
		indices := AllocSlice[uint32](a, 96)
		verts[0], indices[0] = 1, 0

		fmt.Printf("Frame %d - scratch in use: %d bytes\n", frame, a.SizeInUse())
		a.Rewind(mark)
	}

	// Output:
	// Frame 1 - scratch in use: 1152 bytes
	// Frame 2 - scratch in use: 1152 bytes
	// Frame 3 - scratch in use: 1152 bytes
}

// ExampleArena_ReadFile demonstrates loading a file into the arena
func ExampleArena_ReadFile() {
	dir, _ := os.MkdirTemp("", "arena-example")
	defer os.RemoveAll(dir)
	path := filepath.Join(dir, "basic.frag")
	_ = os.WriteFile(path, []byte("void main() {}"), 0o644)

	a := New(1 << 20)
	defer a.Release()

	src, err := a.ReadFile(path)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%d bytes: %s\n", len(src), src)
	fmt.Printf("NUL terminated: %v\n", src[:len(src)+1][len(src)] == 0)

	// Output:
	// 14 bytes: void main() {}
	// NUL terminated: true
}

// ExampleArena_alignment demonstrates that allocations are properly aligned
func ExampleArena_alignment() {
	a := New(1 << 20)
	defer a.Release()

	ptr1 := Alloc[int8](a)
	ptr2 := Alloc[int64](a)
	a.AllocBytesUnaligned(3)
	ptr3 := Alloc[int32](a)

	fmt.Printf("int8 address alignment: %d\n", uintptr(unsafe.Pointer(ptr1))%8)
	fmt.Printf("int64 address alignment: %d\n", uintptr(unsafe.Pointer(ptr2))%8)
	fmt.Printf("int32 address alignment: %d\n", uintptr(unsafe.Pointer(ptr3))%8)

	// Output:
	// int8 address alignment: 0
	// int64 address alignment: 0
	// int32 address alignment: 0
}
