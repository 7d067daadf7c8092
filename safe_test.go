package arena

import (
	"runtime"
	"sync"
	"testing"
)

func TestSafeArenaOperations(t *testing.T) {
	s := NewSafeArena(1 << 20)

	if b := s.AllocBytes(100); len(b) != 100 {
		t.Errorf("AllocBytes(100) length = %d, want 100", len(b))
	}
	if s.AllocBytes(0) != nil {
		t.Error("AllocBytes(0) should return nil")
	}
	if _, err := s.TryAllocBytes(10); err != nil {
		t.Errorf("TryAllocBytes: %v", err)
	}

	mark := s.Mark()
	SafeAllocSlice[int32](s, 16)
	s.Rewind(mark)
	if s.SizeInUse() != mark {
		t.Errorf("SizeInUse after Rewind = %d, want %d", s.SizeInUse(), mark)
	}

	s.Reset()
	if s.SizeInUse() != 0 {
		t.Error("Expected zero size in use after Reset")
	}

	s.Release()
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic after Release")
		}
	}()
	s.AllocBytes(100)
}

func TestSafeReadFile(t *testing.T) {
	path := writeTemp(t, "a.txt", []byte("hello"))
	s := NewSafeArena(1 << 20)
	defer s.Release()

	b, err := s.ReadFile(path)
	if err != nil || string(b) != "hello" {
		t.Errorf("ReadFile = %q, %v", b, err)
	}
}

func TestSafeArenaConcurrency(t *testing.T) {
	s := NewSafeArena(16 << 20)
	defer s.Release()
	const numGoroutines = 10
	const numAllocsPerGoroutine = 100

	var wg sync.WaitGroup
	wg.Add(numGoroutines)
	for i := 0; i < numGoroutines; i++ {
		go func(id int) {
			defer wg.Done()
			for j := 0; j < numAllocsPerGoroutine; j++ {
				switch j % 3 {
				case 0:
					b := s.AllocBytes(64)
					b[0] = byte(id)
				case 1:
					p := SafeAlloc[int](s)
					*p = id
				case 2:
					SafeAllocSlice[byte](s, 32)
				}
			}
		}(i)
	}
	wg.Wait()

	if s.SizeInUse() == 0 {
		t.Error("Expected non-zero size in use after concurrent operations")
	}
	if m := s.Metrics(); m.Committed < m.SizeInUse {
		t.Errorf("committed %d < in use %d", m.Committed, m.SizeInUse)
	}
}

func TestSafeArenaConcurrentReset(t *testing.T) {
	s := NewSafeArena(16 << 20)
	defer s.Release()
	const numWorkers = 5

	var wg sync.WaitGroup
	wg.Add(numWorkers)
	for i := 0; i < numWorkers-2; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				s.AllocBytes(32)
				runtime.Gosched()
			}
		}()
	}
	go func() {
		defer wg.Done()
		for i := 0; i < 5; i++ {
			runtime.Gosched()
			s.Reset()
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 20; i++ {
			_ = s.SizeInUse()
			_ = s.Metrics()
			runtime.Gosched()
		}
	}()
	wg.Wait()
}

func BenchmarkSafeArenaConcurrent(b *testing.B) {
	s := NewSafeArena(64 << 20)
	defer s.Release()

	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			s.AllocBytes(64)
			i++
			if i%1000 == 999 {
				s.Reset()
			}
		}
	})
}
