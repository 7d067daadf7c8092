//go:build !(linux || darwin || freebsd || netbsd || openbsd || dragonfly || windows)

package arena

// Platforms without a usable reserve/commit split get the whole reservation
// from the Go heap up front. commit and release are no-ops.

func reserve(size int) ([]byte, error) {
	return make([]byte, size), nil
}

func commit([]byte) error { return nil }

func release([]byte) error { return nil }
