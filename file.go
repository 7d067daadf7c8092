package arena

import (
	"io"
	"os"

	"github.com/cockroachdb/errors"
)

// ReadFile reads the whole file at path into the arena. The returned slice
// holds the file contents; one extra NUL byte follows it, so
// b[:len(b)+1] is a C-style string. If the file cannot be opened, sized or
// fully read, ReadFile returns an error and the arena is left as it was.
func (a *Arena) ReadFile(path string) ([]byte, error) {
	return a.readFile(path, true)
}

// ReadFileRaw reads the whole file at path into exactly as many unaligned
// bytes as it holds, with no terminator. Because no padding is inserted the
// data lands directly after the previous unaligned allocation.
func (a *Arena) ReadFileRaw(path string) ([]byte, error) {
	return a.readFile(path, false)
}

func (a *Arena) readFile(path string, terminate bool) ([]byte, error) {
	if a.mem == nil {
		return nil, ErrReleased
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "arena: open %q", path)
	}
	defer f.Close()

	size, err := f.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, errors.Wrapf(err, "arena: seek %q", path)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, errors.Wrapf(err, "arena: seek %q", path)
	}
	if size >= int64(len(a.mem)) {
		return nil, errors.Wrapf(ErrExhausted, "arena: %q is %d bytes", path, size)
	}

	mark := a.cursor
	var buf []byte
	if terminate {
		buf, err = a.alloc(int(size)+1, ptrAlign)
	} else {
		buf, err = a.alloc(int(size), 1)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "arena: read %q", path)
	}
	if _, err := io.ReadFull(f, buf[:size]); err != nil {
		a.rewind(mark)
		return nil, errors.Wrapf(err, "arena: read %q", path)
	}
	if !terminate {
		return buf, nil
	}
	buf[size] = 0
	return buf[: size : size+1], nil
}
