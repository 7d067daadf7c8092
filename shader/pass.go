package shader

import (
	"bytes"
	"path/filepath"
	"unsafe"

	"github.com/cockroachdb/errors"

	"github.com/pavanmanishd/go-arena"
)

// pass is the state of one Next call. src[first:last] is the current token
// and src[prevEdit:] is the text not yet copied to the output.
type pass struct {
	*Preprocessor
	a *arena.Arena

	first, last int
	prevEdit    int

	start unsafe.Pointer // first output byte
	next  uintptr        // where the next output allocation has to land
	size  int            // output bytes so far, including the terminator

	stage   Stage
	sawType bool
}

func (s *pass) run() (Output, error) {
	if err := s.emit([]byte(s.version)); err != nil {
		return Output{}, err
	}
	if err := s.emit([]byte{'\n'}); err != nil {
		return Output{}, err
	}

	for s.scan() {
		var err error
		switch string(s.token()) {
		case "uniform":
			s.uniform()
		case "#type":
			if s.sawType {
				return s.finish(s.first)
			}
			err = s.typeDirective()
		case "#version":
			err = s.versionDirective()
		case "#include":
			err = s.includeDirective()
		}
		if err != nil {
			return Output{}, err
		}
	}
	return s.finish(len(s.src))
}

// scan advances to the next whitespace-delimited token outside comments.
// It reports false at the end of the source.
func (s *pass) scan() bool {
	i := s.last
	for i < len(s.src) {
		switch c := s.src[i]; {
		case isSpace(c):
			i++
		case bytes.HasPrefix(s.src[i:], []byte("//")):
			i = s.lineEnd(i)
		case bytes.HasPrefix(s.src[i:], []byte("/*")):
			if j := bytes.Index(s.src[i+2:], []byte("*/")); j >= 0 {
				i += j + 4
			} else {
				i = len(s.src)
			}
		default:
			j := i
			for j < len(s.src) && !isSpace(s.src[j]) {
				j++
			}
			s.first, s.last = i, j
			return true
		}
	}
	s.first, s.last = len(s.src), len(s.src)
	return false
}

func (s *pass) token() []byte {
	return s.src[s.first:s.last]
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

// lineEnd returns the offset of the line terminator at or after off, or the
// end of the source.
func (s *pass) lineEnd(off int) int {
	i := bytes.IndexByte(s.src[off:], '\n')
	if i < 0 {
		return len(s.src)
	}
	end := off + i
	if end > off && s.src[end-1] == '\r' {
		end--
	}
	return end
}

// rest returns the remainder of the current token's line, trimmed.
func (s *pass) rest() []byte {
	return bytes.TrimSpace(s.src[s.last:s.lineEnd(s.last)])
}

// skipLine drops the current directive from the output, keeping its line
// terminator so later line numbers are unchanged.
func (s *pass) skipLine() {
	s.prevEdit = s.lineEnd(s.first)
	s.last = s.prevEdit
}

// flush copies the text between the last edit and the current token.
func (s *pass) flush() error {
	return s.emit(s.src[s.prevEdit:s.first])
}

func (s *pass) typeDirective() error {
	if err := s.flush(); err != nil {
		return err
	}
	fields := bytes.Fields(s.rest())
	if len(fields) == 0 {
		return errors.Wrapf(ErrMalformedDirective, "%s:%d: #type without a stage", s.path, s.lineOf(s.first))
	}
	stage, err := ParseStage(string(fields[0]))
	if err != nil {
		return errors.Wrapf(err, "%s:%d", s.path, s.lineOf(s.first))
	}
	s.stage = stage
	s.sawType = true
	s.skipLine()
	return nil
}

func (s *pass) versionDirective() error {
	if err := s.flush(); err != nil {
		return err
	}
	s.log.Warn("ignoring #version, the preprocessor sets it",
		"file", s.path, "line", s.lineOf(s.first), "directive", string(s.src[s.first:s.lineEnd(s.first)]))
	s.skipLine()
	return nil
}

// includeDirective splices the named file in place of the directive. The
// file is read straight into the output position; its own #include lines
// are left untouched.
func (s *pass) includeDirective() error {
	if err := s.flush(); err != nil {
		return err
	}
	line := s.lineOf(s.first)
	name, ok := includeTarget(s.rest())
	if !ok {
		return errors.Wrapf(ErrMalformedDirective, "%s:%d: #include expects \"file\" or <file>", s.path, line)
	}
	target := name
	if !filepath.IsAbs(target) {
		target = filepath.Join(filepath.Dir(s.path), name)
	}
	data, err := s.a.ReadFileRaw(target)
	if err != nil {
		return errors.Wrapf(errors.Mark(err, ErrInclude), "%s:%d", s.path, line)
	}
	if err := s.place(data); err != nil {
		return err
	}
	if bytes.Contains(data, []byte("#include")) {
		s.log.Warn("nested #include is not expanded", "file", target, "included_from", s.path, "line", line)
	}
	s.skipLine()
	return nil
}

// includeTarget parses `"name"` or `<name>`.
func includeTarget(arg []byte) (string, bool) {
	if len(arg) < 2 {
		return "", false
	}
	var closing byte
	switch arg[0] {
	case '"':
		closing = '"'
	case '<':
		closing = '>'
	default:
		return "", false
	}
	end := bytes.IndexByte(arg[1:], closing)
	if end <= 0 {
		return "", false
	}
	return string(arg[1 : 1+end]), true
}

// finish copies the text up to end, terminates the output and positions
// the Preprocessor at end for the next call.
func (s *pass) finish(end int) (Output, error) {
	tail := s.src[s.prevEdit:end]
	dst, err := s.a.TryAllocBytesUnaligned(len(tail) + 1)
	if err != nil {
		return Output{}, errors.Wrapf(err, "%s: terminating output", s.path)
	}
	if err := s.place(dst); err != nil {
		return Output{}, err
	}
	copy(dst, tail)
	dst[len(tail)] = 0

	s.pos = end
	s.done = end >= len(s.src)

	stage := s.stage
	if !s.sawType {
		stage = StageFromPath(s.path)
	}
	out := unsafe.Slice((*byte)(s.start), s.size)
	return Output{Stage: stage, Source: out[: s.size-1 : s.size]}, nil
}

// emit appends b to the output.
func (s *pass) emit(b []byte) error {
	if len(b) == 0 {
		return nil
	}
	dst, err := s.a.TryAllocBytesUnaligned(len(b))
	if err != nil {
		return errors.Wrapf(err, "%s:%d: growing output", s.path, s.lineOf(s.first))
	}
	if err := s.place(dst); err != nil {
		return err
	}
	copy(dst, b)
	return nil
}

// place checks that dst directly follows the previous output allocation.
func (s *pass) place(dst []byte) error {
	if len(dst) == 0 {
		return nil
	}
	addr := unsafe.Pointer(unsafe.SliceData(dst))
	switch {
	case s.start == nil:
		s.start = addr
	case uintptr(addr) != s.next:
		return errors.Wrapf(ErrNonContiguous, "%s:%d: got %#x, want %#x",
			s.path, s.lineOf(s.first), uintptr(addr), s.next)
	}
	s.next = uintptr(addr) + uintptr(len(dst))
	s.size += len(dst)
	if s.afterEdit != nil {
		s.afterEdit()
	}
	return nil
}
