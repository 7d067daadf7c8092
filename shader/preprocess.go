// Package shader rewrites GLSL source before compilation. A single forward
// pass injects the version line, strips #version and #type directives,
// splices #include files and records uniform declarations. Output is built
// in a scratch arena as one contiguous, NUL-terminated buffer.
package shader

import (
	"bytes"
	"io"
	"log/slog"

	"github.com/cockroachdb/errors"

	"github.com/pavanmanishd/go-arena"
)

// DefaultVersion is written at the start of every processed buffer.
const DefaultVersion = "#version 330 core"

// Output is one processed stage.
type Output struct {
	Stage Stage
	// Source lives in the scratch arena. The byte after len(Source) is NUL.
	Source []byte
}

// Preprocessor walks one shader file. A file holding several #type sections
// yields one Output per Next call.
type Preprocessor struct {
	path     string
	src      []byte
	pos      int
	done     bool
	uniforms *UniformTable
	version  string
	log      *slog.Logger

	// afterEdit runs after every output allocation. Tests use it to
	// interleave foreign allocations.
	afterEdit func()
}

// Option configures a Preprocessor.
type Option func(*Preprocessor)

// WithVersion replaces DefaultVersion.
func WithVersion(version string) Option {
	return func(p *Preprocessor) { p.version = version }
}

// WithLogger sets the logger used for diagnostics. The default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(p *Preprocessor) { p.log = l }
}

// New prepares a pass over src. path is used for diagnostics and to resolve
// #include targets; src is read up to its first NUL byte and never modified.
// Uniforms from every stage are recorded in uniforms; if it is nil a new
// table is created.
func New(path string, src []byte, uniforms *UniformTable, opts ...Option) *Preprocessor {
	if i := bytes.IndexByte(src, 0); i >= 0 {
		src = src[:i]
	}
	if uniforms == nil {
		uniforms = &UniformTable{}
	}
	p := &Preprocessor{
		path:     path,
		src:      src,
		uniforms: uniforms,
		version:  DefaultVersion,
		log:      slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Uniforms returns the table uniforms are recorded in.
func (p *Preprocessor) Uniforms() *UniformTable { return p.uniforms }

// More reports whether Next has another stage to produce.
func (p *Preprocessor) More() bool { return !p.done }

// Next processes the source from the current position up to the end or to
// the next #type directive, whichever comes first. The output is allocated
// from scratch, which must not serve any other allocation until Next
// returns. Next returns io.EOF once the whole source has been consumed.
// After an error the Preprocessor is done.
func (p *Preprocessor) Next(scratch *arena.Arena) (Output, error) {
	if p.done {
		return Output{}, io.EOF
	}
	s := &pass{Preprocessor: p, a: scratch, first: p.pos, last: p.pos, prevEdit: p.pos}
	out, err := s.run()
	if err != nil {
		p.done = true
		p.log.Error("shader preprocessing failed", "file", p.path, "line", p.lineOf(s.first), "err", err)
		return Output{}, err
	}
	return out, nil
}

// lineOf returns the 1-based line number of offset off.
func (p *Preprocessor) lineOf(off int) int {
	if off > len(p.src) {
		off = len(p.src)
	}
	return 1 + bytes.Count(p.src[:off], []byte{'\n'})
}

// Process runs a single pass over src. Use it for files with at most one
// #type section.
func Process(scratch *arena.Arena, path string, src []byte, uniforms *UniformTable, opts ...Option) (Output, error) {
	return New(path, src, uniforms, opts...).Next(scratch)
}

// ProcessFile reads path into scratch and returns every stage it contains.
func ProcessFile(scratch *arena.Arena, path string, uniforms *UniformTable, opts ...Option) ([]Output, error) {
	src, err := scratch.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "shader: load %q", path)
	}
	p := New(path, src, uniforms, opts...)
	var outs []Output
	for {
		out, err := p.Next(scratch)
		if err == io.EOF {
			return outs, nil
		}
		if err != nil {
			return nil, err
		}
		outs = append(outs, out)
	}
}
