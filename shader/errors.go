package shader

import "github.com/cockroachdb/errors"

var (
	// ErrMalformedDirective reports a #type or #include line that cannot be parsed.
	ErrMalformedDirective = errors.New("shader: malformed directive")

	// ErrUnknownStage reports a #type argument other than vertex, fragment or geometry.
	ErrUnknownStage = errors.New("shader: unknown stage")

	// ErrInclude reports an #include target that cannot be read.
	ErrInclude = errors.New("shader: include failed")

	// ErrNonContiguous reports that the scratch arena served another
	// allocation while output was being built, so the output would be split.
	ErrNonContiguous = errors.New("shader: scratch allocation not contiguous")
)
