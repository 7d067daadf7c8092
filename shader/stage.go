package shader

import (
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
)

// Stage identifies the pipeline stage a block of shader source belongs to.
type Stage int

const (
	StageUnknown Stage = iota
	StageVertex
	StageFragment
	StageGeometry
)

func (s Stage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	case StageGeometry:
		return "geometry"
	default:
		return "unknown"
	}
}

// ParseStage classifies the argument of a #type directive.
func ParseStage(name string) (Stage, error) {
	switch name {
	case "vertex":
		return StageVertex, nil
	case "fragment":
		return StageFragment, nil
	case "geometry":
		return StageGeometry, nil
	}
	return StageUnknown, errors.Wrapf(ErrUnknownStage, "%q", name)
}

// StageFromPath guesses the stage from a file extension. It is used for
// single-stage files that carry no #type directive.
func StageFromPath(path string) Stage {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".vert", ".vs":
		return StageVertex
	case ".frag", ".fs":
		return StageFragment
	case ".geom", ".gs":
		return StageGeometry
	}
	return StageUnknown
}
