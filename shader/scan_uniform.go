package shader

import "bytes"

var precisionQualifiers = map[string]bool{"lowp": true, "mediump": true, "highp": true}

// uniform handles the declaration following a `uniform` keyword. It never
// edits the output.
func (s *pass) uniform() {
	if !s.scan() {
		return
	}
	typ := s.token()
	if precisionQualifiers[string(typ)] {
		if !s.scan() {
			return
		}
		typ = s.token()
	}

	switch string(typ) {
	case "sampler2D", "samplerCube":
		if !s.scan() {
			return
		}
		s.sampler(declName(s.token()))
	case BlockMaterial, BlockDirLight:
		// Set member by member elsewhere.
	default:
		if bytes.IndexByte(typ, '{') >= 0 || !s.scan() {
			return
		}
		name := s.token()
		if name[0] == '{' {
			// Uniform block, cached through its buffer binding instead.
			return
		}
		s.record(declName(name))
	}
}

func (s *pass) sampler(name string) {
	if unit, ok := wellKnownSamplers[name]; ok {
		s.uniforms.AddSampler(name, unit)
		return
	}
	s.log.Info("non-standard sampler uniform", "file", s.path, "line", s.lineOf(s.first), "name", name)
	s.record(name)
}

func (s *pass) record(name string) {
	if len(name) > MaxUniformNameLen {
		s.log.Debug("uniform name too long, not recorded",
			"file", s.path, "line", s.lineOf(s.first), "name", name, "max", MaxUniformNameLen)
		return
	}
	s.uniforms.Add(name)
}

// declName strips what can follow a name inside its token: `;`, an array
// size, an initializer or a list separator.
func declName(tok []byte) string {
	if i := bytes.IndexAny(tok, ";[=,"); i >= 0 {
		tok = tok[:i]
	}
	return string(tok)
}
