package shader

import "slices"

// MaxUniformNameLen is the longest uniform name the table records. Longer
// names are dropped, not truncated.
const MaxUniformNameLen = 64

// Texture units bound to the well-known samplers.
const (
	TextureUnitDiffuse  int32 = 0
	TextureUnitSpecular int32 = 1
)

// Well-known sampler names. Any other sampler is recorded without a unit.
const (
	SamplerDiffuse  = "diffuse_texture"
	SamplerSpecular = "specular_texture"
)

// Struct types whose uniforms are set member by member elsewhere; the
// preprocessor does not record them.
const (
	BlockMaterial = "Material"
	BlockDirLight = "DirLight"
)

var wellKnownSamplers = map[string]int32{
	SamplerDiffuse:  TextureUnitDiffuse,
	SamplerSpecular: TextureUnitSpecular,
}

// Uniform is one uniform declaration found in shader source.
type Uniform struct {
	Name string
	// Location is -1 until Resolve is called by the shader compiler.
	Location int32
	// Unit is the texture unit for well-known samplers, -1 otherwise.
	Unit int32
}

// UniformTable collects the uniforms of one shader program across all of
// its stages. Names are unique.
type UniformTable struct {
	entries []Uniform
}

// Add records name unless it is already present or too long. It reports
// whether a new entry was appended.
func (t *UniformTable) Add(name string) bool {
	return t.add(name, -1)
}

// AddSampler records a sampler bound to a fixed texture unit.
func (t *UniformTable) AddSampler(name string, unit int32) bool {
	return t.add(name, unit)
}

func (t *UniformTable) add(name string, unit int32) bool {
	if !fitsName(name) || t.index(name) >= 0 {
		return false
	}
	t.entries = append(t.entries, Uniform{Name: name, Location: -1, Unit: unit})
	return true
}

// fitsName is the length policy: empty and over-long names are rejected.
func fitsName(name string) bool {
	return name != "" && len(name) <= MaxUniformNameLen
}

func (t *UniformTable) index(name string) int {
	return slices.IndexFunc(t.entries, func(u Uniform) bool { return u.Name == name })
}

// Lookup returns the entry for name.
func (t *UniformTable) Lookup(name string) (Uniform, bool) {
	if i := t.index(name); i >= 0 {
		return t.entries[i], true
	}
	return Uniform{}, false
}

// Location returns the resolved location of name, or -1.
func (t *UniformTable) Location(name string) int32 {
	if u, ok := t.Lookup(name); ok {
		return u.Location
	}
	return -1
}

func (t *UniformTable) Len() int { return len(t.entries) }

// Entries returns a copy of the recorded uniforms in discovery order.
func (t *UniformTable) Entries() []Uniform {
	return slices.Clone(t.entries)
}

// Resolve fills in every Location using locate, typically a wrapper around
// glGetUniformLocation for the linked program.
func (t *UniformTable) Resolve(locate func(name string) int32) {
	for i := range t.entries {
		t.entries[i].Location = locate(t.entries[i].Name)
	}
}
