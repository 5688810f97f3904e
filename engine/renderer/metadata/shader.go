package metadata

/** @brief A linked program name. Zero is never a valid program. */
type ProgramHandle uint32

/** @brief A resolved attribute or uniform location. */
type Location int32

/** @brief Returned for names the program does not declare. Bindings to it are skipped. */
const INVALID_LOCATION Location = -1

// Valid reports whether the location can be bound.
func (l Location) Valid() bool {
	return l >= 0
}

const (
	/** @brief The default vertex shader asset name. */
	DEFAULT_VERTEX_SHADER string = "shaders/vertex.glsl"
	/** @brief The default fragment shader asset name. */
	DEFAULT_FRAGMENT_SHADER string = "shaders/fragment.glsl"
)

/**
 * @brief The sources of one shader program, as delivered by the shader loader.
 * Generation grows with every reload of the same program.
 */
type ShaderSource struct {
	Vertex     string
	Fragment   string
	Generation uint32
}

/**
 * @brief The locations resolved for a linked program. Built once per link.
 */
type ShaderLocations struct {
	Attributes map[string]Location
	Uniforms   map[string]Location
}

// Attribute returns the location of name, or INVALID_LOCATION when unknown.
func (s *ShaderLocations) Attribute(name string) Location {
	if l, ok := s.Attributes[name]; ok {
		return l
	}
	return INVALID_LOCATION
}

// Uniform returns the location of name, or INVALID_LOCATION when unknown.
func (s *ShaderLocations) Uniform(name string) Location {
	if l, ok := s.Uniforms[name]; ok {
		return l
	}
	return INVALID_LOCATION
}
