package systems

import (
	"errors"
	"sync"

	"github.com/spaghettifunk/glpong/engine/math"
	"github.com/spaghettifunk/glpong/engine/renderer/metadata"
)

type call struct {
	op    string
	loc   metadata.Location
	value interface{}
}

// recordingBackend records every GPU call so the draw protocol can be checked
// without a context.
type recordingBackend struct {
	mu         sync.Mutex
	calls      []call
	next       uint32
	attributes map[string]metadata.Location
	uniforms   map[string]metadata.Location
	compileErr error
}

func newRecordingBackend() *recordingBackend {
	return &recordingBackend{
		attributes: map[string]metadata.Location{
			metadata.ATTRIBUTE_VERTICES:      0,
			metadata.ATTRIBUTE_NORMALS:       1,
			metadata.ATTRIBUTE_COLOUR:        2,
			metadata.ATTRIBUTE_TEXTURE_COORD: 3,
		},
		uniforms: map[string]metadata.Location{
			metadata.UNIFORM_IS_LIT:          10,
			metadata.UNIFORM_LIGHT_DIRECTION: 11,
			metadata.UNIFORM_LIGHT_COLOUR:    12,
			metadata.UNIFORM_HAS_TEXTURE:     13,
			metadata.UNIFORM_SAMPLER:         14,
			metadata.UNIFORM_PROJECTION:      15,
			metadata.UNIFORM_MODEL:           16,
			metadata.UNIFORM_NORMALS:         17,
		},
	}
}

func (b *recordingBackend) record(op string, loc metadata.Location, value interface{}) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.calls = append(b.calls, call{op: op, loc: loc, value: value})
}

func (b *recordingBackend) handle() uint32 {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.next++
	return b.next
}

func (b *recordingBackend) reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.calls = nil
}

func (b *recordingBackend) recorded() []call {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]call(nil), b.calls...)
}

func (b *recordingBackend) count(op string) int {
	n := 0
	for _, c := range b.recorded() {
		if c.op == op {
			n++
		}
	}
	return n
}

// indexOf returns the position of the n-th (0-based) call named op, or -1.
func indexOf(calls []call, op string, n int) int {
	for i, c := range calls {
		if c.op == op {
			if n == 0 {
				return i
			}
			n--
		}
	}
	return -1
}

func (b *recordingBackend) Initialize(config *metadata.RendererBackendConfig) error {
	b.record("Initialize", metadata.INVALID_LOCATION, config)
	return nil
}

func (b *recordingBackend) Shutdown() error {
	b.record("Shutdown", metadata.INVALID_LOCATION, nil)
	return nil
}

func (b *recordingBackend) Resized(width, height uint32) {
	b.record("Resized", metadata.INVALID_LOCATION, [2]uint32{width, height})
}

func (b *recordingBackend) CreateProgram(source *metadata.ShaderSource) (metadata.ProgramHandle, error) {
	if b.compileErr != nil {
		b.record("CreateProgram", metadata.INVALID_LOCATION, b.compileErr)
		return 0, b.compileErr
	}
	h := metadata.ProgramHandle(b.handle())
	b.record("CreateProgram", metadata.INVALID_LOCATION, h)
	return h, nil
}

func (b *recordingBackend) DestroyProgram(program metadata.ProgramHandle) {
	b.record("DestroyProgram", metadata.INVALID_LOCATION, program)
}

func (b *recordingBackend) UseProgram(program metadata.ProgramHandle) {
	b.record("UseProgram", metadata.INVALID_LOCATION, program)
}

func (b *recordingBackend) AttributeLocation(program metadata.ProgramHandle, name string) metadata.Location {
	b.record("AttributeLocation", metadata.INVALID_LOCATION, name)
	if l, ok := b.attributes[name]; ok {
		return l
	}
	return metadata.INVALID_LOCATION
}

func (b *recordingBackend) UniformLocation(program metadata.ProgramHandle, name string) metadata.Location {
	b.record("UniformLocation", metadata.INVALID_LOCATION, name)
	if l, ok := b.uniforms[name]; ok {
		return l
	}
	return metadata.INVALID_LOCATION
}

func (b *recordingBackend) CreateVertexBuffer(data []float32) metadata.BufferHandle {
	h := metadata.BufferHandle(b.handle())
	b.record("CreateVertexBuffer", metadata.INVALID_LOCATION, len(data))
	return h
}

func (b *recordingBackend) CreateIndexBuffer(indices []uint32) metadata.BufferHandle {
	h := metadata.BufferHandle(b.handle())
	b.record("CreateIndexBuffer", metadata.INVALID_LOCATION, len(indices))
	return h
}

func (b *recordingBackend) BindAttribute(location metadata.Location, buffer metadata.BufferHandle, dimensions int) {
	b.record("BindAttribute", location, dimensions)
}

func (b *recordingBackend) DisableAttribute(location metadata.Location) {
	b.record("DisableAttribute", location, nil)
}

func (b *recordingBackend) BindIndexBuffer(buffer metadata.BufferHandle) {
	b.record("BindIndexBuffer", metadata.INVALID_LOCATION, buffer)
}

func (b *recordingBackend) CreateTexture() metadata.TextureHandle {
	h := metadata.TextureHandle(b.handle())
	b.record("CreateTexture", metadata.INVALID_LOCATION, h)
	return h
}

func (b *recordingBackend) UploadTexture(texture metadata.TextureHandle, image *metadata.ImageResourceData, params metadata.TextureUploadParams) {
	b.record("UploadTexture", metadata.INVALID_LOCATION, texture)
}

func (b *recordingBackend) BindTexture(unit uint32, texture metadata.TextureHandle) {
	b.record("BindTexture", metadata.INVALID_LOCATION, texture)
}

func (b *recordingBackend) Uniform1f(location metadata.Location, v float32) {
	b.record("Uniform1f", location, v)
}

func (b *recordingBackend) Uniform1i(location metadata.Location, v int32) {
	b.record("Uniform1i", location, v)
}

func (b *recordingBackend) Uniform2f(location metadata.Location, v math.Vec2) {
	b.record("Uniform2f", location, v)
}

func (b *recordingBackend) Uniform3f(location metadata.Location, v math.Vec3) {
	b.record("Uniform3f", location, v)
}

func (b *recordingBackend) Uniform4f(location metadata.Location, v math.Vec4) {
	b.record("Uniform4f", location, v)
}

func (b *recordingBackend) UniformMatrix3(location metadata.Location, m math.Mat3) {
	b.record("UniformMatrix3", location, m)
}

func (b *recordingBackend) UniformMatrix4(location metadata.Location, m math.Mat4) {
	b.record("UniformMatrix4", location, m)
}

func (b *recordingBackend) Clear(flags metadata.RenderpassClearFlag) {
	b.record("Clear", metadata.INVALID_LOCATION, flags)
}

func (b *recordingBackend) DrawArrays(mode metadata.DrawMode, first, count int) {
	b.record("DrawArrays", metadata.INVALID_LOCATION, [2]int{int(mode), count})
}

func (b *recordingBackend) DrawElements(mode metadata.DrawMode, count int) {
	b.record("DrawElements", metadata.INVALID_LOCATION, [2]int{int(mode), count})
}

// queuedShaders hands out the queued sources one per Poll.
type queuedShaders struct {
	queue []*metadata.ShaderSource
}

func (q *queuedShaders) push(generation uint32) {
	q.queue = append(q.queue, &metadata.ShaderSource{Vertex: "v", Fragment: "f", Generation: generation})
}

func (q *queuedShaders) Poll() (*metadata.ShaderSource, bool) {
	if len(q.queue) == 0 {
		return nil, false
	}
	src := q.queue[0]
	q.queue = q.queue[1:]
	return src, true
}

// staticTextures resolves every source to a fixed handle and counts requests.
type staticTextures struct {
	handles  map[string]metadata.TextureHandle
	requests int
}

func (s *staticTextures) GetTexture(source string) metadata.TextureHandle {
	s.requests++
	return s.handles[source]
}

// memoryLoader serves resources from memory. gate, when set, blocks image loads
// until it is closed.
type memoryLoader struct {
	mu      sync.Mutex
	loads   map[string]int
	shaders map[string]string
	images  map[string]*metadata.ImageResourceData
	fonts   map[string]*metadata.FontData
	gate    chan struct{}
}

func newMemoryLoader() *memoryLoader {
	return &memoryLoader{
		loads:   make(map[string]int),
		shaders: make(map[string]string),
		images:  make(map[string]*metadata.ImageResourceData),
		fonts:   make(map[string]*metadata.FontData),
	}
}

var errNotFound = errors.New("not found")

func (m *memoryLoader) LoadAsset(name string, resourceType metadata.ResourceType, params interface{}) (*metadata.Resource, error) {
	m.mu.Lock()
	m.loads[name]++
	gate := m.gate
	m.mu.Unlock()

	switch resourceType {
	case metadata.ResourceTypeShader:
		m.mu.Lock()
		defer m.mu.Unlock()
		src, ok := m.shaders[name]
		if !ok {
			return nil, errNotFound
		}
		return &metadata.Resource{Name: name, Data: src}, nil
	case metadata.ResourceTypeImage:
		if gate != nil {
			<-gate
		}
		m.mu.Lock()
		defer m.mu.Unlock()
		img, ok := m.images[name]
		if !ok {
			return nil, errNotFound
		}
		return &metadata.Resource{Name: name, Data: img}, nil
	case metadata.ResourceTypeBitmapFont:
		m.mu.Lock()
		defer m.mu.Unlock()
		font, ok := m.fonts[name]
		if !ok {
			return nil, errNotFound
		}
		return &metadata.Resource{Name: name, Data: font}, nil
	}
	return nil, errNotFound
}

func (m *memoryLoader) loadCount(name string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loads[name]
}
