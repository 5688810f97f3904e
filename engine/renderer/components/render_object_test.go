package components

import (
	"errors"
	"testing"

	"github.com/spaghettifunk/glpong/engine/core"
	"github.com/spaghettifunk/glpong/engine/geometry"
	"github.com/spaghettifunk/glpong/engine/math"
	"github.com/spaghettifunk/glpong/engine/renderer/metadata"
)

type fixedProjection math.Mat4

func (p fixedProjection) Projection() math.Mat4 {
	return math.Mat4(p)
}

func TestNewRenderObjectDefaults(t *testing.T) {
	g := geometry.MakeRectangle(2, 2)
	o, err := NewRenderObject(g, nil)
	if err != nil {
		t.Fatalf("NewRenderObject: %v", err)
	}

	colour, ok := o.Attribute(metadata.ATTRIBUTE_COLOUR)
	if !ok || colour.Dimensions != 4 {
		t.Fatalf("default colour = %+v", colour)
	}
	vertices := o.Vertices()
	// One colour per vertex is always synthesized.
	if len(vertices.Data) != len(colour.Data)/colour.Dimensions*vertices.Dimensions {
		t.Fatalf("%d vertex floats vs %d colour floats", len(vertices.Data), len(colour.Data))
	}
	for _, c := range colour.Data {
		if c != 1 {
			t.Fatalf("default colour must be opaque white, got %v", colour.Data)
		}
	}

	normals, _ := o.Attribute(metadata.ATTRIBUTE_NORMALS)
	if normals.Count() != 4 || normals.Data[2] != 1 {
		t.Fatalf("default normals = %v", normals.Data)
	}
	if o.IsTextured() || o.HasIndices() || !o.IsLit {
		t.Fatal("rectangle should be untextured, unindexed and lit")
	}
	if o.DrawMode != metadata.DRAW_MODE_TRIANGLE_FAN {
		t.Fatalf("draw mode = %v", o.DrawMode)
	}
	if o.Position() != math.NewVec3Zero() || o.Scale() != math.NewVec3One() || o.Rotation() != math.NewQuatIdentity() {
		t.Fatal("default transform must be identity")
	}
}

func TestNewRenderObjectRejectsMalformedGeometry(t *testing.T) {
	cube := geometry.MakeCube()
	tests := []struct {
		name string
		g    geometry.GeometryDescriptor
		opts *RenderObjectOptions
	}{
		{"zero dimensions", geometry.GeometryDescriptor{Dimensions: 0, Vertices: []float32{1, 2}}, nil},
		{"no vertices", geometry.GeometryDescriptor{Dimensions: 3}, nil},
		{"length not a multiple", geometry.GeometryDescriptor{Dimensions: 3, Vertices: []float32{1, 2, 3, 4}}, nil},
		{"normals mismatch", geometry.GeometryDescriptor{Dimensions: 2, Vertices: []float32{0, 0, 1, 1}, Normals: []float32{0, 0, 1}}, nil},
		{"index out of range", geometry.GeometryDescriptor{Dimensions: 2, Vertices: []float32{0, 0, 1, 1}, Indices: []uint32{0, 2}}, nil},
		{"colour count", cube, &RenderObjectOptions{Colour: &metadata.Attribute{Dimensions: 4, Data: make([]float32, 8)}}},
		{"texture coords", cube, &RenderObjectOptions{Texture: &TextureOptions{Source: "a.png", Coords: []float32{0, 0}}}},
		{"texture source", cube, &RenderObjectOptions{Texture: &TextureOptions{}}},
		{"extra attribute count", cube, &RenderObjectOptions{Attributes: map[string]metadata.Attribute{"weights": {Dimensions: 1, Data: []float32{1}}}}},
		{"extra shadows built-in", cube, &RenderObjectOptions{Attributes: map[string]metadata.Attribute{metadata.ATTRIBUTE_COLOUR: {Dimensions: 1, Data: make([]float32, 24)}}}},
	}
	for _, tt := range tests {
		_, err := NewRenderObject(tt.g, tt.opts)
		if !errors.Is(err, core.ErrMalformedGeometry) {
			t.Errorf("%s: err = %v, want ErrMalformedGeometry", tt.name, err)
		}
	}
}

func TestAttributeNamesOrder(t *testing.T) {
	cube := geometry.MakeCube()
	o, err := NewRenderObject(cube, &RenderObjectOptions{
		Texture: &TextureOptions{Source: "textures/checker.png"},
		Attributes: map[string]metadata.Attribute{
			"zeta":  {Dimensions: 1, Data: make([]float32, 24)},
			"alpha": {Dimensions: 2, Data: make([]float32, 48)},
		},
	})
	if err != nil {
		t.Fatalf("NewRenderObject: %v", err)
	}
	want := []string{"vertices", "normals", "color", "textureCoord", "alpha", "zeta"}
	got := o.AttributeNames()
	if len(got) != len(want) {
		t.Fatalf("names = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("names = %v, want %v", got, want)
		}
	}
	if !o.IsTextured() || o.TextureSource() != "textures/checker.png" {
		t.Fatal("texture source lost")
	}
	coords, _ := o.Attribute(metadata.ATTRIBUTE_TEXTURE_COORD)
	if coords.Count() != 24 {
		t.Fatalf("texture coords default to the geometry's, got %d", coords.Count())
	}
}

func TestUpdateUniforms(t *testing.T) {
	pos := math.NewVec3(0, 10, 50)
	scale := math.NewVec3(10, 10, 10)
	projection := math.NewMat4Perspective(math.DegToRad(45), 1.5, 0.1, 100)
	o, err := NewRenderObject(geometry.MakeCube(), &RenderObjectOptions{
		Position:   &pos,
		Scale:      &scale,
		Unlit:      true,
		Projection: fixedProjection(projection),
		Uniforms: map[string]metadata.UniformValue{
			"uShininess": metadata.FloatUniform(16),
			"uIsShiny":   metadata.BoolUniform(true),
		},
	})
	if err != nil {
		t.Fatalf("NewRenderObject: %v", err)
	}
	o.SetRotation(math.NewQuatIdentity().RotateY(0.5))

	u := metadata.NewUniformSet()
	o.UpdateUniforms(u)

	model, ok := u.Get(metadata.UNIFORM_MODEL)
	want := math.NewMat4FromRotationTranslationScale(o.Rotation(), pos, scale)
	if !ok || model.Kind != metadata.UNIFORM_KIND_MAT4 || !model.Mat4.Compare(want, 1e-5) {
		t.Fatalf("uModel = %+v", model)
	}
	normals, ok := u.Get(metadata.UNIFORM_NORMALS)
	if !ok || normals.Kind != metadata.UNIFORM_KIND_MAT3 || !normals.Mat3.Compare(math.NewMat3Normal(want), 1e-5) {
		t.Fatalf("uNormals = %+v", normals)
	}
	lit, _ := u.Get(metadata.UNIFORM_IS_LIT)
	if lit.Kind != metadata.UNIFORM_KIND_BOOL || lit.Bool {
		t.Fatalf("uIsLit = %+v", lit)
	}
	proj, ok := u.Get(metadata.UNIFORM_PROJECTION)
	if !ok || proj.Mat4 != projection {
		t.Fatalf("uProjection = %+v", proj)
	}
	shininess, _ := u.Get("uShininess")
	if shininess.Kind != metadata.UNIFORM_KIND_FLOAT || shininess.Float != 16 {
		t.Fatalf("uShininess = %+v", shininess)
	}
}

func TestUpdateUniformsWithoutProjection(t *testing.T) {
	o, err := NewRenderObject(geometry.MakeCircle(1, 8), nil)
	if err != nil {
		t.Fatalf("NewRenderObject: %v", err)
	}
	u := metadata.NewUniformSet()
	u.Set(metadata.UNIFORM_PROJECTION, metadata.Mat4Uniform(math.NewMat4Identity()))
	o.UpdateUniforms(u)
	proj, _ := u.Get(metadata.UNIFORM_PROJECTION)
	if proj.Mat4 != math.NewMat4Identity() {
		t.Fatal("an object without a projection source must leave uProjection alone")
	}
}

func TestRenderObjectIDsAreUnique(t *testing.T) {
	a, _ := NewRenderObject(geometry.MakeCube(), nil)
	b, _ := NewRenderObject(geometry.MakeCube(), nil)
	if a.ID == b.ID {
		t.Fatal("two objects share an ID")
	}
}

func TestCameraLookAt(t *testing.T) {
	c := NewCamera()
	c.SetPosition(math.NewVec3(0, 30, -20))
	c.LookAt(math.NewVec3(0, 0, 30))

	// The target ends up straight ahead on the view axis (-Z in view space).
	target := math.NewVec3(0, 0, 30).Transform(c.GetView())
	if !math.NewVec3(target.X, target.Y, 0).Compare(math.NewVec3Zero(), 1e-4) || target.Z >= 0 {
		t.Fatalf("target in view space = %v", target)
	}

	before := c.Forward()
	c.MoveForward(5)
	if !c.Forward().Compare(before, 1e-5) {
		t.Fatal("moving must not change the viewing direction")
	}
}
