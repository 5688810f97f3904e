package math

import "testing"

const tolerance float32 = 1e-5

func TestVec2Operations(t *testing.T) {
	a := NewVec2(1, 2)
	b := NewVec2(3, -4)

	if got := a.Add(b); got != NewVec2(4, -2) {
		t.Fatalf("Add = %v", got)
	}
	if got := a.Sub(b); got != NewVec2(-2, 6) {
		t.Fatalf("Sub = %v", got)
	}
	if got := a.Negate(); got != NewVec2(-1, -2) {
		t.Fatalf("Negate = %v", got)
	}
	if got := NewVec2(2, 4).Inverse(); got != NewVec2(0.5, 0.25) {
		t.Fatalf("Inverse = %v", got)
	}
	if got := a.ScaleAndAdd(b, 2); got != NewVec2(7, -6) {
		t.Fatalf("ScaleAndAdd = %v", got)
	}
	if got := b.Length(); got != 5 {
		t.Fatalf("Length = %v", got)
	}
	if got := b.Normalize(); !got.Compare(NewVec2(0.6, -0.8), tolerance) {
		t.Fatalf("Normalize = %v", got)
	}
	// Operations never touch the receiver.
	if a != NewVec2(1, 2) {
		t.Fatalf("receiver mutated: %v", a)
	}
}

func TestVec2Rotate(t *testing.T) {
	got := NewVec2Right().Rotate(K_HALF_PI)
	if !got.Compare(NewVec2Up(), tolerance) {
		t.Fatalf("right rotated 90 degrees = %v, want up", got)
	}
}

func TestVec3AxisRotations(t *testing.T) {
	tests := []struct {
		name string
		got  Vec3
		want Vec3
	}{
		{"x turns up to forward", NewVec3Up().RotateX(K_HALF_PI), NewVec3Forward()},
		{"y turns forward to right", NewVec3Forward().RotateY(K_HALF_PI), NewVec3Right()},
		{"z turns right to up", NewVec3Right().RotateZ(K_HALF_PI), NewVec3Up()},
	}
	for _, tt := range tests {
		if !tt.got.Compare(tt.want, tolerance) {
			t.Errorf("%s: got %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestQuaternionStaysUnitLength(t *testing.T) {
	q := NewQuatIdentity()
	for i := 0; i < 10000; i++ {
		q = q.RotateX(0.013).RotateY(-0.029).RotateZ(0.071)
		if l := q.Length(); kabs(l-1) > 1e-4 {
			t.Fatalf("iteration %d: |q| = %v", i, l)
		}
	}
}

func TestQuaternionCompositionOrder(t *testing.T) {
	x := NewVec3Right()

	xThenY := NewQuatIdentity().RotateX(K_HALF_PI).RotateY(K_HALF_PI)
	if got := xThenY.Rotate(x); !got.Compare(NewVec3Up(), tolerance) {
		t.Fatalf("RotateX then RotateY moved %v to %v, want %v", x, got, NewVec3Up())
	}

	yThenX := NewQuatIdentity().RotateY(K_HALF_PI).RotateX(K_HALF_PI)
	if got := yThenX.Rotate(x); !got.Compare(NewVec3Back(), tolerance) {
		t.Fatalf("RotateY then RotateX moved %v to %v, want %v", x, got, NewVec3Back())
	}
}

func TestQuaternionMatchesMatrix(t *testing.T) {
	q := NewQuatIdentity().RotateY(0.7).RotateZ(-1.1)
	v := NewVec3(1, 2, 3)
	viaQuat := q.Rotate(v)
	viaMat := v.Transform(q.ToMat4())
	if !viaQuat.Compare(viaMat, 1e-4) {
		t.Fatalf("quaternion %v != matrix %v", viaQuat, viaMat)
	}
}

func TestRotationTranslationScaleOrder(t *testing.T) {
	q := NewQuatIdentity().RotateZ(K_HALF_PI)
	model := NewMat4FromRotationTranslationScale(q, NewVec3(10, 0, 0), NewVec3(2, 1, 1))

	// (1,0,0) scales to (2,0,0), rotates to (0,2,0), translates to (10,2,0).
	got := NewVec3Right().Transform(model)
	if !got.Compare(NewVec3(10, 2, 0), tolerance) {
		t.Fatalf("T·R·S moved (1,0,0) to %v, want (10,2,0)", got)
	}

	want := NewMat4Translation(NewVec3(10, 0, 0)).Mul(q.ToMat4()).Mul(NewMat4Scaling(NewVec3(2, 1, 1)))
	if !model.Compare(want, tolerance) {
		t.Fatalf("model = %v, want %v", model, want)
	}
}

func TestNormalMatrixUnderNonUniformScale(t *testing.T) {
	model := NewMat4FromRotationTranslationScale(
		NewQuatIdentity().RotateY(0.4), NewVec3(3, -2, 5), NewVec3(1, 4, 0.5))
	normal := NewMat3Normal(model)

	want := model.Mat3().Inverse().Transpose()
	if !normal.Compare(want, tolerance) {
		t.Fatalf("normal matrix = %v, want %v", normal, want)
	}

	// A surface tangent transformed by the model stays perpendicular to the
	// normal transformed by the normal matrix.
	n := NewVec3(0, 1, 1).Normalize()
	tangent := NewVec3(0, 1, -1)
	tn := normal.MulVec3(n)
	tt := model.Mat3().MulVec3(tangent)
	if d := tn.Dot(tt); kabs(d) > 1e-4 {
		t.Fatalf("transformed normal not perpendicular: dot = %v", d)
	}
}

func TestIdentityConstants(t *testing.T) {
	if NewQuatIdentity().ToMat4() != NewMat4Identity() {
		t.Fatal("identity quaternion must map to the identity matrix")
	}
	if NewMat3Normal(NewMat4Identity()) != NewMat3Identity() {
		t.Fatal("normal matrix of identity must be identity")
	}
	if NewVec2Zero() != (Vec2{}) || NewVec3Zero() != (Vec3{}) {
		t.Fatal("zero vectors must be zero")
	}
}

func TestTransformCachesLocal(t *testing.T) {
	tr := TransformCreate()
	if tr.GetLocal() != NewMat4Identity() {
		t.Fatal("fresh transform must be identity")
	}
	tr.SetPosition(NewVec3(1, 2, 3))
	if !tr.IsDirty {
		t.Fatal("SetPosition must mark the transform dirty")
	}
	local := tr.GetLocal()
	if tr.IsDirty || local != NewMat4Translation(NewVec3(1, 2, 3)) {
		t.Fatalf("local = %v", local)
	}
}

func TestHSVToRGB(t *testing.T) {
	tests := []struct {
		h, s, v float32
		want    Vec4
	}{
		{0, 1, 1, NewVec4(1, 0, 0, 1)},
		{120, 1, 1, NewVec4(0, 1, 0, 1)},
		{240, 1, 1, NewVec4(0, 0, 1, 1)},
		{60, 1, 1, NewVec4(1, 1, 0, 1)},
		{200, 0, 0.5, NewVec4(0.5, 0.5, 0.5, 1)},
	}
	for _, tt := range tests {
		if got := HSVToRGB(tt.h, tt.s, tt.v); !got.Compare(tt.want, tolerance) {
			t.Errorf("HSVToRGB(%v,%v,%v) = %v, want %v", tt.h, tt.s, tt.v, got, tt.want)
		}
	}
}

func TestRandomBetween(t *testing.T) {
	r := NewRandom(42)
	for i := 0; i < 1000; i++ {
		v := r.Between(-80, 80)
		if v < -80 || v > 80 {
			t.Fatalf("Between(-80, 80) = %v", v)
		}
	}
	a, b := NewRandom(7), NewRandom(7)
	for i := 0; i < 10; i++ {
		if a.Float() != b.Float() {
			t.Fatal("equal seeds must give equal sequences")
		}
	}
}

func TestClamp(t *testing.T) {
	if Clamp(5, 0, 3) != 3 || Clamp(-1, 0, 3) != 0 || Clamp(float32(1.5), 0, 3) != 1.5 {
		t.Fatal("Clamp")
	}
	if d := DegToRad(180); float64(kabs(d-K_PI)) > 1e-6 {
		t.Fatalf("DegToRad(180) = %v", d)
	}
}
