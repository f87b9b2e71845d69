package math

import (
	"math"
	"testing"
)

func TestIdentity(t *testing.T) {
	m := Identity()
	// Diagonal should be 1
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	// Off-diagonal should be 0
	if m[1] != 0 || m[4] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
}

func TestMulIdentity(t *testing.T) {
	m := Translate(1, 2, 3)
	result := m.Mul(Identity())

	for i := 0; i < 16; i++ {
		if result[i] != m[i] {
			t.Errorf("M * I should equal M, element %d: got %f, want %f", i, result[i], m[i])
		}
	}
}

func TestTranslate(t *testing.T) {
	m := Translate(5, 10, 15)

	// Translation lives in column 4 (indices 12, 13, 14)
	if m.At(0, 3) != 5 || m.At(1, 3) != 10 || m.At(2, 3) != 15 {
		t.Errorf("Translate: got (%f, %f, %f), want (5, 10, 15)", m[12], m[13], m[14])
	}
}

func TestTransformPoint(t *testing.T) {
	m := Translate(10, 20, 30)
	result := m.TransformPoint(Vec3{1, 2, 3})

	expected := Vec3{11, 22, 33}
	if result != expected {
		t.Errorf("TransformPoint: got %v, want %v", result, expected)
	}
}

func TestTransformDirectionIgnoresTranslation(t *testing.T) {
	m := Translate(10, 20, 30)
	d := Vec3{0, 0, -1}
	if got := m.TransformDirection(d); got != d {
		t.Errorf("TransformDirection: got %v, want %v", got, d)
	}
}

func TestRotateY90(t *testing.T) {
	m := RotateY(float32(math.Pi / 2))
	result := m.TransformPoint(Vec3{1, 0, 0})

	// After 90 degree Y rotation, (1,0,0) should become approximately (0,0,-1)
	if !result.ApproxEqual(Vec3{0, 0, -1}, 0.001) {
		t.Errorf("RotateY 90: got %v, want (0, 0, -1)", result)
	}
}

func TestRotateAxisMatchesRotateZ(t *testing.T) {
	angle := float32(0.7)
	a := RotateAxis(Vec3{0, 0, 1}, angle)
	b := RotateZ(angle)
	if !a.ApproxEqual(b, 1e-6) {
		t.Errorf("RotateAxis(Z) = %v, want %v", a, b)
	}
}

func TestPerspective(t *testing.T) {
	m := Perspective(float32(math.Pi/4), 1, 0.1, 100)

	if m[0] == 0 || m[5] == 0 {
		t.Error("Perspective should have non-zero elements")
	}
	if m[15] != 0 {
		t.Errorf("Perspective [15] should be 0, got %f", m[15])
	}
	if m[11] != -1 {
		t.Errorf("Perspective [11] should be -1, got %f", m[11])
	}
}

func TestFrustumSymmetricMatchesPerspective(t *testing.T) {
	fov := float32(math.Pi / 3)
	near, far := float32(0.1), float32(100)
	h := near * float32(math.Tan(float64(fov)/2))
	w := h * 1.5

	f := Frustum(-w, w, -h, h, near, far)
	p := Perspective(fov, 1.5, near, far)
	if !f.ApproxEqual(p, 1e-4) {
		t.Errorf("Frustum = %v, want %v", f, p)
	}
}

func TestFrustumDepthRange(t *testing.T) {
	m := Frustum(-1, 1, -1, 1, 1, 10)

	for _, tt := range []struct {
		z    float32
		want float32
	}{
		{-1, -1},
		{-10, 1},
	} {
		clip := m.MulPoint(Vec3{0, 0, tt.z})
		ndc := clip[2] / clip[3]
		if abs(ndc-tt.want) > 1e-5 {
			t.Errorf("z=%v: ndc depth %v, want %v", tt.z, ndc, tt.want)
		}
	}
}

func TestOrthoMapsBoundsToUnitCube(t *testing.T) {
	m := Ortho(-2, 2, -1, 1, 0.5, 10)

	lo := m.TransformPoint(Vec3{-2, -1, -0.5})
	hi := m.TransformPoint(Vec3{2, 1, -10})
	if !lo.ApproxEqual(Vec3{-1, -1, -1}, 1e-6) {
		t.Errorf("near corner: got %v", lo)
	}
	if !hi.ApproxEqual(Vec3{1, 1, 1}, 1e-6) {
		t.Errorf("far corner: got %v", hi)
	}
}

func TestInverse(t *testing.T) {
	m := Translate(1, 2, 3).Mul(RotateX(0.3)).Mul(RotateY(-1.1))
	result := m.Mul(m.Inverse())
	if !result.ApproxEqual(Identity(), 1e-5) {
		t.Errorf("M * M^-1 = %v, want identity", result)
	}
}

func TestInverseCheckedSingular(t *testing.T) {
	var zero Mat4
	if _, ok := zero.InverseChecked(); ok {
		t.Error("InverseChecked of zero matrix should report singular")
	}
	if got := zero.Inverse(); got != Identity() {
		t.Errorf("Inverse of singular matrix should fall back to identity, got %v", got)
	}
}

func TestEulerXYZ(t *testing.T) {
	tests := []struct {
		name    string
		x, y, z float32
	}{
		{"zero", 0, 0, 0},
		{"x only", 0.5, 0, 0},
		{"y only", 0, -0.8, 0},
		{"z only", 0, 0, 2.5},
		{"mixed", 0.3, 0.4, -1.2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := RotateZ(tt.z).Mul(RotateY(tt.y)).Mul(RotateX(tt.x))
			x, y, z := m.EulerXYZ()
			if abs(x-tt.x) > 1e-5 || abs(y-tt.y) > 1e-5 || abs(z-tt.z) > 1e-5 {
				t.Errorf("EulerXYZ = (%v, %v, %v), want (%v, %v, %v)", x, y, z, tt.x, tt.y, tt.z)
			}
		})
	}
}

func TestEulerXYZGimbalLock(t *testing.T) {
	m := RotateZ(0.4).Mul(RotateY(float32(math.Pi / 2))).Mul(RotateX(0.2))
	x, y, z := m.EulerXYZ()

	// The decomposition is ambiguous here; it must still rebuild the same rotation.
	rebuilt := RotateZ(z).Mul(RotateY(y)).Mul(RotateX(x))
	if !rebuilt.ApproxEqual(m, 1e-4) {
		t.Errorf("gimbal lock rebuild mismatch: got %v, want %v", rebuilt, m)
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
