package vec

import (
	"testing"

	"github.com/chewxy/math32"
)

const epsilon = 1e-5

func near(a, b float32) bool {
	return math32.Abs(a-b) < epsilon
}

func nearQuat(a, b Quat) bool {
	return near(a.W, b.W) && near(a.X, b.X) && near(a.Y, b.Y) && near(a.Z, b.Z)
}

func TestQuatIdentity(t *testing.T) {
	q := QuatFromEuler(0.3, -0.2, 1.1)
	if got := Mul(q, IdentityQuat); !nearQuat(got, q) {
		t.Errorf("q*1 = %v want %v", got, q)
	}
	if got := Mul(q, q.Inverse()); !nearQuat(got, IdentityQuat) {
		t.Errorf("q*q^-1 = %v want identity", got)
	}
}

func TestQuatEulerRoundTrip(t *testing.T) {
	tests := []struct{ roll, pitch, yaw float32 }{
		{0, 0, 0},
		{0.5, 0, 0},
		{0, 0.5, 0},
		{0, 0, 0.5},
		{0.3, -0.7, 2.1},
	}
	for _, tc := range tests {
		r, p, y := QuatFromEuler(tc.roll, tc.pitch, tc.yaw).Euler()
		if !near(r, tc.roll) || !near(p, tc.pitch) || !near(y, tc.yaw) {
			t.Errorf("Euler(QuatFromEuler(%v,%v,%v)) = %v,%v,%v", tc.roll, tc.pitch, tc.yaw, r, p, y)
		}
	}
}

func TestQuatAxisAngle(t *testing.T) {
	a := QuatFromAxisAngle(Vec3{0, 0, 1}, math32.Pi/2)
	b := QuatFromEuler(0, 0, math32.Pi/2)
	if !nearQuat(a, b) {
		t.Errorf("axis angle %v != euler %v", a, b)
	}
	twice := Mul(a, a)
	if want := QuatFromAxisAngle(Vec3{0, 0, 1}, math32.Pi); !nearQuat(twice, want) {
		t.Errorf("a*a = %v want %v", twice, want)
	}
}

func TestQuatNormalize(t *testing.T) {
	q := Quat{2, 0, 0, 0}
	if got := q.Normalize(); got != IdentityQuat {
		t.Errorf("Normalize(%v) = %v", q, got)
	}
	if got := (Quat{}).Normalize(); got != IdentityQuat {
		t.Errorf("Normalize(zero) = %v", got)
	}
	if got := (Quat{}).Inverse(); got != IdentityQuat {
		t.Errorf("Inverse(zero) = %v", got)
	}
}
