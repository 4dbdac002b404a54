// SPDX-License-Identifier: GPL-2.0-or-later

package vec

import (
	"github.com/chewxy/math32"
)

// Quat is a rotation quaternion in w,x,y,z order. On disk W3D stores x,y,z,w.
type Quat struct {
	W, X, Y, Z float32
}

// IdentityQuat is the rotation that does nothing.
var IdentityQuat = Quat{W: 1}

// QuatFromAxisAngle builds a rotation of angle radians around axis.
func QuatFromAxisAngle(axis Vec3, angle float32) Quat {
	s, c := math32.Sincos(angle / 2)
	return Quat{c, axis.X * s, axis.Y * s, axis.Z * s}
}

// QuatFromEuler builds a rotation from roll (x), pitch (y) and yaw (z) in radians.
func QuatFromEuler(roll, pitch, yaw float32) Quat {
	sr, cr := math32.Sincos(roll / 2)
	sp, cp := math32.Sincos(pitch / 2)
	sy, cy := math32.Sincos(yaw / 2)
	return Quat{
		W: cr*cp*cy + sr*sp*sy,
		X: sr*cp*cy - cr*sp*sy,
		Y: cr*sp*cy + sr*cp*sy,
		Z: cr*cp*sy - sr*sp*cy,
	}
}

// Mul returns the composition a*b, which applies b first and then a.
func Mul(a, b Quat) Quat {
	return Quat{
		W: a.W*b.W - a.X*b.X - a.Y*b.Y - a.Z*b.Z,
		X: a.W*b.X + a.X*b.W + a.Y*b.Z - a.Z*b.Y,
		Y: a.W*b.Y - a.X*b.Z + a.Y*b.W + a.Z*b.X,
		Z: a.W*b.Z + a.X*b.Y - a.Y*b.X + a.Z*b.W,
	}
}

func (q Quat) Conjugate() Quat {
	return Quat{q.W, -q.X, -q.Y, -q.Z}
}

func (q Quat) norm2() float32 {
	return q.W*q.W + q.X*q.X + q.Y*q.Y + q.Z*q.Z
}

// Inverse returns the inverse rotation. The zero quaternion inverts to the identity.
func (q Quat) Inverse() Quat {
	n := q.norm2()
	if n == 0 {
		return IdentityQuat
	}
	c := q.Conjugate()
	return Quat{c.W / n, c.X / n, c.Y / n, c.Z / n}
}

// Normalize returns q scaled to unit length. The zero quaternion normalizes to the identity.
func (q Quat) Normalize() Quat {
	m := math32.Sqrt(q.norm2())
	if m == 0 {
		return IdentityQuat
	}
	return Quat{q.W / m, q.X / m, q.Y / m, q.Z / m}
}

// Euler returns roll (x), pitch (y) and yaw (z) in radians.
func (q Quat) Euler() (roll, pitch, yaw float32) {
	sinrCosp := 2 * (q.W*q.X + q.Y*q.Z)
	cosrCosp := 1 - 2*(q.X*q.X+q.Y*q.Y)
	roll = math32.Atan2(sinrCosp, cosrCosp)

	sinp := 2 * (q.W*q.Y - q.Z*q.X)
	if math32.Abs(sinp) >= 1 {
		pitch = math32.Copysign(math32.Pi/2, sinp)
	} else {
		pitch = math32.Asin(sinp)
	}

	sinyCosp := 2 * (q.W*q.Z + q.X*q.Y)
	cosyCosp := 1 - 2*(q.Y*q.Y+q.Z*q.Z)
	yaw = math32.Atan2(sinyCosp, cosyCosp)
	return
}
