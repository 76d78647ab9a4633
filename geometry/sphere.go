package geometry

import (
	"github.com/golang/geo/r3"
	"github.com/golang/geo/s1"
)

// northPole is the image of the point at infinity under ToSphere.
var northPole = r3.Vector{X: 0, Y: 0, Z: 1}

// ToSphere lifts a point of the extended plane onto the unit sphere by
// inverse stereographic projection from the north pole. Infinity maps to
// the north pole, the origin to the south pole.
func ToSphere(z complex128) r3.Vector {
	if IsInfinite(z) {
		return northPole
	}
	x, y := real(z), imag(z)
	n := x*x + y*y
	return r3.Vector{X: 2 * x, Y: 2 * y, Z: n - 1}.Mul(1 / (n + 1))
}

// FromSphere projects a unit vector back onto the extended plane.
func FromSphere(v r3.Vector) complex128 {
	if v.ApproxEqual(northPole) || v.Z >= 1 {
		return Infinity
	}
	d := 1 - v.Z
	return complex(v.X/d, v.Y/d)
}

// Antipode returns the plane point whose sphere lift is diametrically
// opposite to that of z; Antipode(0) is infinity.
func Antipode(z complex128) complex128 {
	return FromSphere(ToSphere(z).Mul(-1))
}

// SphereAngle is the great-circle angle between the sphere lifts of a and b.
// It equals the spherical distance between a and b.
func SphereAngle(a, b complex128) s1.Angle {
	return ToSphere(a).Angle(ToSphere(b))
}
