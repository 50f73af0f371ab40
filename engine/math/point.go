package math

import "fmt"

/**
 * @brief Capabilities a vector type needs to be used as the vertex type of
 * the shapes in this package. Vec3 and Vec4 implement it; Vec4 keeps its W
 * component untouched by every affine operation.
 */
type Point[P any] interface {
	fmt.Stringer

	Add(other P) P
	Sub(other P) P
	MulScalar(scalar float32) P
	Lerp(proportion float32, other P) P
	Compare(other P, tolerance float32) bool
	// XYZ returns the spatial part of the point.
	XYZ() Vec3
	// WithXYZ returns a copy of the point with its spatial part replaced.
	WithXYZ(xyz Vec3) P
}

// mapPoint applies fn to the spatial part of p.
func mapPoint[P Point[P]](p P, fn func(Vec3) Vec3) P {
	return p.WithXYZ(fn(p.XYZ()))
}
