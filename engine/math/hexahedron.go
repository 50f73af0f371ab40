package math

import (
	"fmt"

	"github.com/spaghettifunk/anima-geom/engine/core"
)

/**
 * @brief A volume bounded by six quadrilateral faces, topologically a cube.
 * The vertices are named after their position in the following layout,
 * where ABCD is the top face and EFGH the bottom one:
 *
 *      A --- D
 *     /|    /|
 *    B --- C |
 *    | E --| F
 *    |/    |/
 *    H --- G
 *
 * Every transformation returns a new hexahedron, the receiver is never
 * modified.
 */
type Hexahedron[P Point[P]] struct {
	A, B, C, D, E, F, G, H P
}

// NewHexahedron copies the eight vertices as they are, no validation is done.
func NewHexahedron[P Point[P]](a, b, c, d, e, f, g, h P) Hexahedron[P] {
	return Hexahedron[P]{A: a, B: b, C: c, D: d, E: e, F: f, G: g, H: h}
}

/**
 * @brief Builds an axis aligned hexahedron from two opposite corners: A,
 * the top-front-left vertex, and G, the bottom-back-right one. The top face
 * keeps the rest of the components of A (W for 4D points) and the bottom face
 * the ones of G.
 */
func NewHexahedronFromCorners[P Point[P]](a, g P) Hexahedron[P] {
	va := a.XYZ()
	vg := g.XYZ()
	return Hexahedron[P]{
		A: a,
		B: a.WithXYZ(Vec3{va.X, va.Y, vg.Z}),
		C: a.WithXYZ(Vec3{vg.X, va.Y, vg.Z}),
		D: a.WithXYZ(Vec3{vg.X, va.Y, va.Z}),
		E: g.WithXYZ(Vec3{va.X, vg.Y, va.Z}),
		F: g.WithXYZ(Vec3{vg.X, vg.Y, va.Z}),
		G: g,
		H: g.WithXYZ(Vec3{va.X, vg.Y, vg.Z}),
	}
}

/**
 * @brief Builds an axis aligned hexahedron centered at center whose total
 * lengths along X, Y and Z are lenX, lenY and lenZ.
 */
func NewHexahedronFromCenter[P Point[P]](center P, lenX, lenY, lenZ float32) Hexahedron[P] {
	c := center.XYZ()
	hx, hy, hz := lenX*0.5, lenY*0.5, lenZ*0.5
	a := center.WithXYZ(Vec3{c.X - hx, c.Y + hy, c.Z + hz})
	g := center.WithXYZ(Vec3{c.X + hx, c.Y - hy, c.Z - hz})
	return NewHexahedronFromCorners(a, g)
}

/**
 * @brief Returns the axis aligned cube of side 1 centered at the origin. 4D
 * points get W = 1.
 */
func UnitCube[P Point[P]]() Hexahedron[P] {
	var origin P
	if v, ok := any(origin).(Vec4); ok {
		v.W = 1.0
		origin = any(v).(P)
	}
	return NewHexahedronFromCenter(origin, 1.0, 1.0, 1.0)
}

func UnitCube3() Hexahedron[Vec3] {
	return UnitCube[Vec3]()
}

func UnitCube4() Hexahedron[Vec4] {
	return UnitCube[Vec4]()
}

// Vertices returns the vertices in A..H order.
func (h Hexahedron[P]) Vertices() [8]P {
	return [8]P{h.A, h.B, h.C, h.D, h.E, h.F, h.G, h.H}
}

func (h Hexahedron[P]) Equals(other Hexahedron[P], tolerance float32) bool {
	vs := h.Vertices()
	os := other.Vertices()
	for i := range vs {
		if !vs[i].Compare(os[i], tolerance) {
			return false
		}
	}
	return true
}

// IsDegenerate reports whether the eight vertices coincide.
func (h Hexahedron[P]) IsDegenerate() bool {
	vs := h.Vertices()
	for _, v := range vs[1:] {
		if !v.XYZ().Compare(h.A.XYZ(), K_FLOAT_EPSILON) {
			return false
		}
	}
	return true
}

// Center returns the centroid of the eight vertices.
func (h Hexahedron[P]) Center() P {
	vs := h.Vertices()
	sum := vs[0]
	for _, v := range vs[1:] {
		sum = sum.Add(v)
	}
	return sum.MulScalar(1.0 / 8.0)
}

// Extents returns the axis aligned box that encloses the hexahedron.
func (h Hexahedron[P]) Extents() Extents3D {
	vs := h.Vertices()
	e := Extents3D{Min: vs[0].XYZ(), Max: vs[0].XYZ()}
	for _, v := range vs[1:] {
		p := v.XYZ()
		e.Min = Vec3{min(e.Min.X, p.X), min(e.Min.Y, p.Y), min(e.Min.Z, p.Z)}
		e.Max = Vec3{max(e.Max.X, p.X), max(e.Max.Y, p.Y), max(e.Max.Z, p.Z)}
	}
	return e
}

func (h Hexahedron[P]) String() string {
	return fmt.Sprintf("HX(a(%s),b(%s),c(%s),d(%s),e(%s),f(%s),g(%s),h(%s))",
		h.A, h.B, h.C, h.D, h.E, h.F, h.G, h.H)
}

// ------------------------------------------
// Transformations
// ------------------------------------------

func (h Hexahedron[P]) apply(fn func(Vec3) Vec3) Hexahedron[P] {
	return Hexahedron[P]{
		A: mapPoint(h.A, fn),
		B: mapPoint(h.B, fn),
		C: mapPoint(h.C, fn),
		D: mapPoint(h.D, fn),
		E: mapPoint(h.E, fn),
		F: mapPoint(h.F, fn),
		G: mapPoint(h.G, fn),
		H: mapPoint(h.H, fn),
	}
}

// applyWithPivot moves pivot to the origin, applies fn and moves it back.
func (h Hexahedron[P]) applyWithPivot(pivot P, fn func(Vec3) Vec3) Hexahedron[P] {
	p := pivot.XYZ()
	return h.apply(func(v Vec3) Vec3 {
		return fn(v.Sub(p)).Add(p)
	})
}

func (h Hexahedron[P]) Translate(translation Vec3) Hexahedron[P] {
	return h.apply(func(v Vec3) Vec3 { return v.Add(translation) })
}

func (h Hexahedron[P]) TranslateXYZ(x, y, z float32) Hexahedron[P] {
	return h.Translate(Vec3{x, y, z})
}

// TranslateMatrix moves every vertex by a translation matrix.
func (h Hexahedron[P]) TranslateMatrix(m Mat4) Hexahedron[P] {
	return h.apply(func(v Vec3) Vec3 { return v.Transform(m) })
}

/**
 * @brief Rotates the hexahedron around the coordinate origin. The null
 * quaternion moves every vertex to the origin.
 */
func (h Hexahedron[P]) Rotate(rotation Quaternion) Hexahedron[P] {
	return h.apply(rotation.RotateVec3)
}

/**
 * @brief Rotates the hexahedron around pivot. The null quaternion moves
 * every vertex to the pivot.
 */
func (h Hexahedron[P]) RotateWithPivot(rotation Quaternion, pivot P) Hexahedron[P] {
	return h.applyWithPivot(pivot, rotation.RotateVec3)
}

func (h Hexahedron[P]) RotateMatrix(rotation Mat3) Hexahedron[P] {
	return h.apply(rotation.MulVec3)
}

func (h Hexahedron[P]) RotateMatrixWithPivot(rotation Mat3, pivot P) Hexahedron[P] {
	return h.applyWithPivot(pivot, rotation.MulVec3)
}

func (h Hexahedron[P]) Scale(scale Vec3) Hexahedron[P] {
	return h.apply(func(v Vec3) Vec3 { return v.Mul(scale) })
}

func (h Hexahedron[P]) ScaleXYZ(x, y, z float32) Hexahedron[P] {
	return h.Scale(Vec3{x, y, z})
}

func (h Hexahedron[P]) ScaleWithPivot(scale Vec3, pivot P) Hexahedron[P] {
	return h.applyWithPivot(pivot, func(v Vec3) Vec3 { return v.Mul(scale) })
}

func (h Hexahedron[P]) ScaleXYZWithPivot(x, y, z float32, pivot P) Hexahedron[P] {
	return h.ScaleWithPivot(Vec3{x, y, z}, pivot)
}

func (h Hexahedron[P]) ScaleMatrix(scale Mat3) Hexahedron[P] {
	return h.apply(scale.MulVec3)
}

func (h Hexahedron[P]) ScaleMatrixWithPivot(scale Mat3, pivot P) Hexahedron[P] {
	return h.applyWithPivot(pivot, scale.MulVec3)
}

/**
 * @brief Applies an affine transformation (scale, rotation and translation
 * combined) to every vertex. A zero matrix moves every vertex to the origin.
 */
func (h Hexahedron[P]) Transform(transformation Mat4) Hexahedron[P] {
	return h.apply(func(v Vec3) Vec3 { return v.Transform(transformation) })
}

func (h Hexahedron[P]) TransformWithPivot(transformation Mat4, pivot P) Hexahedron[P] {
	return h.applyWithPivot(pivot, func(v Vec3) Vec3 { return v.Transform(transformation) })
}

// ------------------------------------------
// Queries
// ------------------------------------------

// faces lists each face as a ring of vertices whose winding gives an
// outward normal for the canonical layout.
func (h Hexahedron[P]) faces() [6][4]Vec3 {
	a, b, c, d := h.A.XYZ(), h.B.XYZ(), h.C.XYZ(), h.D.XYZ()
	e, f, g, hh := h.E.XYZ(), h.F.XYZ(), h.G.XYZ(), h.H.XYZ()
	return [6][4]Vec3{
		{a, d, c, b},  // ABCD
		{e, hh, g, f}, // EFGH
		{a, e, f, d},  // AEFD
		{a, b, hh, e}, // ABHE
		{b, c, g, hh}, // BCGH
		{c, d, f, g},  // CDFG
	}
}

// faceTriples are the vertices that define each face plane: ABC, EFG, AEF,
// ABH, BCG and CDF. They matter when a face is not flat.
func (h Hexahedron[P]) faceTriples() [6][3]Vec3 {
	a, b, c, d := h.A.XYZ(), h.B.XYZ(), h.C.XYZ(), h.D.XYZ()
	e, f, g, hh := h.E.XYZ(), h.F.XYZ(), h.G.XYZ(), h.H.XYZ()
	return [6][3]Vec3{
		{a, b, c},
		{e, f, g},
		{a, e, f},
		{a, b, hh},
		{b, c, g},
		{c, d, f},
	}
}

// edges returns the twelve edges as vertex pairs.
func (h Hexahedron[P]) edges() [12][2]Vec3 {
	a, b, c, d := h.A.XYZ(), h.B.XYZ(), h.C.XYZ(), h.D.XYZ()
	e, f, g, hh := h.E.XYZ(), h.F.XYZ(), h.G.XYZ(), h.H.XYZ()
	return [12][2]Vec3{
		{a, b}, {b, c}, {c, d}, {d, a},
		{e, f}, {f, g}, {g, hh}, {hh, e},
		{a, e}, {b, hh}, {c, g}, {d, f},
	}
}

// facePlanes computes the six normalized face planes, oriented so that the
// centroid is never on their positive side. A face whose defining triple is
// collinear uses the first other triple of its ring that is not. Faces
// collapsed to a line give the null plane.
func (h Hexahedron[P]) facePlanes() [6]Plane {
	center := h.Center().XYZ()
	faces := h.faces()
	var planes [6]Plane
	for i, t := range h.faceTriples() {
		plane := NewPlaneFromPoints(t[0], t[1], t[2])
		face := faces[i]
		for j := 0; j < 4 && plane.IsNull(); j++ {
			plane = NewPlaneFromPoints(face[j], face[(j+1)%4], face[(j+2)%4])
		}
		if plane.DotPoint(center) > 0 {
			plane = plane.Negate()
		}
		planes[i] = plane
	}
	return planes
}

/**
 * @brief Fills out with the planes of the six faces, in this order: ABCD,
 * EFGH, AEFD, ABHE, BCGH, CDFG. Planes are normalized and their normals
 * point outwards.
 */
func (h Hexahedron[P]) GetPlanes(out *[6]Plane) error {
	if out == nil {
		return core.ErrNullOutputBuffer
	}
	if h.IsDegenerate() {
		return fmt.Errorf("get planes: %w", core.ErrDegenerateHexahedron)
	}
	*out = h.facePlanes()
	return nil
}

/**
 * @brief Checks if the point is inside the hexahedron. Points on a face, on
 * an edge or on a vertex are contained.
 */
func (h Hexahedron[P]) Contains(point P) (bool, error) {
	if h.IsDegenerate() {
		return false, fmt.Errorf("contains: %w", core.ErrDegenerateHexahedron)
	}
	p := point.XYZ()
	for _, plane := range h.facePlanes() {
		if plane.DotPoint(p) > K_GEOMETRY_EPSILON {
			return false, nil
		}
	}
	return true, nil
}

/**
 * @brief Classifies the hexahedron with respect to the plane. Vertices lying
 * on the plane do not count for either side.
 */
func (h Hexahedron[P]) SpaceRelation(plane Plane) (SpaceRelation, error) {
	if plane.IsNull() {
		return SpaceRelationContained, fmt.Errorf("space relation: %w", core.ErrNullPlane)
	}
	if h.IsDegenerate() {
		return SpaceRelationContained, fmt.Errorf("space relation: %w", core.ErrDegenerateHexahedron)
	}

	plane = plane.Normalize()
	positive, negative := false, false
	for _, v := range h.Vertices() {
		dist := plane.DotPoint(v.XYZ())
		if dist > K_GEOMETRY_EPSILON {
			positive = true
		} else if dist < -K_GEOMETRY_EPSILON {
			negative = true
		}
	}

	switch {
	case positive && negative:
		return SpaceRelationBothSides, nil
	case positive:
		return SpaceRelationPositiveSide, nil
	case negative:
		return SpaceRelationNegativeSide, nil
	default:
		return SpaceRelationContained, nil
	}
}

/**
 * @brief Checks if two hexahedra overlap, touching included. Uses the
 * separating axis test: the face normals of both hexahedra and the cross
 * products of every pair of edges are tried as axes, and the hexahedra are
 * disjoint only if their projections on one of them do not overlap.
 */
func (h Hexahedron[P]) Intersection(other Hexahedron[P]) (bool, error) {
	if h.IsDegenerate() || other.IsDegenerate() {
		return false, fmt.Errorf("intersection: %w", core.ErrDegenerateHexahedron)
	}

	vs1 := h.Vertices()
	vs2 := other.Vertices()

	separated := func(axis Vec3) bool {
		min1, max1 := projectOnAxis(vs1, axis)
		min2, max2 := projectOnAxis(vs2, axis)
		return max1 < min2-K_GEOMETRY_EPSILON || max2 < min1-K_GEOMETRY_EPSILON
	}

	for _, planes := range [2][6]Plane{h.facePlanes(), other.facePlanes()} {
		for _, plane := range planes {
			if plane.IsNull() {
				continue
			}
			if separated(plane.Normal()) {
				return false, nil
			}
		}
	}

	edges2 := other.edges()
	for _, e1 := range h.edges() {
		d1 := e1[1].Sub(e1[0])
		for _, e2 := range edges2 {
			d2 := e2[1].Sub(e2[0])
			axis := d1.Cross(d2)
			// Parallel edges add nothing the face normals did not test.
			if axis.LengthSquared() <= d1.LengthSquared()*d2.LengthSquared()*1e-10 {
				continue
			}
			if separated(axis.Normalize()) {
				return false, nil
			}
		}
	}
	return true, nil
}

func projectOnAxis[P Point[P]](vertices [8]P, axis Vec3) (float32, float32) {
	lo := vertices[0].XYZ().Dot(axis)
	hi := lo
	for _, v := range vertices[1:] {
		d := v.XYZ().Dot(axis)
		lo = min(lo, d)
		hi = max(hi, d)
	}
	return lo, hi
}

/**
 * @brief Returns the hexahedron obtained by projecting every vertex
 * orthogonally onto the plane.
 */
func (h Hexahedron[P]) ProjectToPlane(plane Plane) (Hexahedron[P], error) {
	if plane.IsNull() {
		return h, fmt.Errorf("project to plane: %w", core.ErrNullPlane)
	}
	if h.IsDegenerate() {
		return h, fmt.Errorf("project to plane: %w", core.ErrDegenerateHexahedron)
	}
	return h.apply(func(v Vec3) Vec3 {
		// The plane was checked above, the error cannot happen.
		p, _ := plane.ProjectPoint(v)
		return p
	}), nil
}
