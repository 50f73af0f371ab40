package math

import (
	"fmt"

	"github.com/spaghettifunk/anima-geom/engine/core"
)

var (
	ZeroPlane = Plane{0, 0, 0, 0}
	// PlaneZX contains the X and Z axes, its normal is +Y.
	PlaneZX = Plane{0, 1, 0, 0}
	// PlaneXY contains the X and Y axes, its normal is +Z.
	PlaneXY = Plane{0, 0, 1, 0}
	// PlaneYZ contains the Y and Z axes, its normal is +X.
	PlaneYZ = Plane{1, 0, 0, 0}
)

func NewPlane(a, b, c, d float32) Plane {
	return Plane{a, b, c, d}
}

/**
 * @brief Creates the plane that contains the three points. The normal is
 * (p2 - p1) x (p3 - p1), normalized. Collinear or coincident points give the
 * null plane.
 */
func NewPlaneFromPoints(p1, p2, p3 Vec3) Plane {
	e1 := p2.Sub(p1)
	e2 := p3.Sub(p1)
	normal := e1.Cross(e2)
	// |e1 x e2|² = |e1|²|e2|²sin², so this rejects near collinear points at any scale.
	if normal.LengthSquared() <= e1.LengthSquared()*e2.LengthSquared()*1e-12 {
		return ZeroPlane
	}
	normal = normal.Normalize()
	return Plane{normal.X, normal.Y, normal.Z, -normal.Dot(p1)}
}

/**
 * @brief Creates the plane with the given normal that contains point.
 */
func NewPlaneFromPointNormal(point, normal Vec3) Plane {
	return Plane{normal.X, normal.Y, normal.Z, -normal.Dot(point)}
}

func (p Plane) Normal() Vec3 {
	return Vec3{p.A, p.B, p.C}
}

func (p Plane) SquaredLength() float32 {
	return p.A*p.A + p.B*p.B + p.C*p.C
}

// IsNull reports whether the normal of the plane is the zero vector.
func (p Plane) IsNull() bool {
	return p.Normal().IsZero()
}

func (p Plane) Normalize() Plane {
	length := ksqrt(p.SquaredLength())
	if length == 0 {
		return p
	}
	return Plane{p.A / length, p.B / length, p.C / length, p.D / length}
}

// Negate flips the orientation of the plane, it still contains the same points.
func (p Plane) Negate() Plane {
	return Plane{-p.A, -p.B, -p.C, -p.D}
}

/**
 * @brief Evaluates the plane equation at v. The sign tells on which side of
 * the plane the point lies; for a normalized plane the value is the signed
 * distance.
 */
func (p Plane) DotPoint(v Vec3) float32 {
	return p.A*v.X + p.B*v.Y + p.C*v.Z + p.D
}

/**
 * @brief Returns the unsigned distance between the plane and v.
 */
func (p Plane) PointDistance(v Vec3) (float32, error) {
	if p.IsNull() {
		return 0, core.ErrNullPlane
	}
	return kabs(p.DotPoint(v)) / ksqrt(p.SquaredLength()), nil
}

/**
 * @brief Returns the orthogonal projection of v onto the plane.
 */
func (p Plane) ProjectPoint(v Vec3) (Vec3, error) {
	if p.IsNull() {
		return v, core.ErrNullPlane
	}
	proj := -p.DotPoint(v) / p.SquaredLength()
	return Vec3{
		proj*p.A + v.X,
		proj*p.B + v.Y,
		proj*p.C + v.Z}, nil
}

// Contains reports whether v belongs to the plane.
func (p Plane) Contains(v Vec3) bool {
	return kabs(p.DotPoint(v)) <= K_GEOMETRY_EPSILON
}

func (p Plane) Compare(other Plane, tolerance float32) bool {
	return kabs(p.A-other.A) <= tolerance &&
		kabs(p.B-other.B) <= tolerance &&
		kabs(p.C-other.C) <= tolerance &&
		kabs(p.D-other.D) <= tolerance
}

func (p Plane) String() string {
	return fmt.Sprintf("PL(%g, %g, %g, %g)", p.A, p.B, p.C, p.D)
}

func (r SpaceRelation) String() string {
	switch r {
	case SpaceRelationContained:
		return "contained"
	case SpaceRelationPositiveSide:
		return "positive side"
	case SpaceRelationNegativeSide:
		return "negative side"
	case SpaceRelationBothSides:
		return "both sides"
	default:
		return fmt.Sprintf("SpaceRelation(%d)", uint8(r))
	}
}
