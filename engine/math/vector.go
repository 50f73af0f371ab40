package math

import "fmt"

// ------------------------------------------
// Vector 2
// ------------------------------------------

/**
 * @brief Creates and returns a new 2-element vector using the supplied values.
 *
 * @param x The x value.
 * @param y The y value.
 * @return A new 2-element vector.
 */
func NewVec2(x, y float32) Vec2 {
	return Vec2{
		X: x,
		Y: y,
	}
}

/**
 * @brief Creates and returns a 2-component vector with all components set to 0.0f.
 */
func NewVec2Zero() Vec2 {
	return Vec2{0.0, 0.0}
}

func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

/**
 * @brief Compares all elements of both vectors and ensures the difference
 * is less than tolerance.
 */
func (v Vec2) Compare(other Vec2, tolerance float32) bool {
	return kabs(v.X-other.X) <= tolerance && kabs(v.Y-other.Y) <= tolerance
}

// ------------------------------------------
// Vector 3
// ------------------------------------------

/**
 * @brief Creates and returns a new 3-element vector using the supplied values.
 *
 * @param x The x value.
 * @param y The y value.
 * @param z The z value.
 * @return A new 3-element vector.
 */
func NewVec3(x, y, z float32) Vec3 {
	return Vec3{x, y, z}
}

/**
 * @brief Returns a new vec3 containing the x, y and z components of the
 * supplied vec4, essentially dropping the w component.
 */
func NewVec3FromVec4(vector Vec4) Vec3 {
	return Vec3{vector.X, vector.Y, vector.Z}
}

/**
 * @brief Returns a new vec4 using vector as the x, y and z components and w for w.
 */
func (v Vec3) ToVec4(w float32) Vec4 {
	return Vec4{v.X, v.Y, v.Z, w}
}

func NewVec3Zero() Vec3 {
	return Vec3{0.0, 0.0, 0.0}
}

func NewVec3One() Vec3 {
	return Vec3{1.0, 1.0, 1.0}
}

/**
 * @brief Creates and returns a 3-component vector pointing up (0, 1, 0).
 */
func NewVec3Up() Vec3 {
	return Vec3{0.0, 1.0, 0.0}
}

/**
 * @brief Creates and returns a 3-component vector pointing down (0, -1, 0).
 */
func NewVec3Down() Vec3 {
	return Vec3{0.0, -1.0, 0.0}
}

/**
 * @brief Creates and returns a 3-component vector pointing left (-1, 0, 0).
 */
func NewVec3Left() Vec3 {
	return Vec3{-1.0, 0.0, 0.0}
}

/**
 * @brief Creates and returns a 3-component vector pointing right (1, 0, 0).
 */
func NewVec3Right() Vec3 {
	return Vec3{1.0, 0.0, 0.0}
}

/**
 * @brief Creates and returns a 3-component vector pointing forward (0, 0, -1).
 */
func NewVec3Forward() Vec3 {
	return Vec3{0.0, 0.0, -1.0}
}

/**
 * @brief Creates and returns a 3-component vector pointing backward (0, 0, 1).
 */
func NewVec3Back() Vec3 {
	return Vec3{0.0, 0.0, 1.0}
}

func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{
		v.X + other.X,
		v.Y + other.Y,
		v.Z + other.Z}
}

func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{
		v.X - other.X,
		v.Y - other.Y,
		v.Z - other.Z}
}

/**
 * @brief Multiplies both vectors component by component and returns a copy
 * of the result. Used as a non uniform scale.
 */
func (v Vec3) Mul(other Vec3) Vec3 {
	return Vec3{
		v.X * other.X,
		v.Y * other.Y,
		v.Z * other.Z}
}

func (v Vec3) MulScalar(scalar float32) Vec3 {
	return Vec3{
		v.X * scalar,
		v.Y * scalar,
		v.Z * scalar}
}

func (v Vec3) Div(other Vec3) Vec3 {
	return Vec3{
		v.X / other.X,
		v.Y / other.Y,
		v.Z / other.Z}
}

func (v Vec3) Negate() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

func (v Vec3) LengthSquared() float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func (v Vec3) Length() float32 {
	return ksqrt(v.LengthSquared())
}

/**
 * @brief Returns a unit length copy of the vector. A zero vector is
 * returned unchanged.
 */
func (v Vec3) Normalize() Vec3 {
	length := v.Length()
	if length == 0 {
		return v
	}
	return Vec3{
		v.X / length,
		v.Y / length,
		v.Z / length}
}

func (v Vec3) Normalized() Vec3 {
	return v.Normalize()
}

/**
 * @brief Returns the dot product between the provided vectors. Typically used
 * to calculate the difference in direction.
 */
func (v Vec3) Dot(other Vec3) float32 {
	p := float32(0)
	p += v.X * other.X
	p += v.Y * other.Y
	p += v.Z * other.Z
	return p
}

/**
 * @brief Calculates and returns the cross product of the supplied vectors.
 * The cross product is a new vector which is orthoganal to both provided vectors.
 */
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		v.Y*other.Z - v.Z*other.Y,
		v.Z*other.X - v.X*other.Z,
		v.X*other.Y - v.Y*other.X}
}

/**
 * @brief Linear interpolation between v (proportion 0) and other (proportion 1).
 */
func (v Vec3) Lerp(proportion float32, other Vec3) Vec3 {
	return Vec3{
		v.X + (other.X-v.X)*proportion,
		v.Y + (other.Y-v.Y)*proportion,
		v.Z + (other.Z-v.Z)*proportion}
}

/**
 * @brief Compares all elements of both vectors and ensures the difference
 * is less than tolerance.
 *
 * @param tolerance The difference tolerance. Typically K_FLOAT_EPSILON or similar.
 * @return True if within tolerance; otherwise false.
 */
func (v Vec3) Compare(other Vec3, tolerance float32) bool {
	if kabs(v.X-other.X) > tolerance {
		return false
	}

	if kabs(v.Y-other.Y) > tolerance {
		return false
	}

	if kabs(v.Z-other.Z) > tolerance {
		return false
	}

	return true
}

func (v Vec3) IsZero() bool {
	return v.Compare(NewVec3Zero(), K_FLOAT_EPSILON)
}

func (v Vec3) Distance(other Vec3) float32 {
	return v.Sub(other).Length()
}

/**
 * @brief Transform v by m. NOTE: It is assumed by this function that the
 * vector v is a point, not a direction, and is calculated as if a w component
 * with a value of 1.0f is there.
 *
 * @param v The vector to transform.
 * @param m The matrix to transform by.
 * @return A transformed copy of v.
 */
func (v Vec3) Transform(m Mat4) Vec3 {
	out := Vec3{}
	out.X = v.X*m.Data[0+0] + v.Y*m.Data[4+0] + v.Z*m.Data[8+0] + 1.0*m.Data[12+0]
	out.Y = v.X*m.Data[0+1] + v.Y*m.Data[4+1] + v.Z*m.Data[8+1] + 1.0*m.Data[12+1]
	out.Z = v.X*m.Data[0+2] + v.Y*m.Data[4+2] + v.Z*m.Data[8+2] + 1.0*m.Data[12+2]
	return out
}

// XYZ and WithXYZ make Vec3 a Point.
func (v Vec3) XYZ() Vec3 {
	return v
}

func (v Vec3) WithXYZ(xyz Vec3) Vec3 {
	return xyz
}

func (v Vec3) String() string {
	return fmt.Sprintf("V3(%g, %g, %g)", v.X, v.Y, v.Z)
}

// ------------------------------------------
// Vector 4
// ------------------------------------------

/**
 * @brief Creates and returns a new 4-element vector using the supplied values.
 */
func NewVec4(x, y, z, w float32) Vec4 {
	return Vec4{x, y, z, w}
}

/**
 * @brief Returns a new vec3 containing the x, y and z components of the
 * supplied vec4, essentially dropping the w component.
 */
func (v Vec4) ToVec3() Vec3 {
	return Vec3{v.X, v.Y, v.Z}
}

func NewVec4FromVec3(v Vec3, w float32) Vec4 {
	return Vec4{v.X, v.Y, v.Z, w}
}

func NewVec4Zero() Vec4 {
	return Vec4{0.0, 0.0, 0.0, 0.0}
}

func NewVec4One() Vec4 {
	return Vec4{1.0, 1.0, 1.0, 1.0}
}

func (v Vec4) Add(other Vec4) Vec4 {
	return Vec4{
		v.X + other.X,
		v.Y + other.Y,
		v.Z + other.Z,
		v.W + other.W}
}

func (v Vec4) Sub(other Vec4) Vec4 {
	return Vec4{
		v.X - other.X,
		v.Y - other.Y,
		v.Z - other.Z,
		v.W - other.W}
}

func (v Vec4) Mul(other Vec4) Vec4 {
	return Vec4{
		v.X * other.X,
		v.Y * other.Y,
		v.Z * other.Z,
		v.W * other.W}
}

func (v Vec4) MulScalar(scalar float32) Vec4 {
	return Vec4{
		v.X * scalar,
		v.Y * scalar,
		v.Z * scalar,
		v.W * scalar}
}

func (v Vec4) LengthSquared() float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z + v.W*v.W
}

func (v Vec4) Length() float32 {
	return ksqrt(v.LengthSquared())
}

func (v Vec4) Lerp(proportion float32, other Vec4) Vec4 {
	return Vec4{
		v.X + (other.X-v.X)*proportion,
		v.Y + (other.Y-v.Y)*proportion,
		v.Z + (other.Z-v.Z)*proportion,
		v.W + (other.W-v.W)*proportion}
}

func (v Vec4) Compare(other Vec4, tolerance float32) bool {
	if kabs(v.X-other.X) > tolerance {
		return false
	}

	if kabs(v.Y-other.Y) > tolerance {
		return false
	}

	if kabs(v.Z-other.Z) > tolerance {
		return false
	}

	if kabs(v.W-other.W) > tolerance {
		return false
	}

	return true
}

func (v Vec4) XYZ() Vec3 {
	return v.ToVec3()
}

// WithXYZ replaces the x, y and z components and keeps w.
func (v Vec4) WithXYZ(xyz Vec3) Vec4 {
	return Vec4{xyz.X, xyz.Y, xyz.Z, v.W}
}

func (v Vec4) String() string {
	return fmt.Sprintf("V4(%g, %g, %g, %g)", v.X, v.Y, v.Z, v.W)
}
