package math

// ------------------------------------------
// Quaternion
// ------------------------------------------

func NewQuatIdentity() Quaternion {
	return Quaternion{0, 0, 0, 1.0}
}

// NewQuatNull returns the quaternion whose four components are zero.
func NewQuatNull() Quaternion {
	return Quaternion{}
}

/**
 * @brief Creates a quaternion from the given axis and angle.
 *
 * @param axis The axis of rotation.
 * @param angle The angle of rotation in radians.
 * @param normalize Indicates if the quaternion should be normalized.
 * @return A new quaternion.
 */
func NewQuatFromAxisAngle(axis Vec3, angle float32, normalize bool) Quaternion {
	half_angle := 0.5 * angle
	s := ksin(half_angle)
	c := kcos(half_angle)

	q := Quaternion{s * axis.X, s * axis.Y, s * axis.Z, c}
	if normalize {
		return q.Normalize()
	}
	return q
}

/**
 * @brief Creates a quaternion that rotates around X first, then Y, then Z.
 * Angles are in radians. Matches NewMat4EulerXYZ.
 */
func NewQuatFromEuler(x_radians, y_radians, z_radians float32) Quaternion {
	qx := NewQuatFromAxisAngle(NewVec3Right(), x_radians, false)
	qy := NewQuatFromAxisAngle(NewVec3Up(), y_radians, false)
	qz := NewQuatFromAxisAngle(NewVec3Back(), z_radians, false)
	return qz.Mul(qy).Mul(qx)
}

func (q Quaternion) Normal() float32 {
	return ksqrt(
		q.X*q.X +
			q.Y*q.Y +
			q.Z*q.Z +
			q.W*q.W)
}

func (q Quaternion) Normalize() Quaternion {
	normal := q.Normal()
	if normal == 0 {
		return q
	}
	return Quaternion{
		q.X / normal,
		q.Y / normal,
		q.Z / normal,
		q.W / normal}
}

func (q Quaternion) Conjugate() Quaternion {
	return Quaternion{-q.X, -q.Y, -q.Z, q.W}
}

func (q Quaternion) Inverse() Quaternion {
	c := q.Conjugate()
	return c.Normalize()
}

// Mul returns the Hamilton product q * other.
func (q Quaternion) Mul(other Quaternion) Quaternion {
	out_quaternion := Quaternion{}

	out_quaternion.X = q.X*other.W +
		q.Y*other.Z -
		q.Z*other.Y +
		q.W*other.X

	out_quaternion.Y = -q.X*other.Z +
		q.Y*other.W +
		q.Z*other.X +
		q.W*other.Y

	out_quaternion.Z = q.X*other.Y -
		q.Y*other.X +
		q.Z*other.W +
		q.W*other.Z

	out_quaternion.W = -q.X*other.X -
		q.Y*other.Y -
		q.Z*other.Z +
		q.W*other.W

	return out_quaternion
}

func (q Quaternion) Dot(other Quaternion) float32 {
	return q.X*other.X +
		q.Y*other.Y +
		q.Z*other.Z +
		q.W*other.W
}

func (q Quaternion) Compare(other Quaternion, tolerance float32) bool {
	return Vec4(q).Compare(Vec4(other), tolerance)
}

/**
 * @brief Rotates v by the quaternion using q * v * conjugate(q). A unit
 * quaternion performs a pure rotation; the null quaternion maps every
 * vector to the zero vector.
 */
func (q Quaternion) RotateVec3(v Vec3) Vec3 {
	p := Quaternion{v.X, v.Y, v.Z, 0}
	r := q.Mul(p).Mul(q.Conjugate())
	return Vec3{r.X, r.Y, r.Z}
}

/**
 * @brief Creates a rotation matrix from the given quaternion. The result
 * transforms points the same way RotateVec3 does for a unit quaternion.
 */
func (q Quaternion) ToMat4() Mat4 {
	n := q.Normalize()
	return NewMat3Rotation(n).ToMat4()
}

/**
 * @brief Calculates a spherical linear interpolation of a given percentage
 * between two quaternions.
 */
func (q Quaternion) Slerp(other Quaternion, percentage float32) Quaternion {
	// Source: https://en.Wikipedia.org/wiki/Slerp
	// Only unit quaternions are valid rotations.
	v0 := q.Normalize()
	v1 := other.Normalize()

	dot := v0.Dot(v1)

	// v1 and -v1 are the same rotation; take the shorter path.
	if dot < 0.0 {
		v1 = Quaternion{-v1.X, -v1.Y, -v1.Z, -v1.W}
		dot = -dot
	}

	DOT_THRESHOLD := float32(0.9995)
	if dot > DOT_THRESHOLD {
		// Too close for comfort, linearly interpolate and normalize.
		qt := Quaternion{
			v0.X + ((v1.X - v0.X) * percentage),
			v0.Y + ((v1.Y - v0.Y) * percentage),
			v0.Z + ((v1.Z - v0.Z) * percentage),
			v0.W + ((v1.W - v0.W) * percentage)}

		return qt.Normalize()
	}

	theta_0 := kacos(Clamp(dot, -1.0, 1.0))
	theta := theta_0 * percentage
	sin_theta := ksin(theta)
	sin_theta_0 := ksin(theta_0)

	s0 := kcos(theta) - dot*sin_theta/sin_theta_0 // == sin(theta_0 - theta) / sin(theta_0)
	s1 := sin_theta / sin_theta_0

	return Quaternion{
		(v0.X * s0) + (v1.X * s1),
		(v0.Y * s0) + (v1.Y * s1),
		(v0.Z * s0) + (v1.Z * s1),
		(v0.W * s0) + (v1.W * s1)}
}
