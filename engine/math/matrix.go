package math

// Matrices use the engine's row-vector convention: a point p is transformed
// as p * M, so A.Mul(B) applies A first and B second.

// ------------------------------------------
// Matrix 3x3
// ------------------------------------------

/**
 * @brief Creates and returns an identity 3x3 matrix.
 */
func NewMat3Identity() Mat3 {
	out_matrix := Mat3{}
	out_matrix.Data[0] = 1.0
	out_matrix.Data[4] = 1.0
	out_matrix.Data[8] = 1.0
	return out_matrix
}

/**
 * @brief Creates a scaling matrix with the given scale along each axis.
 */
func NewMat3Scale(scale Vec3) Mat3 {
	out_matrix := Mat3{}
	out_matrix.Data[0] = scale.X
	out_matrix.Data[4] = scale.Y
	out_matrix.Data[8] = scale.Z
	return out_matrix
}

/**
 * @brief Creates a rotation matrix equivalent to the provided quaternion.
 * The quaternion is not normalized first, a null quaternion produces a
 * matrix that collapses every vector to the origin.
 */
func NewMat3Rotation(q Quaternion) Mat3 {
	xx, yy, zz := q.X*q.X, q.Y*q.Y, q.Z*q.Z
	xy, xz, yz := q.X*q.Y, q.X*q.Z, q.Y*q.Z
	wx, wy, wz := q.W*q.X, q.W*q.Y, q.W*q.Z
	ww := q.W * q.W

	out_matrix := Mat3{}
	out_matrix.Data[0] = ww + xx - yy - zz
	out_matrix.Data[1] = 2.0 * (xy + wz)
	out_matrix.Data[2] = 2.0 * (xz - wy)

	out_matrix.Data[3] = 2.0 * (xy - wz)
	out_matrix.Data[4] = ww - xx + yy - zz
	out_matrix.Data[5] = 2.0 * (yz + wx)

	out_matrix.Data[6] = 2.0 * (xz + wy)
	out_matrix.Data[7] = 2.0 * (yz - wx)
	out_matrix.Data[8] = ww - xx - yy + zz
	return out_matrix
}

func (mt Mat3) Mul(other Mat3) Mat3 {
	out_matrix := Mat3{}
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			sum := float32(0)
			for i := 0; i < 3; i++ {
				sum += mt.Data[row*3+i] * other.Data[i*3+col]
			}
			out_matrix.Data[row*3+col] = sum
		}
	}
	return out_matrix
}

// MulVec3 transforms v by the matrix.
func (mt Mat3) MulVec3(v Vec3) Vec3 {
	return Vec3{
		v.X*mt.Data[0] + v.Y*mt.Data[3] + v.Z*mt.Data[6],
		v.X*mt.Data[1] + v.Y*mt.Data[4] + v.Z*mt.Data[7],
		v.X*mt.Data[2] + v.Y*mt.Data[5] + v.Z*mt.Data[8]}
}

// ToMat4 embeds the matrix in the upper left corner of an identity 4x4.
func (mt Mat3) ToMat4() Mat4 {
	out_matrix := NewMat4Identity()
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			out_matrix.Data[row*4+col] = mt.Data[row*3+col]
		}
	}
	return out_matrix
}

// ------------------------------------------
// Matrix 4x4
// ------------------------------------------

/**
 * @brief Creates and returns an identity matrix:
 *
 * {
 *   {1, 0, 0, 0},
 *   {0, 1, 0, 0},
 *   {0, 0, 1, 0},
 *   {0, 0, 0, 1}
 * }
 *
 * @return A new identity matrix
 */
func NewMat4Identity() Mat4 {
	out_matrix := Mat4{}
	out_matrix.Data[0] = 1.0
	out_matrix.Data[5] = 1.0
	out_matrix.Data[10] = 1.0
	out_matrix.Data[15] = 1.0
	return out_matrix
}

/**
 * @brief Returns the result of multiplying matrix_0 and matrix_1.
 *
 * @param matrix_0 The first matrix to be multiplied.
 * @param matrix_1 The second matrix to be multiplied.
 * @return The result of the matrix multiplication.
 */
func (mt Mat4) Mul(other Mat4) Mat4 {
	out_matrix := Mat4{}

	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			sum := float32(0)
			for i := 0; i < 4; i++ {
				sum += mt.Data[row*4+i] * other.Data[i*4+col]
			}
			out_matrix.Data[row*4+col] = sum
		}
	}

	return out_matrix
}

// Transposed returns a transposed copy of the matrix.
func (mt Mat4) Transposed() Mat4 {
	out_matrix := Mat4{}
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			out_matrix.Data[col*4+row] = mt.Data[row*4+col]
		}
	}
	return out_matrix
}

/**
 * @brief Creates and returns an inverse of the provided matrix.
 *
 * @param matrix The matrix to be inverted.
 * @return A inverted copy of the provided matrix.
 */
func (mt Mat4) Inverse() Mat4 {
	m := mt.Data

	t0 := m[10] * m[15]
	t1 := m[14] * m[11]
	t2 := m[6] * m[15]
	t3 := m[14] * m[7]
	t4 := m[6] * m[11]
	t5 := m[10] * m[7]
	t6 := m[2] * m[15]
	t7 := m[14] * m[3]
	t8 := m[2] * m[11]
	t9 := m[10] * m[3]
	t10 := m[2] * m[7]
	t11 := m[6] * m[3]
	t12 := m[8] * m[13]
	t13 := m[12] * m[9]
	t14 := m[4] * m[13]
	t15 := m[12] * m[5]
	t16 := m[4] * m[9]
	t17 := m[8] * m[5]
	t18 := m[0] * m[13]
	t19 := m[12] * m[1]
	t20 := m[0] * m[9]
	t21 := m[8] * m[1]
	t22 := m[0] * m[5]
	t23 := m[4] * m[1]

	out_matrix := Mat4{}
	o := &out_matrix.Data

	o[0] = (t0*m[5] + t3*m[9] + t4*m[13]) - (t1*m[5] + t2*m[9] + t5*m[13])
	o[1] = (t1*m[1] + t6*m[9] + t9*m[13]) - (t0*m[1] + t7*m[9] + t8*m[13])
	o[2] = (t2*m[1] + t7*m[5] + t10*m[13]) - (t3*m[1] + t6*m[5] + t11*m[13])
	o[3] = (t5*m[1] + t8*m[5] + t11*m[9]) - (t4*m[1] + t9*m[5] + t10*m[9])

	d := 1.0 / (m[0]*o[0] + m[4]*o[1] + m[8]*o[2] + m[12]*o[3])

	o[0] = d * o[0]
	o[1] = d * o[1]
	o[2] = d * o[2]
	o[3] = d * o[3]
	o[4] = d * ((t1*m[4] + t2*m[8] + t5*m[12]) - (t0*m[4] + t3*m[8] + t4*m[12]))
	o[5] = d * ((t0*m[0] + t7*m[8] + t8*m[12]) - (t1*m[0] + t6*m[8] + t9*m[12]))
	o[6] = d * ((t3*m[0] + t6*m[4] + t11*m[12]) - (t2*m[0] + t7*m[4] + t10*m[12]))
	o[7] = d * ((t4*m[0] + t9*m[4] + t10*m[8]) - (t5*m[0] + t8*m[4] + t11*m[8]))
	o[8] = d * ((t12*m[7] + t15*m[11] + t16*m[15]) - (t13*m[7] + t14*m[11] + t17*m[15]))
	o[9] = d * ((t13*m[3] + t18*m[11] + t21*m[15]) - (t12*m[3] + t19*m[11] + t20*m[15]))
	o[10] = d * ((t14*m[3] + t19*m[7] + t22*m[15]) - (t15*m[3] + t18*m[7] + t23*m[15]))
	o[11] = d * ((t17*m[3] + t20*m[7] + t23*m[11]) - (t16*m[3] + t21*m[7] + t22*m[11]))
	o[12] = d * ((t14*m[10] + t17*m[14] + t13*m[6]) - (t16*m[14] + t12*m[6] + t15*m[10]))
	o[13] = d * ((t20*m[14] + t12*m[2] + t19*m[10]) - (t18*m[10] + t21*m[14] + t13*m[2]))
	o[14] = d * ((t18*m[6] + t23*m[14] + t15*m[2]) - (t22*m[14] + t14*m[2] + t19*m[6]))
	o[15] = d * ((t22*m[10] + t16*m[2] + t21*m[6]) - (t20*m[6] + t23*m[10] + t17*m[2]))

	return out_matrix
}

func NewMat4Translation(position Vec3) Mat4 {
	out_matrix := NewMat4Identity()
	out_matrix.Data[12] = position.X
	out_matrix.Data[13] = position.Y
	out_matrix.Data[14] = position.Z
	return out_matrix
}

func NewMat4Scale(scale Vec3) Mat4 {
	out_matrix := NewMat4Identity()
	out_matrix.Data[0] = scale.X
	out_matrix.Data[5] = scale.Y
	out_matrix.Data[10] = scale.Z
	return out_matrix
}

func NewMat4EulerX(angle_radians float32) Mat4 {
	out_matrix := NewMat4Identity()
	c := kcos(angle_radians)
	s := ksin(angle_radians)

	out_matrix.Data[5] = c
	out_matrix.Data[6] = s
	out_matrix.Data[9] = -s
	out_matrix.Data[10] = c
	return out_matrix
}

func NewMat4EulerY(angle_radians float32) Mat4 {
	out_matrix := NewMat4Identity()
	c := kcos(angle_radians)
	s := ksin(angle_radians)

	out_matrix.Data[0] = c
	out_matrix.Data[2] = -s
	out_matrix.Data[8] = s
	out_matrix.Data[10] = c
	return out_matrix
}

func NewMat4EulerZ(angle_radians float32) Mat4 {
	out_matrix := NewMat4Identity()
	c := kcos(angle_radians)
	s := ksin(angle_radians)

	out_matrix.Data[0] = c
	out_matrix.Data[1] = s
	out_matrix.Data[4] = -s
	out_matrix.Data[5] = c
	return out_matrix
}

// NewMat4EulerXYZ rotates around X first, then Y, then Z.
func NewMat4EulerXYZ(x_radians, y_radians, z_radians float32) Mat4 {
	rx := NewMat4EulerX(x_radians)
	ry := NewMat4EulerY(y_radians)
	rz := NewMat4EulerZ(z_radians)
	out_matrix := rx.Mul(ry)
	out_matrix = out_matrix.Mul(rz)
	return out_matrix
}

/**
 * @brief Creates a transformation matrix that scales, then rotates, then
 * translates a point.
 */
func NewMat4Transformation(translation Vec3, rotation Quaternion, scale Vec3) Mat4 {
	out_matrix := NewMat4Scale(scale)
	out_matrix = out_matrix.Mul(rotation.ToMat4())
	return out_matrix.Mul(NewMat4Translation(translation))
}

func (mt Mat4) Compare(other Mat4, tolerance float32) bool {
	for i := range mt.Data {
		if kabs(mt.Data[i]-other.Data[i]) > tolerance {
			return false
		}
	}
	return true
}
