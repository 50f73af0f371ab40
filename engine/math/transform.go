package math

// NewTransform creates a transform with the given position, rotation and scale.
func NewTransform(position Vec3, rotation Quaternion, scale Vec3) *Transform {
	t := &Transform{}
	t.SetPositionRotationScale(position, rotation, scale)
	t.Local = NewMat4Identity()
	t.Parent = nil
	return t
}

// TransformIdentity returns a transform that leaves points untouched.
func TransformIdentity() *Transform {
	return NewTransform(NewVec3Zero(), NewQuatIdentity(), NewVec3One())
}

func (t *Transform) SetPosition(position Vec3) {
	t.Position = position
	t.IsDirty = true
}

func (t *Transform) Translate(translation Vec3) {
	t.Position = t.Position.Add(translation)
	t.IsDirty = true
}

func (t *Transform) SetRotation(rotation Quaternion) {
	t.Rotation = rotation
	t.IsDirty = true
}

// Rotate composes rotation after the current one.
func (t *Transform) Rotate(rotation Quaternion) {
	t.Rotation = rotation.Mul(t.Rotation)
	t.IsDirty = true
}

func (t *Transform) SetScale(scale Vec3) {
	t.Scale = scale
	t.IsDirty = true
}

func (t *Transform) ScaleBy(scale Vec3) {
	t.Scale = t.Scale.Mul(scale)
	t.IsDirty = true
}

func (t *Transform) SetPositionRotationScale(position Vec3, rotation Quaternion, scale Vec3) {
	t.Position = position
	t.Rotation = rotation
	t.Scale = scale
	t.IsDirty = true
}

/**
 * @brief Returns the local matrix of the transform: scale first, then
 * rotation, then translation. The matrix is cached until one of the
 * components changes.
 */
func (t *Transform) GetLocal() Mat4 {
	if t != nil {
		if t.IsDirty {
			t.Local = NewMat4Transformation(t.Position, t.Rotation, t.Scale)
			t.IsDirty = false
		}
		return t.Local
	}
	return NewMat4Identity()
}

/**
 * @brief Returns the local matrix followed by the world matrix of every
 * parent up the chain.
 */
func (t *Transform) GetWorld() Mat4 {
	if t != nil {
		l := t.GetLocal()
		if t.Parent != nil {
			p := t.Parent.GetWorld()
			return l.Mul(p)
		}
		return l
	}
	return NewMat4Identity()
}

// TransformHexahedron places h in the world by t, scaling and rotating
// around pivot.
func TransformHexahedron[P Point[P]](t *Transform, h Hexahedron[P], pivot P) Hexahedron[P] {
	return h.TransformWithPivot(t.GetWorld(), pivot)
}
