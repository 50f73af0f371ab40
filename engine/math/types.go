package math

// Vec2 represents a 2D vector
type Vec2 struct {
	X, Y float32
}

// Vec3 represents a 3D vector
type Vec3 struct {
	X, Y, Z float32
}

// Vec4 represents a 4D vector
type Vec4 struct {
	X, Y, Z, W float32
}

/** @brief A quaternion, used to represent rotational orientation. */
type Quaternion Vec4

/** @brief a 3x3 matrix, used to represent rotations and scales. */
type Mat3 struct {
	/** @brief The matrix elements, row by row */
	Data [9]float32
}

/** @brief a 4x4 matrix, typically used to represent object transformations. */
type Mat4 struct {
	/** @brief The matrix elements */
	Data [16]float32
}

/**
 * @brief A plane in 3d space described by the equation ax + by + cz + d = 0.
 * (A, B, C) is the normal of the plane.
 */
type Plane struct {
	A, B, C, D float32
}

/**
 * @brief Position of a shape with respect to a plane.
 */
type SpaceRelation uint8

const (
	/** @brief Every point of the shape belongs to the plane. */
	SpaceRelationContained SpaceRelation = iota
	/** @brief The shape lies on the side the normal points to. */
	SpaceRelationPositiveSide
	/** @brief The shape lies on the side opposite to the normal. */
	SpaceRelationNegativeSide
	/** @brief The plane cuts the shape. */
	SpaceRelationBothSides
)

/**
 * @brief Represents the extents of a 3d object.
 */
type Extents3D struct {
	/** @brief The minimum extents of the object. */
	Min Vec3
	/** @brief The maximum extents of the object. */
	Max Vec3
}

/**
 * @brief Represents a single vertex in 3D space.
 */
type Vertex3D struct {
	/** @brief The position of the vertex */
	Position Vec3
	/** @brief The normal of the vertex. */
	Normal Vec3
	/** @brief The texture coordinate of the vertex. */
	Texcoord Vec2
	/** @brief The colour of the vertex. */
	Colour Vec4
}

/**
 * @brief Scale, rotation and translation of a node, optionally relative to a
 * parent node. Change it through the Set and Rotate helpers of transform.go
 * so the cached local matrix is rebuilt.
 */
type Transform struct {
	Position Vec3
	Rotation Quaternion
	Scale    Vec3
	// IsDirty is set whenever Local no longer matches the fields above.
	IsDirty bool
	Local   Mat4
	// Parent is nil for a root node.
	Parent *Transform
}
