package math

import (
	"fmt"

	"github.com/spaghettifunk/anima-geom/engine/core"
)

/**
 * @brief The triangle mesh of a hexahedron, ready to be written out or
 * uploaded. Every face owns its four vertices so each one carries the face
 * normal.
 */
type Geometry struct {
	Vertices []Vertex3D
	Indices  []uint32
}

// GeometryGenerateNormals writes the flat face normal of every triangle into its vertices.
func GeometryGenerateNormals(vertices []Vertex3D, indices []uint32) {
	for i := 0; i+2 < len(indices); i += 3 {
		i0 := indices[i+0]
		i1 := indices[i+1]
		i2 := indices[i+2]

		edge1 := vertices[i1].Position.Sub(vertices[i0].Position)
		edge2 := vertices[i2].Position.Sub(vertices[i0].Position)

		normal := edge1.Cross(edge2).Normalized()

		// NOTE: flat shading only, faces never share vertices here.
		vertices[i0].Normal = normal
		vertices[i1].Normal = normal
		vertices[i2].Normal = normal
	}
}

/**
 * @brief Builds the mesh of h: 24 vertices (four per face) and 36 indices
 * (two triangles per face). Triangles wind so that their normals match the
 * outward normals returned by GetPlanes.
 */
func NewHexahedronGeometry[P Point[P]](h Hexahedron[P], colour Vec4) (*Geometry, error) {
	if h.IsDegenerate() {
		return nil, fmt.Errorf("geometry: %w", core.ErrDegenerateHexahedron)
	}

	planes := h.facePlanes()
	faces := h.faces()
	uvs := [4]Vec2{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

	g := &Geometry{
		Vertices: make([]Vertex3D, 0, 24),
		Indices:  make([]uint32, 0, 36),
	}
	for f, face := range faces {
		// Keep the winding of the face in agreement with its oriented plane.
		n := face[1].Sub(face[0]).Cross(face[2].Sub(face[0]))
		if !planes[f].IsNull() && n.Dot(planes[f].Normal()) < 0 {
			face[1], face[3] = face[3], face[1]
		}

		base := uint32(len(g.Vertices))
		for i, p := range face {
			g.Vertices = append(g.Vertices, Vertex3D{Position: p, Texcoord: uvs[i], Colour: colour})
		}
		g.Indices = append(g.Indices, base, base+1, base+2, base, base+2, base+3)
	}
	GeometryGenerateNormals(g.Vertices, g.Indices)

	core.LogDebug("geometry: built %d vertices, %d indices for %s", len(g.Vertices), len(g.Indices), h)
	return g, nil
}

func Vertex3dEqual(vert0 Vertex3D, vert1 Vertex3D) bool {
	return vert0.Position.Compare(vert1.Position, K_FLOAT_EPSILON) &&
		vert0.Normal.Compare(vert1.Normal, K_FLOAT_EPSILON) &&
		vert0.Texcoord.Compare(vert1.Texcoord, K_FLOAT_EPSILON) &&
		vert0.Colour.Compare(vert1.Colour, K_FLOAT_EPSILON)
}

func reassignIndex(indices []uint32, from uint32, to uint32) {
	for i := range indices {
		if indices[i] == from {
			indices[i] = to
		} else if indices[i] > from {
			// Pull in all indices higher than 'from' by 1.
			indices[i]--
		}
	}
}

/**
 * @brief Merges equal vertices and rewrites indices in place. Returns the
 * unique vertices. Only positions are compared when positionOnly is set,
 * which gives the 8 corners of a hexahedron mesh.
 */
func GeometryDeduplicateVertices(vertices []Vertex3D, indices []uint32, positionOnly bool) []Vertex3D {
	equal := Vertex3dEqual
	if positionOnly {
		equal = func(v0, v1 Vertex3D) bool {
			return v0.Position.Compare(v1.Position, K_FLOAT_EPSILON)
		}
	}

	uniqueVerts := make([]Vertex3D, 0, len(vertices))
	foundCount := uint32(0)

	for v := range vertices {
		found := false
		for u := range uniqueVerts {
			if equal(vertices[v], uniqueVerts[u]) {
				// Reassign indices, do not copy
				reassignIndex(indices, uint32(v)-foundCount, uint32(u))
				found = true
				foundCount++
				break
			}
		}

		if !found {
			uniqueVerts = append(uniqueVerts, vertices[v])
		}
	}

	core.LogDebug("geometry_deduplicate_vertices: removed %d vertices, orig/now %d/%d.", len(vertices)-len(uniqueVerts), len(vertices), len(uniqueVerts))
	return uniqueVerts
}
