// Package export writes hexahedra to mesh files.
package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/spaghettifunk/anima-geom/engine/core"
	"github.com/spaghettifunk/anima-geom/engine/math"
	"github.com/spaghettifunk/anima-geom/engine/scene"
)

// Triangles returns the 12 triangles of the hexahedron, wound so their
// normals point outwards.
func Triangles(h math.Hexahedron[math.Vec3]) ([]*sdf.Triangle3, error) {
	g, err := math.NewHexahedronGeometry(h, math.NewVec4One())
	if err != nil {
		return nil, err
	}

	mesh := make([]*sdf.Triangle3, 0, len(g.Indices)/3)
	for i := 0; i+2 < len(g.Indices); i += 3 {
		var tri sdf.Triangle3
		for j := 0; j < 3; j++ {
			p := g.Vertices[g.Indices[i+j]].Position
			tri[j] = v3.Vec{X: float64(p.X), Y: float64(p.Y), Z: float64(p.Z)}
		}
		mesh = append(mesh, &tri)
	}
	return mesh, nil
}

// SaveSTL writes the hexahedron as an STL file.
func SaveSTL(path string, h math.Hexahedron[math.Vec3]) error {
	mesh, err := Triangles(h)
	if err != nil {
		return fmt.Errorf("export %s: %w", path, err)
	}
	if err := render.SaveSTL(path, mesh); err != nil {
		return fmt.Errorf("export %s: %w", path, err)
	}
	core.LogDebug("export: wrote %d triangles to %s", len(mesh), path)
	return nil
}

/**
 * @brief Writes one <name>.stl file per shape of the scene into dir and
 * returns the written paths. Degenerate shapes are skipped with a warning.
 */
func Scene(dir string, s *scene.Scene) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	var paths []string
	for _, shape := range s.Shapes() {
		if shape.Hexahedron.IsDegenerate() {
			core.LogWarn("export: skipping %s, %s", shape.Name, core.ErrDegenerateHexahedron)
			continue
		}
		path := filepath.Join(dir, shape.Name+".stl")
		if err := SaveSTL(path, shape.Hexahedron); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	core.LogInfo("export: wrote %d files to %s", len(paths), dir)
	return paths, nil
}
