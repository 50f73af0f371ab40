package scene

import (
	"bytes"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/spaghettifunk/anima-geom/engine/core"
)

// Query kinds understood by Evaluate.
const (
	QueryIntersection = "intersection"
	QueryContains     = "contains"
	QueryRelation     = "relation"
	QueryProject      = "project"
	QueryPlanes       = "planes"
)

/**
 * @brief The content of a scene file. A scene declares hexahedra and planes
 * by name and a list of queries to run against them.
 */
type Config struct {
	Log       LogConfig          `toml:"log"`
	Workers   int                `toml:"workers"`
	Hexahedra []HexahedronConfig `toml:"hexahedron"`
	Planes    []PlaneConfig      `toml:"plane"`
	Queries   []QueryConfig      `toml:"query"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

/**
 * @brief One hexahedron of the scene. Exactly one of vertices, corner_a and
 * corner_g, or center and size may be given; none of them means the unit
 * cube.
 */
type HexahedronConfig struct {
	Name      string           `toml:"name"`
	Vertices  [][]float32      `toml:"vertices"`
	CornerA   []float32        `toml:"corner_a"`
	CornerG   []float32        `toml:"corner_g"`
	Center    []float32        `toml:"center"`
	Size      []float32        `toml:"size"`
	Transform *TransformConfig `toml:"transform"`
}

// TransformConfig is applied as scale, then rotation, then translation.
type TransformConfig struct {
	Scale       []float32       `toml:"scale"`
	Rotation    *RotationConfig `toml:"rotation"`
	Translation []float32       `toml:"translation"`
	// Pivot of scale and rotation. Defaults to the center of the hexahedron.
	Pivot []float32 `toml:"pivot"`
}

type RotationConfig struct {
	Axis    []float32 `toml:"axis"`
	Degrees float32   `toml:"degrees"`
}

// PlaneConfig is either an equation (a, b, c, d) or a point and a normal.
type PlaneConfig struct {
	Name     string    `toml:"name"`
	Equation []float32 `toml:"equation"`
	Point    []float32 `toml:"point"`
	Normal   []float32 `toml:"normal"`
}

type QueryConfig struct {
	Kind  string    `toml:"kind"`
	A     string    `toml:"a"`
	B     string    `toml:"b"`
	Point []float32 `toml:"point"`
	Plane string    `toml:"plane"`
}

// ParseConfig decodes a scene. Unknown keys are rejected.
func ParseConfig(data []byte) (*Config, error) {
	cfg := &Config{}
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", core.ErrInvalidScene, err)
	}
	return cfg, nil
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (q QueryConfig) String() string {
	switch q.Kind {
	case QueryIntersection:
		return fmt.Sprintf("%s(%s, %s)", q.Kind, q.A, q.B)
	case QueryContains:
		return fmt.Sprintf("%s(%s, %v)", q.Kind, q.A, q.Point)
	case QueryRelation, QueryProject:
		return fmt.Sprintf("%s(%s, %s)", q.Kind, q.A, q.Plane)
	default:
		return fmt.Sprintf("%s(%s)", q.Kind, q.A)
	}
}
