package scene

import (
	"fmt"
	"runtime"

	"github.com/google/uuid"

	"github.com/spaghettifunk/anima-geom/engine/core"
	"github.com/spaghettifunk/anima-geom/engine/math"
)

// Shape is a named hexahedron of a scene.
type Shape struct {
	ID         uint32
	Name       string
	Hexahedron math.Hexahedron[math.Vec3]
}

/**
 * @brief A set of named hexahedra and planes and the queries to run on
 * them. Every shape holds an engine identifier until Release is called.
 */
type Scene struct {
	Path string

	// level requested by the scene's [log] table, empty when unset
	logLevel string

	shapes  map[string]*Shape
	order   []string
	planes  map[string]math.Plane
	queries []QueryConfig
	workers int
}

// Load reads, validates and builds the scene stored at path.
func Load(path string) (*Scene, error) {
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}
	s, err := New(cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	s.Path = path
	return s, nil
}

// New builds a scene from an already decoded configuration.
func New(cfg *Config) (*Scene, error) {
	if cfg.Log.Level != "" {
		if err := core.ValidateLogLevel(cfg.Log.Level); err != nil {
			return nil, fmt.Errorf("%w: %w", core.ErrInvalidScene, err)
		}
	}

	s := &Scene{
		logLevel: cfg.Log.Level,
		shapes:   make(map[string]*Shape, len(cfg.Hexahedra)),
		planes:   make(map[string]math.Plane, len(cfg.Planes)),
		workers:  cfg.Workers,
	}
	if s.workers <= 0 {
		s.workers = runtime.NumCPU()
	}

	for i, hc := range cfg.Hexahedra {
		name := hc.Name
		if name == "" {
			name = uuid.NewString()
		}
		if _, exists := s.shapes[name]; exists {
			s.Release()
			return nil, fmt.Errorf("%w: hexahedron %q declared twice", core.ErrInvalidScene, name)
		}
		h, err := buildHexahedron(hc)
		if err != nil {
			s.Release()
			return nil, fmt.Errorf("hexahedron %d (%s): %w", i, name, err)
		}
		shape := &Shape{Name: name, Hexahedron: h}
		shape.ID = core.IdentifierAquireNewID(shape)
		s.shapes[name] = shape
		s.order = append(s.order, name)
		core.LogDebug("scene: hexahedron %s (id %d) %s", name, shape.ID, h)
	}

	for i, pc := range cfg.Planes {
		if pc.Name == "" {
			s.Release()
			return nil, fmt.Errorf("%w: plane %d has no name", core.ErrInvalidScene, i)
		}
		if _, exists := s.planes[pc.Name]; exists {
			s.Release()
			return nil, fmt.Errorf("%w: plane %q declared twice", core.ErrInvalidScene, pc.Name)
		}
		p, err := buildPlane(pc)
		if err != nil {
			s.Release()
			return nil, fmt.Errorf("plane %s: %w", pc.Name, err)
		}
		s.planes[pc.Name] = p
	}

	for i, qc := range cfg.Queries {
		if err := s.validateQuery(qc); err != nil {
			s.Release()
			return nil, fmt.Errorf("query %d: %w", i, err)
		}
	}
	s.queries = cfg.Queries

	core.LogInfo("scene: %d hexahedra, %d planes, %d queries", len(s.shapes), len(s.planes), len(s.queries))
	return s, nil
}

// Release gives back the identifiers of every shape.
func (s *Scene) Release() {
	for _, name := range s.order {
		shape := s.shapes[name]
		if err := core.IdentifierReleaseID(shape.ID); err != nil {
			core.LogWarn("scene: %s", err)
		}
	}
	s.shapes = map[string]*Shape{}
	s.order = nil
}

func (s *Scene) Shape(name string) (*Shape, error) {
	shape, ok := s.shapes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", core.ErrUnknownShape, name)
	}
	return shape, nil
}

// Shapes returns the shapes in declaration order.
func (s *Scene) Shapes() []*Shape {
	out := make([]*Shape, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, s.shapes[name])
	}
	return out
}

func (s *Scene) Plane(name string) (math.Plane, error) {
	p, ok := s.planes[name]
	if !ok {
		return math.ZeroPlane, fmt.Errorf("%w: plane %q", core.ErrUnknownShape, name)
	}
	return p, nil
}

func (s *Scene) Queries() []QueryConfig {
	return s.queries
}

// LogLevel is the level asked for by the scene file, or "" if it names none.
// Building a scene never changes the engine logger; callers decide.
func (s *Scene) LogLevel() string {
	return s.logLevel
}

func (s *Scene) validateQuery(q QueryConfig) error {
	if _, err := s.Shape(q.A); err != nil {
		return err
	}
	switch q.Kind {
	case QueryIntersection:
		_, err := s.Shape(q.B)
		return err
	case QueryContains:
		_, err := vec3(q.Point, "point")
		return err
	case QueryRelation, QueryProject:
		_, err := s.Plane(q.Plane)
		return err
	case QueryPlanes:
		return nil
	default:
		return fmt.Errorf("%w: %q", core.ErrUnknownQuery, q.Kind)
	}
}

func buildHexahedron(hc HexahedronConfig) (math.Hexahedron[math.Vec3], error) {
	var h math.Hexahedron[math.Vec3]

	forms := 0
	if len(hc.Vertices) > 0 {
		forms++
	}
	if hc.CornerA != nil || hc.CornerG != nil {
		forms++
	}
	if hc.Center != nil || hc.Size != nil {
		forms++
	}
	if forms > 1 {
		return h, fmt.Errorf("%w: use only one of vertices, corners or center and size", core.ErrInvalidScene)
	}

	switch {
	case len(hc.Vertices) > 0:
		if len(hc.Vertices) != 8 {
			return h, fmt.Errorf("%w: vertices needs 8 points, got %d", core.ErrInvalidScene, len(hc.Vertices))
		}
		var vs [8]math.Vec3
		for i, raw := range hc.Vertices {
			v, err := vec3(raw, fmt.Sprintf("vertices[%d]", i))
			if err != nil {
				return h, err
			}
			vs[i] = v
		}
		h = math.NewHexahedron(vs[0], vs[1], vs[2], vs[3], vs[4], vs[5], vs[6], vs[7])
	case hc.CornerA != nil || hc.CornerG != nil:
		a, err := vec3(hc.CornerA, "corner_a")
		if err != nil {
			return h, err
		}
		g, err := vec3(hc.CornerG, "corner_g")
		if err != nil {
			return h, err
		}
		h = math.NewHexahedronFromCorners(a, g)
	case hc.Center != nil || hc.Size != nil:
		center, err := vec3(hc.Center, "center")
		if err != nil {
			return h, err
		}
		size, err := vec3(hc.Size, "size")
		if err != nil {
			return h, err
		}
		h = math.NewHexahedronFromCenter(center, size.X, size.Y, size.Z)
	default:
		h = math.UnitCube3()
	}

	if hc.Transform != nil {
		t, pivot, err := buildTransform(*hc.Transform, h)
		if err != nil {
			return h, err
		}
		h = math.TransformHexahedron(t, h, pivot)
	}
	return h, nil
}

func buildTransform(tc TransformConfig, h math.Hexahedron[math.Vec3]) (*math.Transform, math.Vec3, error) {
	t := math.TransformIdentity()
	pivot := h.Center()

	if tc.Scale != nil {
		scale, err := vec3(tc.Scale, "transform.scale")
		if err != nil {
			return nil, pivot, err
		}
		t.SetScale(scale)
	}
	if tc.Rotation != nil {
		axis, err := vec3(tc.Rotation.Axis, "transform.rotation.axis")
		if err != nil {
			return nil, pivot, err
		}
		if axis.IsZero() {
			return nil, pivot, fmt.Errorf("%w: transform.rotation.axis is the zero vector", core.ErrInvalidScene)
		}
		t.SetRotation(math.NewQuatFromAxisAngle(axis.Normalize(), math.DegToRad(tc.Rotation.Degrees), true))
	}
	if tc.Translation != nil {
		translation, err := vec3(tc.Translation, "transform.translation")
		if err != nil {
			return nil, pivot, err
		}
		t.SetPosition(translation)
	}
	if tc.Pivot != nil {
		p, err := vec3(tc.Pivot, "transform.pivot")
		if err != nil {
			return nil, pivot, err
		}
		pivot = p
	}
	return t, pivot, nil
}

func buildPlane(pc PlaneConfig) (math.Plane, error) {
	if pc.Equation != nil {
		if pc.Point != nil || pc.Normal != nil {
			return math.ZeroPlane, fmt.Errorf("%w: use either equation or point and normal", core.ErrInvalidScene)
		}
		if len(pc.Equation) != 4 {
			return math.ZeroPlane, fmt.Errorf("%w: equation needs 4 values, got %d", core.ErrInvalidScene, len(pc.Equation))
		}
		e := pc.Equation
		return math.NewPlane(e[0], e[1], e[2], e[3]), nil
	}
	point, err := vec3(pc.Point, "point")
	if err != nil {
		return math.ZeroPlane, err
	}
	normal, err := vec3(pc.Normal, "normal")
	if err != nil {
		return math.ZeroPlane, err
	}
	return math.NewPlaneFromPointNormal(point, normal), nil
}

func vec3(raw []float32, field string) (math.Vec3, error) {
	if len(raw) != 3 {
		return math.Vec3{}, fmt.Errorf("%w: %s needs 3 values, got %d", core.ErrInvalidScene, field, len(raw))
	}
	return math.NewVec3(raw[0], raw[1], raw[2]), nil
}
