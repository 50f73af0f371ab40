package scene

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/anima-geom/engine/core"
	"github.com/spaghettifunk/anima-geom/engine/math"
)

func TestLoad(t *testing.T) {
	s, err := Load("testdata/scene.toml")
	require.NoError(t, err)
	defer s.Release()

	assert.Equal(t, "info", s.LogLevel())

	shapes := s.Shapes()
	require.Len(t, shapes, 5)
	assert.Equal(t, "crate", shapes[0].Name)
	assert.Equal(t, math.UnitCube3(), shapes[0].Hexahedron)

	far, err := s.Shape("far")
	require.NoError(t, err)
	assert.True(t, far.Hexahedron.Center().Compare(math.Vec3{X: 10}, 1e-5))

	spun, err := s.Shape("spun")
	require.NoError(t, err)
	e := spun.Hexahedron.Extents()
	assert.True(t, e.Min.Compare(math.Vec3{X: 2.5, Y: -0.5, Z: -1}, 1e-5), "min %s", e.Min)
	assert.True(t, e.Max.Compare(math.Vec3{X: 3.5, Y: 0.5, Z: 1}, 1e-5), "max %s", e.Max)

	ceiling, err := s.Plane("ceiling")
	require.NoError(t, err)
	assert.Equal(t, math.Plane{A: 0, B: 1, C: 0, D: -2}, ceiling)

	_, err = s.Shape("missing")
	assert.ErrorIs(t, err, core.ErrUnknownShape)

	ids := map[uint32]bool{}
	for _, shape := range shapes {
		assert.False(t, ids[shape.ID], "id %d handed out twice", shape.ID)
		ids[shape.ID] = true
	}
}

func TestEvaluate(t *testing.T) {
	s, err := Load("testdata/scene.toml")
	require.NoError(t, err)
	defer s.Release()

	results, err := s.Evaluate()
	require.NoError(t, err)
	require.Len(t, results, 9)

	values := []string{"true", "false", "true", "both sides", "negative side"}
	for i, v := range values {
		require.NoError(t, results[i].Err, results[i].String())
		assert.Equal(t, v, results[i].Value, results[i].Query.String())
	}

	require.NoError(t, results[5].Err)
	assert.True(t, strings.HasPrefix(results[5].Value, "HX(a(V3(-0.5, 0, 0.5))"), results[5].Value)

	require.NoError(t, results[6].Err)
	assert.Equal(t, 6, strings.Count(results[6].Value, "PL("), results[6].Value)
	assert.Equal(t, 6, strings.Count(results[6].Value, "-0.5)"), results[6].Value)

	assert.ErrorIs(t, results[7].Err, core.ErrNullPlane)
	assert.ErrorIs(t, results[8].Err, core.ErrDegenerateHexahedron)
	assert.Contains(t, results[8].String(), "error")

	evaluations, _ := core.MetricsTotals()
	assert.NotZero(t, evaluations)
}

func TestNewInvalid(t *testing.T) {
	tests := []struct {
		name     string
		scene    string
		expected error
	}{
		{"unknown field", "colour = 1", core.ErrInvalidScene},
		{"bad log level", "[log]\nlevel = \"loud\"", core.ErrInvalidScene},
		{"duplicate shape", "[[hexahedron]]\nname = \"a\"\n[[hexahedron]]\nname = \"a\"", core.ErrInvalidScene},
		{"two forms", "[[hexahedron]]\ncenter = [0.0, 0.0, 0.0]\ncorner_a = [0.0, 0.0, 0.0]", core.ErrInvalidScene},
		{"short vector", "[[hexahedron]]\ncenter = [0.0, 0.0]\nsize = [1.0, 1.0, 1.0]", core.ErrInvalidScene},
		{"seven vertices", "[[hexahedron]]\nvertices = [[0.0,0.0,0.0],[0.0,0.0,0.0],[0.0,0.0,0.0],[0.0,0.0,0.0],[0.0,0.0,0.0],[0.0,0.0,0.0],[0.0,0.0,0.0]]", core.ErrInvalidScene},
		{"zero axis", "[[hexahedron]]\n[hexahedron.transform]\nrotation = { axis = [0.0, 0.0, 0.0], degrees = 10.0 }", core.ErrInvalidScene},
		{"plane without name", "[[plane]]\nequation = [0.0, 1.0, 0.0, 0.0]", core.ErrInvalidScene},
		{"unknown shape", "[[query]]\nkind = \"planes\"\na = \"ghost\"", core.ErrUnknownShape},
		{"unknown plane", "[[hexahedron]]\nname = \"a\"\n[[query]]\nkind = \"relation\"\na = \"a\"\nplane = \"ghost\"", core.ErrUnknownShape},
		{"unknown kind", "[[hexahedron]]\nname = \"a\"\n[[query]]\nkind = \"volume\"\na = \"a\"", core.ErrUnknownQuery},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseConfig([]byte(tt.scene))
			if err == nil {
				_, err = New(cfg)
			}
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestSceneLogLevel(t *testing.T) {
	require.NoError(t, core.SetLogLevel("warn"))
	defer core.SetLogLevel("info")

	cfg, err := ParseConfig([]byte("[log]\nlevel = \"debug\"\n"))
	require.NoError(t, err)
	s, err := New(cfg)
	require.NoError(t, err)
	defer s.Release()

	assert.Equal(t, "debug", s.LogLevel())
	assert.Equal(t, "warn", core.LogLevel(), "building a scene must leave the logger alone")

	s2, err := New(&Config{})
	require.NoError(t, err)
	defer s2.Release()
	assert.Empty(t, s2.LogLevel())
}

func TestUnnamedShapes(t *testing.T) {
	cfg, err := ParseConfig([]byte("[[hexahedron]]\n[[hexahedron]]\n"))
	require.NoError(t, err)
	s, err := New(cfg)
	require.NoError(t, err)
	defer s.Release()

	shapes := s.Shapes()
	require.Len(t, shapes, 2)
	assert.NotEmpty(t, shapes[0].Name)
	assert.NotEqual(t, shapes[0].Name, shapes[1].Name)

	results, err := s.Evaluate()
	require.NoError(t, err)
	assert.Empty(t, results)
}

const watchedScene = `
[[hexahedron]]
name = "a"

[[hexahedron]]
name = "b"
center = [%s, 0.0, 0.0]
size = [1.0, 1.0, 1.0]

[[query]]
kind = "intersection"
a = "a"
b = "b"
`

func waitFor(t *testing.T, w *Watcher, value string) Report {
	t.Helper()
	timeout := time.After(5 * time.Second)
	for {
		select {
		case r, ok := <-w.Reports():
			require.True(t, ok, "reports closed")
			if r.Err == nil && len(r.Results) == 1 && r.Results[0].Value == value {
				return r
			}
		case <-timeout:
			t.Fatalf("no report with value %q", value)
		}
	}
}

func TestWatcher(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.toml")
	require.NoError(t, os.WriteFile(path, []byte(strings.Replace(watchedScene, "%s", "0.5", 1)), 0o644))

	w, err := NewWatcher(path)
	require.NoError(t, err)

	waitFor(t, w, "true")

	require.NoError(t, os.WriteFile(path, []byte(strings.Replace(watchedScene, "%s", "5.0", 1)), 0o644))
	waitFor(t, w, "false")

	assert.GreaterOrEqual(t, len(w.History()), 2)

	require.NoError(t, w.Close())
	assert.Error(t, w.Close())

	// Drained and closed after Close.
	for range w.Reports() {
	}
}
