package scene

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/spaghettifunk/anima-geom/engine/core"
	"github.com/spaghettifunk/anima-geom/engine/math"
	"github.com/spaghettifunk/anima-geom/engine/systems"
)

// Result is the outcome of one query. Err is set when the query could not be
// answered, for example on a degenerate hexahedron or a null plane.
type Result struct {
	Query QueryConfig
	Value string
	Err   error
}

func (r Result) String() string {
	if r.Err != nil {
		return fmt.Sprintf("%s: error: %s", r.Query, r.Err)
	}
	return fmt.Sprintf("%s: %s", r.Query, r.Value)
}

/**
 * @brief Runs every query of the scene on the job system and returns the
 * results in query order. A failing query does not stop the others.
 */
func (s *Scene) Evaluate() ([]Result, error) {
	results := make([]Result, len(s.queries))
	if len(s.queries) == 0 {
		return results, nil
	}

	clock := core.NewClock()
	clock.Start()

	js, err := systems.NewJobSystem(min(s.workers, len(s.queries)), len(s.queries))
	if err != nil {
		return nil, err
	}

	var wg sync.WaitGroup
	for i, q := range s.queries {
		wg.Add(1)
		results[i].Query = q
		js.Submit(systems.JobTask{
			OnStart: func() error {
				value, err := s.run(q)
				results[i].Value = value
				return err
			},
			OnFailure: func(err error) {
				results[i].Err = err
			},
			OnCompletionCallback: wg.Done,
		})
	}
	wg.Wait()
	if err := js.Shutdown(); err != nil {
		return nil, err
	}

	clock.Update()
	clock.Stop()
	core.MetricsUpdate(clock.Elapsed(), len(s.queries))
	core.LogDebug("scene: evaluated %d queries in %s (avg %.3fms)", len(s.queries), clock.Elapsed().Round(time.Microsecond), core.MetricsEvaluationTime())

	return results, nil
}

func (s *Scene) run(q QueryConfig) (string, error) {
	a, err := s.Shape(q.A)
	if err != nil {
		return "", err
	}

	switch q.Kind {
	case QueryIntersection:
		b, err := s.Shape(q.B)
		if err != nil {
			return "", err
		}
		ok, err := a.Hexahedron.Intersection(b.Hexahedron)
		if err != nil {
			return "", err
		}
		return fmt.Sprint(ok), nil

	case QueryContains:
		p, err := vec3(q.Point, "point")
		if err != nil {
			return "", err
		}
		ok, err := a.Hexahedron.Contains(p)
		if err != nil {
			return "", err
		}
		return fmt.Sprint(ok), nil

	case QueryRelation:
		plane, err := s.Plane(q.Plane)
		if err != nil {
			return "", err
		}
		relation, err := a.Hexahedron.SpaceRelation(plane)
		if err != nil {
			return "", err
		}
		return relation.String(), nil

	case QueryProject:
		plane, err := s.Plane(q.Plane)
		if err != nil {
			return "", err
		}
		projected, err := a.Hexahedron.ProjectToPlane(plane)
		if err != nil {
			return "", err
		}
		return projected.String(), nil

	case QueryPlanes:
		var planes [6]math.Plane
		if err := a.Hexahedron.GetPlanes(&planes); err != nil {
			return "", err
		}
		parts := make([]string, len(planes))
		for i, p := range planes {
			parts[i] = p.String()
		}
		return strings.Join(parts, ", "), nil

	default:
		return "", fmt.Errorf("%w: %q", core.ErrUnknownQuery, q.Kind)
	}
}
