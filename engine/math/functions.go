package math

import (
	m "math"
	"sync"
	"time"

	"golang.org/x/exp/rand"
)

const (
	K_PI         float32 = 3.14159265358979323846
	K_PI_2       float32 = 2.0 * K_PI
	K_HALF_PI    float32 = 0.5 * K_PI
	K_QUARTER_PI float32 = 0.25 * K_PI
	/** @brief A multiplier used to convert degrees to radians. */
	K_DEG2RAD_MULTIPLIER float32 = K_PI / 180.0
	/** @brief A multiplier used to convert radians to degrees. */
	K_RAD2DEG_MULTIPLIER float32 = 180.0 / K_PI
	/** @brief Smallest positive number where 1.0 + FLOAT_EPSILON != 0 */
	K_FLOAT_EPSILON float32 = 1.192092896e-07
	/**
	 * @brief Tolerance of the geometric queries: containment, side tests
	 * and intersections. Points closer than this to a face are on it.
	 */
	K_GEOMETRY_EPSILON float32 = 1e-5
)

// float32 wrappers of the float64 math package.
func ksin(x float32) float32 {
	return float32(m.Sin(float64(x)))
}

func kcos(x float32) float32 {
	return float32(m.Cos(float64(x)))
}

func kacos(x float32) float32 {
	return float32(m.Acos(float64(x)))
}

func ksqrt(x float32) float32 {
	return float32(m.Sqrt(float64(x)))
}

func kabs(x float32) float32 {
	return float32(m.Abs(float64(x)))
}

// Shared source for the random helpers, seeded on first use.
var (
	randOnce   sync.Once
	randMutex  sync.Mutex
	randSource *rand.Rand
)

func krand() *rand.Rand {
	randOnce.Do(func() {
		randSource = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	})
	return randSource
}

// RandomInRange returns a pseudo random float in [min, max).
func RandomInRange(min, max float32) float32 {
	r := krand()
	randMutex.Lock()
	defer randMutex.Unlock()
	return min + r.Float32()*(max-min)
}

// RandomVec3InRange returns a vector whose components are each drawn from [min, max).
func RandomVec3InRange(min, max float32) Vec3 {
	return Vec3{RandomInRange(min, max), RandomInRange(min, max), RandomInRange(min, max)}
}

func DegToRad(degrees float32) float32 {
	return degrees * K_DEG2RAD_MULTIPLIER
}

func RadToDeg(radians float32) float32 {
	return radians * K_RAD2DEG_MULTIPLIER
}
