package core

import (
	"sync"
	"time"
)

const AVG_COUNT uint8 = 30

// MetricsState keeps a rolling average over the last AVG_COUNT scene
// evaluations.
type MetricsState struct {
	AVGCounter  uint8
	MStimes     [AVG_COUNT]float64
	MSavg       float64
	Evaluations uint64
	Queries     uint64
	mutex       sync.Mutex
}

var onceMetrics sync.Once
var metricsState *MetricsState = nil

func MetricsInitialize() error {
	onceMetrics.Do(func() {
		metricsState = &MetricsState{
			MStimes: [AVG_COUNT]float64{0},
		}
	})
	return nil
}

// MetricsUpdate records one evaluation that ran queryCount queries in elapsed.
func MetricsUpdate(elapsed time.Duration, queryCount int) {
	if metricsState == nil {
		_ = MetricsInitialize()
	}
	metricsState.mutex.Lock()
	defer metricsState.mutex.Unlock()

	ms := float64(elapsed.Microseconds()) / 1000.0
	metricsState.MStimes[metricsState.AVGCounter] = ms
	metricsState.Evaluations++
	metricsState.Queries += uint64(queryCount)

	samples := uint64(AVG_COUNT)
	if metricsState.Evaluations < samples {
		samples = metricsState.Evaluations
	}
	sum := 0.0
	for i := uint64(0); i < samples; i++ {
		sum += metricsState.MStimes[i]
	}
	metricsState.MSavg = sum / float64(samples)

	metricsState.AVGCounter++
	metricsState.AVGCounter %= AVG_COUNT
}

// MetricsEvaluationTime returns the average evaluation time in milliseconds.
func MetricsEvaluationTime() float64 {
	if metricsState == nil {
		return 0
	}
	metricsState.mutex.Lock()
	defer metricsState.mutex.Unlock()
	return metricsState.MSavg
}

// MetricsTotals returns how many evaluations and queries have been recorded.
func MetricsTotals() (uint64, uint64) {
	if metricsState == nil {
		return 0, 0
	}
	metricsState.mutex.Lock()
	defer metricsState.mutex.Unlock()
	return metricsState.Evaluations, metricsState.Queries
}
