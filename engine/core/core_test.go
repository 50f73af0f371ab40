package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentifier(t *testing.T) {
	first := IdentifierAquireNewID("first")
	second := IdentifierAquireNewID("second")
	assert.NotEqual(t, first, second)

	require.NoError(t, IdentifierReleaseID(first))
	// Released slots are handed out again.
	assert.Equal(t, first, IdentifierAquireNewID("third"))

	assert.Error(t, IdentifierReleaseID(uint32(len(Owners))))
	require.NoError(t, IdentifierReleaseID(first))
	require.NoError(t, IdentifierReleaseID(second))
}

func TestMetrics(t *testing.T) {
	require.NoError(t, MetricsInitialize())
	evaluations, queries := MetricsTotals()

	MetricsUpdate(2*time.Millisecond, 3)
	MetricsUpdate(4*time.Millisecond, 1)

	e, q := MetricsTotals()
	assert.Equal(t, evaluations+2, e)
	assert.Equal(t, queries+4, q)
	assert.Greater(t, MetricsEvaluationTime(), 0.0)
}

func TestClock(t *testing.T) {
	c := NewClock()
	c.Update()
	assert.Zero(t, c.Elapsed())

	c.Start()
	time.Sleep(time.Millisecond)
	c.Update()
	elapsed := c.Elapsed()
	assert.GreaterOrEqual(t, elapsed, time.Millisecond)

	c.Stop()
	c.Update()
	assert.Equal(t, elapsed, c.Elapsed())
}

func TestSetLogLevel(t *testing.T) {
	require.NoError(t, SetLogLevel("DEBUG"))
	require.NoError(t, SetLogLevel("info"))
	assert.Error(t, SetLogLevel("loud"))
	assert.Equal(t, "info", LogLevel())

	assert.NoError(t, ValidateLogLevel("WARN"))
	assert.Error(t, ValidateLogLevel("loud"))
	assert.Equal(t, "info", LogLevel())
}
