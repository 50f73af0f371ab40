package systems

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJobSystemErrors(t *testing.T) {
	_, err := NewJobSystem(0, 1)
	assert.ErrorIs(t, err, ErrNoWorkers)

	_, err = NewJobSystem(1, -1)
	assert.ErrorIs(t, err, ErrNegativeChannelSize)
}

func TestJobSystem(t *testing.T) {
	js, err := NewJobSystem(4, 8)
	require.NoError(t, err)

	var completed, failed, done atomic.Int32
	var wg sync.WaitGroup
	boom := errors.New("boom")

	for i := 0; i < 20; i++ {
		wg.Add(1)
		fail := i%4 == 0
		task := JobTask{
			OnStart: func() error {
				if fail {
					return boom
				}
				return nil
			},
			OnComplete: func() { completed.Add(1) },
			OnFailure: func(err error) {
				assert.ErrorIs(t, err, boom)
				failed.Add(1)
			},
			OnCompletionCallback: func() {
				done.Add(1)
				wg.Done()
			},
		}
		if i%2 == 0 {
			js.Submit(task)
		} else {
			js.AddWorkNonBlocking(task)
		}
	}

	wg.Wait()
	require.NoError(t, js.Shutdown())
	assert.Equal(t, int32(15), completed.Load())
	assert.Equal(t, int32(5), failed.Load())
	assert.Equal(t, int32(20), done.Load())
}
