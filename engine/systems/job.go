package systems

import (
	"fmt"
	"sync"

	"github.com/spaghettifunk/anima-geom/engine/core"
)

/**
 * @brief A unit of work run by the job system. OnStart does the work; its
 * error decides whether OnComplete or OnFailure is called. The completion
 * callback runs in every case.
 */
type JobTask struct {
	OnStart              func() error
	OnComplete           func()
	OnFailure            func(err error)
	OnCompletionCallback func()
}

type JobSystem struct {
	numWorkers int
	jobQueue   chan JobTask
	wg         sync.WaitGroup
}

var ErrNoWorkers = fmt.Errorf("attempting to create worker pool with less than 1 worker")
var ErrNegativeChannelSize = fmt.Errorf("attempting to create worker pool with a negative channel size")

func NewJobSystem(numWorkers int, channelSize int) (*JobSystem, error) {
	if numWorkers <= 0 {
		return nil, ErrNoWorkers
	}
	if channelSize < 0 {
		return nil, ErrNegativeChannelSize
	}

	jq := make(chan JobTask, channelSize)
	js := &JobSystem{
		numWorkers: numWorkers,
		jobQueue:   jq,
	}

	js.start()

	return js, nil
}

func (js *JobSystem) start() {
	for i := 0; i < js.numWorkers; i++ {
		js.wg.Add(1)
		go func() {
			defer js.wg.Done()
			for job := range js.jobQueue {
				js.run(job)
			}
		}()
	}
}

func (js *JobSystem) run(job JobTask) {
	if job.OnCompletionCallback != nil {
		defer job.OnCompletionCallback()
	}

	if err := job.OnStart(); err != nil {
		core.LogDebug("job failed: %s", err)
		if job.OnFailure != nil {
			job.OnFailure(err)
		}
		return
	}
	if job.OnComplete != nil {
		job.OnComplete()
	}
}

/**
 * @brief Shuts the job system down. Queued jobs are drained first.
 */
func (js *JobSystem) Shutdown() error {
	close(js.jobQueue)
	js.wg.Wait()
	return nil
}

// AddWorkNonBlocking queues the job and returns immediately.
func (js *JobSystem) AddWorkNonBlocking(jt JobTask) {
	go js.Submit(jt)
}

/**
 * @brief Submits the provided job to be queued for execution.
 * @param jt The description of the job to be executed.
 */
func (js *JobSystem) Submit(jt JobTask) {
	js.jobQueue <- jt
}
