package systems

import (
	"fmt"
	"sync"

	"github.com/spaghettifunk/glpong/engine/core"
	"github.com/spaghettifunk/glpong/engine/renderer/metadata"
)

/**
 * @brief A fixed pool of worker goroutines draining two job queues, high
 * priority first. Used for the only asynchronous work there is: image decodes
 * and shader source loads.
 */
type JobSystem struct {
	numWorkers int
	highQueue  chan metadata.JobTask
	jobQueue   chan metadata.JobTask
	wg         sync.WaitGroup

	mutex  sync.RWMutex
	closed bool
}

var (
	ErrNegativeChannelSize = fmt.Errorf("attempting to create worker pool with a negative channel size")
	ErrJobQueueFull        = fmt.Errorf("job queue is full")
	ErrJobSystemShutdown   = fmt.Errorf("job system is shut down")
)

func NewJobSystem(numWorkers int, channelSize int) (*JobSystem, error) {
	if numWorkers <= 0 {
		return nil, fmt.Errorf("job system with %d workers: %w", numWorkers, core.ErrNoWorkers)
	}
	if channelSize < 0 {
		return nil, ErrNegativeChannelSize
	}

	js := &JobSystem{
		numWorkers: numWorkers,
		highQueue:  make(chan metadata.JobTask, channelSize),
		jobQueue:   make(chan metadata.JobTask, channelSize),
	}
	js.start()

	return js, nil
}

func (js *JobSystem) start() {
	for i := 0; i < js.numWorkers; i++ {
		js.wg.Add(1)
		go js.worker()
	}
}

// worker runs jobs until both queues are closed and drained. A nil channel
// never fires in a select, so a drained queue drops out.
func (js *JobSystem) worker() {
	defer js.wg.Done()
	high, normal := js.highQueue, js.jobQueue
	for high != nil || normal != nil {
		select {
		case job, ok := <-high:
			if !ok {
				high = nil
				continue
			}
			js.run(job)
			continue
		default:
		}

		select {
		case job, ok := <-high:
			if !ok {
				high = nil
				continue
			}
			js.run(job)
		case job, ok := <-normal:
			if !ok {
				normal = nil
				continue
			}
			js.run(job)
		}
	}
}

func (js *JobSystem) run(job metadata.JobTask) {
	out := make(chan interface{}, 1)
	if err := job.OnStart(job.InputParams, out); err != nil {
		core.LogError("job failed: %s", err)
		if job.OnFailure != nil {
			job.OnFailure(err)
		}
	} else if job.OnComplete != nil {
		var result interface{}
		select {
		case result = <-out:
		default:
		}
		job.OnComplete(result)
	}

	if job.OnCompletionCallback != nil {
		job.OnCompletionCallback()
	}
}

/**
 * @brief Shuts the job system down. Queued jobs still run; Shutdown returns once
 * every worker has exited.
 */
func (js *JobSystem) Shutdown() error {
	js.mutex.Lock()
	if js.closed {
		js.mutex.Unlock()
		return nil
	}
	js.closed = true
	close(js.highQueue)
	close(js.jobQueue)
	js.mutex.Unlock()

	js.wg.Wait()
	return nil
}

/**
 * @brief Submits the provided job to be queued for execution. Blocks while the
 * queue is full. Returns false once the system is shut down.
 * @param jt The description of the job to be executed.
 */
func (js *JobSystem) Submit(jt metadata.JobTask) bool {
	js.mutex.RLock()
	defer js.mutex.RUnlock()
	if js.closed {
		return false
	}
	if jt.Priority == metadata.JOB_PRIORITY_HIGH {
		js.highQueue <- jt
	} else {
		js.jobQueue <- jt
	}
	return true
}

/**
 * @brief Like Submit but never blocks: returns ErrJobQueueFull when the queue
 * has no room and ErrJobSystemShutdown once the system is shut down. Used on the
 * render thread.
 */
func (js *JobSystem) TrySubmit(jt metadata.JobTask) error {
	js.mutex.RLock()
	defer js.mutex.RUnlock()
	if js.closed {
		return ErrJobSystemShutdown
	}
	queue := js.jobQueue
	if jt.Priority == metadata.JOB_PRIORITY_HIGH {
		queue = js.highQueue
	}
	select {
	case queue <- jt:
		return nil
	default:
		return ErrJobQueueFull
	}
}
