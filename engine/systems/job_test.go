package systems

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/spaghettifunk/glpong/engine/core"
	"github.com/spaghettifunk/glpong/engine/renderer/metadata"
)

func TestNewJobSystemValidation(t *testing.T) {
	if _, err := NewJobSystem(0, 1); !errors.Is(err, core.ErrNoWorkers) {
		t.Fatalf("err = %v, want ErrNoWorkers", err)
	}
	if _, err := NewJobSystem(1, -1); !errors.Is(err, ErrNegativeChannelSize) {
		t.Fatalf("err = %v, want ErrNegativeChannelSize", err)
	}
}

func TestJobSystemRunsCallbacks(t *testing.T) {
	js, err := NewJobSystem(2, 4)
	if err != nil {
		t.Fatal(err)
	}

	var (
		mu       sync.Mutex
		results  []interface{}
		failures []error
		finished atomic.Int32
	)
	boom := errors.New("boom")

	for i := 0; i < 4; i++ {
		fail := i%2 == 1
		js.Submit(metadata.JobTask{
			InputParams: i,
			OnStart: func(params interface{}, out chan<- interface{}) error {
				if fail {
					return boom
				}
				out <- params.(int) * 10
				return nil
			},
			OnComplete: func(result interface{}) {
				mu.Lock()
				defer mu.Unlock()
				results = append(results, result)
			},
			OnFailure: func(err error) {
				mu.Lock()
				defer mu.Unlock()
				failures = append(failures, err)
			},
			OnCompletionCallback: func() { finished.Add(1) },
		})
	}
	if err := js.Shutdown(); err != nil {
		t.Fatal(err)
	}

	if len(results) != 2 || len(failures) != 2 {
		t.Fatalf("results %v failures %v", results, failures)
	}
	for _, r := range results {
		if r != 0 && r != 20 {
			t.Fatalf("unexpected result %v", r)
		}
	}
	for _, err := range failures {
		if !errors.Is(err, boom) {
			t.Fatalf("failure = %v", err)
		}
	}
	if finished.Load() != 4 {
		t.Fatalf("completion callback ran %d times, want 4", finished.Load())
	}
}

func TestSubmitAfterShutdown(t *testing.T) {
	js, err := NewJobSystem(1, 0)
	if err != nil {
		t.Fatal(err)
	}
	js.Shutdown()
	js.Shutdown()

	ran := false
	ok := js.Submit(metadata.JobTask{OnStart: func(interface{}, chan<- interface{}) error {
		ran = true
		return nil
	}})
	if ok || ran {
		t.Fatalf("job accepted after shutdown")
	}
}

func TestHighPriorityJobsRunFirst(t *testing.T) {
	js, err := NewJobSystem(1, 4)
	if err != nil {
		t.Fatal(err)
	}

	started := make(chan struct{})
	release := make(chan struct{})
	js.Submit(metadata.JobTask{OnStart: func(interface{}, chan<- interface{}) error {
		close(started)
		<-release
		return nil
	}})
	<-started

	var order []string
	record := func(name string, priority metadata.JobPriority) metadata.JobTask {
		return metadata.JobTask{
			Priority: priority,
			OnStart: func(interface{}, chan<- interface{}) error {
				order = append(order, name)
				return nil
			},
		}
	}
	js.Submit(record("a", metadata.JOB_PRIORITY_NORMAL))
	js.Submit(record("b", metadata.JOB_PRIORITY_LOW))
	js.Submit(record("high", metadata.JOB_PRIORITY_HIGH))

	close(release)
	if err := js.Shutdown(); err != nil {
		t.Fatal(err)
	}

	if len(order) != 3 || order[0] != "high" || order[1] != "a" || order[2] != "b" {
		t.Fatalf("order = %v, want [high a b]", order)
	}
}

func TestTrySubmitNeverBlocks(t *testing.T) {
	js, err := NewJobSystem(1, 1)
	if err != nil {
		t.Fatal(err)
	}
	gate := make(chan struct{})
	started := make(chan struct{})
	blocker := metadata.JobTask{OnStart: func(interface{}, chan<- interface{}) error {
		close(started)
		<-gate
		return nil
	}}
	noop := metadata.JobTask{OnStart: func(interface{}, chan<- interface{}) error { return nil }}

	if err := js.TrySubmit(blocker); err != nil {
		t.Fatalf("first job: %v", err)
	}
	<-started
	if err := js.TrySubmit(noop); err != nil {
		t.Fatalf("second job: %v", err)
	}
	if err := js.TrySubmit(noop); !errors.Is(err, ErrJobQueueFull) {
		t.Fatalf("full queue: err = %v, want ErrJobQueueFull", err)
	}

	close(gate)
	js.Shutdown()
	if err := js.TrySubmit(noop); !errors.Is(err, ErrJobSystemShutdown) {
		t.Fatalf("after shutdown: err = %v, want ErrJobSystemShutdown", err)
	}
}
