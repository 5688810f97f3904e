package metadata

/** Definition for jobs. The result, if any, is sent on out before returning. */
type JobStart func(params interface{}, out chan<- interface{}) error

/** Definition for completion of a job. Receives whatever the entry point sent. */
type JobOnComplete func(result interface{})

/** Definition for failure of a job. */
type JobOnFail func(err error)

/**
 * @brief Determines which job queue a job uses. High priority jobs are picked
 * before any other queued job; low and normal share a queue.
 */
type JobPriority int

const (
	JOB_PRIORITY_LOW JobPriority = iota
	JOB_PRIORITY_NORMAL
	JOB_PRIORITY_HIGH
)

/**
 * @brief Describes a job to be run. Callbacks run on the worker goroutine, so
 * they must only hand results over (for example on a channel) and never touch
 * GPU state.
 */
type JobTask struct {
	/** @brief The priority of this job. */
	Priority JobPriority
	/** @brief Data to be passed to the entry point upon execution. */
	InputParams interface{}
	/** @brief Invoked when the job starts. Required. */
	OnStart JobStart
	/** @brief Invoked when the job successfully completes. Optional. */
	OnComplete JobOnComplete
	/** @brief Invoked when the job fails. Optional. */
	OnFailure JobOnFail
	/** @brief Invoked after either outcome. Optional. */
	OnCompletionCallback func()
}
