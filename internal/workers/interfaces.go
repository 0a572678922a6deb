// Package workers runs the background jobs of the sync client.
// It defines the Worker interface and a Workers aggregate that starts and
// stops every worker in a unified way.
package workers

// Worker is the interface that must be implemented by any background worker.
// It defines a single Run method that starts the worker's execution.
//
// Implementations are expected to block for the duration of their work
// or spawn goroutines internally.
type Worker interface {
	Run()
}

// Stopper is implemented by workers that run in the background after Run
// returned. Stop must block until the worker has exited.
type Stopper interface {
	Stop()
}
