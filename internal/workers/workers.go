package workers

// Workers aggregates background workers so the bootstrap code can start
// them all with a single call.
type Workers struct {
	workers []Worker
}

// NewWorkers constructs a Workers aggregate from the given workers.
func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Run starts every registered worker in registration order.
func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}
