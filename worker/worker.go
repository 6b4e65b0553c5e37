package worker

import (
	"runtime"

	"github.com/getsentry/sentry-go"
)

var workerQueue = make(chan func(), runtime.NumCPU())

func init() {
	for i := 0; i < runtime.NumCPU(); i++ {
		go worker()
	}
}

func worker() {
	for f := range workerQueue {
		run(f)
	}
}

// run executes a single job. A panicking job is reported to sentry and does not take the worker down.
func run(f func()) {
	defer sentry.Recover()
	f()
}

// Submit queues f on the shared pool. To be used by a function that may be CPU intensive. Submit blocks
// while every worker is busy and the queue is full.
func Submit(f func()) {
	workerQueue <- f
}
