// Package workers runs the background jobs of the server alongside the HTTP
// listener.
//
// A Worker starts its own goroutine in Run and stops when the context passed
// to Run is cancelled. Workers groups several of them so that main can start
// and stop them together.
package workers

import "context"

// Worker is a background job.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) {
//	    go func() {
//	        <-ctx.Done()
//	    }()
//	}
type Worker interface {
	Run(ctx context.Context)
}
