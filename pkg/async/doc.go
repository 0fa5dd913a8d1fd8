// Package async provides small generic helpers for running computations concurrently
// and joining their results.
//
// The central type is Future, the eventual result of a computation. Async starts a
// function in its own goroutine and returns a *Future immediately; Resolved wraps a
// value that is already known, so inline and background work can be handled through
// the same contract. Callers wait with Await, bound the wait with AwaitWithTimeout, or
// poll with IsComplete.
//
// WaitAll joins a group of futures and always waits for every one of them, reporting
// the first failure by position. WaitAny returns as soon as one future finishes.
//
// # Usage
//
//	f := async.Async(ctx, "alice", func(ctx context.Context, name string) (bool, error) {
//	    return lookupTaken(ctx, name)
//	})
//	taken, err := f.Await()
//
// # Error Handling
//
// Futures carry the error returned by the callback. A callback that panics completes
// its future with an error wrapping ErrPanic instead of crashing the process. If the
// context is already canceled when Async is called, the callback is not invoked and the
// future holds ctx.Err().
package async
