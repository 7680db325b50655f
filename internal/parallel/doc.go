// Package parallel runs independent tasks on a bounded worker pool and
// streams their results back in submission order.
//
// # Architecture
//
//	dispatcher ──► semaphore (window) ──► errgroup (workers) ──► result slots
//	                                                                  │
//	consumer ◄──────────────── slots read in index order ◄────────────┘
//
// At most Window tasks are outstanding (running or finished but not yet
// consumed), so memory stays bounded no matter how many tasks there are.
// Breaking out of the iterator cancels the context seen by the tasks and
// stops the dispatcher; tasks that were never dispatched never start.
package parallel
