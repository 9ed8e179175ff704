// Package corosort implements a latency-bounded cooperative coroutine
// scheduler driving a bottom-up merge sort over asynchronous file reads.
//
// Model
// One goroutine-backed "coroutine" per input file plus a reserved parker
// slot (index 0, never scheduled as a worker). The scheduler hands control
// to exactly one coroutine at a time over an unbuffered channel baton, so
// only one goroutine ever does useful work at any instant — the same
// single-threaded invariant a stackful fiber runtime gives for free.
//
// Suspension points
// A worker only ever relinquishes control at three points:
//   - Yield: a conditional switch, a no-op if less than one scheduling
//     quantum (target latency / worker count) has elapsed since the worker
//     was last resumed.
//   - Suspend: an unconditional switch, used while waiting on a pending
//     asynchronous read.
//   - Done / Fail: terminal. The worker's goroutine returns immediately
//     after.
//
// Pipeline
// Each worker opens its file, submits an asynchronous read, polls it to
// completion (suspending between polls), parses whitespace-delimited
// decimal integers, and sorts them locally with a preemption-aware
// bottom-up merge sort that yields at every pass, buffer-swap, and merge
// step. Once every worker is done, the driver concatenates the N sorted
// runs and merges them once more into the final output.
package corosort
