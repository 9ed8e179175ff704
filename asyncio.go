package corosort

import (
	"io"
	"os"
	"sync/atomic"
)

// asyncReadStatus is the outcome a coroutine polls for: in progress,
// complete, or failed.
type asyncReadStatus int32

const (
	asyncReadPending asyncReadStatus = iota
	asyncReadComplete
	asyncReadFailed
)

// asyncRead is a non-blocking read: a background goroutine performs the
// real, blocking os.File.Read while the owning coroutine polls status
// atomically via Suspend calls, never blocking the scheduler thread the
// way a synchronous read would.
type asyncRead struct {
	status atomic.Int32
	data   []byte
	err    error
}

// submitAsyncRead starts the background read and returns immediately: the
// read is in flight, and the caller is expected to poll.
func submitAsyncRead(f *os.File) *asyncRead {
	ar := &asyncRead{}
	go func() {
		data, err := io.ReadAll(f)
		if err != nil {
			ar.err = err
			ar.status.Store(int32(asyncReadFailed))
			return
		}
		ar.data = data
		ar.status.Store(int32(asyncReadComplete))
	}()
	return ar
}

func (ar *asyncRead) poll() asyncReadStatus {
	return asyncReadStatus(ar.status.Load())
}
