package corosort

// SortInts sorts arr in place with a bottom-up, preemption-aware merge
// sort. aux must be the same length as arr; it is used as scratch space and
// its contents are not meaningful on return. h.Yield is called at every
// pass boundary, reader/writer swap, and merge call — the sole mechanism
// keeping this sort inside the scheduler's latency budget.
//
// The result is always in arr on return, regardless of how many passes ran.
func SortInts(arr, aux []int32, h *Handle) {
	sz := len(arr)

	readerIsAux := true
	writerIsPrimary := true
	h.Yield()

	for width := 1; width < sz; width <<= 1 {
		h.Yield()
		readerIsAux = !readerIsAux
		h.Yield()
		writerIsPrimary = !writerIsPrimary
		h.Yield()

		reader, writer := selectBuffers(arr, aux, readerIsAux, writerIsPrimary)

		for i := 0; i < sz; i += 2 * width {
			h.Yield()
			mergeInts(writer, reader, i, minInt(i+width, sz), minInt(i+2*width, sz), h)
			h.Yield()
		}
	}

	if !writerIsPrimary {
		h.Yield()
		copy(arr, aux[:sz])
		h.Yield()
	}
}

// sortRuns sorts the concatenation of N already-sorted runs in place.
// offsets has length N+1: offsets[i] is the start of run i, and offsets[N]
// is the total element count. Widths double over the run count, not the
// element count.
//
// Unlike SortInts, this does not itself call Yield: it only ever runs
// after every worker coroutine has already finished, so there is no
// scheduler latency budget left to protect. h is still threaded through to
// mergeInts, which shares the same merge loop the per-worker sort uses;
// Handle.Yield is always safe to call outside a running scheduler (it
// no-ops).
func sortRuns(storage, aux []int32, offsets []int, h *Handle) {
	n := len(offsets) - 1

	readerIsAux := true
	writerIsPrimary := true

	for width := 1; width < n; width <<= 1 {
		readerIsAux = !readerIsAux
		writerIsPrimary = !writerIsPrimary

		reader, writer := selectBuffers(storage, aux, readerIsAux, writerIsPrimary)

		for i := 0; i < n; i += 2 * width {
			left := offsets[i]
			middle := offsets[minInt(i+width, n)]
			right := offsets[minInt(i+2*width, n)]
			mergeInts(writer, reader, left, middle, right, h)
		}
	}

	if !writerIsPrimary {
		copy(storage, aux[:len(storage)])
	}
}

func selectBuffers(primary, auxiliary []int32, readerIsAux, writerIsPrimary bool) (reader, writer []int32) {
	if readerIsAux {
		reader = auxiliary
	} else {
		reader = primary
	}
	if writerIsPrimary {
		writer = primary
	} else {
		writer = auxiliary
	}
	return reader, writer
}

// mergeInts merges reader[left:middle) and reader[middle:right) into
// writer[left:right), breaking ties toward the left run for stability.
func mergeInts(writer, reader []int32, left, middle, right int, h *Handle) {
	i, j := left, middle
	for k := left; k < right; k++ {
		h.Yield()
		if i < middle && (j >= right || reader[i] <= reader[j]) {
			h.Yield()
			writer[k] = reader[i]
			i++
			h.Yield()
		} else {
			h.Yield()
			writer[k] = reader[j]
			j++
			h.Yield()
		}
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
