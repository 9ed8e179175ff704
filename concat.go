package corosort

// Concatenate joins every worker's sorted run, in pool order, into one
// buffer and merges the runs into fully sorted order. It must be called
// after Run has returned successfully and before Cleanup.
//
// The original's equivalent step copied each run with a byte count instead
// of an element count, silently corrupting every run after the first on a
// 4-byte element type; this builds the offset table in element units and
// copies accordingly (see DESIGN.md).
func Concatenate(s *Scheduler) []int32 {
	workers := s.CoroPool()

	offsets := make([]int, len(workers)+1)
	total := 0
	for i, w := range workers {
		offsets[i] = total
		total += len(w.Storage)
	}
	offsets[len(workers)] = total

	result := make([]int32, total)
	for i, w := range workers {
		copy(result[offsets[i]:offsets[i+1]], w.Storage)
	}

	aux := make([]int32, total)
	h := &Handle{sched: s, coro: s.poolSlice[0]}
	sortRuns(result, aux, offsets, h)

	return result
}
