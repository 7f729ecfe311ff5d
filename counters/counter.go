// Package counters provides the debug-statistics primitive used by
// listforest and digraph (and, through them, eulerforest and the
// classify algorithms): a monotonically
// increasing operation counter used to report the "time" (loop
// iterations and recursive calls) and "space" (live structure size)
// figures from spec.md §4.1 and §6.3.
//
// Unlike the originating Rust implementation (debug_counter.rs), which
// compiles counters away entirely in release builds via a cfg flag, Go
// has no equivalent build-mode split; per SPEC_FULL.md's "debug counters
// are exposed unconditionally" decision, Counter always counts. Callers
// that want release-mode behavior simply ignore Get().
package counters

// Counter is a single named tally. Its zero value counts from zero and
// is ready to use.
type Counter struct {
	val int64
}

// Inc increments the counter by one. It mirrors one loop iteration or
// one recursive call, per spec.md §4.1's "every public operation
// increments a time counter by one per iteration/recursion step".
func (c *Counter) Inc() {
	c.val++
}

// Add increments the counter by n, used where a single call already
// knows how many underlying steps it performed (e.g. appending n
// adjacency entries during a merge).
func (c *Counter) Add(n int) {
	c.val += int64(n)
}

// Get returns the current tally.
func (c *Counter) Get() int64 {
	return c.val
}
