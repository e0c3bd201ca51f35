package o1heap

import (
	"math/rand"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

// A randomized bounded-size alloc/free workload, run until a fixed
// number of OOMs have accumulated, with every counter cross-checked
// against an independently maintained shadow model at each step. This is
// the closest the suite comes to a fuzz test, and it is the one place a
// genuine implementation bug in the split/coalesce/bin bookkeeping would
// most likely surface as a diverging counter rather than a crash.
func TestAllocateFreeWorkloadMatchesShadowAccounting(t *testing.T) {
	const (
		arenaSize  = 1 << 16
		maxRequest = 4096
		targetOOMs = 1000
	)

	h := mustNewHeap(t, arenaSize)
	rng := rand.New(rand.NewSource(1))

	live := make(map[unsafe.Pointer]uint) // ptr -> requested amount
	var shadowAllocated, shadowPeak, shadowPeakRequest, shadowOOM uint

	checkAgainstShadow := func() {
		d := h.Diagnostics()
		require.Equal(t, shadowAllocated, d.Allocated)
		require.Equal(t, shadowPeak, d.PeakAllocated)
		require.Equal(t, shadowPeakRequest, d.PeakRequestSize)
		require.Equal(t, shadowOOM, d.OOMCount)
	}

	iterations := 0
	for shadowOOM < targetOOMs {
		iterations++
		if iterations > 2_000_000 {
			t.Fatalf("workload did not accumulate %d OOMs within %d iterations", targetOOMs, iterations)
		}

		// Bias toward freeing once a reasonable number of allocations are
		// live, so the arena doesn't monotonically fill and OOM trivially
		// on every subsequent request.
		doFree := len(live) > 0 && (rng.Intn(3) == 0 || len(live) > 64)

		if doFree {
			var victim unsafe.Pointer
			n := rng.Intn(len(live))
			i := 0
			for p := range live {
				if i == n {
					victim = p
					break
				}
				i++
			}
			f := headerFromPayload(victim)
			shadowAllocated -= f.size
			h.Free(victim)
			delete(live, victim)
		} else {
			amount := uint(rng.Intn(maxRequest)) + 1
			if amount > shadowPeakRequest {
				shadowPeakRequest = amount
			}

			p, err := h.Allocate(amount)
			if err != nil {
				shadowOOM++
				continue
			}
			f := headerFromPayload(p)
			shadowAllocated += f.size
			if shadowAllocated > shadowPeak {
				shadowPeak = shadowAllocated
			}
			live[p] = amount
		}

		checkAgainstShadow()
	}

	for p := range live {
		h.Free(p)
	}
	require.Zero(t, h.Diagnostics().Allocated)
}
