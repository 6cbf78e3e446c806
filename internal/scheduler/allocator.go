package scheduler

import "github.com/alexanderramin/erca/internal/domain"

// Bounds is the accepted lesson length range in minutes.
type Bounds struct {
	MinMin int
	MaxMin int
}

// DefaultBounds mirrors the form limits of the planner: 20 to 200 minutes.
var DefaultBounds = Bounds{MinMin: 20, MaxMin: 200}

// Clamp forces total into the range.
func (b Bounds) Clamp(total int) int {
	return clamp(total, b.MinMin, b.MaxMin)
}

// Allocator splits a lesson duration across the four ERCA phases.
type Allocator struct {
	bounds Bounds
}

// NewAllocator returns an Allocator clamping totals into bounds. Inverted
// or negative bounds are repaired rather than rejected.
func NewAllocator(bounds Bounds) *Allocator {
	if bounds.MinMin < 0 {
		bounds.MinMin = 0
	}
	if bounds.MaxMin < bounds.MinMin {
		bounds.MaxMin = bounds.MinMin
	}
	return &Allocator{bounds: bounds}
}

// Bounds returns the range totals are clamped into.
func (a *Allocator) Bounds() Bounds {
	return a.bounds
}

// Allocate clamps total and splits it into four near-equal phases. Each
// phase gets total/4; the remainder goes one minute at a time to E, R, C, A
// in that order, so the phases always sum to the clamped total and differ
// by at most one minute.
//
// Allocate is for fresh totals only. Phases a user has edited by hand must
// not be passed back through it.
func (a *Allocator) Allocate(total int) domain.PhaseAllocation {
	total = a.bounds.Clamp(total)
	base := total / len(domain.PhaseOrder)
	rem := total - base*len(domain.PhaseOrder)

	var alloc domain.PhaseAllocation
	for _, phase := range domain.PhaseOrder {
		minutes := base
		if rem > 0 {
			minutes++
			rem--
		}
		alloc = alloc.With(phase, minutes)
	}
	return alloc
}

// ValidateAllocation reports whether the phases add up to total. It never
// corrects anything; renderers use it to show a mismatch notice.
func ValidateAllocation(alloc domain.PhaseAllocation, total int) bool {
	return alloc.Sum() == total
}

func clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
