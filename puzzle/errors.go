package puzzle

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrAlignmentInexact means the local alignment search did not reach a
	// zero-error lattice fit. The returned mirror is best effort; validation
	// will reject it if any vertex is actually off grid.
	ErrAlignmentInexact = errors.New("alignment: no exact lattice fit found")

	// ErrPlacementExhausted means no valid position was found for a mirror
	// within its retry and radial-search budget.
	ErrPlacementExhausted = errors.New("placement: retry budget exhausted")

	// ErrGenerationExhausted means every configuration attempt failed and
	// the generator fell through to its last resort.
	ErrGenerationExhausted = errors.New("generation: all configuration attempts exhausted")
)

// SurfaceAreaMismatchError reports a selection or repair bug: the chosen
// mirror set does not sum to the requested target. It carries the full
// per-mirror breakdown so the failure can be diagnosed without replaying the
// run.
type SurfaceAreaMismatchError struct {
	Target    int
	Got       int
	Breakdown []MirrorArea
}

// MirrorArea is one line of a surface-area breakdown.
type MirrorArea struct {
	Kind Kind
	Area int
}

func (e *SurfaceAreaMismatchError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "surface area mismatch: want %d, got %d (", e.Target, e.Got)
	for i, m := range e.Breakdown {
		if i > 0 {
			b.WriteString(" + ")
		}
		fmt.Fprintf(&b, "%s:%d", m.Kind, m.Area)
	}
	b.WriteString(")")
	return b.String()
}
