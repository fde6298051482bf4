package puzzle

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/spatial/r2"
)

// GenerateParams configures one generation run.
type GenerateParams struct {
	// TargetSurfaceArea is the exact total the mirror set must sum to, in
	// grid units.
	TargetSurfaceArea int
	// MinMirrorCount is the minimum number of mirrors in the set.
	MinMirrorCount int
	// Seed drives all random choices; equal seeds reproduce equal layouts.
	Seed int64

	// MaxConfigAttempts bounds whole-configuration restarts. Zero means the
	// default.
	MaxConfigAttempts int
	// MaxPlacementAttempts bounds random position retries per mirror before
	// the radial search. Zero means the default.
	MaxPlacementAttempts int
}

const (
	defaultConfigAttempts    = 12
	defaultPlacementAttempts = 60
	maxSelectIterations      = 256
	maxCloseIterations       = 32
	radialRingCount          = 8
	radialAngleSteps         = 16
)

// GenerateResult is a complete, validated mirror layout.
type GenerateResult struct {
	Mirrors []Mirror
	// UsedFallback is true when every configuration attempt failed and the
	// hand-authored layout was substituted.
	UsedFallback bool
	// Attempts is how many whole configurations were tried.
	Attempts int
}

// Generate produces a mirror set whose surface areas sum to the target
// exactly, every mirror lattice-aligned and clear of the exclusion disk,
// wall margin and each other. Placement failures restart the whole
// configuration up to a bounded number of attempts; if all fail, the
// hand-authored fallback is substituted. The returned error is non-nil only
// when not even the fallback can satisfy the target, which indicates a bug
// or an unsupported target.
func Generate(catalog *Catalog, geom LevelGeometry, params GenerateParams) (GenerateResult, error) {
	rng := rand.New(rand.NewSource(params.Seed))

	configAttempts := params.MaxConfigAttempts
	if configAttempts == 0 {
		configAttempts = defaultConfigAttempts
	}
	placementAttempts := params.MaxPlacementAttempts
	if placementAttempts == 0 {
		placementAttempts = defaultPlacementAttempts
	}

	for attempt := 1; attempt <= configAttempts; attempt++ {
		entries, err := selectEntries(catalog, params.TargetSurfaceArea, params.MinMirrorCount, rng)
		if err != nil {
			continue
		}

		mirrors, err := placeAll(entries, geom, rng, placementAttempts)
		if err != nil {
			continue
		}

		// Paranoid recheck after alignment nudges. Alignment never changes
		// extents, so a mismatch here means a selection or repair bug.
		if err := verifyTotal(mirrors, geom, params.TargetSurfaceArea); err != nil {
			continue
		}

		return GenerateResult{Mirrors: mirrors, Attempts: attempt}, nil
	}

	fallback, err := FallbackLayout(geom, params.TargetSurfaceArea)
	if err != nil {
		return GenerateResult{}, fmt.Errorf("%w: %v", ErrGenerationExhausted, err)
	}
	if err := verifyTotal(fallback, geom, params.TargetSurfaceArea); err != nil {
		return GenerateResult{}, err
	}
	return GenerateResult{Mirrors: fallback, UsedFallback: true, Attempts: configAttempts}, nil
}

// verifyTotal recomputes every mirror's surface area and checks the sum.
func verifyTotal(mirrors []Mirror, geom LevelGeometry, target int) error {
	total := 0
	breakdown := make([]MirrorArea, len(mirrors))
	for i, m := range mirrors {
		area := int(m.SurfaceArea(geom.GridSize))
		breakdown[i] = MirrorArea{Kind: m.Kind, Area: area}
		total += area
	}
	if total != target {
		return &SurfaceAreaMismatchError{Target: target, Got: total, Breakdown: breakdown}
	}
	return nil
}

// selectEntries picks a multiset of catalog entries summing to target
// exactly: a random fill phase that reserves headroom for closing, an
// exact-close phase (single entry, then pair, then largest-fit descent), and
// an emergency repair that pops recent picks and re-closes. It never returns
// a wrong total; when it cannot close it returns an error instead.
func selectEntries(catalog *Catalog, target, minCount int, rng *rand.Rand) ([]CatalogEntry, error) {
	minArea := catalog.MinArea()
	maxArea := catalog.MaxArea()
	if target < minArea {
		return nil, fmt.Errorf("target %d below smallest catalog area %d", target, minArea)
	}

	var selected []CatalogEntry
	remaining := target

	// Fill phase. Keep one minimum-area entry's worth of headroom so the
	// close phase always has something to aim at.
	for iter := 0; iter < maxSelectIterations; iter++ {
		if remaining <= 2*maxArea && len(selected) >= minCount-2 {
			break
		}
		e, ok := catalog.RandomAtMost(rng, remaining-minArea)
		if !ok {
			break
		}
		if left := remaining - e.Area; left != 0 && left < minArea {
			continue
		}
		selected = append(selected, e)
		remaining -= e.Area
	}

	selected, remaining, ok := closeExactly(catalog, selected, remaining, rng)
	if !ok {
		// Emergency repair: pop the most recent picks and retry the close
		// with the budget they free up.
		for len(selected) > 0 {
			last := selected[len(selected)-1]
			selected = selected[:len(selected)-1]
			remaining += last.Area
			selected, remaining, ok = closeExactly(catalog, selected, remaining, rng)
			if ok {
				break
			}
		}
		if !ok {
			return nil, fmt.Errorf("cannot close selection on remainder %d", remaining)
		}
	}

	if len(selected) < minCount {
		return nil, fmt.Errorf("selection closed with %d mirrors, need %d", len(selected), minCount)
	}

	total := 0
	for _, e := range selected {
		total += e.Area
	}
	if total != target {
		breakdown := make([]MirrorArea, len(selected))
		for i, e := range selected {
			breakdown[i] = MirrorArea{Kind: e.Kind, Area: e.Area}
		}
		return nil, &SurfaceAreaMismatchError{Target: target, Got: total, Breakdown: breakdown}
	}
	return selected, nil
}

// closeExactly consumes the remainder with an exact single entry, an exact
// pair, or by descending through largest-fit picks. Bounded; reports whether
// the remainder reached zero.
func closeExactly(catalog *Catalog, selected []CatalogEntry, remaining int, rng *rand.Rand) ([]CatalogEntry, int, bool) {
	for iter := 0; iter < maxCloseIterations && remaining > 0; iter++ {
		if entries := catalog.WithArea(remaining); len(entries) > 0 {
			selected = append(selected, entries[rng.Intn(len(entries))])
			return selected, 0, true
		}
		if a, b, ok := catalog.PairSumming(rng, remaining); ok {
			selected = append(selected, a, b)
			return selected, 0, true
		}
		e, ok := catalog.LargestAtMost(rng, remaining-catalog.MinArea())
		if !ok {
			return selected, remaining, false
		}
		selected = append(selected, e)
		remaining -= e.Area
	}
	return selected, remaining, remaining == 0
}

// placeAll finds a valid position for every entry in turn. A single
// unplaceable entry abandons the whole configuration.
func placeAll(entries []CatalogEntry, geom LevelGeometry, rng *rand.Rand, budget int) ([]Mirror, error) {
	placed := make([]Mirror, 0, len(entries))
	for _, e := range entries {
		m, err := placeOne(e, placed, geom, rng, budget)
		if err != nil {
			return nil, err
		}
		placed = append(placed, m)
	}
	return placed, nil
}

// placeOne tries bounded random positions in an annulus around the arena
// center, then falls back to a radial nearest-valid-position search around
// the last random candidate.
func placeOne(e CatalogEntry, placed []Mirror, geom LevelGeometry, rng *rand.Rand, budget int) (Mirror, error) {
	rMin := geom.TargetSafeRadius + geom.GridSize
	rMax := math.Min(geom.Arena.Width(), geom.Arena.Height())/2 - geom.WallSafeMargin - geom.GridSize
	center := geom.Center()

	var lastCandidate r2.Vec
	for i := 0; i < budget; i++ {
		radius := rMin + rng.Float64()*(rMax-rMin)
		angle := rng.Float64() * 2 * math.Pi
		lastCandidate = r2.Add(center, V(radius*math.Cos(angle), radius*math.Sin(angle)))

		if m, ok := tryAt(e, lastCandidate, placed, geom); ok {
			return m, nil
		}
	}

	if m, ok := radialSearch(e, lastCandidate, placed, geom); ok {
		return m, nil
	}
	return Mirror{}, fmt.Errorf("%w: %s area %d", ErrPlacementExhausted, e.Kind, e.Area)
}

// tryAt aligns the candidate and runs the iron-clad validation. Alignment
// may report an inexact fit; that is fine here because validation re-checks
// rule 1 and rejects anything actually off grid.
func tryAt(e CatalogEntry, pos r2.Vec, placed []Mirror, geom LevelGeometry) (Mirror, bool) {
	m, _ := Align(e.Mirror(pos), geom.GridSize)
	if !Validate(m, placed, geom).Valid {
		return Mirror{}, false
	}
	return m, true
}

// radialSearch walks concentric rings of candidates at grid resolution
// around origin, accepting the first valid hit.
func radialSearch(e CatalogEntry, origin r2.Vec, placed []Mirror, geom LevelGeometry) (Mirror, bool) {
	for ring := 1; ring <= radialRingCount; ring++ {
		radius := float64(ring) * geom.GridSize
		for step := 0; step < radialAngleSteps; step++ {
			angle := 2 * math.Pi * float64(step) / radialAngleSteps
			pos := r2.Add(origin, V(radius*math.Cos(angle), radius*math.Sin(angle)))
			if m, ok := tryAt(e, pos, placed, geom); ok {
				return m, true
			}
		}
	}
	return Mirror{}, false
}
