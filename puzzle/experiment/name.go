package experiment

import (
	"math/rand"
	"time"
)

var (
	adjectives = []string{
		"amber", "bright", "calm", "crooked", "dim", "double", "faint",
		"gilded", "glassy", "hollow", "keen", "low", "narrow", "oblique",
		"pale", "polished", "quiet", "sharp", "silvered", "slanted",
		"steady", "stray", "tilted", "warped",
	}

	nouns = []string{
		"angle", "beam", "bounce", "corner", "facet", "flare", "glare",
		"glint", "lattice", "mirror", "prism", "ray", "ricochet", "shard",
		"shimmer", "sliver", "spark", "spectrum", "trace", "wedge",
	}
)

// GenerateRunName creates a memorable run identifier in the format
// "adjective-noun"
func GenerateRunName() string {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	adj := adjectives[rng.Intn(len(adjectives))]
	noun := nouns[rng.Intn(len(nouns))]

	return adj + "-" + noun
}

// GenerateRunID creates a unique run identifier by combining the memorable
// name with a timestamp
func GenerateRunID() string {
	timestamp := time.Now().UTC().Format("20060102-150405")
	return GenerateRunName() + "-" + timestamp
}
