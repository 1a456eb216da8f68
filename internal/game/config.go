package game

import "github.com/samdwyer/simplerpg/internal/world"

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible location contents.
	// A seed of 0 means a random seed will be generated.
	Seed int64
	// Populate seeds freshly generated locations from the embedded catalog.
	Populate bool
	// Populator overrides the catalog populator when set.
	Populator world.Populator
}
