package gamedata

import (
	"errors"
	"fmt"
	"math/rand"
)

// ErrEmptyTable is returned when a definition file has no entries.
var ErrEmptyTable = errors.New("gamedata: no definitions loaded")

// Weighted is implemented by definitions that can be drawn from a Table.
type Weighted interface {
	Weight() int
}

// Table holds loaded definitions and draws from them by spawn weight.
type Table[T Weighted] struct {
	defs        []T
	totalWeight int
}

// NewTable creates a table from loaded definitions.
// Entries with a non-positive weight are kept but never drawn.
func NewTable[T Weighted](defs []T) *Table[T] {
	totalWeight := 0
	for _, d := range defs {
		if w := d.Weight(); w > 0 {
			totalWeight += w
		}
	}
	return &Table[T]{
		defs:        defs,
		totalWeight: totalWeight,
	}
}

// Draw selects a definition using weighted probability.
// It returns false when the table has nothing to draw.
func (t *Table[T]) Draw(rng *rand.Rand) (T, bool) {
	var zero T
	if t.totalWeight <= 0 {
		return zero, false
	}

	roll := rng.Intn(t.totalWeight)

	cumulative := 0
	for _, d := range t.defs {
		w := d.Weight()
		if w <= 0 {
			continue
		}
		cumulative += w
		if roll < cumulative {
			return d, true
		}
	}

	return zero, false
}

// Count returns the number of definitions in the table.
func (t *Table[T]) Count() int {
	return len(t.defs)
}

// Catalog bundles the three occupant tables.
type Catalog struct {
	Enemies *Table[EnemyDef]
	NPCs    *Table[NPCDef]
	Items   *Table[ItemDef]
}

// LoadCatalog loads every embedded definition file.
func LoadCatalog() (*Catalog, error) {
	enemies, err := LoadEnemies()
	if err != nil {
		return nil, err
	}
	if len(enemies) == 0 {
		return nil, fmt.Errorf("enemies.json: %w", ErrEmptyTable)
	}

	npcs, err := LoadNPCs()
	if err != nil {
		return nil, err
	}
	if len(npcs) == 0 {
		return nil, fmt.Errorf("npcs.json: %w", ErrEmptyTable)
	}

	items, err := LoadItems()
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("items.json: %w", ErrEmptyTable)
	}

	return &Catalog{
		Enemies: NewTable(enemies),
		NPCs:    NewTable(npcs),
		Items:   NewTable(items),
	}, nil
}

// MustLoadCatalog loads the catalog, panicking on error.
func MustLoadCatalog() *Catalog {
	catalog, err := LoadCatalog()
	if err != nil {
		panic(err)
	}
	return catalog
}
