package world

import (
	"context"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/simplerpg/internal/entity"
	"github.com/samdwyer/simplerpg/internal/gamedata"
	"github.com/samdwyer/simplerpg/internal/telemetry"
)

const (
	// Default per-slot chances that a fresh location receives an occupant.
	DefaultEnemyChance = 0.35
	DefaultNPCChance   = 0.25
	DefaultItemChance  = 0.40
)

// Chances holds the probability, in [0, 1], of filling each occupant slot.
type Chances struct {
	Enemy float64
	NPC   float64
	Item  float64
}

// DefaultChances returns the standard spawn chances.
func DefaultChances() Chances {
	return Chances{
		Enemy: DefaultEnemyChance,
		NPC:   DefaultNPCChance,
		Item:  DefaultItemChance,
	}
}

// CatalogPopulator fills locations with occupants drawn from a gamedata catalog.
type CatalogPopulator struct {
	catalog *gamedata.Catalog
	chances Chances
	rng     *rand.Rand
}

// NewCatalogPopulator creates a populator. A seed of 0 uses the current time.
func NewCatalogPopulator(catalog *gamedata.Catalog, chances Chances, seed int64) *CatalogPopulator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &CatalogPopulator{
		catalog: catalog,
		chances: chances,
		rng:     rand.New(rand.NewSource(seed)),
	}
}

// Populate rolls each slot independently and fills it from the catalog.
func (p *CatalogPopulator) Populate(ctx context.Context, loc *Location) {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "location.populate")
	defer span.End()

	if p.roll(p.chances.Enemy) {
		if def, ok := p.catalog.Enemies.Draw(p.rng); ok {
			loc.PlaceEnemy(entity.NewEnemyFromDef(&def))
		}
	}
	if p.roll(p.chances.NPC) {
		if def, ok := p.catalog.NPCs.Draw(p.rng); ok {
			loc.PlaceNPC(entity.NewNPCFromDef(&def))
		}
	}
	if p.roll(p.chances.Item) {
		if def, ok := p.catalog.Items.Draw(p.rng); ok {
			loc.PlaceItem(entity.NewItemFromDef(&def))
		}
	}

	span.SetAttributes(
		attribute.Bool("location.has_enemy", loc.HasEnemy()),
		attribute.Bool("location.has_npc", loc.HasNPC()),
		attribute.Bool("location.has_item", loc.HasItem()),
	)
	if loc.HasEnemy() {
		span.SetAttributes(attribute.String("location.enemy_id", loc.Enemy().ID()))
	}
}

func (p *CatalogPopulator) roll(chance float64) bool {
	if chance <= 0 {
		return false
	}
	return p.rng.Float64() < chance
}
