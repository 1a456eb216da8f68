// Package world provides locations and the map that generates them on demand.
package world

import (
	"github.com/google/uuid"

	"github.com/samdwyer/simplerpg/internal/entity"
)

// Location is a single place. It holds at most one NPC, one item and one enemy.
type Location struct {
	id    uuid.UUID
	name  string
	npc   *entity.NPC
	item  *entity.Item
	enemy *entity.Enemy
}

// NewLocation creates an empty location with a fresh identity.
func NewLocation(name string) *Location {
	return &Location{
		id:   uuid.New(),
		name: name,
	}
}

// ID returns the location's unique identity.
func (l *Location) ID() uuid.UUID { return l.id }

// Name returns the location's display name.
func (l *Location) Name() string { return l.name }

// NPC returns the NPC present, or nil.
func (l *Location) NPC() *entity.NPC { return l.npc }

// Item returns the item present, or nil.
func (l *Location) Item() *entity.Item { return l.item }

// Enemy returns the enemy present, or nil.
func (l *Location) Enemy() *entity.Enemy { return l.enemy }

// HasNPC reports whether an NPC is present.
func (l *Location) HasNPC() bool { return l.npc != nil }

// HasItem reports whether an item is present.
func (l *Location) HasItem() bool { return l.item != nil }

// HasEnemy reports whether an enemy is present.
func (l *Location) HasEnemy() bool { return l.enemy != nil }

// PlaceNPC puts an NPC in the location, replacing any existing one.
func (l *Location) PlaceNPC(npc *entity.NPC) { l.npc = npc }

// PlaceItem puts an item in the location, replacing any existing one.
func (l *Location) PlaceItem(item *entity.Item) { l.item = item }

// PlaceEnemy puts an enemy in the location, replacing any existing one.
func (l *Location) PlaceEnemy(enemy *entity.Enemy) { l.enemy = enemy }

// RemoveEnemy clears the enemy slot.
func (l *Location) RemoveEnemy() { l.enemy = nil }

// RemoveItem clears the item slot. NPCs cannot be removed.
func (l *Location) RemoveItem() { l.item = nil }
