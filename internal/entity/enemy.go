// Package entity provides the player character and the occupants of a location.
package entity

import "github.com/samdwyer/simplerpg/internal/gamedata"

// Enemy represents a hostile creature occupying a location.
// A single hit kills it; there is no hit point pool.
type Enemy struct {
	Def    *gamedata.EnemyDef // Reference to the enemy definition (nil for ad-hoc enemies)
	Name   string             // Display name (e.g., "Goblin")
	Damage int                // Damage dealt when the player walks away
	alive  bool
}

// NewEnemy creates a living enemy with the default strike damage.
func NewEnemy(name string) *Enemy {
	return &Enemy{
		Name:   name,
		Damage: gamedata.DefaultEnemyDamage,
		alive:  true,
	}
}

// NewEnemyFromDef creates a living enemy from a data-driven definition.
func NewEnemyFromDef(def *gamedata.EnemyDef) *Enemy {
	return &Enemy{
		Def:    def,
		Name:   def.Name,
		Damage: def.StrikeDamage(),
		alive:  true,
	}
}

// IsAlive reports whether the enemy has not been defeated yet.
func (e *Enemy) IsAlive() bool { return e.alive }

// GetName returns the enemy's name.
func (e *Enemy) GetName() string { return e.Name }

// StrikeDamage returns the damage this enemy deals.
func (e *Enemy) StrikeDamage() int { return e.Damage }

// TakeDamage defeats the enemy. Once dead it stays dead.
func (e *Enemy) TakeDamage() {
	e.alive = false
}

// ID returns the enemy's definition identifier, or its name for ad-hoc enemies.
func (e *Enemy) ID() string {
	if e.Def != nil {
		return e.Def.ID
	}
	return e.Name
}
