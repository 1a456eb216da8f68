// Package combat resolves the player's attacks and the blows enemies deal back.
package combat

import (
	"fmt"

	"github.com/samdwyer/simplerpg/internal/entity"
)

// Striker is an occupant that hits the player on the way out.
type Striker interface {
	GetName() string
	IsAlive() bool
	StrikeDamage() int
}

// Victim is the player side of a parting blow.
type Victim interface {
	TakeDamage(amount int) bool
	Health() int
}

// Result contains the outcome of one resolution.
type Result struct {
	Success  bool     // Something happened
	Killed   bool     // The target died
	Damage   int      // Damage dealt to the victim
	Defeated bool     // The victim was defeated
	Messages []string // Human-readable lines, in display order
}

// Resolve has the player hit target once.
func Resolve(attacker *entity.Character, target *entity.Enemy) Result {
	if target == nil {
		return Result{Success: false}
	}

	attacker.Attack(target)

	result := Result{
		Success:  true,
		Messages: []string{fmt.Sprintf("You attacked the %s!", target.Name)},
	}
	if !target.IsAlive() {
		result.Killed = true
		result.Messages = append(result.Messages, fmt.Sprintf("You defeated the %s!", target.Name))
	}
	return result
}

// Retaliate lets a living striker hit the victim once.
// Dead or absent strikers do nothing.
func Retaliate(striker Striker, victim Victim) Result {
	if striker == nil || !striker.IsAlive() {
		return Result{Success: false}
	}

	damage := striker.StrikeDamage()
	defeated := victim.TakeDamage(damage)

	return Result{
		Success:  true,
		Damage:   damage,
		Defeated: defeated,
		Messages: []string{
			fmt.Sprintf("The %s strikes you as you leave! Health: %d", striker.GetName(), victim.Health()),
		},
	}
}

// Ensure entities implement the combat interfaces
var (
	_ Striker = (*entity.Enemy)(nil)
	_ Victim  = (*entity.Character)(nil)
)
