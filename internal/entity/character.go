package entity

const (
	// StartingHealth is the health a new character begins with.
	StartingHealth = 100
	// DefaultDamage is the amount TakeDamage callers use when nothing more specific applies.
	DefaultDamage = 10
)

// Character is the player.
type Character struct {
	name      string
	health    int
	inventory *Inventory
}

// NewCharacter creates a character at full health. Any name is accepted, including "".
func NewCharacter(name string) *Character {
	return &Character{
		name:      name,
		health:    StartingHealth,
		inventory: NewInventory(),
	}
}

// Name returns the character's name.
func (c *Character) Name() string { return c.name }

// Health returns current health. It may be zero or negative once defeated.
func (c *Character) Health() int { return c.health }

// Inventory returns the items the character has picked up.
func (c *Character) Inventory() *Inventory { return c.inventory }

// IsDefeated reports whether health has dropped to zero or below.
func (c *Character) IsDefeated() bool { return c.health <= 0 }

// Attack hits the target once. Enemies do not survive a hit.
func (c *Character) Attack(target *Enemy) {
	target.TakeDamage()
}

// TakeDamage reduces health by amount and reports whether the character is now defeated.
// A defeated character ends the session; callers must not keep processing commands.
func (c *Character) TakeDamage(amount int) bool {
	c.health -= amount
	return c.IsDefeated()
}

// PickupItem moves an item into the character's inventory.
func (c *Character) PickupItem(item *Item) {
	c.inventory.Add(item)
}
