package gamedata

// DefaultEnemyDamage is the parting-blow damage used when a definition omits one.
const DefaultEnemyDamage = 10

// EnemyDef defines an enemy type loaded from JSON.
type EnemyDef struct {
	ID          string `json:"id"`          // Unique identifier (e.g., "goblin")
	Name        string `json:"name"`        // Display name (e.g., "Goblin")
	Damage      int    `json:"damage"`      // Damage dealt when the player walks away
	SpawnWeight int    `json:"spawnWeight"` // Relative spawn frequency (higher = more common)
}

// Weight implements Weighted.
func (e EnemyDef) Weight() int { return e.SpawnWeight }

// StrikeDamage returns the configured damage, or DefaultEnemyDamage when unset.
func (e EnemyDef) StrikeDamage() int {
	if e.Damage <= 0 {
		return DefaultEnemyDamage
	}
	return e.Damage
}

// NPCDef defines a non-player character loaded from JSON.
type NPCDef struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Message     string `json:"message"`
	SpawnWeight int    `json:"spawnWeight"`
}

// Weight implements Weighted.
func (n NPCDef) Weight() int { return n.SpawnWeight }

// ItemDef defines a collectible item loaded from JSON.
type ItemDef struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Message     string `json:"message"`
	SpawnWeight int    `json:"spawnWeight"`
}

// Weight implements Weighted.
func (i ItemDef) Weight() int { return i.SpawnWeight }

// EnemiesFile represents the structure of enemies.json.
type EnemiesFile struct {
	Enemies []EnemyDef `json:"enemies"`
}

// NPCsFile represents the structure of npcs.json.
type NPCsFile struct {
	NPCs []NPCDef `json:"npcs"`
}

// ItemsFile represents the structure of items.json.
type ItemsFile struct {
	Items []ItemDef `json:"items"`
}

// LoadEnemies loads enemy definitions from the embedded enemies.json file.
func LoadEnemies() ([]EnemyDef, error) {
	file, err := Load[EnemiesFile]("enemies.json")
	if err != nil {
		return nil, err
	}
	return file.Enemies, nil
}

// LoadNPCs loads NPC definitions from the embedded npcs.json file.
func LoadNPCs() ([]NPCDef, error) {
	file, err := Load[NPCsFile]("npcs.json")
	if err != nil {
		return nil, err
	}
	return file.NPCs, nil
}

// LoadItems loads item definitions from the embedded items.json file.
func LoadItems() ([]ItemDef, error) {
	file, err := Load[ItemsFile]("items.json")
	if err != nil {
		return nil, err
	}
	return file.Items, nil
}
