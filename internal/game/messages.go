package game

// Display text.
const (
	msgBanner      = "Welcome to the RPG Adventure!"
	msgNamePrompt  = "Enter your character's name: "
	msgGreeting    = "Welcome, %s! You find yourself in %s."
	msgChoice      = "Enter your choice: "
	msgInvalid     = "Invalid command. Try again."
	msgFarewell    = "Exiting the game. Goodbye!"
	msgDefeated    = "You have been defeated. Game over!"
	msgMovePrompt  = "Select a direction to move:"
	msgMoved       = "You moved to %s."
	msgBadChoice   = "Invalid choice. Try again."
	msgNoEnemy     = "No enemy to attack here."
	msgNoNPC       = "No NPC to talk to here."
	msgNoItem      = "No item to pick up here."
	msgNPCSays     = "%s says: '%s'"
	msgPickedUp    = "You picked up %s: %s"
	msgOptionsHead = "Options:"
)

// menuOptions are listed under the options header, in order.
var menuOptions = []string{
	"M - Move to a new location",
	"A - Attack enemies",
	"T - Talk to NPCs",
	"P - Pickup items",
	"Q - Quit the game",
}
