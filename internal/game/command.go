package game

import "strings"

// Command is a parsed player command.
type Command int

const (
	CommandInvalid Command = iota
	CommandMove
	CommandAttack
	CommandTalk
	CommandPickup
	CommandQuit
)

// String returns the command name used in logs and spans.
func (c Command) String() string {
	switch c {
	case CommandMove:
		return "move"
	case CommandAttack:
		return "attack"
	case CommandTalk:
		return "talk"
	case CommandPickup:
		return "pickup"
	case CommandQuit:
		return "quit"
	default:
		return "invalid"
	}
}

// ParseCommand reads the first token of line, case-insensitively.
// Only the single letters M, A, T, P and Q are recognized.
func ParseCommand(line string) Command {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return CommandInvalid
	}

	switch strings.ToUpper(fields[0]) {
	case "M":
		return CommandMove
	case "A":
		return CommandAttack
	case "T":
		return CommandTalk
	case "P":
		return CommandPickup
	case "Q":
		return CommandQuit
	default:
		return CommandInvalid
	}
}
