package world

import (
	"errors"
	"strings"
)

// ErrInvalidDirection is returned for move input outside 1..4.
var ErrInvalidDirection = errors.New("invalid direction")

// Direction is one of the four compass directions, numbered as on the move menu.
type Direction int

const (
	North Direction = iota + 1
	East
	South
	West
)

// Directions lists every direction in menu order.
var Directions = []Direction{North, East, South, West}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return "Unknown"
	}
}

// Valid reports whether d is one of the four directions.
func (d Direction) Valid() bool {
	return d >= North && d <= West
}

// ParseDirection parses a menu choice. Only "1" through "4" are accepted;
// surrounding whitespace is ignored.
func ParseDirection(token string) (Direction, error) {
	switch strings.TrimSpace(token) {
	case "1":
		return North, nil
	case "2":
		return East, nil
	case "3":
		return South, nil
	case "4":
		return West, nil
	default:
		return 0, ErrInvalidDirection
	}
}
