package world

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/simplerpg/internal/telemetry"
)

// StartingLocationName is the name of the location every session begins in.
const StartingLocationName = "Starting Area"

// Populator seeds a freshly generated location with occupants.
type Populator interface {
	Populate(ctx context.Context, loc *Location)
}

// Map owns the player's current location. Previous locations are discarded.
type Map struct {
	current   *Location
	populator Populator
}

// NewMap creates a map positioned at an empty starting location.
// A nil populator leaves every generated location empty.
func NewMap(populator Populator) *Map {
	return &Map{
		current:   NewLocation(StartingLocationName),
		populator: populator,
	}
}

// Current returns the location the player is in.
func (m *Map) Current() *Location {
	return m.current
}

// MoveToNewLocation replaces the current location with a freshly generated one.
// Callers validate the direction; see ParseDirection.
func (m *Map) MoveToNewLocation(ctx context.Context, d Direction) *Location {
	tracer := telemetry.Tracer("world")
	ctx, span := tracer.Start(ctx, "map.move")
	defer span.End()

	loc := NewLocation(LocationName(d))
	if m.populator != nil {
		m.populator.Populate(ctx, loc)
	}
	m.current = loc

	span.SetAttributes(
		attribute.String("direction", d.String()),
		attribute.String("location.id", loc.ID().String()),
		attribute.String("location.name", loc.Name()),
	)
	return loc
}

// LocationName returns the name given to a location generated by moving in d.
func LocationName(d Direction) string {
	return fmt.Sprintf("New Location %d", int(d))
}
