package game

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/samdwyer/simplerpg/internal/combat"
	"github.com/samdwyer/simplerpg/internal/world"
)

// move asks for a direction and generates the next location. A living enemy
// gets a parting blow first, which may end the session before the move.
func (g *Game) move(ctx context.Context) (string, error) {
	g.term.Println(msgMovePrompt)
	for _, d := range world.Directions {
		g.term.Println(fmt.Sprintf("%d. %s", int(d), d))
	}

	choice, err := g.term.ReadLine()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return g.quit(), nil
		}
		return "error", fmt.Errorf("read direction: %w", err)
	}

	dir, err := world.ParseDirection(choice)
	if err != nil {
		g.term.Println(msgBadChoice)
		return "invalid_choice", nil
	}

	if loc := g.world.Current(); loc.HasEnemy() {
		blow := combat.Retaliate(loc.Enemy(), g.player)
		g.printAll(blow.Messages)
		if blow.Defeated {
			g.defeat()
			return "defeated", nil
		}
	}

	loc := g.world.MoveToNewLocation(ctx, dir)
	g.term.Println(fmt.Sprintf(msgMoved, loc.Name()))
	return "moved", nil
}

// attack hits the enemy at the current location, if any.
func (g *Game) attack() string {
	loc := g.world.Current()
	result := combat.Resolve(g.player, loc.Enemy())
	if !result.Success {
		g.term.Println(msgNoEnemy)
		return "no_target"
	}

	g.printAll(result.Messages)
	g.log.WithFields(logrus.Fields{
		"enemy_id": loc.Enemy().ID(),
		"killed":   result.Killed,
	}).Debug("attack resolved")
	if result.Killed {
		loc.RemoveEnemy()
		return "killed"
	}
	return "hit"
}

// talk shows what the NPC at the current location says, if any.
func (g *Game) talk() string {
	loc := g.world.Current()
	if !loc.HasNPC() {
		g.term.Println(msgNoNPC)
		return "no_target"
	}

	npc := loc.NPC()
	g.term.Println(fmt.Sprintf(msgNPCSays, npc.Name(), npc.Message()))
	return "talked"
}

// pickup moves the item at the current location into the player's inventory.
func (g *Game) pickup() string {
	loc := g.world.Current()
	if !loc.HasItem() {
		g.term.Println(msgNoItem)
		return "no_target"
	}

	item := loc.Item()
	g.player.PickupItem(item)
	g.term.Println(fmt.Sprintf(msgPickedUp, item.Name(), item.Message()))
	loc.RemoveItem()
	return "picked_up"
}

// quit ends the session gracefully.
func (g *Game) quit() string {
	g.term.Println(msgFarewell)
	g.terminate(ReasonPlayerQuit)
	return "quit"
}

func (g *Game) printAll(lines []string) {
	for _, line := range lines {
		g.term.Println(line)
	}
}
