package game

import (
	"context"
	"strings"
	"testing"

	"github.com/samdwyer/simplerpg/internal/entity"
)

func TestMoveCaseInsensitive(t *testing.T) {
	for _, token := range []string{"m", "M"} {
		g, term := newRunningGame(t, nil)
		term.feed("3")

		if err := g.Handle(context.Background(), token); err != nil {
			t.Fatalf("Handle(%q) error = %v", token, err)
		}
		if got := g.Map().Current().Name(); got != "New Location 3" {
			t.Errorf("Handle(%q): location = %q, want %q", token, got, "New Location 3")
		}
		assertInOrder(t, term.out.String(), "You moved to New Location 3.\n")
	}
}

func TestMoveInvalidChoice(t *testing.T) {
	for _, choice := range []string{"0", "5", "x", "", "north", "-2", "2.0", "+2", "02", "+0"} {
		g, term := newRunningGame(t, nil)
		before := g.Map().Current()
		term.feed(choice)

		if err := g.Handle(context.Background(), "m"); err != nil {
			t.Fatalf("Handle(m) with %q error = %v", choice, err)
		}
		if g.Map().Current() != before {
			t.Errorf("choice %q changed the location to %q", choice, g.Map().Current().Name())
		}
		if g.State() != StateRunning {
			t.Errorf("choice %q: State() = %v, want running", choice, g.State())
		}
		assertInOrder(t, term.out.String(), "Select a direction to move:\n", "Invalid choice. Try again.\n")
	}
}

func TestMoveEOFQuits(t *testing.T) {
	g, term := newRunningGame(t, nil)

	if err := g.Handle(context.Background(), "m"); err != nil {
		t.Fatalf("Handle(m) error = %v", err)
	}
	if g.Reason() != ReasonPlayerQuit {
		t.Errorf("Reason() = %v, want quit", g.Reason())
	}
	assertInOrder(t, term.out.String(), "Exiting the game. Goodbye!\n")
}

func TestInvalidCommand(t *testing.T) {
	for _, token := range []string{"x", "", "move", "hello world", "9"} {
		g, term := newRunningGame(t, nil)
		before := g.Map().Current()

		if err := g.Handle(context.Background(), token); err != nil {
			t.Fatalf("Handle(%q) error = %v", token, err)
		}
		if got := term.out.String(); got != "Invalid command. Try again.\n" {
			t.Errorf("Handle(%q) output = %q", token, got)
		}
		if g.State() != StateRunning || g.Map().Current() != before {
			t.Errorf("Handle(%q) changed state", token)
		}
	}
}

func TestAttackKillsEnemy(t *testing.T) {
	g, term := newRunningGame(t, nil)
	loc := g.Map().Current()
	goblin := entity.NewEnemy("Goblin")
	loc.PlaceEnemy(goblin)

	if err := g.Handle(context.Background(), "a"); err != nil {
		t.Fatalf("Handle(a) error = %v", err)
	}

	if goblin.IsAlive() {
		t.Error("goblin should be dead")
	}
	if loc.HasEnemy() {
		t.Error("HasEnemy() after kill = true")
	}
	if g.Player().Health() != entity.StartingHealth {
		t.Errorf("attacking cost the player health: %d", g.Player().Health())
	}
	if got, want := term.out.String(), "You attacked the Goblin!\nYou defeated the Goblin!\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestAttackNoEnemy(t *testing.T) {
	g, term := newRunningGame(t, nil)
	loc := g.Map().Current()

	if err := g.Handle(context.Background(), "A"); err != nil {
		t.Fatalf("Handle(A) error = %v", err)
	}
	if got := term.out.String(); got != "No enemy to attack here.\n" {
		t.Errorf("output = %q", got)
	}
	if g.Map().Current() != loc || loc.HasEnemy() || g.Player().Health() != entity.StartingHealth {
		t.Error("attacking nothing changed state")
	}
}

func TestTalk(t *testing.T) {
	g, term := newRunningGame(t, nil)

	if err := g.Handle(context.Background(), "t"); err != nil {
		t.Fatalf("Handle(t) error = %v", err)
	}
	if got := term.out.String(); got != "No NPC to talk to here.\n" {
		t.Errorf("output without NPC = %q", got)
	}

	term.reset()
	g.Map().Current().PlaceNPC(entity.NewNPC("Old Hermit", "The roads shift."))

	for i := 0; i < 2; i++ {
		if err := g.Handle(context.Background(), "T"); err != nil {
			t.Fatalf("Handle(T) error = %v", err)
		}
	}
	want := strings.Repeat("Old Hermit says: 'The roads shift.'\n", 2)
	if got := term.out.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
	if !g.Map().Current().HasNPC() {
		t.Error("talking removed the NPC")
	}
}

func TestPickup(t *testing.T) {
	g, term := newRunningGame(t, nil)
	loc := g.Map().Current()
	potion := entity.NewItem("Healing Potion", "It smells faintly of mint.")
	loc.PlaceItem(potion)

	if err := g.Handle(context.Background(), "p"); err != nil {
		t.Fatalf("Handle(p) error = %v", err)
	}
	if got, want := term.out.String(), "You picked up Healing Potion: It smells faintly of mint.\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
	if loc.HasItem() {
		t.Error("HasItem() after pickup = true")
	}
	if g.Player().Inventory().Get("Healing Potion") != potion {
		t.Error("potion not in inventory")
	}

	term.reset()
	if err := g.Handle(context.Background(), "P"); err != nil {
		t.Fatalf("Handle(P) error = %v", err)
	}
	if got := term.out.String(); got != "No item to pick up here.\n" {
		t.Errorf("second pickup output = %q", got)
	}
	if g.Player().Inventory().Len() != 1 {
		t.Errorf("Inventory().Len() = %d, want 1", g.Player().Inventory().Len())
	}
}

func TestQuit(t *testing.T) {
	g, term := newRunningGame(t, nil)

	if err := g.Handle(context.Background(), "Q"); err != nil {
		t.Fatalf("Handle(Q) error = %v", err)
	}
	if g.State() != StateTerminated || g.Reason() != ReasonPlayerQuit {
		t.Errorf("after quit: state=%v reason=%v", g.State(), g.Reason())
	}
	if got := term.out.String(); got != "Exiting the game. Goodbye!\n" {
		t.Errorf("output = %q", got)
	}
}

func TestMoveAwayFromEnemyTakesDamage(t *testing.T) {
	g, term := newRunningGame(t, nil)
	g.Map().Current().PlaceEnemy(entity.NewEnemy("Goblin"))
	term.feed("4")

	if err := g.Handle(context.Background(), "m"); err != nil {
		t.Fatalf("Handle(m) error = %v", err)
	}

	if g.Player().Health() != entity.StartingHealth-entity.DefaultDamage {
		t.Errorf("Health() = %d, want %d", g.Player().Health(), entity.StartingHealth-entity.DefaultDamage)
	}
	if got := g.Map().Current().Name(); got != "New Location 4" {
		t.Errorf("location = %q, want New Location 4", got)
	}
	assertInOrder(t, term.out.String(),
		"The Goblin strikes you as you leave! Health: 90\n",
		"You moved to New Location 4.\n",
	)
}

func TestMoveAwayAfterKillIsFree(t *testing.T) {
	g, term := newRunningGame(t, nil)
	g.Map().Current().PlaceEnemy(entity.NewEnemy("Goblin"))

	if err := g.Handle(context.Background(), "a"); err != nil {
		t.Fatalf("Handle(a) error = %v", err)
	}
	term.feed("1")
	if err := g.Handle(context.Background(), "m"); err != nil {
		t.Fatalf("Handle(m) error = %v", err)
	}
	if g.Player().Health() != entity.StartingHealth {
		t.Errorf("Health() = %d, want %d", g.Player().Health(), entity.StartingHealth)
	}
}

func TestDamageAccumulation(t *testing.T) {
	g, term := newRunningGame(t, fixedPopulator{enemy: true})
	ctx := context.Background()

	// The first move leaves the empty starting area for free.
	term.feed("1")
	if err := g.Handle(ctx, "m"); err != nil {
		t.Fatalf("Handle(m) error = %v", err)
	}

	for i := 1; i <= 9; i++ {
		term.feed("2")
		if err := g.Handle(ctx, "m"); err != nil {
			t.Fatalf("move %d error = %v", i, err)
		}
	}
	if g.Player().Health() != 10 {
		t.Fatalf("Health() after nine hits = %d, want 10", g.Player().Health())
	}
	if g.State() != StateRunning {
		t.Fatalf("State() after nine hits = %v, want running", g.State())
	}

	before := g.Map().Current()
	term.reset()
	term.feed("3")
	if err := g.Handle(ctx, "m"); err != nil {
		t.Fatalf("final move error = %v", err)
	}

	if g.Player().Health() != 0 {
		t.Errorf("Health() after ten hits = %d, want 0", g.Player().Health())
	}
	if g.State() != StateTerminated || g.Reason() != ReasonPlayerDefeated {
		t.Errorf("state=%v reason=%v, want terminated/defeated", g.State(), g.Reason())
	}
	if g.Map().Current() != before {
		t.Error("defeated player still moved")
	}
	assertInOrder(t, term.out.String(),
		"The Goblin strikes you as you leave! Health: 0\n",
		"You have been defeated. Game over!\n",
	)
	if strings.Contains(term.out.String(), "You moved to") {
		t.Error("move message printed after defeat")
	}
}

func TestPopulatedLocationFullRound(t *testing.T) {
	g, term := newRunningGame(t, fixedPopulator{enemy: true, npc: true, item: true})
	ctx := context.Background()

	term.feed("2")
	for _, cmd := range []string{"m", "t", "p", "a"} {
		if err := g.Handle(ctx, cmd); err != nil {
			t.Fatalf("Handle(%q) error = %v", cmd, err)
		}
	}

	loc := g.Map().Current()
	if loc.HasEnemy() || loc.HasItem() {
		t.Error("enemy or item left behind")
	}
	if !loc.HasNPC() {
		t.Error("NPC should remain")
	}
	if !g.Player().Inventory().Has("Torn Map") {
		t.Error("map not picked up")
	}
	assertInOrder(t, term.out.String(),
		"You moved to New Location 2.\n",
		"Bard says: 'Every place here is new.'\n",
		"You picked up Torn Map: None of the places on it exist anymore.\n",
		"You attacked the Goblin!\n",
		"You defeated the Goblin!\n",
	)
}
