package game

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/samdwyer/simplerpg/internal/entity"
	"github.com/samdwyer/simplerpg/internal/logging"
	"github.com/samdwyer/simplerpg/internal/world"
)

// scriptTerminal is a test Terminal that replays canned input lines.
type scriptTerminal struct {
	inputs  []string
	readErr error // returned once inputs run out; io.EOF when nil
	out     strings.Builder
}

func newScriptTerminal(inputs ...string) *scriptTerminal {
	return &scriptTerminal{inputs: inputs}
}

func (s *scriptTerminal) Print(x string)   { s.out.WriteString(x) }
func (s *scriptTerminal) Println(x string) { s.out.WriteString(x + "\n") }
func (s *scriptTerminal) Close() error     { return nil }

func (s *scriptTerminal) ReadLine() (string, error) {
	if len(s.inputs) == 0 {
		if s.readErr != nil {
			return "", s.readErr
		}
		return "", io.EOF
	}
	line := s.inputs[0]
	s.inputs = s.inputs[1:]
	return line, nil
}

// feed queues more input lines.
func (s *scriptTerminal) feed(lines ...string) {
	s.inputs = append(s.inputs, lines...)
}

// reset clears captured output.
func (s *scriptTerminal) reset() {
	s.out.Reset()
}

// fixedPopulator places fresh occupants in every generated location.
type fixedPopulator struct {
	enemy, npc, item bool
}

func (p fixedPopulator) Populate(_ context.Context, loc *world.Location) {
	if p.enemy {
		loc.PlaceEnemy(entity.NewEnemy("Goblin"))
	}
	if p.npc {
		loc.PlaceNPC(entity.NewNPC("Bard", "Every place here is new."))
	}
	if p.item {
		loc.PlaceItem(entity.NewItem("Torn Map", "None of the places on it exist anymore."))
	}
}

// newRunningGame returns a game past setup, with the player named Hero.
func newRunningGame(t *testing.T, populator world.Populator) (*Game, *scriptTerminal) {
	t.Helper()

	term := newScriptTerminal("Hero")
	g := New(term, Config{Populator: populator}, logging.Discard())
	if err := g.setup(context.Background()); err != nil {
		t.Fatalf("setup() error = %v", err)
	}
	if g.State() != StateRunning {
		t.Fatalf("State() after setup = %v, want running", g.State())
	}
	term.reset()
	return g, term
}

// assertInOrder fails unless every want appears in out, in the given order.
func assertInOrder(t *testing.T, out string, want ...string) {
	t.Helper()

	rest := out
	for _, w := range want {
		i := strings.Index(rest, w)
		if i < 0 {
			t.Fatalf("output missing %q (in order)\nfull output:\n%s", w, out)
		}
		rest = rest[i+len(w):]
	}
}
