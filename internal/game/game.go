package game

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/samdwyer/simplerpg/internal/entity"
	"github.com/samdwyer/simplerpg/internal/gamedata"
	"github.com/samdwyer/simplerpg/internal/logging"
	"github.com/samdwyer/simplerpg/internal/telemetry"
	"github.com/samdwyer/simplerpg/internal/ui"
	"github.com/samdwyer/simplerpg/internal/world"
)

// ErrNotRunning is returned when a command arrives before setup or after termination.
var ErrNotRunning = errors.New("game: session is not running")

// Game holds the entire session state.
type Game struct {
	term      ui.Terminal
	log       *logrus.Logger
	cfg       Config
	sessionID uuid.UUID

	player *entity.Character
	world  *world.Map
	state  State
	reason Reason
	turns  int
}

// New creates a game that talks through term. Nothing is read until Run.
// A nil log discards all entries.
func New(term ui.Terminal, cfg Config, log *logrus.Logger) *Game {
	if log == nil {
		log = logging.Discard()
	}
	return &Game{
		term:      term,
		log:       log,
		cfg:       cfg,
		sessionID: uuid.New(),
		state:     StateSetup,
	}
}

// State returns the current session state.
func (g *Game) State() State { return g.state }

// Reason returns why the session terminated, or ReasonNone while running.
func (g *Game) Reason() Reason { return g.reason }

// Player returns the player character, or nil before setup.
func (g *Game) Player() *entity.Character { return g.player }

// Map returns the map, or nil before setup.
func (g *Game) Map() *world.Map { return g.world }

// Turns returns the number of commands handled.
func (g *Game) Turns() int { return g.turns }

// Run executes the session: setup, then the command loop until the player
// quits or is defeated. It returns the termination reason.
func (g *Game) Run(ctx context.Context) (Reason, error) {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.session")
	defer span.End()
	span.SetAttributes(attribute.String("session.id", g.sessionID.String()))

	g.term.Println(msgBanner)

	if err := g.setup(ctx); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "setup failed")
		return ReasonNone, err
	}
	span.SetAttributes(attribute.String("player.name", g.player.Name()))

	g.term.Println(fmt.Sprintf(msgGreeting, g.player.Name(), g.world.Current().Name()))

	for g.state == StateRunning {
		g.showOptions()

		line, err := g.term.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				g.log.Info("input closed, ending session")
				g.quit()
				break
			}
			span.RecordError(err)
			span.SetStatus(codes.Error, "read failed")
			return ReasonNone, fmt.Errorf("read command: %w", err)
		}

		if err := g.Handle(ctx, line); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "command failed")
			return ReasonNone, err
		}
	}

	span.SetAttributes(
		attribute.String("outcome", g.reason.String()),
		attribute.Int("turns", g.turns),
		attribute.Int("player.health", g.player.Health()),
		attribute.Int("player.items", g.player.Inventory().Len()),
	)
	g.log.WithFields(logrus.Fields{
		"session": g.sessionID.String(),
		"outcome": g.reason.String(),
		"turns":   g.turns,
		"health":  g.player.Health(),
		"items":   g.player.Inventory().Names(),
	}).Info("session ended")

	return g.reason, nil
}

// setup reads the player name and builds the map. Both must succeed before
// the session starts running.
func (g *Game) setup(ctx context.Context) error {
	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "game.init")
	defer span.End()

	g.term.Print(msgNamePrompt)
	name, err := g.term.ReadLine()
	if err != nil {
		return fmt.Errorf("read player name: %w", err)
	}

	populator, err := g.populator()
	if err != nil {
		return err
	}

	g.player = entity.NewCharacter(name)
	g.world = world.NewMap(populator)
	g.state = StateRunning

	span.SetAttributes(
		attribute.Bool("map.populated", populator != nil),
		attribute.String("location.name", g.world.Current().Name()),
	)
	g.log.WithFields(logrus.Fields{
		"session": g.sessionID.String(),
		"player":  name,
	}).Info("session started")
	return nil
}

// populator picks the location populator the config asks for, if any.
func (g *Game) populator() (world.Populator, error) {
	if g.cfg.Populator != nil {
		return g.cfg.Populator, nil
	}
	if !g.cfg.Populate {
		return nil, nil
	}
	catalog, err := gamedata.LoadCatalog()
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return world.NewCatalogPopulator(catalog, world.DefaultChances(), g.cfg.Seed), nil
}

// showOptions prints the command menu and prompt.
func (g *Game) showOptions() {
	g.term.Println(msgOptionsHead)
	for _, option := range menuOptions {
		g.term.Println(option)
	}
	g.term.Print(msgChoice)
}

// Handle interprets one command line. It returns an error only when the
// terminal fails or the session is not running.
func (g *Game) Handle(ctx context.Context, line string) error {
	if g.state != StateRunning {
		return ErrNotRunning
	}

	cmd := ParseCommand(line)

	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.command")
	defer span.End()
	span.SetAttributes(
		attribute.String("command", cmd.String()),
		attribute.String("location.name", g.world.Current().Name()),
	)

	var (
		result string
		err    error
	)
	switch cmd {
	case CommandMove:
		result, err = g.move(ctx)
	case CommandAttack:
		result = g.attack()
	case CommandTalk:
		result = g.talk()
	case CommandPickup:
		result = g.pickup()
	case CommandQuit:
		result = g.quit()
	default:
		g.term.Println(msgInvalid)
		result = "invalid"
	}
	g.turns++

	span.SetAttributes(
		attribute.String("result", result),
		attribute.Int("player.health", g.player.Health()),
	)
	g.log.WithFields(logrus.Fields{
		"command":  cmd.String(),
		"result":   result,
		"location": g.world.Current().Name(),
		"health":   g.player.Health(),
	}).Debug("command handled")

	if err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}

// defeat ends the session with ReasonPlayerDefeated.
func (g *Game) defeat() {
	g.term.Println(msgDefeated)
	g.terminate(ReasonPlayerDefeated)
}

// terminate moves to StateTerminated. The first reason wins.
func (g *Game) terminate(reason Reason) {
	if g.state == StateTerminated {
		return
	}
	g.state = StateTerminated
	g.reason = reason
}
