// Package snake implements the snake game engine: the board, the snake's
// movement and growth, apple placement, and the play/pause/game-over state
// machine. It knows nothing about terminals; a host drives it with Tick at
// the configured interval and forwards player input.
package snake

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/looplab/fsm"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Supported range for the initial body length.
const (
	MinInitialLength = 1
	MaxInitialLength = 4
)

// Start layout from the classic game: head at (5, 5) facing right, clamped
// onto smaller boards.
const (
	startColumn = 5
	startRow    = 5
)

// GameState is the engine's lifecycle state.
type GameState int

const (
	// Stopped waits for the first direction of a round, or is paused.
	Stopped GameState = iota
	// Playing advances on every tick.
	Playing
	// Over is the end of a round. The engine leaves it immediately by
	// starting a fresh round.
	Over
)

func (s GameState) String() string {
	switch s {
	case Stopped:
		return "stopped"
	case Playing:
		return "playing"
	case Over:
		return "over"
	default:
		return "unknown"
	}
}

func parseGameState(name string) GameState {
	switch name {
	case "playing":
		return Playing
	case "over":
		return Over
	default:
		return Stopped
	}
}

// State machine events.
const (
	eventStart = "start"
	eventStop  = "stop"
	eventEnd   = "end"
	eventReset = "reset"
)

// Outcome describes what a tick did.
type Outcome int

const (
	OutcomeNone     Outcome = iota
	OutcomeMoved            // Advanced one cell
	OutcomeAte              // Ate the apple and grew
	OutcomeCollided         // Hit a wall or itself, round over
	OutcomeFilled           // Filled the board, round over (a win)
)

func (o Outcome) String() string {
	switch o {
	case OutcomeMoved:
		return "moved"
	case OutcomeAte:
		return "ate"
	case OutcomeCollided:
		return "collided"
	case OutcomeFilled:
		return "filled"
	default:
		return "none"
	}
}

// EndReason says why a round ended.
type EndReason int

const (
	ReasonCollision EndReason = iota
	ReasonBoardFull
)

func (r EndReason) String() string {
	if r == ReasonBoardFull {
		return "board full"
	}
	return "collision"
}

// RoundOver is emitted when a round ends, before the next one is set up.
type RoundOver struct {
	Round      int
	FinalScore int
	Reason     EndReason
	// FinalBody is the head-first body at the moment of death. On a collision
	// it includes the cell the head tried to enter, so the host can draw the
	// crash frame if it wants to.
	FinalBody []core.Position
}

// Won reports whether the round ended by filling the board.
func (r RoundOver) Won() bool {
	return r.Reason == ReasonBoardFull
}

// Engine is the tick-driven snake game. It is not safe for concurrent use:
// the host must serialize Tick and all input calls.
type Engine struct {
	grid       core.Grid
	initialLen int
	cfg        Config

	seed          int64
	spawnAttempts int
	spawner       *Spawner
	machine       *fsm.FSM
	logger        *log.Logger

	snake *Snake
	apple core.Position
	score int
	round int

	onRoundOver    func(RoundOver)
	onStateChanged func()
}

// Option customizes an Engine.
type Option func(*Engine)

// WithSeed fixes the RNG seed used for apple placement.
func WithSeed(seed int64) Option {
	return func(e *Engine) {
		e.seed = seed
	}
}

// WithLogger sets the logger for state transitions and round results.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithSpawnAttempts bounds the random samples per apple before the spawner
// falls back to scanning.
func WithSpawnAttempts(n int) Option {
	return func(e *Engine) {
		e.spawnAttempts = n
	}
}

// New creates an engine for a width x height board and sets up the first
// round in the Stopped state.
func New(width, height, initialLength int, cfg Config, opts ...Option) (*Engine, error) {
	if width <= 0 {
		return nil, &ConfigError{Field: "width", Value: width, Reason: "must be positive"}
	}
	if height <= 0 {
		return nil, &ConfigError{Field: "height", Value: height, Reason: "must be positive"}
	}
	if initialLength < MinInitialLength || initialLength > MaxInitialLength {
		return nil, &ConfigError{
			Field:  "initial_length",
			Value:  initialLength,
			Reason: fmt.Sprintf("must be between %d and %d", MinInitialLength, MaxInitialLength),
		}
	}
	if width < initialLength {
		return nil, &ConfigError{Field: "width", Value: width, Reason: "narrower than the initial body"}
	}
	if width*height <= initialLength {
		return nil, &ConfigError{Field: "grid", Value: fmt.Sprintf("%dx%d", width, height), Reason: "no free cell for the apple"}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{
		grid:       core.NewGrid(width, height),
		initialLen: initialLength,
		cfg:        cfg,
		seed:       time.Now().UnixNano(),
		logger:     log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(e)
	}

	e.spawner = NewSpawner(rand.New(rand.NewSource(e.seed)), e.spawnAttempts)
	e.machine = fsm.NewFSM(
		Stopped.String(),
		fsm.Events{
			{Name: eventStart, Src: []string{Stopped.String()}, Dst: Playing.String()},
			{Name: eventStop, Src: []string{Playing.String()}, Dst: Stopped.String()},
			{Name: eventEnd, Src: []string{Playing.String()}, Dst: Over.String()},
			{Name: eventReset, Src: []string{Over.String()}, Dst: Stopped.String()},
		},
		fsm.Callbacks{
			"enter_state": func(_ context.Context, ev *fsm.Event) {
				e.logger.Debug("state changed", "event", ev.Event, "from", ev.Src, "to", ev.Dst)
			},
		},
	)

	e.newRound()
	e.logger.Debug("engine ready", "width", width, "height", height, "initial_length", initialLength, "config", cfg)
	return e, nil
}

// OnRoundOver registers the round-over handler, replacing any previous one.
func (e *Engine) OnRoundOver(fn func(RoundOver)) {
	e.onRoundOver = fn
}

// OnStateChanged registers the redraw hint handler, replacing any previous one.
func (e *Engine) OnStateChanged(fn func()) {
	e.onStateChanged = fn
}

// State returns the current lifecycle state.
func (e *Engine) State() GameState {
	return parseGameState(e.machine.Current())
}

// Config returns the current settings.
func (e *Engine) Config() Config {
	return e.cfg
}

// Grid returns the board geometry.
func (e *Engine) Grid() core.Grid {
	return e.grid
}

// Start begins ticking from Stopped.
func (e *Engine) Start() error {
	if e.State() != Stopped {
		return fmt.Errorf("%w: start while %s", ErrInvalidTransition, e.State())
	}
	if e.snake.NextDirection() == e.snake.Direction().Opposite() {
		return fmt.Errorf("%w: buffered direction reverses the snake", ErrInvalidTransition)
	}
	if err := e.fire(eventStart); err != nil {
		return err
	}
	e.changed()
	return nil
}

// Stop pauses a Playing engine, keeping the snake, apple and score. It does
// nothing in any other state, so it is safe to call repeatedly.
func (e *Engine) Stop() {
	if e.State() != Playing {
		return
	}
	if err := e.fire(eventStop); err != nil {
		e.logger.Error("stop failed", "error", err)
		return
	}
	e.changed()
}

// HandleDirectionInput buffers a direction request. From Stopped an accepted
// request also starts the round. Rejected or invalid requests are ignored.
func (e *Engine) HandleDirectionInput(d core.Direction) {
	if !d.Valid() {
		return
	}
	switch e.State() {
	case Stopped:
		if !e.snake.SetNextDirection(d, false) {
			return
		}
		if err := e.Start(); err != nil {
			e.logger.Error("start failed", "error", err)
		}
	case Playing:
		e.snake.SetNextDirection(d, true)
	}
}

// HandlePauseInput pauses the game while playing.
func (e *Engine) HandlePauseInput() {
	e.Stop()
}

// ApplySettings replaces the settings. The current round is not touched; a
// new speed takes effect from the host's next scheduled tick.
func (e *Engine) ApplySettings(speed SpeedTier, theme int) error {
	cfg := Config{Speed: speed, Theme: theme}
	if err := cfg.Validate(); err != nil {
		return err
	}
	e.cfg = cfg
	e.logger.Debug("settings applied", "config", cfg)
	e.changed()
	return nil
}

// Tick advances the game by one cell. It returns ErrNotPlaying, without
// changing anything, outside the Playing state.
func (e *Engine) Tick() (Outcome, error) {
	if e.State() != Playing {
		return OutcomeNone, ErrNotPlaying
	}

	e.snake.commitDirection()
	nh := e.snake.NextHead()

	// Self collision is checked against the whole body, tail included.
	if e.snake.Contains(nh) || !e.grid.Contains(nh) {
		body := append([]core.Position{nh}, e.snake.Body()...)
		e.endRound(ReasonCollision, body)
		return OutcomeCollided, nil
	}

	if nh == e.apple {
		e.snake.MoveHead(nh)
		e.score++
		apple, err := e.spawner.Spawn(e.grid, e.snake)
		if err != nil {
			e.endRound(ReasonBoardFull, e.snake.Body())
			return OutcomeFilled, nil
		}
		e.apple = apple
		e.changed()
		return OutcomeAte, nil
	}

	e.snake.MoveHead(nh)
	e.snake.CutTail()
	e.changed()
	return OutcomeMoved, nil
}

// endRound moves through Over, reports the result, and sets up a new round.
func (e *Engine) endRound(reason EndReason, finalBody []core.Position) {
	if err := e.fire(eventEnd); err != nil {
		e.logger.Error("end round failed", "error", err)
	}

	result := RoundOver{
		Round:      e.round,
		FinalScore: e.score,
		Reason:     reason,
		FinalBody:  finalBody,
	}
	e.logger.Info("round over", "round", result.Round, "score", result.FinalScore, "reason", reason)
	if e.onRoundOver != nil {
		e.onRoundOver(result)
	}

	e.newRound()
	if err := e.fire(eventReset); err != nil {
		e.logger.Error("reset failed", "error", err)
	}
	e.changed()
}

// newRound places a fresh snake and apple and clears the score.
func (e *Engine) newRound() {
	head := core.Pos(min(startColumn, e.grid.Width()-1), min(startRow, e.grid.Height()/2))
	e.snake = NewSnake(head, e.initialLen, core.Right)
	e.score = 0
	e.round++

	apple, err := e.spawner.Spawn(e.grid, e.snake)
	if err != nil {
		// New validates that a fresh board has a free cell.
		panic(fmt.Sprintf("snake: no room for an apple on a fresh board: %v", err))
	}
	e.apple = apple
}

func (e *Engine) fire(event string) error {
	if err := e.machine.Event(context.Background(), event); err != nil {
		return fmt.Errorf("%w: %s from %s: %v", ErrInvalidTransition, event, e.machine.Current(), err)
	}
	return nil
}

func (e *Engine) changed() {
	if e.onStateChanged != nil {
		e.onStateChanged()
	}
}
