// Package game wires a board, a knowledge base and an agent into playable
// sessions: single games driven step by step (solve, the TUI) and seeded
// batch simulations.
package game

import (
	"context"
	"errors"
	"math/rand"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"sweepmind/internal/agent"
	"sweepmind/internal/board"
	"sweepmind/internal/knowledge"
	"sweepmind/internal/types"
)

// Outcome is the terminal state of a session.
type Outcome int

const (
	// OutcomeInProgress means the session has moves left to play.
	OutcomeInProgress Outcome = iota
	// OutcomeWon means every mine was flagged.
	OutcomeWon
	// OutcomeLost means the agent probed a mine.
	OutcomeLost
	// OutcomeStalled means no move was available (board fully accounted for
	// without the flag set matching the mines, which cannot happen on a
	// consistent board, or the selector ran dry).
	OutcomeStalled
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	case OutcomeStalled:
		return "stalled"
	default:
		return "in progress"
	}
}

// MoveKind says how a move was chosen.
type MoveKind int

const (
	// MoveSafe is a move drawn from the proven-safe set.
	MoveSafe MoveKind = iota
	// MoveRandom is a uniform pick among unknown cells.
	MoveRandom
)

func (k MoveKind) String() string {
	if k == MoveSafe {
		return "safe"
	}
	return "random"
}

// Step is the record of one played move.
type Step struct {
	Cell    types.Cell
	Kind    MoveKind
	Count   int // nearby mines reported by the board; meaningless on a loss
	Outcome Outcome
}

// Result summarizes a finished session.
type Result struct {
	ID        uuid.UUID
	Outcome   Outcome
	Moves     int
	Flagged   int
	Sentences int // live sentences left in the base at the end
}

// Session plays one game. It owns the knowledge base and the flag set; the
// board stays ground truth on the other side of the observation interface.
type Session struct {
	id      uuid.UUID
	board   *board.Board
	kb      *knowledge.Base
	agent   *agent.Agent
	flagged types.CellSet
	seen    map[types.Cell]int
	outcome Outcome
	moves   int
	log     *zap.Logger
}

// NewSession creates a session over b. The rng drives both move selection
// tie-breaks and random moves. A nil logger defaults to zap.NewNop().
func NewSession(b *board.Board, rng *rand.Rand, log *zap.Logger) *Session {
	if log == nil {
		log = zap.NewNop()
	}
	id := uuid.New()
	log = log.With(zap.String("session", id.String()))
	kb := knowledge.NewBase(b.Height(), b.Width(), log)
	return &Session{
		id:      id,
		board:   b,
		kb:      kb,
		agent:   agent.New(kb, rng),
		flagged: make(types.CellSet),
		seen:    make(map[types.Cell]int),
		outcome: OutcomeInProgress,
		log:     log,
	}
}

// ID returns the session's correlation ID.
func (s *Session) ID() uuid.UUID { return s.id }

// Board returns the board under play.
func (s *Session) Board() *board.Board { return s.board }

// Knowledge returns the session's knowledge base for read-only display.
func (s *Session) Knowledge() *knowledge.Base { return s.kb }

// Flagged returns a copy of the mines flagged so far.
func (s *Session) Flagged() types.CellSet { return s.flagged.Clone() }

// Observations returns the nearby-mine count for every revealed cell.
func (s *Session) Observations() map[types.Cell]int {
	out := make(map[types.Cell]int, len(s.seen))
	for c, n := range s.seen {
		out[c] = n
	}
	return out
}

// Outcome returns the session's current terminal state.
func (s *Session) Outcome() Outcome { return s.outcome }

// Done reports whether the session has ended.
func (s *Session) Done() bool { return s.outcome != OutcomeInProgress }

// ErrSessionOver is returned by Step once the session has a terminal outcome.
var ErrSessionOver = errors.New("game: session already over")

// Step plays one move: a safe move when the base knows one, else a random
// probe. Probing a mine loses; flagging the last mine wins; having no move
// stalls. The error return is reserved for engine faults (an inconsistent
// knowledge base), never for losing.
func (s *Session) Step() (Step, error) {
	if s.Done() {
		return Step{}, ErrSessionOver
	}

	move, ok := s.agent.SafeMove()
	kind := MoveSafe
	if !ok {
		move, ok = s.agent.RandomMove()
		kind = MoveRandom
	}
	if !ok {
		s.outcome = OutcomeStalled
		s.log.Info("no move available", zap.Int("moves", s.moves))
		return Step{Outcome: s.outcome}, nil
	}

	s.moves++
	if s.board.IsMine(move) {
		s.outcome = OutcomeLost
		s.log.Info("probed a mine", zap.Stringer("cell", move), zap.Stringer("kind", kind))
		return Step{Cell: move, Kind: kind, Outcome: s.outcome}, nil
	}

	count := s.board.NearbyMines(move)
	s.seen[move] = count
	s.log.Debug("observing", zap.Stringer("cell", move), zap.Stringer("kind", kind), zap.Int("nearby", count))
	if err := s.kb.Observe(move, count); err != nil {
		return Step{Cell: move, Kind: kind, Count: count}, err
	}

	// Flag every mine the base has proven; the win check is the driver's
	// job, against ground truth the engine never sees.
	s.flagged = s.kb.Mines()
	if s.board.Won(s.flagged) {
		s.outcome = OutcomeWon
		s.log.Info("all mines flagged", zap.Int("moves", s.moves))
	}
	return Step{Cell: move, Kind: kind, Count: count, Outcome: s.outcome}, nil
}

// Play runs the session to completion, honoring ctx between steps.
func (s *Session) Play(ctx context.Context) (Result, error) {
	for !s.Done() {
		if err := ctx.Err(); err != nil {
			return s.result(), err
		}
		if _, err := s.Step(); err != nil {
			return s.result(), err
		}
	}
	return s.result(), nil
}

func (s *Session) result() Result {
	return Result{
		ID:        s.id,
		Outcome:   s.outcome,
		Moves:     s.moves,
		Flagged:   len(s.flagged),
		Sentences: s.kb.SentenceCount(),
	}
}
