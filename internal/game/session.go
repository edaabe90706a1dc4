package game

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

type Config struct {
	MaxDraws int // cap on random draws per secret, 0 => unlimited
}

// Deps collaborators of a session. All of them are required.
type Deps struct {
	Random  RandomRangeProvider
	Guesses GuessInput
	Replay  ReplayInput
	Output  Output
}

func (d Deps) validate() error {
	if d.Random == nil || d.Guesses == nil || d.Replay == nil || d.Output == nil {
		return errors.New("game: session deps must all be set")
	}
	return nil
}

// Session plays rounds until the player declines a replay.
// Not safe for concurrent use.
type Session struct {
	log     *slog.Logger
	secrets *SecretGenerator
	in      GuessInput
	replayI ReplayInput
	out     Output

	phase Phase

	roundID string
	round   int
	secret  Sequence
	guesses int
	replay  bool
}

func NewSession(cfg Config, deps Deps, log *slog.Logger) (*Session, error) {
	if err := deps.validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = slog.Default()
	}
	return &Session{
		log:     log,
		secrets: NewSecretGenerator(deps.Random, cfg.MaxDraws),
		in:      deps.Guesses,
		replayI: deps.Replay,
		out:     deps.Output,
		phase:   PhaseNewRound,
	}, nil
}

func (s *Session) Phase() Phase { return s.phase }

// Run greets the player and plays rounds until a replay is declined.
// Errors from collaborators end the session.
func (s *Session) Run() error {
	s.out.PrintToUser(MsgGreeting)

	for {
		out, err := s.PlayRound()
		if err != nil {
			return err
		}
		if !out.Replay {
			s.log.Info("session terminated", "rounds", out.Round)
			return nil
		}
	}
}

// PlayRound plays one round from a fresh secret through the replay choice.
// On return the phase is PhaseNewRound or PhaseTerminated.
func (s *Session) PlayRound() (Outcome, error) {
	if s.phase == PhaseTerminated {
		return s.outcome(), errors.New("game: session already terminated")
	}
	if err := s.startRound(); err != nil {
		return s.outcome(), err
	}

	for s.phase == PhaseAwaitingGuess {
		guess, err := s.in.GetUserAnswer()
		if err != nil {
			return s.outcome(), fmt.Errorf("read guess: %w", err)
		}
		if err := s.scoreGuess(guess); err != nil {
			return s.outcome(), err
		}
	}

	s.out.PrintToUser(MsgRoundEnd)
	s.phase = PhaseAwaitingReplay
	s.log.Info("round over", "round_id", s.roundID, "round", s.round, "guesses", s.guesses)

	again, err := s.replayI.GetReplayRequest()
	if err != nil {
		return s.outcome(), fmt.Errorf("read replay choice: %w", err)
	}
	s.replay = again

	out := s.outcome()

	// secret does not outlive its round
	s.secret = nil
	if again {
		s.phase = PhaseNewRound
	} else {
		s.phase = PhaseTerminated
	}
	return out, nil
}

func (s *Session) startRound() error {
	secret, err := s.secrets.Create()
	if err != nil {
		return fmt.Errorf("create secret: %w", err)
	}

	s.round++
	s.roundID = uuid.NewString()
	s.secret = secret
	s.guesses = 0
	s.replay = false
	s.phase = PhaseAwaitingGuess

	s.log.Info("round started", "round_id", s.roundID, "round", s.round)
	s.log.Debug("secret drawn", "round_id", s.roundID, "secret", fmt.Sprint(secret))
	return nil
}

func (s *Session) scoreGuess(guess Sequence) error {
	s.phase = PhaseScoring
	s.guesses++

	sc, err := NewScore(s.secret, guess)
	if err != nil {
		return fmt.Errorf("score guess: %w", err)
	}
	s.out.PrintToUser(sc.String())
	s.log.Debug("guess scored", "round_id", s.roundID, "guess", fmt.Sprint(guess), "strikes", sc.Strikes(), "balls", sc.Balls())

	if sc.IsThreeStrikes() {
		s.phase = PhaseRoundOver
		return nil
	}
	s.phase = PhaseAwaitingGuess
	return nil
}
