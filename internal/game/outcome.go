package game

// Outcome what is known about a round. The secret is only set once the round
// is over; Replay is resolved after the replay prompt.
type Outcome struct {
	RoundID string `json:"roundId"`
	Round   int    `json:"round"`

	Secret  Sequence `json:"secret,omitempty"`
	Guesses int      `json:"guesses"`

	Replay bool `json:"replay"`
}

func (s *Session) outcome() Outcome {
	out := Outcome{
		RoundID: s.roundID,
		Round:   s.round,
		Guesses: s.guesses,
		Replay:  s.replay,
	}
	if s.phase != PhaseAwaitingGuess && s.phase != PhaseScoring {
		out.Secret = append(Sequence(nil), s.secret...)
	}
	return out
}
