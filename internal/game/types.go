package game

import "errors"

// SequenceLen is the number of digits in a secret and in a guess.
const SequenceLen = 3

const (
	MinDigit Digit = 1
	MaxDigit Digit = 9
)

var (
	ErrInvalidGuessLength = errors.New("guess length does not match secret length")
	ErrDigitOutOfRange    = errors.New("digit out of range")
	ErrDrawLimit          = errors.New("random provider exhausted draw limit")
)

// Digit single decimal digit, 1..9 for secrets and guesses
type Digit int

type Sequence []Digit

// Seq builds a Sequence from plain ints.
func Seq(ds ...int) Sequence {
	s := make(Sequence, len(ds))
	for i, d := range ds {
		s[i] = Digit(d)
	}
	return s
}

func (s Sequence) contains(d Digit) bool {
	for _, x := range s {
		if x == d {
			return true
		}
	}
	return false
}

// Phase session state machine
type Phase string

const (
	PhaseAwaitingGuess  Phase = "awaiting_guess"
	PhaseScoring        Phase = "scoring"
	PhaseRoundOver      Phase = "round_over"
	PhaseAwaitingReplay Phase = "awaiting_replay_choice"
	PhaseNewRound       Phase = "new_round"
	PhaseTerminated     Phase = "terminated"
)

// Fixed user-facing messages.
const (
	MsgGreeting = "숫자 야구 게임을 시작합니다."
	MsgRoundEnd = "3개의 숫자를 모두 맞히셨습니다! 게임 종료"
)

// RandomRangeProvider returns an integer in [min, max] inclusive.
type RandomRangeProvider interface {
	PickNumberInRange(min, max int) int
}

// GuessInput obtains a guess already parsed into digits.
type GuessInput interface {
	GetUserAnswer() (Sequence, error)
}

// ReplayInput asks whether to start a new round: true = new round, false = quit.
type ReplayInput interface {
	GetReplayRequest() (bool, error)
}

type Output interface {
	PrintToUser(message string)
}
