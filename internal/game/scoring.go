package game

import (
	"fmt"
	"strconv"
	"strings"
)

// Score strike/ball count of one guess against the secret.
type Score struct {
	strikes int
	balls   int
}

// NewScore compares guess with secret.
// Strikes are positional. A ball is a non-strike guess position whose digit
// sits at some non-strike position of the secret; every such guess position
// counts on its own, so a repeated guess digit may score more than once.
func NewScore(secret, guess Sequence) (Score, error) {
	if len(secret) != len(guess) {
		return Score{}, fmt.Errorf("%w: secret=%d guess=%d", ErrInvalidGuessLength, len(secret), len(guess))
	}

	var sc Score
	struck := make([]bool, len(secret))

	// strikes
	for i := range secret {
		if !validDigit(secret[i]) || !validDigit(guess[i]) {
			return Score{}, fmt.Errorf("%w: position %d", ErrDigitOutOfRange, i)
		}
		if secret[i] == guess[i] {
			sc.strikes++
			struck[i] = true
		}
	}

	// secret digits left over after strikes
	var left [10]bool
	for i, d := range secret {
		if !struck[i] {
			left[d] = true
		}
	}

	for i, d := range guess {
		if !struck[i] && left[d] {
			sc.balls++
		}
	}

	return sc, nil
}

func validDigit(d Digit) bool {
	return d >= 0 && d <= 9
}

func (s Score) Strikes() int { return s.strikes }
func (s Score) Balls() int   { return s.balls }

func (s Score) IsThreeStrikes() bool {
	return s.strikes == SequenceLen
}

func (s Score) String() string {
	if s.strikes == 0 && s.balls == 0 {
		return "낫싱"
	}

	var parts []string
	if s.balls > 0 {
		parts = append(parts, strconv.Itoa(s.balls)+"볼")
	}
	if s.strikes > 0 {
		parts = append(parts, strconv.Itoa(s.strikes)+"스트라이크")
	}
	return strings.Join(parts, " ")
}
