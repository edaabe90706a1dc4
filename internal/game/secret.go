package game

import "fmt"

// SecretGenerator draws secrets of SequenceLen pairwise-distinct digits.
type SecretGenerator struct {
	rnd      RandomRangeProvider
	maxDraws int // 0 => unlimited
}

func NewSecretGenerator(rnd RandomRangeProvider, maxDraws int) *SecretGenerator {
	return &SecretGenerator{rnd: rnd, maxDraws: maxDraws}
}

// Create rejection-samples digits until SequenceLen distinct ones are accepted.
func (g *SecretGenerator) Create() (Sequence, error) {
	secret := make(Sequence, 0, SequenceLen)

	for draws := 0; len(secret) < SequenceLen; draws++ {
		if g.maxDraws > 0 && draws >= g.maxDraws {
			return nil, fmt.Errorf("%w: %d draws, %d distinct digits", ErrDrawLimit, draws, len(secret))
		}

		d := Digit(g.rnd.PickNumberInRange(int(MinDigit), int(MaxDigit)))
		if d < MinDigit || d > MaxDigit {
			return nil, fmt.Errorf("%w: provider returned %d", ErrDigitOutOfRange, d)
		}
		if secret.contains(d) {
			continue
		}
		secret = append(secret, d)
	}

	return secret, nil
}
