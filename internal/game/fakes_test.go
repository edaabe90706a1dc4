package game

import (
	"errors"
	"math/rand/v2"
)

var errScriptExhausted = errors.New("script exhausted")

// scriptedRandom returns the queued numbers in order, then falls back to min.
type scriptedRandom struct {
	nums  []int
	calls int
}

func (r *scriptedRandom) PickNumberInRange(min, max int) int {
	r.calls++
	if len(r.nums) == 0 {
		return min
	}
	n := r.nums[0]
	r.nums = r.nums[1:]
	return n
}

type pcgRandom struct {
	r *rand.Rand
}

func (p pcgRandom) PickNumberInRange(min, max int) int {
	return min + p.r.IntN(max-min+1)
}

type scriptedGuesses struct {
	answers []Sequence
}

func (g *scriptedGuesses) GetUserAnswer() (Sequence, error) {
	if len(g.answers) == 0 {
		return nil, errScriptExhausted
	}
	a := g.answers[0]
	g.answers = g.answers[1:]
	return a, nil
}

type scriptedReplay struct {
	choices []bool
	out     *recordingOutput
}

func (r *scriptedReplay) GetReplayRequest() (bool, error) {
	if len(r.choices) == 0 {
		return false, errScriptExhausted
	}
	if r.out != nil {
		r.out.PrintToUser("게임을 새로 시작하려면 1, 종료하려면 2를 입력하세요.")
	}
	c := r.choices[0]
	r.choices = r.choices[1:]
	return c, nil
}

type recordingOutput struct {
	lines []string
}

func (o *recordingOutput) PrintToUser(message string) {
	o.lines = append(o.lines, message)
}
