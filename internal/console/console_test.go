package console

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"example.com/baseball/internal/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutput_PrintToUser(t *testing.T) {
	var buf bytes.Buffer
	NewOutput(&buf).PrintToUser("Hello")
	assert.Equal(t, "Hello\n", buf.String())
}

func TestDigits(t *testing.T) {
	cases := []struct {
		n    int
		want []int
		ok   bool
	}{
		{123, []int{1, 2, 3}, true},
		{7, []int{7}, true},
		{905, []int{9, 0, 5}, true},
		{0, nil, false},
		{-12, nil, false},
	}
	for _, tc := range cases {
		got, err := Digits(tc.n)
		if !tc.ok {
			require.ErrorIs(t, err, ErrInvalidInput, "Digits(%d)", tc.n)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "Digits(%d)", tc.n)
	}
}

func TestInput_GetUserAnswer(t *testing.T) {
	var out bytes.Buffer
	in := NewInput(strings.NewReader("351\n"), &out)

	got, err := in.GetUserAnswer()
	require.NoError(t, err)
	assert.Equal(t, game.Seq(3, 5, 1), got)
	assert.Equal(t, PromptGuess, out.String())
}

func TestInput_GetUserAnswer_Invalid(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"letters", "12a\n"},
		{"too short", "12\n"},
		{"too long", "1234\n"},
		{"zero digit", "103\n"},
		{"leading zero", "012\n"},
		{"negative", "-12\n"},
		{"empty", "\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := NewInput(strings.NewReader(tc.input), io.Discard)
			_, err := in.GetUserAnswer()
			require.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestInput_GetUserAnswer_EOF(t *testing.T) {
	in := NewInput(strings.NewReader(""), io.Discard)
	_, err := in.GetUserAnswer()
	require.ErrorIs(t, err, io.EOF)
}

func TestInput_GetReplayRequest(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  bool
		ok    bool
	}{
		{"restart", "1\n", true, true},
		{"quit", "2\n", false, true},
		{"padded", " 2 \n", false, true},
		{"other", "3\n", false, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			in := NewInput(strings.NewReader(tc.input), &out)

			got, err := in.GetReplayRequest()
			assert.Equal(t, PromptReplay+"\n", out.String())
			if !tc.ok {
				require.ErrorIs(t, err, ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestConsole_FullSession(t *testing.T) {
	var out bytes.Buffer
	in := NewInput(strings.NewReader("246\n135\n2\n"), &out)

	s, err := game.NewSession(game.Config{}, game.Deps{
		Random:  &fixedDraws{nums: []int{1, 3, 5}},
		Guesses: in,
		Replay:  in,
		Output:  NewOutput(&out),
	}, nil)
	require.NoError(t, err)
	require.NoError(t, s.Run())

	text := out.String()
	for _, want := range []string{"낫싱", "3스트라이크", "게임 종료", PromptReplay} {
		assert.Contains(t, text, want)
	}
	assert.Equal(t, game.PhaseTerminated, s.Phase())
}

type fixedDraws struct {
	nums []int
}

func (f *fixedDraws) PickNumberInRange(min, max int) int {
	n := f.nums[0]
	f.nums = f.nums[1:]
	return n
}
