package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"example.com/baseball/internal/game"
)

const (
	PromptGuess  = "숫자를 입력해주세요 : "
	PromptReplay = "게임을 새로 시작하려면 1, 종료하려면 2를 입력하세요."
)

// Input reads answers line by line. Prompts go through out.
// Malformed input is returned as ErrInvalidInput, there is no re-prompt.
type Input struct {
	sc  *bufio.Scanner
	out io.Writer
	msg *Output
}

func NewInput(r io.Reader, out io.Writer) *Input {
	return &Input{
		sc:  bufio.NewScanner(r),
		out: out,
		msg: NewOutput(out),
	}
}

func (in *Input) GetUserAnswer() (game.Sequence, error) {
	_, _ = io.WriteString(in.out, PromptGuess)

	line, err := in.readLine()
	if err != nil {
		return nil, err
	}

	n, err := strconv.Atoi(line)
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not a number", ErrInvalidInput, line)
	}
	ds, err := Digits(n)
	if err != nil {
		return nil, err
	}
	// "0123" parses as 123, keep the length check on the raw text too
	if len(ds) != game.SequenceLen || len(line) != game.SequenceLen {
		return nil, fmt.Errorf("%w: want %d digits, got %q", ErrInvalidInput, game.SequenceLen, line)
	}

	seq := make(game.Sequence, len(ds))
	for i, d := range ds {
		if game.Digit(d) < game.MinDigit || game.Digit(d) > game.MaxDigit {
			return nil, fmt.Errorf("%w: digit %d not in %d..%d", ErrInvalidInput, d, game.MinDigit, game.MaxDigit)
		}
		seq[i] = game.Digit(d)
	}
	return seq, nil
}

func (in *Input) GetReplayRequest() (bool, error) {
	in.msg.PrintToUser(PromptReplay)

	line, err := in.readLine()
	if err != nil {
		return false, err
	}

	switch line {
	case "1":
		return true, nil
	case "2":
		return false, nil
	default:
		return false, fmt.Errorf("%w: replay choice %q (want 1 or 2)", ErrInvalidInput, line)
	}
}

func (in *Input) readLine() (string, error) {
	if !in.sc.Scan() {
		if err := in.sc.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", io.EOF
	}
	return strings.TrimSpace(in.sc.Text()), nil
}
