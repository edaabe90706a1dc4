package console

import (
	"fmt"
	"io"
)

// Output writes one line per message.
type Output struct {
	w io.Writer
}

func NewOutput(w io.Writer) *Output {
	return &Output{w: w}
}

func (o *Output) PrintToUser(message string) {
	_, _ = fmt.Fprintln(o.w, message)
}
