package host

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"didact/internal/ports"
)

// LinePrompter asks for input on a line-oriented stream such as stdin.
// An empty line or end of input cancels.
type LinePrompter struct {
	in  *bufio.Reader
	out io.Writer
}

var _ ports.Prompter = (*LinePrompter)(nil)

// NewLinePrompter creates a prompter reading answers from in
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{in: bufio.NewReader(in), out: out}
}

// RequestInput prints label and reads one line
func (p *LinePrompter) RequestInput(ctx context.Context, label string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	fmt.Fprintf(p.out, "%s: ", label)

	line, err := p.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
