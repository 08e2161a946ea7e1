// Package confirmations provides the interactive confirmation prompt.
package confirmations

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/unbrew/pkg/errors"
)

// Prompter asks the user a yes/no question.
type Prompter interface {
	Confirm(question string) (bool, error)
}

// ConsoleDialog prompts on a writer and reads the answer from a reader.
type ConsoleDialog struct {
	in  *bufio.Reader
	out io.Writer
}

// NewConsoleDialog creates a console dialog reading from in and writing the
// question to out.
func NewConsoleDialog(in io.Reader, out io.Writer) *ConsoleDialog {
	return &ConsoleDialog{in: bufio.NewReader(in), out: out}
}

// Confirm prints question followed by "[y/N]" and reports whether the answer
// was y or yes, in any case. Anything else, including an empty line or end
// of input, declines.
func (d *ConsoleDialog) Confirm(question string) (bool, error) {
	if _, err := fmt.Fprintf(d.out, "%s [y/N] ", question); err != nil {
		return false, errors.Wrap(err, errors.ErrInternal, "failed to write prompt")
	}

	line, err := d.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return false, errors.Wrap(err, errors.ErrInvalidInput, "failed to read user input")
	}

	return IsYes(line), nil
}

// IsYes reports whether answer accepts a prompt.
func IsYes(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	}
	return false
}
