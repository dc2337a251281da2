// Implements the interactive question and answer flow on the console.

package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/exp/slices"
)

// ErrTooManyAttempts means the user gave an unrecognized answer on every
// allowed attempt.
var ErrTooManyAttempts = errors.New("too many unrecognized answers")

var (
	affirmativeAnswers = []string{"yes", "y", "true", "1"}
	negativeAnswers    = []string{"no", "n", "false", "0"}
)

type Prompter struct {
	scanner     *bufio.Scanner
	out         io.Writer
	maxAttempts int
}

func NewPrompter(in io.Reader, out io.Writer, maxAttempts int) *Prompter {
	return &Prompter{
		scanner:     bufio.NewScanner(in),
		out:         out,
		maxAttempts: maxAttempts,
	}
}

// Line prints message and returns the next input line with surrounding
// whitespace trimmed. An exhausted input yields io.EOF.
func (p *Prompter) Line(message string) (string, error) {
	fmt.Fprintln(p.out, message)
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(p.scanner.Text()), nil
}

// Bool prints message and interprets the answer as yes or no, ignoring
// case. Unrecognized answers are re-asked until an answer matches or the
// allowed attempts run out.
func (p *Prompter) Bool(message string) (bool, error) {
	for attempt := 0; attempt < p.maxAttempts; attempt++ {
		answer, err := p.Line(message)
		if err != nil {
			return false, err
		}
		matchesAnswer := func(candidate string) bool {
			return strings.EqualFold(candidate, answer)
		}
		if slices.ContainsFunc(affirmativeAnswers, matchesAnswer) {
			return true, nil
		}
		if slices.ContainsFunc(negativeAnswers, matchesAnswer) {
			return false, nil
		}
		fmt.Fprintln(p.out, "Sorry, the value you inputted was not valid.")
	}
	return false, ErrTooManyAttempts
}
