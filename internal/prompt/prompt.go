// Package prompt reads and validates line-oriented user input.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Cancel is the input that aborts the current prompt.
const Cancel = "0"

// ErrCancelled is returned when the user enters Cancel.
var ErrCancelled = errors.New("cancelled")

const invalidInput = "Invalid input, please try again"

// Prompter asks questions on w and reads answers from r.
// Validation failures are reported on w and re-prompted; only
// cancellation and read failures are returned as errors.
type Prompter struct {
	r *bufio.Reader
	w io.Writer
}

func New(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{r: bufio.NewReader(r), w: w}
}

// Line reads one line and trims surrounding whitespace.
// A final line without a newline is returned; io.EOF only when nothing was read.
func (p *Prompter) Line() (string, error) {
	s, err := p.r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && s != "" {
			return strings.TrimSpace(s), nil
		}
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(s), nil
}

// String prints label and reads text whose length is within [min, max].
func (p *Prompter) String(label string, min, max int) (string, error) {
	for {
		fmt.Fprintln(p.w, label)
		in, err := p.Line()
		if err != nil {
			return "", err
		}
		if msg := check(in, min, max); msg != "" {
			fmt.Fprintln(p.w, msg)
			continue
		}
		if in == Cancel {
			return "", ErrCancelled
		}
		return in, nil
	}
}

// check returns the diagnostic for a rejected input, or "" if in is acceptable.
func check(in string, min, max int) string {
	switch {
	case in == Cancel:
		return ""
	case in == "":
		return "Input cannot be empty."
	case len(in) < min:
		return fmt.Sprintf("Input must be at least %d characters.", min)
	case len(in) > max:
		return fmt.Sprintf("Input must be at most %d characters.", max)
	}
	return ""
}

// Index prints label and reads a 1-based position no greater than max.
func (p *Prompter) Index(label string, max int) (int, error) {
	for {
		fmt.Fprintln(p.w, label)
		in, err := p.Line()
		if err != nil {
			return 0, err
		}
		switch in {
		case Cancel:
			return 0, ErrCancelled
		case "":
			fmt.Fprintln(p.w, "Input cannot be empty.")
			continue
		}
		n, err := strconv.Atoi(in)
		if err != nil || n < 1 || n > max {
			fmt.Fprintln(p.w, invalidInput)
			continue
		}
		return n, nil
	}
}
