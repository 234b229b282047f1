package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Prompter resolves parameters that were not given on the command line by
// asking the user interactively.
type Prompter interface {
	Text(label string) (string, error)
	TextWithDefault(label string, defaultValue string) (string, error)
	Hours(label string) (int, error)
}

// TerminalPrompter reads answers line by line. Prompts go to stderr so the
// rendered output on stdout stays clean when piped.
type TerminalPrompter struct {
	in  *bufio.Reader
	out io.Writer
}

func NewTerminalPrompter() *TerminalPrompter {
	return NewPrompter(os.Stdin, os.Stderr)
}

func NewPrompter(in io.Reader, out io.Writer) *TerminalPrompter {
	return &TerminalPrompter{in: bufio.NewReader(in), out: out}
}

func (p *TerminalPrompter) Text(label string) (string, error) {
	value, err := p.ask(label, "")
	if err != nil {
		return "", err
	}
	if value == "" {
		return "", fmt.Errorf("no value given for %q", strings.TrimSuffix(label, ":"))
	}
	return value, nil
}

func (p *TerminalPrompter) TextWithDefault(label string, defaultValue string) (string, error) {
	value, err := p.ask(label, defaultValue)
	if err != nil {
		return "", err
	}
	if value == "" {
		return defaultValue, nil
	}
	return value, nil
}

func (p *TerminalPrompter) Hours(label string) (int, error) {
	value, err := p.Text(label)
	if err != nil {
		return 0, err
	}
	hours, err := strconv.Atoi(value)
	if err != nil || hours < 0 {
		return 0, fmt.Errorf("hours must be a non-negative number, got %q", value)
	}
	return hours, nil
}

func (p *TerminalPrompter) ask(label string, defaultValue string) (string, error) {
	if defaultValue != "" {
		fmt.Fprintf(p.out, "%s [%s] ", label, defaultValue)
	} else {
		fmt.Fprintf(p.out, "%s ", label)
	}
	line, err := p.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
