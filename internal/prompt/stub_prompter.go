package prompt

import (
	"fmt"
	"strconv"
)

// StubPrompter replays scripted answers in order. Used by tests instead of a
// real terminal.
type StubPrompter struct {
	answers []string
	asked   []string
}

func NewStubPrompter(answers ...string) *StubPrompter {
	return &StubPrompter{answers: answers}
}

func (p *StubPrompter) Text(label string) (string, error) {
	return p.next(label)
}

func (p *StubPrompter) TextWithDefault(label string, defaultValue string) (string, error) {
	answer, err := p.next(label)
	if err != nil {
		return "", err
	}
	if answer == "" {
		return defaultValue, nil
	}
	return answer, nil
}

// Hours applies the same validation as TerminalPrompter.Hours.
func (p *StubPrompter) Hours(label string) (int, error) {
	answer, err := p.next(label)
	if err != nil {
		return 0, err
	}
	hours, err := strconv.Atoi(answer)
	if err != nil || hours < 0 {
		return 0, fmt.Errorf("hours must be a non-negative number, got %q", answer)
	}
	return hours, nil
}

// Asked returns the labels of every prompt shown so far.
func (p *StubPrompter) Asked() []string {
	return p.asked
}

func (p *StubPrompter) next(label string) (string, error) {
	p.asked = append(p.asked, label)
	if len(p.answers) == 0 {
		return "", fmt.Errorf("unexpected prompt %q", label)
	}
	answer := p.answers[0]
	p.answers = p.answers[1:]
	return answer, nil
}
