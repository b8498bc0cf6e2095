package application_test

import (
	"fmt"
	"strings"

	"github.com/stockroom/stockroom/internal/domain"
)

// scriptConsole feeds canned lines and records everything the catalog says.
type scriptConsole struct {
	lines   []string
	prompts []string
	out     []string
}

func newScript(lines ...string) *scriptConsole {
	return &scriptConsole{lines: lines}
}

func (s *scriptConsole) ReadLine(prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	if len(s.lines) == 0 {
		return "", domain.ErrInputClosed
	}
	line := s.lines[0]
	s.lines = s.lines[1:]
	return line, nil
}

func (s *scriptConsole) Info(msg string)    { s.out = append(s.out, "info: "+msg) }
func (s *scriptConsole) Success(msg string) { s.out = append(s.out, "ok: "+msg) }
func (s *scriptConsole) Warn(msg string)    { s.out = append(s.out, "warn: "+msg) }
func (s *scriptConsole) Error(msg string)   { s.out = append(s.out, "error: "+msg) }

func (s *scriptConsole) Records(title string, records []domain.Record) {
	if title != "" {
		s.out = append(s.out, "title: "+title)
	}
	for _, r := range records {
		s.out = append(s.out, "record: "+r.String())
	}
}

func (s *scriptConsole) feed(lines ...string) { s.lines = append(s.lines, lines...) }

func (s *scriptConsole) reset() { s.out, s.prompts = nil, nil }

func (s *scriptConsole) text() string { return strings.Join(s.out, "\n") }

func (s *scriptConsole) count(prefix string) int {
	n := 0
	for _, o := range s.out {
		if strings.HasPrefix(o, prefix) {
			n++
		}
	}
	return n
}

func addLines(name string, price string, quantity int) []string {
	return []string{name, price, fmt.Sprint(quantity)}
}
