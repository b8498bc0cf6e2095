package domain

import "regexp"

// Kind selects how a validated line is turned into a value.
type Kind int

const (
	KindText Kind = iota
	KindInteger
	KindDecimal
)

func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindDecimal:
		return "decimal"
	default:
		return "text"
	}
}

// DefaultMaxLength bounds a single line of input when a Field sets none.
const DefaultMaxLength = 50

// Field describes one prompt of the validated input loop.
// An optional field yields no value when the user enters an empty line.
type Field struct {
	Prompt    string
	Pattern   *regexp.Regexp
	Required  bool
	MaxLength int
	Kind      Kind
}

// Limit returns the effective maximum length, falling back to def.
func (f Field) Limit(def int) int {
	if f.MaxLength > 0 {
		return f.MaxLength
	}
	if def > 0 {
		return def
	}
	return DefaultMaxLength
}
