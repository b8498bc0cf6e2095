package application

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"github.com/stockroom/stockroom/internal/domain"
)

var (
	errNegative = errors.New("negative value")
	errTooLarge = errors.New("value too large")
)

// plainDecimal admits an optional sign, digits and an optional fraction.
// Exponents are rejected so a short line cannot expand into a huge number.
var plainDecimal = regexp.MustCompile(`^[+-]?[0-9]+(\.[0-9]+)?$`)

// maxPrice bounds accepted prices to 28 integer digits.
var maxPrice = decimal.New(1, 28)

// ask runs the validated input loop for f until a line passes every check.
// ok is false only for an optional field left empty. The loop has no retry
// limit; it ends early only when the console reports ErrInputClosed.
func ask[T any](c domain.Console, f domain.Field, maxLen int, parse func(string) (T, error)) (value T, ok bool, err error) {
	limit := f.Limit(maxLen)
	for {
		line, err := c.ReadLine(f.Prompt)
		if err != nil {
			return value, false, err
		}

		if line == "" {
			if !f.Required {
				return value, false, nil
			}
			c.Error("Input is required. Please try again.")
			continue
		}

		if utf8.RuneCountInString(line) > limit {
			c.Error(fmt.Sprintf("Input is too long. Maximum length is %d characters.", limit))
			continue
		}

		if f.Pattern != nil && !f.Pattern.MatchString(line) {
			c.Error("Invalid input format. Please try again.")
			continue
		}

		v, err := parse(line)
		if err != nil {
			c.Error(invalidNumberMessage(f.Kind))
			continue
		}
		return v, true, nil
	}
}

func askText(c domain.Console, f domain.Field, maxLen int) (string, bool, error) {
	f.Kind = domain.KindText
	return ask(c, f, maxLen, parseText)
}

func askInteger(c domain.Console, f domain.Field, maxLen int) (int, bool, error) {
	f.Kind = domain.KindInteger
	return ask(c, f, maxLen, parseQuantity)
}

func askDecimal(c domain.Console, f domain.Field, maxLen int) (decimal.Decimal, bool, error) {
	f.Kind = domain.KindDecimal
	return ask(c, f, maxLen, parsePrice)
}

func parseText(s string) (string, error) { return s, nil }

// parseQuantity accepts a non-negative base-10 integer, ignoring surrounding space.
func parseQuantity(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, errNegative
	}
	return n, nil
}

// parsePrice accepts a non-negative plain decimal below maxPrice, ignoring
// surrounding space.
func parsePrice(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if !plainDecimal.MatchString(s) {
		return decimal.Zero, fmt.Errorf("not a plain decimal: %q", s)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, err
	}
	if d.IsNegative() {
		return decimal.Zero, errNegative
	}
	if d.GreaterThanOrEqual(maxPrice) {
		return decimal.Zero, errTooLarge
	}
	return d, nil
}

func invalidNumberMessage(k domain.Kind) string {
	switch k {
	case domain.KindInteger:
		return "Invalid number. Please enter a valid integer."
	case domain.KindDecimal:
		return "Invalid number. Please enter a valid decimal."
	default:
		return "Invalid input. Please try again."
	}
}
