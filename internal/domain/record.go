package domain

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// MaxNameLength is the longest product name accepted on create or rename.
const MaxNameLength = 50

// NamePattern restricts product names to letters, digits and spaces.
var NamePattern = regexp.MustCompile(`^[A-Za-z0-9 ]+$`)

var (
	ErrInvalidName      = errors.New("name must be 1-50 letters, digits or spaces")
	ErrNegativePrice    = errors.New("price must not be negative")
	ErrNegativeQuantity = errors.New("quantity must not be negative")
	ErrNotFound         = errors.New("product not found")
	ErrInputClosed      = errors.New("input closed")
)

// Record is a single product line in the inventory.
type Record struct {
	Name     string
	Price    decimal.Decimal
	Quantity int
}

// NewRecord validates every field before building the record.
func NewRecord(name string, price decimal.Decimal, quantity int) (Record, error) {
	if err := ValidateName(name); err != nil {
		return Record{}, err
	}
	if price.IsNegative() {
		return Record{}, ErrNegativePrice
	}
	if quantity < 0 {
		return Record{}, ErrNegativeQuantity
	}
	return Record{Name: name, Price: price, Quantity: quantity}, nil
}

// ValidateName reports whether name may be stored as a product name.
func ValidateName(name string) error {
	n := utf8.RuneCountInString(name)
	if n == 0 || n > MaxNameLength || !NamePattern.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}

// Matches reports whether name refers to this record, ignoring case.
func (r Record) Matches(name string) bool {
	return strings.EqualFold(r.Name, name)
}

// Display renders the record with the given currency symbol.
func (r Record) Display(currency string) string {
	return fmt.Sprintf("Name: %s, Price: %s, Quantity: %d", r.Name, FormatMoney(r.Price, currency), r.Quantity)
}

func (r Record) String() string { return r.Display(DefaultCurrency) }

// FormatMoney renders an amount with two decimals and thousands separators.
func FormatMoney(amount decimal.Decimal, currency string) string {
	s := amount.StringFixed(2)
	whole, frac, _ := strings.Cut(s, ".")

	sign := ""
	if strings.HasPrefix(whole, "-") {
		sign, whole = "-", whole[1:]
	}

	var b strings.Builder
	for i, c := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	return sign + currency + b.String() + "." + frac
}
