package domain_test

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stockroom/stockroom/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecord_Valid(t *testing.T) {
	r, err := domain.NewRecord("Widget 2", decimal.RequireFromString("9.99"), 3)
	require.NoError(t, err)
	assert.Equal(t, "Widget 2", r.Name)
	assert.True(t, r.Price.Equal(decimal.RequireFromString("9.99")))
	assert.Equal(t, 3, r.Quantity)
}

func TestNewRecord_Rejects(t *testing.T) {
	tests := []struct {
		name     string
		price    string
		quantity int
		want     error
	}{
		{"Widget!", "1", 1, domain.ErrInvalidName},
		{"", "1", 1, domain.ErrInvalidName},
		{strings.Repeat("a", 51), "1", 1, domain.ErrInvalidName},
		{"Widget", "-0.01", 1, domain.ErrNegativePrice},
		{"Widget", "1", -1, domain.ErrNegativeQuantity},
	}
	for _, tt := range tests {
		_, err := domain.NewRecord(tt.name, decimal.RequireFromString(tt.price), tt.quantity)
		assert.ErrorIs(t, err, tt.want, "name %q", tt.name)
	}
}

func TestValidateName_Boundaries(t *testing.T) {
	assert.NoError(t, domain.ValidateName(strings.Repeat("a", 50)))
	assert.NoError(t, domain.ValidateName("  spaced  "))
	assert.Error(t, domain.ValidateName("café"))
	assert.Error(t, domain.ValidateName("tab\there"))
}

func TestRecord_Matches(t *testing.T) {
	r := domain.Record{Name: "Widget"}
	assert.True(t, r.Matches("widget"))
	assert.True(t, r.Matches("WIDGET"))
	assert.False(t, r.Matches("widgets"))
	assert.False(t, r.Matches(" widget"))
}

func TestRecord_Display(t *testing.T) {
	r := domain.Record{Name: "Widget", Price: decimal.RequireFromString("1234.5"), Quantity: 7}
	assert.Equal(t, "Name: Widget, Price: $1,234.50, Quantity: 7", r.String())
	assert.Equal(t, "Name: Widget, Price: €1,234.50, Quantity: 7", r.Display("€"))
}

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"0", "$0.00"},
		{"0.1", "$0.10"},
		{"999.999", "$1,000.00"},
		{"1000000", "$1,000,000.00"},
		{"123456.78", "$123,456.78"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, domain.FormatMoney(decimal.RequireFromString(tt.in), "$"), "amount %s", tt.in)
	}
}
