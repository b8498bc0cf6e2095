package tui_test

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stockroom/stockroom/internal/adapters/outbound/tui"
	"github.com/stockroom/stockroom/internal/domain"
	"github.com/stretchr/testify/assert"
)

func sampleRecords() []domain.Record {
	return []domain.Record{
		{Name: "Widget", Price: decimal.RequireFromString("9.99"), Quantity: 3},
		{Name: "Gadget", Price: decimal.RequireFromString("1500"), Quantity: 0},
	}
}

func TestRenderMenu_ContainsEntries(t *testing.T) {
	output := tui.RenderMenu("Inventory Management System", []tui.MenuEntry{
		{Key: "1", Label: "Add a Product"},
		{Key: "6", Label: "Exit"},
	})
	assert.Contains(t, output, "Inventory Management System")
	assert.Contains(t, output, "1. Add a Product")
	assert.Contains(t, output, "6. Exit")
}

func TestRenderRecords_KeepsOrder(t *testing.T) {
	output := tui.RenderRecords("Products in Inventory:", sampleRecords(), "$")
	assert.Contains(t, output, "Products in Inventory:")
	assert.Contains(t, output, "Name: Widget, Price: $9.99, Quantity: 3")
	assert.Contains(t, output, "Name: Gadget, Price: $1,500.00, Quantity: 0")
	assert.Less(t, strings.Index(output, "Widget"), strings.Index(output, "Gadget"))
	assert.Contains(t, output, "2 product(s)")
}

func TestRenderRecords_NoTitle(t *testing.T) {
	output := tui.RenderRecords("", sampleRecords()[:1], "€")
	assert.Equal(t, "Name: Widget, Price: €9.99, Quantity: 3", strings.TrimSpace(output))
}

func TestRenderStatus_EndsWithNewline(t *testing.T) {
	for _, s := range []string{
		tui.RenderInfo("a"),
		tui.RenderSuccess("b"),
		tui.RenderWarning("c"),
		tui.RenderError("d"),
	} {
		assert.True(t, strings.HasSuffix(s, "\n"))
	}
	assert.Contains(t, tui.RenderError("Input is required."), "Input is required.")
}
