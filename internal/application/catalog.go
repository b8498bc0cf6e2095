package application

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/stockroom/stockroom/internal/domain"
)

// Catalog holds the session's products in insertion order and runs the
// interactive add, view, edit, delete and search operations against them.
// Names are not unique; every lookup returns the first case-insensitive match.
type Catalog struct {
	records  []domain.Record
	console  domain.Console
	currency string
	maxLen   int
	logger   *slog.Logger
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithCurrency sets the symbol used when echoing prices.
func WithCurrency(symbol string) Option {
	return func(c *Catalog) { c.currency = symbol }
}

// WithMaxInputLength sets the default line limit of the input loop.
func WithMaxInputLength(n int) Option {
	return func(c *Catalog) { c.maxLen = n }
}

// WithLogger sets the diagnostic logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Catalog) { c.logger = l }
}

// NewCatalog creates an empty Catalog that talks to the user over console.
func NewCatalog(console domain.Console, opts ...Option) *Catalog {
	c := &Catalog{
		console:  console,
		currency: domain.DefaultCurrency,
		maxLen:   domain.DefaultMaxLength,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var (
	nameField = domain.Field{
		Prompt:    "Enter product name: ",
		Pattern:   domain.NamePattern,
		Required:  true,
		MaxLength: domain.MaxNameLength,
	}
	priceField    = domain.Field{Prompt: "Enter product price: ", Required: true}
	quantityField = domain.Field{Prompt: "Enter product quantity: ", Required: true}

	renameField = domain.Field{
		Prompt:    "Enter new name (or press Enter to keep the same): ",
		Pattern:   domain.NamePattern,
		MaxLength: domain.MaxNameLength,
	}
)

// Edit reads price and quantity once, without the retry loop.
const (
	repricePrompt    = "Enter new price (or press Enter to keep the same): "
	requantityPrompt = "Enter new quantity (or press Enter to keep the same): "
)

// Add collects a name, price and quantity and appends the new product.
func (c *Catalog) Add() error {
	name, _, err := askText(c.console, nameField, c.maxLen)
	if err != nil {
		return err
	}
	price, _, err := askDecimal(c.console, priceField, c.maxLen)
	if err != nil {
		return err
	}
	quantity, _, err := askInteger(c.console, quantityField, c.maxLen)
	if err != nil {
		return err
	}

	rec, err := domain.NewRecord(name, price, quantity)
	if err != nil {
		return fmt.Errorf("building record: %w", err)
	}
	c.records = append(c.records, rec)

	c.logger.Info("product added", "op", "add", "name", rec.Name, "count", len(c.records))
	c.console.Success(fmt.Sprintf("%s has been added to the inventory.", rec.Name))
	return nil
}

// View lists every product in insertion order.
func (c *Catalog) View() error {
	if len(c.records) == 0 {
		c.console.Info("The inventory is empty.")
		return nil
	}
	c.console.Records("Products in Inventory:", c.Records())
	return nil
}

// Edit looks a product up by name and offers to replace each field in turn.
// Price and quantity get a single attempt: unparseable input keeps the old value.
func (c *Catalog) Edit() error {
	i, err := c.lookup("Enter the name of the product to edit: ")
	if err != nil || i < 0 {
		return err
	}
	rec := &c.records[i]

	newName, ok, err := askText(c.console, renameField, c.maxLen)
	if err != nil {
		return err
	}
	if ok {
		rec.Name = newName
	}

	line, err := c.console.ReadLine(repricePrompt)
	if err != nil {
		return err
	}
	if line != "" {
		if price, err := parsePrice(line); err == nil {
			rec.Price = price
			c.console.Info("New price: " + domain.FormatMoney(price, c.currency))
		} else {
			c.console.Warn("Invalid price entered, keeping the current price.")
		}
	}

	line, err = c.console.ReadLine(requantityPrompt)
	if err != nil {
		return err
	}
	if line != "" {
		if quantity, err := parseQuantity(line); err == nil {
			rec.Quantity = quantity
			c.console.Info(fmt.Sprintf("New quantity: %d", quantity))
		} else {
			c.console.Warn("Invalid quantity entered, keeping the current quantity.")
		}
	}

	c.logger.Info("product updated", "op", "edit", "name", rec.Name)
	c.console.Success(fmt.Sprintf("%s has been updated.", rec.Name))
	return nil
}

// Delete removes a product after the user answers "yes" to the confirmation.
func (c *Catalog) Delete() error {
	i, err := c.lookup("Enter the name of the product to delete: ")
	if err != nil || i < 0 {
		return err
	}
	rec := c.records[i]

	answer, err := c.console.ReadLine(fmt.Sprintf("Are you sure you want to delete %s? (yes/no): ", rec.Name))
	if err != nil {
		return err
	}
	if !strings.EqualFold(answer, "yes") {
		c.logger.Debug("deletion canceled", "op", "delete", "name", rec.Name)
		c.console.Info("Deletion canceled.")
		return nil
	}

	c.records = append(c.records[:i], c.records[i+1:]...)
	c.logger.Info("product deleted", "op", "delete", "name", rec.Name, "count", len(c.records))
	c.console.Success(fmt.Sprintf("%s has been deleted from the inventory.", rec.Name))
	return nil
}

// Search shows the first product whose name matches, ignoring case.
func (c *Catalog) Search() error {
	i, err := c.lookup("Enter the name of the product to search: ")
	if err != nil || i < 0 {
		return err
	}
	c.console.Records("", []domain.Record{c.records[i]})
	return nil
}

// Find returns the first product matching name, ignoring case.
func (c *Catalog) Find(name string) (domain.Record, error) {
	if i := c.index(name); i >= 0 {
		return c.records[i], nil
	}
	return domain.Record{}, fmt.Errorf("%w: %q", domain.ErrNotFound, name)
}

// Records returns a copy of the products in insertion order.
func (c *Catalog) Records() []domain.Record {
	out := make([]domain.Record, len(c.records))
	copy(out, c.records)
	return out
}

// Len returns the number of products.
func (c *Catalog) Len() int { return len(c.records) }

// lookup prompts for a name and returns its index, or -1 after reporting a miss.
func (c *Catalog) lookup(prompt string) (int, error) {
	key, _, err := askText(c.console, domain.Field{Prompt: prompt, Required: true}, c.maxLen)
	if err != nil {
		return -1, err
	}
	i := c.index(key)
	if i < 0 {
		c.logger.Debug("lookup miss", "name", key)
		c.console.Info("Product not found.")
	}
	return i, nil
}

func (c *Catalog) index(name string) int {
	for i, r := range c.records {
		if r.Matches(name) {
			return i
		}
	}
	return -1
}
