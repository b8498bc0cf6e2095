package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/stockroom/stockroom/internal/adapters/outbound/tui"
	"github.com/stockroom/stockroom/internal/domain"
)

// Console implements domain.Console over a line-oriented reader and writer.
type Console struct {
	in       *bufio.Reader
	out      io.Writer
	currency string
}

var _ domain.Console = (*Console)(nil)

// New creates a Console. An empty currency falls back to domain.DefaultCurrency.
func New(in io.Reader, out io.Writer, currency string) *Console {
	if currency == "" {
		currency = domain.DefaultCurrency
	}
	return &Console{in: bufio.NewReader(in), out: out, currency: currency}
}

// ReadLine writes prompt and reads one line without its line ending.
// A final unterminated line is returned as is; after that, ErrInputClosed.
func (c *Console) ReadLine(prompt string) (string, error) {
	if prompt != "" {
		fmt.Fprint(c.out, tui.RenderPrompt(prompt))
	}
	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			if line != "" {
				return trimEOL(line), nil
			}
			return "", domain.ErrInputClosed
		}
		return "", fmt.Errorf("reading input: %w", err)
	}
	return trimEOL(line), nil
}

func (c *Console) Info(msg string)    { fmt.Fprint(c.out, tui.RenderInfo(msg)) }
func (c *Console) Success(msg string) { fmt.Fprint(c.out, tui.RenderSuccess(msg)) }
func (c *Console) Warn(msg string)    { fmt.Fprint(c.out, tui.RenderWarning(msg)) }
func (c *Console) Error(msg string)   { fmt.Fprint(c.out, tui.RenderError(msg)) }

// Records renders records with the configured currency.
func (c *Console) Records(title string, records []domain.Record) {
	fmt.Fprint(c.out, tui.RenderRecords(title, records, c.currency))
}

// Print writes pre-rendered text such as the menu.
func (c *Console) Print(s string) { fmt.Fprint(c.out, s) }

func trimEOL(s string) string {
	return strings.TrimSuffix(strings.TrimSuffix(s, "\n"), "\r")
}
