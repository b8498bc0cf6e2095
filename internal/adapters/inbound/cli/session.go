package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/stockroom/stockroom/internal/adapters/outbound/console"
	"github.com/stockroom/stockroom/internal/adapters/outbound/tui"
	"github.com/stockroom/stockroom/internal/application"
	"github.com/stockroom/stockroom/internal/domain"
)

const (
	menuTitle   = "Inventory Management System"
	exitChoice  = "6"
	clearScreen = "\033[H\033[2J"
)

type action struct {
	key   string
	label string
	doing string // completes "An error occurred while ..."
	run   func() error
}

// Session runs the menu loop: one catalog operation per selection until the
// user exits or the input closes.
type Session struct {
	console *console.Console
	catalog *application.Catalog
	cfg     domain.Config
	logger  *slog.Logger
	actions []action
}

// NewSession wires a console, catalog and menu over in and out.
func NewSession(in io.Reader, out io.Writer, cfg domain.Config, logger *slog.Logger) *Session {
	con := console.New(in, out, cfg.Currency)
	cat := application.NewCatalog(con,
		application.WithCurrency(cfg.Currency),
		application.WithMaxInputLength(cfg.MaxInputLength),
		application.WithLogger(logger),
	)

	s := &Session{console: con, catalog: cat, cfg: cfg, logger: logger}
	s.actions = []action{
		{"1", "Add a Product", "adding the product", cat.Add},
		{"2", "View Products", "viewing products", cat.View},
		{"3", "Edit a Product", "editing the product", cat.Edit},
		{"4", "Delete a Product", "deleting the product", cat.Delete},
		{"5", "Search for a Product", "searching for the product", cat.Search},
	}
	return s
}

// Catalog exposes the session's catalog.
func (s *Session) Catalog() *application.Catalog { return s.catalog }

// Run blocks until the user picks Exit or the input is exhausted.
func (s *Session) Run() error {
	menu := s.menu()
	for {
		if s.cfg.ClearScreen {
			s.console.Print(clearScreen)
		}
		s.console.Print(menu)

		choice, err := s.console.ReadLine("Enter your choice: ")
		if err != nil {
			return s.end(err)
		}

		if choice == exitChoice {
			s.console.Info("Exiting the system...")
			s.logger.Debug("session ended", "products", s.catalog.Len())
			return nil
		}

		if err := s.dispatch(choice); err != nil {
			return s.end(err)
		}

		if s.cfg.Pause {
			if _, err := s.console.ReadLine("Press Enter to continue..."); err != nil {
				return s.end(err)
			}
		}
	}
}

// dispatch runs the selected action. Operation failures are reported and
// swallowed; only a closed or broken input channel is returned.
func (s *Session) dispatch(choice string) error {
	for _, a := range s.actions {
		if a.key != choice {
			continue
		}
		err := safeRun(a.run)
		if err == nil {
			return nil
		}
		if errors.Is(err, domain.ErrInputClosed) {
			return err
		}
		s.logger.Error("operation failed", "op", a.label, "err", err)
		s.console.Error(fmt.Sprintf("An error occurred while %s: %v", a.doing, err))
		return nil
	}
	s.console.Error("Invalid choice, please try again.")
	return nil
}

func (s *Session) end(err error) error {
	if errors.Is(err, domain.ErrInputClosed) {
		s.logger.Debug("input closed", "products", s.catalog.Len())
		return nil
	}
	return err
}

func (s *Session) menu() string {
	entries := make([]tui.MenuEntry, 0, len(s.actions)+1)
	for _, a := range s.actions {
		entries = append(entries, tui.MenuEntry{Key: a.key, Label: a.label})
	}
	entries = append(entries, tui.MenuEntry{Key: exitChoice, Label: "Exit"})
	return tui.RenderMenu(menuTitle, entries)
}

func safeRun(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("unexpected failure: %v", r)
		}
	}()
	return fn()
}
