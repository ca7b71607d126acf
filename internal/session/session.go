package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"inkwell/internal/catalog"
	"inkwell/internal/order"

	"github.com/rs/zerolog/log"
)

var ErrNilCatalog = errors.New("session requires a catalog")

type State int

const (
	Running State = iota
	Finished
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Finished:
		return "finished"
	default:
		return "unknown"
	}
}

// Menu choices.
const (
	choiceFinish = 0
	choiceAdd    = 1
	choiceRemove = 2
)

const menu = `
Options:
1. Add a product
2. Remove a product
0. Finish order
`

// Session drives a single customer's ordering conversation over a line
// based input and a text output.
type Session struct {
	catalog *catalog.Catalog
	in      LineReader
	out     io.Writer
	limit   int

	order *order.Order
	adds  int // successful add actions
	state State
}

func New(cat *catalog.Catalog, in LineReader, out io.Writer, cfg Config) (*Session, error) {
	if cat == nil {
		return nil, ErrNilCatalog
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Session{
		catalog: cat,
		in:      in,
		out:     out,
		limit:   cfg.Limit,
		state:   Running,
	}, nil
}

// Order returns the session's order. It is nil until Run has read the
// customer name.
func (s *Session) Order() *order.Order { return s.order }

func (s *Session) State() State { return s.state }

// Adds returns the number of successful add actions so far.
func (s *Session) Adds() int { return s.adds }

// Run holds the conversation until the customer finishes, the action limit
// is reached, the input runs out or ctx is cancelled. The final order is
// printed exactly once on every one of those paths. Only input failures
// other than io.EOF are returned.
func (s *Session) Run(ctx context.Context) error {
	if c, ok := s.in.(io.Closer); ok {
		defer func() {
			if err := c.Close(); err != nil {
				log.Error().Err(err).Msg("unable to close input")
			}
		}()
	}

	name, err := s.readLine("Enter customer name: ")
	if err != nil && !errors.Is(err, io.EOF) {
		s.state = Finished
		return fmt.Errorf("reading customer name: %w", err)
	}

	s.order = order.New(strings.TrimSpace(name))
	s.order.SetReporter(s)

	log.Info().
		Str("order", s.order.ID).
		Str("customer", s.order.Customer).
		Int("limit", s.limit).
		Msg("session started")

	var runErr error
	if errors.Is(err, io.EOF) {
		// Close off the unanswered prompt.
		fmt.Fprintln(s.out)
		s.state = Finished
	} else {
		fmt.Fprint(s.out, s.catalog.String())
	}

	for s.state == Running {
		if err := ctx.Err(); err != nil {
			log.Warn().Err(err).Str("order", s.order.ID).Msg("session cancelled")
			s.state = Finished
			break
		}

		if err := s.step(); err != nil {
			s.state = Finished
			fmt.Fprintln(s.out)
			if errors.Is(err, io.EOF) {
				log.Warn().Str("order", s.order.ID).Msg("input closed before finish")
				break
			}
			log.Error().Err(err).Str("order", s.order.ID).Msg("unable to read input")
			runErr = fmt.Errorf("reading input: %w", err)
			break
		}

		if s.state == Running && s.adds >= s.limit {
			log.Info().Str("order", s.order.ID).Int("limit", s.limit).Msg("action limit reached")
			fmt.Fprintf(s.out, "Product limit reached. You can select up to %d products.\n", s.limit)
			s.state = Finished
		}
	}

	fmt.Fprint(s.out, s.order.Summary().String())

	log.Info().
		Str("order", s.order.ID).
		Int("lines", s.order.Len()).
		Int64("total", s.order.Total()).
		Msg("session finished")
	return runErr
}

// ReportRemoved tells the customer that a line dropped out of the order.
func (s *Session) ReportRemoved(orderID string, line order.Line) {
	log.Info().
		Str("order", orderID).
		Str("product", line.Product.Name).
		Int64("held", line.Quantity).
		Msg("line removed")
	fmt.Fprintf(s.out, "Removed %s from the order.\n", line.Product.Name)
}

// step runs one pass of the menu.
func (s *Session) step() error {
	fmt.Fprint(s.out, menu)
	choice, err := s.readNumber("Enter your choice: ")
	if err != nil {
		return err
	}

	switch choice {
	case choiceAdd:
		return s.add()
	case choiceRemove:
		return s.remove()
	case choiceFinish:
		s.state = Finished
	default:
		log.Debug().Int64("choice", choice).Msg("unknown menu choice")
		fmt.Fprintln(s.out, "Invalid option. Please choose again.")
	}
	return nil
}

// add runs the add flow. Unlike the remove flow, 0 at the product prompt
// finishes the whole order, as the prompt says, rather than being reported
// as an invalid selection and returning to the menu.
func (s *Session) add() error {
	fmt.Fprint(s.out, s.catalog.String())
	position, err := s.readNumber("Select a product by number (or type 0 to finish): ")
	if err != nil {
		return err
	}
	if position == choiceFinish {
		s.state = Finished
		return nil
	}

	product, err := s.catalog.Get(int(position))
	if err != nil {
		log.Debug().Err(err).Int64("position", position).Msg("add rejected")
		fmt.Fprintln(s.out, "Invalid product selection.")
		return nil
	}

	quantity, err := s.readNumber(fmt.Sprintf("Enter quantity for %s: ", product.Name))
	if err != nil {
		return err
	}
	if quantity <= 0 {
		fmt.Fprintln(s.out, "Quantity must be greater than 0.")
		return nil
	}

	if err := s.order.AddOrAdjust(product, quantity); err != nil {
		log.Debug().Err(err).Int64("quantity", quantity).Msg("add rejected")
		fmt.Fprintln(s.out, "Quantity is too large for this order.")
		return nil
	}
	s.adds++
	fmt.Fprintf(s.out, "Added %d x %s to your order.\n", quantity, product.Name)
	return nil
}

// remove does not check the requested quantity against what the order holds.
// Asking for more than is held drops the line.
func (s *Session) remove() error {
	fmt.Fprintln(s.out, "\nYour current order:")
	fmt.Fprint(s.out, s.order.Summary().String())

	position, err := s.readNumber("Select a product by number to remove: ")
	if err != nil {
		return err
	}

	product, err := s.catalog.Get(int(position))
	if err != nil {
		log.Debug().Err(err).Int64("position", position).Msg("remove rejected")
		fmt.Fprintln(s.out, "Invalid product selection.")
		return nil
	}

	quantity, err := s.readNumber(fmt.Sprintf("Enter quantity to remove for %s: ", product.Name))
	if err != nil {
		return err
	}
	if quantity <= 0 {
		fmt.Fprintln(s.out, "Quantity must be greater than 0.")
		return nil
	}

	if err := s.order.AddOrAdjust(product, -quantity); err != nil {
		log.Debug().Err(err).Int64("quantity", quantity).Msg("remove rejected")
		fmt.Fprintln(s.out, "Quantity is too large for this order.")
		return nil
	}
	fmt.Fprintf(s.out, "Removed %d x %s from your order.\n", quantity, product.Name)
	return nil
}

func (s *Session) readLine(prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)
	return s.in.ReadLine()
}

// readNumber prompts until the user types a whole number or the input fails.
func (s *Session) readNumber(prompt string) (int64, error) {
	for {
		line, err := s.readLine(prompt)
		if err != nil {
			return 0, err
		}
		n, err := parseNumber(line)
		if err == nil {
			return n, nil
		}
		log.Debug().Err(err).Msg("rejected input")
		fmt.Fprintln(s.out, "Invalid input. Please enter a whole number.")
	}
}
