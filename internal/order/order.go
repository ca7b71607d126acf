package order

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"inkwell/internal/common"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/tidwall/btree"
)

// MaxQuantity bounds a single line's quantity and any one adjustment.
const MaxQuantity = math.MaxInt32

var ErrQuantityTooLarge = errors.New("quantity too large")

// Lines are sorted by insertion sequence, oldest first.
type Lines = btree.BTreeG[*Line]

// Order accumulates the quantities bought by a single customer.
type Order struct {
	ID       string
	Customer string

	// Lines in insertion order, plus an index from product ID to the line.
	lines     *Lines
	byProduct map[int]*Line
	nextSeq   uint64

	// Running grand total. Always equal to the sum of the line totals.
	total int64

	reporter Reporter
}

func New(customer string) *Order {
	return &Order{
		ID:       uuid.NewString(),
		Customer: customer,
		lines: btree.NewBTreeG(func(a, b *Line) bool {
			return a.seq < b.seq
		}),
		byProduct: make(map[int]*Line),
		reporter:  logReporter{},
	}
}

// SetReporter replaces the receiver of line removal notifications.
func (o *Order) SetReporter(r Reporter) {
	if r == nil {
		r = logReporter{}
	}
	o.reporter = r
}

// AddOrAdjust applies a signed quantity change for a product.
//
// An existing line has delta added to its quantity; if that leaves the
// quantity at zero or below, the line is dropped and the reporter notified.
// Over-removal is not carried as a debt: the total only loses what the line
// actually held. A product without a line gets one only when delta > 0,
// otherwise the call does nothing.
//
// A delta beyond MaxQuantity in either direction, a line that would grow
// past MaxQuantity, or a total that would not fit in an int64 is rejected
// with ErrQuantityTooLarge and leaves the order untouched.
func (o *Order) AddOrAdjust(product common.Product, delta int64) error {
	if delta > MaxQuantity || delta < -MaxQuantity {
		return ErrQuantityTooLarge
	}

	line, ok := o.byProduct[product.ID]
	if !ok {
		if delta <= 0 {
			return nil
		}
		lineTotal, ok := mulChecked(product.UnitPrice, delta)
		if !ok {
			return ErrQuantityTooLarge
		}
		total, ok := addChecked(o.total, lineTotal)
		if !ok {
			return ErrQuantityTooLarge
		}

		line = &Line{Product: product, Quantity: delta, seq: o.nextSeq}
		o.nextSeq++
		o.lines.Set(line)
		o.byProduct[product.ID] = line
		o.total = total

		log.Debug().
			Str("order", o.ID).
			Str("product", product.Name).
			Int64("quantity", delta).
			Msg("line added")
		return nil
	}

	// Both operands are within MaxQuantity, so the sum cannot wrap.
	quantity := line.Quantity + delta
	if quantity <= 0 {
		o.total -= line.Total()
		o.lines.Delete(line)
		delete(o.byProduct, product.ID)
		o.reporter.ReportRemoved(o.ID, *line)
		return nil
	}
	if quantity > MaxQuantity {
		return ErrQuantityTooLarge
	}

	lineTotal, ok := mulChecked(line.Product.UnitPrice, quantity)
	if !ok {
		return ErrQuantityTooLarge
	}
	total, ok := addChecked(o.total-line.Total(), lineTotal)
	if !ok {
		return ErrQuantityTooLarge
	}

	line.Quantity = quantity
	o.total = total

	log.Debug().
		Str("order", o.ID).
		Str("product", product.Name).
		Int64("delta", delta).
		Int64("quantity", line.Quantity).
		Msg("line adjusted")
	return nil
}

func mulChecked(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	c := a * b
	if c/b != a || (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, false
	}
	return c, true
}

func addChecked(a, b int64) (int64, bool) {
	c := a + b
	if (b > 0 && c < a) || (b < 0 && c > a) {
		return 0, false
	}
	return c, true
}

// Total returns the grand total of the order.
func (o *Order) Total() int64 { return o.total }

// Len returns the number of lines in the order.
func (o *Order) Len() int { return o.lines.Len() }

// Lines returns a snapshot of the lines in insertion order.
func (o *Order) Lines() []Line {
	out := make([]Line, 0, o.lines.Len())
	o.lines.Scan(func(line *Line) bool {
		out = append(out, *line)
		return true
	})
	return out
}

// SummaryLine is one priced row of a Summary.
type SummaryLine struct {
	Name      string
	Quantity  int64
	LineTotal int64
}

func (l SummaryLine) String() string {
	return fmt.Sprintf("%s (x%d): %s", l.Name, l.Quantity, common.FormatRupees(l.LineTotal))
}

// Summary is a read-only view of an order.
type Summary struct {
	OrderID    string
	Customer   string
	Lines      []SummaryLine
	GrandTotal int64
}

// Summary builds a view of the order without changing it.
func (o *Order) Summary() Summary {
	s := Summary{
		OrderID:    o.ID,
		Customer:   o.Customer,
		Lines:      make([]SummaryLine, 0, o.lines.Len()),
		GrandTotal: o.total,
	}
	o.lines.Scan(func(line *Line) bool {
		s.Lines = append(s.Lines, SummaryLine{
			Name:      line.Product.Name,
			Quantity:  line.Quantity,
			LineTotal: line.Total(),
		})
		return true
	})
	return s
}

func (s Summary) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Order for %s:\n", s.Customer)
	for _, l := range s.Lines {
		sb.WriteString(l.String())
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "Total Amount: %s\n", common.FormatRupees(s.GrandTotal))
	return sb.String()
}
