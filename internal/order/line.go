package order

import (
	"fmt"

	"inkwell/internal/common"
)

// Line is a product held in an order. While a line is in an order its
// quantity is always positive.
type Line struct {
	Product  common.Product
	Quantity int64

	// Insertion sequence, used to keep lines in the order they were added.
	seq uint64
}

// Total is the line's quantity times its unit price.
func (l Line) Total() int64 {
	return l.Product.UnitPrice * l.Quantity
}

func (l Line) String() string {
	return fmt.Sprintf("%s (x%d): %s", l.Product.Name, l.Quantity, common.FormatRupees(l.Total()))
}
