package catalog

import (
	"errors"
	"fmt"
	"strings"

	"inkwell/internal/common"
)

var (
	ErrNotFound      = errors.New("product not found")
	ErrEmptyCatalog  = errors.New("catalog has no products")
	ErrNegativePrice = errors.New("product price is negative")
)

// Catalog is a fixed, ordered list of products. Positions are 1-based; 0 is
// never a valid position.
type Catalog struct {
	products []common.Product
}

// New builds a catalog from the given products in display order. Each
// product's ID is overwritten with its 1-based position.
func New(products ...common.Product) (*Catalog, error) {
	if len(products) == 0 {
		return nil, ErrEmptyCatalog
	}

	c := &Catalog{products: make([]common.Product, len(products))}
	for i, p := range products {
		if p.UnitPrice < 0 {
			return nil, fmt.Errorf("%s: %w", p.Name, ErrNegativePrice)
		}
		p.ID = i + 1
		c.products[i] = p
	}
	return c, nil
}

// Default returns the shop's stationery catalog.
func Default() *Catalog {
	c, err := New(
		common.Product{Name: "Pen", UnitPrice: 10},
		common.Product{Name: "Notebook", UnitPrice: 50},
		common.Product{Name: "Eraser", UnitPrice: 5},
		common.Product{Name: "Marker", UnitPrice: 15},
		common.Product{Name: "Folder", UnitPrice: 20},
		common.Product{Name: "Pencil", UnitPrice: 5},
		common.Product{Name: "Highlighter", UnitPrice: 20},
		common.Product{Name: "Stapler", UnitPrice: 55},
		common.Product{Name: "Glue", UnitPrice: 25},
		common.Product{Name: "Scissors", UnitPrice: 60},
	)
	if err != nil {
		// Static data, so this only fires if the list above is edited badly.
		panic(err)
	}
	return c
}

// List returns a copy of the products in display order.
func (c *Catalog) List() []common.Product {
	out := make([]common.Product, len(c.products))
	copy(out, c.products)
	return out
}

// Get looks up a product by its 1-based position.
func (c *Catalog) Get(position int) (common.Product, error) {
	if position < 1 || position > len(c.products) {
		return common.Product{}, ErrNotFound
	}
	return c.products[position-1], nil
}

func (c *Catalog) Len() int { return len(c.products) }

// String renders the numbered product listing shown to the customer.
func (c *Catalog) String() string {
	var sb strings.Builder
	sb.WriteString("Available products:\n")
	for _, p := range c.products {
		fmt.Fprintf(&sb, "%d. %s\n", p.ID, p)
	}
	return sb.String()
}
