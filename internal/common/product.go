package common

import "fmt"

// Product is a purchasable catalog entry. Prices are whole rupees.
type Product struct {
	ID        int    // 1-based catalog position
	Name      string // Display name
	UnitPrice int64  // Price of a single unit
}

func (p Product) String() string {
	return fmt.Sprintf("%s: %s", p.Name, FormatRupees(p.UnitPrice))
}
