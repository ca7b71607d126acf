package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatRupees(t *testing.T) {
	assert.Equal(t, "Rupees 0", FormatRupees(0))
	assert.Equal(t, "Rupees 55", FormatRupees(55))
	assert.Equal(t, "Rupees 1,234", FormatRupees(1234))
	assert.Equal(t, "Rupees 1,234,567", FormatRupees(1234567))
	assert.Equal(t, "Rupees -2,500", FormatRupees(-2500))
}

func TestProduct_String(t *testing.T) {
	p := Product{ID: 2, Name: "Notebook", UnitPrice: 1050}
	assert.Equal(t, "Notebook: Rupees 1,050", p.String())
}
