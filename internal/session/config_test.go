package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Validate(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())
	assert.Equal(t, 50, DefaultConfig().Limit)
	assert.NoError(t, Config{Limit: 1}.Validate())
	assert.ErrorIs(t, Config{}.Validate(), ErrInvalidLimit)
	assert.ErrorIs(t, Config{Limit: -5}.Validate(), ErrInvalidLimit)
}
