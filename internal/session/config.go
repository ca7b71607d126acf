package session

import "errors"

// DefaultLimit is the number of successful adds after which a session ends.
const DefaultLimit = 50

var ErrInvalidLimit = errors.New("action limit must be greater than 0")

type Config struct {
	Limit int // Successful add actions allowed per session
}

func DefaultConfig() Config {
	return Config{Limit: DefaultLimit}
}

func (c Config) Validate() error {
	if c.Limit <= 0 {
		return ErrInvalidLimit
	}
	return nil
}
