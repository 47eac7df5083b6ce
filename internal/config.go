package bbcode

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned when a Tokenizer is constructed from a Config
// that fails validation.
var ErrInvalidConfig = errors.New("invalid tokenizer config")

// Config controls a Tokenizer. The zero value is not valid; start from
// DefaultConfig.
type Config struct {
	// MaxDepth caps how many tags may be open at once. Open tags beyond the
	// cap are tokenized as literal text.
	MaxDepth int
	// SelfClosing enables the [name/] and [name=value/] forms. It is off by
	// default because it makes values ending in '/' ambiguous.
	SelfClosing bool
	// Tags is the tag model consulted for names and shapes. Nil means an
	// open model with no known shapes.
	Tags *TagModel
}

func DefaultConfig() Config {
	return Config{MaxDepth: DefaultMaxDepth}
}

func (c Config) Validate() error {
	if c.MaxDepth <= 0 {
		return fmt.Errorf("%w: max depth must be positive, got %d", ErrInvalidConfig, c.MaxDepth)
	}
	return nil
}
