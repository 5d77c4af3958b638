package puzzle

import (
	"log/slog"

	"github.com/arloliu/puz/internal/options"
)

type parseConfig struct {
	logger    *slog.Logger
	validate  bool
	clueCheck bool
}

func newParseConfig() *parseConfig {
	return &parseConfig{
		logger:   slog.New(slog.DiscardHandler),
		validate: true,
	}
}

// ParseOption configures Parse and ReadFile.
type ParseOption = options.Option[*parseConfig]

// WithLogger sets the logger used for parse diagnostics. Nothing is logged by
// default.
func WithLogger(logger *slog.Logger) ParseOption {
	return options.NoError(func(c *parseConfig) {
		if logger != nil {
			c.logger = logger
		}
	})
}

// WithClueCheck numbers the grid after parsing and logs a warning when the
// grid needs a different number of clues than the file carries. The parse
// still succeeds.
func WithClueCheck() ParseOption {
	return options.NoError(func(c *parseConfig) {
		c.clueCheck = true
	})
}

// WithoutChecksumValidation accepts files whose checksums do not match.
// Mismatches are logged as warnings instead.
func WithoutChecksumValidation() ParseOption {
	return options.NoError(func(c *parseConfig) {
		c.validate = false
	})
}
