package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type parseConfig struct {
	minRun   int
	validate bool
	calls    []string
}

func withMinRun(n int) Option[*parseConfig] {
	return New(func(c *parseConfig) error {
		if n < 1 {
			return errors.New("min run must be positive")
		}
		c.minRun = n
		c.calls = append(c.calls, "minRun")

		return nil
	})
}

func withoutValidation() Option[*parseConfig] {
	return NoError(func(c *parseConfig) {
		c.validate = false
		c.calls = append(c.calls, "validate")
	})
}

func TestApply(t *testing.T) {
	t.Run("applies in order", func(t *testing.T) {
		cfg := &parseConfig{minRun: 1, validate: true}

		err := Apply(cfg, withoutValidation(), withMinRun(3))
		require.NoError(t, err)
		require.Equal(t, 3, cfg.minRun)
		require.False(t, cfg.validate)
		require.Equal(t, []string{"validate", "minRun"}, cfg.calls)
	})

	t.Run("stops at first error", func(t *testing.T) {
		cfg := &parseConfig{minRun: 1, validate: true}

		err := Apply(cfg, withMinRun(0), withoutValidation())
		require.EqualError(t, err, "min run must be positive")
		require.True(t, cfg.validate)
		require.Empty(t, cfg.calls)
	})

	t.Run("skips nil options", func(t *testing.T) {
		cfg := &parseConfig{}

		require.NoError(t, Apply[*parseConfig](cfg, nil, withMinRun(2)))
		require.Equal(t, 2, cfg.minRun)
	})

	t.Run("no options", func(t *testing.T) {
		cfg := &parseConfig{minRun: 7}

		require.NoError(t, Apply(cfg))
		require.Equal(t, 7, cfg.minRun)
	})
}
