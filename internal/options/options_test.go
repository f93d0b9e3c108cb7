package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// resolverStub stands in for the config structs the resolver and the
// catalog store configure through this package.
type resolverStub struct {
	shards int
	name   string
}

func TestApply(t *testing.T) {
	t.Run("Applies options in order", func(t *testing.T) {
		cfg := &resolverStub{}

		err := Apply(cfg,
			New(func(c *resolverStub) error {
				c.shards = 5
				return nil
			}),
			NoError(func(c *resolverStub) {
				c.name = "idxtest"
			}),
		)

		require.NoError(t, err)
		require.Equal(t, 5, cfg.shards)
		require.Equal(t, "idxtest", cfg.name)
	})

	t.Run("Stops at first error", func(t *testing.T) {
		cfg := &resolverStub{}
		boom := errors.New("bad option")

		err := Apply(cfg,
			NoError(func(c *resolverStub) { c.shards = 1 }),
			New(func(c *resolverStub) error { return boom }),
			NoError(func(c *resolverStub) { c.name = "unreached" }),
		)

		require.ErrorIs(t, err, boom)
		require.Equal(t, 1, cfg.shards)
		require.Empty(t, cfg.name)
	})

	t.Run("No options is a no-op", func(t *testing.T) {
		cfg := &resolverStub{}
		require.NoError(t, Apply(cfg))
		require.Equal(t, resolverStub{}, *cfg)
	})
}

func TestGenericTargets(t *testing.T) {
	// The option machinery is generic over the target type.
	var n int
	opt := NoError(func(p *int) { *p = 42 })

	require.NoError(t, Apply(&n, opt))
	require.Equal(t, 42, n)
}
