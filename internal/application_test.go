package application

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
)

func TestNewSessionRepository(t *testing.T) {
	t.Run("Memory storage", func(t *testing.T) {
		repo, closeStorage, err := newSessionRepository(t.Context(), &config.Config{Storage: config.StorageMemory})

		require.NoError(t, err)
		assert.NotNil(t, repo)
		assert.NoError(t, closeStorage())
	})

	t.Run("Redis storage that cannot be reached", func(t *testing.T) {
		// Given: a redis address nothing listens on
		conf := &config.Config{Storage: config.StorageRedis, Redis: config.Redis{Host: "127.0.0.1", Port: "1"}}

		ctx, cancel := context.WithTimeout(t.Context(), 5*time.Second)
		defer cancel()

		// When: the repository is built
		repo, closeStorage, err := newSessionRepository(ctx, conf)

		// Then: the connection error is returned
		require.ErrorContains(t, err, "could not connect to redis storage")
		assert.Nil(t, repo)
		assert.Nil(t, closeStorage)
	})
}

func TestRunTerminal(t *testing.T) {
	var out bytes.Buffer

	err := RunTerminal(strings.NewReader("4\nquit\n"), &out)

	require.NoError(t, err)
	assert.Contains(t, out.String(), " 3 | X | 5 ")
	assert.Contains(t, out.String(), "Next player: O")
}
