package application

import (
	"io"
	"log/slog"
	"testing"

	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
	"github.com/stretchr/testify/require"
)

func TestRunApp(t *testing.T) {
	t.Run("Returns ErrAddrNotFound without redis host", func(t *testing.T) {
		// Given: a config with no redis host
		conf := &config.Config{
			HTTPPort:  "9090",
			BoardSize: 3,
			Redis:     config.Redis{Port: "6379"},
		}

		// When: running the app
		err := RunApp(slog.New(slog.NewTextHandler(io.Discard, nil)), conf)

		// Then: it stops before connecting
		require.ErrorIs(t, err, ErrAddrNotFound)
	})
}
