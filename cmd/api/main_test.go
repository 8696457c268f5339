package main

import (
	"net"
	"strconv"
	"testing"

	"pet-care-dashboard/internal/platform/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// baseEnv deja la app en modo memoria, sin redis ni auth.
func baseEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"DB_DSN", "REDIS_ADDR", "JWT_SECRET", "AUTH_INTROSPECT_URL", "SEED_DEMO_USER", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST"} {
		t.Setenv(k, "")
	}
}

func TestRun_ConfigErrorIsReturned(t *testing.T) {
	baseEnv(t)
	t.Setenv("RATE_LIMIT_RPS", "0")

	err := run(logger.Nop())
	assert.ErrorContains(t, err, "config")
}

func TestRun_ListenErrorIsReturned(t *testing.T) {
	baseEnv(t)

	ln, err := net.Listen("tcp", ":0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = ln.Close() })
	t.Setenv("PORT", strconv.Itoa(ln.Addr().(*net.TCPAddr).Port))

	err = run(logger.Nop())
	assert.ErrorContains(t, err, "server")
}
