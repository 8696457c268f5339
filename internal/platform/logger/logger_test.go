package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, Debug, ParseLevel("DEBUG"))
	assert.Equal(t, Warn, ParseLevel("warning"))
	assert.Equal(t, Error, ParseLevel(" error "))
	assert.Equal(t, Info, ParseLevel(""))
	assert.Equal(t, Info, ParseLevel("verbose"))
}

func TestStdLogger_TextFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Level: Warn, Format: FormatText, App: "pets", Output: &buf})

	log.Info("ignored", nil)
	log.Warn("slow request", map[string]any{"path": "/pets", "": "dropped"})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "app=pets")
	assert.Contains(t, lines[0], "level=warn")
	assert.Contains(t, lines[0], `msg="slow request"`)
	assert.Contains(t, lines[0], "path=/pets")
	assert.NotContains(t, lines[0], "dropped")
}

func TestStdLogger_JSONWithFields(t *testing.T) {
	var buf bytes.Buffer
	base := New(Options{Level: Debug, Format: FormatJSON, Output: &buf})
	log := base.With(map[string]any{"component": "catalog"})

	log.Debug("cache miss", map[string]any{"key": "kind=medication"})

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "cache miss", entry["msg"])
	assert.Equal(t, "catalog", entry["component"])
	assert.Equal(t, "kind=medication", entry["key"])
	assert.NotEmpty(t, entry["ts"])
}

func TestNop(t *testing.T) {
	log := Nop()
	log.Error("nothing", map[string]any{"k": "v"})
	assert.NotNil(t, log.With(map[string]any{"a": 1}))
}

func TestStdLogger_ErrorValuesAsText(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Level: Info, Format: FormatJSON, Output: &buf})

	log.Error("redis down", map[string]any{"error": errors.New("dial tcp: refused")})

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "dial tcp: refused", entry["error"])
}

func TestContext(t *testing.T) {
	var buf bytes.Buffer
	reqLog := New(Options{Level: Info, Output: &buf}).With(map[string]any{"request_id": "r-1"})

	ctx := NewContext(context.Background(), reqLog)
	FromContext(ctx, Nop()).Info("hit", nil)
	assert.Contains(t, buf.String(), "request_id=r-1")

	assert.NotNil(t, FromContext(context.Background(), nil))
}
