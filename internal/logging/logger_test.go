package logging

import (
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestConfig(writer *strings.Builder) Config {
	return Config{
		Writer:  writer,
		Command: "detect",
		Level:   InfoLevel,
	}
}

func TestGet_WithoutLogger(t *testing.T) {
	t.Parallel()

	logger := Get(context.Background())

	require.NotNil(t, logger)
	require.Equal(t, zerolog.Disabled, logger.GetLevel())
}

func TestNew_WithCustomWriter(t *testing.T) {
	t.Parallel()

	var buf strings.Builder
	ctx, err := New(context.Background(), nil, createTestConfig(&buf))

	require.NoError(t, err)
	logger := Get(ctx)
	assert.Equal(t, InfoLevel, logger.GetLevel())

	logger.Info().Msg("resolved paths")
	logger.Debug().Msg("hidden")

	out := buf.String()
	assert.Contains(t, out, `"command":"detect"`)
	assert.Contains(t, out, "resolved paths")
	assert.NotContains(t, out, "hidden")
}

func TestNew_NoWriterNoFilesystem_ReturnsError(t *testing.T) {
	t.Parallel()

	ctx, err := New(context.Background(), nil, Config{Level: InfoLevel})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "filesystem required when no writer provided")
	assert.Nil(t, ctx)
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, DebugLevel, ParseLevel("debug"))
	assert.Equal(t, WarnLevel, ParseLevel("warn"))
	assert.Equal(t, InfoLevel, ParseLevel(""))
	assert.Equal(t, InfoLevel, ParseLevel("loud"))
}
