package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"WARN", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"", zerolog.InfoLevel},
		{"bogus", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestCtxWithFields(t *testing.T) {
	var buf bytes.Buffer
	base := zerolog.New(&buf)

	ctx := WithCtx(context.Background(), base)
	ctx = CtxWithFields(ctx, map[string]any{
		FieldLayer:   "usecase",
		FieldUseCase: "Build",
	})
	ctx = CtxWithField(ctx, FieldEndpoint, "se-sto-01")

	FromCtx(ctx).Info().Msg("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "usecase", entry[FieldLayer])
	assert.Equal(t, "Build", entry[FieldUseCase])
	assert.Equal(t, "se-sto-01", entry[FieldEndpoint])
	assert.Equal(t, "hello", entry["message"])
}

func TestFromCtx_NoLogger(t *testing.T) {
	log := FromCtx(context.Background())
	require.NotNil(t, log)
	assert.Equal(t, zerolog.Disabled, log.GetLevel())
}

func TestNewWithFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "vpn-chainer.log")

	log, cleanup, err := NewWithFile(Config{Level: "info", Format: "json"}, FileConfig{
		Enabled: true,
		Path:    path,
		MaxSize: 1,
	})
	require.NoError(t, err)
	log.Info().Msg("written")
	cleanup()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "written")
}

func TestNewWithFile_EmptyPath(t *testing.T) {
	_, _, err := NewWithFile(Config{}, FileConfig{Enabled: true})
	assert.Error(t, err)
}
