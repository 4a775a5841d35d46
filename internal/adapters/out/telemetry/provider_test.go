package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProvider_Disabled(t *testing.T) {
	p, err := NewProvider(context.Background(), Config{Enabled: false, Endpoint: "http://localhost:4318"}, "dev")
	require.NoError(t, err)
	assert.False(t, p.Enabled())
	assert.NoError(t, p.Shutdown(context.Background()))

	p, err = NewProvider(context.Background(), Config{Enabled: true}, "dev")
	require.NoError(t, err)
	assert.False(t, p.Enabled())
}

func TestParseTarget(t *testing.T) {
	tgt, err := parseTarget(Config{Endpoint: "http://collector:4318/otlp/", AuthToken: "dXNlcjpwYXNz"})
	require.NoError(t, err)
	assert.Equal(t, "collector:4318", tgt.host)
	assert.Equal(t, "/otlp", tgt.basePath)
	assert.True(t, tgt.insecure)
	assert.Equal(t, "Basic dXNlcjpwYXNz", tgt.headers["Authorization"])

	tgt, err = parseTarget(Config{Endpoint: "https://otlp.example.com"})
	require.NoError(t, err)
	assert.False(t, tgt.insecure)
	assert.Empty(t, tgt.basePath)
	assert.Empty(t, tgt.headers)

	_, err = parseTarget(Config{Endpoint: "collector"})
	assert.Error(t, err)
}

func TestSamplerFor(t *testing.T) {
	assert.Equal(t, "AlwaysOffSampler", samplerFor(0).Description())
	assert.Equal(t, "AlwaysOnSampler", samplerFor(1).Description())
	assert.Contains(t, samplerFor(0.25).Description(), "TraceIDRatioBased")
}
