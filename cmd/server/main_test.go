package main

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ABHIJEETVINAYJHA07/Innotech-2025/internal/config"
)

func TestRunReturnsStartupErrors(t *testing.T) {
	cfg := &config.Config{
		OTELServiceName: "microloan-test",
		SchemesFile:     filepath.Join(t.TempDir(), "missing.yaml"),
	}

	err := run(cfg, zap.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load schemes")
}

func TestExitCode(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)

	assert.Equal(t, 1, exitCode(logger, errors.New("listen tcp :8000: address already in use")))
	assert.Equal(t, 0, exitCode(logger, nil))

	entries := logs.AllUntimed()
	require.Len(t, entries, 2)
	assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
	assert.Equal(t, "server stopped", entries[0].Message)
	assert.Equal(t, zapcore.InfoLevel, entries[1].Level)
}
