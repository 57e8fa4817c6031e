package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFanoutRoutesByLevel(t *testing.T) {
	var all, errorsOnly bytes.Buffer
	logger := slog.New(NewFanout(
		slog.NewJSONHandler(&all, &slog.HandlerOptions{Level: slog.LevelInfo}),
		slog.NewJSONHandler(&errorsOnly, &slog.HandlerOptions{Level: slog.LevelError}),
	))

	logger.Info("routine")
	logger.Error("broken")

	assert.Contains(t, all.String(), "routine")
	assert.Contains(t, all.String(), "broken")
	assert.NotContains(t, errorsOnly.String(), "routine")
	assert.Contains(t, errorsOnly.String(), "broken")
}
