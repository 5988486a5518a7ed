package gtest

import (
	"log/slog"
	"testing"

	"github.com/neilotoole/slogt"
)

// NewLogger returns a *slog.Logger that writes through t.Log,
// for the commands in this module that take a logger.
func NewLogger(t testing.TB) *slog.Logger {
	// Output only appears for failing tests or with go test -v.
	return slogt.New(t, slogt.Text())
}
