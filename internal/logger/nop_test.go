package logger

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lucabaldini/labgroups/types"
)

func TestNopLogger(t *testing.T) {
	logger := NewNop()

	// All methods should be callable without panicking
	require.NotPanics(t, func() {
		logger.Debug("test message", "key", "value")
		logger.Info("test message", "key", "value")
		logger.Warn("test message", "key", "value")
		logger.Error("test message", "key", "value")
		logger.Fatal("test message", "key", "value") // Should NOT exit
	})
}

func TestNopLoggerImplementsLogger(_ *testing.T) {
	var _ types.Logger = (*NopLogger)(nil)
}

func TestRecordLogger(t *testing.T) {
	logger := NewRecord()

	logger.Info("roster built", "students", 4)
	logger.Warn("name mismatch", "student", "Alice Rossi")
	logger.Error("companion not found", "student", "Carla Bianchi")

	require.Len(t, logger.Entries(), 3)

	warns := logger.ByLevel("WARN")
	require.Len(t, warns, 1)
	require.Equal(t, "name mismatch", warns[0].Message)
	require.Equal(t, []any{"student", "Alice Rossi"}, warns[0].Fields)

	require.Empty(t, logger.ByLevel("DEBUG"))
}
