package diagnostics

import (
	"bytes"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestNewLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, false)
	logger.Debug("hidden debug")
	logger.Info("hidden info")
	logger.Warn("shown warning", zap.String("file", "Shape.java"))

	output := buf.String()
	if strings.Contains(output, "hidden") {
		t.Errorf("Expected debug and info to be filtered, got:\n%s", output)
	}
	if !strings.Contains(output, "shown warning") || !strings.Contains(output, "Shape.java") {
		t.Errorf("Expected warning with field, got:\n%s", output)
	}
}

func TestNewLoggerVerbose(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, true)
	logger.Debug("debug line")
	if !strings.Contains(buf.String(), "debug line") {
		t.Errorf("Expected debug output in verbose mode, got:\n%s", buf.String())
	}
}

func TestFatalNilError(t *testing.T) {
	// must return instead of exiting
	Fatal("nothing happened", nil)
}
