package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorRecovery(t *testing.T) {
	dir := t.TempDir()
	// The second field is missing its initializer expression
	javaSource := []byte(`
abstract class TestBroken {
    int validField1 = 5;

    int broken = ;

    abstract int getField1();
}

abstract class Valid {
    abstract void run();
}
`)
	brokenPath := filepath.Join(dir, "TestBroken.java")
	require.NoError(t, os.WriteFile(brokenPath, javaSource, 0o644))

	t.Run("non-strict analysis continues on error", func(t *testing.T) {
		stdout, stderr, err := run(t, "analyze", dir)
		require.NoError(t, err)
		assert.Contains(t, stdout, "TestBroken")
		assert.Contains(t, stdout, "Valid")
		assert.Contains(t, stderr, "syntax errors")
		assert.Contains(t, stderr, "TestBroken.java")
	})

	t.Run("strict analysis fails", func(t *testing.T) {
		_, _, err := run(t, "--strict", "analyze", dir)
		assert.ErrorContains(t, err, "syntax error")
	})

	t.Run("non-strict conversion skips the file", func(t *testing.T) {
		stdout, stderr, err := run(t, "convert-abstract", brokenPath)
		require.NoError(t, err)
		assert.Contains(t, stdout, "skipped, syntax errors")
		assert.Contains(t, stderr, "skipping file with syntax errors")

		got, err := os.ReadFile(brokenPath)
		require.NoError(t, err)
		assert.Equal(t, string(javaSource), string(got))
	})

	t.Run("strict conversion fails", func(t *testing.T) {
		_, _, err := run(t, "--strict", "convert-abstract", brokenPath)
		assert.Error(t, err)
	})
}
