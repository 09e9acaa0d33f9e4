package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// inTempDir runs the test body with a fresh working directory
func inTempDir(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()
	origDir, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tmpDir))
	t.Cleanup(func() { _ = os.Chdir(origDir) })
	return tmpDir
}

func TestLoadConfigDefaults(t *testing.T) {
	inTempDir(t)

	c := loadConfig()
	assert.Equal(t, defaultConfig(), c)
	assert.False(t, c.Strict)
	assert.Equal(t, 4, c.Workers)
	assert.Equal(t, "text", c.Format)
}

func TestLoadConfigFromWorkingDirectory(t *testing.T) {
	inTempDir(t)

	configContent := `strict = true
workers = 8
format = "yaml"
exclude = ["generated"]
`
	require.NoError(t, os.WriteFile("Config.toml", []byte(configContent), 0o644))

	c := loadConfig()
	assert.True(t, c.Strict)
	assert.Equal(t, 8, c.Workers)
	assert.Equal(t, "yaml", c.Format)
	assert.Equal(t, []string{"generated"}, c.Exclude)
}

func TestLoadConfigPartial(t *testing.T) {
	inTempDir(t)
	require.NoError(t, os.WriteFile("Config.toml", []byte("format = \"table\"\n"), 0o644))

	c := loadConfig()
	assert.Equal(t, "table", c.Format)
	assert.Equal(t, defaultConfig().Workers, c.Workers)
	assert.Equal(t, defaultConfig().Exclude, c.Exclude)
}

func TestLoadConfigInvalidFallsBack(t *testing.T) {
	inTempDir(t)
	require.NoError(t, os.WriteFile("Config.toml", []byte("workers = [\n"), 0o644))

	assert.Equal(t, defaultConfig(), loadConfig())
}

func TestLoadConfigFile(t *testing.T) {
	dir := inTempDir(t)

	_, err := loadConfigFile(filepath.Join(dir, "missing.toml"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("workers = \"many\"\n"), 0o644))
	_, err = loadConfigFile(bad)
	assert.ErrorContains(t, err, "parsing config")

	good := filepath.Join(dir, "codart.toml")
	require.NoError(t, os.WriteFile(good, []byte("workers = 2\n"), 0o644))
	c, err := loadConfigFile(good)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Workers)
	assert.Equal(t, "text", c.Format)
}

func TestConfigFlagOverridesFile(t *testing.T) {
	dir := inTempDir(t)
	javaDir := filepath.Join(dir, "src")
	require.NoError(t, os.Mkdir(javaDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(javaDir, "A.java"), []byte("class A { int x; }\n"), 0o644))

	cfgPath := filepath.Join(dir, "codart.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("format = \"yaml\"\n"), 0o644))

	stdout, _, err := run(t, "--config", cfgPath, "analyze", javaDir)
	require.NoError(t, err)
	assert.Contains(t, stdout, "name: A")

	stdout, _, err = run(t, "--config", cfgPath, "analyze", "--format", "text", javaDir)
	require.NoError(t, err)
	assert.Equal(t, "no.classes: 1\n1.A:\n\tno.attrs: 1\n\t\tpublic: 1\n\t\tprivate: 0\n\tno.methods: 0\n", stdout)

	_, _, err = run(t, "--config", filepath.Join(dir, "nope.toml"), "student")
	assert.ErrorContains(t, err, "reading config")
}
