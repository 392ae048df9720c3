package config_test

import (
	"os"
	"path/filepath"
	"testing"

	appconfig "github.com/dirchecker/dirchecker/internal/adapters/outbound/config"
	"github.com/dirchecker/dirchecker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoader_MissingFileReturnsDefaults(t *testing.T) {
	dir := t.TempDir()

	cfg, source, err := appconfig.New().Load(dir, "")
	require.NoError(t, err)
	assert.Empty(t, source)
	assert.Equal(t, domain.DefaultConfig(), cfg)
}

func TestLoader_YAMLOverridesOnlyPresentKeys(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "dir-checker-config.yaml", `
root_dir: "test"
max_depth: 5
check_depth: true
levels:
  - "env"
  - "service"
`)

	cfg, source, err := appconfig.New().Load(dir, "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "dir-checker-config.yaml"), source)
	assert.Equal(t, "test", cfg.RootDir)
	assert.Equal(t, 5, cfg.MaxDepth)
	assert.True(t, cfg.CheckDepth)
	assert.Equal(t, []string{"env", "service"}, cfg.Levels)

	defaults := domain.DefaultConfig()
	assert.Equal(t, defaults.MandatoryFiles, cfg.MandatoryFiles)
	assert.Equal(t, defaults.AllowSubdirs, cfg.AllowSubdirs)
	assert.Equal(t, defaults.FailOnMissingFiles, cfg.FailOnMissingFiles)
}

func TestLoader_NestedValidValuesReplaceDefaults(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "dir-checker-config.yaml", `
valid_values:
  environment:
    - "dev"
    - "prod"
  service:
    - "api"
    - "web"
`)

	cfg, _, err := appconfig.New().Load(dir, "")
	require.NoError(t, err)
	assert.Equal(t, map[string][]string{
		"environment": {"dev", "prod"},
		"service":     {"api", "web"},
	}, cfg.ValidValues)
}

func TestLoader_ExplicitFalseOverridesTrueDefault(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "dir-checker-config.yaml", "fail_on_missing_files: false\nrespect_gitignore: false\n")

	cfg, _, err := appconfig.New().Load(dir, "")
	require.NoError(t, err)
	assert.False(t, cfg.FailOnMissingFiles)
	assert.False(t, cfg.RespectGitignore)
}

func TestLoader_EmptyListClearsDefault(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "dir-checker-config.yaml", "optional_files: []\n")

	cfg, _, err := appconfig.New().Load(dir, "")
	require.NoError(t, err)
	assert.NotNil(t, cfg.OptionalFiles)
	assert.Empty(t, cfg.OptionalFiles)
}

func TestLoader_UnknownKeysIgnored(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "dir-checker-config.yaml", "verbose: true\nspecial_patterns:\n  x: 1\nroot_dir: app\n")

	cfg, _, err := appconfig.New().Load(dir, "")
	require.NoError(t, err)
	assert.Equal(t, "app", cfg.RootDir)
}

func TestLoader_JSONFallback(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "dir-checker-config.json", `{"root_dir": "lib", "skip_dirs": ["vendor"], "log_level": "info"}`)

	cfg, source, err := appconfig.New().Load(dir, "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "dir-checker-config.json"), source)
	assert.Equal(t, "lib", cfg.RootDir)
	assert.Equal(t, []string{"vendor"}, cfg.SkipDirs)
	assert.Equal(t, domain.LogLevelInfo, cfg.MinLogLevel())
}

func TestLoader_YAMLPreferredOverJSON(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "dir-checker-config.yaml", "root_dir: from-yaml\n")
	writeFile(t, dir, "dir-checker-config.json", `{"root_dir": "from-json"}`)

	cfg, _, err := appconfig.New().Load(dir, "")
	require.NoError(t, err)
	assert.Equal(t, "from-yaml", cfg.RootDir)
}

func TestLoader_ExplicitRelativeFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "custom.json", `{"root_dir": "custom"}`)

	cfg, source, err := appconfig.New().Load(dir, "custom.json")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "custom.json"), source)
	assert.Equal(t, "custom", cfg.RootDir)
}

func TestLoader_ExplicitFileMissing(t *testing.T) {
	_, _, err := appconfig.New().Load(t.TempDir(), "nope.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope.yaml")
}

func TestLoader_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "dir-checker-config.yaml", `{{{invalid yaml`)

	_, _, err := appconfig.New().Load(dir, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing dir-checker-config.yaml")
}

func TestLoader_InvalidValuesRejected(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "dir-checker-config.yaml", "log_level: loud\n")

	_, _, err := appconfig.New().Load(dir, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid dir-checker-config.yaml")
	assert.Contains(t, err.Error(), "log_level")
}

func TestGenerate_YAMLRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dir-checker-config.yaml")
	require.NoError(t, appconfig.WriteDefault(path, false))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# Repository structure validation configuration.")
	assert.Contains(t, string(data), "root_dir: src")

	cfg, err := appconfig.LoadFile(path)
	require.NoError(t, err)
	want := domain.DefaultConfig()
	assert.Equal(t, want.Levels, cfg.Levels)
	assert.Equal(t, want.ValidValues, cfg.ValidValues)
	assert.ElementsMatch(t, want.SkipDirs, cfg.SkipDirs)
	assert.ElementsMatch(t, want.SkipFiles, cfg.SkipFiles)
}

func TestGenerate_JSONByExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dir-checker-config.json")
	require.NoError(t, appconfig.WriteDefault(path, false))

	cfg, err := appconfig.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig().MandatoryFiles, cfg.MandatoryFiles)
}

func TestWriteDefault_RefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "dir-checker-config.yaml", "root_dir: keep\n")

	err := appconfig.WriteDefault(path, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	require.NoError(t, appconfig.WriteDefault(path, true))
	cfg, err := appconfig.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "src", cfg.RootDir)
}
