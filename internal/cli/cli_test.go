// internal/cli/cli_test.go
package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/arc-language/libprobe"
	"github.com/arc-language/libprobe/pkg/core"
)

// installCMAES lays out a fake libcmaes install under a temp root
func installCMAES(t *testing.T, binary string) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "include", "libcmaes"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "include", "libcmaes", "cmaes.h"), nil, 0o644))
	if binary != "" {
		require.NoError(t, os.MkdirAll(filepath.Join(root, "lib"), 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(root, "lib", binary), nil, 0o644))
	}
	return root
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("LIBPROBE_LIBCMAES", "")

	var stdout, stderr bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "none.yaml"), "--no-color"}, args...))

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestCheckFoundYAML(t *testing.T) {
	root := installCMAES(t, "libcmaes.so")

	stdout, stderr, err := run(t, "check", "--libcmaes", root)
	require.NoError(t, err)
	assert.Contains(t, stderr, "Checking for libcmaes libs")

	var rec map[string][]string
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &rec))
	assert.Equal(t, map[string][]string{
		"INCLUDES_LIBCMAES": {root + "/include"},
		"LIBPATH_LIBCMAES":  {root + "/lib"},
		"DEFINES_LIBCMAES":  {"USE_LIBCMAES"},
		"LIB_LIBCMAES":      {"cmaes"},
	}, rec)
}

func TestCheckFoundJSON(t *testing.T) {
	root := installCMAES(t, "libcmaes.a")

	stdout, _, err := run(t, "check", "--libcmaes", root, "--format", "json")
	require.NoError(t, err)

	var rec map[string][]string
	require.NoError(t, json.Unmarshal([]byte(stdout), &rec))
	assert.Equal(t, []string{"cmaes"}, rec["LIB_LIBCMAES"])
}

func TestCheckFoundEnv(t *testing.T) {
	root := installCMAES(t, "libcmaes.a")

	stdout, _, err := run(t, "check", "--libcmaes", root, "--format", "env")
	require.NoError(t, err)
	assert.Contains(t, stdout, "DEFINES_LIBCMAES=\"USE_LIBCMAES\"\n")
	assert.Contains(t, stdout, "LIB_LIBCMAES=\"cmaes\"\n")
}

func TestCheckNotFoundIsNotAnError(t *testing.T) {
	root := installCMAES(t, "")

	stdout, stderr, err := run(t, "check", "--libcmaes", root)
	require.NoError(t, err)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "Not found")
}

func TestCheckRequire(t *testing.T) {
	root := t.TempDir()
	stdout, _, err := run(t, "check", "--libcmaes", root, "--require")
	assert.ErrorIs(t, err, libprobe.ErrNotFound)
	assert.EqualError(t, err, "check libcmaes under "+root+": library not found")
	assert.Empty(t, stdout)
}

func TestCheckUnknownFormat(t *testing.T) {
	root := installCMAES(t, "libcmaes.so")

	_, _, err := run(t, "check", "--libcmaes", root, "--format", "toml")
	assert.ErrorContains(t, err, "unknown format")

	// Rejected before searching, so a missing library does not hide it
	stdout, stderr, err := run(t, "check", "--libcmaes", t.TempDir(), "--format", "toml")
	assert.ErrorContains(t, err, "unknown format")
	assert.Empty(t, stdout)
	assert.NotContains(t, stderr, "Checking for")
}

func TestFlags(t *testing.T) {
	root := installCMAES(t, "libcmaes.dylib")

	stdout, _, err := run(t, "flags", "--libcmaes", root)
	require.NoError(t, err)
	assert.Equal(t, "-DUSE_LIBCMAES -I"+root+"/include -L"+root+"/lib -lcmaes\n", stdout)
}

func TestConfigFileOverridePath(t *testing.T) {
	t.Setenv("LIBPROBE_LIBCMAES", "")
	root := installCMAES(t, "libcmaes.so")
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("libcmaes: "+root+"\nformat: flags\ncolor: false\n"), 0o644))

	var stdout bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--config", cfgPath, "check"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, stdout.String(), "-lcmaes")
}

func TestConfigShowsFlagOverride(t *testing.T) {
	stdout, _, err := run(t, "config", "--libcmaes", "/opt/cmaes")
	require.NoError(t, err)

	var cfg core.Config
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &cfg))
	assert.Equal(t, "/opt/cmaes", cfg.LibCMAES)
	assert.False(t, cfg.Color)
}

func TestConfigSave(t *testing.T) {
	t.Setenv("LIBPROBE_LIBCMAES", "")
	cfgPath := filepath.Join(t.TempDir(), "libprobe", "config.yaml")

	cmd := NewRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--config", cfgPath, "--libcmaes", "/opt/cmaes", "config", "--save"})
	require.NoError(t, cmd.Execute())

	saved, err := core.LoadConfig(cfgPath)
	require.NoError(t, err)
	assert.Equal(t, "/opt/cmaes", saved.LibCMAES)
	assert.Equal(t, core.FormatYAML, saved.Format)
}

func TestVersion(t *testing.T) {
	stdout, _, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "libprobe version "+version)
}
