package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/huanfeng/pacview/internal/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// writeFixture creates a pacman.conf with a core repository fed by a
// mirrorlist and an extra repository with a direct server.
func writeFixture(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	mirrorlist := filepath.Join(dir, "mirrorlist")
	require.NoError(t, os.WriteFile(mirrorlist, []byte("# Worldwide\nhttps://geo.example/$repo/os/$arch\n"), 0644))

	conf := "[options]\nParallelDownloads = 10\nCacheDir = /a/\nCacheDir = /b/\n" +
		"[core]\nInclude = " + mirrorlist + "\n" +
		"[extra]\nServer = https://a.example/extra\nUsage = Upgrade\n"
	path := filepath.Join(dir, "pacman.conf")
	require.NoError(t, os.WriteFile(path, []byte(conf), 0644))
	return path
}

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	viper.Reset()
	t.Setenv("HOME", t.TempDir())
	for _, key := range []string{"PACVIEW_LANG", "LC_ALL", "LC_MESSAGES", "LANG"} {
		t.Setenv(key, "")
	}

	// Flag values survive between Execute calls on the same command tree
	rootCmd.PersistentFlags().VisitAll(func(f *pflag.Flag) {
		f.Value.Set(f.DefValue)
		f.Changed = false
	})

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	err := execute()
	return stdout.String(), stderr.String(), err
}

func TestGetCommand(t *testing.T) {
	path := writeFixture(t)

	out, _, err := runCLI(t, "--config", path, "--format", "text", "get", "ParallelDownloads")
	require.NoError(t, err)
	assert.Equal(t, "10\n", out)

	out, _, err = runCLI(t, "--config", path, "--format", "text", "get", "CacheDir", "DBPath")
	require.NoError(t, err)
	assert.Equal(t, "/a/\n/b/\n/var/lib/pacman/\n", out)
}

func TestGetCommandJSON(t *testing.T) {
	path := writeFixture(t)

	out, _, err := runCLI(t, "--config", path, "--format", "json", "get", "CacheDir")
	require.NoError(t, err)

	var got map[string][]string
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, map[string][]string{"CacheDir": {"/a/", "/b/"}}, got)
}

func TestGetUnknownDirective(t *testing.T) {
	path := writeFixture(t)

	_, stderr, err := runCLI(t, "--config", path, "--format", "text", "get", "Colour")
	require.Error(t, err)
	assert.Equal(t, errors.KindNotFound, errors.KindOf(err))
	assert.Contains(t, stderr, "Error: ")
}

func TestReposCommand(t *testing.T) {
	path := writeFixture(t)

	out, _, err := runCLI(t, "--config", path, "--format", "text", "repos")
	require.NoError(t, err)
	assert.Equal(t, "core\nextra\n", out)
}

func TestRepoCommand(t *testing.T) {
	path := writeFixture(t)

	out, _, err := runCLI(t, "--config", path, "--format", "text", "repo", "core", "Server")
	require.NoError(t, err)
	assert.Equal(t, "https://geo.example/$repo/os/$arch\n", out)

	out, _, err = runCLI(t, "--config", path, "--format", "text", "repo", "extra")
	require.NoError(t, err)
	assert.Equal(t, "[extra]\nSigLevel = Required DatabaseOptional\nUsage = Upgrade\nServer = https://a.example/extra\n", out)

	_, _, err = runCLI(t, "--config", path, "--format", "text", "repo", "community")
	assert.ErrorIs(t, err, errors.ErrNotFound)
}

func TestShowCommandYAML(t *testing.T) {
	path := writeFixture(t)

	out, _, err := runCLI(t, "--config", path, "--format", "yaml", "show")
	require.NoError(t, err)

	var got struct {
		Options struct {
			ParallelDownloads int    `yaml:"parallel_downloads"`
			Architecture      string `yaml:"architecture"`
		} `yaml:"options"`
		Repositories []struct {
			Name  string `yaml:"name"`
			Usage string `yaml:"usage"`
		} `yaml:"repositories"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))

	assert.Equal(t, 10, got.Options.ParallelDownloads)
	assert.Equal(t, "auto", got.Options.Architecture)
	require.Len(t, got.Repositories, 2)
	assert.Equal(t, "extra", got.Repositories[1].Name)
	assert.Equal(t, "Upgrade", got.Repositories[1].Usage)
}

func TestShowCommandTOML(t *testing.T) {
	path := writeFixture(t)

	out, _, err := runCLI(t, "--config", path, "--format", "toml", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "[options]")
	assert.Contains(t, out, "[[repositories]]")
	assert.Contains(t, out, `usage = "Upgrade"`)
}

func TestCheckCommand(t *testing.T) {
	path := writeFixture(t)

	out, _, err := runCLI(t, "--config", path, "--format", "text", "check")
	require.NoError(t, err)
	assert.Equal(t, path+": OK (2 repositories)\n", out)

	broken := filepath.Join(t.TempDir(), "pacman.conf")
	require.NoError(t, os.WriteFile(broken, []byte("[core]\nServer = https://x\nInclude = /nonexistent/mirrorlist\n"), 0644))

	out, stderr, err := runCLI(t, "--config", broken, "--format", "text", "check")
	require.Error(t, err)
	assert.Empty(t, out)
	assert.Contains(t, stderr, "configuration is invalid")
	assert.Contains(t, stderr, "INCLUDE_NOT_FOUND")
	assert.Contains(t, stderr, "/nonexistent/mirrorlist")
	assert.NotContains(t, stderr, "Error: ", "check reports its own failure once")
	assert.Equal(t, errors.KindIncludeNotFound, errors.KindOf(err))
}

func TestLogFileWrittenOnFailure(t *testing.T) {
	broken := filepath.Join(t.TempDir(), "pacman.conf")
	require.NoError(t, os.WriteFile(broken, []byte("[core]\nInclude = /nonexistent/mirrorlist\n"), 0644))
	logPath := filepath.Join(t.TempDir(), "pacview.log")

	_, _, err := runCLI(t, "--config", broken, "--log-file", logPath, "check")
	require.Error(t, err)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "INCLUDE_NOT_FOUND")

	// The next run must not inherit the closed file
	out, _, err := runCLI(t, "--config", writeFixture(t), "--format", "text", "repos")
	require.NoError(t, err)
	assert.Equal(t, "core\nextra\n", out)
}

func TestLogFormatJSON(t *testing.T) {
	path := writeFixture(t)

	out, stderr, err := runCLI(t, "--config", path, "--format", "text", "--log-format", "json", "--debug", "get", "ParallelDownloads")
	require.NoError(t, err)
	assert.Equal(t, "10\n", out)

	lines := strings.Split(strings.TrimSpace(stderr), "\n")
	require.NotEmpty(t, lines)
	for _, line := range lines {
		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry), line)
		assert.Contains(t, entry, "level")
	}
	assert.Contains(t, stderr, `"level":"debug"`)
}

func TestLogFormatRejectsUnknown(t *testing.T) {
	_, _, err := runCLI(t, "--config", writeFixture(t), "--log-format", "xml", "repos")
	assert.ErrorContains(t, err, `unknown log format "xml"`)
}

func TestLangFromArgs(t *testing.T) {
	assert.Equal(t, "zh", langFromArgs([]string{"--lang", "zh", "show"}))
	assert.Equal(t, "en", langFromArgs([]string{"show", "--lang=en"}))
	assert.Equal(t, "", langFromArgs([]string{"show", "--lang"}))
}
