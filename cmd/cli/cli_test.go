// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"string-sorter/internal/fileio"
)

// execute runs a fresh command tree with an isolated config directory.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	color.NoColor = true
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_STATE_HOME", t.TempDir())

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestSortCommand(t *testing.T) {
	tmpDir := t.TempDir()
	input := filepath.Join(tmpDir, "input.txt")
	output := filepath.Join(tmpDir, "nested", "output.txt")
	require.NoError(t, os.WriteFile(input, []byte("zebra\n343GuiltySparks\nactivity\n10 Chicken Wings\n2 Steaks\n"), 0644))

	stdout, stderr, err := execute(t, input, output)
	require.NoError(t, err)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "2 Steaks\n10 Chicken Wings\n343GuiltySparks\nactivity\nzebra", string(data))

	assert.Contains(t, stdout, "Sorted 5 lines into "+output)
	assert.Contains(t, stdout, "Created directory "+filepath.Dir(output))
	assert.Contains(t, stderr, `"msg":"Read strings from input file"`)
	assert.Contains(t, stderr, `"count":5`)
}

func TestSortCommandQuiet(t *testing.T) {
	tmpDir := t.TempDir()
	input := filepath.Join(tmpDir, "input.txt")
	output := filepath.Join(tmpDir, "output.txt")
	require.NoError(t, os.WriteFile(input, []byte("b\na"), 0644))

	stdout, stderr, err := execute(t, "--quiet", input, output)
	require.NoError(t, err)
	assert.Empty(t, stdout)
	assert.Empty(t, stderr)
	assert.FileExists(t, output)
}

func TestSortCommandLexicalKey(t *testing.T) {
	tmpDir := t.TempDir()
	input := filepath.Join(tmpDir, "input.txt")
	output := filepath.Join(tmpDir, "output.txt")
	require.NoError(t, os.WriteFile(input, []byte("3\n1\n10\n5"), 0644))

	_, _, err := execute(t, "-q", "--key", "lexical", input, output)
	require.NoError(t, err)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "1\n10\n3\n5", string(data))
}

func TestSortCommandMissingInput(t *testing.T) {
	tmpDir := t.TempDir()
	input := filepath.Join(tmpDir, "non_existent_file.txt")
	output := filepath.Join(tmpDir, "out", "output.txt")

	_, _, err := execute(t, input, output)
	require.ErrorIs(t, err, fileio.ErrInputNotFound)
	assert.Contains(t, err.Error(), input)
	assert.NoDirExists(t, filepath.Dir(output))
}

func TestSortCommandArgs(t *testing.T) {
	_, _, err := execute(t, "only-one.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 2 arg(s)")
}

func TestSortCommandInvalidKey(t *testing.T) {
	tmpDir := t.TempDir()
	input := filepath.Join(tmpDir, "input.txt")
	require.NoError(t, os.WriteFile(input, []byte("a"), 0644))

	_, _, err := execute(t, "--key", "shuffle", input, filepath.Join(tmpDir, "out.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown sort key")
	assert.NoFileExists(t, filepath.Join(tmpDir, "out.txt"))
}

func TestSortCommandConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "ssort.toml")
	logPath := filepath.Join(tmpDir, "logs", "ssort.log")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`key = "lexical"
log_file = "`+logPath+`"
`), 0644))

	input := filepath.Join(tmpDir, "input.txt")
	output := filepath.Join(tmpDir, "output.txt")
	require.NoError(t, os.WriteFile(input, []byte("3\n10"), 0644))

	_, _, err := execute(t, "-q", "--config", cfgPath, input, output)
	require.NoError(t, err)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "10\n3", string(data))

	logs, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(logs), "Strings sorted successfully")
}

func TestKeyCommand(t *testing.T) {
	stdout, _, err := execute(t, "key", "2 Steaks", "activity", "")
	require.NoError(t, err)
	assert.Contains(t, stdout, `(2, " Steaks")`)
	assert.Contains(t, stdout, `(inf, "activity")`)
	assert.Contains(t, stdout, `(inf, "")`)

	stdout, _, err = execute(t, "key", "--key", "lexical", "10 x")
	require.NoError(t, err)
	assert.Contains(t, stdout, `(inf, "10 x")`)
}

func TestConfigShow(t *testing.T) {
	stdout, _, err := execute(t, "config", "show", "--log-level", "debug")
	require.NoError(t, err)
	assert.Contains(t, stdout, "key: numeric")
	assert.Contains(t, stdout, "log_level: debug")
}

func TestConfigPath(t *testing.T) {
	stdout, _, err := execute(t, "config", "path")
	require.NoError(t, err)
	assert.Contains(t, stdout, filepath.Join("string-sorter", "config.yaml"))
}

func TestCompletions(t *testing.T) {
	cmd := &cobra.Command{}
	names, directive := keyCompletionFunc(cmd, nil, "")
	assert.Equal(t, []string{"lexical", "numeric"}, names)
	assert.Equal(t, cobra.ShellCompDirectiveNoFileComp, directive)

	_, directive = fileCompletionFunc(cmd, []string{"in.txt"}, "")
	assert.Equal(t, cobra.ShellCompDirectiveDefault, directive)

	_, directive = fileCompletionFunc(cmd, []string{"in.txt", "out.txt"}, "")
	assert.Equal(t, cobra.ShellCompDirectiveNoFileComp, directive)
}
