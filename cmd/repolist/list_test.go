// TEST TYPE: Integration Test
// DEPENDENCIES: temp files
package repolist

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/repolist/pkg/config"
	"github.com/arthur-debert/repolist/pkg/errors"
	"github.com/arthur-debert/repolist/pkg/testutil"
	"github.com/arthur-debert/repolist/pkg/types"
)

// newRepo creates:
//
//	README.md
//	data.dvc     declares directory output "data"
//	model.pkl    2048 bytes, tracked by model.pkl.dvc
//	src/main.py
func newRepo(t *testing.T) string {
	t.Helper()
	return testutil.NewTempRepo(t).
		AddFile("README.md", "# repo\n").
		AddDirOutput("data", 4096, 3).
		AddFile("model.pkl", strings.Repeat("x", 2048)).
		AddOutput("model.pkl", 2048).
		AddFile("src/main.py", "print('hi')\n").
		Root
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	if args == nil {
		args = []string{}
	}
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestListCommand(t *testing.T) {
	testutil.IsolateEnv(t)
	dir := newRepo(t)

	tests := []struct {
		name        string
		args        []string
		expected    string
		notExpected []string
	}{
		{
			name:     "top level",
			args:     []string{"list", dir},
			expected: "README.md\ndata/\ndata.dvc\nmodel.pkl\nmodel.pkl.dvc\nsrc/\n",
		},
		{
			name:     "alias and sub path",
			args:     []string{"ls", dir, "src"},
			expected: "main.py\n",
		},
		{
			name:     "dvc only",
			args:     []string{"list", dir, "--dvc-only"},
			expected: "data/\nmodel.pkl\n",
		},
		{
			name:     "recursive",
			args:     []string{"list", dir, "-R"},
			expected: "README.md\ndata/\ndata.dvc\nmodel.pkl\nmodel.pkl.dvc\nsrc/main.py\n",
		},
		{
			name:        "no colors when writing to a buffer",
			args:        []string{"list", dir},
			notExpected: []string{"\x1b["},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.args...)
			require.NoError(t, err)
			if tt.expected != "" {
				assert.Equal(t, tt.expected, out)
			}
			for _, s := range tt.notExpected {
				assert.NotContains(t, out, s)
			}
		})
	}
}

func TestListCommandSize(t *testing.T) {
	testutil.IsolateEnv(t)
	dir := newRepo(t)

	out, err := execute(t, "list", dir, "--size")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 6)

	nameCol := strings.Index(lines[0], "README.md")
	require.Greater(t, nameCol, 0)
	for _, line := range lines {
		assert.Greater(t, len(line), nameCol, line)
	}
	assert.Contains(t, out, "2.0 KiB  model.pkl")
	assert.True(t, strings.HasSuffix(lines[1], "data/"), lines[1])
}

func TestListCommandSizeFromConfig(t *testing.T) {
	testutil.IsolateEnv(t)
	dir := newRepo(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.RepoConfigFile),
		[]byte("[list]\nsize = true\n"), 0644))

	out, err := execute(t, "list", dir, "model.pkl")
	require.NoError(t, err)
	assert.Equal(t, "2.0 KiB  model.pkl\n", out)

	out, err = execute(t, "list", dir, "model.pkl", "--size=false")
	require.NoError(t, err)
	assert.Equal(t, "model.pkl\n", out)
}

func TestListCommandJSON(t *testing.T) {
	testutil.IsolateEnv(t)
	dir := newRepo(t)

	out, err := execute(t, "list", dir, "--json")
	require.NoError(t, err)

	var entries []types.Entry
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	require.Len(t, entries, 6)

	byPath := map[string]types.Entry{}
	for _, e := range entries {
		byPath[e.Path] = e
	}
	assert.True(t, byPath["data"].IsDir)
	assert.True(t, byPath["data"].IsOut)
	assert.True(t, byPath["model.pkl"].IsOut)
	require.NotNil(t, byPath["model.pkl"].Size)
	assert.Equal(t, int64(2048), *byPath["model.pkl"].Size)
	assert.False(t, byPath["README.md"].IsOut)
}

func TestListCommandEmpty(t *testing.T) {
	testutil.IsolateEnv(t)
	dir := t.TempDir()

	out, err := execute(t, "list", dir)
	require.NoError(t, err)
	assert.Empty(t, out)

	out, err = execute(t, "list", dir, "--size")
	require.NoError(t, err)
	assert.Empty(t, out)

	out, err = execute(t, "list", dir, "--json")
	require.NoError(t, err)
	assert.Equal(t, "[]\n", out)
}

func TestListCommandColors(t *testing.T) {
	testutil.IsolateEnv(t)
	dir := newRepo(t)

	t.Run("LS_COLORS from the environment", func(t *testing.T) {
		t.Setenv("LS_COLORS", "rs=0:di=01;34:*.md=33")

		out, err := execute(t, "list", dir, "--color", "always")
		require.NoError(t, err)
		assert.Contains(t, out, "\x1b[33mREADME.md\x1b[0m\n")
		assert.Contains(t, out, "\x1b[01;34msrc/\x1b[0m")
		assert.Contains(t, out, "model.pkl.dvc\n")
	})

	t.Run("config overrides the environment", func(t *testing.T) {
		t.Setenv("LS_COLORS", "*.md=33")
		t.Setenv("REPOLIST_COLORS__LS_COLORS", "*.md=35")

		out, err := execute(t, "list", dir, "README.md", "--color", "always")
		require.NoError(t, err)
		assert.Equal(t, "\x1b[35mREADME.md\x1b[0m\n", out)
	})

	t.Run("never disables colors", func(t *testing.T) {
		t.Setenv("LS_COLORS", "*.md=33")
		t.Setenv("REPOLIST_COLORS__MODE", "always")

		out, err := execute(t, "list", dir, "README.md", "--color", "never")
		require.NoError(t, err)
		assert.Equal(t, "README.md\n", out)
	})

	t.Run("colored table keeps alignment", func(t *testing.T) {
		t.Setenv("LS_COLORS", "")

		out, err := execute(t, "list", dir, "--size", "--color", "always")
		require.NoError(t, err)
		assert.Contains(t, out, "\x1b[01;34mdata/\x1b[0m")
		assert.Contains(t, out, "2.0 KiB  model.pkl")
	})
}

func TestListCommandErrors(t *testing.T) {
	testutil.IsolateEnv(t)
	dir := newRepo(t)

	tests := []struct {
		name  string
		args  []string
		code  errors.ErrorCode
		inner errors.ErrorCode
	}{
		{
			name:  "missing repository",
			args:  []string{"list", filepath.Join(dir, "absent")},
			inner: errors.ErrLocationNotFound,
		},
		{
			name:  "missing path",
			args:  []string{"list", dir, "nope"},
			inner: errors.ErrPathNotFound,
		},
		{
			name:  "revision",
			args:  []string{"list", dir, "--rev", "HEAD~1"},
			inner: errors.ErrRevisionUnsupported,
		},
		{
			name:  "bad remote config",
			args:  []string{"list", dir, "--remote-config", "novalue"},
			inner: errors.ErrInvalidInput,
		},
		{
			name:  "bad color mode",
			args:  []string{"list", dir, "--color", "sometimes"},
			inner: errors.ErrConfigParse,
		},
		{
			name:  "missing config file",
			args:  []string{"list", dir, "--config", filepath.Join(dir, "absent.toml")},
			inner: errors.ErrConfigLoad,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Empty(t, out)
			assert.Equal(t, errors.ErrListFailed, errors.GetErrorCode(err))
			assert.Contains(t, err.Error(), "failed to list '"+tt.args[1]+"'")

			var listErr *errors.ListError
			require.ErrorAs(t, err, &listErr)
			assert.Equal(t, tt.inner, errors.GetErrorCode(listErr.Wrapped))
		})
	}
}

func TestListCommandRemoteSettings(t *testing.T) {
	testutil.IsolateEnv(t)
	dir := newRepo(t)

	out, err := execute(t, "list", dir, "src",
		"--remote", "storage",
		"--remote-config", "url=s3://bucket/path",
		"--remote-config", "region=eu-west-1")
	require.NoError(t, err)
	assert.Equal(t, "main.py\n", out)
}

func TestListCommandArgs(t *testing.T) {
	testutil.IsolateEnv(t)

	_, err := execute(t, "list")
	require.Error(t, err)

	_, err = execute(t, "list", "a", "b", "c")
	require.Error(t, err)
}

func TestListRemoteConfigRepeatedFlag(t *testing.T) {
	testutil.IsolateEnv(t)

	cmd := newListCmd()
	require.NoError(t, cmd.ParseFlags([]string{
		"--remote", "storage",
		"--remote-config", "url=s3://bucket/path",
		"--remote-config", "region=eu-west-1",
	}))

	var f listFlags
	f.remote, _ = cmd.Flags().GetString("remote")
	f.remoteConfig, _ = cmd.Flags().GetStringArray("remote-config")

	overrides, err := f.overrides(cmd)
	require.NoError(t, err)
	assert.Equal(t, "storage", overrides["remote.name"])
	assert.Equal(t, map[string]interface{}{
		"url":    "s3://bucket/path",
		"region": "eu-west-1",
	}, overrides["remote.options"])

	usage := cmd.Flags().Lookup("remote-config").Usage
	assert.Contains(t, usage, "--remote-config a=1 --remote-config b=2")
}
