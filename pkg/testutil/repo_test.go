package testutil

import (
	"os"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestMemoryRepo(t *testing.T) {
	r := NewMemoryRepo(t).
		AddFile("src/main.py", "print('hi')\n").
		AddExecutable("run.sh", "#!/bin/sh\n").
		AddDir("empty").
		AddIgnore("*.tmp", "build/").
		AddConfig("[list]\nsize = true\n")

	content, err := afero.ReadFile(r.FS, "/repo/src/main.py")
	require.NoError(t, err)
	assert.Equal(t, "print('hi')\n", string(content))

	info, err := r.FS.Stat("/repo/run.sh")
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&0111)

	info, err = r.FS.Stat("/repo/empty")
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	ignore, err := afero.ReadFile(r.FS, "/repo/.dvcignore")
	require.NoError(t, err)
	assert.Equal(t, "*.tmp\nbuild/\n", string(ignore))

	exists, err := afero.Exists(r.FS, "/repo/.repolist.toml")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestRepoOutputs(t *testing.T) {
	r := NewMemoryRepo(t).
		AddOutput("models/model.pkl", 10).
		AddDirOutput("data", 4096, 3)

	var stub struct {
		Outs []map[string]interface{} `yaml:"outs"`
	}

	raw, err := afero.ReadFile(r.FS, "/repo/models/model.pkl.dvc")
	require.NoError(t, err)
	require.NoError(t, yaml.Unmarshal(raw, &stub))
	require.Len(t, stub.Outs, 1)
	assert.Equal(t, "model.pkl", stub.Outs[0]["path"])
	assert.Equal(t, 10, stub.Outs[0]["size"])
	assert.Len(t, stub.Outs[0]["md5"], 32)
	assert.NotContains(t, stub.Outs[0], "nfiles")

	raw, err = afero.ReadFile(r.FS, "/repo/data.dvc")
	require.NoError(t, err)
	require.NoError(t, yaml.Unmarshal(raw, &stub))
	assert.Equal(t, "data", stub.Outs[0]["path"])
	assert.Equal(t, 3, stub.Outs[0]["nfiles"])
	assert.Contains(t, stub.Outs[0]["md5"], ".dir")
}

func TestTempRepo(t *testing.T) {
	r := NewTempRepo(t).AddFile("a/b.txt", "x")
	exists, err := afero.Exists(afero.NewOsFs(), r.Path("a/b.txt"))
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestIsolateEnv(t *testing.T) {
	t.Setenv("LS_COLORS", "di=31")
	home := IsolateEnv(t)
	assert.NotEmpty(t, home)
	assert.Empty(t, os.Getenv("LS_COLORS"))
	assert.Equal(t, home, os.Getenv("XDG_CONFIG_HOME"))
}

func TestGetTestChecksum(t *testing.T) {
	assert.Equal(t, GetTestChecksum("a"), GetTestChecksum("a"))
	assert.NotEqual(t, GetTestChecksum("a"), GetTestChecksum("b"))
	assert.Len(t, testMD5("a"), 32)
}
