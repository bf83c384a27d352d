package testutil

import (
	"os"
	"path"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// MemoryRepoRoot is the root of repositories built by NewMemoryRepo
const MemoryRepoRoot = "/repo"

// TestRepo builds a repository fixture. Names are slash separated and
// relative to Root.
type TestRepo struct {
	t    *testing.T
	FS   afero.Fs
	Root string
}

// NewMemoryRepo creates an empty repository at MemoryRepoRoot in memory
func NewMemoryRepo(t *testing.T) *TestRepo {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll(MemoryRepoRoot, 0755))
	return &TestRepo{t: t, FS: fs, Root: MemoryRepoRoot}
}

// NewTempRepo creates an empty repository in a temp directory on disk
func NewTempRepo(t *testing.T) *TestRepo {
	t.Helper()
	return &TestRepo{t: t, FS: afero.NewOsFs(), Root: t.TempDir()}
}

// Path returns the filesystem path of name
func (r *TestRepo) Path(name string) string {
	return filepath.Join(r.Root, filepath.FromSlash(name))
}

// AddFile writes a regular file, creating parent directories
func (r *TestRepo) AddFile(name, content string) *TestRepo {
	r.t.Helper()
	return r.write(name, content, 0644)
}

// AddExecutable writes a file with the executable bits set
func (r *TestRepo) AddExecutable(name, content string) *TestRepo {
	r.t.Helper()
	return r.write(name, content, 0755)
}

// AddDir creates an empty directory
func (r *TestRepo) AddDir(name string) *TestRepo {
	r.t.Helper()
	require.NoError(r.t, r.FS.MkdirAll(r.Path(name), 0755))
	return r
}

// AddOutput declares a file output of the given size in a stub next to it.
// The output itself is not written; pair it with AddFile to simulate a
// pulled workspace.
func (r *TestRepo) AddOutput(name string, size int64) *TestRepo {
	r.t.Helper()
	return r.addStub(name, stubOut{MD5: testMD5(name), Size: size})
}

// AddDirOutput declares a directory output holding nfiles files
func (r *TestRepo) AddDirOutput(name string, size int64, nfiles int) *TestRepo {
	r.t.Helper()
	return r.addStub(name, stubOut{MD5: testMD5(name) + ".dir", Size: size, NFiles: nfiles})
}

// AddIgnore writes the repository .dvcignore
func (r *TestRepo) AddIgnore(patterns ...string) *TestRepo {
	r.t.Helper()
	content := ""
	for _, p := range patterns {
		content += p + "\n"
	}
	return r.AddFile(".dvcignore", content)
}

// AddConfig writes the repository .repolist.toml
func (r *TestRepo) AddConfig(content string) *TestRepo {
	r.t.Helper()
	return r.AddFile(".repolist.toml", content)
}

type stubOut struct {
	MD5    string `yaml:"md5"`
	Size   int64  `yaml:"size"`
	NFiles int    `yaml:"nfiles,omitempty"`
	Path   string `yaml:"path"`
}

func (r *TestRepo) addStub(name string, out stubOut) *TestRepo {
	r.t.Helper()
	out.Path = path.Base(name)
	data, err := yaml.Marshal(map[string][]stubOut{"outs": {out}})
	require.NoError(r.t, err)
	return r.write(name+".dvc", string(data), 0644)
}

func (r *TestRepo) write(name, content string, perm os.FileMode) *TestRepo {
	r.t.Helper()
	p := r.Path(name)
	require.NoError(r.t, r.FS.MkdirAll(filepath.Dir(p), 0755))
	require.NoError(r.t, afero.WriteFile(r.FS, p, []byte(content), perm))
	return r
}
