package repo

import (
	"path"
	"strings"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// StubExt is the extension of data output stub files
const StubExt = ".dvc"

// stubFile is the part of a .dvc stub the lister reads
type stubFile struct {
	Outs []stubOut `yaml:"outs"`
}

type stubOut struct {
	Path   string `yaml:"path"`
	MD5    string `yaml:"md5"`
	Size   *int64 `yaml:"size"`
	NFiles int    `yaml:"nfiles"`
	IsExec bool   `yaml:"isexec"`
}

// isDir reports whether the output is a directory. Directory outputs carry
// a ".dir" hash or a file count.
func (o stubOut) isDir() bool {
	return strings.HasSuffix(o.MD5, ".dir") || o.NFiles > 0
}

// isStubName reports whether name looks like a stub file
func isStubName(name string) bool {
	return strings.HasSuffix(name, StubExt) && name != StubExt
}

// readStub parses the stub at p. Only outputs living directly in the stub's
// directory are kept.
func readStub(fs afero.Fs, p string) ([]stubOut, error) {
	data, err := afero.ReadFile(fs, p)
	if err != nil {
		return nil, err
	}

	var stub stubFile
	if err := yaml.Unmarshal(data, &stub); err != nil {
		return nil, err
	}

	outs := make([]stubOut, 0, len(stub.Outs))
	for _, out := range stub.Outs {
		clean := path.Clean(strings.ReplaceAll(out.Path, "\\", "/"))
		if out.Path == "" || clean == "." || clean == ".." || strings.Contains(clean, "/") {
			continue
		}
		out.Path = clean
		outs = append(outs, out)
	}
	return outs, nil
}
