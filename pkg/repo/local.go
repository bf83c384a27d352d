package repo

import (
	"bytes"
	"context"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	gitignore "github.com/denormal/go-gitignore"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/arthur-debert/repolist/pkg/errors"
	"github.com/arthur-debert/repolist/pkg/logging"
	"github.com/arthur-debert/repolist/pkg/types"
)

// IgnoreFile is read from the repository root
const IgnoreFile = ".dvcignore"

// hiddenDirs are never listed
var hiddenDirs = map[string]bool{
	".git": true,
	".dvc": true,
}

// LocalLister lists a repository stored on a filesystem
type LocalLister struct {
	fs     afero.Fs
	ignore []string
	logger zerolog.Logger
}

// LocalOption configures a LocalLister
type LocalOption func(*LocalLister)

// WithIgnorePatterns adds gitignore-style patterns on top of .dvcignore
func WithIgnorePatterns(patterns ...string) LocalOption {
	return func(l *LocalLister) {
		l.ignore = append(l.ignore, patterns...)
	}
}

// NewLocalLister creates a lister over fs. A nil fs uses the OS filesystem.
func NewLocalLister(fs afero.Fs, opts ...LocalOption) *LocalLister {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	l := &LocalLister{
		fs:     fs,
		logger: logging.GetLogger("repo.local"),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// listing holds the state of one List call
type listing struct {
	*LocalLister
	ctx     context.Context
	root    string
	matcher gitignore.GitIgnore
	opts    Options
}

// List implements Lister
func (l *LocalLister) List(ctx context.Context, opts Options) ([]types.Entry, error) {
	if opts.Rev != "" {
		return nil, errors.Newf(errors.ErrRevisionUnsupported, "cannot list revision %q of a local workspace", opts.Rev).
			WithDetail("rev", opts.Rev)
	}
	if opts.Remote != "" || len(opts.RemoteConfig) > 0 {
		l.logger.Debug().
			Str("remote", opts.Remote).
			Int("remoteOptions", len(opts.RemoteConfig)).
			Msg("Remote settings are not used by local listings")
	}

	root := opts.URL
	if root == "" {
		root = "."
	}
	info, err := l.fs.Stat(root)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrLocationNotFound, "repository '%s' not found", root).
			WithDetail("url", root)
	}
	if !info.IsDir() {
		return nil, errors.Newf(errors.ErrLocationNotFound, "repository '%s' is not a directory", root).
			WithDetail("url", root)
	}

	if opts.Config != "" {
		if _, err := l.fs.Stat(opts.Config); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "config file '%s' not found", opts.Config)
		}
	}

	ls := &listing{LocalLister: l, ctx: ctx, root: root, opts: opts}
	if err := ls.loadIgnore(); err != nil {
		return nil, err
	}

	rel := cleanRel(opts.Path)
	target := filepath.Join(root, filepath.FromSlash(rel))
	info, err = l.fs.Stat(target)
	switch {
	case err == nil && ls.ignored(rel, info.IsDir()):
		return nil, errors.Newf(errors.ErrPathNotFound, "path '%s' is ignored", opts.Path).
			WithDetail("path", opts.Path)
	case err == nil && info.IsDir():
		return ls.listDir(rel)
	case err == nil:
		entry := ls.fileEntry(path.Base(rel), info)
		entry.IsOut = ls.isTrackedOutput(rel)
		if opts.DvcOnly && !entry.IsOut {
			return []types.Entry{}, nil
		}
		return []types.Entry{entry}, nil
	}

	// Not in the workspace; it may still be a declared output
	if out, ok := ls.declaredOutput(rel); ok {
		return []types.Entry{outputEntry(path.Base(rel), out)}, nil
	}
	return nil, errors.Newf(errors.ErrPathNotFound, "path '%s' does not exist in '%s'", opts.Path, root).
		WithDetail("url", root).
		WithDetail("path", opts.Path)
}

// cleanRel normalizes a user supplied path inside the repository
func cleanRel(p string) string {
	p = path.Clean("/" + filepath.ToSlash(p))
	return strings.TrimPrefix(p, "/")
}

func (ls *listing) loadIgnore() error {
	var buf bytes.Buffer

	data, err := afero.ReadFile(ls.fs, filepath.Join(ls.root, IgnoreFile))
	switch {
	case err == nil:
		buf.Write(data)
		buf.WriteString("\n")
	case !os.IsNotExist(err):
		return errors.Wrapf(err, errors.ErrListFailed, "failed to read %s", IgnoreFile)
	}

	for _, p := range ls.ignore {
		buf.WriteString(p)
		buf.WriteString("\n")
	}
	if buf.Len() == 0 {
		return nil
	}

	ls.matcher = gitignore.New(&buf, ls.root, func(e gitignore.Error) bool {
		ls.logger.Warn().Str("error", e.Error()).Msg("Skipping invalid ignore pattern")
		return true
	})
	return nil
}

// ignored reports whether rel, relative to the repository root, is ignored
func (ls *listing) ignored(rel string, isDir bool) bool {
	if ls.matcher == nil || rel == "" {
		return false
	}
	m := ls.matcher.Relative(filepath.FromSlash(rel), isDir)
	return m != nil && m.Ignore()
}

// node is a child of a directory being listed
type node struct {
	name string
	info os.FileInfo
	out  *stubOut
}

// children returns the visible children of dir (relative to root), merged
// with the outputs declared by the stubs inside it, sorted by name.
func (ls *listing) children(rel string) ([]node, error) {
	if err := ls.ctx.Err(); err != nil {
		return nil, err
	}

	dir := filepath.Join(ls.root, filepath.FromSlash(rel))
	infos, err := afero.ReadDir(ls.fs, dir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrListFailed, "failed to read '%s'", dir)
	}

	byName := make(map[string]*node, len(infos))
	var outs []stubOut
	for _, info := range infos {
		name := info.Name()
		childRel := path.Join(rel, name)
		if info.IsDir() && hiddenDirs[name] {
			continue
		}
		if ls.ignored(childRel, info.IsDir()) {
			continue
		}
		byName[name] = &node{name: name, info: info}

		if !info.IsDir() && isStubName(name) {
			stubOuts, err := readStub(ls.fs, filepath.Join(dir, name))
			if err != nil {
				ls.logger.Warn().Err(err).Str("stub", childRel).Msg("Skipping unreadable stub")
				continue
			}
			outs = append(outs, stubOuts...)
		}
	}

	for i := range outs {
		out := outs[i]
		if ls.ignored(path.Join(rel, out.Path), out.isDir()) {
			continue
		}
		if n, ok := byName[out.Path]; ok {
			n.out = &out
			continue
		}
		byName[out.Path] = &node{name: out.Path, out: &out}
	}

	nodes := make([]node, 0, len(byName))
	for _, n := range byName {
		nodes = append(nodes, *n)
	}
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].name < nodes[j].name })
	return nodes, nil
}

func (n node) isDir() bool {
	if n.info != nil {
		return n.info.IsDir()
	}
	return n.out.isDir()
}

// listDir lists the directory rel, relative to the repository root
func (ls *listing) listDir(rel string) ([]types.Entry, error) {
	entries := []types.Entry{}
	if err := ls.walk(rel, "", false, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// walk appends the entries of dir rel; prefix is the display path of the
// directory relative to the listed path. tracked is set below directory
// outputs, whose content counts as output too.
func (ls *listing) walk(rel, prefix string, tracked bool, entries *[]types.Entry) error {
	nodes, err := ls.children(rel)
	if err != nil {
		return err
	}

	for _, n := range nodes {
		display := path.Join(prefix, n.name)
		childRel := path.Join(rel, n.name)

		if ls.opts.Recursive && n.info != nil && n.info.IsDir() {
			if err := ls.walk(childRel, display, tracked || n.out != nil, entries); err != nil {
				return err
			}
			continue
		}

		var entry types.Entry
		switch {
		case n.info == nil:
			entry = outputEntry(display, *n.out)
		case n.info.IsDir():
			entry = types.Entry{Path: display, IsDir: true, IsOut: tracked || n.out != nil}
		default:
			entry = ls.fileEntry(display, n.info)
			entry.IsOut = tracked || n.out != nil
		}

		if ls.opts.DvcOnly && !entry.IsOut {
			if !entry.IsDir || n.info == nil {
				continue
			}
			has, err := ls.hasOutputs(childRel)
			if err != nil {
				return err
			}
			if !has {
				continue
			}
		}
		*entries = append(*entries, entry)
	}
	return nil
}

// hasOutputs reports whether dir rel contains an output at any depth
func (ls *listing) hasOutputs(rel string) (bool, error) {
	nodes, err := ls.children(rel)
	if err != nil {
		return false, err
	}
	for _, n := range nodes {
		if n.out != nil {
			return true, nil
		}
		if n.info != nil && n.info.IsDir() {
			has, err := ls.hasOutputs(path.Join(rel, n.name))
			if err != nil || has {
				return has, err
			}
		}
	}
	return false, nil
}

func (ls *listing) fileEntry(display string, info os.FileInfo) types.Entry {
	return types.Entry{
		Path:   display,
		IsExec: info.Mode().IsRegular() && info.Mode()&0111 != 0,
		Size:   types.SizeOf(info.Size()),
	}
}

// declaredOutput finds the stub output for rel, when it has one
func (ls *listing) declaredOutput(rel string) (stubOut, bool) {
	if rel == "" {
		return stubOut{}, false
	}
	dir, name := path.Split(rel)
	dir = strings.TrimSuffix(dir, "/")

	nodes, err := ls.children(dir)
	if err != nil {
		return stubOut{}, false
	}
	for _, n := range nodes {
		if n.name == name && n.out != nil {
			return *n.out, true
		}
	}
	return stubOut{}, false
}

func (ls *listing) isTrackedOutput(rel string) bool {
	_, ok := ls.declaredOutput(rel)
	return ok
}

// outputEntry builds the entry of an output missing from the workspace
func outputEntry(display string, out stubOut) types.Entry {
	entry := types.Entry{
		Path:   display,
		IsDir:  out.isDir(),
		IsOut:  true,
		IsExec: out.IsExec,
	}
	if !entry.IsDir {
		entry.Size = out.Size
	}
	return entry
}
