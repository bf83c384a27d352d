package repo

import (
	"context"

	"github.com/arthur-debert/repolist/pkg/types"
)

// Options describes one listing request
type Options struct {
	// URL is the location of the repository
	URL string
	// Path is the directory or file inside the repository to list
	Path string
	// Rev is the revision to list, empty for the workspace
	Rev string
	// Recursive lists files at every depth
	Recursive bool
	// DvcOnly keeps data outputs only
	DvcOnly bool
	// Config is a config file merged with the repository config
	Config string
	// Remote is the default remote name
	Remote string
	// RemoteConfig holds options merged into the remote's config
	RemoteConfig map[string]string
}

// Lister lists repository entries
type Lister interface {
	List(ctx context.Context, opts Options) ([]types.Entry, error)
}

// ListerFunc adapts a function to Lister
type ListerFunc func(ctx context.Context, opts Options) ([]types.Entry, error)

// List implements Lister
func (f ListerFunc) List(ctx context.Context, opts Options) ([]types.Entry, error) {
	return f(ctx, opts)
}
