// Package repo produces the entries of a repository listing.
//
// Lister is the producer contract used by the list command. LocalLister is
// its implementation for repositories checked out on a local (or in-memory)
// filesystem: it lists workspace files together with data outputs declared
// by .dvc stub files, honoring .dvcignore.
package repo
