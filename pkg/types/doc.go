// Package types defines the core data types shared by repolist's producer,
// classifier and renderer. The central type is Entry, one file or directory
// item returned by a repository listing.
package types
