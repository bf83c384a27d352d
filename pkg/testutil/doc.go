// Package testutil provides fixtures for testing repolist components.
//
// Key components:
//   - TestRepo: declarative repository builder over an afero filesystem,
//     either in memory or in a temp directory
//   - IsolateEnv: points XDG directories at temp dirs and clears color
//     related variables so tests never read the developer's setup
//
// All test data should be defined inline, not in external files.
package testutil
