package testutil

import "testing"

// IsolateEnv points user config and state directories at fresh temp dirs
// and clears LS_COLORS, NO_COLOR and the repolist overrides in use by the
// test suite. It returns the config home.
func IsolateEnv(t *testing.T) string {
	t.Helper()

	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	for _, name := range []string{
		"LS_COLORS",
		"NO_COLOR",
		"REPOLIST_COLORS__MODE",
		"REPOLIST_COLORS__LS_COLORS",
		"REPOLIST_LIST__SIZE",
		"REPOLIST_LIST__RECURSIVE",
		"REPOLIST_LIST__DVC_ONLY",
	} {
		t.Setenv(name, "")
	}
	return configHome
}
