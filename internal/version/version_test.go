package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	origVersion, origCommit, origDate := Version, Commit, Date
	t.Cleanup(func() { Version, Commit, Date = origVersion, origCommit, origDate })

	assert.Equal(t, "dev", String())

	Version, Commit, Date = "1.2.0", "abc1234", "2026-10-01"
	assert.Equal(t, "1.2.0 (abc1234, 2026-10-01)", String())
}
