package ui_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/arthur-debert/repolist/pkg/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsoleWrite(t *testing.T) {
	t.Run("block gets one trailing newline", func(t *testing.T) {
		buf := &bytes.Buffer{}
		require.NoError(t, ui.NewConsole(buf).Write("b\na\nc"))
		assert.Equal(t, "b\na\nc\n", buf.String())
	})

	t.Run("empty block writes nothing", func(t *testing.T) {
		buf := &bytes.Buffer{}
		require.NoError(t, ui.NewConsole(buf).Write(""))
		assert.Empty(t, buf.String())
	})
}

func TestConsoleTable(t *testing.T) {
	buf := &bytes.Buffer{}
	c := ui.NewConsole(buf)

	err := c.Table([][]string{
		{"", "dir1/"},
		{"2.0 KiB", "a.csv"},
		{"512 B", "\x1b[01;34mlonger-name/\x1b[0m"},
	})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)

	// The name column starts at the same offset on every row
	offset := strings.Index(lines[1], "a.csv")
	require.Positive(t, offset)
	assert.Equal(t, offset, strings.Index(lines[0], "dir1/"))
	assert.Equal(t, offset, strings.Index(lines[2], "\x1b[01;34m"))
	assert.True(t, strings.HasPrefix(lines[1], "2.0 KiB"+ui.ColumnSeparator))

	for _, line := range lines {
		assert.Equal(t, strings.TrimRight(line, " "), line, "no trailing padding")
	}
}

func TestConsoleTableEmpty(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, ui.NewConsole(buf).Table(nil))
	assert.Empty(t, buf.String())
}

func TestConsoleWriteJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, ui.NewConsole(buf).WriteJSON([]map[string]interface{}{{"path": "a.csv"}}))
	assert.JSONEq(t, `[{"path":"a.csv"}]`, buf.String())
	assert.Contains(t, buf.String(), "\n  ")
}

func TestConsoleError(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, ui.NewConsole(buf).Error(errors.New("boom")))
	assert.Contains(t, buf.String(), "Error: boom")
	assert.True(t, strings.HasSuffix(buf.String(), "\n"))
	assert.Equal(t, ui.ErrorStyle.Render("Error: boom")+"\n", buf.String())
}

func TestConsoleTableColoredCells(t *testing.T) {
	buf := &bytes.Buffer{}
	err := ui.NewConsole(buf).Table([][]string{
		{"", "\x1b[01;34mdir1/\x1b[0m"},
		{"2.0 KiB", "a.csv"},
		{"1023 B", "\x1b[35mx\x1b[0m"},
	})
	require.NoError(t, err)

	// Escape sequences take no columns: the size column pads to the
	// widest visible size and every name starts right after it.
	assert.Equal(t,
		"         \x1b[01;34mdir1/\x1b[0m\n"+
			"2.0 KiB  a.csv\n"+
			"1023 B   \x1b[35mx\x1b[0m\n",
		buf.String())
}
