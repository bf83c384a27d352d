package render

import (
	"strings"

	"github.com/arthur-debert/repolist/pkg/errors"
	"github.com/arthur-debert/repolist/pkg/types"
)

// Formatter produces the display string for an entry.
// *lscolors.Classifier satisfies it.
type Formatter interface {
	Classify(entry types.Entry) string
}

// FormatterFunc adapts a function to Formatter
type FormatterFunc func(entry types.Entry) string

// Classify implements Formatter
func (f FormatterFunc) Classify(entry types.Entry) string {
	return f(entry)
}

// PlainFormatter displays the path with the directory suffix and no styling
var PlainFormatter Formatter = FormatterFunc(func(entry types.Entry) string {
	return entry.DisplayPath()
})

// Sink receives rendered output
type Sink interface {
	// Write receives the whole plain-mode block at once
	Write(text string) error
	// Table receives every table-mode row at once
	Table(rows [][]string) error
}

// Row is a rendered table-mode row
type Row struct {
	Size string
	Name string
}

// FormatEntry renders the table-mode row of a single entry
func FormatEntry(entry types.Entry, f Formatter) Row {
	return Row{
		Size: FormatSize(entry.Size),
		Name: f.Classify(entry),
	}
}

// Rows renders table-mode rows in entry order
func Rows(entries []types.Entry, f Formatter) []Row {
	rows := make([]Row, len(entries))
	for i, entry := range entries {
		rows[i] = FormatEntry(entry, f)
	}
	return rows
}

// Plain renders the plain-mode block
func Plain(entries []types.Entry, f Formatter) string {
	lines := make([]string, len(entries))
	for i, entry := range entries {
		lines[i] = f.Classify(entry)
	}
	return strings.Join(lines, "\n")
}

// ShowEntries renders entries to sink. withSize selects table mode; without
// it the entries are written as one newline-joined block. A nil formatter
// uses PlainFormatter.
func ShowEntries(sink Sink, entries []types.Entry, f Formatter, withSize bool) error {
	if f == nil {
		f = PlainFormatter
	}

	if withSize {
		if len(entries) == 0 {
			return nil
		}
		rows := Rows(entries, f)
		data := make([][]string, len(rows))
		for i, r := range rows {
			data[i] = []string{r.Size, r.Name}
		}
		if err := sink.Table(data); err != nil {
			return errors.Wrap(err, errors.ErrOutput, "failed to write table")
		}
		return nil
	}

	if err := sink.Write(Plain(entries, f)); err != nil {
		return errors.Wrap(err, errors.ErrOutput, "failed to write entries")
	}
	return nil
}
