// Package ui provides the output sinks used by repolist: a line-oriented
// text writer, an aligned table writer and a JSON writer.
package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pterm/pterm"
)

// ColumnSeparator separates table columns
const ColumnSeparator = "  "

// Console writes rendered output to a single writer. It borrows the writer;
// closing it is the caller's job.
type Console struct {
	out io.Writer
}

// NewConsole creates a console writing to w
func NewConsole(w io.Writer) *Console {
	return &Console{out: w}
}

// Write writes a block of text followed by a newline. An empty block writes
// nothing.
func (c *Console) Write(text string) error {
	if text == "" {
		return nil
	}
	_, err := io.WriteString(c.out, text+"\n")
	return err
}

// Table writes rows with aligned columns. Cells may carry escape sequences;
// alignment uses their visible width.
func (c *Console) Table(rows [][]string) error {
	if len(rows) == 0 {
		return nil
	}

	out, err := pterm.DefaultTable.
		WithData(pterm.TableData(rows)).
		WithSeparator(ColumnSeparator).
		WithStyle(pterm.NewStyle()).
		WithSeparatorStyle(pterm.NewStyle()).
		Srender()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	return c.Write(strings.Join(lines, "\n"))
}

// WriteJSON writes v as indented JSON
func (c *Console) WriteJSON(v interface{}) error {
	encoder := json.NewEncoder(c.out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// Error writes an error message in the error style
func (c *Console) Error(err error) error {
	_, werr := fmt.Fprintln(c.out, ErrorStyle.Render(fmt.Sprintf("Error: %v", err)))
	return werr
}
