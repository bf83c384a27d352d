// Package render turns a sequence of entries into listing output.
//
// Two strategies exist and are chosen by the include-size flag alone:
//
//   - plain mode joins every formatted entry with newlines and hands the
//     block to the sink in a single write. No per-row work beyond formatting
//     happens, which keeps very large listings cheap.
//   - table mode builds (size, name) rows and hands them to the sink's table
//     writer, which aligns the columns.
//
// Entry order is never changed.
package render
