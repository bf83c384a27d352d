package render

import (
	"github.com/dustin/go-humanize"
)

// FormatSize renders a byte count with binary prefixes ("0 B", "1.5 KiB").
// An unknown size renders as an empty string so it stays distinct from zero.
func FormatSize(size *int64) string {
	if size == nil || *size < 0 {
		return ""
	}
	return humanize.IBytes(uint64(*size))
}
