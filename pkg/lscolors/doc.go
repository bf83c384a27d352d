// Package lscolors classifies listing entries into display styles using the
// LS_COLORS convention.
//
// A configuration string is a colon separated list of key=style pairs:
//
//	rs=0:di=01;34:ex=01;32:*.csv=33:notes.txt=35
//
// Two-letter keys known to ls (di, fi, ex, rs, ...) and the "out" key set the
// per-type defaults. Every other key is a glob pattern matched against the
// entry's base name. Patterns are scanned in order and the last match wins,
// so later entries override earlier ones.
//
// Styles are raw SGR parameters ("01;34") or symbolic names combined with
// "+" or "," ("bold+blue", "underline,#ff8800", "on-red").
//
// Malformed pairs are skipped. A broken configuration degrades to the
// defaults instead of failing the listing.
package lscolors
