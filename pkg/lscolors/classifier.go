package lscolors

import (
	"os"
	"strings"

	"github.com/bmatcuk/doublestar"
	"github.com/muesli/termenv"

	"github.com/arthur-debert/repolist/pkg/logging"
	"github.com/arthur-debert/repolist/pkg/types"
)

// EnvVar is the environment variable holding the color configuration
const EnvVar = "LS_COLORS"

// DefaultColors is used when no configuration is given
const DefaultColors = "rs=0:di=01;34:ex=01;32"

// Type codes understood by the classifier
const (
	CodeReset     = "rs"
	CodeDirectory = "di"
	CodeFile      = "fi"
	CodeExec      = "ex"
	CodeOutput    = "out"
)

// typeCodes are the keys that configure entry-type defaults instead of
// patterns. Codes other than the ones above are accepted so a full LS_COLORS
// value from the environment does not turn them into patterns.
var typeCodes = map[string]bool{
	"no": true, "fi": true, "rs": true, "di": true, "ln": true, "mh": true,
	"pi": true, "so": true, "do": true, "bd": true, "cd": true, "or": true,
	"mi": true, "su": true, "sg": true, "ca": true, "tw": true, "ow": true,
	"st": true, "ex": true, "lc": true, "rc": true, "ec": true, "cl": true,
	"out": true,
}

// Rule maps a glob pattern to a style
type Rule struct {
	Pattern string
	Style   string
}

// Classifier resolves entry styles. It is immutable once built and safe for
// concurrent use.
type Classifier struct {
	rules   []Rule
	codes   map[string]string
	color   bool
	skipped int
}

// Option configures a Classifier
type Option func(*Classifier)

// WithColor enables or disables escape sequences in Classify
func WithColor(enabled bool) Option {
	return func(c *Classifier) {
		c.color = enabled
	}
}

// New builds a classifier from a configuration string. An empty string, or
// one where every entry is malformed, selects DefaultColors.
func New(raw string, opts ...Option) *Classifier {
	c := &Classifier{
		codes: make(map[string]string),
		color: true,
	}
	for _, opt := range opts {
		opt(c)
	}

	if strings.TrimSpace(raw) == "" {
		raw = DefaultColors
	}
	c.load(raw)
	if len(c.rules) == 0 && len(c.codes) == 0 && c.skipped > 0 {
		c.load(DefaultColors)
	}

	if c.skipped > 0 {
		logger := logging.GetLogger("lscolors")
		logger.Debug().
			Int("skipped", c.skipped).
			Int("rules", len(c.rules)).
			Msg("Ignored malformed color entries")
	}
	return c
}

// FromEnv builds a classifier from the LS_COLORS environment variable
func FromEnv(opts ...Option) *Classifier {
	return New(os.Getenv(EnvVar), opts...)
}

func (c *Classifier) load(raw string) {
	for _, item := range strings.Split(raw, ":") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}

		key, value, ok := strings.Cut(item, "=")
		if !ok || key == "" {
			c.skipped++
			continue
		}

		style, err := ResolveStyle(value)
		if err != nil {
			c.skipped++
			continue
		}

		if typeCodes[key] {
			c.codes[key] = style
			continue
		}

		if _, err := doublestar.Match(key, key); err != nil {
			c.skipped++
			continue
		}
		c.rules = append(c.rules, Rule{Pattern: key, Style: style})
	}
}

// Rules returns a copy of the pattern rules in evaluation order
func (c *Classifier) Rules() []Rule {
	out := make([]Rule, len(c.rules))
	copy(out, c.rules)
	return out
}

// Skipped returns how many configuration entries were ignored as malformed
func (c *Classifier) Skipped() int {
	return c.skipped
}

// Colored reports whether Classify emits escape sequences
func (c *Classifier) Colored() bool {
	return c.color
}

// Style returns the SGR parameters for the entry, or "" when the entry is
// not styled.
func (c *Classifier) Style(entry types.Entry) string {
	if style := c.match(entry.BaseName()); style != "" {
		return style
	}
	return c.typeStyle(entry)
}

// match scans every rule and keeps the last one matching name
func (c *Classifier) match(name string) string {
	if name == "" {
		return ""
	}

	var style string
	for _, r := range c.rules {
		if ok, err := doublestar.Match(r.Pattern, name); err == nil && ok {
			style = r.Style
		}
	}
	return style
}

func (c *Classifier) typeStyle(entry types.Entry) string {
	if entry.IsOut {
		if style := c.codes[CodeOutput]; style != "" {
			return style
		}
	}
	switch {
	case entry.IsDir:
		return c.codes[CodeDirectory]
	case entry.IsExec && c.codes[CodeExec] != "":
		return c.codes[CodeExec]
	default:
		return c.codes[CodeFile]
	}
}

// Classify returns the display string of the entry: its path, a trailing
// separator for directories, wrapped in the resolved style.
func (c *Classifier) Classify(entry types.Entry) string {
	text := entry.DisplayPath()
	if !c.color {
		return text
	}

	style := c.Style(entry)
	if style == "" {
		return text
	}
	return termenv.CSI + style + "m" + text + termenv.CSI + c.reset() + "m"
}

func (c *Classifier) reset() string {
	if rs := c.codes[CodeReset]; rs != "" {
		return rs
	}
	return termenv.ResetSeq
}
