package lscolors

import (
	_ "embed"
	"fmt"
	"regexp"
	"strings"

	"github.com/muesli/termenv"
	"gopkg.in/yaml.v3"
)

// paletteConfig is the shape of styles.yaml
type paletteConfig struct {
	Colors map[string]int `yaml:"colors"`
}

//go:embed styles.yaml
var embeddedPalette []byte

// palette maps symbolic color names to ANSI palette indexes
var palette map[string]termenv.ANSIColor

var attributes = map[string]string{
	"bold":      termenv.BoldSeq,
	"faint":     termenv.FaintSeq,
	"dim":       termenv.FaintSeq,
	"italic":    termenv.ItalicSeq,
	"underline": termenv.UnderlineSeq,
	"blink":     termenv.BlinkSeq,
	"reverse":   termenv.ReverseSeq,
	"strike":    termenv.CrossOutSeq,
}

var rawSGR = regexp.MustCompile(`^[0-9]+(;[0-9]+)*$`)

func init() {
	if err := loadPalette(embeddedPalette); err != nil {
		initDefaultPalette()
	}
}

// loadPalette replaces the symbolic palette with the one described by data
func loadPalette(data []byte) error {
	var cfg paletteConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("failed to parse palette: %w", err)
	}
	if len(cfg.Colors) == 0 {
		return fmt.Errorf("palette defines no colors")
	}

	p := make(map[string]termenv.ANSIColor, len(cfg.Colors))
	for name, idx := range cfg.Colors {
		if idx < 0 || idx > 15 {
			return fmt.Errorf("color %q: index %d out of range", name, idx)
		}
		p[strings.ToLower(name)] = termenv.ANSIColor(idx)
	}
	palette = p
	return nil
}

// initDefaultPalette keeps the eight base colors usable if styles.yaml is broken
func initDefaultPalette() {
	palette = map[string]termenv.ANSIColor{}
	for i, name := range []string{"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white"} {
		palette[name] = termenv.ANSIColor(i)
	}
}

// ResolveStyle turns a style token into an SGR parameter list. Raw SGR
// parameters are returned unchanged.
func ResolveStyle(token string) (string, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return "", fmt.Errorf("empty style")
	}
	if rawSGR.MatchString(token) {
		return token, nil
	}

	parts := strings.FieldsFunc(token, func(r rune) bool { return r == '+' || r == ',' })
	seqs := make([]string, 0, len(parts))
	for _, part := range parts {
		seq, err := resolvePart(strings.ToLower(strings.TrimSpace(part)))
		if err != nil {
			return "", err
		}
		seqs = append(seqs, seq)
	}
	if len(seqs) == 0 {
		return "", fmt.Errorf("empty style %q", token)
	}
	return strings.Join(seqs, ";"), nil
}

func resolvePart(part string) (string, error) {
	if seq, ok := attributes[part]; ok {
		return seq, nil
	}

	bg := false
	if name, ok := strings.CutPrefix(part, "on-"); ok {
		bg = true
		part = name
	}

	if strings.HasPrefix(part, "#") {
		c := termenv.TrueColor.Color(part)
		if c == nil || c.Sequence(bg) == "" {
			return "", fmt.Errorf("invalid hex color %q", part)
		}
		return c.Sequence(bg), nil
	}

	if c, ok := palette[part]; ok {
		return c.Sequence(bg), nil
	}
	return "", fmt.Errorf("unknown style %q", part)
}
