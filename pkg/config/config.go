package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	gotoml "github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/repolist/pkg/errors"
	"github.com/arthur-debert/repolist/pkg/logging"
)

const (
	// AppName names the user config directory.
	AppName = "repolist"
	// RepoConfigFile is read from the repository root when present.
	RepoConfigFile = ".repolist.toml"
	// EnvPrefix selects environment overrides. Sections are separated
	// by a double underscore: REPOLIST_COLORS__MODE=never.
	EnvPrefix = "REPOLIST_"
)

// Color modes accepted by colors.mode.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config is the effective configuration after every layer is merged.
type Config struct {
	Colors ColorsConfig `koanf:"colors" toml:"colors"`
	List   ListConfig   `koanf:"list" toml:"list"`
	Remote RemoteConfig `koanf:"remote" toml:"remote"`
}

type ColorsConfig struct {
	Mode     string `koanf:"mode" toml:"mode"`
	LsColors string `koanf:"ls_colors" toml:"ls_colors"`
}

type ListConfig struct {
	Size      bool     `koanf:"size" toml:"size"`
	Recursive bool     `koanf:"recursive" toml:"recursive"`
	DvcOnly   bool     `koanf:"dvc_only" toml:"dvc_only"`
	Ignore    []string `koanf:"ignore" toml:"ignore"`
}

type RemoteConfig struct {
	Name    string            `koanf:"name" toml:"name"`
	Options map[string]string `koanf:"options" toml:"options"`
}

// LoadOptions controls which layers Load reads.
type LoadOptions struct {
	// RepoRoot is searched for RepoConfigFile. Empty skips the layer.
	RepoRoot string
	// File is an explicit config file; it must exist.
	File string
	// Overrides are applied last, keyed by dotted path ("list.size").
	Overrides map[string]interface{}
	// SkipUser disables the user config layer.
	SkipUser bool
}

// UserConfigPath returns the per-user config file location. XDG_CONFIG_HOME
// is consulted at call time so it can be redirected.
func UserConfigPath() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		base = xdg.ConfigHome
	}
	return filepath.Join(base, AppName, "config.toml")
}

// Load builds the effective configuration.
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. User config
	if !opts.SkipUser {
		if err := loadOptionalFile(k, UserConfigPath()); err != nil {
			return nil, err
		}
	}

	// 3. Repository config
	if opts.RepoRoot != "" {
		if err := loadOptionalFile(k, filepath.Join(opts.RepoRoot, RepoConfigFile)); err != nil {
			return nil, err
		}
	}

	// 4. Environment
	if err := k.Load(env.ProviderWithValue(EnvPrefix, ".", envValue), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment")
	}

	// 5. Explicit file
	if opts.File != "" {
		if _, err := os.Stat(opts.File); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "config file %s not found", opts.File).
				WithDetail("path", opts.File)
		}
		if err := loadFile(k, opts.File); err != nil {
			return nil, err
		}
	}

	// 6. Command-line overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.Debug().
		Str("colors.mode", cfg.Colors.Mode).
		Bool("list.size", cfg.List.Size).
		Bool("list.recursive", cfg.List.Recursive).
		Int("list.ignore", len(cfg.List.Ignore)).
		Msg("Configuration loaded")

	return &cfg, nil
}

// Validate checks values that the decoder cannot.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Colors.Mode) {
	case ColorAuto, ColorAlways, ColorNever:
		c.Colors.Mode = strings.ToLower(c.Colors.Mode)
	case "":
		c.Colors.Mode = ColorAuto
	default:
		return errors.Newf(errors.ErrConfigParse, "invalid colors.mode %q", c.Colors.Mode).
			WithDetail("allowed", []string{ColorAuto, ColorAlways, ColorNever})
	}
	return nil
}

// TOML renders the effective configuration.
func (c *Config) TOML() ([]byte, error) {
	out, err := gotoml.Marshal(c)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode configuration")
	}
	return out, nil
}

// envValue maps REPOLIST_SECTION__KEY to section.key and skips empty values
func envValue(key, value string) (string, interface{}) {
	if value == "" {
		return "", nil
	}
	return envKey(key), value
}

func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	if !strings.Contains(key, "__") {
		return ""
	}
	return strings.ReplaceAll(key, "__", ".")
}

func loadOptionalFile(k *koanf.Koanf, path string) error {
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	return loadFile(k, path)
}

// parserFor picks the parser by file extension; TOML unless the file is YAML
func parserFor(path string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser()
	default:
		return toml.Parser()
	}
}

func loadFile(k *koanf.Koanf, path string) error {
	if err := k.Load(file.Provider(path), parserFor(path)); err != nil {
		return errors.Wrapf(err, errors.ErrConfigParse, "failed to parse config from %s", path).
			WithDetail("path", path)
	}
	logger := logging.GetLogger("config")
	logger.Debug().Str("path", path).Msg("Loaded config file")
	return nil
}
