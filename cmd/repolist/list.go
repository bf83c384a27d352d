package repolist

import (
	"os"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/repolist/pkg/config"
	"github.com/arthur-debert/repolist/pkg/errors"
	"github.com/arthur-debert/repolist/pkg/logging"
	"github.com/arthur-debert/repolist/pkg/lscolors"
	"github.com/arthur-debert/repolist/pkg/render"
	"github.com/arthur-debert/repolist/pkg/repo"
	"github.com/arthur-debert/repolist/pkg/types"
	"github.com/arthur-debert/repolist/pkg/ui"
)

// newLister builds the lister used by the list command
var newLister = func(ignore []string) repo.Lister {
	return repo.NewLocalLister(afero.NewOsFs(), repo.WithIgnorePatterns(ignore...))
}

type listFlags struct {
	recursive    bool
	dvcOnly      bool
	json         bool
	rev          string
	config       string
	remote       string
	remoteConfig []string
	size         bool
	color        string
}

func newListCmd() *cobra.Command {
	var f listFlags

	cmd := &cobra.Command{
		Use:     "list <url> [path]",
		Aliases: []string{"ls"},
		Short:   MsgListShort,
		Long:    MsgListLong,
		Example: MsgListExample,
		GroupID: "core",
		Args:    cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			url := args[0]
			var target string
			if len(args) == 2 {
				target = args[1]
			}

			logger := logging.GetLogger("cmd.list")
			if err := runList(cmd, url, target, f); err != nil {
				logger.Error().Err(err).Str("url", url).Msgf(MsgErrListFailed, url)
				return errors.Wrapf(err, errors.ErrListFailed, MsgErrListFailed, url).
					WithDetail("url", url)
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.BoolVarP(&f.recursive, "recursive", "R", false, MsgFlagRecursive)
	flags.BoolVar(&f.dvcOnly, "dvc-only", false, MsgFlagDvcOnly)
	flags.BoolVar(&f.json, "json", false, MsgFlagJSON)
	flags.StringVar(&f.rev, "rev", "", MsgFlagRev)
	flags.StringVar(&f.config, "config", "", MsgFlagConfig)
	flags.StringVar(&f.remote, "remote", "", MsgFlagRemote)
	flags.StringArrayVar(&f.remoteConfig, "remote-config", nil, MsgFlagRemoteConfig)
	flags.BoolVar(&f.size, "size", false, MsgFlagSize)
	flags.StringVar(&f.color, "color", "", MsgFlagColor)

	return cmd
}

// overrides turns explicitly set flags into config overrides so that they
// win over every file and environment layer.
func (f listFlags) overrides(cmd *cobra.Command) (map[string]interface{}, error) {
	set := cmd.Flags().Changed
	out := map[string]interface{}{}

	if set("recursive") {
		out["list.recursive"] = f.recursive
	}
	if set("dvc-only") {
		out["list.dvc_only"] = f.dvcOnly
	}
	if set("size") {
		out["list.size"] = f.size
	}
	if set("color") {
		out["colors.mode"] = f.color
	}
	if set("remote") {
		out["remote.name"] = f.remote
	}
	if set("remote-config") {
		opts := map[string]interface{}{}
		for _, kv := range f.remoteConfig {
			key, value, ok := strings.Cut(kv, "=")
			key = strings.TrimSpace(key)
			if !ok || key == "" {
				return nil, errors.Newf(errors.ErrInvalidInput, MsgErrRemoteConfig, kv)
			}
			opts[key] = value
		}
		out["remote.options"] = opts
	}
	return out, nil
}

func runList(cmd *cobra.Command, url, target string, f listFlags) error {
	overrides, err := f.overrides(cmd)
	if err != nil {
		return err
	}

	cfg, err := config.Load(config.LoadOptions{
		RepoRoot:  url,
		File:      f.config,
		Overrides: overrides,
	})
	if err != nil {
		return err
	}

	done := logging.LogOperationStart(logging.GetLogger("cmd.list"), "list")
	entries, err := newLister(cfg.List.Ignore).List(cmd.Context(), repo.Options{
		URL:          url,
		Path:         target,
		Rev:          f.rev,
		Recursive:    cfg.List.Recursive,
		DvcOnly:      cfg.List.DvcOnly,
		Config:       f.config,
		Remote:       cfg.Remote.Name,
		RemoteConfig: cfg.Remote.Options,
	})
	done()
	if err != nil {
		return err
	}

	console := ui.NewConsole(cmd.OutOrStdout())
	if f.json {
		if entries == nil {
			entries = []types.Entry{}
		}
		return console.WriteJSON(entries)
	}
	if len(entries) == 0 {
		return nil
	}

	formatter, err := entryFormatter(cfg, cmd)
	if err != nil {
		return err
	}
	return render.ShowEntries(console, entries, formatter, cfg.List.Size)
}

// entryFormatter picks the LS_COLORS classifier when the output takes
// colors and the plain formatter otherwise.
func entryFormatter(cfg *config.Config, cmd *cobra.Command) (render.Formatter, error) {
	mode, err := ui.ParseFormat(cfg.Colors.Mode)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, MsgErrColorMode, cfg.Colors.Mode)
	}
	if !ui.ResolveFormat(mode, cmd.OutOrStdout()).Colored() {
		return render.PlainFormatter, nil
	}

	raw := cfg.Colors.LsColors
	if raw == "" {
		raw = os.Getenv(lscolors.EnvVar)
	}
	return lscolors.New(raw, lscolors.WithColor(true)), nil
}
