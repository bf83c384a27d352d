package repolist

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "List the contents of a data repository"
	MsgListShort       = "List repository contents, including data outputs"
	MsgConfigShort     = "Print the effective configuration"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Version output
	MsgVersionFormat = "repolist version %s\n  commit: %s\n  built:  %s\n"

	// Error messages
	MsgErrNoCommand    = "no command specified"
	MsgErrListFailed   = "failed to list '%s'"
	MsgErrRemoteConfig = "invalid --remote-config %q, expected key=value"
	MsgErrColorMode    = "invalid --color %q"

	// Flag descriptions
	MsgFlagVerbose      = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagRecursive    = "Recursively list files"
	MsgFlagDvcOnly      = "Show only data outputs"
	MsgFlagJSON         = "Show output in JSON format"
	MsgFlagRev          = "Git revision (e.g. SHA, branch, tag)"
	MsgFlagConfig       = "Path to a TOML or YAML config file merged into the repository config"
	MsgFlagRemote       = "Remote name to set as a default in the target repository"
	MsgFlagRemoteConfig = "Remote config option to merge with the remote's config (key=value); repeat the flag for each option: --remote-config a=1 --remote-config b=2"
	MsgFlagSize         = "Show sizes"
	MsgFlagColor        = "Colorize names: auto, always or never"
	MsgFlagDefaults     = "Print the embedded defaults instead of the effective configuration"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/list-long.txt
	msgListLongRaw string
	MsgListLong    = strings.TrimSpace(msgListLongRaw)

	//go:embed msgs/list-example.txt
	msgListExampleRaw string
	MsgListExample    = strings.TrimRight(msgListExampleRaw, "\n")

	//go:embed msgs/config-long.txt
	msgConfigLongRaw string
	MsgConfigLong    = strings.TrimSpace(msgConfigLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
