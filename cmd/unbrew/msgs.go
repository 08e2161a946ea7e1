package unbrew

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	MsgRootShort = "Uninstall Homebrew"

	// Flag descriptions
	MsgFlagPath             = "Homebrew prefix to uninstall (repeatable, tried in order)"
	MsgFlagSkipCacheAndLogs = "Keep cache and log directories"
	MsgFlagForce            = "Uninstall without prompting for confirmation"
	MsgFlagQuiet            = "Print only warnings and errors"
	MsgFlagDryRun           = "Show what would be removed without removing anything"
	MsgFlagVerbose          = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagNoColor          = "Disable colored output"
	MsgFlagConfig           = "Configuration file"
	MsgFlagManifestURL      = "URL of the manifest used when the repository has none"

	// Error messages
	MsgErrConfig = "failed to load configuration: %w"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/root-example.txt
	msgRootExampleRaw string
	MsgRootExample    = strings.TrimRight(msgRootExampleRaw, "\n")

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"
)
