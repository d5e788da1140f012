package gradlepatch

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Inject a monitoring SDK into Gradle Android builds"
	MsgInjectShort     = "Patch the application module's build descriptor"
	MsgSetupShort      = "Run the full step: addons config, injection and verification"
	MsgStripShort      = "Print a descriptor with its comments masked out"
	MsgDialectShort    = "Print the descriptor dialect of build files"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgAddonsWritten  = "Wrote addons configuration to %s"
	MsgRootBuildFile  = "Using root build file %s"
	MsgVerifying      = "Verifying the injection with task %s"
	MsgVerifySuccess  = "Verification was successful"
	MsgUsingModule    = "Using module %s"
	MsgNoCommandGiven = "no command specified"

	// Error messages
	MsgErrParseSet = "invalid --set value %q, expected key=value"

	// Flag descriptions
	MsgFlagVerbose       = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagFormat        = "Output format: auto, term, text or json"
	MsgFlagConfig        = "Configuration file (default is .gradlepatch.toml in the project)"
	MsgFlagSet           = "Override a configuration key, e.g. --set plugin.version=0.0.4"
	MsgFlagSnapshot      = "Module snapshot file (.yaml, .yml, .toml or .json)"
	MsgFlagModule        = "Module to patch (default is the first application module)"
	MsgFlagFragmentDir   = "Directory holding the descriptor fragments (default from $BITRISE_STEP_SOURCE_DIR)"
	MsgFlagProject       = "Root directory of the Gradle project"
	MsgFlagVerify        = "Run the verification task after injecting"
	MsgFlagGradleOptions = "Extra options passed to Gradle, split with shell quoting rules"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/inject-long.txt
	msgInjectLongRaw string
	MsgInjectLong    = strings.TrimSpace(msgInjectLongRaw)

	//go:embed msgs/inject-example.txt
	msgInjectExampleRaw string
	MsgInjectExample    = strings.TrimSpace(msgInjectExampleRaw)

	//go:embed msgs/setup-long.txt
	msgSetupLongRaw string
	MsgSetupLong    = strings.TrimSpace(msgSetupLongRaw)

	//go:embed msgs/setup-example.txt
	msgSetupExampleRaw string
	MsgSetupExample    = strings.TrimSpace(msgSetupExampleRaw)

	//go:embed msgs/strip-long.txt
	msgStripLongRaw string
	MsgStripLong    = strings.TrimSpace(msgStripLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
