package zr

// Command descriptions
const (
	MsgRootShort = "Project initializr from your own templates"
	MsgRootLong  = `zr generates projects from templates kept in git repositories.

Repositories are listed in the configuration file (see 'zr get-config') and
fetched with 'zr upgrade'. Each one holds '<lang>-<kind>' template directories
that become 'zr new <lang> <kind> <project-name>' commands.`

	MsgNewShort        = "Generate a new project"
	MsgLangShort       = "Generate a new %s project"
	MsgUpgradeShort    = "Fetch the latest version of the template repositories"
	MsgGetConfigShort  = "Print the path of the configuration file"
	MsgConfigShort     = "Manage the template repositories"
	MsgConfigAddShort  = "Add a template repository"
	MsgConfigRmShort   = "Remove a template repository"
	MsgConfigListShort = "List the template repositories"
	MsgListShort       = "List the available templates"
	MsgDescribeShort   = "Describe the arguments of a template"
	MsgCompletionShort = "Generate shell completion script"
	MsgVersionShort    = "Print version information"
)

// Flag descriptions
const (
	MsgFlagVerbose  = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagLogLevel = "Log level (trace, debug, info, warn, error), overrides -v"
	MsgFlagConfig   = "Configuration file (default $XDG_CONFIG_HOME/zr/config.toml)"
	MsgFlagFormat   = "Output format: auto, term or text"
)

// Output
const (
	MsgProjectCreated    = "Project %s created"
	MsgProjectErased     = "Dry run, project %s erased"
	MsgFilesWritten      = "%d files written"
	MsgFileFailed        = "%v"
	MsgGitFailed         = "git init failed: %v"
	MsgCommandRan        = "%s"
	MsgCommandFailed     = "%s failed: %v"
	MsgNoRepositories    = "No template repository configured, add one with 'zr config add <url>'"
	MsgNoTemplates       = "No templates found, fetch them with 'zr upgrade'"
	MsgRepositorySynced  = "%s %s"
	MsgRepositoryFailed  = "%s: %v"
	MsgRepositoryAdded   = "Added %s"
	MsgRepositoryKnown   = "%s is already configured"
	MsgRepositoryRemoved = "Removed %s"
	MsgRepositoryUnknown = "%s is not configured"
	MsgUpgradeHint       = "Run 'zr upgrade' to fetch it"
)

// Errors
const (
	MsgErrInitPaths    = "failed to initialize paths: %w"
	MsgErrNoCommand    = "no command specified"
	MsgErrUpgrade      = "%d of %d repositories failed to update"
	MsgErrUnknownShell = "unknown shell %q"
)

// MsgCompletionLong explains how to load completions
const MsgCompletionLong = `Prints the completion script of the given shell, or of the current one.

Bash:
  $ source <(zr completion bash)

Zsh:
  $ zr completion zsh > "${fpath[1]}/_zr"

Fish:
  $ zr completion fish | source

PowerShell:
  PS> zr completion powershell | Out-String | Invoke-Expression
`
