// Itemctl manages the items of a remote items API from the terminal.
//
// Running without arguments launches the interactive item manager. The
// subcommands perform single operations and are suited to scripting.
//
// Usage:
//
//	itemctl [command] [flags]
//
// See 'itemctl --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muurk/itemctl/internal/items"
	"github.com/muurk/itemctl/internal/logging"
	"github.com/muurk/itemctl/internal/version"
)

// Exit codes
const (
	exitFailure     = 1 // any other failure
	exitUsage       = 2 // invalid input, nothing was sent
	exitUnreachable = 3 // the API could not be reached
	exitHTTP        = 4 // the API answered with a non-2xx status
	exitBadResponse = 5 // the API answered with a body that could not be parsed
)

func main() {
	err := newRootCmd(newCLI()).Execute()
	logging.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps an error to the process exit status
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case items.IsValidationError(err):
		return exitUsage
	case items.IsNetworkError(err):
		return exitUnreachable
	case items.IsHTTPError(err):
		return exitHTTP
	case items.IsParseError(err):
		return exitBadResponse
	}
	return exitFailure
}

func newRootCmd(c *cli) *cobra.Command {
	root := &cobra.Command{
		Use:   "itemctl",
		Short: "Items API client",
		Long: `A terminal client for the items API.

Lists, creates, edits and deletes items, and fetches the backend greeting.
The API base is resolved from --origin: a localhost origin talks to the
backend at http://localhost:5000/api, any other host to <origin>/api.

If no command is specified, the interactive item manager will launch.

Exit status: 0 on success, 2 for invalid input, 3 when the API cannot be
reached, 4 when the API answers with an error status, 5 when its response
cannot be parsed, 1 for anything else.`,
		Version: version.Version,
		Example: `  # Launch the interactive item manager
  itemctl

  # List items against a deployed backend
  itemctl ls --origin https://items.example.com

  # Add and remove an item
  itemctl add "Widget" --description "blue"
  itemctl rm 3 --yes`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
		RunE:              c.runTUI,
	}

	// Disable automatic completion command generation
	root.CompletionOptions.DisableDefaultCmd = true

	flags := root.PersistentFlags()
	flags.StringVar(&c.configPath, "config", "", "Settings file (default is the user config directory)")
	flags.StringVar(&c.origin, "origin", "", "Page origin the API base is resolved from (env ITEMCTL_ORIGIN)")
	flags.IntVar(&c.timeout, "timeout", 0, "Request timeout in seconds (env ITEMCTL_TIMEOUT)")
	flags.StringVar(&c.logLevel, "log-level", "", "Log level: debug, info, warn, error (env ITEMCTL_LOG_LEVEL)")
	flags.StringVar(&c.logFile, "log-file", "", "Write logs to this file instead of stderr")
	flags.BoolVar(&c.noColor, "no-color", false, "Disable colored output")

	root.AddCommand(
		c.newHiiCmd(),
		c.newListCmd(),
		c.newShowCmd(),
		c.newAddCmd(),
		c.newEditCmd(),
		c.newRemoveCmd(),
		c.newHealthCmd(),
		c.newAPICmd(),
		c.newConfigCmd(),
		newVersionCmd(),
	)

	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Print version information",
		Annotations: map[string]string{skipSetup: "true"},
		Run: func(cmd *cobra.Command, args []string) {
			info := version.Get()
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "itemctl %s (commit: %s) %s %s\n",
				info.Version, info.Commit, info.GoVersion, info.Platform)
		},
	}
}
