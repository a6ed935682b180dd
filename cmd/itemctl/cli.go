package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/itemctl/internal/config"
	"github.com/muurk/itemctl/internal/items"
	"github.com/muurk/itemctl/internal/logging"
	"github.com/muurk/itemctl/internal/ui"
	"github.com/muurk/itemctl/internal/view"
)

// skipSetup marks commands that must work without a usable settings file
const skipSetup = "itemctl/skip-setup"

// errDeclined is returned when the user answers no to a confirmation
var errDeclined = errors.New("operation cancelled")

// cli carries flag values and the resources built from them
type cli struct {
	// Persistent flags
	configPath string
	origin     string
	timeout    int
	logLevel   string
	logFile    string
	noColor    bool

	// lookupEnv reads the environment, os.LookupEnv outside tests
	lookupEnv func(string) (string, bool)

	settings *config.Settings
	client   *items.Client
}

func newCLI() *cli {
	return &cli{lookupEnv: os.LookupEnv}
}

// setup resolves settings with precedence flags > env > file > defaults, then
// configures logging, colors and the API client.
func (c *cli) setup(cmd *cobra.Command, args []string) error {
	if cmd.Annotations[skipSetup] == "true" {
		return nil
	}

	settings, err := c.loadSettings()
	if err != nil {
		return err
	}
	if err := settings.ApplyEnv(c.lookupEnv); err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("origin") {
		settings.Server.Origin = c.origin
	}
	if flags.Changed("timeout") {
		if c.timeout <= 0 {
			return fmt.Errorf("invalid --timeout %d: must be a positive number of seconds", c.timeout)
		}
		settings.Server.TimeoutSeconds = c.timeout
	}
	if flags.Changed("log-level") {
		settings.Logging.Level = c.logLevel
	}
	if flags.Changed("log-file") {
		settings.Logging.File = c.logFile
	}
	c.settings = settings

	if c.noColor {
		ui.DisableColor()
	}

	// The full-screen UI owns the terminal, so it only logs to a file
	if cmd == cmd.Root() && settings.Logging.File == "" {
		logging.SetLogger(zap.NewNop())
	} else if err := logging.Initialize(settings.Logging.Level, settings.Logging.File); err != nil {
		return err
	}

	client, err := items.NewClient(settings.Server.Origin)
	if err != nil {
		return fmt.Errorf("invalid origin %q: %w", settings.Server.Origin, err)
	}
	client.SetTimeout(settings.Timeout())
	c.client = client

	logging.Debug("Resolved settings",
		zap.String("origin", settings.Server.Origin),
		zap.String("api_base", client.BaseURL),
		zap.Duration("timeout", settings.Timeout()),
	)
	return nil
}

func (c *cli) loadSettings() (*config.Settings, error) {
	if c.configPath != "" {
		return config.LoadFrom(c.configPath)
	}
	return config.Load()
}

func (c *cli) settingsPath() (string, error) {
	if c.configPath != "" {
		return c.configPath, nil
	}
	return config.GetConfigPath()
}

func (c *cli) printer(cmd *cobra.Command) *ui.Printer {
	return ui.NewPrinter(cmd.OutOrStdout())
}

// outcome records controller events so commands can report how an
// operation ended
type outcome struct {
	events []view.Event
}

func (o *outcome) record(ev view.Event) {
	o.events = append(o.events, ev)
}

// last returns the most recent event for op
func (o *outcome) last(op view.Op) (view.Event, bool) {
	for i := len(o.events) - 1; i >= 0; i-- {
		if o.events[i].Op == op {
			return o.events[i], true
		}
	}
	return view.Event{}, false
}

// err returns the error of the last event for op. A declined confirmation
// yields errDeclined.
func (o *outcome) err(op view.Op) error {
	ev, ok := o.last(op)
	switch {
	case !ok:
		return nil
	case ev.Declined:
		return errDeclined
	}
	return ev.Err
}

// controller builds a view controller whose dialogs print to the command's
// output and read answers from its input
func (c *cli) controller(cmd *cobra.Command, assumeYes bool) (*view.Controller, *outcome) {
	dialogs := ui.NewConsoleDialogs(c.printer(cmd), cmd.InOrStdin(), assumeYes)
	out := &outcome{}
	return view.NewController(c.client, dialogs, view.WithNotify(out.record)), out
}

// printFailure prints an error box with hints derived from err
func printFailure(p *ui.Printer, title string, err error) {
	p.PrintError(title, err, ui.TroubleshootingTips(items.GetTroubleshootingHint(err)))
}

func (c *cli) header(cmd *cobra.Command, title string, params ...ui.Param) {
	all := append([]ui.Param{
		{Key: "API", Value: c.client.BaseURL},
		{Key: "Timeout", Value: c.settings.Timeout().String()},
	}, params...)
	c.printer(cmd).PrintHeader(title, cmd.CommandPath(), all...)
}
