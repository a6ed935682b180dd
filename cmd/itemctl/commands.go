package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/muurk/itemctl/internal/items"
	"github.com/muurk/itemctl/internal/tui"
	"github.com/muurk/itemctl/internal/ui"
	"github.com/muurk/itemctl/internal/urls"
	"github.com/muurk/itemctl/internal/view"
)

// Output formats accepted by ls, show and health
const (
	formatCards    = "cards"
	formatCompact  = "compact"
	formatDetailed = "detailed"
	formatJSON     = "json"
	formatText     = "text"
)

func checkFormat(format string, allowed ...string) error {
	for _, f := range allowed {
		if format == f {
			return nil
		}
	}
	return fmt.Errorf("unknown format %q (want one of %v)", format, allowed)
}

func writeJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

// runTUI launches the interactive item manager
func (c *cli) runTUI(cmd *cobra.Command, args []string) error {
	if !ui.IsTerminal(os.Stdout) {
		return errors.New("the interactive UI needs a terminal; use a subcommand such as 'itemctl ls'")
	}
	return tui.Run(cmd.Context(), c.client, tui.Options{
		Origin:    c.settings.Server.Origin,
		ShowItems: c.settings.Preferences.ShowItemsOnStart,
	})
}

func (c *cli) newHiiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hii",
		Short: "Fetch the backend greeting",
		Long: `Fetch the greeting from GET /hii and print it.

This is the quickest way to check that the backend is reachable.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl, out := c.controller(cmd, false)
			ctrl.FetchGreeting(cmd.Context())
			c.printer(cmd).PrintStatus(ctrl.Page())

			if err := out.err(view.OpFetchGreeting); err != nil {
				return fmt.Errorf("failed to get message: %w", err)
			}
			return nil
		},
	}
}

func (c *cli) newListCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List items",
		Long: `List every item in server order, preceded by the item count.

Items without a description are shown with "No description".`,
		Example: `  # Item cards
  itemctl ls

  # One line per item
  itemctl ls --format compact

  # JSON output for scripting
  itemctl ls --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format, formatCards, formatCompact, formatDetailed, formatJSON); err != nil {
				return err
			}
			ctx := cmd.Context()
			p := c.printer(cmd)

			if format == formatCards {
				ctrl, out := c.controller(cmd, false)
				ctrl.ToggleVisibility(ctx)
				c.header(cmd, "Items")
				p.PrintRegion(ctrl.Page())
				if err := out.err(view.OpRefreshList); err != nil {
					return fmt.Errorf("failed to list items: %w", err)
				}
				return nil
			}

			list, err := c.client.ListItems(ctx)
			if err != nil {
				if format != formatJSON {
					printFailure(p, "Failed to load items", err)
				}
				return fmt.Errorf("failed to list items: %w", err)
			}

			switch format {
			case formatJSON:
				return writeJSON(cmd, list)
			case formatCompact:
				p.Print(items.FormatCompact(list, p.Width()))
			default:
				p.Print(items.FormatDetailed(list))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", formatCards, "Output format (cards, compact, detailed, json)")
	return cmd
}

func (c *cli) newShowCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a single item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format, formatDetailed, formatJSON); err != nil {
				return err
			}
			id, err := items.ParseID(args[0])
			if err != nil {
				return err
			}

			item, err := c.client.GetItem(cmd.Context(), id)
			if err != nil {
				if format != formatJSON {
					printFailure(c.printer(cmd), fmt.Sprintf("Failed to get item #%d", id), err)
				}
				return fmt.Errorf("failed to get item %d: %w", id, err)
			}

			if format == formatJSON {
				return writeJSON(cmd, item)
			}
			c.printer(cmd).Print(item.FormatDetailed())
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", formatDetailed, "Output format (detailed, json)")
	return cmd
}

func (c *cli) newAddCmd() *cobra.Command {
	var description string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add an item",
		Long: `Create an item with POST /items.

The name is required; the description is optional.`,
		Example: `  itemctl add "Widget"
  itemctl add "Widget" --description "blue, medium"`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var name string
			if len(args) == 1 {
				name = args[0]
			}

			ctrl, out := c.controller(cmd, true)
			ctrl.SetNewItemInput(name, description)
			ctrl.CreateItem(cmd.Context())

			if err := out.err(view.OpCreateItem); err != nil {
				return fmt.Errorf("failed to add item: %w", err)
			}

			details := []ui.Param{{Key: "Name", Value: name}}
			if ev, ok := out.last(view.OpCreateItem); ok && ev.ID != 0 {
				details = append([]ui.Param{{Key: "ID", Value: strconv.Itoa(ev.ID)}}, details...)
			}
			c.printer(cmd).PrintSuccess("Item created", details...)
			return nil
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "Item description")
	return cmd
}

func (c *cli) newEditCmd() *cobra.Command {
	var name, description string

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit an item",
		Long: `Update an item with PUT /items/{id}.

Fields not given keep their current value. The full name and description
are always sent.`,
		Example: `  itemctl edit 3 --name "Widget v2"
  itemctl edit 3 --description ""`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := items.ParseID(args[0])
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if !flags.Changed("name") && !flags.Changed("description") {
				return errors.New("nothing to change: pass --name and/or --description")
			}

			ctx := cmd.Context()
			ctrl, out := c.controller(cmd, true)
			ctrl.BeginEdit(ctx, id)
			if err := out.err(view.OpRefreshList); err != nil {
				printFailure(c.printer(cmd), "Failed to load items", err)
				return fmt.Errorf("failed to load item %d: %w", id, err)
			}

			in, ok := ctrl.Page().EditInputs[id]
			if !ok {
				return fmt.Errorf("item %d not found", id)
			}
			if flags.Changed("name") {
				in.Name = name
			}
			if flags.Changed("description") {
				in.Description = description
			}

			ctrl.SetEditInput(id, in.Name, in.Description)
			ctrl.SaveEdit(ctx, id)
			if err := out.err(view.OpSaveEdit); err != nil {
				return fmt.Errorf("failed to update item %d: %w", id, err)
			}

			desc := in.Description
			if desc == "" {
				desc = items.NoDescription
			}
			c.printer(cmd).PrintSuccess("Item updated",
				ui.Param{Key: "ID", Value: strconv.Itoa(id)},
				ui.Param{Key: "Name", Value: in.Name},
				ui.Param{Key: "Description", Value: desc},
			)
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "New item name")
	cmd.Flags().StringVarP(&description, "description", "d", "", "New item description")
	return cmd
}

func (c *cli) newRemoveCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete an item",
		Long: `Delete an item with DELETE /items/{id} after confirmation.

Answering anything but "y" cancels. --yes (or assume_yes in the settings
file) skips the prompt.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := items.ParseID(args[0])
			if err != nil {
				return err
			}

			ctrl, out := c.controller(cmd, yes || c.settings.Preferences.AssumeYes)
			ctrl.DeleteItem(cmd.Context(), id)

			err = out.err(view.OpDeleteItem)
			switch {
			case errors.Is(err, errDeclined):
				c.printer(cmd).PrintWarning("Item not deleted", ui.Param{Key: "ID", Value: strconv.Itoa(id)})
				return nil
			case err != nil:
				return fmt.Errorf("failed to delete item %d: %w", id, err)
			}

			details := []ui.Param{{Key: "ID", Value: strconv.Itoa(id)}}
			if page := ctrl.Page(); page.Count != nil {
				details = append(details, ui.Param{Key: "Remaining", Value: strconv.Itoa(*page.Count)})
			}
			c.printer(cmd).PrintSuccess("Item deleted", details...)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Delete without asking for confirmation")
	return cmd
}

func (c *cli) newHealthCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "health",
		Short: "Check service health",
		Long: `Fetch GET /health from the origin and report service and database state.

Exits non-zero when the service reports anything other than healthy.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format, formatText, formatJSON); err != nil {
				return err
			}
			p := c.printer(cmd)

			h, err := c.client.Health(cmd.Context())
			if err != nil {
				if format != formatJSON {
					printFailure(p, "Health check failed", err)
				}
				return fmt.Errorf("health check failed: %w", err)
			}

			if format == formatJSON {
				if err := writeJSON(cmd, h); err != nil {
					return err
				}
			} else {
				p.Print(h.FormatHealth())
			}

			if !h.Healthy() {
				return fmt.Errorf("service is %s", h.Status)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", formatText, "Output format (text, json)")
	return cmd
}

func (c *cli) newAPICmd() *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "api",
		Short: "Describe the HTTP API",
		Long:  `Print the endpoints the client uses, resolved against the current origin.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := c.printer(cmd)
			md := urls.Markdown(c.client.BaseURL, c.client.Origin)
			if raw {
				p.Print(md)
				return nil
			}

			style := "dark"
			if c.noColor {
				style = "notty"
			}
			r, err := glamour.NewTermRenderer(
				glamour.WithStandardStyle(style),
				glamour.WithWordWrap(p.Width()),
			)
			if err != nil {
				return fmt.Errorf("failed to create markdown renderer: %w", err)
			}
			rendered, err := r.Render(md)
			if err != nil {
				return fmt.Errorf("failed to render API description: %w", err)
			}
			p.Print(rendered)
			return nil
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "Print the markdown source")
	return cmd
}
