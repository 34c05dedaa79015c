package cli

import (
	"github.com/spf13/cobra"
)

// AddCmd returns the add command
func AddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <location> <breach-type> <impact>",
		Short: "Record a breach",
		Long: `Record a breach with the given location, breach type and impact.

Nothing is recorded unless all three values are non-empty.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer app.Close()

			_, err = app.BreachAdapterWithOutput(cmd.OutOrStdout()).Record(cmd.Context(), args[0], args[1], args[2])
			return err
		},
	}
}

// ListCmd returns the list command
func ListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all recorded breaches",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer app.Close()

			_, err = app.BreachAdapterWithOutput(cmd.OutOrStdout()).List(cmd.Context())
			return err
		},
	}
}

// SearchCmd returns the search command
func SearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search [query]",
		Short: "Search breaches by location, breach type or impact",
		Long: `Show breaches where any field contains the query, ignoring case.

Without a query every breach is shown.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var query string
			if len(args) == 1 {
				query = args[0]
			}

			app, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer app.Close()

			_, err = app.BreachAdapterWithOutput(cmd.OutOrStdout()).Search(cmd.Context(), query)
			return err
		},
	}
}

// ShowCmd returns the show command
func ShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show breach details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseBreachID(args[0])
			if err != nil {
				return err
			}

			app, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer app.Close()

			_, err = app.BreachAdapterWithOutput(cmd.OutOrStdout()).Show(cmd.Context(), id)
			return err
		},
	}
}
