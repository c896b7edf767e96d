package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSeedCommand() *cobra.Command {
	var actor string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create the default chart of accounts",
		Long:  "Creates every default account whose number does not exist yet. Safe to run repeatedly.",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, ctx, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			created, skipped, err := a.services.Account.SeedDefaultChart(ctx, actor)
			if err != nil {
				return fmt.Errorf("seeding chart of accounts: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render(fmt.Sprintf("Chart seeded: %d created, %d already present", created, skipped)))
			return nil
		},
	}
	cmd.Flags().StringVar(&actor, "actor", "system", "recorded as the creator of seeded accounts")

	return cmd
}
