package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func newKeysCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keys",
		Short: "Manage POS integration keys",
	}
	cmd.AddCommand(newKeysCreateCommand(), newKeysListCommand(), newKeysRevokeCommand())
	return cmd
}

func newKeysCreateCommand() *cobra.Command {
	var name, actor string
	var expires time.Duration

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an integration key and print it once",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, ctx, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			var expiresIn *time.Duration
			if expires > 0 {
				expiresIn = &expires
			}
			plaintext, key, err := a.services.IntegrationKey.CreateKey(ctx, name, expiresIn, actor)
			if err != nil {
				return fmt.Errorf("creating key: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, titleStyle.Render("Integration key created"))
			fmt.Fprintf(out, "%s %s\n", labelStyle.Render("ID"), key.KeyID)
			fmt.Fprintf(out, "%s %s\n", labelStyle.Render("Name"), key.Name)
			if key.ExpiresAt != nil {
				fmt.Fprintf(out, "%s %s\n", labelStyle.Render("Expires"), key.ExpiresAt.Format(time.RFC3339))
			}
			fmt.Fprintf(out, "%s %s\n", labelStyle.Render("Key"), highlightStyle.Render(plaintext))
			fmt.Fprintln(out, dimStyle.Render("Store this key now. It cannot be shown again."))
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "key name, e.g. the register it belongs to (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().DurationVar(&expires, "expires", 0, "lifetime such as 720h; 0 never expires")
	cmd.Flags().StringVar(&actor, "actor", "cli", "recorded as the key's creator")

	return cmd
}

func newKeysListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List integration keys",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, ctx, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			keys, err := a.services.IntegrationKey.ListKeys(ctx)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(keys) == 0 {
				fmt.Fprintln(out, dimStyle.Render("No integration keys."))
				return nil
			}
			fmt.Fprintln(out, headerStyle.Render(fmt.Sprintf("%-36s  %-10s  %-24s  %s", "ID", "PREFIX", "NAME", "STATUS")))
			for _, k := range keys {
				status := successStyle.Render("active")
				switch {
				case k.RevokedAt != nil:
					status = errorStyle.Render("revoked")
				case k.ExpiresAt != nil && k.ExpiresAt.Before(time.Now()):
					status = dimStyle.Render("expired")
				}
				fmt.Fprintf(out, "%-36s  %-10s  %-24s  %s\n", k.KeyID, k.Prefix, k.Name, status)
			}
			return nil
		},
	}
}

func newKeysRevokeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "revoke <key-id>",
		Short: "Revoke an integration key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, ctx, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.services.IntegrationKey.RevokeKey(ctx, args[0]); err != nil {
				return fmt.Errorf("revoking key: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render("Key revoked"))
			return nil
		},
	}
}
