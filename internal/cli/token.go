package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/SscSPs/pos_ledger/internal/platform/config"
	"github.com/SscSPs/pos_ledger/internal/utils"
)

// newTokenCommand issues operator JWTs. Operator login is handled outside this
// service, so this is how an operator obtains a bearer token.
func newTokenCommand() *cobra.Command {
	var subject string
	var expiry time.Duration

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue an operator bearer token",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			if expiry == 0 {
				expiry = cfg.JWTExpiryDuration
			}
			token, err := utils.IssueOperatorToken(subject, cfg.JWTSecret, expiry, cfg.JWTIssuer)
			if err != nil {
				return fmt.Errorf("signing token: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().StringVar(&subject, "subject", "", "operator id recorded as the actor (required)")
	_ = cmd.MarkFlagRequired("subject")
	cmd.Flags().DurationVar(&expiry, "expiry", 0, "token lifetime; defaults to JWT_EXPIRY_DURATION")

	return cmd
}
