package main

import (
	"fmt"
	"os"
	"time"

	"github.com/SscSPs/money_planner/internal/utils/token"
	"github.com/spf13/cobra"
)

var flagTokenTTL time.Duration

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint a bearer token for an owner, signed with JWT_SECRET",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := requireOwnerFlag(); err != nil {
			return err
		}
		cfg, _, err := setup(os.Stderr)
		if err != nil {
			return err
		}
		signed, err := token.IssueOwnerToken(flagOwner, cfg.JWTSecret, flagTokenTTL)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), signed)
		return err
	},
}

func init() {
	tokenCmd.Flags().StringVar(&flagOwner, "owner", "", "Owner ID (token subject)")
	tokenCmd.Flags().DurationVar(&flagTokenTTL, "ttl", 24*time.Hour, "Token lifetime")
	rootCmd.AddCommand(tokenCmd)
}
