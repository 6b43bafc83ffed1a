package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/travelplan-backend/internal/auth"
	"github.com/heartmarshall/travelplan-backend/internal/config"
)

var tokenCmd = &cobra.Command{
	Use:   "token <owner-id>",
	Short: "Issue an access token for local testing",
	Long: `Issue an access token signed with the configured secret. In production
tokens come from the account service; this command is for development.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ownerID, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("owner id: %w", err)
		}

		cfg, err := config.Load()
		if err != nil {
			return err
		}

		tokens := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
		token, err := tokens.GenerateAccessToken(ownerID)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}
