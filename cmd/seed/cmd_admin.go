package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"portfolio/internal/auth"
)

var (
	adminEmail    string
	adminPassword string
	adminReplace  bool
)

// createAdminCmd provisions an admin account through the auth admin API
var createAdminCmd = &cobra.Command{
	Use:   "create-admin",
	Short: "Create a confirmed admin account",
	Long: `Create an admin account with a confirmed email, bypassing the
sign-up confirmation mail. Requires SUPABASE_KEY (service role).

With --replace an existing account with the same email is deleted first.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.SupabaseURL == "" || cfg.SupabaseKey == "" {
			return fmt.Errorf("SUPABASE_URL and SUPABASE_KEY must be set")
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()

		client := auth.NewAdminClient(cfg.SupabaseURL, cfg.SupabaseKey)

		if adminReplace {
			if err := client.DeleteUserByEmail(ctx, adminEmail); err != nil {
				return fmt.Errorf("failed to remove existing account: %w", err)
			}
		}

		id, err := client.CreateUser(ctx, adminEmail, adminPassword)
		if err != nil {
			return fmt.Errorf("failed to create admin: %w", err)
		}

		logger.Info("admin created", "user_id", id, "email", adminEmail)
		fmt.Fprintf(cmd.OutOrStdout(), "Created admin %s (%s)\n", adminEmail, id)
		return nil
	},
}

func init() {
	createAdminCmd.Flags().StringVar(&adminEmail, "email", "", "Admin email")
	createAdminCmd.Flags().StringVar(&adminPassword, "password", "", "Admin password")
	createAdminCmd.Flags().BoolVar(&adminReplace, "replace", false, "Delete an existing account with the same email first")
	_ = createAdminCmd.MarkFlagRequired("email")
	_ = createAdminCmd.MarkFlagRequired("password")
}
