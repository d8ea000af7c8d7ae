package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"sessionvault/cmd/adminctl/cmd/types"
	"sessionvault/internal/app/client"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Состояние клиента и сервера",
	Long:  `Проверяет доступность сервера и показывает, есть ли сохраненный токен.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok {
			return fmt.Errorf("application is not initialized")
		}

		fmt.Printf("Server: %s\n", cfg.ServerAddress)

		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()

		if err := app.CheckConnection(ctx); err != nil {
			color.Red("✗ Server unreachable: %v", err)
		} else {
			color.Green("✓ Server is up")
		}

		if app.Authenticated() {
			color.Green("✓ Token present, run \"session list\" to verify it")
		} else {
			color.Yellow("ℹ Not logged in, run \"adminctl login\" first")
		}

		return nil
	},
}
