package session

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"sessionvault/cmd/adminctl/cmd/types"
	"sessionvault/internal/app/client"
)

var DeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Удалить запись",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok {
			return fmt.Errorf("application is not initialized")
		}

		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid record id: %w", err)
		}

		if err := app.DeleteSession(cmd.Context(), id); err != nil {
			return fmt.Errorf("failed to delete session: %w", err)
		}

		color.Green("✓ Record %d deleted", id)
		return nil
	},
}
