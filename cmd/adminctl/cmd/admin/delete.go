package admin

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
	Short: "Удалить администратора",
	Long: `Удаляет аккаунт администратора по ID. Удалить собственный аккаунт
нельзя, сервер ответит ошибкой.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok {
			return fmt.Errorf("application is not initialized")
		}

		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid admin id: %w", err)
		}

		if err := app.DeleteAdmin(cmd.Context(), id); err != nil {
			return fmt.Errorf("failed to delete admin: %w", err)
		}

		color.Green("✓ Admin %d deleted", id)
		return nil
	},
}
