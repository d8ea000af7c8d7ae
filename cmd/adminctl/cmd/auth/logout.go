package auth

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"sessionvault/cmd/adminctl/cmd/types"
	"sessionvault/internal/app/client"
)

var LogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Удалить сохраненный токен",
	Long: `Удаляет локально сохраненный токен. Сервер выданные токены не
отзывает, токен остается валидным до истечения срока действия.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok {
			return fmt.Errorf("application is not initialized")
		}

		if err := app.Logout(); err != nil {
			return err
		}

		color.Green("✓ Local token removed")
		return nil
	},
}
