package session

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"sessionvault/cmd/adminctl/cmd/types"
	"sessionvault/internal/app/client"
)

var PullCmd = &cobra.Command{
	Use:   "pull",
	Short: "Скачать записи в локальный кэш",
	Long: `Скачивает все записи с сервера в локальную sqlite-базу.

Закэшированные записи доступны через "session list --cached" даже без
соединения с сервером.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok {
			return fmt.Errorf("application is not initialized")
		}

		n, err := app.PullSessions(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to pull sessions: %w", err)
		}

		color.Green("✓ Pulled %d record(s) into local cache", n)
		return nil
	},
}
