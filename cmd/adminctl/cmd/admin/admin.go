package admin

import (
	"github.com/spf13/cobra"
)

// AdminCmd - родительская команда для управления администраторами.
var AdminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Управление администраторами",
	Long:  `Просмотр, создание и удаление аккаунтов администраторов.`,
}
