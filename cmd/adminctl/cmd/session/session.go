package session

import (
	"github.com/spf13/cobra"
)

// SessionCmd - родительская команда для операций с присланными записями.
var SessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Управление присланными записями",
	Long:  `Просмотр, локальное кэширование и удаление session-записей.`,
}
