package admin

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"sessionvault/cmd/adminctl/cmd/types"
	"sessionvault/internal/app/client"
)

var CreateCmd = &cobra.Command{
	Use:   "create [email]",
	Short: "Создать администратора",
	Long:  `Создает новый аккаунт администратора. Пароль запрашивается интерактивно.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok {
			return fmt.Errorf("application is not initialized")
		}

		email := args[0]

		fmt.Print("Password: ")
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			return fmt.Errorf("read password: %w", err)
		}
		fmt.Println()

		fmt.Print("Repeat password: ")
		passwordConfirm, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			return fmt.Errorf("read password: %w", err)
		}
		fmt.Println()

		if string(password) != string(passwordConfirm) {
			return fmt.Errorf("passwords do not match")
		}

		account, err := app.CreateAdmin(cmd.Context(), email, string(password))
		if err != nil {
			return fmt.Errorf("failed to create admin: %w", err)
		}

		color.Green("✓ Created admin %s (id %d)", account.Email, account.ID)
		return nil
	},
}
