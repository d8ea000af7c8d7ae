package auth

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"sessionvault/cmd/adminctl/cmd/types"
	"sessionvault/internal/app/client"
)

var LoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Войти как администратор",
	Long: `Аутентификация на сервере SessionVault.

После входа токен сохраняется локально и используется всеми командами.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok {
			return fmt.Errorf("application is not initialized")
		}

		fmt.Print("Email: ")
		var email string
		_, _ = fmt.Scanln(&email)

		fmt.Print("Password: ")
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			return fmt.Errorf("read password: %w", err)
		}
		fmt.Println()

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		account, err := app.Login(ctx, email, string(password))
		if err != nil {
			return fmt.Errorf("authentication failed: %w", err)
		}

		color.Green("✓ Logged in as %s", account)
		return nil
	},
}
