package admin

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"sessionvault/cmd/adminctl/cmd/types"
	"sessionvault/internal/app/client"
)

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "Список администраторов",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok {
			return fmt.Errorf("application is not initialized")
		}

		admins, err := app.ListAdmins(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list admins: %w", err)
		}

		if len(admins) == 0 {
			fmt.Println("No administrators found")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "ID\tEmail\tCreated\t\n")
		fmt.Fprintf(w, "---\t---\t---\t\n")
		for _, acc := range admins {
			fmt.Fprintf(w, "%d\t%s\t%s\t\n", acc.ID, acc.Email, acc.CreatedAt.Format("2006-01-02 15:04"))
		}
		w.Flush()

		return nil
	},
}
