package session

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"sessionvault/cmd/adminctl/cmd/types"
	"sessionvault/internal/app/client"
	sessiondom "sessionvault/internal/domain/session"
)

var (
	listFormat string
	fromCache  bool
)

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "Список записей",
	Long: `Просмотр всех присланных записей, новые первыми.

С флагом --cached показывает локальную копию, снятую командой pull,
без похода на сервер.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok {
			return fmt.Errorf("application is not initialized")
		}

		var (
			records []sessiondom.Record
			err     error
		)
		if fromCache {
			records, err = app.CachedSessions()
		} else {
			records, err = app.ListSessions(cmd.Context())
		}
		if err != nil {
			return fmt.Errorf("failed to list sessions: %w", err)
		}

		switch listFormat {
		case "json":
			return printSessionsJSON(records)
		default:
			return printSessionsTable(records)
		}
	},
}

func printSessionsTable(records []sessiondom.Record) error {
	if len(records) == 0 {
		fmt.Println("No records found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "ID\tAccount\tToken\tIP\tCreated\t\n")
	fmt.Fprintf(w, "---\t---\t---\t---\t---\t\n")

	for _, rec := range records {
		token := "-"
		if rec.AccessToken != nil {
			token = truncate(*rec.AccessToken, 24)
		}
		ip := "-"
		if rec.IPAddress != nil {
			ip = *rec.IPAddress
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t\n",
			rec.ID,
			truncate(rec.AccountName, 30),
			token,
			ip,
			rec.CreatedAt.Format("2006-01-02 15:04"),
		)
	}

	w.Flush()
	fmt.Printf("\nTotal: %d\n", len(records))
	return nil
}

func printSessionsJSON(records []sessiondom.Record) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(records)
}

// truncate режет по рунам, чтобы не разорвать многобайтовый символ.
func truncate(s string, length int) string {
	runes := []rune(s)
	if len(runes) <= length {
		return s
	}
	return string(runes[:length-3]) + "..."
}

func init() {
	ListCmd.Flags().StringVarP(&listFormat, "format", "f", "table", "формат вывода (table, json)")
	ListCmd.Flags().BoolVar(&fromCache, "cached", false, "показать локальную копию вместо похода на сервер")
}
