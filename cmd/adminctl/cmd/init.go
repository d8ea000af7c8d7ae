package cmd

import (
	adminsub "sessionvault/cmd/adminctl/cmd/admin"
	"sessionvault/cmd/adminctl/cmd/auth"
	sessionsub "sessionvault/cmd/adminctl/cmd/session"
)

func init() {
	rootCmd.AddCommand(auth.LoginCmd)
	rootCmd.AddCommand(auth.LogoutCmd)
	rootCmd.AddCommand(statusCmd)

	rootCmd.AddCommand(sessionsub.SessionCmd)
	sessionsub.SessionCmd.AddCommand(sessionsub.ListCmd)
	sessionsub.SessionCmd.AddCommand(sessionsub.PullCmd)
	sessionsub.SessionCmd.AddCommand(sessionsub.DeleteCmd)

	rootCmd.AddCommand(adminsub.AdminCmd)
	adminsub.AdminCmd.AddCommand(adminsub.ListCmd)
	adminsub.AdminCmd.AddCommand(adminsub.CreateCmd)
	adminsub.AdminCmd.AddCommand(adminsub.DeleteCmd)
}
