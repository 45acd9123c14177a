package cmd

import (
	"net/http"

	"github.com/spf13/cobra"
)

// loginCmd represents the login command
var loginCmd = &cobra.Command{
	Use:   "login [username] [password]",
	Short: "Log in and print an access token",
	Long:  `Log in through the user service. Export the returned token as SOCIALHUB_TOKEN for authenticated commands.`,
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		payload := map[string]string{
			"username": args[0],
			"password": args[1],
		}
		sendJSON(http.MethodPost, "/auth/login", "", payload)
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
}
