package cmd

import (
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"
)

// feedCmd represents the feed command
var feedCmd = &cobra.Command{
	Use:   "feed",
	Short: "Show the global post feed",
	Long:  `Fetch a page of recent posts. Requires SOCIALHUB_TOKEN from 'socialhub login'.`,
	Run: func(cmd *cobra.Command, args []string) {
		token := os.Getenv("SOCIALHUB_TOKEN")
		if token == "" {
			fmt.Println("Error: SOCIALHUB_TOKEN environment variable not set.")
			fmt.Println("Tip: run 'socialhub login' and export the returned token.")
			return
		}

		page, _ := cmd.Flags().GetInt("page")
		size, _ := cmd.Flags().GetInt("size")
		path := fmt.Sprintf("/posts?page=%d&size=%d", page, size)
		sendJSON(http.MethodGet, path, token, nil)
	},
}

func init() {
	feedCmd.Flags().Int("page", 0, "page number, starting at 0")
	feedCmd.Flags().Int("size", 10, "posts per page")
	rootCmd.AddCommand(feedCmd)
}
