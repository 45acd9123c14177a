package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "socialhub",
	Short: "CLI client for SocialHub",
	Long:  "Talk to a SocialHub user service from the terminal.",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Hi! I'm the SocialHub CLI. Try 'socialhub help'")
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// baseURL resolves the user service address, defaulting to a local server.
func baseURL() string {
	if url := os.Getenv("SOCIALHUB_URL"); url != "" {
		return url
	}
	return "http://localhost:8080"
}
