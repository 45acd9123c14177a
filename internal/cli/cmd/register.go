package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/spf13/cobra"
)

// registerCmd represents the register command
var registerCmd = &cobra.Command{
	Use:   "register [username] [email] [password]",
	Short: "Register a new account",
	Long:  `Create a new SocialHub account through the user service.`,
	Args:  cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		payload := map[string]string{
			"username": args[0],
			"email":    args[1],
			"password": args[2],
		}
		sendJSON(http.MethodPost, "/auth/register", "", payload)
	},
}

func init() {
	rootCmd.AddCommand(registerCmd)
}

func sendJSON(method, path, token string, payload interface{}) {
	var body bytes.Buffer
	if payload != nil {
		if err := json.NewEncoder(&body).Encode(payload); err != nil {
			fmt.Printf("Error encoding request: %v\n", err)
			return
		}
	}

	req, err := http.NewRequest(method, baseURL()+path, &body)
	if err != nil {
		fmt.Printf("Error building request: %v\n", err)
		return
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		fmt.Printf("Error sending request: %v\n", err)
		return
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, raw, "", "  "); err == nil {
		fmt.Printf("[%s]\n%s\n", resp.Status, pretty.String())
	} else {
		fmt.Printf("[%s] %s\n", resp.Status, string(raw))
	}
}
