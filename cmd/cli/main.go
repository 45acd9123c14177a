package main

import "github.com/azimmemon2002/socialhub/internal/cli/cmd"

func main() {
	cmd.Execute()
}
