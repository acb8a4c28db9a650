package main

import (
	"fmt"
	"os"

	"github.com/lyraproj/locator/cli"
)

func main() {
	cmd := cli.NewCommand()
	err := cmd.Execute()
	if err != nil {
		fmt.Fprintln(cmd.OutOrStderr(), err)
		os.Exit(1)
	}
}
