package main

import (
	"os"

	"org-tasks-sync/internal/cli"
)

var version = "dev"

func main() {
	os.Exit(cli.Execute(version))
}
