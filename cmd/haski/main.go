package main

import (
	"os"

	"github.com/ancavar/fp2023/pkg/cli"
)

func main() {
	os.Exit(cli.Execute(os.Args[1:], os.Stdout, os.Stderr))
}
