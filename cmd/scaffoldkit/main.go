// Command scaffoldkit generates Swift package projects whose sources, asset
// catalogs and build manifests agree on every name.
package main

import (
	"os"

	"github.com/NielsdaWheelz/scaffoldkit/internal/cli"
	"github.com/NielsdaWheelz/scaffoldkit/internal/errors"
)

func main() {
	err := cli.Run(os.Args[1:], os.Stdout, os.Stderr)
	if err != nil {
		errors.Print(os.Stderr, err)
		os.Exit(errors.ExitCode(err))
	}
}
