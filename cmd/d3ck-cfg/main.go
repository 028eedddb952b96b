// Package main provides the entry point for d3ck-cfg.
//
// d3ck-cfg resolves configuration from cfg.json files exactly as a
// program using pkg/cfg would and prints the result, which makes it the
// tool for checking what a deployment will see:
//
//	d3ck-cfg --stage prod show
//	d3ck-cfg -d /etc/app get webHost
//	d3ck-cfg -V files
package main

import (
	"fmt"
	"os"

	"github.com/d3ck-org/d3ck-cfg/internal/cli/command"
)

func main() {
	app := command.App()

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
