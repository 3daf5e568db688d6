package main

import (
	"fmt"
	"os"

	"github.com/cea-irfu-sap/classes-intro/cmd/cli"
)

const (
	exitErrorTemplateConstant = "%v\n"
)

// main executes the pulsarlab command-line application.
func main() {
	if executionError := cli.Execute(); executionError != nil {
		fmt.Fprintf(os.Stderr, exitErrorTemplateConstant, executionError)
		os.Exit(1)
	}
}
