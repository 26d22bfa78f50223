// Package main is the entry point for company-manager CLI.
package main

import (
	"os"

	"github.com/pigeonworks-llc/company-manager/cmd/company-manager/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
