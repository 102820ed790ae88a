// hap-cache is a CLI tool for inspecting and validating accessory cache files.
package main

import (
	"fmt"
	"os"

	"github.com/hap-bridge/accessory-go/cmd/hap-cache/commands"
)

const (
	exitSuccess      = 0
	exitCommandError = 1
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(exitCommandError)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	var exitCode int
	switch cmd {
	case "show":
		exitCode = commands.RunShow(args, os.Stdout, os.Stderr)
	case "validate":
		exitCode = commands.RunValidate(args, os.Stdout, os.Stderr)
	case "convert":
		exitCode = commands.RunConvert(args, os.Stdout, os.Stderr)
	case "help", "-h", "--help":
		printUsage()
		exitCode = exitSuccess
	case "version", "-v", "--version":
		fmt.Println("hap-cache version 0.1.0")
		exitCode = exitSuccess
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		printUsage()
		exitCode = exitCommandError
	}

	os.Exit(exitCode)
}

func printUsage() {
	fmt.Println(`hap-cache - accessory cache inspection tool

Usage:
  hap-cache <command> [options] <file>

Commands:
  show       Display cached accessories in various formats
  validate   Check cached accessories for identity and link problems
  convert    Convert a JSON cache file to YAML for review

Options:
  -h, --help     Show this help message
  -v, --version  Show version information

Examples:
  hap-cache show cachedAccessories.json
  hap-cache show --format json cachedAccessories.json
  hap-cache validate cachedAccessories.json
  hap-cache convert --output cache.yaml cachedAccessories.json`)
}
