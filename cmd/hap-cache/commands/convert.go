package commands

import (
	"flag"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ConvertOptions configures the convert command.
type ConvertOptions struct {
	Input  string
	Output string // Empty means stdout
}

// RunConvert runs the convert command. It rewrites a JSON cache file as
// YAML for human review.
func RunConvert(args []string, stdout, stderr io.Writer) int {
	opts, err := parseConvertArgs(args)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	if opts.Input == "" {
		fmt.Fprintln(stderr, "Error: no input file specified")
		printConvertUsage(stderr)
		return exitCommandError
	}

	records, err := loadRecords(opts.Input)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	data, err := yaml.Marshal(records)
	if err != nil {
		fmt.Fprintf(stderr, "Error encoding YAML: %v\n", err)
		return exitCommandError
	}

	if opts.Output == "" || opts.Output == "-" {
		fmt.Fprint(stdout, string(data))
	} else {
		if err := os.WriteFile(opts.Output, data, 0644); err != nil {
			fmt.Fprintf(stderr, "Error writing output: %v\n", err)
			return exitCommandError
		}
		fmt.Fprintf(stdout, "Converted %s -> %s\n", opts.Input, opts.Output)
	}

	return exitSuccess
}

func parseConvertArgs(args []string) (ConvertOptions, error) {
	opts := ConvertOptions{}

	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&opts.Output, "output", "", "output file (default stdout)")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	if fs.NArg() > 0 {
		opts.Input = fs.Arg(0)
	}
	return opts, nil
}

func printConvertUsage(w io.Writer) {
	fmt.Fprintln(w, `Usage: hap-cache convert [--output file.yaml] <file>`)
}
