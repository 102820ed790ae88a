package commands

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"

	"github.com/hap-bridge/accessory-go/pkg/cache"
	"github.com/hap-bridge/accessory-go/pkg/serialize"
)

const (
	exitSuccess      = 0
	exitCommandError = 1
	exitValidation   = 2
)

// ShowOptions configures the show command.
type ShowOptions struct {
	Format string // text, json
	File   string
}

// RunShow runs the show command.
func RunShow(args []string, stdout, stderr io.Writer) int {
	opts, err := parseShowArgs(args)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	if opts.File == "" {
		fmt.Fprintln(stderr, "Error: no file specified")
		printShowUsage(stderr)
		return exitCommandError
	}

	records, err := loadRecords(opts.File)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	switch opts.Format {
	case "json":
		data, _ := json.MarshalIndent(records, "", "  ")
		fmt.Fprintln(stdout, string(data))
	default:
		printShowText(stdout, opts.File, records)
	}

	return exitSuccess
}

func printShowText(w io.Writer, file string, records []*serialize.AccessoryRecord) {
	fmt.Fprintf(w, "File: %s\n", file)
	fmt.Fprintf(w, "Accessories: %d\n", len(records))

	for _, rec := range records {
		fmt.Fprintf(w, "\n%s (%s)\n", rec.DisplayName, rec.ID)
		fmt.Fprintf(w, "  Category: %s\n", rec.Category)
		if rec.Plugin != "" {
			fmt.Fprintf(w, "  Plugin:   %s\n", rec.Plugin)
		}
		if rec.Platform != "" {
			fmt.Fprintf(w, "  Platform: %s\n", rec.Platform)
		}
		for _, svc := range rec.Services {
			subtype := ""
			if svc.Subtype != "" {
				subtype = fmt.Sprintf(" subtype=%s", svc.Subtype)
			}
			fmt.Fprintf(w, "  Service %s (%s%s), %d characteristics, %d links\n",
				svc.DisplayName, svc.Type, subtype,
				len(svc.Characteristics),
				len(rec.LinkedServices[svc.Key()]))
		}
	}
}

func parseShowArgs(args []string) (ShowOptions, error) {
	opts := ShowOptions{}

	fs := flag.NewFlagSet("show", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&opts.Format, "format", "text", "output format (text, json)")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	if fs.NArg() > 0 {
		opts.File = fs.Arg(0)
	}
	return opts, nil
}

func printShowUsage(w io.Writer) {
	fmt.Fprintln(w, `Usage: hap-cache show [--format text|json] <file>`)
}

// loadRecords reads accessory records from a cache file.
func loadRecords(path string) ([]*serialize.AccessoryRecord, error) {
	records, err := cache.NewStore(path).Load()
	if err != nil {
		return nil, err
	}
	if records == nil {
		return nil, fmt.Errorf("no such cache file: %s", path)
	}
	return records, nil
}
