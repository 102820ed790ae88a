package commands

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"

	"github.com/hap-bridge/accessory-go/pkg/serialize"
)

// ValidateOptions configures the validate command.
type ValidateOptions struct {
	JSON  bool
	Files []string
}

// ValidationOutput is the per-file validation result.
type ValidationOutput struct {
	Valid       bool     `json:"valid"`
	Accessories int      `json:"accessories"`
	Errors      []string `json:"errors,omitempty"`
	Warnings    []string `json:"warnings,omitempty"`
}

// RunValidate runs the validate command.
func RunValidate(args []string, stdout, stderr io.Writer) int {
	opts, err := parseValidateArgs(args)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	if len(opts.Files) == 0 {
		fmt.Fprintln(stderr, "Error: no files specified")
		printValidateUsage(stderr)
		return exitCommandError
	}

	hasErrors := false
	results := make(map[string]*ValidationOutput)

	for _, file := range opts.Files {
		result := validateFile(file)
		results[file] = result

		if !result.Valid {
			hasErrors = true
		}

		if !opts.JSON {
			printValidationResult(stdout, file, result)
		}
	}

	if opts.JSON {
		data, _ := json.MarshalIndent(results, "", "  ")
		fmt.Fprintln(stdout, string(data))
	}

	if hasErrors {
		return exitValidation
	}
	return exitSuccess
}

func validateFile(path string) *ValidationOutput {
	out := &ValidationOutput{Valid: true}

	records, err := loadRecords(path)
	if err != nil {
		out.Valid = false
		out.Errors = append(out.Errors, err.Error())
		return out
	}
	out.Accessories = len(records)

	seenIDs := make(map[string]bool)
	for _, rec := range records {
		out.collect(rec, seenIDs)
	}
	return out
}

// collect validates one record in place.
func (out *ValidationOutput) collect(rec *serialize.AccessoryRecord, seenIDs map[string]bool) {
	label := rec.DisplayName
	if label == "" {
		label = rec.ID
	}

	if seenIDs[rec.ID] {
		out.Valid = false
		out.Errors = append(out.Errors, fmt.Sprintf("%s: duplicate accessory UUID %s", label, rec.ID))
	}
	seenIDs[rec.ID] = true

	// Reconstruction catches empty names and malformed UUIDs.
	if _, err := serialize.Deserialize(rec); err != nil {
		out.Valid = false
		out.Errors = append(out.Errors, fmt.Sprintf("%s: %v", label, err))
		return
	}

	// Duplicate composite service keys corrupt linked-service resolution.
	keys := make(map[string]bool, len(rec.Services))
	for _, svc := range rec.Services {
		key := svc.Key()
		if keys[key] {
			out.Valid = false
			out.Errors = append(out.Errors, fmt.Sprintf("%s: duplicate service identity %s", label, key))
		}
		keys[key] = true
	}

	// Stale link keys are tolerated at load time but worth surfacing.
	for source, targets := range rec.LinkedServices {
		if !keys[source] {
			out.Warnings = append(out.Warnings, fmt.Sprintf("%s: linked-service source %s not in services", label, source))
		}
		for _, target := range targets {
			if !keys[target] {
				out.Warnings = append(out.Warnings, fmt.Sprintf("%s: stale link %s -> %s", label, source, target))
			}
		}
	}
}

func printValidationResult(w io.Writer, file string, result *ValidationOutput) {
	if result.Valid {
		fmt.Fprintf(w, "%s: OK (%d accessories)\n", file, result.Accessories)
	} else {
		fmt.Fprintf(w, "%s: INVALID\n", file)
	}
	for _, e := range result.Errors {
		fmt.Fprintf(w, "  error: %s\n", e)
	}
	for _, warning := range result.Warnings {
		fmt.Fprintf(w, "  warning: %s\n", warning)
	}
}

func parseValidateArgs(args []string) (ValidateOptions, error) {
	opts := ValidateOptions{}

	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.BoolVar(&opts.JSON, "json", false, "emit JSON results")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	opts.Files = fs.Args()
	return opts, nil
}

func printValidateUsage(w io.Writer) {
	fmt.Fprintln(w, `Usage: hap-cache validate [--json] <file>...`)
}
