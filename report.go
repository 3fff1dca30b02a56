package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	okMark   = color.New(color.FgGreen).SprintFunc()
	failMark = color.New(color.FgRed).SprintFunc()
	skipMark = color.New(color.FgYellow).SprintFunc()
)

// printSummary writes one line per article followed by totals and warnings
func printSummary(w io.Writer, result *SyncResult) {
	for _, res := range result.Results {
		switch res.Status {
		case StatusSuccess:
			fmt.Fprintf(w, "%s %s\n", okMark("✓"), res.Filename)
		case StatusError:
			fmt.Fprintf(w, "%s %s: %v\n", failMark("✗"), res.Slug, res.Error)
		case StatusSkipped:
			fmt.Fprintf(w, "%s %s (not eligible)\n", skipMark("-"), displayName(res))
		}
	}

	for _, warning := range result.Warnings {
		fmt.Fprintf(w, "%s %s\n", skipMark("!"), warning)
	}

	fmt.Fprintf(w, "\nFetched %d, written %d, skipped %d, failed %d\n",
		result.Fetched,
		result.Count(StatusSuccess),
		result.Count(StatusSkipped),
		result.Count(StatusError))
}

func displayName(res ProcessingResult) string {
	if res.Slug != "" {
		return res.Slug
	}
	if res.URL != "" {
		return res.URL
	}
	return "untitled article"
}

// printValidation writes the validation outcome of each file and returns the
// number of invalid files
func printValidation(w io.Writer, results []ValidationResult) int {
	invalid := 0
	for _, res := range results {
		if res.Error != nil {
			invalid++
			fmt.Fprintf(w, "%s %s: %v\n", failMark("✗"), res.Filename, res.Error)
			continue
		}
		fmt.Fprintf(w, "%s %s\n", okMark("✓"), res.Filename)
	}
	return invalid
}
