package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/kbukum/fcvec/audit"
)

// writeReport prints one line per scenario, the failures under each failed
// one, and a closing tally.
func writeReport(w io.Writer, report *audit.Report, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, res := range report.Results {
		fmt.Fprintf(tw, "%s\t%s/%s\t%s\t%s\n",
			strings.ToUpper(res.Status), res.Element, res.Scenario, res.Stats, res.Duration)
		for _, failure := range res.Failures {
			fmt.Fprintf(tw, "\t  %s\t\t\n", failure)
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	failed := len(report.Failed())
	_, err := fmt.Fprintf(w, "\nrun %s: %d scenarios, %d passed, %d failed, capacity %d, %s\n",
		report.RunID, len(report.Results), len(report.Results)-failed, failed, report.Capacity, report.Duration)
	return err
}
