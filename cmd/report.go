package cmd

import (
	"fmt"
	"io"

	"github.com/jsphweid/stradella/note"
	"github.com/jsphweid/stradella/resolve"
	"github.com/jsphweid/stradella/util"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Reports how well the buttons cover each chord type",
	Long:  `Resolves every chord type on every bass row root and summarizes the results.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := newResolver(newLogger(cmd.ErrOrStderr()))
		if err != nil {
			return err
		}
		report(cmd.OutOrStdout(), r)
		return nil
	},
}

type typeReport struct {
	name string
	// roots whose best combination misses nothing
	exact int
	// roots with at least one button but notes missing
	partial int
	// roots with no fitting button
	unmatched    int
	combinations []int
}

func analyzeTypes(r *resolve.Resolver) []typeReport {
	var res []typeReport
	for _, t := range r.Catalog() {
		tr := typeReport{name: t.Name}
		for _, root := range note.BassRow() {
			combos := r.Resolve(root, t)
			switch {
			case len(combos) == 0 || combos[0].IsFallback():
				tr.unmatched += 1
			case combos[0].MissingCount == 0:
				tr.exact += 1
				tr.combinations = append(tr.combinations, len(combos))
			default:
				tr.partial += 1
				tr.combinations = append(tr.combinations, len(combos))
			}
		}
		res = append(res, tr)
	}
	return res
}

func report(w io.Writer, r *resolve.Resolver) {
	reports := analyzeTypes(r)
	var exact, partial, unmatched int
	var total uint64
	for _, tr := range reports {
		fmt.Fprintf(w, "%-14s exact: %2d  partial: %2d  unmatched: %2d\n", tr.name, tr.exact, tr.partial, tr.unmatched)
		exact += tr.exact
		partial += tr.partial
		unmatched += tr.unmatched
		total += util.Sum(tr.combinations)
	}
	fmt.Fprintf(w, "chord types: %v\n", len(reports))
	fmt.Fprintf(w, "exact: %v partial: %v unmatched: %v\n", exact, partial, unmatched)
	fmt.Fprintf(w, "combinations found: %v\n", total)
}
