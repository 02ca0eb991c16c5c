package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jsphweid/stradella/constants"
	"github.com/jsphweid/stradella/layout"
	"github.com/jsphweid/stradella/model"
	"github.com/jsphweid/stradella/resolve"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	resolveLimit int
	resolveJSON  bool
	resolveGrid  bool
)

func init() {
	resolveCmd.Flags().IntVarP(&resolveLimit, "limit", "n", constants.MaxDisplayed, "combinations to show, 0 for all")
	resolveCmd.Flags().BoolVar(&resolveJSON, "json", false, "print combinations as JSON")
	resolveCmd.Flags().BoolVar(&resolveGrid, "grid", false, "draw the button grid below the table")
	rootCmd.AddCommand(resolveCmd)
}

var resolveCmd = &cobra.Command{
	Use:   "resolve <root> <type>",
	Short: "Lists button combinations for a chord",
	Long:  `Lists button combinations for a chord, e.g. "resolve C dim7".`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := newResolver(newLogger(cmd.ErrOrStderr()))
		if err != nil {
			return err
		}
		return printCombinations(cmd.OutOrStdout(), r, args[0], args[1], resolveLimit, resolveJSON, resolveGrid)
	},
}

func printCombinations(w io.Writer, r *resolve.Resolver, root string, name string, limit int, asJSON bool, grid bool) error {
	t, ok := r.Catalog().Find(name)
	if !ok {
		return errors.Errorf("unknown chord type %q", name)
	}
	combos := model.Displayed(r.Resolve(root, t), limit)

	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(combos), "could not encode combinations")
	}

	if err := layout.Table(w, root, t, combos); err != nil {
		return err
	}
	if grid && len(combos) > 0 {
		fmt.Fprintln(w)
		return layout.Render(w, combos)
	}
	return nil
}
