package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/jsphweid/stradella/chord"
	"github.com/spf13/cobra"
)

var chordsAliases bool

func init() {
	chordsCmd.Flags().BoolVar(&chordsAliases, "aliases", false, "show types sounding the same notes")
	rootCmd.AddCommand(chordsCmd)
}

var chordsCmd = &cobra.Command{
	Use:   "chords [filter]",
	Short: "Lists chord types",
	Long:  `Lists chord types, optionally only those whose names contain filter.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := newResolver(newLogger(cmd.ErrOrStderr()))
		if err != nil {
			return err
		}
		var filter string
		if len(args) == 1 {
			filter = args[0]
		}
		listChords(cmd.OutOrStdout(), r.Catalog(), filter, chordsAliases)
		return nil
	},
}

func listChords(w io.Writer, c chord.Catalog, filter string, aliases bool) {
	for _, t := range c.Filter(filter) {
		fmt.Fprintf(w, "%-14s %-14s %-22s %v\n", t.Name, t.AltName, t.FullName, t.Intervals)
		if aliases {
			if same := c.Aliases(t.Name); len(same) > 0 {
				fmt.Fprintf(w, "    same as: %s\n", strings.Join(same, ", "))
			}
		}
	}
}
