package cmd

import (
	"io"
	"log/slog"

	"github.com/jsphweid/stradella/chord"
	"github.com/jsphweid/stradella/constants"
	"github.com/jsphweid/stradella/resolve"
	"github.com/spf13/cobra"
)

var (
	catalogPath     string
	shiftedFallback bool
	verbose         bool
)

var rootCmd = &cobra.Command{
	Use:   "stradella",
	Short: "Stradella bass chord finder",
	Long: `Finds which bass, counterbass and chord buttons of a Stradella
accordion approximate a chord, including combinations missing some notes.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", constants.GetCatalogPath(),
		"JSON chord catalog to use instead of the built-in one")
	rootCmd.PersistentFlags().BoolVar(&shiftedFallback, "shifted-fallback", constants.UseShiftedFallback(),
		"compute no-match buttons from the chord raised a semitone")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every button considered")
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func newLogger(w io.Writer) *slog.Logger {
	level := constants.GetLogLevel()
	if verbose {
		level = slog.LevelDebug
	}
	return NewLogger(w, level)
}

func newResolver(logger *slog.Logger) (*resolve.Resolver, error) {
	opts := []resolve.Option{resolve.WithLogger(logger)}
	if catalogPath != "" {
		c, err := chord.LoadCatalogFile(catalogPath)
		if err != nil {
			return nil, err
		}
		logger.Debug("loaded chord catalog", "path", catalogPath, "types", len(c))
		opts = append(opts, resolve.WithCatalog(c))
	}
	if shiftedFallback {
		opts = append(opts, resolve.WithShiftedFallback())
	}
	return resolve.New(opts...), nil
}
