package cmd

import (
	"os"
	"time"

	"github.com/jsphweid/stradella/audio"
	"github.com/jsphweid/stradella/midi"
	"github.com/jsphweid/stradella/model"
	"github.com/jsphweid/stradella/resolve"
	"github.com/jsphweid/stradella/sample"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	exportIndex    int
	exportMidi     string
	exportWav      string
	exportDuration time.Duration
)

func init() {
	exportCmd.Flags().IntVarP(&exportIndex, "index", "i", 0, "rank of the combination to export, from 0")
	exportCmd.Flags().StringVar(&exportMidi, "midi", "", "write a MIDI file here")
	exportCmd.Flags().StringVar(&exportWav, "wav", "", "write a WAV file here")
	exportCmd.Flags().DurationVar(&exportDuration, "duration", 2*time.Second, "length of the WAV file")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export <root> <type>",
	Short: "Writes a combination as MIDI or WAV",
	Long:  `Writes one combination for a chord as a MIDI file, a WAV file or both.`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger(cmd.ErrOrStderr())
		r, err := newResolver(logger)
		if err != nil {
			return err
		}
		c, err := pickCombination(r, args[0], args[1], exportIndex)
		if err != nil {
			return err
		}
		if exportMidi == "" && exportWav == "" {
			return errors.New("nothing to export, pass --midi or --wav")
		}
		if exportMidi != "" {
			if err := exportMidiFile(exportMidi, c); err != nil {
				return err
			}
			logger.Info("wrote midi file", "path", exportMidi)
		}
		if exportWav != "" {
			if err := exportWavFile(exportWav, c, exportDuration); err != nil {
				return err
			}
			logger.Info("wrote wav file", "path", exportWav)
		}
		return nil
	},
}

func pickCombination(r *resolve.Resolver, root string, name string, index int) (model.ButtonCombination, error) {
	combos := r.ResolveName(root, name)
	if len(combos) == 0 {
		return model.ButtonCombination{}, errors.Errorf("no buttons for %s %s", root, name)
	}
	if index < 0 || index >= len(combos) {
		return model.ButtonCombination{}, errors.Errorf("index %d out of range, %d combinations", index, len(combos))
	}
	return combos[index], nil
}

func exportMidiFile(path string, c model.ButtonCombination) error {
	s, err := sample.Create(c)
	if err != nil {
		return err
	}
	return midi.WriteMidiFile(path, s)
}

func exportWavFile(path string, c model.ButtonCombination, d time.Duration) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "could not create wav file")
	}
	defer f.Close()
	return audio.Render(f, c, d)
}
