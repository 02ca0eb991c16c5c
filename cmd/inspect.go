package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jsphweid/stradella/audio"
	"github.com/jsphweid/stradella/chord"
	"github.com/jsphweid/stradella/midi"
	"github.com/jsphweid/stradella/note"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// share of the strongest pitch class a class needs to count as sounding
const chromaThreshold = 0.3

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Names the chord in a MIDI or WAV file",
	Long:  `Reads the notes of a .mid or .wav file and lists the chord types they spell.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := newResolver(newLogger(cmd.ErrOrStderr()))
		if err != nil {
			return err
		}
		pcs, err := readPitchClasses(args[0])
		if err != nil {
			return err
		}
		inspect(cmd.OutOrStdout(), r.Catalog(), pcs)
		return nil
	},
}

func readPitchClasses(path string) (note.Set, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mid", ".midi":
		s, err := midi.ReadMidiFile(path)
		if err != nil {
			return note.Set{}, err
		}
		var pcs note.Set
		for _, key := range midi.NoteKeys(s) {
			pcs.Add(int(key))
		}
		return pcs, nil
	case ".wav":
		f, err := os.Open(path)
		if err != nil {
			return note.Set{}, errors.Wrap(err, "could not open wav file")
		}
		defer f.Close()
		samples, format, err := audio.ReadSamples(f)
		if err != nil {
			return note.Set{}, err
		}
		return audio.PitchClasses(audio.Chroma(samples, int(format.SampleRate)), chromaThreshold), nil
	default:
		return note.Set{}, errors.Errorf("unsupported file type %q", filepath.Ext(path))
	}
}

func inspect(w io.Writer, c chord.Catalog, pcs note.Set) {
	fmt.Fprintf(w, "notes: %s\n", note.Format(pcs.Names()))
	matches := c.Identify(pcs)
	if len(matches) == 0 {
		fmt.Fprintln(w, "no matching chord type")
		return
	}
	for _, m := range matches {
		fmt.Fprintf(w, "%s%s\t%s\n", note.Name(m.Root), m.Type.Name, m.Type.FullName)
	}
}
