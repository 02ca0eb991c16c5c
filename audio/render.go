package audio

import (
	"io"
	"math"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/wav"
	"github.com/jsphweid/stradella/model"
	"github.com/jsphweid/stradella/sample"
	"github.com/pkg/errors"
)

const SampleRate = beep.SampleRate(44100)

var Format = beep.Format{SampleRate: SampleRate, NumChannels: 2, Precision: 2}

func frequency(key uint8) float64 {
	return 440 * math.Pow(2, (float64(key)-69)/12)
}

// Tones mixes one sine voice per MIDI key. It never ends on its own.
func Tones(keys []uint8) beep.Streamer {
	freqs := make([]float64, 0, len(keys))
	for _, k := range keys {
		freqs = append(freqs, frequency(k))
	}
	amp := 0.8 / float64(len(keys))

	var pos int
	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		for i := range samples {
			t := float64(pos) / float64(SampleRate)
			var v float64
			for _, f := range freqs {
				v += math.Sin(2 * math.Pi * f * t)
			}
			v *= amp
			samples[i] = [2]float64{v, v}
			pos++
		}
		return len(samples), true
	})
}

// Render writes d of the combination's notes as a WAV file.
func Render(w io.WriteSeeker, c model.ButtonCombination, d time.Duration) error {
	keys, err := sample.Keys(c)
	if err != nil {
		return errors.Wrap(err, "could not render combination")
	}
	if err := wav.Encode(w, beep.Take(SampleRate.N(d), Tones(keys)), Format); err != nil {
		return errors.Wrap(err, "could not encode wav")
	}
	return nil
}

// ReadSamples decodes a WAV stream into mono samples.
func ReadSamples(r io.Reader) ([]float64, beep.Format, error) {
	stream, format, err := wav.Decode(r)
	if err != nil {
		return nil, format, errors.Wrap(err, "could not decode wav")
	}
	defer stream.Close()

	var res []float64
	buf := make([][2]float64, 512)
	for {
		n, ok := stream.Stream(buf)
		for _, s := range buf[:n] {
			res = append(res, (s[0]+s[1])/2)
		}
		if !ok {
			break
		}
	}
	if err := stream.Err(); err != nil {
		return nil, format, errors.Wrap(err, "could not read wav samples")
	}
	return res, format, nil
}
