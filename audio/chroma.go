package audio

import (
	"math"
	"math/cmplx"
	"sort"

	"github.com/jsphweid/stradella/note"
	"github.com/jsphweid/stradella/util"
	"github.com/mjibson/go-dsp/fft"
	"github.com/mjibson/go-dsp/window"
)

const (
	maxFrame = 1 << 15
	minFreq  = 30
	maxFreq  = 5000
)

// Chroma folds the spectrum of the first frame of samples onto the twelve
// pitch classes. The strongest class is 1.
func Chroma(samples []float64, rate int) [12]float64 {
	var res [12]float64
	n := util.Min(len(samples), maxFrame)
	if n == 0 || rate <= 0 {
		return res
	}

	frame := append([]float64(nil), samples[:n]...)
	window.Apply(frame, window.Hann)
	spectrum := fft.FFTReal(frame)

	for k := 1; k < n/2; k++ {
		f := float64(k) * float64(rate) / float64(n)
		if f < minFreq || f > maxFreq {
			continue
		}
		key := 69 + 12*math.Log2(f/440)
		mag := cmplx.Abs(spectrum[k])
		res[note.Mod12(int(math.Round(key)))] += mag * mag
	}

	var peak float64
	for _, v := range res {
		peak = math.Max(peak, v)
	}
	if peak > 0 {
		for i := range res {
			res[i] /= peak
		}
	}
	return res
}

// PitchClasses returns the classes at or above threshold, strongest first.
func PitchClasses(chroma [12]float64, threshold float64) note.Set {
	var order []note.PitchClass
	for pc, v := range chroma {
		if v >= threshold {
			order = append(order, pc)
		}
	}
	sort.SliceStable(order, func(i, j int) bool {
		return chroma[order[i]] > chroma[order[j]]
	})
	return note.Normalize(order)
}
