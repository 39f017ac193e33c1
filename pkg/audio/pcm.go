// Package audio provides PCM packaging and container helpers for the
// synthesis pipeline: float waveform to 16-bit PCM conversion, raw
// little-endian byte views, and WAV encoding.
package audio

import (
	"bytes"
	"encoding/binary"
	"math"
)

// silenceEpsilon is the peak magnitude below which a float waveform is
// treated as silence instead of being normalized up to full scale.
const silenceEpsilon = 1e-8

// PackPCM16 quantizes a float waveform of arbitrary scale into 16-bit
// signed samples. The waveform is peak-normalized: the vocoder's output
// scale is not contractually fixed, so scaling by the observed peak is the
// only policy that neither clips loud output nor buries quiet output. A
// waveform whose peak is below epsilon yields an all-zero buffer of the
// same length rather than dividing by (near) zero.
func PackPCM16(samples []float32) []int16 {
	out := make([]int16, len(samples))
	if len(samples) == 0 {
		return out
	}

	var maxAbs float64
	for _, s := range samples {
		if a := math.Abs(float64(s)); a > maxAbs {
			maxAbs = a
		}
	}
	if maxAbs < silenceEpsilon {
		return out
	}

	scale := FullScale / maxAbs
	for i, s := range samples {
		v := math.Round(float64(s) * scale)
		switch {
		case v > math.MaxInt16:
			out[i] = math.MaxInt16
		case v < math.MinInt16:
			out[i] = math.MinInt16
		default:
			out[i] = int16(v)
		}
	}

	return out
}

// PCMInt16ToLE converts int16 samples to raw little-endian bytes.
func PCMInt16ToLE(samples []int16) []byte {
	var buf bytes.Buffer
	_ = binary.Write(&buf, binary.LittleEndian, samples)
	return buf.Bytes()
}

// LEToPCMInt16 converts raw little-endian bytes back to int16 samples.
func LEToPCMInt16(b []byte) []int16 {
	out := make([]int16, len(b)/2)
	_ = binary.Read(bytes.NewReader(b), binary.LittleEndian, &out)
	return out
}

// LEToPCMFloat32 converts raw little-endian bytes to float32 samples, the
// wire format the vocoder server returns.
func LEToPCMFloat32(b []byte) []float32 {
	out := make([]float32, len(b)/4)
	_ = binary.Read(bytes.NewReader(b), binary.LittleEndian, &out)
	return out
}
