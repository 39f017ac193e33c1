package audio

// Format constants shared by the synthesis pipeline and the playback and
// file sinks.
const (
	// Vocoder output.
	VocoderSampleRate = 24_000 // Hz
	VocoderChannels   = 1      // mono

	// PCM packaging.
	BitsPerSample  = 16
	BytesPerSample = BitsPerSample / 8

	// FullScale is the peak magnitude of a 16-bit signed sample.
	FullScale = 32767
)
