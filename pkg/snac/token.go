// Package snac implements the token framing protocol used by Orpheus-style
// text-to-speech generation servers. The generation model emits its audio
// output as a stream of `<custom_token_N>` markers whose integer ids fold a
// SNAC codec layer and an intra-layer codebook index into a single flat id
// space. This package extracts those ids from raw generated text, validates
// them against the layered encoding scheme, and regroups them into the three
// residual code layers the vocoder consumes.
package snac

// Protocol constants. These are fixed parameters of the token encoding, not
// runtime configuration.
const (
	// MinTokenID is the smallest absolute id carrying an audio code; ids
	// below it are control markers.
	MinTokenID = 10

	// CodebookSize is the number of codes per codec layer.
	CodebookSize = 4096

	// FrameTokens is the number of consecutive tokens encoding one audio
	// time step, one per codec layer.
	FrameTokens = 7

	// MaxTokenID is the exclusive upper bound of the audio id range.
	MaxTokenID = MinTokenID + FrameTokens*CodebookSize

	// SampleRate is the output rate of the SNAC vocoder in Hz.
	SampleRate = 24000
)

// Token is an absolute audio token id drawn from the flat id space
// [MinTokenID, MaxTokenID). Layer and codebook index are recovered with
// fixed-radix arithmetic; this type is the only place that arithmetic lives.
type Token int

// Valid reports whether t lies inside the audio id range.
func (t Token) Valid() bool {
	return t >= MinTokenID && t < MaxTokenID
}

// Layer returns the codec layer index in [0, FrameTokens) encoded by t.
// Only meaningful when t.Valid().
func (t Token) Layer() int {
	return int(t-MinTokenID) / CodebookSize
}

// Code returns the intra-layer codebook index in [0, CodebookSize) encoded
// by t. Only meaningful when t.Valid().
func (t Token) Code() int {
	return int(t-MinTokenID) % CodebookSize
}

// EncodeToken folds a layer and codebook index back into an absolute id.
// It is the inverse of Layer/Code and exists mainly so tests and fixtures
// can build well-formed streams without repeating the radix arithmetic.
func EncodeToken(layer, code int) Token {
	return Token(MinTokenID + layer*CodebookSize + code)
}
