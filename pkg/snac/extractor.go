package snac

import (
	"regexp"
	"strconv"
)

// tokenMarker matches the literal marker shape the generation model emits.
// Anything between markers is ignored.
var tokenMarker = regexp.MustCompile(`<custom_token_(\d+)>`)

// ExtractTokens scans raw generated text for audio token markers and returns
// the ids that fall inside the valid audio range, in emission order. Order is
// semantically significant: it encodes the temporal audio frames.
//
// Malformed digit runs (overflow) and out-of-range ids are dropped silently;
// the model routinely emits control markers outside the audio range. An empty
// result is a normal outcome, not an error — the caller distinguishes "no
// audio tokens" from a failed extraction by length alone.
func ExtractTokens(text string) []Token {
	matches := tokenMarker.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}

	tokens := make([]Token, 0, len(matches))
	for _, m := range matches {
		id, err := strconv.Atoi(m[1])
		if err != nil {
			// Digits only by construction, so this is an overflow. Skip.
			continue
		}
		if t := Token(id); t.Valid() {
			tokens = append(tokens, t)
		}
	}

	return tokens
}
