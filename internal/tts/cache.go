package tts

import (
	"crypto/sha256"
	"encoding/hex"

	lru "github.com/hashicorp/golang-lru/v2"
)

// ClipCache holds recently synthesized clips keyed by voice and text, so
// repeated prompts skip the generation and decode round trips entirely.
type ClipCache struct {
	*lru.Cache[string, *Clip]
}

// NewClipCache creates a ClipCache with the given size.
// The size parameter determines the maximum number of clips the cache can hold.
func NewClipCache(size int) (*ClipCache, error) {
	lruCache, err := lru.New[string, *Clip](size)
	if err != nil {
		return nil, err
	}

	return &ClipCache{Cache: lruCache}, nil
}

// Get looks up the clip for a voice/text pair.
func (c *ClipCache) Get(voice, text string) (*Clip, bool) {
	return c.Cache.Get(clipKey(voice, text))
}

// Add stores the clip for a voice/text pair.
func (c *ClipCache) Add(voice, text string, clip *Clip) {
	c.Cache.Add(clipKey(voice, text), clip)
}

// clipKey hashes the pair so arbitrarily long prompts stay cheap keys.
func clipKey(voice, text string) string {
	sum := sha256.Sum256([]byte(voice + "\x00" + text))

	return hex.EncodeToString(sum[:])
}
