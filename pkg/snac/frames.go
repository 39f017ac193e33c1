package snac

// Layers holds the three residual code sequences consumed by the SNAC
// vocoder. Lengths grow in the ratio 1:2:4 per valid frame: the hierarchical
// codec samples its coarse layer once per time step and the finer layers two
// and four times.
type Layers struct {
	Layer1 []int
	Layer2 []int
	Layer3 []int
}

// Frames returns the number of audio time steps the layers describe.
func (l Layers) Frames() int {
	return len(l.Layer1)
}

// Empty reports whether any layer ended up without codes. The vocoder
// requires all three to be non-empty.
func (l Layers) Empty() bool {
	return len(l.Layer1) == 0 || len(l.Layer2) == 0 || len(l.Layer3) == 0
}

// validFrame checks the layer-position invariant for one 7-token group: the
// token at position j must decode to layer j. The generation model emits
// layer-0 through layer-6 codes in strict order within each group; any
// mismatch invalidates the whole frame, partial frames are never salvaged.
func validFrame(frame []Token) bool {
	for j, t := range frame {
		if t.Layer() != j {
			return false
		}
	}

	return true
}

// RegroupFrames partitions tokens into 7-token frames, drops frames that
// violate the layer-position invariant, and scatters the surviving codes
// into the three vocoder layers. Trailing tokens past the last whole frame
// are never examined. Invalid frames are skipped individually; the stream is
// only rejected as a whole when no frame survives, which the caller detects
// via Layers.Empty.
func RegroupFrames(tokens []Token) Layers {
	numGroups := len(tokens) / FrameTokens

	var out Layers
	for i := 0; i < numGroups; i++ {
		frame := tokens[i*FrameTokens : (i+1)*FrameTokens]
		if !validFrame(frame) {
			continue
		}

		// Fixed scatter pattern of the hierarchical codec: positions
		// 0..6 feed layers 1,2,3,3,2,3,3 in this exact order.
		out.Layer1 = append(out.Layer1, frame[0].Code())
		out.Layer2 = append(out.Layer2, frame[1].Code())
		out.Layer3 = append(out.Layer3, frame[2].Code())
		out.Layer3 = append(out.Layer3, frame[3].Code())
		out.Layer2 = append(out.Layer2, frame[4].Code())
		out.Layer3 = append(out.Layer3, frame[5].Code())
		out.Layer3 = append(out.Layer3, frame[6].Code())
	}

	return out
}
