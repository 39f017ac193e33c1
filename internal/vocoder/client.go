package vocoder

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/edasprometai/Orpheus-app/pkg/audio"
	"github.com/edasprometai/Orpheus-app/pkg/snac"
)

// decodeRequest is the JSON body sent to the decode server.
type decodeRequest struct {
	Layer1 []int `json:"layer_1"`
	Layer2 []int `json:"layer_2"`
	Layer3 []int `json:"layer_3"`
}

// decodeResponse carries the synthesized waveform as base64 little-endian
// float32 samples.
type decodeResponse struct {
	Audio      string `json:"audio"`
	SampleRate int    `json:"sample_rate"`
}

// HTTPDecoder calls a remote SNAC decode server. It holds only an
// http.Client and is safe for concurrent use.
type HTTPDecoder struct {
	logger  *zap.Logger
	client  *http.Client
	baseURL string
}

// NewHTTPDecoder creates a Decoder talking to the decode server at baseURL.
func NewHTTPDecoder(logger *zap.Logger, baseURL string) *HTTPDecoder {
	return &HTTPDecoder{
		logger:  logger.Named("vocoder_client"),
		client:  &http.Client{},
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

// Decode posts the layer codes to the decode server and returns the
// reconstructed waveform.
func (d *HTTPDecoder) Decode(ctx context.Context, layers snac.Layers) ([]float32, error) {
	body, err := json.Marshal(decodeRequest{
		Layer1: layers.Layer1,
		Layer2: layers.Layer2,
		Layer3: layers.Layer3,
	})
	if err != nil {
		return nil, fmt.Errorf("vocoder: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.baseURL+"/decode", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("vocoder: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	d.logger.Debug("Sending decode request",
		zap.Int("frames", layers.Frames()),
		zap.Int("layer3Codes", len(layers.Layer3)),
	)

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("vocoder: decode request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 512))

		return nil, fmt.Errorf("vocoder: decode server returned %d: %s", resp.StatusCode, strings.TrimSpace(string(payload)))
	}

	var decoded decodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("vocoder: unmarshal response: %w", err)
	}

	raw, err := base64.StdEncoding.DecodeString(decoded.Audio)
	if err != nil {
		return nil, fmt.Errorf("vocoder: decode audio payload: %w", err)
	}
	if len(raw) == 0 || len(raw)%4 != 0 {
		return nil, fmt.Errorf("vocoder: audio payload has invalid length %d", len(raw))
	}

	samples := audio.LEToPCMFloat32(raw)
	d.logger.Debug("Decode response received",
		zap.Int("samples", len(samples)),
		zap.Int("sampleRate", decoded.SampleRate),
	)

	return samples, nil
}
