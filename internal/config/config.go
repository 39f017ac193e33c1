package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// ChatConfig stores chat-completion API specific configurations.
type ChatConfig struct {
	APIKey       string `yaml:"api_key"`
	BaseURL      string `yaml:"base_url"`
	Model        string `yaml:"model"`
	SystemPrompt string `yaml:"system_prompt"`
	HistorySize  int    `yaml:"history_size"`
}

// TTSConfig stores the token-generation TTS server configurations.
type TTSConfig struct {
	BaseURL       string `yaml:"base_url"`
	APIKey        string `yaml:"api_key"`
	Model         string `yaml:"model"`
	Voice         string `yaml:"voice"`
	MaxTokens     int    `yaml:"max_tokens"`
	ClipCacheSize int    `yaml:"clip_cache_size"`
}

// VocoderConfig stores the SNAC decode server configurations.
type VocoderConfig struct {
	BaseURL string `yaml:"base_url"`
}

// STTConfig stores the speech-to-text transcription configurations.
type STTConfig struct {
	Model string `yaml:"model"`
}

// AudioConfig stores playback and file-output configurations.
type AudioConfig struct {
	Playback bool   `yaml:"playback"`
	SaveDir  string `yaml:"save_dir"`
}

// Config stores the application configuration.
type Config struct {
	Chat     ChatConfig    `yaml:"chat"`
	TTS      TTSConfig     `yaml:"tts"`
	Vocoder  VocoderConfig `yaml:"vocoder"`
	STT      STTConfig     `yaml:"stt"`
	Audio    AudioConfig   `yaml:"audio"`
	LogLevel string        `yaml:"log_level"`
}

// LoadConfig loads the configuration from the given file path.
func LoadConfig(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	var cfg Config
	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}
