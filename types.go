package voxkit

import "github.com/voxkit/voxkit-go/utils/stream"

// AudioFormat loosely describes audio format. Some values (e.g., 'wav') denote
// containers; others (e.g., 'linear16') specify encoding only.
type AudioFormat string

const (
	AudioFormatWav      AudioFormat = "wav"
	AudioFormatMP3      AudioFormat = "mp3"
	AudioFormatLinear16 AudioFormat = "linear16"
	AudioFormatFLAC     AudioFormat = "flac"
	AudioFormatMulaw    AudioFormat = "mulaw"
	AudioFormatAlaw     AudioFormat = "alaw"
	AudioFormatAAC      AudioFormat = "aac"
	AudioFormatOpus     AudioFormat = "opus"
)

type ProviderName string

// SpeechInput describes a speech synthesis request.
type SpeechInput struct {
	// Text is the content to speak.
	Text string `json:"text"`
	// Voice selects a provider-specific prebuilt voice.
	Voice *string `json:"voice,omitempty"`
	// LanguageCode hints the language of the text (e.g. "en-US").
	LanguageCode *string `json:"language_code,omitempty"`
	// Format requests an output encoding. Providers that cannot honor it
	// return an unsupported error instead of silently converting.
	Format *AudioFormat `json:"format,omitempty"`
	// SampleRate requests an output sample rate in Hz.
	SampleRate *int `json:"sample_rate,omitempty"`
	// Speed adjusts the speaking rate where supported (1.0 = normal).
	Speed *float64 `json:"speed,omitempty"`
	// Instructions steer delivery (tone, accent) where supported.
	Instructions *string `json:"instructions,omitempty"`
}

// AudioOutput is a synthesized clip as returned by a provider. AudioData stays
// base64-encoded; decoding happens at each consumer (playback, WAV download)
// so the same string can be decoded independently by both.
type AudioOutput struct {
	AudioData  string      `json:"audio_data"`
	Format     AudioFormat `json:"format"`
	SampleRate *int        `json:"sample_rate,omitempty"`
	Channels   *int        `json:"channels,omitempty"`
	Transcript *string     `json:"transcript,omitempty"`
}

// SpeechResponse is the result of a synthesis call.
type SpeechResponse struct {
	Audio AudioOutput `json:"audio"`
	Usage *ModelUsage `json:"usage,omitempty"`
}

// AudioDelta is an incremental chunk of a streamed synthesis.
type AudioDelta struct {
	AudioData  *string      `json:"audio_data,omitempty"`
	Format     *AudioFormat `json:"format,omitempty"`
	SampleRate *int         `json:"sample_rate,omitempty"`
	Channels   *int         `json:"channels,omitempty"`
	Transcript *string      `json:"transcript,omitempty"`
}

// PartialSpeechResponse is one element of a synthesis stream.
type PartialSpeechResponse struct {
	Delta *AudioDelta `json:"delta,omitempty"`
	Usage *ModelUsage `json:"usage,omitempty"`
}

// SpeechStream is a pull-based stream of partial synthesis responses.
type SpeechStream = stream.Stream[*PartialSpeechResponse]

// LyricsInput describes a lyrics generation request.
type LyricsInput struct {
	// Theme is what the song should be about.
	Theme string `json:"theme"`
	// Style hints a musical style or mood (e.g. "folk ballad").
	Style *string `json:"style,omitempty"`
	// SystemPrompt overrides the default lyricist instruction.
	SystemPrompt *string  `json:"system_prompt,omitempty"`
	Temperature  *float64 `json:"temperature,omitempty"`
	MaxTokens    *uint32  `json:"max_tokens,omitempty"`
}

// LyricsResponse is the result of a lyrics generation call. Lyrics is plain
// text suitable for piping straight into SpeechInput.Text.
type LyricsResponse struct {
	Lyrics string      `json:"lyrics"`
	Usage  *ModelUsage `json:"usage,omitempty"`
}

// ModelUsage represents token usage statistics of a provider call.
type ModelUsage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
}

// Add accumulates another usage into this one.
func (u *ModelUsage) Add(other *ModelUsage) {
	if other == nil {
		return
	}
	u.InputTokens += other.InputTokens
	u.OutputTokens += other.OutputTokens
}
