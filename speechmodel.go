package voxkit

import "context"

// SpeechModel synthesizes spoken audio from text using a hosted
// generative model.
type SpeechModel interface {
	Provider() ProviderName
	ModelID() string
	Synthesize(ctx context.Context, input *SpeechInput) (*SpeechResponse, error)
	SynthesizeStream(ctx context.Context, input *SpeechInput) (*SpeechStream, error)
}

// LyricsModel generates song lyrics from a theme. The resulting text can be
// fed back into a SpeechModel.
type LyricsModel interface {
	Provider() ProviderName
	ModelID() string
	GenerateLyrics(ctx context.Context, input *LyricsInput) (*LyricsResponse, error)
}
