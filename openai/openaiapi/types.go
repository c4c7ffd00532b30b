// Package openaiapi holds the OpenAI API wire types used by the openai
// provider: the speech endpoint and chat completions.
package openaiapi

// CreateSpeechRequest is the body of POST /v1/audio/speech.
type CreateSpeechRequest struct {
	// One of the available TTS models.
	Model string `json:"model"`
	// The text to generate audio for.
	Input string `json:"input"`
	// The voice to use when generating the audio.
	Voice string `json:"voice"`
	// The format to audio in. Supported formats are mp3, opus, aac, flac,
	// wav, and pcm. pcm is raw s16le samples, 24kHz, mono.
	ResponseFormat *string `json:"response_format,omitempty"`
	// The speed of the generated audio, from 0.25 to 4.0.
	Speed *float64 `json:"speed,omitempty"`
	// Control the voice of your generated audio with additional instructions.
	Instructions *string `json:"instructions,omitempty"`
	// The format to stream the audio in. Supported formats are sse and audio.
	StreamFormat *string `json:"stream_format,omitempty"`
}

// SpeechStreamEvent is one SSE event of a streamed speech response
// (stream_format=sse).
type SpeechStreamEvent struct {
	// "speech.audio.delta" or "speech.audio.done".
	Type string `json:"type"`
	// Base64-encoded audio chunk, present on delta events.
	Audio *string `json:"audio,omitempty"`
	// Token usage, present on the done event.
	Usage *SpeechUsage `json:"usage,omitempty"`
}

type SpeechUsage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
	TotalTokens  int `json:"total_tokens"`
}

// ChatCompletionRequest is the body of POST /v1/chat/completions, trimmed to
// the text-only surface used for lyrics generation.
type ChatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []ChatMessage `json:"messages"`
	Temperature *float64      `json:"temperature,omitempty"`
	// An upper bound for the number of tokens that can be generated for a
	// completion.
	MaxCompletionTokens *uint32 `json:"max_completion_tokens,omitempty"`
}

type ChatMessage struct {
	// "system", "user", or "assistant".
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatCompletionResponse struct {
	Choices []ChatCompletionChoice `json:"choices"`
	Usage   *ChatCompletionUsage   `json:"usage,omitempty"`
}

type ChatCompletionChoice struct {
	Message      ChatMessage `json:"message"`
	FinishReason *string     `json:"finish_reason,omitempty"`
}

type ChatCompletionUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}
