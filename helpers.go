package voxkit

// NewSpeechInput creates a new speech input with the given text
func NewSpeechInput(text string, opts ...SpeechInputOption) *SpeechInput {
	input := &SpeechInput{
		Text: text,
	}

	for _, opt := range opts {
		opt(input)
	}

	return input
}

type SpeechInputOption func(*SpeechInput)

func WithVoice(voice string) SpeechInputOption {
	return func(i *SpeechInput) {
		i.Voice = &voice
	}
}

func WithLanguageCode(languageCode string) SpeechInputOption {
	return func(i *SpeechInput) {
		i.LanguageCode = &languageCode
	}
}

func WithFormat(format AudioFormat) SpeechInputOption {
	return func(i *SpeechInput) {
		i.Format = &format
	}
}

func WithSampleRate(sampleRate int) SpeechInputOption {
	return func(i *SpeechInput) {
		i.SampleRate = &sampleRate
	}
}

func WithSpeed(speed float64) SpeechInputOption {
	return func(i *SpeechInput) {
		i.Speed = &speed
	}
}

func WithInstructions(instructions string) SpeechInputOption {
	return func(i *SpeechInput) {
		i.Instructions = &instructions
	}
}

// NewLyricsInput creates a new lyrics input with the given theme
func NewLyricsInput(theme string, opts ...LyricsInputOption) *LyricsInput {
	input := &LyricsInput{
		Theme: theme,
	}

	for _, opt := range opts {
		opt(input)
	}

	return input
}

type LyricsInputOption func(*LyricsInput)

func WithStyle(style string) LyricsInputOption {
	return func(i *LyricsInput) {
		i.Style = &style
	}
}

func WithSystemPrompt(systemPrompt string) LyricsInputOption {
	return func(i *LyricsInput) {
		i.SystemPrompt = &systemPrompt
	}
}

func WithTemperature(temperature float64) LyricsInputOption {
	return func(i *LyricsInput) {
		i.Temperature = &temperature
	}
}

func WithMaxTokens(maxTokens uint32) LyricsInputOption {
	return func(i *LyricsInput) {
		i.MaxTokens = &maxTokens
	}
}
