// Package googleapi holds the Gemini API wire types used by the google
// provider. Field shapes follow the generative language API reference.
package googleapi

// Config for models.generate_content parameters.
type GenerateContentParameters struct {
	// ID of the model to use.
	Model string `json:"model"`
	// Content of the request.
	Contents []Content `json:"contents"`
	// Instructions for the model to steer it toward better performance.
	SystemInstruction *Content               `json:"systemInstruction,omitempty"`
	GenerationConfig  *GenerateContentConfig `json:"generationConfig,omitempty"`
}

// Contains the multi-part content of a message.
type Content struct {
	// List of parts that constitute a single message.
	Parts []Part `json:"parts,omitempty"`
	// Optional. The producer of the content. Must be either 'user' or
	// 'model'.
	Role string `json:"role,omitempty"`
}

// A datatype containing media content. Exactly one field within a Part
// should be set.
type Part struct {
	// Optional. Text part (can be code).
	Text *string `json:"text,omitempty"`
	// Optional. Inlined bytes data.
	InlineData *Blob `json:"inlineData,omitempty"`
}

type Blob struct {
	// Required. Raw bytes.
	// @remarks Encoded as base64 string.
	Data *string `json:"data,omitempty"`
	// Required. The IANA standard MIME type of the source data.
	MimeType *string `json:"mimeType,omitempty"`
}

type GenerateContentConfig struct {
	Temperature     *float64 `json:"temperature,omitempty"`
	MaxOutputTokens *uint32  `json:"maxOutputTokens,omitempty"`
	// Requested modalities of the response ("TEXT", "AUDIO").
	ResponseModalities []string `json:"responseModalities,omitempty"`
	// The speech generation configuration.
	SpeechConfig *SpeechConfig `json:"speechConfig,omitempty"`
}

// The speech generation configuration.
type SpeechConfig struct {
	// The configuration for the speaker to use.
	VoiceConfig *VoiceConfig `json:"voiceConfig,omitempty"`
	// Language code (ISO 639. e.g. en-US) for the speech synthesization.
	LanguageCode *string `json:"languageCode,omitempty"`
}

// The configuration for the voice to use.
type VoiceConfig struct {
	// The configuration for the prebuilt voice to use.
	PrebuiltVoiceConfig *PrebuiltVoiceConfig `json:"prebuiltVoiceConfig,omitempty"`
}

// The configuration for the prebuilt speaker to use.
type PrebuiltVoiceConfig struct {
	// The name of the prebuilt voice to use.
	VoiceName *string `json:"voiceName,omitempty"`
}

// Response message for PredictionService.GenerateContent.
type GenerateContentResponse struct {
	// Response variations returned by the model.
	Candidates    []Candidate                           `json:"candidates,omitempty"`
	UsageMetadata *GenerateContentResponseUsageMetadata `json:"usageMetadata,omitempty"`
}

// A response candidate generated from the model.
type Candidate struct {
	// Contains the multi-part content of the candidate.
	Content *Content `json:"content,omitempty"`
	// The reason why the model stopped generating tokens.
	FinishReason *string `json:"finishReason,omitempty"`
}

// Usage metadata about response(s).
type GenerateContentResponseUsageMetadata struct {
	// Number of tokens in the prompt.
	PromptTokenCount *int `json:"promptTokenCount,omitempty"`
	// Number of tokens across all the generated response candidates.
	CandidatesTokenCount *int `json:"candidatesTokenCount,omitempty"`
	// Total token count for prompt and response candidates.
	TotalTokenCount *int `json:"totalTokenCount,omitempty"`
}
