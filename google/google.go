package google

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	voxkit "github.com/voxkit/voxkit-go"
	"github.com/voxkit/voxkit-go/google/googleapi"
	"github.com/voxkit/voxkit-go/internal/clientutils"
	"github.com/voxkit/voxkit-go/internal/tracing"
	"github.com/voxkit/voxkit-go/utils/ptr"
	"github.com/voxkit/voxkit-go/utils/stream"
)

const Provider = "google"

// Gemini TTS models emit raw s16le PCM at a fixed sample rate, mono.
const (
	geminiSampleRate  = 24000
	geminiNumChannels = 1
)

type GoogleModelOptions struct {
	BaseURL    string
	APIKey     string
	APIVersion string
}

// GoogleModel calls the Gemini generateContent API. With a TTS-capable model
// ID it acts as a SpeechModel; with a text model ID it acts as a LyricsModel.
type GoogleModel struct {
	baseURL    string
	apiKey     string
	apiVersion string
	modelID    string
	client     *http.Client
}

func NewGoogleModel(modelID string, options GoogleModelOptions) *GoogleModel {
	baseURL := "https://generativelanguage.googleapis.com"
	if options.BaseURL != "" {
		baseURL = options.BaseURL
	}
	apiVersion := "v1beta"
	if options.APIVersion != "" {
		apiVersion = options.APIVersion
	}

	return &GoogleModel{
		baseURL:    baseURL,
		apiKey:     options.APIKey,
		apiVersion: apiVersion,
		modelID:    modelID,
		client:     &http.Client{},
	}
}

func (m *GoogleModel) Provider() voxkit.ProviderName {
	return Provider
}

func (m *GoogleModel) ModelID() string {
	return m.modelID
}

func (m *GoogleModel) requestHeaders() map[string]string {
	return map[string]string{
		"x-goog-api-key": m.apiKey,
	}
}

func (m *GoogleModel) Synthesize(ctx context.Context, input *voxkit.SpeechInput) (*voxkit.SpeechResponse, error) {
	return tracing.TraceSynthesize(ctx, Provider, m.modelID, func(ctx context.Context) (*voxkit.SpeechResponse, error) {
		params, err := convertToSpeechParameters(input, m.modelID)
		if err != nil {
			return nil, err
		}

		response, err := clientutils.DoJSON[googleapi.GenerateContentResponse](ctx, m.client, clientutils.RequestConfig{
			URL:     fmt.Sprintf("%s/%s/models/%s:generateContent", m.baseURL, m.apiVersion, m.modelID),
			Headers: m.requestHeaders(),
			Body:    params,
		})
		if err != nil {
			return nil, err
		}

		if len(response.Candidates) == 0 {
			return nil, voxkit.NewInvariantError(Provider, "no candidates returned")
		}

		audio, err := mapGoogleAudioContent(response.Candidates[0].Content)
		if err != nil {
			return nil, err
		}

		return &voxkit.SpeechResponse{
			Audio: *audio,
			Usage: mapGoogleUsageMetadata(response.UsageMetadata),
		}, nil
	})
}

func (m *GoogleModel) SynthesizeStream(ctx context.Context, input *voxkit.SpeechInput) (*voxkit.SpeechStream, error) {
	return tracing.TraceSynthesizeStream(ctx, Provider, m.modelID, func(ctx context.Context) (*voxkit.SpeechStream, error) {
		params, err := convertToSpeechParameters(input, m.modelID)
		if err != nil {
			return nil, err
		}

		sseStream, err := clientutils.DoSSE[googleapi.GenerateContentResponse](ctx, m.client, clientutils.RequestConfig{
			URL:     fmt.Sprintf("%s/%s/models/%s:streamGenerateContent?alt=sse", m.baseURL, m.apiVersion, m.modelID),
			Headers: m.requestHeaders(),
			Body:    params,
		})
		if err != nil {
			return nil, err
		}

		responseCh := make(chan *voxkit.PartialSpeechResponse)
		errCh := make(chan error, 1)

		go func() {
			defer close(responseCh)
			defer close(errCh)
			defer sseStream.Close()

			for sseStream.Next() {
				streamEvent := sseStream.Current()
				if streamEvent == nil {
					continue
				}

				if len(streamEvent.Candidates) > 0 && streamEvent.Candidates[0].Content != nil {
					delta, err := mapGoogleAudioContentToDelta(streamEvent.Candidates[0].Content)
					if err != nil {
						errCh <- err
						return
					}
					if delta != nil {
						responseCh <- &voxkit.PartialSpeechResponse{Delta: delta}
					}
				}

				if usage := mapGoogleUsageMetadata(streamEvent.UsageMetadata); usage != nil {
					responseCh <- &voxkit.PartialSpeechResponse{Usage: usage}
				}
			}

			if err := sseStream.Err(); err != nil {
				errCh <- err
			}
		}()

		return stream.New(responseCh, errCh), nil
	})
}

func (m *GoogleModel) GenerateLyrics(ctx context.Context, input *voxkit.LyricsInput) (*voxkit.LyricsResponse, error) {
	return tracing.TraceLyrics(ctx, Provider, m.modelID, func(ctx context.Context) (*voxkit.LyricsResponse, error) {
		params := convertToLyricsParameters(input, m.modelID)

		response, err := clientutils.DoJSON[googleapi.GenerateContentResponse](ctx, m.client, clientutils.RequestConfig{
			URL:     fmt.Sprintf("%s/%s/models/%s:generateContent", m.baseURL, m.apiVersion, m.modelID),
			Headers: m.requestHeaders(),
			Body:    params,
		})
		if err != nil {
			return nil, err
		}

		if len(response.Candidates) == 0 {
			return nil, voxkit.NewInvariantError(Provider, "no candidates returned")
		}

		lyrics := mapGoogleTextContent(response.Candidates[0].Content)
		if lyrics == "" {
			return nil, voxkit.NewInvariantError(Provider, "no text parts returned")
		}

		return &voxkit.LyricsResponse{
			Lyrics: lyrics,
			Usage:  mapGoogleUsageMetadata(response.UsageMetadata),
		}, nil
	})
}

func convertToSpeechParameters(input *voxkit.SpeechInput, modelID string) (*googleapi.GenerateContentParameters, error) {
	if input.Text == "" {
		return nil, voxkit.NewInvalidInputError("text must not be empty")
	}
	if input.Format != nil && *input.Format != voxkit.AudioFormatLinear16 {
		return nil, voxkit.NewUnsupportedError(Provider, fmt.Sprintf("audio format %s; Gemini TTS emits linear16 only", *input.Format))
	}
	if input.SampleRate != nil && *input.SampleRate != geminiSampleRate {
		return nil, voxkit.NewUnsupportedError(Provider, fmt.Sprintf("sample rate %d; Gemini TTS emits %d Hz only", *input.SampleRate, geminiSampleRate))
	}
	if input.Speed != nil {
		return nil, voxkit.NewUnsupportedError(Provider, "speaking speed")
	}

	// Gemini TTS takes delivery direction as natural language in the prompt.
	text := input.Text
	if input.Instructions != nil {
		text = fmt.Sprintf("%s:\n\n%s", *input.Instructions, input.Text)
	}

	speechConfig := &googleapi.SpeechConfig{
		LanguageCode: input.LanguageCode,
	}
	if input.Voice != nil {
		speechConfig.VoiceConfig = &googleapi.VoiceConfig{
			PrebuiltVoiceConfig: &googleapi.PrebuiltVoiceConfig{
				VoiceName: input.Voice,
			},
		}
	}

	return &googleapi.GenerateContentParameters{
		Model: modelID,
		Contents: []googleapi.Content{
			{Role: "user", Parts: []googleapi.Part{{Text: &text}}},
		},
		GenerationConfig: &googleapi.GenerateContentConfig{
			ResponseModalities: []string{"AUDIO"},
			SpeechConfig:       speechConfig,
		},
	}, nil
}

const defaultLyricsSystemPrompt = "You are a songwriter. Write complete song lyrics for the requested theme. " +
	"Respond with the lyrics only, no titles, headings, or commentary."

func convertToLyricsParameters(input *voxkit.LyricsInput, modelID string) *googleapi.GenerateContentParameters {
	systemPrompt := defaultLyricsSystemPrompt
	if input.SystemPrompt != nil {
		systemPrompt = *input.SystemPrompt
	}

	prompt := fmt.Sprintf("Write song lyrics about: %s", input.Theme)
	if input.Style != nil {
		prompt = fmt.Sprintf("%s\nStyle: %s", prompt, *input.Style)
	}

	return &googleapi.GenerateContentParameters{
		Model: modelID,
		Contents: []googleapi.Content{
			{Role: "user", Parts: []googleapi.Part{{Text: &prompt}}},
		},
		SystemInstruction: &googleapi.Content{
			Role:  "system", // ignored by Google API
			Parts: []googleapi.Part{{Text: &systemPrompt}},
		},
		GenerationConfig: &googleapi.GenerateContentConfig{
			Temperature:     input.Temperature,
			MaxOutputTokens: input.MaxTokens,
		},
	}
}

// findInlineAudio returns the first inline audio blob in the content, or nil.
func findInlineAudio(content *googleapi.Content) *googleapi.Blob {
	if content == nil {
		return nil
	}
	for _, part := range content.Parts {
		if part.InlineData == nil || part.InlineData.MimeType == nil || part.InlineData.Data == nil {
			continue
		}
		if strings.HasPrefix(*part.InlineData.MimeType, "audio/") {
			return part.InlineData
		}
	}
	return nil
}

func mapGoogleAudioBlob(blob *googleapi.Blob) (*voxkit.AudioOutput, error) {
	format, err := voxkit.MapMimeTypeToAudioFormat(*blob.MimeType)
	if err != nil {
		return nil, voxkit.NewInvariantError(Provider, fmt.Sprintf("unsupported audio mime type: %s", *blob.MimeType))
	}

	sampleRate := voxkit.ParseMimeSampleRate(*blob.MimeType)
	if sampleRate == nil && format == voxkit.AudioFormatLinear16 {
		sampleRate = ptr.To(geminiSampleRate)
	}

	return &voxkit.AudioOutput{
		AudioData:  *blob.Data,
		Format:     format,
		SampleRate: sampleRate,
		Channels:   ptr.To(geminiNumChannels),
	}, nil
}

// mapGoogleAudioContent extracts the inline audio blob from a candidate.
func mapGoogleAudioContent(content *googleapi.Content) (*voxkit.AudioOutput, error) {
	blob := findInlineAudio(content)
	if blob == nil {
		return nil, voxkit.NewInvariantError(Provider, "no inline audio part returned")
	}
	return mapGoogleAudioBlob(blob)
}

// mapGoogleAudioContentToDelta maps streamed content to an audio delta.
// Returns nil when the chunk carries no audio part.
func mapGoogleAudioContentToDelta(content *googleapi.Content) (*voxkit.AudioDelta, error) {
	blob := findInlineAudio(content)
	if blob == nil {
		// Interim chunks may carry metadata without audio parts.
		return nil, nil
	}

	audio, err := mapGoogleAudioBlob(blob)
	if err != nil {
		return nil, err
	}

	return &voxkit.AudioDelta{
		AudioData:  &audio.AudioData,
		Format:     &audio.Format,
		SampleRate: audio.SampleRate,
		Channels:   audio.Channels,
	}, nil
}

func mapGoogleTextContent(content *googleapi.Content) string {
	if content == nil {
		return ""
	}

	var sb strings.Builder
	for _, part := range content.Parts {
		if part.Text != nil {
			sb.WriteString(*part.Text)
		}
	}
	return sb.String()
}

// mapGoogleUsageMetadata maps Google usage metadata to SDK usage.
func mapGoogleUsageMetadata(usageMetadata *googleapi.GenerateContentResponseUsageMetadata) *voxkit.ModelUsage {
	if usageMetadata == nil {
		return nil
	}

	usage := &voxkit.ModelUsage{}
	if usageMetadata.PromptTokenCount != nil {
		usage.InputTokens = *usageMetadata.PromptTokenCount
	}
	if usageMetadata.CandidatesTokenCount != nil {
		usage.OutputTokens = *usageMetadata.CandidatesTokenCount
	}
	return usage
}
