package openai

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"

	voxkit "github.com/voxkit/voxkit-go"
	"github.com/voxkit/voxkit-go/internal/clientutils"
	"github.com/voxkit/voxkit-go/internal/tracing"
	"github.com/voxkit/voxkit-go/openai/openaiapi"
	"github.com/voxkit/voxkit-go/utils/ptr"
	"github.com/voxkit/voxkit-go/utils/stream"
)

const Provider = "openai"

// The pcm response format is raw s16le samples at a fixed rate, mono.
const (
	openaiPCMSampleRate  = 24000
	openaiPCMNumChannels = 1
)

const defaultVoice = "alloy"

type OpenAIModelOptions struct {
	BaseURL string
	APIKey  string
}

// OpenAIModel calls the OpenAI audio/speech API. With a TTS model ID it acts
// as a SpeechModel; with a chat model ID it acts as a LyricsModel.
type OpenAIModel struct {
	baseURL string
	apiKey  string
	modelID string
	client  *http.Client
}

func NewOpenAIModel(modelID string, options OpenAIModelOptions) *OpenAIModel {
	baseURL := "https://api.openai.com/v1"
	if options.BaseURL != "" {
		baseURL = options.BaseURL
	}

	return &OpenAIModel{
		baseURL: baseURL,
		apiKey:  options.APIKey,
		modelID: modelID,
		client:  &http.Client{},
	}
}

func (m *OpenAIModel) Provider() voxkit.ProviderName {
	return Provider
}

func (m *OpenAIModel) ModelID() string {
	return m.modelID
}

func (m *OpenAIModel) requestHeaders() map[string]string {
	return map[string]string{
		"Authorization": fmt.Sprintf("Bearer %s", m.apiKey),
	}
}

func (m *OpenAIModel) Synthesize(ctx context.Context, input *voxkit.SpeechInput) (*voxkit.SpeechResponse, error) {
	return tracing.TraceSynthesize(ctx, Provider, m.modelID, func(ctx context.Context) (*voxkit.SpeechResponse, error) {
		params, format, err := convertToSpeechRequest(input, m.modelID)
		if err != nil {
			return nil, err
		}

		// The speech endpoint answers with the audio bytes themselves.
		respBody, err := clientutils.DoRaw(ctx, m.client, clientutils.RequestConfig{
			URL:     fmt.Sprintf("%s/audio/speech", m.baseURL),
			Headers: m.requestHeaders(),
			Body:    params,
		})
		if err != nil {
			return nil, err
		}

		return &voxkit.SpeechResponse{
			Audio: voxkit.AudioOutput{
				AudioData:  base64.StdEncoding.EncodeToString(respBody),
				Format:     format,
				SampleRate: audioFormatSampleRate(format),
				Channels:   audioFormatChannels(format),
			},
		}, nil
	})
}

func (m *OpenAIModel) SynthesizeStream(ctx context.Context, input *voxkit.SpeechInput) (*voxkit.SpeechStream, error) {
	return tracing.TraceSynthesizeStream(ctx, Provider, m.modelID, func(ctx context.Context) (*voxkit.SpeechStream, error) {
		params, format, err := convertToSpeechRequest(input, m.modelID)
		if err != nil {
			return nil, err
		}
		params.StreamFormat = ptr.To("sse")

		sseStream, err := clientutils.DoSSE[openaiapi.SpeechStreamEvent](ctx, m.client, clientutils.RequestConfig{
			URL:     fmt.Sprintf("%s/audio/speech", m.baseURL),
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
				event := sseStream.Current()
				if event == nil {
					continue
				}

				switch event.Type {
				case "speech.audio.delta":
					if event.Audio == nil {
						continue
					}
					responseCh <- &voxkit.PartialSpeechResponse{
						Delta: &voxkit.AudioDelta{
							AudioData:  event.Audio,
							Format:     ptr.To(format),
							SampleRate: audioFormatSampleRate(format),
							Channels:   audioFormatChannels(format),
						},
					}
				case "speech.audio.done":
					if usage := mapOpenAISpeechUsage(event.Usage); usage != nil {
						responseCh <- &voxkit.PartialSpeechResponse{Usage: usage}
					}
				}
			}

			if err := sseStream.Err(); err != nil {
				errCh <- err
			}
		}()

		return stream.New(responseCh, errCh), nil
	})
}

func (m *OpenAIModel) GenerateLyrics(ctx context.Context, input *voxkit.LyricsInput) (*voxkit.LyricsResponse, error) {
	return tracing.TraceLyrics(ctx, Provider, m.modelID, func(ctx context.Context) (*voxkit.LyricsResponse, error) {
		params := convertToLyricsRequest(input, m.modelID)

		response, err := clientutils.DoJSON[openaiapi.ChatCompletionResponse](ctx, m.client, clientutils.RequestConfig{
			URL:     fmt.Sprintf("%s/chat/completions", m.baseURL),
			Headers: m.requestHeaders(),
			Body:    params,
		})
		if err != nil {
			return nil, err
		}

		if len(response.Choices) == 0 {
			return nil, voxkit.NewInvariantError(Provider, "no choices returned")
		}

		lyrics := response.Choices[0].Message.Content
		if lyrics == "" {
			return nil, voxkit.NewInvariantError(Provider, "no completion text returned")
		}

		return &voxkit.LyricsResponse{
			Lyrics: lyrics,
			Usage:  mapOpenAIChatUsage(response.Usage),
		}, nil
	})
}

// convertToSpeechRequest maps a synthesis input to the speech endpoint body.
// It also returns the format the response audio will arrive in.
func convertToSpeechRequest(input *voxkit.SpeechInput, modelID string) (*openaiapi.CreateSpeechRequest, voxkit.AudioFormat, error) {
	if input.Text == "" {
		return nil, "", voxkit.NewInvalidInputError("text must not be empty")
	}
	if input.LanguageCode != nil {
		return nil, "", voxkit.NewUnsupportedError(Provider, "language code; the voice determines pronunciation")
	}

	format := voxkit.AudioFormatLinear16
	if input.Format != nil {
		format = *input.Format
	}

	responseFormat, err := mapAudioFormatToResponseFormat(format)
	if err != nil {
		return nil, "", err
	}

	if input.SampleRate != nil && format == voxkit.AudioFormatLinear16 && *input.SampleRate != openaiPCMSampleRate {
		return nil, "", voxkit.NewUnsupportedError(Provider, fmt.Sprintf("sample rate %d; pcm output is %d Hz only", *input.SampleRate, openaiPCMSampleRate))
	}

	voice := defaultVoice
	if input.Voice != nil {
		voice = *input.Voice
	}

	return &openaiapi.CreateSpeechRequest{
		Model:          modelID,
		Input:          input.Text,
		Voice:          voice,
		ResponseFormat: ptr.To(responseFormat),
		Speed:          input.Speed,
		Instructions:   input.Instructions,
	}, format, nil
}

func mapAudioFormatToResponseFormat(format voxkit.AudioFormat) (string, error) {
	switch format {
	case voxkit.AudioFormatLinear16:
		return "pcm", nil
	case voxkit.AudioFormatMP3:
		return "mp3", nil
	case voxkit.AudioFormatWav:
		return "wav", nil
	case voxkit.AudioFormatAAC:
		return "aac", nil
	case voxkit.AudioFormatFLAC:
		return "flac", nil
	case voxkit.AudioFormatOpus:
		return "opus", nil
	default:
		return "", voxkit.NewUnsupportedError(Provider, fmt.Sprintf("audio format %s", format))
	}
}

// Only raw pcm has a known rate and channel count; container formats carry
// their own headers.
func audioFormatSampleRate(format voxkit.AudioFormat) *int {
	if format == voxkit.AudioFormatLinear16 {
		return ptr.To(openaiPCMSampleRate)
	}
	return nil
}

func audioFormatChannels(format voxkit.AudioFormat) *int {
	if format == voxkit.AudioFormatLinear16 {
		return ptr.To(openaiPCMNumChannels)
	}
	return nil
}

func convertToLyricsRequest(input *voxkit.LyricsInput, modelID string) *openaiapi.ChatCompletionRequest {
	systemPrompt := defaultLyricsSystemPrompt
	if input.SystemPrompt != nil {
		systemPrompt = *input.SystemPrompt
	}

	prompt := fmt.Sprintf("Write song lyrics about: %s", input.Theme)
	if input.Style != nil {
		prompt = fmt.Sprintf("%s\nStyle: %s", prompt, *input.Style)
	}

	return &openaiapi.ChatCompletionRequest{
		Model: modelID,
		Messages: []openaiapi.ChatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
		Temperature:         input.Temperature,
		MaxCompletionTokens: input.MaxTokens,
	}
}

const defaultLyricsSystemPrompt = "You are a songwriter. Write complete song lyrics for the requested theme. " +
	"Respond with the lyrics only, no titles, headings, or commentary."

func mapOpenAISpeechUsage(usage *openaiapi.SpeechUsage) *voxkit.ModelUsage {
	if usage == nil {
		return nil
	}
	return &voxkit.ModelUsage{
		InputTokens:  usage.InputTokens,
		OutputTokens: usage.OutputTokens,
	}
}

func mapOpenAIChatUsage(usage *openaiapi.ChatCompletionUsage) *voxkit.ModelUsage {
	if usage == nil {
		return nil
	}
	return &voxkit.ModelUsage{
		InputTokens:  usage.PromptTokens,
		OutputTokens: usage.CompletionTokens,
	}
}
