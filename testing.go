package voxkit

import (
	"context"
	"errors"

	"github.com/voxkit/voxkit-go/utils/stream"
)

// MockSynthesizeResult is a result for a mocked `synthesize` call.
// It can either be a full response or an error.
type MockSynthesizeResult struct {
	Response *SpeechResponse
	Error    error
}

// NewMockSynthesizeResultResponse constructs a synthesize result with a response.
func NewMockSynthesizeResultResponse(response SpeechResponse) MockSynthesizeResult {
	return MockSynthesizeResult{
		Response: &response,
	}
}

// NewMockSynthesizeResultError constructs a synthesize result that yields an error.
func NewMockSynthesizeResultError(err error) MockSynthesizeResult {
	return MockSynthesizeResult{
		Error: err,
	}
}

// MockStreamResult is a result for a mocked `synthesize stream` call.
// It can either be a set of partial responses or an error.
type MockStreamResult struct {
	Partials []PartialSpeechResponse
	Error    error
}

// NewMockStreamResultPartials constructs a stream result with partial responses.
func NewMockStreamResultPartials(partials []PartialSpeechResponse) MockStreamResult {
	return MockStreamResult{
		Partials: partials,
	}
}

// NewMockStreamResultError constructs a stream result that yields an error.
func NewMockStreamResultError(err error) MockStreamResult {
	return MockStreamResult{
		Error: err,
	}
}

// MockSpeechModel is a mock speech model for testing purposes
// that tracks inputs and returns predefined outputs.
type MockSpeechModel struct {
	mockedSynthesizeResults []MockSynthesizeResult
	mockedStreamResults     []MockStreamResult

	TrackedSynthesizeInputs []*SpeechInput
	TrackedStreamInputs     []*SpeechInput

	provider ProviderName
	modelID  string
}

// NewMockSpeechModel constructs a mock speech model instance.
func NewMockSpeechModel() *MockSpeechModel {
	return &MockSpeechModel{
		mockedSynthesizeResults: []MockSynthesizeResult{},
		mockedStreamResults:     []MockStreamResult{},
		TrackedSynthesizeInputs: []*SpeechInput{},
		TrackedStreamInputs:     []*SpeechInput{},
		provider:                ProviderName("mock"),
		modelID:                 "mock-model",
	}
}

// Provider returns the provider name of the mock speech model.
func (m *MockSpeechModel) Provider() ProviderName {
	return m.provider
}

// SetProvider overrides the provider name returned by the mock model.
func (m *MockSpeechModel) SetProvider(provider ProviderName) {
	m.provider = provider
}

// ModelID returns the model identifier of the mock speech model.
func (m *MockSpeechModel) ModelID() string {
	return m.modelID
}

// SetModelID overrides the model identifier returned by the mock model.
func (m *MockSpeechModel) SetModelID(modelID string) {
	m.modelID = modelID
}

// Synthesize returns the next mocked synthesize result, tracking the provided input.
func (m *MockSpeechModel) Synthesize(_ context.Context, input *SpeechInput) (*SpeechResponse, error) {
	if len(m.mockedSynthesizeResults) == 0 {
		return nil, errors.New("no mocked synthesize results available")
	}

	result := m.mockedSynthesizeResults[0]
	m.mockedSynthesizeResults = m.mockedSynthesizeResults[1:]
	m.TrackedSynthesizeInputs = append(m.TrackedSynthesizeInputs, input)

	if result.Error != nil {
		return nil, result.Error
	}

	return result.Response, nil
}

// SynthesizeStream returns the next mocked stream result as a SpeechStream, tracking the input.
func (m *MockSpeechModel) SynthesizeStream(_ context.Context, input *SpeechInput) (*SpeechStream, error) {
	if len(m.mockedStreamResults) == 0 {
		return nil, errors.New("no mocked stream results available")
	}

	result := m.mockedStreamResults[0]
	m.mockedStreamResults = m.mockedStreamResults[1:]
	m.TrackedStreamInputs = append(m.TrackedStreamInputs, input)

	if result.Error != nil {
		return nil, result.Error
	}

	eventChan := make(chan *PartialSpeechResponse)
	errChan := make(chan error)

	partials := result.Partials

	go func() {
		defer close(eventChan)
		defer close(errChan)

		for _, partial := range partials {
			p := partial
			eventChan <- &p
		}
	}()

	return stream.New(eventChan, errChan), nil
}

// EnqueueSynthesizeResult enqueues synthesize results to be returned sequentially.
func (m *MockSpeechModel) EnqueueSynthesizeResult(results ...MockSynthesizeResult) {
	m.mockedSynthesizeResults = append(m.mockedSynthesizeResults, results...)
}

// EnqueueStreamResult enqueues stream results to be returned sequentially.
func (m *MockSpeechModel) EnqueueStreamResult(results ...MockStreamResult) {
	m.mockedStreamResults = append(m.mockedStreamResults, results...)
}

// Reset clears tracked inputs without touching enqueued results.
func (m *MockSpeechModel) Reset() {
	m.TrackedSynthesizeInputs = []*SpeechInput{}
	m.TrackedStreamInputs = []*SpeechInput{}
}

// Restore clears enqueued results and tracked inputs, returning the mock to its initial state.
func (m *MockSpeechModel) Restore() {
	m.mockedSynthesizeResults = []MockSynthesizeResult{}
	m.mockedStreamResults = []MockStreamResult{}
	m.Reset()
}

// MockLyricsResult is a result for a mocked `generate lyrics` call.
type MockLyricsResult struct {
	Response *LyricsResponse
	Error    error
}

// MockLyricsModel is a mock lyrics model that tracks inputs and returns
// predefined outputs.
type MockLyricsModel struct {
	mockedResults []MockLyricsResult

	TrackedInputs []*LyricsInput

	provider ProviderName
	modelID  string
}

// NewMockLyricsModel constructs a mock lyrics model instance.
func NewMockLyricsModel() *MockLyricsModel {
	return &MockLyricsModel{
		provider: ProviderName("mock"),
		modelID:  "mock-model",
	}
}

// Provider returns the provider name of the mock lyrics model.
func (m *MockLyricsModel) Provider() ProviderName {
	return m.provider
}

// ModelID returns the model identifier of the mock lyrics model.
func (m *MockLyricsModel) ModelID() string {
	return m.modelID
}

// GenerateLyrics returns the next mocked lyrics result, tracking the provided input.
func (m *MockLyricsModel) GenerateLyrics(_ context.Context, input *LyricsInput) (*LyricsResponse, error) {
	if len(m.mockedResults) == 0 {
		return nil, errors.New("no mocked lyrics results available")
	}

	result := m.mockedResults[0]
	m.mockedResults = m.mockedResults[1:]
	m.TrackedInputs = append(m.TrackedInputs, input)

	if result.Error != nil {
		return nil, result.Error
	}

	return result.Response, nil
}

// EnqueueLyricsResult enqueues lyrics results to be returned sequentially.
func (m *MockLyricsModel) EnqueueLyricsResult(results ...MockLyricsResult) {
	m.mockedResults = append(m.mockedResults, results...)
}
