package voxkit

import (
	"fmt"
)

// accumulatedAudio holds streamed audio chunks before they are merged into a
// final clip. Chunks stay base64-encoded until ComputeResponse.
type accumulatedAudio struct {
	audioDataChunks []string
	format          *AudioFormat
	sampleRate      *int
	channels        *int
	transcript      string
}

// StreamAccumulator merges streamed synthesis deltas into a final
// SpeechResponse. Audio chunks are concatenated sample-aligned; transcript
// text is appended in arrival order.
type StreamAccumulator struct {
	audio            *accumulatedAudio
	accumulatedUsage *ModelUsage
}

// NewStreamAccumulator creates a new StreamAccumulator
func NewStreamAccumulator() *StreamAccumulator {
	return &StreamAccumulator{}
}

// AddPartial adds a partial response to the accumulator
func (s *StreamAccumulator) AddPartial(partial PartialSpeechResponse) error {
	if partial.Delta != nil {
		s.processDelta(*partial.Delta)
	}
	if partial.Usage != nil {
		s.processUsage(partial.Usage)
	}
	return nil
}

// ComputeResponse computes the final response from accumulated deltas
func (s *StreamAccumulator) ComputeResponse() (SpeechResponse, error) {
	if s.audio == nil {
		return SpeechResponse{}, NewInvariantError("", "no audio deltas accumulated")
	}
	if s.audio.format == nil {
		return SpeechResponse{}, NewInvariantError("", "missing required field format for audio")
	}

	audioData := ""
	switch {
	case len(s.audio.audioDataChunks) == 1:
		audioData = s.audio.audioDataChunks[0]
	case len(s.audio.audioDataChunks) > 1:
		if *s.audio.format != AudioFormatLinear16 {
			return SpeechResponse{}, NewNotImplementedError("", fmt.Sprintf("Only linear16 format is supported for audio concatenation. Received: %s", *s.audio.format))
		}
		concatenated, err := concatenateB64AudioChunks(s.audio.audioDataChunks)
		if err != nil {
			return SpeechResponse{}, err
		}
		audioData = concatenated
	}

	var transcript *string
	if s.audio.transcript != "" {
		transcript = &s.audio.transcript
	}

	return SpeechResponse{
		Audio: AudioOutput{
			AudioData:  audioData,
			Format:     *s.audio.format,
			SampleRate: s.audio.sampleRate,
			Channels:   s.audio.channels,
			Transcript: transcript,
		},
		Usage: s.accumulatedUsage,
	}, nil
}

// IsEmpty checks if the accumulator has any data
func (s *StreamAccumulator) IsEmpty() bool {
	return s.audio == nil && s.accumulatedUsage == nil
}

// Clear clears all accumulated data
func (s *StreamAccumulator) Clear() {
	s.audio = nil
	s.accumulatedUsage = nil
}

func (s *StreamAccumulator) processDelta(delta AudioDelta) {
	if s.audio == nil {
		s.audio = &accumulatedAudio{}
	}
	if delta.AudioData != nil {
		s.audio.audioDataChunks = append(s.audio.audioDataChunks, *delta.AudioData)
	}
	if delta.Format != nil {
		s.audio.format = delta.Format
	}
	if delta.SampleRate != nil {
		s.audio.sampleRate = delta.SampleRate
	}
	if delta.Channels != nil {
		s.audio.channels = delta.Channels
	}
	if delta.Transcript != nil {
		s.audio.transcript += *delta.Transcript
	}
}

func (s *StreamAccumulator) processUsage(usage *ModelUsage) {
	if s.accumulatedUsage == nil {
		s.accumulatedUsage = &ModelUsage{}
	}
	s.accumulatedUsage.Add(usage)
}
