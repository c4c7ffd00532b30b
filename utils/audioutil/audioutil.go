// Package audioutil implements the raw audio pipeline shared by playback and
// download: base64 payload decoding, 16-bit little-endian PCM to normalized
// float buffers, and WAV container encoding.
//
// All functions are stateless and allocate fresh outputs per call. Identical
// base64 payloads are decoded independently each time; the surrounding
// application decodes the same string once for playback and once for
// download rather than caching bytes.
package audioutil

import (
	"encoding/base64"
	"fmt"
)

const (
	// DefaultSampleRate is the sample rate of raw speech audio returned by
	// the hosted generative APIs (24 kHz).
	DefaultSampleRate = 24000
	// DefaultNumChannels is the channel count of raw speech audio returned
	// by the hosted generative APIs (mono).
	DefaultNumChannels = 1
)

// DecodeError reports a malformed base64 audio payload.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("audioutil: decode base64 audio: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// DecodeBase64 converts a base64-encoded audio payload into raw bytes. Byte
// values are preserved exactly; there is no caching or buffer reuse.
// Malformed input returns a *DecodeError with no partial result.
func DecodeBase64(b64 string) ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return nil, &DecodeError{Err: err}
	}
	return data, nil
}
