package voxkit

import (
	"reflect"
	"testing"
)

func TestBase64Int16RoundTrip(t *testing.T) {
	samples := []int16{0, 1, -1, 32767, -32768, 12345}

	b64 := int16SamplesToBase64(samples)
	decoded, err := base64ToInt16Samples(b64)
	if err != nil {
		t.Fatalf("base64ToInt16Samples returned error: %v", err)
	}
	if !reflect.DeepEqual(samples, decoded) {
		t.Fatalf("round trip mismatch: %v != %v", decoded, samples)
	}
}

func TestBase64ToInt16SamplesOddLength(t *testing.T) {
	// "AAA=" decodes to 2 bytes, "AA==" to 1.
	if _, err := base64ToInt16Samples("AA=="); err == nil {
		t.Fatal("expected error for odd byte count")
	}
}

func TestConcatenateB64AudioChunks(t *testing.T) {
	chunk1 := int16SamplesToBase64([]int16{1, 2})
	chunk2 := int16SamplesToBase64([]int16{3, 4, 5})

	combined, err := concatenateB64AudioChunks([]string{chunk1, chunk2})
	if err != nil {
		t.Fatalf("concatenateB64AudioChunks returned error: %v", err)
	}

	samples, err := base64ToInt16Samples(combined)
	if err != nil {
		t.Fatalf("base64ToInt16Samples returned error: %v", err)
	}
	if !reflect.DeepEqual([]int16{1, 2, 3, 4, 5}, samples) {
		t.Fatalf("unexpected combined samples: %v", samples)
	}
}

func TestConcatenateB64AudioChunksEmpty(t *testing.T) {
	combined, err := concatenateB64AudioChunks(nil)
	if err != nil {
		t.Fatalf("concatenateB64AudioChunks returned error: %v", err)
	}
	if combined != "" {
		t.Fatalf("expected empty string, got %q", combined)
	}
}

func TestMapAudioFormatToMimeType(t *testing.T) {
	if got := MapAudioFormatToMimeType(AudioFormatLinear16); got != "audio/L16" {
		t.Fatalf("linear16 mime = %q", got)
	}
	if got := MapAudioFormatToMimeType(AudioFormatWav); got != "audio/wav" {
		t.Fatalf("wav mime = %q", got)
	}
	if got := MapAudioFormatToMimeType(AudioFormat("bogus")); got != "application/octet-stream" {
		t.Fatalf("fallback mime = %q", got)
	}
}

func TestMapMimeTypeToAudioFormat(t *testing.T) {
	format, err := MapMimeTypeToAudioFormat("audio/L16;codec=pcm;rate=24000")
	if err != nil {
		t.Fatalf("MapMimeTypeToAudioFormat returned error: %v", err)
	}
	if format != AudioFormatLinear16 {
		t.Fatalf("format = %s, want linear16", format)
	}

	format, err = MapMimeTypeToAudioFormat("audio/mpeg")
	if err != nil {
		t.Fatalf("MapMimeTypeToAudioFormat returned error: %v", err)
	}
	if format != AudioFormatMP3 {
		t.Fatalf("format = %s, want mp3", format)
	}

	if _, err := MapMimeTypeToAudioFormat("video/mp4"); err == nil {
		t.Fatal("expected error for unsupported mime type")
	}
}

func TestParseMimeSampleRate(t *testing.T) {
	if rate := ParseMimeSampleRate("audio/L16;codec=pcm;rate=24000"); rate == nil || *rate != 24000 {
		t.Fatalf("rate = %v, want 24000", rate)
	}
	if rate := ParseMimeSampleRate("audio/L16; rate=8000"); rate == nil || *rate != 8000 {
		t.Fatalf("rate = %v, want 8000", rate)
	}
	if rate := ParseMimeSampleRate("audio/L16"); rate != nil {
		t.Fatalf("rate = %v, want nil when absent", *rate)
	}
	if rate := ParseMimeSampleRate("audio/L16;rate=abc"); rate != nil {
		t.Fatalf("rate = %v, want nil when invalid", *rate)
	}
	if rate := ParseMimeSampleRate("audio/L16;rate=-1"); rate != nil {
		t.Fatalf("rate = %v, want nil when non-positive", *rate)
	}
}
