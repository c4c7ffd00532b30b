package audioutil

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/go-audio/wav"
	"github.com/google/go-cmp/cmp"
)

func TestEncodeWAVHeader(t *testing.T) {
	pcm := pcmBytes(0, 16384, -16384, 100)
	out := EncodeWAV(pcm, 24000, 1)

	if len(out) != 44+len(pcm) {
		t.Fatalf("output length = %d, want %d", len(out), 44+len(pcm))
	}

	if string(out[0:4]) != "RIFF" {
		t.Fatalf("ChunkID = %q, want RIFF", out[0:4])
	}
	if got := binary.LittleEndian.Uint32(out[4:8]); got != uint32(36+len(pcm)) {
		t.Fatalf("ChunkSize = %d, want %d", got, 36+len(pcm))
	}
	if string(out[8:12]) != "WAVE" {
		t.Fatalf("Format = %q, want WAVE", out[8:12])
	}
	if string(out[12:16]) != "fmt " {
		t.Fatalf("Subchunk1ID = %q, want \"fmt \"", out[12:16])
	}
	if got := binary.LittleEndian.Uint32(out[16:20]); got != 16 {
		t.Fatalf("Subchunk1Size = %d, want 16", got)
	}
	if got := binary.LittleEndian.Uint16(out[20:22]); got != 1 {
		t.Fatalf("AudioFormat = %d, want 1", got)
	}
	if got := binary.LittleEndian.Uint16(out[22:24]); got != 1 {
		t.Fatalf("NumChannels = %d, want 1", got)
	}
	if got := binary.LittleEndian.Uint32(out[24:28]); got != 24000 {
		t.Fatalf("SampleRate = %d, want 24000", got)
	}
	if got := binary.LittleEndian.Uint32(out[28:32]); got != 48000 {
		t.Fatalf("ByteRate = %d, want 48000", got)
	}
	if got := binary.LittleEndian.Uint16(out[32:34]); got != 2 {
		t.Fatalf("BlockAlign = %d, want 2", got)
	}
	if got := binary.LittleEndian.Uint16(out[34:36]); got != 16 {
		t.Fatalf("BitsPerSample = %d, want 16", got)
	}
	if string(out[36:40]) != "data" {
		t.Fatalf("Subchunk2ID = %q, want data", out[36:40])
	}
	if got := binary.LittleEndian.Uint32(out[40:44]); got != uint32(len(pcm)) {
		t.Fatalf("Subchunk2Size = %d, want %d", got, len(pcm))
	}

	if diff := cmp.Diff(pcm, out[44:]); diff != "" {
		t.Fatalf("payload mismatch (-want +got):\n%s", diff)
	}
}

func TestEncodeWAVStereoHeader(t *testing.T) {
	out := EncodeWAV(make([]byte, 16), 44100, 2)

	if got := binary.LittleEndian.Uint16(out[22:24]); got != 2 {
		t.Fatalf("NumChannels = %d, want 2", got)
	}
	if got := binary.LittleEndian.Uint32(out[28:32]); got != 44100*2*2 {
		t.Fatalf("ByteRate = %d, want %d", got, 44100*2*2)
	}
	if got := binary.LittleEndian.Uint16(out[32:34]); got != 4 {
		t.Fatalf("BlockAlign = %d, want 4", got)
	}
}

// Two frames of mono silence and max produce a 48-byte file with the data
// size field reading 04 00 00 00.
func TestEncodeWAVScenario(t *testing.T) {
	out := EncodeWAV([]byte{0x00, 0x00, 0xFF, 0x7F}, 24000, 1)

	if len(out) != 48 {
		t.Fatalf("length = %d, want 48", len(out))
	}
	if diff := cmp.Diff([]byte{0x04, 0x00, 0x00, 0x00}, out[40:44]); diff != "" {
		t.Fatalf("data size bytes mismatch (-want +got):\n%s", diff)
	}
}

func TestEncodeWAVEmptyPayload(t *testing.T) {
	out := EncodeWAV(nil, 24000, 1)

	if len(out) != 44 {
		t.Fatalf("length = %d, want 44", len(out))
	}
	if got := binary.LittleEndian.Uint32(out[4:8]); got != 36 {
		t.Fatalf("ChunkSize = %d, want 36", got)
	}
	if got := binary.LittleEndian.Uint32(out[40:44]); got != 0 {
		t.Fatalf("Subchunk2Size = %d, want 0", got)
	}
}

// Odd-length PCM is passed through verbatim; the file stays structurally
// valid and its length is still 44 plus the input length.
func TestEncodeWAVOddLengthPassthrough(t *testing.T) {
	pcm := []byte{0x01, 0x02, 0x03}
	out := EncodeWAV(pcm, 24000, 1)

	if len(out) != 47 {
		t.Fatalf("length = %d, want 47", len(out))
	}
	if got := binary.LittleEndian.Uint32(out[40:44]); got != 3 {
		t.Fatalf("Subchunk2Size = %d, want 3", got)
	}
	if diff := cmp.Diff(pcm, out[44:]); diff != "" {
		t.Fatalf("payload mismatch (-want +got):\n%s", diff)
	}
}

func TestEncodeWAVDeterministic(t *testing.T) {
	pcm := pcmBytes(1, 2, 3)
	if diff := cmp.Diff(EncodeWAV(pcm, 24000, 1), EncodeWAV(pcm, 24000, 1)); diff != "" {
		t.Fatalf("encodes differ (-want +got):\n%s", diff)
	}
}

// Cross-check the header against an independent WAV reader.
func TestEncodeWAVDecodesWithGoAudio(t *testing.T) {
	samples := []int16{0, 1000, -1000, 32767, -32768}
	out := EncodeWAV(pcmBytes(samples...), 24000, 1)

	decoder := wav.NewDecoder(bytes.NewReader(out))
	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		t.Fatalf("FullPCMBuffer returned error: %v", err)
	}

	if decoder.SampleRate != 24000 {
		t.Fatalf("decoded sample rate = %d, want 24000", decoder.SampleRate)
	}
	if decoder.NumChans != 1 {
		t.Fatalf("decoded channels = %d, want 1", decoder.NumChans)
	}
	if decoder.BitDepth != 16 {
		t.Fatalf("decoded bit depth = %d, want 16", decoder.BitDepth)
	}

	want := make([]int, len(samples))
	for i, s := range samples {
		want[i] = int(s)
	}
	if diff := cmp.Diff(want, buf.Data); diff != "" {
		t.Fatalf("decoded samples mismatch (-want +got):\n%s", diff)
	}
}

func TestValidatePCM(t *testing.T) {
	if err := ValidatePCM(make([]byte, 8), 2); err != nil {
		t.Fatalf("aligned input returned error: %v", err)
	}
	if err := ValidatePCM(nil, 1); err != nil {
		t.Fatalf("empty input returned error: %v", err)
	}

	err := ValidatePCM(make([]byte, 6), 2)
	if !errors.Is(err, ErrUnalignedPCM) {
		t.Fatalf("expected ErrUnalignedPCM, got %v", err)
	}

	if err := ValidatePCM(make([]byte, 4), 0); err == nil {
		t.Fatal("expected error for zero channels")
	}
}
