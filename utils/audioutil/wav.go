package audioutil

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// WAVMimeType is the MIME type of the encoded container, suitable for
// file downloads.
const WAVMimeType = "audio/wav"

const wavHeaderSize = 44

// ErrUnalignedPCM reports a PCM byte length that is not a whole number of
// frames.
var ErrUnalignedPCM = errors.New("pcm byte length is not frame aligned")

// EncodeWAV wraps raw signed 16-bit little-endian PCM bytes in a canonical
// RIFF/WAVE container: a 44-byte header followed by the input bytes verbatim.
// Output length is always 44+len(pcm) and the function is pure, so identical
// inputs produce identical bytes.
//
// The input byte count is not validated; odd-length input yields a
// structurally valid but semantically corrupt file. Callers that want a
// validation gate run ValidatePCM first.
func EncodeWAV(pcm []byte, sampleRate, numChannels int) []byte {
	const bitsPerSample = 16

	dataSize := uint32(len(pcm))
	byteRate := uint32(sampleRate) * uint32(numChannels) * bitsPerSample / 8
	blockAlign := uint16(numChannels) * bitsPerSample / 8

	out := make([]byte, wavHeaderSize+len(pcm))

	// RIFF header (12 bytes)
	copy(out[0:4], "RIFF")
	binary.LittleEndian.PutUint32(out[4:8], 36+dataSize)
	copy(out[8:12], "WAVE")

	// fmt chunk (24 bytes)
	copy(out[12:16], "fmt ")
	binary.LittleEndian.PutUint32(out[16:20], 16) // PCM fmt chunk size
	binary.LittleEndian.PutUint16(out[20:22], 1)  // PCM format
	binary.LittleEndian.PutUint16(out[22:24], uint16(numChannels))
	binary.LittleEndian.PutUint32(out[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(out[28:32], byteRate)
	binary.LittleEndian.PutUint16(out[32:34], blockAlign)
	binary.LittleEndian.PutUint16(out[34:36], bitsPerSample)

	// data chunk header (8 bytes) + samples
	copy(out[36:40], "data")
	binary.LittleEndian.PutUint32(out[40:44], dataSize)
	copy(out[wavHeaderSize:], pcm)

	return out
}

// ValidatePCM checks that pcm holds a whole number of 16-bit frames for the
// given channel count. EncodeWAV never runs this itself; the gate is opt-in.
func ValidatePCM(pcm []byte, numChannels int) error {
	if numChannels < 1 {
		return fmt.Errorf("channel count must be at least 1, got %d", numChannels)
	}
	if len(pcm)%(2*numChannels) != 0 {
		return fmt.Errorf("%w: %d bytes across %d channels", ErrUnalignedPCM, len(pcm), numChannels)
	}
	return nil
}
