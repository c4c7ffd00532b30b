package audioutil

import (
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	"github.com/go-audio/audio"
)

// AudioBuffer holds decoded audio as per-channel sequences of normalized
// float32 samples in [-1.0, 1.0). Each decode call produces a fresh buffer;
// buffers are never shared across calls.
type AudioBuffer struct {
	// Data holds one sample slice per channel, all of equal length.
	Data       [][]float32
	SampleRate int
}

// NumChannels returns the channel count.
func (b *AudioBuffer) NumChannels() int {
	return len(b.Data)
}

// Length returns the frame count.
func (b *AudioBuffer) Length() int {
	if len(b.Data) == 0 {
		return 0
	}
	return len(b.Data[0])
}

// ChannelData returns the sample slice for the given channel.
func (b *AudioBuffer) ChannelData(channel int) []float32 {
	return b.Data[channel]
}

// Duration returns the playback duration of the buffer.
func (b *AudioBuffer) Duration() time.Duration {
	if b.SampleRate <= 0 {
		return 0
	}
	return time.Duration(b.Length()) * time.Second / time.Duration(b.SampleRate)
}

// IntBuffer converts the buffer to an interleaved go-audio int buffer with
// 16-bit source depth, clamping samples to [-1, 1].
func (b *AudioBuffer) IntBuffer() *audio.IntBuffer {
	numChannels := b.NumChannels()
	frames := b.Length()

	data := make([]int, frames*numChannels)
	for ch := 0; ch < numChannels; ch++ {
		for i, sample := range b.Data[ch] {
			data[i*numChannels+ch] = int(float32ToInt16(sample))
		}
	}

	return &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: numChannels,
			SampleRate:  b.SampleRate,
		},
		Data:           data,
		SourceBitDepth: 16,
	}
}

// FromIntBuffer converts an interleaved go-audio int buffer into a planar
// normalized buffer. Samples are scaled by the buffer's source bit depth
// (16-bit when unset).
func FromIntBuffer(buf *audio.IntBuffer) *AudioBuffer {
	numChannels := buf.Format.NumChannels
	if numChannels < 1 {
		numChannels = 1
	}
	frames := len(buf.Data) / numChannels

	bitDepth := buf.SourceBitDepth
	if bitDepth <= 0 {
		bitDepth = 16
	}
	scale := float32(int(1) << (bitDepth - 1))

	data := make([][]float32, numChannels)
	for ch := 0; ch < numChannels; ch++ {
		channelData := make([]float32, frames)
		for i := 0; i < frames; i++ {
			channelData[i] = float32(buf.Data[i*numChannels+ch]) / scale
		}
		data[ch] = channelData
	}

	return &AudioBuffer{
		Data:       data,
		SampleRate: buf.Format.SampleRate,
	}
}

// float32ToInt16 clamps x to [-1, 1] and scales to int16. The positive max
// scales by 32767 to avoid overflow.
func float32ToInt16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}
	return int16(x * 32767.0)
}

// BufferContext allocates playback-ready audio buffers. The playback
// subsystem supplies the implementation and owns the buffers it creates.
type BufferContext interface {
	CreateBuffer(numChannels, frameCount, sampleRate int) (*AudioBuffer, error)
}

// BufferAllocationError reports that a BufferContext rejected the requested
// buffer parameters.
type BufferAllocationError struct {
	NumChannels int
	FrameCount  int
	SampleRate  int
	Err         error
}

func (e *BufferAllocationError) Error() string {
	return fmt.Sprintf("audioutil: allocate buffer (%d ch, %d frames, %d Hz): %v",
		e.NumChannels, e.FrameCount, e.SampleRate, e.Err)
}

func (e *BufferAllocationError) Unwrap() error {
	return e.Err
}

// DecodeAudioData interprets data as interleaved signed 16-bit little-endian
// PCM samples and fills a buffer allocated by ctx with normalized float32
// samples (int16 value divided by 32768).
//
// A trailing partial frame (byte length not a multiple of 2*numChannels) is
// silently truncated, not an error. The input slice is never mutated. The
// computation itself is synchronous and deterministic.
func DecodeAudioData(ctx BufferContext, data []byte, sampleRate, numChannels int) (*AudioBuffer, error) {
	if numChannels < 1 {
		return nil, &BufferAllocationError{
			NumChannels: numChannels,
			SampleRate:  sampleRate,
			Err:         fmt.Errorf("channel count must be at least 1"),
		}
	}

	// Integer division drops the trailing partial frame.
	frameCount := len(data) / 2 / numChannels

	buf, err := ctx.CreateBuffer(numChannels, frameCount, sampleRate)
	if err != nil {
		var allocErr *BufferAllocationError
		if !errors.As(err, &allocErr) {
			err = &BufferAllocationError{
				NumChannels: numChannels,
				FrameCount:  frameCount,
				SampleRate:  sampleRate,
				Err:         err,
			}
		}
		return nil, err
	}

	for ch := 0; ch < numChannels; ch++ {
		channelData := buf.Data[ch]
		for i := 0; i < frameCount; i++ {
			v := int16(binary.LittleEndian.Uint16(data[(i*numChannels+ch)*2:]))
			channelData[i] = float32(v) / 32768.0
		}
	}

	return buf, nil
}
