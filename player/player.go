// Package player plays synthesized audio through the system audio device
// using oto. A Player also serves as the buffer allocator for
// audioutil.DecodeAudioData, so decoded buffers are playback-ready.
package player

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"

	voxkit "github.com/voxkit/voxkit-go"
	"github.com/voxkit/voxkit-go/utils/audioutil"
)

// mp3 frames always decode to two interleaved channels with go-mp3.
const mp3NumChannels = 2

// Player plays AudioBuffers through a single audio device context. Playback
// is last-writer-wins: starting a clip stops the one currently playing.
//
// The underlying device context is created on the first Play call and is
// fixed to that clip's sample rate and channel count; later clips must match.
type Player struct {
	mu sync.Mutex

	otoCtx      *oto.Context
	sampleRate  int
	numChannels int

	current *oto.Player
}

func NewPlayer() *Player {
	return &Player{}
}

// CreateBuffer allocates a playback-ready buffer. It rejects non-positive
// frame counts, channel counts, and sample rates.
func (p *Player) CreateBuffer(numChannels, frameCount, sampleRate int) (*audioutil.AudioBuffer, error) {
	if numChannels < 1 || frameCount < 0 || sampleRate < 1 {
		return nil, &audioutil.BufferAllocationError{
			NumChannels: numChannels,
			FrameCount:  frameCount,
			SampleRate:  sampleRate,
			Err:         fmt.Errorf("parameters out of range"),
		}
	}

	data := make([][]float32, numChannels)
	for ch := range data {
		data[ch] = make([]float32, frameCount)
	}

	return &audioutil.AudioBuffer{
		Data:       data,
		SampleRate: sampleRate,
	}, nil
}

// Play starts playback of the buffer, stopping any clip already playing. It
// returns without waiting for playback to finish; use Wait to block.
func (p *Player) Play(buf *audioutil.AudioBuffer) error {
	if buf.NumChannels() < 1 {
		return fmt.Errorf("player: buffer has no channels")
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.ensureContext(buf.SampleRate, buf.NumChannels()); err != nil {
		return err
	}

	if p.current != nil {
		p.current.Close()
	}

	p.current = p.otoCtx.NewPlayer(bytes.NewReader(interleaveS16LE(buf)))
	p.current.Play()
	return nil
}

// PlayResponse decodes a synthesis response and plays it. Raw linear16
// payloads decode directly; mp3 and wav payloads go through their container
// decoders first.
func (p *Player) PlayResponse(response *voxkit.SpeechResponse) error {
	data, err := audioutil.DecodeBase64(response.Audio.AudioData)
	if err != nil {
		return err
	}

	buf, err := p.decodeResponseAudio(&response.Audio, data)
	if err != nil {
		return err
	}

	return p.Play(buf)
}

func (p *Player) decodeResponseAudio(audio *voxkit.AudioOutput, data []byte) (*audioutil.AudioBuffer, error) {
	switch audio.Format {
	case voxkit.AudioFormatLinear16:
		sampleRate := audioutil.DefaultSampleRate
		if audio.SampleRate != nil {
			sampleRate = *audio.SampleRate
		}
		numChannels := audioutil.DefaultNumChannels
		if audio.Channels != nil {
			numChannels = *audio.Channels
		}
		return audioutil.DecodeAudioData(p, data, sampleRate, numChannels)

	case voxkit.AudioFormatMP3:
		decoder, err := mp3.NewDecoder(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("player: decode mp3: %w", err)
		}
		pcm, err := io.ReadAll(decoder)
		if err != nil {
			return nil, fmt.Errorf("player: decode mp3: %w", err)
		}
		return audioutil.DecodeAudioData(p, pcm, decoder.SampleRate(), mp3NumChannels)

	case voxkit.AudioFormatWav:
		decoder := wav.NewDecoder(bytes.NewReader(data))
		intBuf, err := decoder.FullPCMBuffer()
		if err != nil {
			return nil, fmt.Errorf("player: decode wav: %w", err)
		}
		return audioutil.FromIntBuffer(intBuf), nil

	default:
		return nil, fmt.Errorf("player: unsupported playback format: %s", audio.Format)
	}
}

// Wait blocks until the current clip finishes playing. It returns
// immediately when nothing is playing.
func (p *Player) Wait() {
	for {
		p.mu.Lock()
		playing := p.current != nil && p.current.IsPlaying()
		p.mu.Unlock()
		if !playing {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
}

// Stop stops the current clip, if any.
func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.current != nil {
		p.current.Close()
		p.current = nil
	}
}

// Close stops playback and releases the player. The device context itself
// stays open for the life of the process.
func (p *Player) Close() error {
	p.Stop()
	return nil
}

func (p *Player) ensureContext(sampleRate, numChannels int) error {
	if p.otoCtx != nil {
		if sampleRate != p.sampleRate || numChannels != p.numChannels {
			return fmt.Errorf("player: device context is fixed at %d Hz, %d ch; got %d Hz, %d ch",
				p.sampleRate, p.numChannels, sampleRate, numChannels)
		}
		return nil
	}

	otoCtx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: numChannels,
		Format:       oto.FormatSignedInt16LE,
	})
	if err != nil {
		return fmt.Errorf("player: create device context: %w", err)
	}
	<-ready

	p.otoCtx = otoCtx
	p.sampleRate = sampleRate
	p.numChannels = numChannels
	return nil
}

// interleaveS16LE converts a planar normalized buffer to the interleaved
// signed 16-bit little-endian stream oto consumes.
func interleaveS16LE(buf *audioutil.AudioBuffer) []byte {
	intBuf := buf.IntBuffer()
	out := make([]byte, len(intBuf.Data)*2)
	for i, sample := range intBuf.Data {
		binary.LittleEndian.PutUint16(out[i*2:], uint16(int16(sample)))
	}
	return out
}
