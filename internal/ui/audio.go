package ui

import (
	"encoding/binary"
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// SoundType represents different sound effects.
type SoundType int

const (
	SoundMove SoundType = iota
	SoundCapture
	SoundInvalid
	SoundUndo
	SoundGameEnd
)

const sampleRate = 44100

// envelope returns the gain at progress p in [0, 1).
type envelope func(p float64) float64

// wave returns the signal at time t seconds.
type wave func(t float64) float64

func decay(rate float64) envelope {
	return func(p float64) float64 { return math.Exp(-p * rate) }
}

func linearFade(p float64) float64 { return 1 - p }

func attackRelease(attack float64) envelope {
	return func(p float64) float64 {
		if p < attack {
			return p / attack
		}
		return 1 - (p-attack)/(1-attack)
	}
}

// woodClick is a sine roughened with high-frequency texture.
func woodClick(freq float64) wave {
	return func(t float64) float64 {
		texture := (math.Sin(t*sampleRate*0.3) + math.Sin(t*sampleRate*0.7)) * 0.3
		return math.Sin(2*math.Pi*freq*t) + texture
	}
}

func buzz(freq float64) wave {
	return func(t float64) float64 {
		return math.Sin(2*math.Pi*freq*t) + 0.3*math.Sin(4*math.Pi*freq*t)
	}
}

func chord(freqs ...float64) wave {
	return func(t float64) float64 {
		s := 0.0
		for _, f := range freqs {
			s += math.Sin(2 * math.Pi * f * t)
		}
		return s / float64(len(freqs))
	}
}

type tone struct {
	seconds float64
	gain    float64
	wave    wave
	env     envelope
}

var tones = map[SoundType]tone{
	SoundMove:    {0.08, 0.3, woodClick(440), decay(2.4)},
	SoundCapture: {0.12, 0.5, woodClick(330), decay(3.6)},
	SoundUndo:    {0.08, 0.25, woodClick(520), decay(2.4)},
	SoundInvalid: {0.1, 0.15, buzz(150), linearFade},
	SoundGameEnd: {0.4, 0.5, chord(261.63, 329.63, 392.00), attackRelease(0.1)},
}

// render produces stereo 16-bit little-endian PCM.
func (tn tone) render() []byte {
	n := int(sampleRate * tn.seconds)
	pcm := make([]byte, 4*n)
	for i := range n {
		v := tn.wave(float64(i)/sampleRate) * tn.env(float64(i)/float64(n)) * tn.gain
		s := uint16(int16(math.Max(-1, math.Min(1, v)) * math.MaxInt16))
		binary.LittleEndian.PutUint16(pcm[4*i:], s)
		binary.LittleEndian.PutUint16(pcm[4*i+2:], s)
	}
	return pcm
}

// AudioManager plays the synthesized effects.
type AudioManager struct {
	context *audio.Context
	pcm     map[SoundType][]byte
	enabled bool
	volume  float64
}

// NewAudioManager renders every tone up front.
func NewAudioManager() *AudioManager {
	am := &AudioManager{
		context: audio.NewContext(sampleRate),
		pcm:     make(map[SoundType][]byte, len(tones)),
		enabled: true,
		volume:  0.5,
	}
	for st, tn := range tones {
		am.pcm[st] = tn.render()
	}
	return am
}

// Play starts sound on its own player so effects can overlap.
func (am *AudioManager) Play(sound SoundType) {
	data, ok := am.pcm[sound]
	if !am.enabled || !ok {
		return
	}
	p := am.context.NewPlayerFromBytes(data)
	p.SetVolume(am.volume)
	p.Play()
}

// SetEnabled enables or disables audio.
func (am *AudioManager) SetEnabled(enabled bool) { am.enabled = enabled }

// IsEnabled reports whether audio is enabled.
func (am *AudioManager) IsEnabled() bool { return am.enabled }
