package assets

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/gopxl/beep"
)

const SampleRate = 44100

var ErrUnknownSound = errors.New("assets: unknown sound")

// Voice is one enveloped oscillator layer of a sound.
type Voice struct {
	Wave     WaveType
	Freq     float64
	FreqEnd  float64
	Duration time.Duration
	Attack   time.Duration
	Release  time.Duration
	Gain     float64
}

// soundPresets are the game's effects, keyed by the names used in tower
// definitions and menus.
var soundPresets = map[string][]Voice{
	"shot_light": {
		{Wave: WaveSquare, Freq: 880, FreqEnd: 220, Duration: 90 * time.Millisecond, Attack: 2 * time.Millisecond, Release: 60 * time.Millisecond, Gain: 0.35},
		{Wave: WaveNoise, Duration: 40 * time.Millisecond, Release: 35 * time.Millisecond, Gain: 0.2},
	},
	"shot_heavy": {
		{Wave: WaveSaw, Freq: 160, FreqEnd: 45, Duration: 260 * time.Millisecond, Attack: 3 * time.Millisecond, Release: 200 * time.Millisecond, Gain: 0.5},
		{Wave: WaveNoise, Duration: 120 * time.Millisecond, Release: 100 * time.Millisecond, Gain: 0.35},
	},
	"button_hover": {
		{Wave: WaveSine, Freq: 1320, Duration: 45 * time.Millisecond, Attack: 3 * time.Millisecond, Release: 30 * time.Millisecond, Gain: 0.25},
	},
	"button_click": {
		{Wave: WaveSine, Freq: 660, FreqEnd: 990, Duration: 80 * time.Millisecond, Attack: 2 * time.Millisecond, Release: 50 * time.Millisecond, Gain: 0.4},
		{Wave: WaveSquare, Freq: 1980, Duration: 20 * time.Millisecond, Release: 15 * time.Millisecond, Gain: 0.08},
	},
	"splat": {
		{Wave: WaveNoise, Duration: 180 * time.Millisecond, Attack: 5 * time.Millisecond, Release: 150 * time.Millisecond, Gain: 0.4},
		{Wave: WaveSine, Freq: 140, FreqEnd: 60, Duration: 160 * time.Millisecond, Release: 120 * time.Millisecond, Gain: 0.4},
	},
}

// SoundNames lists the synthesized effects.
func SoundNames() []string {
	names := make([]string, 0, len(soundPresets))
	for name := range soundPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Synthesize builds the streamer for a named effect.
func Synthesize(name string) (beep.Streamer, error) {
	voices, ok := soundPresets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSound, name)
	}
	return synthesizeVoices(voices), nil
}

func synthesizeVoices(voices []Voice) beep.Streamer {
	rate := beep.SampleRate(SampleRate)
	var longest time.Duration
	layers := make([]beep.Streamer, 0, len(voices))
	for i, v := range voices {
		osc := newOscillator(v.Freq, v.FreqEnd, v.Duration, v.Wave, rate, int64(i+1))
		shaped := newEnvelope(osc, v.Duration, v.Attack, v.Release, rate)
		layers = append(layers, withVolume(shaped, v.Gain))
		if v.Duration > longest {
			longest = v.Duration
		}
	}
	return beep.Take(rate.N(longest), beep.Mix(layers...))
}

// maxRenderSamples bounds RenderPCM for streamers that never drain.
const maxRenderSamples = SampleRate * 5

// RenderPCM drains s into signed 16-bit little-endian stereo PCM, the format
// audio.Context.NewPlayerFromBytes expects.
func RenderPCM(s beep.Streamer) []byte {
	buf := make([][2]float64, 512)
	out := make([]byte, 0, 4*SampleRate/4)
	total := 0
	for total < maxRenderSamples {
		n, ok := s.Stream(buf)
		for _, frame := range buf[:n] {
			out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(frame[0])))
			out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(frame[1])))
		}
		total += n
		if !ok || n == 0 {
			break
		}
	}
	return out
}

func toInt16(v float64) int16 {
	v = math.Max(-1, math.Min(1, v))
	return int16(v * math.MaxInt16)
}
