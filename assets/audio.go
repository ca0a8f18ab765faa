package assets

import (
	"fmt"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

var (
	audioOnce    sync.Once
	audioContext *audio.Context
)

// AudioContext returns the process-wide audio context, created on first use.
func AudioContext() *audio.Context {
	audioOnce.Do(func() {
		audioContext = audio.NewContext(SampleRate)
	})
	return audioContext
}

// SoundBank holds pre-rendered PCM for every synthesized effect.
type SoundBank struct {
	ctx    *audio.Context
	pcm    map[string][]byte
	master float64
}

func NewSoundBank(ctx *audio.Context, master float64) (*SoundBank, error) {
	if ctx == nil {
		return nil, fmt.Errorf("assets: nil audio context")
	}
	bank := &SoundBank{ctx: ctx, pcm: make(map[string][]byte), master: master}
	for _, name := range SoundNames() {
		s, err := Synthesize(name)
		if err != nil {
			return nil, err
		}
		bank.pcm[name] = RenderPCM(s)
	}
	return bank, nil
}

// Play starts a new player for the named effect at volume times the master volume.
func (b *SoundBank) Play(name string, volume float64) error {
	data, ok := b.pcm[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownSound, name)
	}
	player := b.ctx.NewPlayerFromBytes(data)
	player.SetVolume(volume * b.master)
	player.Play()
	return nil
}
