package assets

import (
	"errors"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

func TestSynthesizePresets(t *testing.T) {
	for _, name := range []string{"shot_light", "shot_heavy", "button_hover", "button_click", "splat"} {
		t.Run(name, func(t *testing.T) {
			s, err := Synthesize(name)
			if err != nil {
				t.Fatalf("synthesize: %v", err)
			}
			pcm := RenderPCM(s)
			if len(pcm) == 0 || len(pcm)%4 != 0 {
				t.Fatalf("expected whole stereo frames, got %d bytes", len(pcm))
			}
			silent := true
			for _, b := range pcm {
				if b != 0 {
					silent = false
					break
				}
			}
			if silent {
				t.Fatal("rendered sound is silent")
			}
		})
	}
}

func TestSynthesizeUnknown(t *testing.T) {
	if _, err := Synthesize("nope"); !errors.Is(err, ErrUnknownSound) {
		t.Fatalf("expected ErrUnknownSound, got %v", err)
	}
}

func TestRenderPCMLength(t *testing.T) {
	rate := beep.SampleRate(SampleRate)
	s := newOscillator(440, 0, 100*time.Millisecond, WaveSine, rate, 1)
	pcm := RenderPCM(s)
	if want := rate.N(100*time.Millisecond) * 4; len(pcm) != want {
		t.Fatalf("expected %d bytes, got %d", want, len(pcm))
	}
}

func TestEnvelopeFadesOut(t *testing.T) {
	rate := beep.SampleRate(SampleRate)
	d := 50 * time.Millisecond
	s := newEnvelope(newOscillator(0, 0, d, WaveSquare, rate, 1), d, 0, d, rate)

	buf := make([][2]float64, rate.N(d))
	n, _ := s.Stream(buf)
	if n != len(buf) {
		t.Fatalf("expected %d samples, got %d", len(buf), n)
	}
	if buf[0][0] != 1 {
		t.Fatalf("release should start at full gain, got %v", buf[0][0])
	}
	if last := buf[n-1][0]; last <= 0 || last > 0.01 {
		t.Fatalf("release should end near zero, got %v", last)
	}
}

func TestWithVolumeSilent(t *testing.T) {
	rate := beep.SampleRate(SampleRate)
	s := withVolume(newOscillator(0, 0, 10*time.Millisecond, WaveSquare, rate, 1), 0)
	for _, b := range RenderPCM(s) {
		if b != 0 {
			t.Fatal("zero volume must be silent")
		}
	}
}
