package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"undefended/internal/event"
)

func drain(t *testing.T, s beep.Streamer, limit int) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	peak := 0.0
	for total < limit {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			peak = math.Max(peak, math.Abs(buf[i][0]))
			if buf[i][0] != buf[i][1] {
				t.Fatalf("channels differ at %d", total+i)
			}
		}
		total += n
		if !ok {
			break
		}
	}
	return total, peak
}

func TestEffectsAreFiniteAndInRange(t *testing.T) {
	sounds := []event.Sound{
		event.SoundBad, event.SoundBuild, event.SoundFeed,
		event.SoundDamage, event.SoundPowerDown, event.SoundLaser,
	}
	limit := sampleRate.N(2 * time.Second)
	for _, s := range sounds {
		t.Run(string(s), func(t *testing.T) {
			n, peak := drain(t, Synthesize(s), limit)
			if n == 0 || n >= limit {
				t.Errorf("length = %d samples", n)
			}
			if peak == 0 || peak > 1 {
				t.Errorf("peak = %v", peak)
			}
		})
	}
}

func TestUnknownSoundIsSilent(t *testing.T) {
	n, _ := drain(t, Synthesize("nope"), 1000)
	if n != 0 {
		t.Errorf("unknown sound produced %d samples", n)
	}
}

func TestMusicNeverEnds(t *testing.T) {
	limit := sampleRate.N(3 * time.Second)
	n, peak := drain(t, NewMusic(), limit)
	if n < limit {
		t.Errorf("music ended after %d samples", n)
	}
	if peak == 0 || peak > 1 {
		t.Errorf("peak = %v", peak)
	}
}

func TestVolume(t *testing.T) {
	if v := Volume(nil, 0); !v.Silent {
		t.Error("zero volume not silent")
	}
	if v := Volume(nil, 100); v.Silent || v.Volume != 0 {
		t.Errorf("full volume = %+v", v)
	}
	if v := Volume(nil, 50); math.Abs(v.Volume+1) > 1e-9 {
		t.Errorf("half volume exponent = %v, want -1", v.Volume)
	}
}

func TestManagerWithoutDevice(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("silent manager panicked: %v", r)
		}
	}()
	m := NewManager()
	m.SetSfxVolume(50)
	m.SetMusicVolume(20)
	m.StartMusic()
	m.OnEvent(event.PlaySoundEvent(event.SoundBuild))
	m.PlayAt(event.SoundBad, 100)
	m.Close()
}
