// internal/audio/sounds.go
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"

	"undefended/internal/event"
)

const sampleRate = beep.SampleRate(44100)

type waveform func(phase float64) float64

func sine(phase float64) float64 { return math.Sin(2 * math.Pi * phase) }

func square(phase float64) float64 {
	if math.Mod(phase, 1) < 0.5 {
		return 1
	}
	return -1
}

func triangle(phase float64) float64 {
	p := math.Mod(phase, 1)
	return 4*math.Abs(p-0.5) - 1
}

// Tone — синтезированный звук: частота и огибающая заданы функциями времени.
// length < 0 — бесконечный звук.
type Tone struct {
	sr     beep.SampleRate
	pos    int
	length int
	phase  float64
	gain   float64
	wave   waveform
	freq   func(t float64) float64
	env    func(t float64) float64
}

func newTone(d time.Duration, gain float64, wave waveform, freq, env func(t float64) float64) *Tone {
	return &Tone{sr: sampleRate, length: sampleRate.N(d), gain: gain, wave: wave, freq: freq, env: env}
}

func (g *Tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.length >= 0 && g.pos >= g.length {
			return i, i > 0
		}
		t := float64(g.pos) / float64(g.sr)
		g.phase += g.freq(t) / float64(g.sr)
		s := g.gain * g.env(t) * g.wave(g.phase)
		samples[i][0] = s
		samples[i][1] = s
		g.pos++
	}
	return len(samples), true
}

func (g *Tone) Err() error { return nil }

// Noise — затухающий шум, детерминированный (LCG).
type Noise struct {
	pos, length int
	state       uint32
	last        float64
	gain        float64
	decay       float64
}

func (g *Noise) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.length {
			return i, i > 0
		}
		g.state = g.state*1664525 + 1013904223
		white := float64(g.state)/float64(math.MaxUint32)*2 - 1
		// простой фильтр нижних частот
		g.last += (white - g.last) * 0.3
		t := float64(g.pos) / float64(sampleRate)
		s := g.gain * math.Exp(-t*g.decay) * g.last
		samples[i][0] = s
		samples[i][1] = s
		g.pos++
	}
	return len(samples), true
}

func (g *Noise) Err() error { return nil }

// fade — короткая атака и линейное затухание к концу звука.
func fade(d time.Duration) func(t float64) float64 {
	total := d.Seconds()
	return func(t float64) float64 {
		attack := math.Min(t/0.005, 1)
		return attack * math.Max(0, 1-t/total)
	}
}

func sweep(from, to float64, d time.Duration) func(t float64) float64 {
	total := d.Seconds()
	return func(t float64) float64 {
		return from + (to-from)*math.Min(t/total, 1)
	}
}

// steps — частота меняется ступеньками по нотам равной длительности.
func steps(note time.Duration, freqs ...float64) func(t float64) float64 {
	return func(t float64) float64 {
		i := int(t / note.Seconds())
		if i >= len(freqs) {
			i = len(freqs) - 1
		}
		return freqs[i]
	}
}

// Synthesize строит звуковой эффект по имени. Неизвестное имя — тишина.
func Synthesize(s event.Sound) beep.Streamer {
	switch s {
	case event.SoundBad:
		d := 180 * time.Millisecond
		return newTone(d, 0.25, square, sweep(180, 110, d), fade(d))
	case event.SoundBuild:
		d := 300 * time.Millisecond
		return newTone(d, 0.3, triangle, steps(100*time.Millisecond, 392, 523, 659), fade(d))
	case event.SoundFeed:
		d := 160 * time.Millisecond
		return newTone(d, 0.3, sine, steps(80*time.Millisecond, 660, 880), fade(d))
	case event.SoundDamage:
		return &Noise{length: sampleRate.N(350 * time.Millisecond), state: 1, gain: 0.5, decay: 9}
	case event.SoundPowerDown:
		d := 600 * time.Millisecond
		return newTone(d, 0.3, square, sweep(600, 70, d), fade(d))
	case event.SoundLaser:
		d := 90 * time.Millisecond
		return newTone(d, 0.2, square, sweep(1400, 300, d), fade(d))
	}
	return beep.Silence(0)
}

// музыка: бас по кругу из четырёх нот и арпеджио сверху
var (
	bassLine = []float64{55, 55, 65.41, 49}
	arpNotes = []float64{220, 261.63, 329.63, 261.63}
)

const musicBeat = 0.25

// NewMusic — бесконечная фоновая музыка.
func NewMusic() beep.Streamer {
	bass := &Tone{
		sr: sampleRate, length: -1, gain: 0.18, wave: triangle,
		freq: func(t float64) float64 { return bassLine[int(t/(musicBeat*8))%len(bassLine)] },
		env:  func(t float64) float64 { return 0.6 + 0.4*math.Exp(-math.Mod(t, musicBeat*2)*6) },
	}
	arp := &Tone{
		sr: sampleRate, length: -1, gain: 0.06, wave: square,
		freq: func(t float64) float64 {
			root := bassLine[int(t/(musicBeat*8))%len(bassLine)] / 55
			return root * arpNotes[int(t/musicBeat)%len(arpNotes)]
		},
		env: func(t float64) float64 { return math.Exp(-math.Mod(t, musicBeat) * 10) },
	}
	mixer := &beep.Mixer{}
	mixer.Add(bass, arp)
	return mixer
}
