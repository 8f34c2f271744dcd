package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// Sound timing
const (
	TickDuration = 40 * time.Millisecond
	TickAttack   = 2 * time.Millisecond
	TickRelease  = 30 * time.Millisecond

	SweepDuration = 180 * time.Millisecond
	SweepAttack   = 5 * time.Millisecond
	SweepRelease  = 150 * time.Millisecond
)

// tickBaseFreq is the pitch of the first palette entry, each following shape climbs a whole tone
const tickBaseFreq = 440.0

// noise generates white noise for a fixed duration
type noise struct {
	remaining int
	rng       *rand.Rand
}

// NewNoise creates a white noise streamer
func NewNoise(duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &noise{
		remaining: rate.N(duration),
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (n *noise) Stream(samples [][2]float64) (int, bool) {
	if n.remaining <= 0 {
		return 0, false
	}
	count := len(samples)
	if count > n.remaining {
		count = n.remaining
	}
	for i := 0; i < count; i++ {
		val := n.rng.Float64()*2 - 1
		samples[i][0] = val
		samples[i][1] = val
	}
	n.remaining -= count
	return count, true
}

func (n *noise) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/release envelope cut at duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.position >= e.totalSamples {
		return 0, false
	}

	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0

		// Attack phase
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		// Release phase
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = float64(remaining) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s with a linear volume in [0, 1]
// math.Log2(0) is -Inf, so 0 volume is made silent instead
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// TickFrequency returns the pitch used for palette entry index
func TickFrequency(index int) float64 {
	return tickBaseFreq * math.Pow(2, float64(2*index)/12)
}

// CreateTickSound generates the short blip played when the selected shape changes
func CreateTickSound(index int, vol float64, rate beep.SampleRate) (beep.Streamer, error) {
	tone, err := generators.SineTone(rate, TickFrequency(index))
	if err != nil {
		return nil, err
	}
	shaped := NewEnvelope(tone, TickDuration, TickAttack, TickRelease, rate)
	return newVolume(shaped, vol), nil
}

// CreateSweepSound generates the noise burst played when the grid is cleared
func CreateSweepSound(vol float64, rate beep.SampleRate) beep.Streamer {
	shaped := NewEnvelope(NewNoise(SweepDuration, rate), SweepDuration, SweepAttack, SweepRelease, rate)
	return newVolume(shaped, vol*0.5)
}
