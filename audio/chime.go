package audio

import (
	"fmt"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Pentatonic ratios over the base note; attractor index picks the degree
var pentatonic = [...]float64{1, 9.0 / 8, 5.0 / 4, 3.0 / 2, 5.0 / 3}

const (
	chimeBaseFreq   = 523.25 // C5
	chimeMinLength  = 120 * time.Millisecond
	chimeMaxLength  = 600 * time.Millisecond
	chimeAttack     = 5 * time.Millisecond
	chimeMassScale  = 60 * time.Millisecond
	chimeVolumeMass = 0.25
)

// Player receives finished streamers; the speaker in production, a recorder in tests
type Player interface {
	Play(s ...beep.Streamer)
}

type speakerPlayer struct{}

func (speakerPlayer) Play(s ...beep.Streamer) { speaker.Play(s...) }

// ChimeConfig controls the absorption chime
type ChimeConfig struct {
	Enabled bool

	// Volume is the effects.Volume exponent (base 2); 0 is unity, -1 is half amplitude
	Volume float64

	// MinInterval throttles chimes so a burst of absorptions does not stack
	MinInterval time.Duration
}

// DefaultChimeConfig returns a quiet, throttled chime
func DefaultChimeConfig() ChimeConfig {
	return ChimeConfig{
		Enabled:     true,
		Volume:      -3,
		MinInterval: 180 * time.Millisecond,
	}
}

// Chime plays a short tone whenever a particle completes its fade into an attractor
type Chime struct {
	mu     sync.Mutex
	cfg    ChimeConfig
	player Player
	last   time.Time
	now    func() time.Time

	initialized bool
	played      atomic.Int64
	dropped     atomic.Int64
}

// NewChime creates a chime; Init attaches it to the speaker
func NewChime(cfg ChimeConfig) *Chime {
	return &Chime{cfg: cfg, now: time.Now}
}

// NewChimeWithPlayer creates an initialized chime playing into p
func NewChimeWithPlayer(cfg ChimeConfig, p Player) *Chime {
	return &Chime{cfg: cfg, now: time.Now, player: p, initialized: true}
}

// Init opens the audio device
// On failure the chime stays silent; the error is returned for logging only
func (c *Chime) Init() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized || !c.cfg.Enabled {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}
	c.player = speakerPlayer{}
	c.initialized = true
	return nil
}

// Close releases the audio device
func (c *Chime) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	if _, ok := c.player.(speakerPlayer); ok {
		speaker.Close()
	}
	c.initialized = false
	c.player = nil
}

// Absorb is an absorption callback: idx selects the pitch, mass the length and loudness
// Calls inside MinInterval of the previous chime are dropped
func (c *Chime) Absorb(idx int, mass float64) {
	c.mu.Lock()
	if !c.initialized || !c.cfg.Enabled || c.player == nil {
		c.mu.Unlock()
		return
	}
	now := c.now()
	if !c.last.IsZero() && now.Sub(c.last) < c.cfg.MinInterval {
		c.mu.Unlock()
		c.dropped.Add(1)
		return
	}
	c.last = now
	p := c.player
	c.mu.Unlock()

	s, err := c.Tone(idx, mass)
	if err != nil {
		c.dropped.Add(1)
		return
	}
	p.Play(s)
	c.played.Add(1)
}

// Played returns how many chimes were sent to the player
func (c *Chime) Played() int64 { return c.played.Load() }

// Dropped returns how many chimes were throttled or failed
func (c *Chime) Dropped() int64 { return c.dropped.Load() }

// Frequency returns the pitch for an attractor index
func Frequency(idx int) float64 {
	if idx < 0 {
		idx = -idx
	}
	degree := pentatonic[idx%len(pentatonic)]
	octave := float64(idx / len(pentatonic) % 2)
	return chimeBaseFreq * degree * math.Pow(2, octave)
}

// ToneLength grows with mass between chimeMinLength and chimeMaxLength
func ToneLength(mass float64) time.Duration {
	d := chimeMinLength + time.Duration(math.Max(mass-1, 0)*float64(chimeMassScale))
	if d > chimeMaxLength {
		d = chimeMaxLength
	}
	return d
}

// Tone builds the finite streamer for one chime
func (c *Chime) Tone(idx int, mass float64) (beep.Streamer, error) {
	sine, err := generators.SineTone(sampleRate, Frequency(idx))
	if err != nil {
		return nil, fmt.Errorf("sine tone: %w", err)
	}

	length := sampleRate.N(ToneLength(mass))
	shaped := newPluck(beep.Take(length, sine), length, sampleRate.N(chimeAttack))

	// Heavier particles ring slightly louder, never above the configured level
	vol := c.cfg.Volume - chimeVolumeMass*math.Max(0, 4-mass)
	return &effects.Volume{Streamer: shaped, Base: 2, Volume: vol}, nil
}

// pluck applies a short linear attack and an exponential tail
type pluck struct {
	streamer beep.Streamer
	pos      int
	total    int
	attack   int
}

func newPluck(s beep.Streamer, total, attack int) *pluck {
	if attack < 1 {
		attack = 1
	}
	return &pluck{streamer: s, total: total, attack: attack}
}

func (p *pluck) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = p.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		var gain float64
		if p.pos < p.attack {
			gain = float64(p.pos) / float64(p.attack)
		} else {
			t := float64(p.pos-p.attack) / float64(max(p.total-p.attack, 1))
			gain = math.Exp(-5 * t)
		}
		samples[i][0] *= gain
		samples[i][1] *= gain
		p.pos++
	}
	return n, ok
}

func (p *pluck) Err() error {
	return p.streamer.Err()
}
