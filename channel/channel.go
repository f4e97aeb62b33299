package channel

import (
	"math/rand"
	"time"

	log "github.com/harlequix/hamming/log"
	prot "github.com/harlequix/hamming/protocol"
	"github.com/pkg/errors"
)

// Config of a simulated channel. A zero FlipProbability gives a pure binary
// erasure channel.
type Config struct {
	ErasureProbability float64
	FlipProbability    float64
	Seed               int64
}

type Stats struct {
	Symbols int
	Erased  int
	Flipped int
}

// Channel erases and flips symbols at random. It is not safe for concurrent
// use.
type Channel struct {
	config Config
	rng    *rand.Rand
	stats  Stats
	logger *log.Logger
}

func New(config Config) (*Channel, error) {
	if err := checkProbability("erasure", config.ErasureProbability); err != nil {
		return nil, err
	}
	if err := checkProbability("flip", config.FlipProbability); err != nil {
		return nil, err
	}
	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Channel{
		config: config,
		rng:    rand.New(rand.NewSource(seed)),
		logger: log.NewLogger("Channel"),
	}, nil
}

func checkProbability(name string, p float64) error {
	if p < 0 || p > 1 {
		return errors.Errorf("%s probability %v outside [0, 1]", name, p)
	}
	return nil
}

// Transmit returns a copy of codeword as the receiver would see it.
func (c *Channel) Transmit(codeword []prot.Symbol) []prot.Symbol {
	out := make([]prot.Symbol, len(codeword))
	erased, flipped := 0, 0
	for i, sym := range codeword {
		switch {
		case c.rng.Float64() < c.config.ErasureProbability:
			out[i] = prot.ERASED
			erased++
		case c.config.FlipProbability > 0 && c.rng.Float64() < c.config.FlipProbability:
			out[i] = sym.Flip()
			flipped++
		default:
			out[i] = sym
		}
	}
	c.stats.Symbols += len(codeword)
	c.stats.Erased += erased
	c.stats.Flipped += flipped
	c.logger.WithField("symbols", len(codeword)).
		WithField("erased", erased).
		WithField("flipped", flipped).
		Debug("transmitted")
	return out
}

func (c *Channel) Stats() Stats {
	return c.stats
}

func (c *Channel) Rand() *rand.Rand {
	return c.rng
}

// RandomBits draws an n-bit message.
func RandomBits(rng *rand.Rand, n int) string {
	bits := make([]byte, n)
	for i := range bits {
		if rng.Float64() < 0.5 {
			bits[i] = byte(prot.ZERO)
		} else {
			bits[i] = byte(prot.ONE)
		}
	}
	return string(bits)
}

// Lossless passes codewords through untouched.
type Lossless struct{}

func (Lossless) Transmit(codeword []prot.Symbol) []prot.Symbol {
	out := make([]prot.Symbol, len(codeword))
	copy(out, codeword)
	return out
}
