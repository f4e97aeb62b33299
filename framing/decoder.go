package framing

import (
	"github.com/harlequix/hamming/encoding"
	log "github.com/harlequix/hamming/log"
	prot "github.com/harlequix/hamming/protocol"
	"github.com/pkg/errors"
)

// Decoder decodes a stream whose symbols arrive piecemeal. Each block is
// decoded as soon as its seventh symbol is pushed.
type Decoder struct {
	field   []prot.Symbol
	decoded []prot.Symbol
	results []encoding.Result
	read    int
	metrics *Metrics
	log     *log.Logger
}

func NewDecoder(metrics *Metrics) *Decoder {
	return &Decoder{
		field:   make([]prot.Symbol, 0, prot.BlockLen),
		metrics: metrics,
		log:     log.NewLogger("Decoder"),
	}
}

func (d *Decoder) Push(sym prot.Symbol) {
	d.field = append(d.field, sym)
	d.read++
	if len(d.field) == prot.BlockLen {
		d.yield()
	}
}

// Write accepts symbols in the text alphabet {0,1,?}. Whitespace is skipped
// so line-oriented input can be copied straight in.
func (d *Decoder) Write(p []byte) (int, error) {
	for i, c := range p {
		switch c {
		case ' ', '\t', '\r', '\n':
			continue
		}
		sym := prot.Symbol(c)
		if !sym.IsBit() && !sym.IsErased() {
			return i, errors.Wrapf(prot.ErrInvalidSymbol, "%q after %d symbols", c, d.read)
		}
		d.Push(sym)
	}
	return len(p), nil
}

func (d *Decoder) yield() {
	res := encoding.DecodeBlock(prot.NewBlock(d.field))
	d.field = d.field[:0]
	d.results = append(d.results, res)
	d.decoded = append(d.decoded, res.Nibble[:]...)
	d.metrics.observe(res)
	if !res.Status.Resolved() {
		d.log.WithField("block", len(d.results)-1).
			WithField("received", res.Received.String()).
			WithField("status", res.Status.String()).
			Info("block left unresolved")
	}
}

// Close fails with ErrLength if no symbol arrived or a partial block is
// still buffered.
func (d *Decoder) Close() error {
	return CheckLength(d.read)
}

func (d *Decoder) Decoded() []prot.Symbol {
	out := make([]prot.Symbol, len(d.decoded))
	copy(out, d.decoded)
	return out
}

func (d *Decoder) Results() []encoding.Result {
	out := make([]encoding.Result, len(d.results))
	copy(out, d.results)
	return out
}

// Pending is the number of symbols waiting for their block to complete.
func (d *Decoder) Pending() int {
	return len(d.field)
}
