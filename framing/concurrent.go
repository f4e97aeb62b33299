package framing

import (
	"context"

	"github.com/harlequix/hamming/encoding"
	prot "github.com/harlequix/hamming/protocol"
	"golang.org/x/sync/errgroup"
)

// DecodeConcurrent decodes like DecodeBlocks but spreads contiguous ranges of
// blocks over workers goroutines. Blocks are independent, so the results are
// identical to the sequential decode.
func DecodeConcurrent(ctx context.Context, symbols []prot.Symbol, workers int) ([]encoding.Result, error) {
	if err := CheckLength(len(symbols)); err != nil {
		return nil, err
	}
	blocks := len(symbols) / prot.BlockLen
	if workers < 1 {
		workers = 1
	}
	if workers > blocks {
		workers = blocks
	}
	results := make([]encoding.Result, blocks)
	share := (blocks + workers - 1) / workers

	group, ctx := errgroup.WithContext(ctx)
	for from := 0; from < blocks; from += share {
		from := from
		to := from + share
		if to > blocks {
			to = blocks
		}
		group.Go(func() error {
			for i := from; i < to; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				results[i] = decodeAt(symbols, i)
			}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
