package transform

import (
	"context"

	"github.com/relloyd/mtgpipe/logger"
	"github.com/relloyd/mtgpipe/stats"
)

// FlushFunc writes one batch of rows and returns the number of rows actually written, which may be
// fewer than len(rows) when rows sharing a key are collapsed.
// Each row holds values in KeyColumns then OtherColumns order.
type FlushFunc func(ctx context.Context, rows [][]interface{}) (int, error)

// Batcher buffers rows and hands them to a FlushFunc once the batch size is reached.
type Batcher struct {
	log     logger.Logger
	size    int
	rows    [][]interface{}
	flushFn FlushFunc
	stats   *stats.ImportStats
}

func NewBatcher(log logger.Logger, size int, flushFn FlushFunc, s *stats.ImportStats) *Batcher {
	if size < 1 {
		log.Panic("batch size must be at least 1")
	}
	return &Batcher{
		log:     log,
		size:    size,
		rows:    make([][]interface{}, 0, size),
		flushFn: flushFn,
		stats:   s,
	}
}

// Add saves row and flushes the buffer if it is full.
func (b *Batcher) Add(ctx context.Context, row CardRow) error {
	b.rows = append(b.rows, row.Values())
	if len(b.rows) >= b.size {
		return b.Flush(ctx)
	}
	return nil
}

// Flush writes any buffered rows and clears the buffer.
func (b *Batcher) Flush(ctx context.Context) error {
	if len(b.rows) == 0 {
		return nil
	}
	n, err := b.flushFn(ctx, b.rows)
	if err != nil {
		return err
	}
	b.log.Info("Flushed ", n, " rows")
	if b.stats != nil {
		b.stats.AddBatch(n)
	}
	b.rows = make([][]interface{}, 0, b.size)
	return nil
}

// Len returns the number of rows waiting to be flushed.
func (b *Batcher) Len() int {
	return len(b.rows)
}
