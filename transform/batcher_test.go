package transform

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/relloyd/mtgpipe/stats"
	"github.com/sirupsen/logrus"
)

func TestBatcher_BatchBoundary(t *testing.T) {
	log := logrus.New()
	var flushes []int
	persisted := 0
	flushFn := func(ctx context.Context, rows [][]interface{}) (int, error) {
		flushes = append(flushes, len(rows))
		persisted += len(rows)
		return len(rows), nil
	}
	s := stats.NewImportStats(log, "test")
	b := NewBatcher(log, 2, flushFn, s)
	for i := 0; i < 5; i++ {
		if err := b.Add(context.Background(), CardRow{UUID: fmt.Sprintf("u%v", i)}); err != nil {
			t.Fatal(err)
		}
	}
	if b.Len() != 1 {
		t.Fatalf("expected 1 buffered row; got %v", b.Len())
	}
	if err := b.Flush(context.Background()); err != nil {
		t.Fatal(err)
	}
	if fmt.Sprint(flushes) != "[2 2 1]" {
		t.Fatalf("expected flushes of [2 2 1]; got %v", flushes)
	}
	if persisted != 5 {
		t.Fatalf("expected 5 rows persisted; got %v", persisted)
	}
	if got := s.RenderStats().BatchesFlushed; got != 3 {
		t.Fatalf("expected 3 batches in stats; got %v", got)
	}
	// Flushing an empty buffer does nothing.
	if err := b.Flush(context.Background()); err != nil {
		t.Fatal(err)
	}
	if len(flushes) != 3 {
		t.Fatalf("expected no extra flush; got %v", flushes)
	}
}

func TestBatcher_FlushError(t *testing.T) {
	log := logrus.New()
	b := NewBatcher(log, 1, func(ctx context.Context, rows [][]interface{}) (int, error) {
		return 0, errors.New("db down")
	}, nil)
	err := b.Add(context.Background(), CardRow{UUID: "a"})
	if err == nil || err.Error() != "db down" {
		t.Fatalf("expected flush error; got %v", err)
	}
}

func TestBatcher_StatsCountRowsWritten(t *testing.T) {
	log := logrus.New()
	// The writer collapses duplicate keys so only distinct rows are counted.
	flushFn := func(ctx context.Context, rows [][]interface{}) (int, error) {
		distinct := make(map[interface{}]bool)
		for _, r := range rows {
			distinct[r[0]] = true
		}
		return len(distinct), nil
	}
	s := stats.NewImportStats(log, "test")
	b := NewBatcher(log, 3, flushFn, s)
	for _, uuid := range []string{"a", "a", "b"} {
		if err := b.Add(context.Background(), CardRow{UUID: uuid}); err != nil {
			t.Fatal(err)
		}
	}
	r := s.RenderStats()
	if r.RowsFlushed != 2 || r.BatchesFlushed != 1 {
		t.Fatalf("expected 2 rows in 1 batch; got %+v", r)
	}
}

func TestNewBatcher_PanicsOnZeroSize(t *testing.T) {
	log := logrus.New()
	didPanic := false
	func() {
		defer func() {
			if r := recover(); r != nil {
				didPanic = true
			}
		}()
		NewBatcher(log, 0, nil, nil)
	}()
	if !didPanic {
		t.Fatal("expected panic for a zero batch size")
	}
}
