package transform

import (
	"context"

	"github.com/relloyd/mtgpipe/logger"
	"github.com/relloyd/mtgpipe/mtgjson"
	"github.com/relloyd/mtgpipe/stats"
)

// Transform maps every card in doc to a row and adds it to b.
// Sets are visited in sorted set code order. The final partial batch is flushed before returning.
// It returns the number of rows emitted.
func Transform(ctx context.Context, log logger.Logger, doc *mtgjson.Document, b *Batcher, s *stats.ImportStats) (total int64, err error) {
	for _, setCode := range doc.SetCodes() {
		if err = ctx.Err(); err != nil {
			return total, err
		}
		set := doc.Data[setCode]
		s.AddSet()
		log.Debug("Transforming set ", setCode, " with ", len(set.Cards), " cards")
		if len(set.Mistyped) > 0 {
			log.Warn("Set ", setCode, " has values of the wrong type for ", set.Mistyped)
		}
		for idx := range set.Cards {
			var row CardRow
			var ok bool
			s.AddCard()
			if m := set.Cards[idx].Mistyped; len(m) > 0 {
				s.AddMistyped()
				log.Debug("Card ", set.Cards[idx].UUID, " in set ", setCode, " has values of the wrong type for ", m)
			}
			row, ok, err = MapCard(setCode, &set, &set.Cards[idx])
			if err != nil {
				return total, err
			}
			if !ok {
				s.AddSkipped()
				continue
			}
			s.AddRow()
			total++
			if err = b.Add(ctx, row); err != nil {
				return total, err
			}
		}
	}
	if err = b.Flush(ctx); err != nil {
		return total, err
	}
	return total, nil
}
