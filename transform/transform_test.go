package transform

import (
	"context"
	"testing"

	. "github.com/onsi/gomega"
	"github.com/relloyd/mtgpipe/mtgjson"
	"github.com/relloyd/mtgpipe/stats"
	"github.com/sirupsen/logrus"
)

func testDocument() *mtgjson.Document {
	return &mtgjson.Document{
		Data: map[string]mtgjson.Set{
			"BBB": {Name: strPtr("B"), Cards: []mtgjson.Card{{UUID: "b1"}, {UUID: ""}, {UUID: "b2"}}},
			"AAA": {Name: strPtr("A"), Cards: []mtgjson.Card{{UUID: "a1", Mistyped: []string{"number"}}, {Name: strPtr("no uuid")}}},
			"CCC": {Name: strPtr("C")},
		},
	}
}

func TestTransform(t *testing.T) {
	g := NewGomegaWithT(t)
	log := logrus.New()
	var uuids []interface{}
	flushFn := func(ctx context.Context, rows [][]interface{}) (int, error) {
		for _, r := range rows {
			uuids = append(uuids, r[0])
		}
		return len(rows), nil
	}
	s := stats.NewImportStats(log, "test")
	total, err := Transform(context.Background(), log, testDocument(), NewBatcher(log, 2, flushFn, s), s)
	g.Expect(err).To(BeNil())
	// Emitted rows equal input cards less the cards without a uuid.
	g.Expect(total).To(Equal(int64(3)))
	g.Expect(uuids).To(Equal([]interface{}{"a1", "b1", "b2"}))
	r := s.RenderStats()
	g.Expect(r.SetsRead).To(Equal(3))
	g.Expect(r.CardsRead).To(Equal(5))
	g.Expect(r.CardsSkipped).To(Equal(2))
	g.Expect(r.CardsMistyped).To(Equal(1))
	g.Expect(r.RowsFlushed).To(Equal(3))
	g.Expect(r.BatchesFlushed).To(Equal(2))
}

func TestTransform_Cancelled(t *testing.T) {
	g := NewGomegaWithT(t)
	log := logrus.New()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := stats.NewImportStats(log, "test")
	b := NewBatcher(log, 2, func(ctx context.Context, rows [][]interface{}) (int, error) { return len(rows), nil }, s)
	_, err := Transform(ctx, log, testDocument(), b, s)
	g.Expect(err).To(Equal(context.Canceled))
}
