package mtgjson

import (
	"strings"
	"testing"

	. "github.com/onsi/gomega"
)

const testDocument = `{
  "meta": {"date": "2024-01-02", "version": "5.2.2"},
  "data": {
    "ZZZ": {"name": "Last Set", "releaseDate": "2020-05-05", "cards": []},
    "AAA": {
      "name": "First Set",
      "releaseDate": "2021-01-01",
      "cards": [
        {
          "uuid": "u1",
          "name": "Card One",
          "colors": [],
          "convertedManaCost": 0,
          "identifiers": {"scryfallId": "sf1", "mtgoId": "7"},
          "legalities": {"modern": "Legal"},
          "printings": ["AAA"],
          "edhrecRank": 42
        },
        {"name": "No Uuid", "identifiers": {"scryfallId": 123}}
      ]
    }
  }
}`

func TestDecode(t *testing.T) {
	g := NewGomegaWithT(t)
	doc, err := Decode(strings.NewReader(testDocument))
	g.Expect(err).To(BeNil())
	g.Expect(doc.Meta.Version).To(Equal("5.2.2"))
	g.Expect(doc.Meta.Date).To(Equal("2024-01-02"))
	g.Expect(doc.SetCodes()).To(Equal([]string{"AAA", "ZZZ"}))
	g.Expect(doc.NumCards()).To(Equal(2))

	s := doc.Data["AAA"]
	g.Expect(*s.Name).To(Equal("First Set"))
	g.Expect(s.ReleaseDate).To(Equal("2021-01-01"))

	c := s.Cards[0]
	g.Expect(c.UUID).To(Equal("u1"))
	g.Expect(c.Colors).ToNot(BeNil())
	g.Expect(c.Colors).To(BeEmpty())
	g.Expect(c.Types).To(BeNil())
	g.Expect(c.ConvertedManaCost).ToNot(BeNil())
	g.Expect(*c.ConvertedManaCost).To(BeNumerically("==", 0))
	g.Expect(c.Cmc).To(BeNil())
	g.Expect(*c.ScryfallID()).To(Equal("sf1"))
	g.Expect(*c.EdhrecRank).To(Equal(int64(42)))
	g.Expect(c.ReleaseDate).To(BeNil())

	missing := s.Cards[1]
	g.Expect(missing.UUID).To(Equal(""))
	g.Expect(missing.ScryfallID()).To(BeNil(), "non-string scryfallId")
	g.Expect((&Card{}).ScryfallID()).To(BeNil(), "no identifiers")
}

func TestDecode_MistypedCardFields(t *testing.T) {
	g := NewGomegaWithT(t)
	doc, err := Decode(strings.NewReader(`{"data":{"AAA":{"name":"A","cards":[
		{"uuid":"a"},
		{"uuid":"b","number":5,"name":"Bee","edhrecRank":1.5,"colors":"W"},
		7
	]}}}`))
	g.Expect(err).To(BeNil())
	cards := doc.Data["AAA"].Cards
	g.Expect(cards).To(HaveLen(3))

	g.Expect(cards[0].UUID).To(Equal("a"))
	g.Expect(cards[0].Mistyped).To(BeEmpty())

	g.Expect(cards[1].UUID).To(Equal("b"))
	g.Expect(*cards[1].Name).To(Equal("Bee"))
	g.Expect(cards[1].Number).To(BeNil())
	g.Expect(cards[1].EdhrecRank).To(BeNil())
	g.Expect(cards[1].Colors).To(BeNil())
	g.Expect(cards[1].Mistyped).To(ConsistOf("number", "colors", "edhrecRank"))

	// Not an object, so there is no uuid to import.
	g.Expect(cards[2].UUID).To(Equal(""))
	g.Expect(cards[2].Mistyped).To(Equal([]string{"*"}))
}

func TestDecode_MistypedSetFields(t *testing.T) {
	g := NewGomegaWithT(t)
	doc, err := Decode(strings.NewReader(`{"data":{"AAA":{"name":42,"releaseDate":"2021-01-01","cards":[{"uuid":"a"}]}}}`))
	g.Expect(err).To(BeNil())
	s := doc.Data["AAA"]
	g.Expect(s.Name).To(BeNil())
	g.Expect(s.ReleaseDate).To(Equal("2021-01-01"))
	g.Expect(s.Mistyped).To(Equal([]string{"name"}))
	g.Expect(s.Cards).To(HaveLen(1))

	_, err = Decode(strings.NewReader(`{"data":{"AAA":{"name":"A","cards":"none"}}}`))
	g.Expect(err).ToNot(BeNil(), "cards must be a list")
}

func TestDecode_NoData(t *testing.T) {
	g := NewGomegaWithT(t)
	doc, err := Decode(strings.NewReader(`{"meta": {"version": "1"}}`))
	g.Expect(err).To(BeNil())
	g.Expect(doc.Data).To(BeEmpty())
	g.Expect(doc.NumCards()).To(Equal(0))
}

func TestDecode_Malformed(t *testing.T) {
	g := NewGomegaWithT(t)
	_, err := Decode(strings.NewReader(`{"data": [`))
	g.Expect(err).ToNot(BeNil())
	g.Expect(err.Error()).To(ContainSubstring("error decoding MTGJSON document"))
}
