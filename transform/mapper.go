package transform

import (
	"time"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	c "github.com/relloyd/mtgpipe/constants"
	"github.com/relloyd/mtgpipe/mtgjson"
)

type rawCard struct {
	Identifiers   map[string]interface{} `json:"identifiers"`
	Printings     []string               `json:"printings"`
	ColorIdentity []string               `json:"colorIdentity"`
	EdhrecRank    *int64                 `json:"edhrecRank"`
}

// MapCard projects card into a CardRow.
// ok is false when the card has no uuid, in which case the card must be skipped.
func MapCard(setCode string, set *mtgjson.Set, card *mtgjson.Card) (row CardRow, ok bool, err error) {
	if card.UUID == "" {
		return row, false, nil
	}
	row = CardRow{
		UUID:       card.UUID,
		Name:       card.Name,
		SetCode:    setCode,
		SetName:    set.Name,
		Number:     card.Number,
		Rarity:     card.Rarity,
		Colors:     card.Colors,
		Types:      card.Types,
		Supertypes: card.Supertypes,
		Subtypes:   card.Subtypes,
		ManaCost:   card.ManaCost,
		Cmc:        card.ConvertedManaCost,
		OracleText: firstNonEmpty(card.Text, card.OriginalText, card.FaceName),
		Layout:     card.Layout,
		ScryfallID: card.ScryfallID(),
		ReleasedAt: ParseReleaseDate(releaseDate(set, card)),
	}
	if row.Cmc == nil {
		row.Cmc = card.Cmc
	}
	legalities := card.Legalities
	if legalities == nil {
		legalities = map[string]interface{}{}
	}
	b, err := json.Marshal(legalities)
	if err != nil {
		return row, false, errors.Wrapf(err, "error encoding legalities for card %v", card.UUID)
	}
	row.Legalities = string(b)
	raw := rawCard{
		Identifiers:   card.Identifiers,
		Printings:     card.Printings,
		ColorIdentity: card.ColorIdentity,
		EdhrecRank:    card.EdhrecRank,
	}
	if raw.Identifiers == nil {
		raw.Identifiers = map[string]interface{}{}
	}
	b, err = json.Marshal(raw)
	if err != nil {
		return row, false, errors.Wrapf(err, "error encoding raw data for card %v", card.UUID)
	}
	row.Raw = string(b)
	return row, true, nil
}

// ParseReleaseDate returns the date held in v if v is a string of the form YYYY-MM-DD.
// Anything else gives nil.
func ParseReleaseDate(v interface{}) *time.Time {
	s, ok := v.(string)
	if !ok || s == "" {
		return nil
	}
	t, err := time.Parse(c.ReleaseDateLayout, s)
	if err != nil {
		return nil
	}
	return &t
}

// releaseDate prefers the card's own date over the set's.
// The set's date is used only when the card's is absent or an empty string.
func releaseDate(set *mtgjson.Set, card *mtgjson.Card) interface{} {
	if s, ok := card.ReleaseDate.(string); card.ReleaseDate == nil || (ok && s == "") {
		return set.ReleaseDate
	}
	return card.ReleaseDate
}

func firstNonEmpty(candidates ...*string) *string {
	for _, s := range candidates {
		if s != nil && *s != "" {
			return s
		}
	}
	return nil
}
