package transform

import (
	"time"

	om "github.com/cevaris/ordered_map"
	"github.com/lib/pq"
	h "github.com/relloyd/mtgpipe/helper"
)

// Output table column names in row order.
// The first column is the conflict key.
var (
	KeyColumns   = []string{"uuid"}
	OtherColumns = []string{
		"name",
		"set_code",
		"set_name",
		"number",
		"rarity",
		"colors",
		"types",
		"supertypes",
		"subtypes",
		"mana_cost",
		"cmc",
		"oracle_text",
		"layout",
		"scryfall_id",
		"released_at",
		"legalities",
		"raw",
	}
)

// GetKeyColumns returns KeyColumns as an ordered map for the DML generators.
func GetKeyColumns() *om.OrderedMap {
	return h.StringSliceToOrderedMap(KeyColumns)
}

// GetOtherColumns returns OtherColumns as an ordered map for the DML generators.
func GetOtherColumns() *om.OrderedMap {
	return h.StringSliceToOrderedMap(OtherColumns)
}

// CardRow is the flat form of one card ready for the output table.
// Nil pointers and empty slices are written as NULL.
type CardRow struct {
	UUID       string
	Name       *string
	SetCode    string
	SetName    *string
	Number     *string
	Rarity     *string
	Colors     []string
	Types      []string
	Supertypes []string
	Subtypes   []string
	ManaCost   *string
	Cmc        *float64
	OracleText *string
	Layout     *string
	ScryfallID *string
	ReleasedAt *time.Time
	Legalities string
	Raw        string
}

// Values returns the row's bind values in KeyColumns then OtherColumns order.
func (r CardRow) Values() []interface{} {
	return []interface{}{
		r.UUID,
		stringOrNil(r.Name),
		r.SetCode,
		stringOrNil(r.SetName),
		stringOrNil(r.Number),
		stringOrNil(r.Rarity),
		arrayOrNil(r.Colors),
		arrayOrNil(r.Types),
		arrayOrNil(r.Supertypes),
		arrayOrNil(r.Subtypes),
		stringOrNil(r.ManaCost),
		floatOrNil(r.Cmc),
		stringOrNil(r.OracleText),
		stringOrNil(r.Layout),
		stringOrNil(r.ScryfallID),
		timeOrNil(r.ReleasedAt),
		r.Legalities,
		r.Raw,
	}
}

func stringOrNil(s *string) interface{} {
	if s == nil {
		return nil
	}
	return *s
}

func floatOrNil(f *float64) interface{} {
	if f == nil {
		return nil
	}
	return *f
}

func timeOrNil(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return *t
}

func arrayOrNil(s []string) interface{} {
	if len(s) == 0 {
		return nil
	}
	return pq.Array(s)
}
