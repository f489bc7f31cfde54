// Package mtgjson holds the typed form of an MTGJSON AllPrintings document.
package mtgjson

import (
	"io"
	"reflect"
	"sort"
	"strings"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

// Document is the top level of an AllPrintings file.
type Document struct {
	Meta Meta           `json:"meta"`
	Data map[string]Set `json:"data"`
}

type Meta struct {
	Date    string `json:"date"`
	Version string `json:"version"`
}

// Set is a named group of cards keyed by set code in Document.Data.
type Set struct {
	Name        *string     `json:"name"`
	ReleaseDate interface{} `json:"releaseDate"`
	Cards       []Card      `json:"cards"`
	// Mistyped lists the keys whose values had the wrong type and were left unset.
	Mistyped []string `json:"-"`
}

// Card is one printing of a card.
// Pointer and interface fields are nil when the key is absent or null in the source.
type Card struct {
	UUID              string                 `json:"uuid"`
	Name              *string                `json:"name"`
	Number            *string                `json:"number"`
	Rarity            *string                `json:"rarity"`
	Colors            []string               `json:"colors"`
	Types             []string               `json:"types"`
	Supertypes        []string               `json:"supertypes"`
	Subtypes          []string               `json:"subtypes"`
	ManaCost          *string                `json:"manaCost"`
	ConvertedManaCost *float64               `json:"convertedManaCost"`
	Cmc               *float64               `json:"cmc"`
	Text              *string                `json:"text"`
	OriginalText      *string                `json:"originalText"`
	FaceName          *string                `json:"faceName"`
	Layout            *string                `json:"layout"`
	Identifiers       map[string]interface{} `json:"identifiers"`
	Legalities        map[string]interface{} `json:"legalities"`
	Printings         []string               `json:"printings"`
	ColorIdentity     []string               `json:"colorIdentity"`
	EdhrecRank        *int64                 `json:"edhrecRank"`
	ReleaseDate       interface{}            `json:"releaseDate"`
	// Mistyped lists the keys whose values had the wrong type and were left unset.
	Mistyped []string `json:"-"`
}

// UnmarshalJSON decodes a card, leaving any field whose value has the wrong type unset.
// A card that is not a JSON object decodes to an empty card, which has no uuid.
func (c *Card) UnmarshalJSON(b []byte) error {
	type plain Card
	p := (*plain)(c)
	*p = plain{}
	if err := json.Unmarshal(b, p); err == nil {
		return nil
	}
	*p = plain{}
	c.Mistyped = decodeFields(b, p)
	return nil
}

// UnmarshalJSON decodes a set, leaving its name or release date unset if they have the wrong type.
// A cards value that is not a list is an error.
func (s *Set) UnmarshalJSON(b []byte) error {
	type plain Set
	p := (*plain)(s)
	*p = plain{}
	if err := json.Unmarshal(b, p); err == nil {
		return nil
	}
	*p = plain{}
	s.Mistyped = decodeFields(b, p)
	for _, k := range s.Mistyped {
		if k == "cards" || k == "*" {
			return errors.New("set is not an object holding a list of cards")
		}
	}
	return nil
}

// decodeFields decodes each JSON key of object b into the field of struct pointer dst that carries
// the same json tag. Fields that fail to decode are reset to their zero value and their keys
// returned. If b is not an object the result is "*".
func decodeFields(b []byte, dst interface{}) (mistyped []string) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(b, &fields); err != nil {
		return []string{"*"}
	}
	v := reflect.ValueOf(dst).Elem()
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		name := strings.Split(t.Field(i).Tag.Get("json"), ",")[0]
		if name == "" || name == "-" {
			continue
		}
		raw, ok := fields[name]
		if !ok {
			continue
		}
		f := v.Field(i)
		if err := json.Unmarshal(raw, f.Addr().Interface()); err != nil {
			f.Set(reflect.Zero(f.Type()))
			mistyped = append(mistyped, name)
		}
	}
	return mistyped
}

// ScryfallID returns identifiers.scryfallId when it is a string, else nil.
func (c *Card) ScryfallID() *string {
	if c.Identifiers == nil {
		return nil
	}
	s, ok := c.Identifiers["scryfallId"].(string)
	if !ok {
		return nil
	}
	return &s
}

// SetCodes returns the set codes of the document in sorted order.
func (d *Document) SetCodes() []string {
	codes := make([]string, 0, len(d.Data))
	for k := range d.Data {
		codes = append(codes, k)
	}
	sort.Strings(codes)
	return codes
}

// NumCards returns the total number of cards across all sets.
func (d *Document) NumCards() int {
	n := 0
	for _, s := range d.Data {
		n += len(s.Cards)
	}
	return n
}

// Decode reads a whole document from r.
// A document without a data section decodes to zero sets.
// Card fields holding a value of the wrong type are left unset and listed in Card.Mistyped.
func Decode(r io.Reader) (*Document, error) {
	doc := &Document{}
	if err := json.NewDecoder(r).Decode(doc); err != nil {
		return nil, errors.Wrap(err, "error decoding MTGJSON document")
	}
	if doc.Data == nil {
		doc.Data = make(map[string]Set)
	}
	return doc, nil
}
