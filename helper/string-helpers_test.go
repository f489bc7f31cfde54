package helper

import (
	"testing"

	"github.com/relloyd/mtgpipe/logger"
)

func TestStringSliceToOrderedMap(t *testing.T) {
	log := logger.NewLogger("mtgpipe", "info", true)
	input := []string{"uuid", "name", "set_code"}
	o := StringSliceToOrderedMap(input)
	if o.Len() != len(input) {
		t.Fatalf("expected %v entries; got %v", len(input), o.Len())
	}
	// Values should come back in insertion order.
	got := make([]string, o.Len())
	idx := 0
	OrderedMapValuesToStringSlice(log, o, &got, &idx)
	for i := range input {
		if got[i] != input[i] {
			t.Fatalf("expected %q at position %v; got %q", input[i], i, got[i])
		}
	}
	if idx != len(input) {
		t.Fatalf("expected idx to be advanced to %v; got %v", len(input), idx)
	}
}

func TestGenerateStringOfColsEqualsCols(t *testing.T) {
	// Test 1 - qualified on both sides.
	got := GenerateStringOfColsEqualsCols([]string{"a", "b"}, "T", "S", ",")
	expected := "T.a = S.a,T.b = S.b"
	if got != expected {
		t.Fatalf("expected %q; got %q", expected, got)
	}
	// Test 2 - unqualified left hand side for upsert SET clauses.
	got = GenerateStringOfColsEqualsCols([]string{"name", "rarity"}, "", "excluded", ", ")
	expected = "name = excluded.name, rarity = excluded.rarity"
	if got != expected {
		t.Fatalf("expected %q; got %q", expected, got)
	}
}

func TestGetTrueFalseStringAsBool(t *testing.T) {
	cases := map[string]bool{
		"true":   true,
		" TRUE ": true,
		"1":      true,
		"yes":    true,
		"":       false,
		"false":  false,
		"0":      false,
		"untrue": false,
	}
	for in, expected := range cases {
		if got := GetTrueFalseStringAsBool(in); got != expected {
			t.Fatalf("input %q: expected %v; got %v", in, expected, got)
		}
	}
}
