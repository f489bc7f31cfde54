package shared

import (
	"testing"
)

func TestSchemaTable(t *testing.T) {
	cases := []struct {
		input          string
		expectedSchema string
		expectedTable  string
	}{
		{"schema.table", "schema", "table"},
		{`schema."table"`, "schema", `"table"`},
		{`"schema"."table"`, `"schema"`, `"table"`},
		{`"random.table"`, "", `"random.table"`},
		{"cards", "", "cards"},
	}
	for _, c := range cases {
		st := SchemaTable{SchemaTable: c.input}
		if got := st.GetSchema(); got != c.expectedSchema {
			t.Fatalf("input %v: expected schema = %q; got %q", c.input, c.expectedSchema, got)
		}
		if got := st.GetTable(); got != c.expectedTable {
			t.Fatalf("input %v: expected table = %q; got %q", c.input, c.expectedTable, got)
		}
		if got := st.String(); got != c.input {
			t.Fatalf("expected %q; got %q", c.input, got)
		}
	}
}

func TestNewSchemaTable(t *testing.T) {
	if got := NewSchemaTable("", "cards").String(); got != "cards" {
		t.Fatalf("expected cards; got %v", got)
	}
	if got := NewSchemaTable("public", "cards").String(); got != "public.cards" {
		t.Fatalf("expected public.cards; got %v", got)
	}
}
