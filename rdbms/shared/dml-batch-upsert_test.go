package shared

import (
	"regexp"
	"strings"
	"testing"

	"github.com/cevaris/ordered_map"
	"github.com/sirupsen/logrus"
)

func newTestUpsertBatch(t *testing.T, schema string, otherCols ...string) SqlStmtTxtBatcher {
	t.Helper()
	log := logrus.New()
	log.SetLevel(logrus.DebugLevel)
	omKeys := ordered_map.NewOrderedMap()
	omKeys.Set("uuid", "uuid")
	omCols := ordered_map.NewOrderedMap()
	for _, c := range otherCols {
		omCols.Set(c, c)
	}
	db := NewMockConnection(log, "postgres")
	return db.GetDmlGenerator().NewUpsertGenerator(&SqlStatementGeneratorConfig{
		Log:             log,
		OutputSchema:    schema,
		SchemaSeparator: ".",
		OutputTable:     "cards",
		TargetKeyCols:   omKeys,
		TargetOtherCols: omCols}).(SqlStmtTxtBatcher)
}

func TestSqlUpsertTxtBatch_AddValuesToBatch(t *testing.T) {
	o := newTestUpsertBatch(t, "public", "name", "cmc")

	var batchIsFull bool
	var err error

	// Create new batch of values size 2.
	o.InitBatch(2)
	batchIsFull, err = o.AddValuesToBatch([]interface{}{"x", "y", 1.5}) // first row should succeed.
	if err != nil {
		t.Fatal(err)
	}
	if batchIsFull {
		t.Fatal("The batch should not be full after one row.")
	}
	batchIsFull, err = o.AddValuesToBatch([]interface{}{"p", "q", 2}) // second row should succeed.
	if err != nil {
		t.Fatal(err)
	}
	if !batchIsFull {
		t.Fatal("The batch *should* be full but it is not.")
	}
	_, err = o.AddValuesToBatch([]interface{}{"r", "s", 3}) // third row does not fit.
	if err == nil {
		t.Fatal("expected an error when adding to a full batch")
	}

	// Retry with the wrong number of values.
	o.InitBatch(1)
	_, err = o.AddValuesToBatch([]interface{}{"a", "b", 456, 789})
	if err == nil {
		t.Fatal("There should have been an error. Incorrect number of values deliberately supplied in batch.")
	}
	if o.GetRowCount() != 0 {
		t.Fatalf("expected 0 rows after a rejected add; got %v", o.GetRowCount())
	}
}

func TestSqlUpsertTxtBatch_GetStatement(t *testing.T) {
	o := newTestUpsertBatch(t, "public", "name", "cmc")
	o.InitBatch(3)
	if _, err := o.AddValuesToBatch([]interface{}{"a", "b", 1}); err != nil {
		t.Fatal(err)
	}
	if _, err := o.AddValuesToBatch([]interface{}{"c", "d", 2}); err != nil {
		t.Fatal(err)
	}
	got := o.GetStatement()
	expected := `insert into public.cards (uuid,name,cmc)
values ($1,$2,$3),
($4,$5,$6)
on conflict (uuid) do update set
name = excluded.name,
cmc = excluded.cmc`
	if got != expected {
		t.Fatalf("unexpected statement:\nexpected:\n%v\ngot:\n%v", expected, got)
	}
	if len(o.GetValues()) != 6 {
		t.Fatalf("expected 6 values; got %v", len(o.GetValues()))
	}
	// Adding another row changes the bind list.
	if _, err := o.AddValuesToBatch([]interface{}{"e", "f", 3}); err != nil {
		t.Fatal(err)
	}
	re := regexp.MustCompile(`\(\$7,\$8,\$9\)`)
	if !re.MatchString(o.GetStatement()) {
		t.Fatalf("expected binds for a third row; got:\n%v", o.GetStatement())
	}
}

func TestSqlUpsertTxtBatch_NoSchema(t *testing.T) {
	o := newTestUpsertBatch(t, "", "name")
	o.InitBatch(1)
	if _, err := o.AddValuesToBatch([]interface{}{"a", "b"}); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(o.GetStatement(), "insert into cards (uuid,name)") {
		t.Fatalf("expected an unqualified table name; got:\n%v", o.GetStatement())
	}
}

func TestSqlUpsertTxtBatch_KeyOnly(t *testing.T) {
	o := newTestUpsertBatch(t, "public")
	o.InitBatch(1)
	if _, err := o.AddValuesToBatch([]interface{}{"a"}); err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(o.GetStatement(), "on conflict (uuid) do nothing") {
		t.Fatalf("expected do nothing when there are no other columns; got:\n%v", o.GetStatement())
	}
}

func TestSqlUpsertTxtBatch_DuplicateKeysCollapse(t *testing.T) {
	o := newTestUpsertBatch(t, "public", "name")
	o.InitBatch(3)
	rows := [][]interface{}{
		{"K", "A"},
		{"J", "X"},
		{"K", "B"},
	}
	for _, r := range rows {
		if _, err := o.AddValuesToBatch(r); err != nil {
			t.Fatal(err)
		}
	}
	if o.GetRowCount() != 2 {
		t.Fatalf("expected 2 distinct rows in batch; got %v", o.GetRowCount())
	}
	v := o.GetValues()
	if len(v) != 4 || v[0] != "K" || v[1] != "B" || v[2] != "J" || v[3] != "X" {
		t.Fatalf("expected the last value to win for key K; got %v", v)
	}
}

func TestGetValuesOfBinds(t *testing.T) {
	got := getValuesOfBinds(2, 2)
	expected := "($1,$2),\n($3,$4)"
	if got != expected {
		t.Fatalf("expected: %q; got: %q", expected, got)
	}
	if getValuesOfBinds(0, 3) != "" {
		t.Fatal("expected no binds for zero rows")
	}
}
