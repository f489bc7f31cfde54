package shared

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	h "github.com/relloyd/mtgpipe/helper"
)

// SqlUpsertTxtBatch implements interface SqlStmtTxtBatcher.
// It generates a single INSERT ... ON CONFLICT DO UPDATE statement for all rows supplied to a batch.
// Rows that repeat a key already held in the batch replace the earlier values, since one
// statement may not affect the same target row twice.
type SqlUpsertTxtBatch struct {
	SqlStatementGeneratorConfig // mandatory to be populated.
	sqlCoreCfg
	AllCols   []string
	KeyCols   []string // list of columns extracted from SqlStatementGeneratorConfig.
	OtherCols []string
	keyIndex  map[string]int // key values -> row position in the batch
}

// NewUpsertGenerator creates a new SqlStmtGenerator that implements interface SqlStmtTxtBatcher.
// Configure defaults in SqlStatementGeneratorConfig.
func (*DmlGeneratorTxtBatch) NewUpsertGenerator(cfg *SqlStatementGeneratorConfig) SqlStmtGenerator {
	FixSqlStatementGeneratorConfig(cfg)
	cfg.Log.Debug("Creating NewUpsertGenerator")
	o := &SqlUpsertTxtBatch{SqlStatementGeneratorConfig: *cfg}
	o.setupColumns()
	return o
}

func (o *SqlUpsertTxtBatch) setupColumns() {
	var idx int
	o.KeyCols = make([]string, o.TargetKeyCols.Len())
	h.OrderedMapValuesToStringSlice(o.Log, o.TargetKeyCols, &o.KeyCols, &idx)
	idx = 0
	o.OtherCols = make([]string, o.TargetOtherCols.Len())
	h.OrderedMapValuesToStringSlice(o.Log, o.TargetOtherCols, &o.OtherCols, &idx)
	o.AllCols = make([]string, 0, len(o.KeyCols)+len(o.OtherCols))
	o.AllCols = append(o.AllCols, o.KeyCols...)
	o.AllCols = append(o.AllCols, o.OtherCols...)
}

func (o *SqlUpsertTxtBatch) getSqlTemplate() string {
	if len(o.OtherCols) == 0 {
		return `insert into <SCHEMA><SEPARATOR><TABLE> (<ALL-COLS>)
values <VALUES>
on conflict (<KEY-COLS>) do nothing`
	}
	return `insert into <SCHEMA><SEPARATOR><TABLE> (<ALL-COLS>)
values <VALUES>
on conflict (<KEY-COLS>) do update set
<OTHER-COLS-EQUALS>`
}

func (o *SqlUpsertTxtBatch) InitBatch(batchSize int) {
	o.Log.Debug("initBatch() for UPSERT...")
	o.batchSize = batchSize
	o.rowsInBatch = 0
	o.keyIndex = make(map[string]int, batchSize)
	// Allocate a new buffer to hold all values (args) to exec.
	o.sqlValues = make([]interface{}, 0, o.batchSize*len(o.AllCols)) // many values per row in a batch.
	o.Log.Debug("batchSize = ", o.batchSize, "; allCols = ", o.AllCols)
}

// AddValuesToBatch saves a row of values to the batch.
// The ordering of values is important: supply the key columns followed by the other columns.
func (o *SqlUpsertTxtBatch) AddValuesToBatch(values []interface{}) (batchIsFull bool, err error) {
	if len(values) != len(o.AllCols) {
		err = fmt.Errorf("the number of values supplied (%v) does not match the number of table columns (%v)", len(values), len(o.AllCols))
		return
	}
	key := fmt.Sprintf("%#v", values[:len(o.KeyCols)])
	if pos, ok := o.keyIndex[key]; ok { // if this key is already in the batch...
		copy(o.sqlValues[pos*len(o.AllCols):(pos+1)*len(o.AllCols)], values) // last one wins.
		o.Log.Debug("UPSERT batch replaced duplicate key ", key)
		return o.rowsInBatch >= o.batchSize, nil
	}
	if o.rowsInBatch >= o.batchSize {
		err = errors.New("no more rows allowed in UPSERT batch")
		batchIsFull = true
		return
	}
	o.sqlValues = append(o.sqlValues, values...)
	o.keyIndex[key] = o.rowsInBatch
	o.rowsInBatch++ // keep track of how close we are to the batch limit.
	return o.rowsInBatch >= o.batchSize, nil
}

func (o *SqlUpsertTxtBatch) GetValues() []interface{} {
	return o.sqlValues
}

func (o *SqlUpsertTxtBatch) GetRowCount() int {
	return o.rowsInBatch
}

// GetStatement returns the SQL for the rows currently in the batch.
// The text is cached while the number of rows stays the same.
func (o *SqlUpsertTxtBatch) GetStatement() string {
	if o.sqlStmt != "" && o.previousNumRowsInBatch == o.rowsInBatch {
		return o.sqlStmt
	}
	stmt := o.getSqlTemplate()
	stmt = strings.Replace(stmt, "<SCHEMA>", o.OutputSchema, 1)
	stmt = strings.Replace(stmt, "<SEPARATOR>", o.SchemaSeparator, 1)
	stmt = strings.Replace(stmt, "<TABLE>", o.OutputTable, 1)
	stmt = strings.Replace(stmt, "<ALL-COLS>", strings.Join(o.AllCols, ","), 1)
	stmt = strings.Replace(stmt, "<VALUES>", getValuesOfBinds(o.rowsInBatch, len(o.AllCols)), 1)
	stmt = strings.Replace(stmt, "<KEY-COLS>", strings.Join(o.KeyCols, ","), 1)
	stmt = strings.Replace(stmt, "<OTHER-COLS-EQUALS>", h.GenerateStringOfColsEqualsCols(o.OtherCols, "", "excluded", ",\n"), 1)
	o.sqlStmt = stmt
	o.previousNumRowsInBatch = o.rowsInBatch
	o.Log.Trace("SQL batch UPSERT generated statement: ", o.sqlStmt)
	return o.sqlStmt
}
