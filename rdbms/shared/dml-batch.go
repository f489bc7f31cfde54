package shared

import (
	"fmt"
	"strings"

	om "github.com/cevaris/ordered_map"
	"github.com/relloyd/mtgpipe/logger"
)

const strBindChar string = "$"

// DmlGeneratorTxtBatch generates text batches of DML, where all rows in a batch are bound into one statement.
type DmlGeneratorTxtBatch struct{}

type SqlStatementGeneratorConfig struct {
	Log             logger.Logger
	OutputSchema    string
	SchemaSeparator string
	OutputTable     string
	TargetKeyCols   *om.OrderedMap // ordered map of: key = row field name; value = target table column name
	TargetOtherCols *om.OrderedMap // ordered map of: key = row field name; value = target table column name
}

type sqlCoreCfg struct {
	sqlStmt                string
	sqlValues              []interface{} // slice to hold data values for all rows in batch
	batchSize              int
	rowsInBatch            int
	previousNumRowsInBatch int
}

// FixSqlStatementGeneratorConfig sets the schema separator to match the presence of an output schema.
func FixSqlStatementGeneratorConfig(cfg *SqlStatementGeneratorConfig) {
	if cfg.OutputTable == "" {
		cfg.Log.Panic("Error, missing output table name.")
	}
	if cfg.OutputSchema == "" {
		cfg.SchemaSeparator = ""
		cfg.Log.Debug("No output schema supplied; setting a blank separator.")
	} else {
		cfg.SchemaSeparator = "."
	}
}

// getValuesOfBinds returns numRows groups of positional binds, e.g. "($1,$2),\n($3,$4)".
func getValuesOfBinds(numRows int, numCols int) string {
	allRows := strings.Builder{}
	valIdx := 1
	for rowIdx := 0; rowIdx < numRows; rowIdx++ {
		if rowIdx > 0 {
			allRows.WriteString(",\n")
		}
		allRows.WriteString("(")
		for colIdx := 0; colIdx < numCols; colIdx++ {
			if colIdx > 0 {
				allRows.WriteString(",")
			}
			allRows.WriteString(fmt.Sprintf("%s%d", strBindChar, valIdx))
			valIdx++
		}
		allRows.WriteString(")")
	}
	return allRows.String()
}
