package shared

import (
	"regexp"
	"strings"
)

var (
	reQuotedDottedName = regexp.MustCompile(`^".+\..+"$`)   // "random.table"
	reQuotedSchemaName = regexp.MustCompile(`^".+"\.".+"$`) // "schema"."table"
)

// SchemaTable is a table name that may be qualified by a schema, i.e. [<schema>.]<table>.
type SchemaTable struct {
	SchemaTable string
}

func NewSchemaTable(schema string, table string) SchemaTable {
	if schema == "" {
		return SchemaTable{table}
	}
	return SchemaTable{schema + "." + table}
}

// isQuotedTable is true for a quoted "random.table" that is not a regular "schema"."table".
func (st SchemaTable) isQuotedTable() bool {
	return reQuotedDottedName.MatchString(st.SchemaTable) && !reQuotedSchemaName.MatchString(st.SchemaTable)
}

// Split returns the schema, which may be empty, and the table.
func (st SchemaTable) Split() (schema string, table string) {
	if st.isQuotedTable() {
		return "", st.SchemaTable
	}
	i := strings.Index(st.SchemaTable, ".")
	if i < 0 { // if we have just a table...
		return "", st.SchemaTable
	}
	return st.SchemaTable[:i], st.SchemaTable[i+1:]
}

func (st SchemaTable) GetSchema() string {
	s, _ := st.Split()
	return s
}

func (st SchemaTable) GetTable() string {
	_, t := st.Split()
	return t
}

func (st SchemaTable) String() string {
	return st.SchemaTable
}
