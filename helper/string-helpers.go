package helper

import (
	"fmt"
	"regexp"
	"strings"

	om "github.com/cevaris/ordered_map"
	"github.com/relloyd/mtgpipe/logger"
)

// StringSliceToOrderedMap adds each value in s to an ordered map with key and value set to the value in s.
func StringSliceToOrderedMap(s []string) *om.OrderedMap {
	retval := om.NewOrderedMap()
	for _, v := range s {
		retval.Set(v, v)
	}
	return retval
}

// OrderedMapValuesToStringSlice builds a list of values found in ordered map 'o'.
// Output - this function modifies the supplied list 'l' and 'idx' by reference.
func OrderedMapValuesToStringSlice(log logger.Logger, o *om.OrderedMap, l *[]string, idx *int) {
	iter := o.IterFunc()
	if iter == nil {
		log.Panic("Failed to get iterFunc in OrderedMapValuesToStringSlice()")
	}
	for kv, ok := iter(); ok; kv, ok = iter() {
		(*l)[*idx] = kv.Value.(string)
		*idx++
	}
}

// GetTrueFalseStringAsBool trims spaces from s and checks if it can match "true" or "1" (case insensitive).
func GetTrueFalseStringAsBool(s string) bool {
	re := regexp.MustCompile("^(?i)(true|1|yes)$")
	return re.MatchString(strings.TrimSpace(s))
}

// GenerateStringOfColsEqualsCols returns a string like "lhs.col1 = rhs.col1, lhs.col2 = rhs.col2" for
// the columns in colList, joined by the supplied separator.
func GenerateStringOfColsEqualsCols(colList []string, lhsAlias string, rhsAlias string, separator string) string {
	return strings.Join(GenerateSliceOfColsEqualCols(colList, lhsAlias, rhsAlias), separator)
}

// GenerateSliceOfColsEqualCols returns one "lhs.col = rhs.col" entry per column.
// An empty lhsAlias leaves the left hand column unqualified, which is what an
// ON CONFLICT ... DO UPDATE SET clause requires.
func GenerateSliceOfColsEqualCols(colList []string, lhsAlias string, rhsAlias string) []string {
	retval := make([]string, len(colList))
	for idx, col := range colList {
		if lhsAlias == "" {
			retval[idx] = fmt.Sprintf("%s = %s.%s", col, rhsAlias, col)
		} else {
			retval[idx] = fmt.Sprintf("%s.%s = %s.%s", lhsAlias, col, rhsAlias, col)
		}
	}
	return retval
}
