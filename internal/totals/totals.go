// Package totals carries the tabular aggregation result: one row per
// player with a sport-defined, ordered set of named columns. Tables are
// recomputed in full from the event log on every request so they can
// never drift from it.
package totals

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// IdentityColumns lead every totals table, in this order.
var IdentityColumns = []string{"player_key", "first_name", "last_name", "number", "positions"}

// Row is one player's totals keyed by column name.
type Row map[string]any

// Table is an ordered totals result. Columns defines the display and
// serialization order of the keys in Rows.
type Table struct {
	Columns []string `json:"columns"`
	Rows    []Row    `json:"rows"`
}

// Empty reports whether the table has no rows.
func (t Table) Empty() bool { return len(t.Rows) == 0 }

// SortRows orders rows by (last_name, first_name) ascending, byte-wise.
func SortRows(rows []Row) {
	sort.SliceStable(rows, func(i, j int) bool {
		li, _ := rows[i]["last_name"].(string)
		lj, _ := rows[j]["last_name"].(string)
		if li != lj {
			return li < lj
		}
		fi, _ := rows[i]["first_name"].(string)
		fj, _ := rows[j]["first_name"].(string)
		return fi < fj
	})
}

// Num coerces an arbitrary cell value to a float64 for summing.
// Non-numeric and missing values become 0; coercion never fails.
func Num(v any) float64 {
	switch n := v.(type) {
	case nil:
		return 0
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case float64:
		return n
	case float32:
		return float64(n)
	case *int:
		if n == nil {
			return 0
		}
		return float64(*n)
	case *float64:
		if n == nil {
			return 0
		}
		return *n
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// Round1 rounds to one decimal place.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Round2 rounds to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// CellString renders a cell for delimited output. Whole-number floats
// render without a decimal point, nil renders empty.
func CellString(v any) string {
	switch c := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(c)
	case int:
		return strconv.Itoa(c)
	case int64:
		return strconv.FormatInt(c, 10)
	case *int:
		if c == nil {
			return ""
		}
		return strconv.Itoa(*c)
	case float64:
		if c == math.Trunc(c) && !math.IsInf(c, 0) {
			return strconv.FormatInt(int64(c), 10)
		}
		return strconv.FormatFloat(c, 'f', -1, 64)
	case float32:
		return CellString(float64(c))
	default:
		return fmt.Sprint(c)
	}
}
